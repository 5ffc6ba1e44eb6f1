// Package ebiten replays a level's build history in an Ebiten window.
package ebiten

import (
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"deepdelve/pkg/engine/logger"
	"deepdelve/pkg/engine/world"
	"deepdelve/pkg/game/renderer"
)

// Viewer is an ebiten.Game that draws one snapshot per frame, scaled up so a
// tile covers Scale pixels
type Viewer struct {
	playback *renderer.Playback
	start    *world.Point
	title    string
	scale    int

	images   []*ebiten.Image
	width    int
	height   int
	opened   bool
	showHelp bool
}

// NewViewer creates a viewer over snapshots. start is highlighted on the
// last frame only, since earlier snapshots predate its placement.
func NewViewer(title string, snapshots []*world.Grid, start *world.Point, scale, delay int) *Viewer {
	if scale < 1 {
		scale = 1
	}
	v := &Viewer{
		playback: renderer.NewPlayback(snapshots, delay),
		start:    start,
		title:    title,
		scale:    scale,
		images:   make([]*ebiten.Image, len(snapshots)),
		showHelp: true,
	}
	if len(snapshots) > 0 {
		v.width = snapshots[0].Width
		v.height = snapshots[0].Height
	}
	return v
}

// Run opens the window and blocks until it is closed
func (v *Viewer) Run() error {
	if len(v.images) == 0 {
		return fmt.Errorf("no snapshots to show, enable record_history")
	}
	ebiten.SetWindowSize(v.width*v.scale, v.height*v.scale)
	ebiten.SetWindowTitle(v.title)
	return ebiten.RunGame(v)
}

// Update handles input and advances playback (Ebiten interface)
func (v *Viewer) Update() error {
	if !v.opened {
		v.opened = true
		w, h := ebiten.WindowSize()
		logger.Info("viewer window opened", "width", w, "height", h, "snapshots", len(v.images))
	}

	switch {
	case inpututil.IsKeyJustPressed(ebiten.KeyEscape), inpututil.IsKeyJustPressed(ebiten.KeyQ):
		return ebiten.Termination
	case inpututil.IsKeyJustPressed(ebiten.KeySpace):
		v.playback.Paused = !v.playback.Paused
	case inpututil.IsKeyJustPressed(ebiten.KeyArrowRight):
		v.playback.Paused = true
		v.playback.Next()
	case inpututil.IsKeyJustPressed(ebiten.KeyArrowLeft):
		v.playback.Paused = true
		v.playback.Prev()
	case inpututil.IsKeyJustPressed(ebiten.KeyR):
		v.playback.Restart()
		v.playback.Paused = false
	case inpututil.IsKeyJustPressed(ebiten.KeyH):
		v.showHelp = !v.showHelp
	}

	v.playback.Tick()
	return nil
}

// Draw renders the visible snapshot (Ebiten interface)
func (v *Viewer) Draw(screen *ebiten.Image) {
	screen.Fill(renderer.ColorBackground)

	img := v.frameImage(v.playback.Frame())
	if img == nil {
		return
	}
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(float64(v.scale), float64(v.scale))
	screen.DrawImage(img, op)

	if v.showHelp {
		ebitenutil.DebugPrint(screen, fmt.Sprintf("%s  %d/%d\nspace pause  <- -> step  r restart  h help  q quit",
			v.title, v.playback.Frame()+1, len(v.images)))
	}
}

// Layout keeps one screen pixel per scaled tile pixel (Ebiten interface)
func (v *Viewer) Layout(outsideWidth, outsideHeight int) (int, int) {
	return v.width * v.scale, v.height * v.scale
}

// frameImage uploads a snapshot on first use
func (v *Viewer) frameImage(frame int) *ebiten.Image {
	g := v.playback.Current()
	if g == nil {
		return nil
	}
	if v.images[frame] == nil {
		var start *world.Point
		if frame == len(v.images)-1 {
			start = v.start
		}
		img := ebiten.NewImage(g.Width, g.Height)
		img.WritePixels(renderer.Pixels(g, start))
		v.images[frame] = img
	}
	return v.images[frame]
}
