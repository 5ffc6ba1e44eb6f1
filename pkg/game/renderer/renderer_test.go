package renderer

import (
	"testing"

	"deepdelve/pkg/engine/world"
)

func TestPixels(t *testing.T) {
	g := world.NewGrid(0, 4, 3, "pixels")
	g.SetSurface(1, 1, world.Floor)
	g.SetSurface(2, 1, world.DeepWater)

	pix := Pixels(g, &world.Point{X: 1, Y: 1})
	if len(pix) != 4*12 {
		t.Fatalf("expected %d bytes, got %d", 4*12, len(pix))
	}

	at := func(x, y int) [4]byte {
		o := 4 * g.Index(x, y)
		return [4]byte{pix[o], pix[o+1], pix[o+2], pix[o+3]}
	}
	rgba := func(s world.Surface) [4]byte {
		c := SurfaceColor(s)
		return [4]byte{c.R, c.G, c.B, c.A}
	}

	if at(0, 0) != rgba(world.Wall) {
		t.Error("wall pixel wrong")
	}
	if at(2, 1) != rgba(world.DeepWater) {
		t.Error("water pixel wrong")
	}
	if want := ColorStart; at(1, 1) != [4]byte{want.R, want.G, want.B, want.A} {
		t.Error("start not highlighted")
	}
}

func TestSurfaceColor_AllKnown(t *testing.T) {
	for s := world.Wall; s <= world.Stalagmite; s++ {
		if SurfaceColor(s) == ColorUnknown {
			t.Errorf("%s has no color", s)
		}
	}
	if SurfaceColor(world.Surface(99)) != ColorUnknown {
		t.Error("expected the fallback color")
	}
}

func frames(n int) []*world.Grid {
	out := make([]*world.Grid, n)
	for i := range out {
		out[i] = world.NewGrid(0, 3, 3, "frame")
	}
	return out
}

func TestPlayback_TicksWithDelay(t *testing.T) {
	p := NewPlayback(frames(3), 2)

	if p.Tick() {
		t.Error("advanced before the delay elapsed")
	}
	if !p.Tick() || p.Frame() != 1 {
		t.Fatalf("expected frame 1, got %d", p.Frame())
	}
	p.Tick()
	p.Tick()
	if p.Frame() != 2 || !p.Done() {
		t.Fatalf("expected the last frame, got %d", p.Frame())
	}
	p.Tick()
	p.Tick()
	if p.Frame() != 2 {
		t.Error("moved past the last frame")
	}
}

func TestPlayback_Manual(t *testing.T) {
	p := NewPlayback(frames(2), 0)
	if p.Delay != 1 {
		t.Errorf("delay clamped to %d", p.Delay)
	}
	if p.Prev() {
		t.Error("moved before the first frame")
	}
	p.Paused = true
	if p.Tick() {
		t.Error("paused playback advanced")
	}
	if !p.Next() || p.Current() != p.Frames[1] {
		t.Error("Next did not show the second frame")
	}
	p.Restart()
	if p.Frame() != 0 {
		t.Error("Restart did not rewind")
	}
}

func TestPlayback_Empty(t *testing.T) {
	p := NewPlayback(nil, 1)
	if p.Current() != nil {
		t.Error("expected no frame")
	}
	if !p.Done() || p.Tick() {
		t.Error("empty playback should be done")
	}
}
