package renderer

import "deepdelve/pkg/engine/world"

// Playback steps through build snapshots, advancing one frame every Delay
// ticks unless paused. It stops on the last frame.
type Playback struct {
	Frames []*world.Grid
	Delay  int
	Paused bool

	frame int
	ticks int
}

// NewPlayback returns a playback over frames. A delay below one advances every tick.
func NewPlayback(frames []*world.Grid, delay int) *Playback {
	if delay < 1 {
		delay = 1
	}
	return &Playback{Frames: frames, Delay: delay}
}

// Tick counts one update and advances when the delay has elapsed. It reports
// whether the visible frame changed.
func (p *Playback) Tick() bool {
	if p.Paused || p.Done() {
		return false
	}
	p.ticks++
	if p.ticks < p.Delay {
		return false
	}
	p.ticks = 0
	return p.Next()
}

// Next moves one frame forward
func (p *Playback) Next() bool {
	if p.frame+1 >= len(p.Frames) {
		return false
	}
	p.frame++
	return true
}

// Prev moves one frame back
func (p *Playback) Prev() bool {
	if p.frame == 0 {
		return false
	}
	p.frame--
	return true
}

// Restart rewinds to the first frame
func (p *Playback) Restart() {
	p.frame = 0
	p.ticks = 0
}

// Done reports whether the last frame is showing
func (p *Playback) Done() bool {
	return p.frame+1 >= len(p.Frames)
}

// Frame returns the index of the visible frame
func (p *Playback) Frame() int {
	return p.frame
}

// Current returns the visible snapshot, nil when there are none
func (p *Playback) Current() *world.Grid {
	if len(p.Frames) == 0 {
		return nil
	}
	return p.Frames[p.frame]
}
