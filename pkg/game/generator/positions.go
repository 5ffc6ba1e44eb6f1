package generator

import (
	"math/rand"

	"deepdelve/pkg/engine/world"
)

// AreaStartingPosition puts the start on the walkable tile nearest an anchor
type AreaStartingPosition struct {
	X XAnchor
	Y YAnchor
}

// NewAreaStartingPosition returns a start placer for the anchor
func NewAreaStartingPosition(x XAnchor, y YAnchor) *AreaStartingPosition {
	return &AreaStartingPosition{X: x, Y: y}
}

// BuildMeta sets data.Start
func (a *AreaStartingPosition) BuildMeta(_ *rand.Rand, data *BuildData) {
	p := data.Grid.PointOf(FindNearestWalkable(data.Grid, a.X, a.Y))
	data.Start = &p
}

// AreaEndingPosition stamps DownStairs on the walkable tile nearest an anchor
type AreaEndingPosition struct {
	X XAnchor
	Y YAnchor
}

// NewAreaEndingPosition returns an exit placer for the anchor
func NewAreaEndingPosition(x XAnchor, y YAnchor) *AreaEndingPosition {
	return &AreaEndingPosition{X: x, Y: y}
}

// BuildMeta stamps the stairs
func (a *AreaEndingPosition) BuildMeta(_ *rand.Rand, data *BuildData) {
	idx := FindNearestWalkable(data.Grid, a.X, a.Y)
	data.Grid.Tiles[idx].Surface = world.DownStairs
}

// RoomBasedStartingPosition starts in the centre of the first room
type RoomBasedStartingPosition struct{}

// BuildMeta sets data.Start
func (RoomBasedStartingPosition) BuildMeta(_ *rand.Rand, data *BuildData) {
	data.requireAnyRoom("RoomBasedStartingPosition")
	c := data.Rooms[0].Center()
	data.Start = &world.Point{X: c.X, Y: c.Y}
}

// RoomBasedStairs puts the exit in the centre of the last room. When a start
// is set it walks back through the rooms to the last centre reachable from it
// and distinct from it, and falls back to DistantExit when there is none.
type RoomBasedStairs struct{}

// BuildMeta stamps the stairs
func (RoomBasedStairs) BuildMeta(rng *rand.Rand, data *BuildData) {
	data.requireAnyRoom("RoomBasedStairs")
	g := data.Grid
	if data.Start == nil {
		c := data.Rooms[len(data.Rooms)-1].Center()
		g.SetSurface(c.X, c.Y, world.DownStairs)
		return
	}

	df := startDistances(data)
	start := data.StartIndex()
	for i := len(data.Rooms) - 1; i >= 0; i-- {
		c := data.Rooms[i].Center()
		idx := g.Index(c.X, c.Y)
		if idx == start || g.Tiles[idx].Surface != world.Floor || !df.Reachable(idx) {
			continue
		}
		g.Tiles[idx].Surface = world.DownStairs
		return
	}
	DistantExit{}.BuildMeta(rng, data)
}

// Nothing is a meta stage that changes nothing
type Nothing struct{}

// BuildMeta does nothing
func (Nothing) BuildMeta(*rand.Rand, *BuildData) {}
