package generator

import (
	"math/rand"
	"slices"

	"deepdelve/pkg/engine/logger"
	"deepdelve/pkg/engine/navigation"
	"deepdelve/pkg/engine/world"
)

// reachabilityCutoff bounds the distance fields used while generating
const reachabilityCutoff = 1000.0

// startDistances floods from the starting point over the current surfaces
func startDistances(data *BuildData) *navigation.DistanceField {
	g := data.Grid
	g.PopulateBlocked()
	return navigation.NewDistanceField(g.Width, g.Height, []int{data.StartIndex()}, g, reachabilityCutoff)
}

// CullUnreachable walls off every Floor tile that cannot be reached from the start
type CullUnreachable struct{}

// BuildMeta converts unreachable Floor to Wall and drops any spawn left
// standing in the new walls
func (CullUnreachable) BuildMeta(_ *rand.Rand, data *BuildData) {
	data.requireStart("CullUnreachable")
	df := startDistances(data)
	g := data.Grid
	for idx := range g.Tiles {
		if g.Tiles[idx].Surface == world.Floor && !df.Reachable(idx) {
			g.Tiles[idx].Surface = world.Wall
		}
	}
	data.Spawns = slices.DeleteFunc(data.Spawns, func(s Spawn) bool {
		return g.Tiles[s.Index].Surface == world.Wall
	})
}

// DistantExit stamps DownStairs on the reachable Floor tile furthest from the start
type DistantExit struct{}

// BuildMeta places the exit. The first tile in index order wins ties and the
// start tile is never chosen.
func (DistantExit) BuildMeta(_ *rand.Rand, data *BuildData) {
	data.requireStart("DistantExit")
	df := startDistances(data)
	g := data.Grid
	start := data.StartIndex()

	exit, furthest := -1, 0.0
	for idx := range g.Tiles {
		if idx == start || g.Tiles[idx].Surface != world.Floor || !df.Reachable(idx) {
			continue
		}
		if d := df.At(idx); exit < 0 || d > furthest {
			exit, furthest = idx, d
		}
	}
	if exit < 0 {
		logger.Warning("no exit tile reachable from the start", "depth", data.Depth())
		return
	}
	g.Tiles[exit].Surface = world.DownStairs
}
