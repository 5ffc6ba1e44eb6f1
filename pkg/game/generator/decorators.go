package generator

import (
	"math/rand"

	"deepdelve/pkg/engine/logger"
	"deepdelve/pkg/engine/navigation"
	"deepdelve/pkg/engine/world"
)

// CavernDecorator roughens a cave: gravel and puddles on the floor,
// stalactites and pools along the walls
type CavernDecorator struct{}

// BuildMeta redecorates Floor and Wall tiles. Wall neighbours are counted on
// the layout as it was before this stage.
func (CavernDecorator) BuildMeta(rng *rand.Rand, data *BuildData) {
	g := data.Grid
	before := g.Clone()

	for idx := range g.Tiles {
		tile := &g.Tiles[idx]
		switch tile.Surface {
		case world.Floor:
			switch roll := rng.Intn(100); {
			case roll <= 60:
				tile.Surface = world.Gravel
			case roll <= 66:
				tile.Surface = world.ShallowWater
			}
		case world.Wall:
			p := g.PointOf(idx)
			switch orthogonalWalls(before, p.X, p.Y) {
			case 1:
				switch rng.Intn(4) {
				case 0:
					tile.Surface = world.Stalactite
				case 1:
					tile.Surface = world.Stalagmite
				}
			case 2:
				tile.Surface = world.DeepWater
			}
		}
	}
	g.Outdoors = false
}

// ForestRoad runs a road from the start to the east edge and a stream from a
// north or south corner of the east edge down to the road. The stream's head
// becomes the exit.
type ForestRoad struct{}

// BuildMeta paints the road and the stream
func (ForestRoad) BuildMeta(rng *rand.Rand, data *BuildData) {
	data.requireStart("ForestRoad")
	g := data.Grid
	start := data.StartIndex()
	end := FindNearestWalkable(g, Right, YCenter)

	g.PopulateBlocked()
	road := navigation.AStarSearch(start, end, g)
	streamTarget := end
	if road.Success {
		for _, idx := range road.Steps {
			p := g.PointOf(idx)
			paintRoad(g, p.X, p.Y)
			for _, d := range world.CardinalDirections() {
				dx, dy := d.Delta()
				paintRoad(g, p.X+dx, p.Y+dy)
			}
		}
		streamTarget = road.Steps[len(road.Steps)*4/5]
		data.TakeSnapshot()
	} else {
		logger.Debug("forest road not found", "start", start, "end", end)
	}

	corner := Top
	if rng.Intn(2) == 1 {
		corner = Bottom
	}
	stair := FindNearestWalkable(g, Right, corner)

	stream := navigation.AStarSearch(stair, streamTarget, g)
	for _, idx := range stream.Steps {
		paintWater(g, idx)
		paintWater(g, idx+1)
	}
	g.Tiles[stair].Surface = world.DownStairs
}

func paintRoad(g *world.Grid, x, y int) {
	if !g.InBounds(x, y) || g.Surface(x, y) == world.DownStairs {
		return
	}
	g.SetSurface(x, y, world.Road)
}

func paintWater(g *world.Grid, idx int) {
	if idx < len(g.Tiles) && g.Tiles[idx].Surface == world.Floor {
		g.Tiles[idx].Surface = world.ShallowWater
	}
}
