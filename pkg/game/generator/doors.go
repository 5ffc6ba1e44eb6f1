package generator

import (
	"math/rand"

	"deepdelve/pkg/engine/world"
)

// DoorPlacement adds Door spawns at doorway-shaped tiles. With corridors it
// tries each corridor once; without it scans every Floor tile.
type DoorPlacement struct{}

// BuildMeta places doors
func (DoorPlacement) BuildMeta(rng *rand.Rand, data *BuildData) {
	g := data.Grid
	if data.Corridors != nil {
		for _, corridor := range data.Corridors {
			if len(corridor) < 2 {
				continue
			}
			for _, idx := range corridor {
				if isDoorway(g, idx) && rng.Intn(10) == 0 && !data.HasSpawnAt(idx) {
					data.AddSpawn(idx, DoorEntity)
					break
				}
			}
		}
		return
	}

	for idx := range g.Tiles {
		if g.Tiles[idx].Surface == world.Floor && isDoorway(g, idx) && rng.Intn(10) == 0 && !data.HasSpawnAt(idx) {
			data.AddSpawn(idx, DoorEntity)
		}
	}
}

// isDoorway is true for a Floor tile walled on exactly one axis and open on the other
func isDoorway(g *world.Grid, idx int) bool {
	p := g.PointOf(idx)
	if p.X < 2 || p.X > g.Width-3 || p.Y < 2 || p.Y > g.Height-3 {
		return false
	}
	if g.Tiles[idx].Surface != world.Floor {
		return false
	}

	left, right := g.Surface(p.X-1, p.Y), g.Surface(p.X+1, p.Y)
	up, down := g.Surface(p.X, p.Y-1), g.Surface(p.X, p.Y+1)

	eastWest := left == world.Floor && right == world.Floor && up == world.Wall && down == world.Wall
	northSouth := left == world.Wall && right == world.Wall && up == world.Floor && down == world.Floor
	return eastWest || northSouth
}
