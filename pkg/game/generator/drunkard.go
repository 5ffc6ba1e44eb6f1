package generator

import (
	"math/rand"

	"deepdelve/pkg/engine/world"
)

// DrunkSpawnMode decides where each new digger starts
type DrunkSpawnMode int

// Spawn modes
const (
	StartingPoint DrunkSpawnMode = iota
	RandomPoint
)

// DrunkardSettings parameterise a drunkard's walk
type DrunkardSettings struct {
	SpawnMode    DrunkSpawnMode
	Lifetime     int
	FloorPercent float64
	BrushSize    int
	Symmetry     Symmetry
}

// DrunkardsWalk carves floor with random-walking diggers until a floor target is met
type DrunkardsWalk struct {
	Settings DrunkardSettings
}

// DrunkardOpenArea digs one big blob from the centre
func DrunkardOpenArea() *DrunkardsWalk {
	return &DrunkardsWalk{DrunkardSettings{SpawnMode: StartingPoint, Lifetime: 400, FloorPercent: 0.5, BrushSize: 1}}
}

// DrunkardOpenHalls digs long-lived walkers from random points
func DrunkardOpenHalls() *DrunkardsWalk {
	return &DrunkardsWalk{DrunkardSettings{SpawnMode: RandomPoint, Lifetime: 400, FloorPercent: 0.5, BrushSize: 1}}
}

// DrunkardWindingPassages digs many short walkers
func DrunkardWindingPassages() *DrunkardsWalk {
	return &DrunkardsWalk{DrunkardSettings{SpawnMode: RandomPoint, Lifetime: 100, FloorPercent: 0.4, BrushSize: 1}}
}

// DrunkardFatPassages is WindingPassages with a 2x2 brush
func DrunkardFatPassages() *DrunkardsWalk {
	return &DrunkardsWalk{DrunkardSettings{SpawnMode: RandomPoint, Lifetime: 100, FloorPercent: 0.4, BrushSize: 2}}
}

// DrunkardFearfulSymmetry mirrors every step on both axes
func DrunkardFearfulSymmetry() *DrunkardsWalk {
	return &DrunkardsWalk{DrunkardSettings{SpawnMode: RandomPoint, Lifetime: 100, FloorPercent: 0.4, BrushSize: 1, Symmetry: BothAxes}}
}

// BuildInitial digs a fresh grid
func (d *DrunkardsWalk) BuildInitial(rng *rand.Rand, data *BuildData) {
	d.build(rng, data)
}

// BuildMeta digs more floor into an existing layout
func (d *DrunkardsWalk) BuildMeta(rng *rand.Rand, data *BuildData) {
	d.build(rng, data)
}

func (d *DrunkardsWalk) build(rng *rand.Rand, data *BuildData) {
	g := data.Grid
	start := world.Point{X: g.Width / 2, Y: g.Height / 2}
	g.SetSurface(start.X, start.Y, world.Floor)

	desired := int(d.Settings.FloorPercent * float64(len(g.Tiles)))
	floorCount := g.CountSurface(world.Floor)
	diggers := 0

	for floorCount < desired {
		x, y := start.X, start.Y
		if diggers > 0 && d.Settings.SpawnMode == RandomPoint {
			x = rangeInt(rng, 2, g.Width-1)
			y = rangeInt(rng, 2, g.Height-1)
		}

		for life := d.Settings.Lifetime; life > 0; life-- {
			paint(g, d.Settings.Symmetry, d.Settings.BrushSize, x, y)
			x, y = randomWalkStep(rng, g, 2, x, y)
		}

		diggers++
		data.TakeSnapshot()
		floorCount = g.CountSurface(world.Floor)
	}
}
