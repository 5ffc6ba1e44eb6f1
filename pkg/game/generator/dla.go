package generator

import (
	"math/rand"

	"deepdelve/pkg/engine/world"
)

// DLAAlgorithm selects how aggregation particles move
type DLAAlgorithm int

// Aggregation variants
const (
	WalkInwards DLAAlgorithm = iota
	WalkOutwards
	CentralAttractor
)

// DLA grows floor by diffusion-limited aggregation around the centre
type DLA struct {
	Algorithm    DLAAlgorithm
	BrushSize    int
	Symmetry     Symmetry
	FloorPercent float64
}

// DLAWalkInwards walks particles in from random points
func DLAWalkInwards() *DLA {
	return &DLA{Algorithm: WalkInwards, BrushSize: 1, FloorPercent: 0.25}
}

// DLAWalkOutwards walks particles out of the existing blob
func DLAWalkOutwards() *DLA {
	return &DLA{Algorithm: WalkOutwards, BrushSize: 2, FloorPercent: 0.25}
}

// DLACentralAttractor fires particles along straight lines at the centre
func DLACentralAttractor() *DLA {
	return &DLA{Algorithm: CentralAttractor, BrushSize: 2, FloorPercent: 0.25}
}

// DLAInsectoid is a horizontally mirrored central attractor
func DLAInsectoid() *DLA {
	return &DLA{Algorithm: CentralAttractor, BrushSize: 2, Symmetry: Horizontal, FloorPercent: 0.25}
}

// DLAHeavyErosion is a denser walk-inwards
func DLAHeavyErosion() *DLA {
	return &DLA{Algorithm: WalkInwards, BrushSize: 2, FloorPercent: 0.35}
}

// BuildInitial grows a fresh grid
func (d *DLA) BuildInitial(rng *rand.Rand, data *BuildData) {
	d.build(rng, data)
}

// BuildMeta grows more floor into an existing layout
func (d *DLA) BuildMeta(rng *rand.Rand, data *BuildData) {
	d.build(rng, data)
}

func (d *DLA) build(rng *rand.Rand, data *BuildData) {
	g := data.Grid
	start := world.Point{X: g.Width / 2, Y: g.Height / 2}
	g.SetSurface(start.X, start.Y, world.Floor)
	for _, dir := range world.CardinalDirections() {
		dx, dy := dir.Delta()
		g.SetSurface(start.X+dx, start.Y+dy, world.Floor)
	}

	desired := int(d.FloorPercent * float64(len(g.Tiles)))
	floorCount := g.CountSurface(world.Floor)
	particles := 0

	for floorCount < desired {
		switch d.Algorithm {
		case WalkInwards:
			x, y := rangeInt(rng, 2, g.Width-1), rangeInt(rng, 2, g.Height-1)
			px, py := x, y
			for g.Surface(x, y) == world.Wall {
				px, py = x, y
				x, y = randomWalkStep(rng, g, 2, x, y)
			}
			paint(g, d.Symmetry, d.BrushSize, px, py)

		case WalkOutwards:
			x, y := start.X, start.Y
			for g.Surface(x, y) == world.Floor {
				x, y = randomWalkStep(rng, g, 2, x, y)
			}
			paint(g, d.Symmetry, d.BrushSize, x, y)

		case CentralAttractor:
			x, y := rangeInt(rng, 1, g.Width-1), rangeInt(rng, 1, g.Height-1)
			px, py := x, y
			line := bresenhamLine(x, y, start.X, start.Y)
			for g.Surface(x, y) == world.Wall && len(line) > 0 {
				px, py = x, y
				x, y = line[0].X, line[0].Y
				line = line[1:]
			}
			paint(g, d.Symmetry, d.BrushSize, px, py)
		}

		particles++
		if particles%10 == 0 {
			data.TakeSnapshot()
		}
		floorCount = g.CountSurface(world.Floor)
	}
}
