package generator

import (
	"math/rand"

	"deepdelve/pkg/engine/world"
)

// CellularAutomata grows caves by smoothing random noise
type CellularAutomata struct {
	Iterations int
}

// NewCellularAutomata returns the standard 15-iteration cave generator
func NewCellularAutomata() *CellularAutomata {
	return &CellularAutomata{Iterations: 15}
}

// BuildInitial seeds the interior at roughly 55% floor and smooths it
func (c *CellularAutomata) BuildInitial(rng *rand.Rand, data *BuildData) {
	g := data.Grid
	for y := 1; y < g.Height-1; y++ {
		for x := 1; x < g.Width-1; x++ {
			if rng.Intn(100) > 45 {
				g.SetSurface(x, y, world.Floor)
			} else {
				g.SetSurface(x, y, world.Wall)
			}
		}
	}
	data.TakeSnapshot()

	for i := 0; i < c.Iterations; i++ {
		smoothCaves(g)
		data.TakeSnapshot()
	}
}

// BuildMeta applies a single smoothing pass to an existing layout
func (c *CellularAutomata) BuildMeta(_ *rand.Rand, data *BuildData) {
	smoothCaves(data.Grid)
}

// smoothCaves makes a tile Wall when more than 4 or none of its 8 neighbours are Wall
func smoothCaves(g *world.Grid) {
	next := make([]world.Surface, len(g.Tiles))
	for i := range g.Tiles {
		next[i] = g.Tiles[i].Surface
	}

	for y := 1; y < g.Height-1; y++ {
		for x := 1; x < g.Width-1; x++ {
			walls := countAdjacentWalls(g, x, y)
			if walls > 4 || walls == 0 {
				next[g.Index(x, y)] = world.Wall
			} else {
				next[g.Index(x, y)] = world.Floor
			}
		}
	}

	for i := range g.Tiles {
		g.Tiles[i].Surface = next[i]
	}
}

func countAdjacentWalls(g *world.Grid, x, y int) int {
	count := 0
	for _, d := range world.AllDirections() {
		dx, dy := d.Delta()
		if g.Surface(x+dx, y+dy) == world.Wall {
			count++
		}
	}
	return count
}
