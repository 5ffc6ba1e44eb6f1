package generator

import (
	"math/rand"

	"deepdelve/pkg/engine/world"
)

// DistanceMetric selects how Voronoi membership is measured
type DistanceMetric int

// Voronoi metrics
const (
	Pythagoras DistanceMetric = iota
	Manhattan
	Chebyshev
)

// Distance returns the metric distance between two points. Pythagoras is squared.
func (m DistanceMetric) Distance(a, b world.Point) int {
	dx, dy := abs(a.X-b.X), abs(a.Y-b.Y)
	switch m {
	case Manhattan:
		return dx + dy
	case Chebyshev:
		return max(dx, dy)
	default:
		return dx*dx + dy*dy
	}
}

// voronoiAreaPerSeed caps the seed count on small maps so cells stay wide
// enough to survive boundary erosion
const voronoiAreaPerSeed = 48

// VoronoiCells partitions the map around random seeds and erodes the cell
// boundaries into walls, leaving blob-shaped rooms
type VoronoiCells struct {
	Seeds  int
	Metric DistanceMetric
}

// VoronoiPythagoras uses squared Euclidean membership
func VoronoiPythagoras() *VoronoiCells {
	return &VoronoiCells{Seeds: 64, Metric: Pythagoras}
}

// VoronoiManhattan uses taxicab membership
func VoronoiManhattan() *VoronoiCells {
	return &VoronoiCells{Seeds: 64, Metric: Manhattan}
}

// VoronoiChebyshev uses chessboard membership
func VoronoiChebyshev() *VoronoiCells {
	return &VoronoiCells{Seeds: 64, Metric: Chebyshev}
}

// BuildInitial assigns membership and carves cell interiors
func (v *VoronoiCells) BuildInitial(rng *rand.Rand, data *BuildData) {
	g := data.Grid
	seedCount := min(v.Seeds, max(1, (g.Width-2)*(g.Height-2)/voronoiAreaPerSeed))
	seeds := make([]world.Point, 0, seedCount)
	taken := make(map[world.Point]bool, seedCount)
	for len(seeds) < seedCount {
		p := world.Point{X: rangeInt(rng, 1, g.Width), Y: rangeInt(rng, 1, g.Height)}
		if taken[p] {
			continue
		}
		taken[p] = true
		seeds = append(seeds, p)
	}

	membership := make([]int, len(g.Tiles))
	for idx := range membership {
		p := g.PointOf(idx)
		best, bestDist := 0, -1
		for i, s := range seeds {
			d := v.Metric.Distance(p, s)
			if bestDist < 0 || d < bestDist {
				best, bestDist = i, d
			}
		}
		membership[idx] = best
	}

	for y := 1; y < g.Height-1; y++ {
		for x := 1; x < g.Width-1; x++ {
			idx := g.Index(x, y)
			cell := membership[idx]
			neighbours := 0
			for _, n := range []int{g.Index(x-1, y), g.Index(x+1, y), g.Index(x, y-1), g.Index(x, y+1)} {
				if membership[n] != cell {
					neighbours++
				}
			}
			if neighbours < 2 {
				g.Tiles[idx].Surface = world.Floor
			}
		}
		data.TakeSnapshot()
	}

	if g.CountSurface(world.Floor) == 0 {
		g.SetSurface(g.Width/2, g.Height/2, world.Floor)
	}
}
