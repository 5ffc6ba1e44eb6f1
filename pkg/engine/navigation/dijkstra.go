package navigation

import (
	"math"

	"github.com/zyedidia/generic/heap"
)

// Unreachable is the distance held by tiles not reached within the cutoff
const Unreachable = math.MaxFloat64

// DistanceField holds the shortest weighted distance from a set of source tiles
// to every tile of a width x height map
type DistanceField struct {
	Width       int
	Height      int
	MaxDistance float64
	Distances   []float64
}

type frontier struct {
	idx  int
	dist float64
}

func frontierLess(a, b frontier) bool {
	if a.dist != b.dist {
		return a.dist < b.dist
	}
	return a.idx < b.idx
}

// NewDistanceField floods outward from every source at once along the graph's exits.
// Tiles whose distance would reach maxDistance stay Unreachable.
func NewDistanceField(width, height int, sources []int, graph CostGraph, maxDistance float64) *DistanceField {
	df := &DistanceField{
		Width:       width,
		Height:      height,
		MaxDistance: maxDistance,
		Distances:   make([]float64, width*height),
	}
	for i := range df.Distances {
		df.Distances[i] = Unreachable
	}

	open := heap.New[frontier](frontierLess)
	for _, src := range sources {
		if src < 0 || src >= len(df.Distances) {
			continue
		}
		df.Distances[src] = 0
		open.Push(frontier{idx: src})
	}

	for open.Size() > 0 {
		cur, _ := open.Pop()
		if cur.dist > df.Distances[cur.idx] {
			continue
		}
		for _, exit := range graph.AvailableExits(cur.idx) {
			next := cur.dist + exit.Cost
			if next >= maxDistance || next >= df.Distances[exit.Index] {
				continue
			}
			df.Distances[exit.Index] = next
			open.Push(frontier{idx: exit.Index, dist: next})
		}
	}

	return df
}

// At returns the distance of a tile, Unreachable if it was not reached
func (df *DistanceField) At(idx int) float64 {
	return df.Distances[idx]
}

// Reachable returns true if the tile has a finite distance below the cutoff
func (df *DistanceField) Reachable(idx int) bool {
	d := df.Distances[idx]
	return d != Unreachable && d < df.MaxDistance
}
