package navigation

import (
	"slices"

	"github.com/zyedidia/generic/heap"
)

// MaxAStarSteps bounds the number of node expansions of a single search
const MaxAStarSteps = 200

// NavigationPath is the result of AStarSearch. Steps runs from start to
// Destination inclusive and is empty when Success is false.
type NavigationPath struct {
	Destination int
	Success     bool
	Steps       []int
}

type openNode struct {
	idx int
	g   float64
	f   float64
}

// lower f first; deeper nodes win ties, then lower index
func openLess(a, b openNode) bool {
	if a.f != b.f {
		return a.f < b.f
	}
	if a.g != b.g {
		return a.g > b.g
	}
	return a.idx < b.idx
}

// AStarSearch finds a path from start to end. It gives up with Success false
// after MaxAStarSteps expansions even if a path exists.
func AStarSearch(start, end int, graph CostGraph) NavigationPath {
	result := NavigationPath{Destination: end}

	gScore := map[int]float64{start: 0}
	parent := make(map[int]int)
	closed := make(map[int]bool)

	open := heap.New[openNode](openLess)
	open.Push(openNode{idx: start, f: graph.PathingDistance(start, end)})

	expansions := 0
	for open.Size() > 0 {
		cur, _ := open.Pop()
		if closed[cur.idx] {
			continue
		}
		if cur.idx == end {
			result.Success = true
			result.Steps = reconstruct(parent, start, end)
			return result
		}
		if expansions >= MaxAStarSteps {
			return result
		}
		expansions++
		closed[cur.idx] = true

		for _, exit := range graph.AvailableExits(cur.idx) {
			if closed[exit.Index] {
				continue
			}
			g := cur.g + exit.Cost
			if old, seen := gScore[exit.Index]; seen && g >= old {
				continue
			}
			gScore[exit.Index] = g
			parent[exit.Index] = cur.idx
			open.Push(openNode{
				idx: exit.Index,
				g:   g,
				f:   g + graph.PathingDistance(exit.Index, end),
			})
		}
	}

	return result
}

func reconstruct(parent map[int]int, start, end int) []int {
	steps := []int{end}
	for cur := end; cur != start; {
		cur = parent[cur]
		steps = append(steps, cur)
	}
	slices.Reverse(steps)
	return steps
}
