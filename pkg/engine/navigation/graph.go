// Package navigation provides the graph-search primitives shared by level
// generation and runtime movement: a multi-source distance field and a
// step-bounded A* search over any cost graph.
package navigation

// Exit is a traversable edge to a neighbouring tile
type Exit struct {
	Index int
	Cost  float64
}

// CostGraph is the view of a tile map required by DistanceField and AStarSearch
type CostGraph interface {
	// AvailableExits lists the neighbours reachable in one step from idx
	AvailableExits(idx int) []Exit
	// PathingDistance is the heuristic cost between two tiles
	PathingDistance(a, b int) float64
}
