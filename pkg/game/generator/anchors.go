package generator

import (
	"deepdelve/pkg/engine/world"
)

// XAnchor is a horizontal seed position for area-based placement
type XAnchor int

// Horizontal anchors
const (
	Left XAnchor = iota
	XCenter
	Right
)

// YAnchor is a vertical seed position for area-based placement
type YAnchor int

// Vertical anchors
const (
	Top YAnchor = iota
	YCenter
	Bottom
)

// anchorPoint converts anchors to a seed coordinate just inside the border
func anchorPoint(g *world.Grid, x XAnchor, y YAnchor) world.Point {
	var p world.Point
	switch x {
	case Left:
		p.X = 1
	case XCenter:
		p.X = g.Width / 2
	case Right:
		p.X = g.Width - 2
	}
	switch y {
	case Top:
		p.Y = 1
	case YCenter:
		p.Y = g.Height / 2
	case Bottom:
		p.Y = g.Height - 2
	}
	return p
}

// FindNearestWalkable returns the walkable tile closest to the anchor by squared
// distance, preferring the lowest index on ties. It panics when the grid has no
// walkable tile.
func FindNearestWalkable(g *world.Grid, x XAnchor, y YAnchor) int {
	seed := anchorPoint(g, x, y)
	seedIdx := g.Index(seed.X, seed.Y)

	best, bestDist := -1, 0.0
	for idx := range g.Tiles {
		if !g.Tiles[idx].Surface.IsWalkable() {
			continue
		}
		d := g.PathingDistance(idx, seedIdx)
		if best < 0 || d < bestDist {
			best, bestDist = idx, d
		}
	}
	if best < 0 {
		panic("FindNearestWalkable: no walkable tiles")
	}
	return best
}
