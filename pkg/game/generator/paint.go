package generator

import (
	"math/rand"

	"deepdelve/pkg/engine/world"
)

// Symmetry mirrors painting about the grid centre
type Symmetry int

// Symmetry modes
const (
	NoSymmetry Symmetry = iota
	Horizontal
	Vertical
	BothAxes
)

// paint sets Floor at (x, y) with the given brush, mirrored per mode
func paint(g *world.Grid, mode Symmetry, brush, x, y int) {
	cx, cy := g.Width/2, g.Height/2
	switch mode {
	case Horizontal:
		if x == cx {
			applyPaint(g, brush, x, y)
			return
		}
		dx := abs(cx - x)
		applyPaint(g, brush, cx+dx, y)
		applyPaint(g, brush, cx-dx, y)
	case Vertical:
		if y == cy {
			applyPaint(g, brush, x, y)
			return
		}
		dy := abs(cy - y)
		applyPaint(g, brush, x, cy+dy)
		applyPaint(g, brush, x, cy-dy)
	case BothAxes:
		if x == cx && y == cy {
			applyPaint(g, brush, x, y)
			return
		}
		dx, dy := abs(cx-x), abs(cy-y)
		applyPaint(g, brush, cx+dx, y)
		applyPaint(g, brush, cx-dx, y)
		applyPaint(g, brush, x, cy+dy)
		applyPaint(g, brush, x, cy-dy)
	default:
		applyPaint(g, brush, x, y)
	}
}

func applyPaint(g *world.Grid, brush, x, y int) {
	if brush <= 1 {
		if g.InBounds(x, y) {
			g.SetSurface(x, y, world.Floor)
		}
		return
	}
	half := brush / 2
	for by := y - half; by < y+half; by++ {
		for bx := x - half; bx < x+half; bx++ {
			if g.InBounds(bx, by) {
				g.SetSurface(bx, by, world.Floor)
			}
		}
	}
}

// carveFloor sets (x, y) to Floor and returns its index, or -1 if it already was Floor
func carveFloor(g *world.Grid, x, y int) int {
	if !g.InBounds(x, y) {
		return -1
	}
	idx := g.Index(x, y)
	if g.Tiles[idx].Surface == world.Floor {
		return -1
	}
	g.Tiles[idx].Surface = world.Floor
	return idx
}

// horizontalTunnel carves row y from x1 to x2 inclusive and returns every
// in-bounds tile of the leg in carve order
func horizontalTunnel(g *world.Grid, x1, x2, y int) []int {
	var corridor []int
	for x := min(x1, x2); x <= max(x1, x2); x++ {
		if idx := carveTile(g, x, y); idx >= 0 {
			corridor = append(corridor, idx)
		}
	}
	return corridor
}

// verticalTunnel carves column x from y1 to y2 inclusive and returns every
// in-bounds tile of the leg in carve order
func verticalTunnel(g *world.Grid, y1, y2, x int) []int {
	var corridor []int
	for y := min(y1, y2); y <= max(y1, y2); y++ {
		if idx := carveTile(g, x, y); idx >= 0 {
			corridor = append(corridor, idx)
		}
	}
	return corridor
}

// carveTile sets (x, y) to Floor and returns its index, or -1 outside the border
func carveTile(g *world.Grid, x, y int) int {
	if !g.InBounds(x, y) {
		return -1
	}
	g.SetSurface(x, y, world.Floor)
	return g.Index(x, y)
}

// drawCorridor walks one step at a time from (x1, y1) to (x2, y2), closing the
// x gap first, and returns the tiles it turned into Floor
func drawCorridor(g *world.Grid, x1, y1, x2, y2 int) []int {
	var corridor []int
	x, y := x1, y1
	for x != x2 || y != y2 {
		switch {
		case x < x2:
			x++
		case x > x2:
			x--
		case y < y2:
			y++
		default:
			y--
		}
		if idx := carveFloor(g, x, y); idx >= 0 {
			corridor = append(corridor, idx)
		}
	}
	return corridor
}

// bresenhamLine returns the points from (x0, y0) to (x1, y1) inclusive
func bresenhamLine(x0, y0, x1, y1 int) []world.Point {
	dx := abs(x1 - x0)
	dy := -abs(y1 - y0)
	sx, sy := 1, 1
	if x0 > x1 {
		sx = -1
	}
	if y0 > y1 {
		sy = -1
	}
	err := dx + dy

	points := []world.Point{{X: x0, Y: y0}}
	for x0 != x1 || y0 != y1 {
		e2 := 2 * err
		if e2 >= dy {
			err += dy
			x0 += sx
		}
		if e2 <= dx {
			err += dx
			y0 += sy
		}
		points = append(points, world.Point{X: x0, Y: y0})
	}
	return points
}

// randomWalkStep moves (x, y) one tile in a random cardinal direction, staying
// within [lo, width-lo] x [lo, height-lo]
func randomWalkStep(rng *rand.Rand, g *world.Grid, lo, x, y int) (int, int) {
	switch rng.Intn(4) {
	case 0:
		if x > lo {
			x--
		}
	case 1:
		if x < g.Width-lo {
			x++
		}
	case 2:
		if y > lo {
			y--
		}
	default:
		if y < g.Height-lo {
			y++
		}
	}
	return x, y
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}

// rangeInt returns a random integer in [lo, hi)
func rangeInt(rng *rand.Rand, lo, hi int) int {
	if hi <= lo {
		return lo
	}
	return lo + rng.Intn(hi-lo)
}

// rollDice returns the sum of n rolls of a die with the given sides
func rollDice(rng *rand.Rand, n, sides int) int {
	total := 0
	for i := 0; i < n; i++ {
		total += rng.Intn(sides) + 1
	}
	return total
}
