package world

// Point is a tile coordinate
type Point struct {
	X, Y int
}

// Rect is an axis-aligned rectangle. X2 and Y2 are one past the last column
// and row when the rectangle is built with NewRect.
type Rect struct {
	X1, Y1, X2, Y2 int
}

// NewRect creates a rectangle from a corner and a size
func NewRect(x, y, width, height int) Rect {
	return Rect{X1: x, Y1: y, X2: x + width, Y2: y + height}
}

// Width returns the horizontal extent
func (r Rect) Width() int {
	return r.X2 - r.X1
}

// Height returns the vertical extent
func (r Rect) Height() int {
	return r.Y2 - r.Y1
}

// Area returns Width * Height
func (r Rect) Area() int {
	return r.Width() * r.Height()
}

// Center returns the integer midpoint
func (r Rect) Center() Point {
	return Point{X: (r.X1 + r.X2) / 2, Y: (r.Y1 + r.Y2) / 2}
}

// Intersects returns true if the rectangles overlap or touch
func (r Rect) Intersects(other Rect) bool {
	return r.X1 <= other.X2 && r.X2 >= other.X1 && r.Y1 <= other.Y2 && r.Y2 >= other.Y1
}

// Contains returns true if (x, y) lies inside the half-open rectangle
func (r Rect) Contains(x, y int) bool {
	return x >= r.X1 && x < r.X2 && y >= r.Y1 && y < r.Y2
}
