package world

import (
	"fmt"

	"deepdelve/pkg/engine/navigation"
)

// Grid is a dense row-major array of tiles for one dungeon level.
// Index of (x, y) is y*Width + x. The outermost one-tile border is never
// walkable, so neighbour arithmetic on in-bounds tiles cannot leave the array.
type Grid struct {
	Width    int
	Height   int
	Depth    int
	Name     string
	Tiles    []Tile
	Rooms    []Rect
	Outdoors bool
}

// NewGrid allocates a grid filled with Wall tiles
func NewGrid(depth, width, height int, name string) *Grid {
	if width <= 0 || height <= 0 {
		panic(fmt.Sprintf("Grid dimensions must be positive, got %dx%d", width, height))
	}

	tiles := make([]Tile, width*height)
	for i := range tiles {
		tiles[i] = wallTile()
	}

	return &Grid{
		Width:  width,
		Height: height,
		Depth:  depth,
		Name:   name,
		Tiles:  tiles,
	}
}

// Index converts a coordinate to a tile index
func (g *Grid) Index(x, y int) int {
	return y*g.Width + x
}

// PointOf converts a tile index to a coordinate
func (g *Grid) PointOf(idx int) Point {
	return Point{X: idx % g.Width, Y: idx / g.Width}
}

// Contains returns true if (x, y) addresses a tile of the array, border included
func (g *Grid) Contains(x, y int) bool {
	return x >= 0 && x < g.Width && y >= 0 && y < g.Height
}

// InBounds returns true if (x, y) is strictly inside the permanent border
func (g *Grid) InBounds(x, y int) bool {
	return x > 0 && x < g.Width-1 && y > 0 && y < g.Height-1
}

// Surface returns the surface at (x, y)
func (g *Grid) Surface(x, y int) Surface {
	return g.Tiles[g.Index(x, y)].Surface
}

// SetSurface sets the surface at (x, y)
func (g *Grid) SetSurface(x, y int, s Surface) {
	g.Tiles[g.Index(x, y)].Surface = s
}

// PopulateBlocked derives movement and sight blocking from every tile's surface.
// It must be re-run after surfaces change and before any pathfinding query.
func (g *Grid) PopulateBlocked() {
	for i := range g.Tiles {
		g.Tiles[i].BlockMovement = !g.Tiles[i].Surface.IsWalkable()
		g.Tiles[i].BlockVisibility = g.Tiles[i].Surface.IsOpaque()
	}
}

// IsBlocked returns the derived block-movement flag of a tile
func (g *Grid) IsBlocked(idx int) bool {
	return g.Tiles[idx].BlockMovement
}

// AvailableExits lists the unblocked in-bounds neighbours of idx with their step cost
func (g *Grid) AvailableExits(idx int) []navigation.Exit {
	return g.exits(idx, g.IsBlocked)
}

// PathingDistance returns the squared Euclidean distance between two tiles
func (g *Grid) PathingDistance(a, b int) float64 {
	pa, pb := g.PointOf(a), g.PointOf(b)
	dx := float64(pa.X - pb.X)
	dy := float64(pa.Y - pb.Y)
	return dx*dx + dy*dy
}

func (g *Grid) exits(idx int, blocked func(int) bool) []navigation.Exit {
	p := g.PointOf(idx)
	if !g.InBounds(p.X, p.Y) {
		return nil
	}

	exits := make([]navigation.Exit, 0, 8)
	for _, d := range AllDirections() {
		dx, dy := d.Delta()
		nx, ny := p.X+dx, p.Y+dy
		if !g.InBounds(nx, ny) {
			continue
		}
		n := g.Index(nx, ny)
		if blocked(n) {
			continue
		}
		exits = append(exits, navigation.Exit{Index: n, Cost: d.Cost()})
	}
	return exits
}

// CountSurface returns the number of tiles with surface s
func (g *Grid) CountSurface(s Surface) int {
	n := 0
	for i := range g.Tiles {
		if g.Tiles[i].Surface == s {
			n++
		}
	}
	return n
}

// IndicesOf returns the indices of every tile with surface s in ascending order
func (g *Grid) IndicesOf(s Surface) []int {
	var out []int
	for i := range g.Tiles {
		if g.Tiles[i].Surface == s {
			out = append(out, i)
		}
	}
	return out
}

// Clone returns a deep copy of the grid
func (g *Grid) Clone() *Grid {
	c := *g
	c.Tiles = make([]Tile, len(g.Tiles))
	copy(c.Tiles, g.Tiles)
	if g.Rooms != nil {
		c.Rooms = make([]Rect, len(g.Rooms))
		copy(c.Rooms, g.Rooms)
	}
	return &c
}

// RevealedClone returns a deep copy with every tile revealed
func (g *Grid) RevealedClone() *Grid {
	c := g.Clone()
	for i := range c.Tiles {
		c.Tiles[i].Revealed = true
	}
	return c
}

// SealBorder turns every walkable tile on the outer border into Wall
func (g *Grid) SealBorder() {
	for x := 0; x < g.Width; x++ {
		g.sealTile(x, 0)
		g.sealTile(x, g.Height-1)
	}
	for y := 0; y < g.Height; y++ {
		g.sealTile(0, y)
		g.sealTile(g.Width-1, y)
	}
}

func (g *Grid) sealTile(x, y int) {
	idx := g.Index(x, y)
	if g.Tiles[idx].Surface.IsWalkable() {
		g.Tiles[idx].Surface = Wall
	}
}

// Validate checks the border invariant and returns an error naming the first offending tile
func (g *Grid) Validate() error {
	if len(g.Tiles) != g.Width*g.Height {
		return fmt.Errorf("grid has %d tiles, want %d", len(g.Tiles), g.Width*g.Height)
	}
	for idx := range g.Tiles {
		p := g.PointOf(idx)
		if g.InBounds(p.X, p.Y) {
			continue
		}
		if g.Tiles[idx].Surface.IsWalkable() {
			return fmt.Errorf("border tile (%d,%d) is walkable %s", p.X, p.Y, g.Tiles[idx].Surface)
		}
	}
	return nil
}
