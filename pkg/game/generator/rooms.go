package generator

import (
	"math/rand"
	"sort"

	"deepdelve/pkg/engine/world"
)

// RoomSort selects the ordering applied by RoomSorter
type RoomSort int

// Room orderings
const (
	LeftMost RoomSort = iota
	RightMost
	TopMost
	BottomMost
	Central
)

// RoomSorter stable-sorts the room list, which decides corridor order and
// which rooms count as first and last
type RoomSorter struct {
	Sort RoomSort
}

// NewRoomSorter returns a sorter for the ordering
func NewRoomSorter(s RoomSort) *RoomSorter {
	return &RoomSorter{Sort: s}
}

// BuildMeta sorts data.Rooms
func (r *RoomSorter) BuildMeta(_ *rand.Rand, data *BuildData) {
	data.requireRooms("RoomSorter")
	rooms := data.Rooms
	var less func(i, j int) bool
	switch r.Sort {
	case RightMost:
		less = func(i, j int) bool { return rooms[i].X2 > rooms[j].X2 }
	case TopMost:
		less = func(i, j int) bool { return rooms[i].Y1 < rooms[j].Y1 }
	case BottomMost:
		less = func(i, j int) bool { return rooms[i].Y2 > rooms[j].Y2 }
	case Central:
		mid := world.Point{X: data.Grid.Width / 2, Y: data.Grid.Height / 2}
		less = func(i, j int) bool {
			return Pythagoras.Distance(rooms[i].Center(), mid) < Pythagoras.Distance(rooms[j].Center(), mid)
		}
	default:
		less = func(i, j int) bool { return rooms[i].X1 < rooms[j].X1 }
	}
	sort.SliceStable(rooms, less)
}

// RoomDrawer carves every room as a filled rectangle, or one time in four as
// an inscribed circle
type RoomDrawer struct{}

// BuildMeta carves the rooms
func (RoomDrawer) BuildMeta(rng *rand.Rand, data *BuildData) {
	data.requireRooms("RoomDrawer")
	g := data.Grid
	for _, r := range data.Rooms {
		if rng.Intn(4) == 0 {
			drawCircle(g, r)
		} else {
			drawRectangle(g, r)
		}
		data.TakeSnapshot()
	}
}

func drawRectangle(g *world.Grid, r world.Rect) {
	for y := r.Y1 + 1; y <= r.Y2; y++ {
		for x := r.X1 + 1; x <= r.X2; x++ {
			if g.InBounds(x, y) {
				g.SetSurface(x, y, world.Floor)
			}
		}
	}
}

func drawCircle(g *world.Grid, r world.Rect) {
	radius := float64(min(r.Width(), r.Height())) / 2.0
	c := r.Center()
	for y := r.Y1; y <= r.Y2; y++ {
		for x := r.X1; x <= r.X2; x++ {
			dx, dy := float64(x-c.X), float64(y-c.Y)
			if g.InBounds(x, y) && dx*dx+dy*dy <= radius*radius {
				g.SetSurface(x, y, world.Floor)
			}
		}
	}
}

// RoomExploder roughens room edges with short random walks from each centre
type RoomExploder struct{}

// BuildMeta digs the walks
func (RoomExploder) BuildMeta(rng *rand.Rand, data *BuildData) {
	data.requireRooms("RoomExploder")
	g := data.Grid
	for _, r := range data.Rooms {
		c := r.Center()
		diggers := rangeInt(rng, -3, 16)
		for i := 0; i < diggers; i++ {
			x, y := c.X, c.Y
			for life := 20; life > 0; life-- {
				paint(g, NoSymmetry, 1, x, y)
				x, y = randomWalkStep(rng, g, 2, x, y)
			}
		}
		data.TakeSnapshot()
	}
}

// RoomCornerRounder re-walls room corners that have exactly two orthogonal wall neighbours
type RoomCornerRounder struct{}

// BuildMeta rounds the corners
func (RoomCornerRounder) BuildMeta(_ *rand.Rand, data *BuildData) {
	data.requireRooms("RoomCornerRounder")
	g := data.Grid
	for _, r := range data.Rooms {
		for _, p := range []world.Point{
			{X: r.X1 + 1, Y: r.Y1 + 1},
			{X: r.X2, Y: r.Y1 + 1},
			{X: r.X1 + 1, Y: r.Y2},
			{X: r.X2, Y: r.Y2},
		} {
			if g.InBounds(p.X, p.Y) && orthogonalWalls(g, p.X, p.Y) == 2 {
				g.SetSurface(p.X, p.Y, world.Wall)
			}
		}
		data.TakeSnapshot()
	}
}

func orthogonalWalls(g *world.Grid, x, y int) int {
	n := 0
	for _, d := range world.CardinalDirections() {
		dx, dy := d.Delta()
		if g.Contains(x+dx, y+dy) && g.Surface(x+dx, y+dy) == world.Wall {
			n++
		}
	}
	return n
}
