package generator

import (
	"math/rand"

	"deepdelve/pkg/engine/world"
)

// BSPDungeon places non-overlapping rooms by sampling sub-rectangles of a
// quartered root rectangle. It only records rooms; RoomDrawer carves them.
type BSPDungeon struct {
	Attempts int
}

// NewBSPDungeon returns the standard 240-attempt room placer
func NewBSPDungeon() *BSPDungeon {
	return &BSPDungeon{Attempts: 240}
}

// BuildInitial fills data.Rooms
func (b *BSPDungeon) BuildInitial(rng *rand.Rand, data *BuildData) {
	g := data.Grid
	rooms := []world.Rect{}
	root := world.NewRect(2, 2, g.Width-5, g.Height-5)
	rects := quarter([]world.Rect{root}, root)

	for i := 0; i < b.Attempts; i++ {
		parent := rects[rng.Intn(len(rects))]
		candidate := randomSubRect(rng, parent)
		if !roomFits(g, rooms, candidate) {
			continue
		}
		rooms = append(rooms, candidate)
		rects = quarter(rects, parent)
		data.Rooms = rooms
		data.TakeSnapshot()
	}

	data.Rooms = rooms
}

// quarter appends the four quadrants of r to rects
func quarter(rects []world.Rect, r world.Rect) []world.Rect {
	halfW := max(r.Width()/2, 1)
	halfH := max(r.Height()/2, 1)
	return append(rects,
		world.NewRect(r.X1, r.Y1, halfW, halfH),
		world.NewRect(r.X1, r.Y1+halfH, halfW, halfH),
		world.NewRect(r.X1+halfW, r.Y1, halfW, halfH),
		world.NewRect(r.X1+halfW, r.Y1+halfH, halfW, halfH),
	)
}

// randomSubRect picks a room-sized rectangle near the corner of r
func randomSubRect(rng *rand.Rand, r world.Rect) world.Rect {
	w := max(3, rollDice(rng, 1, max(min(r.Width(), 10), 1))-1) + 1
	h := max(3, rollDice(rng, 1, max(min(r.Height(), 10), 1))-1) + 1
	x := r.X1 + rollDice(rng, 1, 6) - 1
	y := r.Y1 + rollDice(rng, 1, 6) - 1
	return world.NewRect(x, y, w, h)
}

// roomFits requires a 2-tile Wall margin inside the border and no overlap with rooms
func roomFits(g *world.Grid, rooms []world.Rect, r world.Rect) bool {
	for _, other := range rooms {
		if other.Intersects(r) {
			return false
		}
	}
	for y := r.Y1 - 2; y <= r.Y2+2; y++ {
		for x := r.X1 - 2; x <= r.X2+2; x++ {
			if !g.InBounds(x, y) || g.Surface(x, y) != world.Wall {
				return false
			}
		}
	}
	return true
}
