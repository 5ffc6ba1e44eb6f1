package generator

import (
	"math/rand"

	"deepdelve/pkg/engine/world"
)

// SimpleRooms scatters rectangular rooms by rejection sampling. It only records
// rooms; RoomDrawer carves them.
type SimpleRooms struct {
	MaxRooms int
	MinSize  int
	MaxSize  int
}

// NewSimpleRooms returns up to 30 rooms of 6 to 9 tiles a side
func NewSimpleRooms() *SimpleRooms {
	return &SimpleRooms{MaxRooms: 30, MinSize: 6, MaxSize: 10}
}

// BuildInitial fills data.Rooms
func (s *SimpleRooms) BuildInitial(rng *rand.Rand, data *BuildData) {
	g := data.Grid
	rooms := []world.Rect{}

	for i := 0; i < s.MaxRooms; i++ {
		w := rangeInt(rng, s.MinSize, s.MaxSize)
		h := rangeInt(rng, s.MinSize, s.MaxSize)
		x := rangeInt(rng, 1, g.Width-w-1)
		y := rangeInt(rng, 1, g.Height-h-1)
		candidate := world.NewRect(x, y, w, h)

		ok := true
		for _, r := range rooms {
			if r.Intersects(candidate) {
				ok = false
				break
			}
		}
		if ok {
			rooms = append(rooms, candidate)
		}
	}

	data.Rooms = rooms
}
