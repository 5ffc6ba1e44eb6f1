package generator

import (
	"math/rand"

	"deepdelve/pkg/engine/world"
)

// minInteriorRoom is the size at which BSPInterior stops splitting
const minInteriorRoom = 8

// BSPInterior partitions the whole map into rooms separated by single walls,
// like the interior of a building
type BSPInterior struct{}

// NewBSPInterior returns an interior partitioner
func NewBSPInterior() *BSPInterior {
	return &BSPInterior{}
}

// BuildInitial splits, carves and connects the rooms
func (b *BSPInterior) BuildInitial(rng *rand.Rand, data *BuildData) {
	g := data.Grid
	rooms := splitInterior(rng, world.NewRect(1, 1, g.Width-2, g.Height-2))

	for _, r := range rooms {
		for y := r.Y1; y < r.Y2; y++ {
			for x := r.X1; x < r.X2; x++ {
				if g.InBounds(x, y) {
					g.SetSurface(x, y, world.Floor)
				}
			}
		}
		data.TakeSnapshot()
	}

	corridors := [][]int{}
	for i := 0; i+1 < len(rooms); i++ {
		a, b := rooms[i], rooms[i+1]
		startX := a.X1 + rng.Intn(max(a.Width(), 1))
		startY := a.Y1 + rng.Intn(max(a.Height(), 1))
		endX := b.X1 + rng.Intn(max(b.Width(), 1))
		endY := b.Y1 + rng.Intn(max(b.Height(), 1))
		if c := drawCorridor(g, startX, startY, endX, endY); len(c) > 0 {
			corridors = append(corridors, c)
		}
		data.TakeSnapshot()
	}

	data.Rooms = rooms
	data.Corridors = corridors
}

// splitInterior bisects root with an explicit stack. Each split leaves a one
// tile wall between the halves; halves no larger than minInteriorRoom are leaves.
func splitInterior(rng *rand.Rand, root world.Rect) []world.Rect {
	var leaves []world.Rect
	stack := []world.Rect{root}

	for len(stack) > 0 {
		r := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		var halves [2]world.Rect
		var half int
		if rng.Intn(2) == 0 {
			half = r.Width() / 2
			halves[0] = world.NewRect(r.X1, r.Y1, half-1, r.Height())
			halves[1] = world.NewRect(r.X1+half, r.Y1, half, r.Height())
		} else {
			half = r.Height() / 2
			halves[0] = world.NewRect(r.X1, r.Y1, r.Width(), half-1)
			halves[1] = world.NewRect(r.X1, r.Y1+half, r.Width(), half)
		}

		// Push in reverse so the first half is processed next
		for i := 1; i >= 0; i-- {
			if half > minInteriorRoom {
				stack = append(stack, halves[i])
			}
		}
		if half <= minInteriorRoom {
			for _, h := range halves {
				if h.Width() > 0 && h.Height() > 0 {
					leaves = append(leaves, h)
				}
			}
		}
	}
	return leaves
}
