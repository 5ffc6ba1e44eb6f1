package generator

import (
	"math/rand"

	"github.com/zyedidia/generic/mapset"

	"deepdelve/pkg/engine/world"
)

// DoglegCorridors joins consecutive rooms with L-shaped tunnels, randomly
// horizontal or vertical first. Each leg is its own corridor.
type DoglegCorridors struct{}

// BuildMeta carves the tunnels
func (DoglegCorridors) BuildMeta(rng *rand.Rand, data *BuildData) {
	data.requireRooms("DoglegCorridors")
	g := data.Grid
	corridors := [][]int{}
	for i := 1; i < len(data.Rooms); i++ {
		a, b := data.Rooms[i-1].Center(), data.Rooms[i].Center()
		var first, second []int
		if rng.Intn(2) == 0 {
			first = horizontalTunnel(g, a.X, b.X, a.Y)
			second = verticalTunnel(g, a.Y, b.Y, b.X)
		} else {
			first = verticalTunnel(g, a.Y, b.Y, a.X)
			second = horizontalTunnel(g, a.X, b.X, b.Y)
		}
		corridors = append(corridors, first, second)
		data.TakeSnapshot()
	}
	data.Corridors = corridors
}

// BSPCorridors joins consecutive rooms between random Floor tiles of each room
type BSPCorridors struct{}

// BuildMeta carves the corridors
func (BSPCorridors) BuildMeta(rng *rand.Rand, data *BuildData) {
	data.requireRooms("BSPCorridors")
	g := data.Grid
	corridors := [][]int{}
	for i := 1; i < len(data.Rooms); i++ {
		a, b := data.Rooms[i-1], data.Rooms[i]
		start := floorPointIn(rng, g, a)
		end := floorPointIn(rng, g, b)
		corridors = append(corridors, drawCorridor(g, start.X, start.Y, end.X, end.Y))
		data.TakeSnapshot()
	}
	data.Corridors = corridors
}

// floorPointIn picks a random Floor tile inside r, falling back to its centre
// when the room has none
func floorPointIn(rng *rand.Rand, g *world.Grid, r world.Rect) world.Point {
	var floor []world.Point
	for y := r.Y1; y <= r.Y2; y++ {
		for x := r.X1; x <= r.X2; x++ {
			if g.InBounds(x, y) && g.Surface(x, y) == world.Floor {
				floor = append(floor, world.Point{X: x, Y: y})
			}
		}
	}
	if len(floor) == 0 {
		return r.Center()
	}
	return floor[rng.Intn(len(floor))]
}

// NearestCorridors joins each room to its closest not yet connected room with
// a taxicab carve
type NearestCorridors struct{}

// BuildMeta carves the corridors
func (NearestCorridors) BuildMeta(_ *rand.Rand, data *BuildData) {
	data.requireRooms("NearestCorridors")
	g := data.Grid
	data.Corridors = connectNearest(data, func(a, b world.Point) []int {
		return drawCorridor(g, a.X, a.Y, b.X, b.Y)
	})
}

// StraightLineCorridors joins each room to its closest not yet connected room
// with a Bresenham line
type StraightLineCorridors struct{}

// BuildMeta carves the corridors
func (StraightLineCorridors) BuildMeta(_ *rand.Rand, data *BuildData) {
	data.requireRooms("StraightLineCorridors")
	g := data.Grid
	data.Corridors = connectNearest(data, func(a, b world.Point) []int {
		var corridor []int
		for _, p := range bresenhamLine(a.X, a.Y, b.X, b.Y) {
			if idx := carveFloor(g, p.X, p.Y); idx >= 0 {
				corridor = append(corridor, idx)
			}
		}
		return corridor
	})
}

// connectNearest runs carve from each room centre to the nearest room centre
// not yet connected, by squared distance
func connectNearest(data *BuildData, carve func(a, b world.Point) []int) [][]int {
	connected := mapset.New[int]()
	corridors := [][]int{}
	for i, room := range data.Rooms {
		from := room.Center()
		best, bestDist := -1, 0
		for j, other := range data.Rooms {
			if i == j || connected.Has(j) {
				continue
			}
			d := Pythagoras.Distance(from, other.Center())
			if best < 0 || d < bestDist {
				best, bestDist = j, d
			}
		}
		if best >= 0 {
			corridors = append(corridors, carve(from, data.Rooms[best].Center()))
			data.TakeSnapshot()
		}
		connected.Put(i)
	}
	return corridors
}
