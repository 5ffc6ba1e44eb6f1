package generator

import (
	"math/rand"
	"testing"

	"deepdelve/pkg/engine/navigation"
	"deepdelve/pkg/engine/world"
)

func newRNG(seed int64) *rand.Rand {
	return rand.New(rand.NewSource(seed))
}

// newData returns a fresh all-Wall context
func newData(depth, width, height int) *BuildData {
	return &NewBuilderChain(depth, width, height, "test").Data
}

// carve floors the half-open rectangle
func carve(g *world.Grid, r world.Rect) {
	for y := r.Y1; y < r.Y2; y++ {
		for x := r.X1; x < r.X2; x++ {
			g.SetSurface(x, y, world.Floor)
		}
	}
}

// openData returns a context whose interior is entirely Floor
func openData(depth, width, height int) *BuildData {
	data := newData(depth, width, height)
	carve(data.Grid, world.NewRect(1, 1, width-2, height-2))
	return data
}

// distancesFrom floods the grid from idx
func distancesFrom(g *world.Grid, idx int) *navigation.DistanceField {
	g.PopulateBlocked()
	return navigation.NewDistanceField(g.Width, g.Height, []int{idx}, g, reachabilityCutoff)
}

// expectPanic fails the test unless fn panics
func expectPanic(t *testing.T, what string, fn func()) {
	t.Helper()
	defer func() {
		if recover() == nil {
			t.Errorf("expected panic: %s", what)
		}
	}()
	fn()
}

// assertSealed fails when the border invariant is broken
func assertSealed(t *testing.T, g *world.Grid) {
	t.Helper()
	if err := g.Validate(); err != nil {
		t.Errorf("grid %q: %v", g.Name, err)
	}
}

// spawnsNamed counts manifest entries with the name
func spawnsNamed(data *BuildData, name string) int {
	n := 0
	for _, s := range data.Spawns {
		if s.Name == name {
			n++
		}
	}
	return n
}
