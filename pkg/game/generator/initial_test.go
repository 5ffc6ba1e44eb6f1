package generator

import (
	"testing"

	"deepdelve/pkg/engine/world"
)

func TestInitialStages_SealedWithFloor(t *testing.T) {
	stages := []struct {
		name  string
		stage InitialStage
	}{
		{"cellular automata", NewCellularAutomata()},
		{"drunkard open area", DrunkardOpenArea()},
		{"drunkard open halls", DrunkardOpenHalls()},
		{"drunkard winding", DrunkardWindingPassages()},
		{"drunkard fat", DrunkardFatPassages()},
		{"drunkard symmetry", DrunkardFearfulSymmetry()},
		{"dla inwards", DLAWalkInwards()},
		{"dla outwards", DLAWalkOutwards()},
		{"dla central", DLACentralAttractor()},
		{"dla insectoid", DLAInsectoid()},
		{"dla erosion", DLAHeavyErosion()},
		{"maze", NewMaze()},
		{"voronoi pythagoras", VoronoiPythagoras()},
		{"voronoi manhattan", VoronoiManhattan()},
		{"voronoi chebyshev", VoronoiChebyshev()},
		{"bsp interior", NewBSPInterior()},
	}

	for _, tt := range stages {
		t.Run(tt.name, func(t *testing.T) {
			data := newData(1, 60, 40)
			tt.stage.BuildInitial(newRNG(11), data)
			if data.Grid.CountSurface(world.Floor) == 0 {
				t.Error("expected some floor")
			}
			assertSealed(t, data.Grid)
		})
	}
}

func TestBSPDungeon_RoomsDoNotIntersect(t *testing.T) {
	data := newData(1, 80, 50)
	NewBSPDungeon().BuildInitial(newRNG(3), data)

	if len(data.Rooms) == 0 {
		t.Fatal("expected rooms")
	}
	for i, a := range data.Rooms {
		if a.X1 < 1 || a.Y1 < 1 || a.X2 > 78 || a.Y2 > 48 {
			t.Errorf("room %d %+v too close to the edge", i, a)
		}
		for j, b := range data.Rooms {
			if i != j && a.Intersects(b) {
				t.Errorf("rooms %d and %d intersect", i, j)
			}
		}
	}
	// rooms only, nothing carved yet
	if n := data.Grid.CountSurface(world.Floor); n != 0 {
		t.Errorf("expected no floor before RoomDrawer, got %d", n)
	}
}

func TestSimpleRooms_RoomsDoNotIntersect(t *testing.T) {
	data := newData(1, 80, 50)
	NewSimpleRooms().BuildInitial(newRNG(8), data)

	if len(data.Rooms) == 0 {
		t.Fatal("expected rooms")
	}
	for i, a := range data.Rooms {
		for j := i + 1; j < len(data.Rooms); j++ {
			if a.Intersects(data.Rooms[j]) {
				t.Errorf("rooms %d and %d intersect", i, j)
			}
		}
	}
}

func TestBSPInterior_RoomsAndCorridors(t *testing.T) {
	data := newData(1, 60, 40)
	NewBSPInterior().BuildInitial(newRNG(4), data)

	if len(data.Rooms) < 2 {
		t.Fatalf("expected several rooms, got %d", len(data.Rooms))
	}
	if len(data.Corridors) == 0 {
		t.Error("expected corridors between rooms")
	}
	for i, r := range data.Rooms {
		if r.Width() <= 0 || r.Height() <= 0 {
			t.Errorf("room %d is empty: %+v", i, r)
		}
		c := r.Center()
		if data.Grid.Surface(c.X, c.Y) != world.Floor {
			t.Errorf("room %d centre is not carved", i)
		}
	}
}

func TestMaze_FullyConnected(t *testing.T) {
	data := newData(1, 41, 31)
	NewMaze().BuildInitial(newRNG(9), data)
	g := data.Grid

	floors := g.IndicesOf(world.Floor)
	if len(floors) == 0 {
		t.Fatal("expected maze corridors")
	}
	df := distancesFrom(g, floors[0])
	for _, idx := range floors {
		if !df.Reachable(idx) {
			t.Fatalf("maze cell %v is cut off", g.PointOf(idx))
		}
	}
}

func TestPaint_HorizontalMirrors(t *testing.T) {
	g := world.NewGrid(1, 61, 41, "test")
	for _, x := range []int{5, 17, 29} {
		paint(g, Horizontal, 1, x, 10)
	}
	for x := 1; x < g.Width/2; x++ {
		mirror := g.Width - 1 - x
		if g.Surface(x, 10) != g.Surface(mirror, 10) {
			t.Errorf("(%d,10) and (%d,10) differ", x, mirror)
		}
	}
	if g.CountSurface(world.Floor) != 6 {
		t.Errorf("expected 6 floor tiles, got %d", g.CountSurface(world.Floor))
	}
}

func TestVoronoi_MetricDistances(t *testing.T) {
	a, b := world.Point{X: 0, Y: 0}, world.Point{X: 3, Y: 4}
	tests := []struct {
		metric DistanceMetric
		want   int
	}{
		{Pythagoras, 25},
		{Manhattan, 7},
		{Chebyshev, 4},
	}
	for _, tt := range tests {
		if got := tt.metric.Distance(a, b); got != tt.want {
			t.Errorf("metric %d: got %d, want %d", tt.metric, got, tt.want)
		}
	}
}

func TestTunnels_RecordWholeLeg(t *testing.T) {
	data := newData(1, 20, 12)
	g := data.Grid
	carve(g, world.NewRect(4, 5, 4, 1))

	leg := horizontalTunnel(g, 10, 2, 5)
	if len(leg) != 9 {
		t.Fatalf("expected 9 tiles, got %d", len(leg))
	}
	for i, idx := range leg {
		if p := g.PointOf(idx); p != (world.Point{X: 2 + i, Y: 5}) {
			t.Errorf("tile %d at %v", i, p)
		}
		if g.Tiles[idx].Surface != world.Floor {
			t.Errorf("tile %d not carved", i)
		}
	}

	carve(g, world.NewRect(15, 3, 1, 2))
	down := verticalTunnel(g, 9, 3, 15)
	if len(down) != 7 || down[0] != g.Index(15, 3) || down[6] != g.Index(15, 9) {
		t.Errorf("vertical leg %v", down)
	}

	if edge := horizontalTunnel(g, 0, 3, 1); len(edge) != 3 {
		t.Errorf("expected the border tile skipped, got %d tiles", len(edge))
	}
	assertSealed(t, g)
}

func TestVoronoi_SmallMapKeepsOpenCells(t *testing.T) {
	stages := []*VoronoiCells{VoronoiPythagoras(), VoronoiManhattan(), VoronoiChebyshev()}
	for _, stage := range stages {
		for seed := int64(1); seed <= 5; seed++ {
			data := newData(5, 20, 20)
			stage.BuildInitial(newRNG(seed), data)

			if n := data.Grid.CountSurface(world.Floor); n < 18*18/3 {
				t.Errorf("metric %d seed %d: only %d floor tiles", stage.Metric, seed, n)
			}
			assertSealed(t, data.Grid)
		}
	}
}
