package world

import (
	"testing"

	"deepdelve/pkg/engine/navigation"
)

func roomGrid() *Grid {
	g := NewGrid(1, 8, 8, "test")
	for y := 1; y < 7; y++ {
		for x := 1; x < 7; x++ {
			g.SetSurface(x, y, Floor)
		}
	}
	g.PopulateBlocked()
	return g
}

func TestSpatialIndex_ClearBlocksEverything(t *testing.T) {
	s := NewSpatialIndex(4)
	s.IndexEntity(7, 1, false)
	s.Clear()
	for i := 0; i < s.Size(); i++ {
		if !s.IsBlocked(i) {
			t.Errorf("tile %d should be blocked after Clear", i)
		}
		if len(s.Content(i)) != 0 {
			t.Errorf("tile %d should be empty after Clear", i)
		}
	}
}

func TestSpatialIndex_PopulateAndIndex(t *testing.T) {
	g := roomGrid()
	s := NewSpatialIndex(len(g.Tiles))
	s.Clear()
	s.PopulateBlockedFromGrid(g)

	floor := g.Index(3, 3)
	if s.IsBlocked(floor) {
		t.Error("floor tile should be open")
	}
	if !s.IsBlocked(0) {
		t.Error("wall tile should be blocked")
	}

	s.IndexEntity(1, floor, false)
	if s.IsBlocked(floor) {
		t.Error("non-blocking occupant should not block")
	}
	s.IndexEntity(2, floor, true)
	if !s.IsBlocked(floor) {
		t.Error("blocking occupant should block")
	}
	if got := s.Content(floor); len(got) != 2 || got[0] != 1 || got[1] != 2 {
		t.Errorf("unexpected content %v", got)
	}
}

func TestSpatialIndex_MoveEntity(t *testing.T) {
	g := roomGrid()
	s := NewSpatialIndex(len(g.Tiles))
	s.Rebuild(g, []Occupant{{Entity: 5, Index: g.Index(2, 2), BlocksTile: true}})

	from, to := g.Index(2, 2), g.Index(3, 2)
	s.MoveEntity(5, from, to)

	if s.IsBlocked(from) {
		t.Error("source should be unblocked once empty")
	}
	if len(s.Content(from)) != 0 {
		t.Error("source should be empty")
	}
	if !s.IsBlocked(to) || len(s.Content(to)) != 1 {
		t.Error("destination should hold the entity and be blocked")
	}
}

func TestSpatialIndex_MoveEntityKeepsSharedSourceBlocked(t *testing.T) {
	g := roomGrid()
	s := NewSpatialIndex(len(g.Tiles))
	from := g.Index(2, 2)
	s.Rebuild(g, []Occupant{
		{Entity: 1, Index: from, BlocksTile: true},
		{Entity: 2, Index: from, BlocksTile: true},
	})

	s.MoveEntity(1, from, g.Index(2, 3))
	if !s.IsBlocked(from) {
		t.Error("source still holding an occupant should stay blocked")
	}
}

func TestOccupancyGraph_SkipsOccupiedTiles(t *testing.T) {
	g := roomGrid()
	s := NewSpatialIndex(len(g.Tiles))
	occupied := g.Index(3, 2)
	s.Rebuild(g, []Occupant{{Entity: 9, Index: occupied, BlocksTile: true}})

	var graph navigation.CostGraph = OccupancyGraph{Grid: g, Index: s}
	for _, e := range graph.AvailableExits(g.Index(2, 2)) {
		if e.Index == occupied {
			t.Error("occupied tile returned as an exit")
		}
	}
	if len(g.AvailableExits(g.Index(2, 2))) == len(graph.AvailableExits(g.Index(2, 2))) {
		t.Error("terrain-only exits should include the occupied tile")
	}
}
