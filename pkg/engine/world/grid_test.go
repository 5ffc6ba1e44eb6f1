package world

import "testing"

func TestNewGrid_AllWall(t *testing.T) {
	g := NewGrid(3, 10, 8, "test")
	if len(g.Tiles) != 80 {
		t.Fatalf("expected 80 tiles, got %d", len(g.Tiles))
	}
	if g.CountSurface(Wall) != 80 {
		t.Errorf("expected all tiles to be Wall, got %d walls", g.CountSurface(Wall))
	}
	if g.Depth != 3 || g.Name != "test" {
		t.Errorf("metadata not set: depth=%d name=%q", g.Depth, g.Name)
	}
}

func TestNewGrid_PanicsOnInvalidSize(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("expected panic for zero width")
		}
	}()
	NewGrid(0, 0, 10, "bad")
}

func TestGrid_IndexRoundTrip(t *testing.T) {
	g := NewGrid(1, 13, 7, "test")
	for idx := range g.Tiles {
		p := g.PointOf(idx)
		if g.Index(p.X, p.Y) != idx {
			t.Fatalf("index %d -> %v -> %d", idx, p, g.Index(p.X, p.Y))
		}
	}
}

func TestGrid_InBounds(t *testing.T) {
	g := NewGrid(1, 10, 10, "test")
	tests := []struct {
		x, y int
		want bool
	}{
		{0, 5, false},
		{5, 0, false},
		{9, 5, false},
		{5, 9, false},
		{1, 1, true},
		{8, 8, true},
		{-1, 3, false},
	}
	for _, tt := range tests {
		if got := g.InBounds(tt.x, tt.y); got != tt.want {
			t.Errorf("InBounds(%d,%d) = %v, want %v", tt.x, tt.y, got, tt.want)
		}
	}
}

func TestGrid_AvailableExits(t *testing.T) {
	g := NewGrid(1, 5, 5, "test")
	for y := 1; y < 4; y++ {
		for x := 1; x < 4; x++ {
			g.SetSurface(x, y, Floor)
		}
	}
	g.SetSurface(3, 3, Wall)
	g.PopulateBlocked()

	exits := g.AvailableExits(g.Index(2, 2))
	if len(exits) != 7 {
		t.Fatalf("expected 7 exits around the centre, got %d", len(exits))
	}
	for _, e := range exits {
		p := g.PointOf(e.Index)
		diagonal := p.X != 2 && p.Y != 2
		if diagonal && e.Cost != DiagonalCost {
			t.Errorf("diagonal exit to %v has cost %v", p, e.Cost)
		}
		if !diagonal && e.Cost != OrthogonalCost {
			t.Errorf("orthogonal exit to %v has cost %v", p, e.Cost)
		}
		if e.Index == g.Index(3, 3) {
			t.Error("blocked tile returned as an exit")
		}
	}

	if exits := g.AvailableExits(g.Index(0, 0)); len(exits) != 0 {
		t.Errorf("border tile should have no exits, got %d", len(exits))
	}
}

func TestGrid_PopulateBlocked(t *testing.T) {
	g := NewGrid(1, 6, 6, "test")
	walkable := []Surface{Floor, Road, Grass, ShallowWater, WoodFloor, Bridge, Gravel, Path, UpStairs, DownStairs}
	for _, s := range walkable {
		g.Tiles[g.Index(2, 2)].Surface = s
		g.PopulateBlocked()
		if g.IsBlocked(g.Index(2, 2)) {
			t.Errorf("%s should not block movement", s)
		}
	}
	for _, s := range []Surface{Wall, DeepWater, Stalactite, Stalagmite} {
		g.Tiles[g.Index(2, 2)].Surface = s
		g.PopulateBlocked()
		if !g.IsBlocked(g.Index(2, 2)) {
			t.Errorf("%s should block movement", s)
		}
	}
}

func TestGrid_PathingDistance(t *testing.T) {
	g := NewGrid(1, 10, 10, "test")
	if d := g.PathingDistance(g.Index(1, 1), g.Index(4, 5)); d != 25 {
		t.Errorf("expected squared distance 25, got %v", d)
	}
}

func TestGrid_CloneIsIndependent(t *testing.T) {
	g := NewGrid(1, 5, 5, "test")
	g.Rooms = []Rect{NewRect(1, 1, 2, 2)}
	c := g.RevealedClone()
	c.SetSurface(2, 2, Floor)
	c.Rooms[0].X1 = 3

	if g.Surface(2, 2) != Wall {
		t.Error("clone shares tiles with the original")
	}
	if g.Rooms[0].X1 != 1 {
		t.Error("clone shares rooms with the original")
	}
	if !c.Tiles[0].Revealed || g.Tiles[0].Revealed {
		t.Error("RevealedClone should reveal only the copy")
	}
}

func TestGrid_ValidateAndSealBorder(t *testing.T) {
	g := NewGrid(1, 6, 6, "test")
	if err := g.Validate(); err != nil {
		t.Fatalf("fresh grid should be valid: %v", err)
	}
	g.SetSurface(0, 3, Grass)
	if err := g.Validate(); err == nil {
		t.Error("expected walkable border to be rejected")
	}
	g.SealBorder()
	if err := g.Validate(); err != nil {
		t.Errorf("sealed grid should be valid: %v", err)
	}
}
