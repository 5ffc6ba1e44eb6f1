package spawns

import (
	"math/rand"
	"os"
	"path/filepath"
	"testing"
)

func TestDefault_Parses(t *testing.T) {
	c := Default()
	if len(c.Entries) == 0 {
		t.Fatal("embedded table has no entries")
	}
}

func TestForDepth_FiltersAndWeights(t *testing.T) {
	c := &Catalog{Entries: []Entry{
		{Name: "Rat", Weight: 5, MinDepth: 0, MaxDepth: 1},
		{Name: "Orc", Weight: 1, MinDepth: 0, MaxDepth: 10, AddMapDepthToWeight: true},
		{Name: "Dragon", Weight: 1, MinDepth: 8, MaxDepth: 10},
	}}

	shallow := c.ForDepth(1)
	if shallow.Len() != 2 {
		t.Errorf("expected 2 entries at depth 1, got %d", shallow.Len())
	}
	if shallow.total != 7 {
		t.Errorf("expected total weight 7 at depth 1, got %d", shallow.total)
	}

	deep := c.ForDepth(9)
	if deep.Len() != 2 {
		t.Errorf("expected 2 entries at depth 9, got %d", deep.Len())
	}
	if deep.total != 11 {
		t.Errorf("expected total weight 11 at depth 9, got %d", deep.total)
	}
}

func TestRoll_EmptyTable(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	if got := (&RandomTable{}).Roll(rng); got != None {
		t.Errorf("empty table rolled %q, want %q", got, None)
	}
}

func TestRoll_RespectsWeights(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	table := (&RandomTable{}).Add("common", 9).Add("rare", 1).Add("never", 0)

	counts := map[string]int{}
	for i := 0; i < 2000; i++ {
		counts[table.Roll(rng)]++
	}
	if counts["never"] != 0 {
		t.Error("zero-weight entry was rolled")
	}
	if counts["common"] < counts["rare"]*4 {
		t.Errorf("weights not respected: %v", counts)
	}
}

func TestRoll_Deterministic(t *testing.T) {
	table := Default().ForDepth(3)
	a := rand.New(rand.NewSource(99))
	b := rand.New(rand.NewSource(99))
	for i := 0; i < 50; i++ {
		if x, y := table.Roll(a), table.Roll(b); x != y {
			t.Fatalf("roll %d differs: %q vs %q", i, x, y)
		}
	}
}

func TestParse_Rejects(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{"missing name", "spawns:\n  - weight: 1\n    max_depth: 2\n"},
		{"negative weight", "spawns:\n  - name: X\n    weight: -1\n    max_depth: 2\n"},
		{"inverted depth", "spawns:\n  - name: X\n    weight: 1\n    min_depth: 5\n    max_depth: 2\n"},
		{"bad yaml", "spawns: [\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := Parse([]byte(tt.body)); err == nil {
				t.Error("expected an error")
			}
		})
	}
}

func TestLoad_File(t *testing.T) {
	path := filepath.Join(t.TempDir(), "table.yaml")
	body := "spawns:\n  - name: Bat\n    weight: 3\n    min_depth: 0\n    max_depth: 4\n"
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatal(err)
	}
	c, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if len(c.Entries) != 1 || c.Entries[0].Name != "Bat" {
		t.Errorf("unexpected entries %+v", c.Entries)
	}
	if _, err := Load(filepath.Join(t.TempDir(), "nope.yaml")); err == nil {
		t.Error("expected error for missing file")
	}
}
