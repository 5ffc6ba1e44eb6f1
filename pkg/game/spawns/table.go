// Package spawns holds the depth-weighted tables that decide which entity
// types are placed into generated levels.
package spawns

import (
	_ "embed"
	"fmt"
	"math/rand"
	"os"

	"gopkg.in/yaml.v3"
)

// None is rolled from an empty table; spawners skip it
const None = "None"

//go:embed spawns.yaml
var defaultTable []byte

// Entry is one row of a spawn table file
type Entry struct {
	Name                string `yaml:"name"`
	Weight              int    `yaml:"weight"`
	MinDepth            int    `yaml:"min_depth"`
	MaxDepth            int    `yaml:"max_depth"`
	AddMapDepthToWeight bool   `yaml:"add_map_depth_to_weight"`
}

// Catalog is the full spawn table across all depths
type Catalog struct {
	Entries []Entry `yaml:"spawns"`
}

// Default returns the catalog embedded in the binary
func Default() *Catalog {
	c, err := Parse(defaultTable)
	if err != nil {
		panic(fmt.Sprintf("embedded spawn table is invalid: %v", err))
	}
	return c
}

// Load reads a catalog from a YAML file
func Load(path string) (*Catalog, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading spawn table %s: %w", path, err)
	}
	c, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("spawn table %s: %w", path, err)
	}
	return c, nil
}

// Parse decodes and validates a catalog
func Parse(data []byte) (*Catalog, error) {
	var c Catalog
	if err := yaml.Unmarshal(data, &c); err != nil {
		return nil, err
	}
	for i, e := range c.Entries {
		switch {
		case e.Name == "":
			return nil, fmt.Errorf("entry %d has no name", i)
		case e.Weight < 0:
			return nil, fmt.Errorf("entry %q has negative weight", e.Name)
		case e.MinDepth > e.MaxDepth:
			return nil, fmt.Errorf("entry %q has min_depth above max_depth", e.Name)
		}
	}
	return &c, nil
}

// ForDepth builds the weighted table of entries eligible at depth
func (c *Catalog) ForDepth(depth int) *RandomTable {
	t := &RandomTable{}
	for _, e := range c.Entries {
		if depth < e.MinDepth || depth > e.MaxDepth {
			continue
		}
		weight := e.Weight
		if e.AddMapDepthToWeight {
			weight += depth
		}
		t.Add(e.Name, weight)
	}
	return t
}

type weightedName struct {
	name   string
	weight int
}

// RandomTable picks names with probability proportional to their weight
type RandomTable struct {
	entries []weightedName
	total   int
}

// Add appends a name. Non-positive weights are ignored.
func (t *RandomTable) Add(name string, weight int) *RandomTable {
	if weight > 0 {
		t.entries = append(t.entries, weightedName{name: name, weight: weight})
		t.total += weight
	}
	return t
}

// Len returns the number of names in the table
func (t *RandomTable) Len() int {
	return len(t.entries)
}

// Roll picks one name, None if the table is empty
func (t *RandomTable) Roll(rng *rand.Rand) string {
	if t.total == 0 {
		return None
	}
	roll := rng.Intn(t.total)
	for _, e := range t.entries {
		if roll < e.weight {
			return e.name
		}
		roll -= e.weight
	}
	return None
}
