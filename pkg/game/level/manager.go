// Package level keeps the generated levels of a run and moves between them.
package level

import (
	"fmt"
	"math/rand"

	"deepdelve/pkg/engine/logger"
	"deepdelve/pkg/engine/world"
	"deepdelve/pkg/game/generator"
	"deepdelve/pkg/game/spawns"
)

// Level is one built depth. Rooms, corridors and the manifest live only as
// long as the chain; the manifest is kept so a level can be inspected after
// its entities were spawned.
type Level struct {
	Depth   int
	Seed    int64
	Grid    *world.Grid
	Start   world.Point
	Spawns  []generator.Spawn
	History []*world.Grid
}

// Options configure a Manager
type Options struct {
	// BaseSeed is offset by the depth to seed each level
	BaseSeed int64
	// Width and Height size the randomly built levels
	Width         int
	Height        int
	RecordHistory bool
	Catalog       *spawns.Catalog
	// Spawner receives every manifest on first visit. May be nil.
	Spawner generator.EntitySpawner
}

// Manager builds levels on first visit, remembers them for revisits and owns
// the spatial index of the current level
type Manager struct {
	opts    Options
	levels  map[int]*Level
	current *Level
	index   *world.SpatialIndex
}

// NewManager returns a manager with no levels built yet
func NewManager(opts Options) *Manager {
	if opts.Catalog == nil {
		opts.Catalog = spawns.Default()
	}
	return &Manager{
		opts:   opts,
		levels: make(map[int]*Level),
		index:  world.NewSpatialIndex(0),
	}
}

// SeedFor returns the seed a depth is generated with
func (m *Manager) SeedFor(depth int) int64 {
	return m.opts.BaseSeed + int64(depth)
}

// Enter makes depth the current level, building it if it was never visited
func (m *Manager) Enter(depth int) (*Level, error) {
	if depth < 0 {
		return nil, fmt.Errorf("invalid depth %d", depth)
	}

	lvl, ok := m.levels[depth]
	if !ok {
		lvl = m.build(depth)
		m.levels[depth] = lvl
	} else {
		logger.Debug("revisiting level", "depth", depth, "name", lvl.Grid.Name)
	}

	m.current = lvl
	m.index.Rebuild(lvl.Grid, nil)
	return lvl, nil
}

// Advance enters the level below the current one
func (m *Manager) Advance() (*Level, error) {
	if m.current == nil {
		return m.Enter(0)
	}
	return m.Enter(m.current.Depth + 1)
}

// Reset throws away the current level and builds it again from the same seed
func (m *Manager) Reset() (*Level, error) {
	if m.current == nil {
		return nil, fmt.Errorf("no current level")
	}
	depth := m.current.Depth
	delete(m.levels, depth)
	return m.Enter(depth)
}

// Current returns the current level, nil before the first Enter
func (m *Manager) Current() *Level {
	return m.current
}

// Visited reports whether depth has been built
func (m *Manager) Visited(depth int) bool {
	_, ok := m.levels[depth]
	return ok
}

// Index returns the spatial index of the current level
func (m *Manager) Index() *world.SpatialIndex {
	return m.index
}

// Tick re-derives the spatial index from the current grid and the live
// occupants. It must run before any system reads the index in a tick.
func (m *Manager) Tick(occupants []world.Occupant) {
	if m.current == nil {
		return
	}
	m.index.Rebuild(m.current.Grid, occupants)
}

// Graph returns a cost graph over the current level that treats occupied
// tiles as blocked
func (m *Manager) Graph() world.OccupancyGraph {
	return world.OccupancyGraph{Grid: m.current.Grid, Index: m.index}
}

func (m *Manager) build(depth int) *Level {
	seed := m.SeedFor(depth)
	rng := rand.New(rand.NewSource(seed))

	chain := generator.LevelBuilder(rng, depth, m.opts.Width, m.opts.Height).
		WithCatalog(m.opts.Catalog).
		RecordHistory(m.opts.RecordHistory)
	chain.BuildMap(rng)

	data := &chain.Data
	if depth > 0 {
		if data.Grid.Surface(data.Start.X, data.Start.Y) == world.DownStairs {
			logger.Warning("start holds the only exit, leaving it in place", "depth", depth)
		} else {
			data.Grid.SetSurface(data.Start.X, data.Start.Y, world.UpStairs)
			data.Grid.PopulateBlocked()
		}
	}

	placed := 0
	if m.opts.Spawner != nil {
		placed = chain.SpawnEntities(m.opts.Spawner)
	}
	logger.Info("entered new level", "depth", depth, "name", data.Grid.Name,
		"seed", seed, "spawns", len(data.Spawns), "placed", placed)

	return &Level{
		Depth:   depth,
		Seed:    seed,
		Grid:    data.Grid,
		Start:   *data.Start,
		Spawns:  data.Spawns,
		History: data.History,
	}
}
