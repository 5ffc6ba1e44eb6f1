package generator

import (
	"fmt"
	"math/rand"
	"strings"

	"deepdelve/pkg/engine/logger"
	"deepdelve/pkg/engine/world"
	"deepdelve/pkg/game/spawns"
)

// InitialStage produces the first layout of a fresh all-Wall grid
type InitialStage interface {
	BuildInitial(rng *rand.Rand, data *BuildData)
}

// MetaStage transforms a layout produced by earlier stages
type MetaStage interface {
	BuildMeta(rng *rand.Rand, data *BuildData)
}

// EntitySpawner places named entity types into the running game
type EntitySpawner interface {
	SpawnNamed(name string, x, y int) bool
}

// BuilderChain runs one InitialStage followed by ordered MetaStages over a
// single BuildData
type BuilderChain struct {
	starter  InitialStage
	builders []MetaStage
	Data     BuildData
}

// NewBuilderChain creates a chain over an all-Wall grid
func NewBuilderChain(depth, width, height int, name string) *BuilderChain {
	return &BuilderChain{
		Data: BuildData{
			Grid:    world.NewGrid(depth, width, height, name),
			Catalog: spawns.Default(),
			Width:   width,
			Height:  height,
		},
	}
}

// StartWith sets the initial stage. Setting it twice panics.
func (c *BuilderChain) StartWith(stage InitialStage) *BuilderChain {
	if c.starter != nil {
		panic("BuilderChain: only one starter stage allowed")
	}
	c.starter = stage
	return c
}

// With appends a meta stage
func (c *BuilderChain) With(stage MetaStage) *BuilderChain {
	c.builders = append(c.builders, stage)
	return c
}

// RecordHistory enables snapshots for the visualizer
func (c *BuilderChain) RecordHistory(on bool) *BuilderChain {
	c.Data.recordHistory = on
	return c
}

// WithCatalog replaces the spawn table
func (c *BuilderChain) WithCatalog(catalog *spawns.Catalog) *BuilderChain {
	c.Data.Catalog = catalog
	return c
}

// BuildMap runs every stage in order. It panics if no starter was set or if
// the result breaks the grid border invariant.
func (c *BuilderChain) BuildMap(rng *rand.Rand) {
	if c.starter == nil {
		panic("BuilderChain: cannot build a map without a starter stage")
	}

	d := &c.Data
	c.starter.BuildInitial(rng, d)
	d.TakeSnapshot()
	logger.Debug("stage complete", "stage", stageName(c.starter), "depth", d.Depth(),
		"floor", d.Grid.CountSurface(world.Floor))

	for _, stage := range c.builders {
		stage.BuildMeta(rng, d)
		d.TakeSnapshot()
		logger.Debug("stage complete", "stage", stageName(stage), "depth", d.Depth(),
			"floor", d.Grid.CountSurface(world.Floor), "spawns", len(d.Spawns))
	}

	d.Grid.Rooms = d.Rooms
	d.Grid.PopulateBlocked()
	if err := d.Grid.Validate(); err != nil {
		panic(fmt.Sprintf("Generated invalid grid %q: %v", d.Grid.Name, err))
	}
	logger.Info("level built", "name", d.Grid.Name, "depth", d.Depth(),
		"width", d.Width, "height", d.Height, "spawns", len(d.Spawns))
}

// SpawnEntities hands the manifest to the entity runtime and returns how many
// entries it accepted
func (c *BuilderChain) SpawnEntities(spawner EntitySpawner) int {
	placed := 0
	for _, s := range c.Data.Spawns {
		p := c.Data.Grid.PointOf(s.Index)
		if spawner.SpawnNamed(s.Name, p.X, p.Y) {
			placed++
			continue
		}
		logger.Warning("spawn rejected", "name", s.Name, "x", p.X, "y", p.Y)
	}
	return placed
}

func stageName(stage any) string {
	return strings.TrimPrefix(fmt.Sprintf("%T", stage), "*generator.")
}
