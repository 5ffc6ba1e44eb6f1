package generator

import (
	"fmt"

	"deepdelve/pkg/engine/world"
	"deepdelve/pkg/game/spawns"
)

// DoorEntity is the spawn name stages use to mark doorways
const DoorEntity = "Door"

// Spawn asks the entity runtime to place an entity type at a tile index
type Spawn struct {
	Index int
	Name  string
}

// BuildData is the generation context shared by every stage of one chain
type BuildData struct {
	Grid *world.Grid
	// Rooms and Corridors stay nil until a stage produces them
	Rooms     []world.Rect
	Corridors [][]int
	Start     *world.Point
	Spawns    []Spawn
	History   []*world.Grid
	Catalog   *spawns.Catalog

	Width  int
	Height int

	recordHistory bool
}

// Depth returns the level index being generated
func (d *BuildData) Depth() int {
	return d.Grid.Depth
}

// TakeSnapshot appends a revealed copy of the grid when history is recorded
func (d *BuildData) TakeSnapshot() {
	if d.recordHistory {
		d.History = append(d.History, d.Grid.RevealedClone())
	}
}

// AddSpawn appends an entry to the spawn manifest
func (d *BuildData) AddSpawn(idx int, name string) {
	d.Spawns = append(d.Spawns, Spawn{Index: idx, Name: name})
}

// HasSpawnAt returns true if any manifest entry targets idx
func (d *BuildData) HasSpawnAt(idx int) bool {
	for _, s := range d.Spawns {
		if s.Index == idx {
			return true
		}
	}
	return false
}

// StartIndex returns the tile index of the starting point
func (d *BuildData) StartIndex() int {
	return d.Grid.Index(d.Start.X, d.Start.Y)
}

func (d *BuildData) requireRooms(stage string) {
	if d.Rooms == nil {
		panic(fmt.Sprintf("%s: requires rooms", stage))
	}
}

func (d *BuildData) requireAnyRoom(stage string) {
	if len(d.Rooms) == 0 {
		panic(fmt.Sprintf("%s: requires at least one room", stage))
	}
}

func (d *BuildData) requireCorridors(stage string) {
	if d.Corridors == nil {
		panic(fmt.Sprintf("%s: requires corridors", stage))
	}
}

func (d *BuildData) requireStart(stage string) {
	if d.Start == nil {
		panic(fmt.Sprintf("%s: requires a starting position", stage))
	}
}
