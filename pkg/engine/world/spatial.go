package world

import (
	"slices"

	"deepdelve/pkg/engine/navigation"
)

// Entity is a reference to an object owned by the entity runtime
type Entity uint64

// Occupant is a live entity position fed to SpatialIndex.Rebuild
type Occupant struct {
	Entity     Entity
	Index      int
	BlocksTile bool
}

// SpatialIndex maps each tile index to its occupants and a blocked flag.
// It is derived data: Rebuild re-creates it from the grid and live entity
// positions once per tick, before any system reads it.
type SpatialIndex struct {
	blocked []bool
	content [][]Entity
}

// NewSpatialIndex creates an index sized for tileCount tiles
func NewSpatialIndex(tileCount int) *SpatialIndex {
	s := &SpatialIndex{}
	s.SetSize(tileCount)
	return s
}

// SetSize resets the index to tileCount tiles
func (s *SpatialIndex) SetSize(tileCount int) {
	s.blocked = make([]bool, tileCount)
	s.content = make([][]Entity, tileCount)
}

// Size returns the number of tiles tracked
func (s *SpatialIndex) Size() int {
	return len(s.blocked)
}

// Clear drops every occupant and marks every tile blocked
func (s *SpatialIndex) Clear() {
	for i := range s.blocked {
		s.blocked[i] = true
		s.content[i] = s.content[i][:0]
	}
}

// PopulateBlockedFromGrid copies per-tile walkability from the grid
func (s *SpatialIndex) PopulateBlockedFromGrid(g *Grid) {
	for i := range g.Tiles {
		if i >= len(s.blocked) {
			break
		}
		s.blocked[i] = !g.Tiles[i].Surface.IsWalkable()
	}
}

// IndexEntity appends an occupant at idx and optionally blocks the tile
func (s *SpatialIndex) IndexEntity(e Entity, idx int, blocksTile bool) {
	s.content[idx] = append(s.content[idx], e)
	if blocksTile {
		s.blocked[idx] = true
	}
}

// MoveEntity moves an occupant between tiles. The source is unblocked once empty.
func (s *SpatialIndex) MoveEntity(e Entity, from, to int) {
	if i := slices.Index(s.content[from], e); i >= 0 {
		s.content[from] = slices.Delete(s.content[from], i, i+1)
	}
	if len(s.content[from]) == 0 {
		s.blocked[from] = false
	}
	s.content[to] = append(s.content[to], e)
	s.blocked[to] = true
}

// IsBlocked returns true if the tile is impassable terrain or holds a blocking occupant
func (s *SpatialIndex) IsBlocked(idx int) bool {
	return s.blocked[idx]
}

// Content returns the occupants of a tile. The slice is owned by the index.
func (s *SpatialIndex) Content(idx int) []Entity {
	return s.content[idx]
}

// Rebuild clears the index, derives blocking from the grid and indexes every occupant
func (s *SpatialIndex) Rebuild(g *Grid, occupants []Occupant) {
	if len(s.blocked) != len(g.Tiles) {
		s.SetSize(len(g.Tiles))
	}
	s.Clear()
	s.PopulateBlockedFromGrid(g)
	for _, o := range occupants {
		s.IndexEntity(o.Entity, o.Index, o.BlocksTile)
	}
}

// OccupancyGraph is a cost-graph view of a grid that treats occupied tiles as blocked
type OccupancyGraph struct {
	Grid  *Grid
	Index *SpatialIndex
}

// AvailableExits lists neighbours that are neither impassable nor occupied
func (o OccupancyGraph) AvailableExits(idx int) []navigation.Exit {
	return o.Grid.exits(idx, o.Index.IsBlocked)
}

// PathingDistance returns the squared Euclidean distance between two tiles
func (o OccupancyGraph) PathingDistance(a, b int) float64 {
	return o.Grid.PathingDistance(a, b)
}
