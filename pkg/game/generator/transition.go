package generator

import (
	"math/rand"
	"slices"
)

// CavernTransition replaces the east half of the level with a freshly built
// room-and-corridor dungeon, so the level reads as a cave opening into a fort
type CavernTransition struct{}

// BuildMeta builds the dungeon with a nested chain and splices it in. Spawns
// from the current level survive on the west half only; the dungeon's spawns
// are kept on the east half.
func (CavernTransition) BuildMeta(rng *rand.Rand, data *BuildData) {
	fort := NewBuilderChain(data.Depth(), data.Width, data.Height, "fort").
		WithCatalog(data.Catalog).
		RecordHistory(data.recordHistory).
		StartWith(NewBSPDungeon()).
		With(RoomDrawer{}).
		With(NewRoomSorter(RightMost)).
		With(NearestCorridors{}).
		With(RoomExploder{}).
		With(RoomBasedSpawner{})
	fort.BuildMap(rng)

	data.History = append(data.History, fort.Data.History...)
	data.TakeSnapshot()

	g, src := data.Grid, fort.Data.Grid
	half := g.Width / 2
	for y := 0; y < g.Height; y++ {
		for x := half; x < g.Width; x++ {
			idx := g.Index(x, y)
			g.Tiles[idx] = src.Tiles[idx]
		}
	}

	data.Spawns = slices.DeleteFunc(data.Spawns, func(s Spawn) bool {
		return g.PointOf(s.Index).X >= half
	})
	for _, s := range fort.Data.Spawns {
		if g.PointOf(s.Index).X >= half {
			data.Spawns = append(data.Spawns, s)
		}
	}
}
