package generator

import (
	"math/rand"
	"slices"

	"deepdelve/pkg/engine/world"
	"deepdelve/pkg/game/spawns"
)

// maxSpawns caps the random part of a region's spawn count
const maxSpawns = 6

// spawnInRegion rolls the depth table for up to depth+[-2,3] distinct walkable
// tiles of area
func spawnInRegion(rng *rand.Rand, data *BuildData, area []int) {
	if data.Catalog == nil || len(area) == 0 {
		return
	}
	table := data.Catalog.ForDepth(data.Depth())
	g := data.Grid
	candidates := slices.DeleteFunc(slices.Clone(area), func(idx int) bool {
		return !g.Tiles[idx].Surface.IsWalkable()
	})
	if len(candidates) == 0 {
		return
	}

	count := min(len(candidates), rangeInt(rng, -2, maxSpawns-2)+data.Depth())
	for i := 0; i < count; i++ {
		k := rng.Intn(len(candidates))
		idx := candidates[k]
		candidates = slices.Delete(candidates, k, k+1)

		name := table.Roll(rng)
		if name == spawns.None || data.HasSpawnAt(idx) {
			continue
		}
		data.AddSpawn(idx, name)
	}
}

// RoomBasedSpawner populates every room but the first, which holds the start
type RoomBasedSpawner struct{}

// BuildMeta spawns per room
func (RoomBasedSpawner) BuildMeta(rng *rand.Rand, data *BuildData) {
	data.requireRooms("RoomBasedSpawner")
	g := data.Grid
	for _, r := range data.Rooms[min(1, len(data.Rooms)):] {
		var area []int
		for y := r.Y1 + 1; y <= r.Y2; y++ {
			for x := r.X1 + 1; x <= r.X2; x++ {
				if g.Contains(x, y) && g.Surface(x, y) == world.Floor {
					area = append(area, g.Index(x, y))
				}
			}
		}
		spawnInRegion(rng, data, area)
	}
}

// CorridorSpawner populates each corridor
type CorridorSpawner struct{}

// BuildMeta spawns per corridor
func (CorridorSpawner) BuildMeta(rng *rand.Rand, data *BuildData) {
	data.requireCorridors("CorridorSpawner")
	for _, corridor := range data.Corridors {
		spawnInRegion(rng, data, corridor)
	}
}

// VoronoiSpawner groups Floor tiles into cellular-noise regions and spawns
// into each region independently
type VoronoiSpawner struct{}

// BuildMeta spawns per region, in region id order
func (VoronoiSpawner) BuildMeta(rng *rand.Rand, data *BuildData) {
	g := data.Grid
	noise := cellularNoise{seed: uint64(rng.Int63()), frequency: 0.08}

	regions := make(map[int64][]int)
	for idx := range g.Tiles {
		if g.Tiles[idx].Surface != world.Floor {
			continue
		}
		p := g.PointOf(idx)
		id := noise.region(p.X, p.Y)
		regions[id] = append(regions[id], idx)
	}

	ids := make([]int64, 0, len(regions))
	for id := range regions {
		ids = append(ids, id)
	}
	slices.Sort(ids)
	for _, id := range ids {
		spawnInRegion(rng, data, regions[id])
	}
}
