package devtools

import (
	"deepdelve/pkg/engine/world"
	"deepdelve/pkg/game/generator"
	"deepdelve/pkg/game/level"
)

const (
	devMapSize   = 30
	devMapMargin = 3
)

// DevLevel returns a hard-coded developer level. Every surface is placed on a
// floor field with a 3-cell margin between each, followed by a row of sample
// spawns, so renderers can be checked against one known layout.
func DevLevel() *level.Level {
	g := world.NewGrid(0, devMapSize, devMapSize, "Dev Test Map")
	for y := 1; y < devMapSize-1; y++ {
		for x := 1; x < devMapSize-1; x++ {
			g.SetSurface(x, y, world.Floor)
		}
	}

	x, y := 2, 2
	for s := world.Wall; s <= world.Stalagmite; s++ {
		if s == world.Floor {
			continue
		}
		g.SetSurface(x, y, s)
		x += devMapMargin + 1
		if x >= devMapSize-2 {
			x = 2
			y += devMapMargin + 1
		}
	}

	var spawns []generator.Spawn
	y += devMapMargin + 1
	x = 2
	for _, name := range []string{generator.DoorEntity, "Goblin", "Orc", "Health Potion", "Bear Trap"} {
		spawns = append(spawns, generator.Spawn{Index: g.Index(x, y), Name: name})
		x += devMapMargin + 1
	}

	g.PopulateBlocked()
	return &level.Level{
		Grid:   g,
		Start:  world.Point{X: devMapSize / 2, Y: devMapSize - 3},
		Spawns: spawns,
	}
}
