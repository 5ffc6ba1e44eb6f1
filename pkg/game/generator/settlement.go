package generator

import (
	"math"
	"math/rand"
	"sort"

	"github.com/zyedidia/generic/mapset"

	"deepdelve/pkg/engine/logger"
	"deepdelve/pkg/engine/navigation"
	"deepdelve/pkg/engine/world"
)

// BuildingRole is the purpose assigned to a settlement building by size rank
type BuildingRole int

// Building roles, largest building first
const (
	Tavern BuildingRole = iota
	Temple
	Blacksmith
	Clothier
	Alchemist
	PlayerHouse
	Hovel
	Abandoned
)

// String returns the role name
func (r BuildingRole) String() string {
	switch r {
	case Tavern:
		return "Tavern"
	case Temple:
		return "Temple"
	case Blacksmith:
		return "Blacksmith"
	case Clothier:
		return "Clothier"
	case Alchemist:
		return "Alchemist"
	case PlayerHouse:
		return "PlayerHouse"
	case Hovel:
		return "Hovel"
	case Abandoned:
		return "Abandoned"
	default:
		return "Unknown"
	}
}

// buildingContents lists what each role is furnished with
var buildingContents = map[BuildingRole][]string{
	Tavern:      {"Table", "Chair", "Table", "Chair", "Keg", "Patron", "Patron", "Shady Salesman", "Barkeep"},
	Temple:      {"Chair", "Chair", "Candle", "Candle", "Parishioner", "Parishioner", "Priest"},
	Blacksmith:  {"Blacksmith", "Anvil", "Water Trough", "Weapon Rack", "Armor Stand"},
	Clothier:    {"Clothier", "Cabinet", "Table", "Loom", "Hide Rack"},
	Alchemist:   {"Alchemist", "Chemistry Set", "Dead Thing", "Chair", "Table"},
	PlayerHouse: {"Mom", "Bed", "Cabinet", "Chair", "Table"},
	Hovel:       {"Peasant", "Bed", "Chair", "Table"},
}

var (
	dockFolk = []string{"Dock Worker", "Wannabe Pirate", "Fisher"}
	townFolk = []string{"Peasant", "Drunk", "Dock Worker", "Fisher"}
)

// Building is one structure placed by Settlement
type Building struct {
	Rect world.Rect
	Door int
	Role BuildingRole
}

// Settlement builds a walled harbour town: shoreline and piers on the west, a
// compound with a single gate, buildings with doors joined to the road by
// paths, furnished by role, and a down-stairs band on the far wall.
type Settlement struct {
	// GateSize is how many rows either side of the gate centre are opened
	GateSize         int
	MaxBuildings     int
	BuildingAttempts int
	// Buildings is filled by BuildInitial
	Buildings []Building
}

// NewSettlement returns the standard town builder
func NewSettlement() *Settlement {
	return &Settlement{GateSize: 3, MaxBuildings: 12, BuildingAttempts: 400}
}

// compound west edge; everything left of it is shore and water
const compoundX = 34

// BuildInitial lays out the whole town
func (s *Settlement) BuildInitial(rng *rand.Rand, data *BuildData) {
	g := data.Grid
	area := world.NewRect(compoundX, 2, g.Width-2-compoundX, g.Height-4)
	if area.Width() < 20 || area.Height() < 20 {
		panic("Settlement: grid too small for a town")
	}
	gate := rangeInt(rng, area.Y1+6, area.Y2-6)

	for i := range g.Tiles {
		g.Tiles[i].Surface = world.Grass
	}
	data.TakeSnapshot()

	docks := s.shoreline(rng, g)
	data.TakeSnapshot()

	available := s.walls(g, area, gate)
	data.TakeSnapshot()

	s.Buildings = s.placeBuildings(rng, data, area, available)
	s.addDoors(rng, data, gate)
	s.addPaths(data)

	sort.SliceStable(s.Buildings, func(i, j int) bool {
		return s.Buildings[i].Rect.Area() > s.Buildings[j].Rect.Area()
	})
	s.assignRoles()

	if len(s.Buildings) > 0 {
		c := s.Buildings[0].Rect.Center()
		data.Start = &world.Point{X: c.X, Y: c.Y}
	} else {
		data.Start = &world.Point{X: area.X1 + 1, Y: gate}
	}
	used := mapset.New[int]()
	used.Put(data.StartIndex())
	for _, b := range s.Buildings {
		used.Put(b.Door)
	}

	g.PopulateBlocked()
	for _, b := range s.Buildings {
		s.furnish(rng, data, b, used)
	}
	spawnDockers(rng, data, docks, used)
	spawnTownsfolk(rng, data, area, available, used)

	for y := gate - (s.GateSize - 1); y <= gate+(s.GateSize-1); y++ {
		g.SetSurface(area.X2, y, world.DownStairs)
	}

	g.SealBorder()
	g.Outdoors = true
	data.TakeSnapshot()
}

// shoreline floods the west edge with water whose width follows a sine wave
// and scatters Bridge piers across it. It returns the pier tiles.
func (s *Settlement) shoreline(rng *rand.Rand, g *world.Grid) []int {
	n := float64(rangeInt(rng, 1, 65536)) / 65535.0
	waterWidth := make([]int, g.Height)
	for y := 0; y < g.Height; y++ {
		width := int(math.Sin(n)*10.0) + 14 + rangeInt(rng, 1, 7)
		waterWidth[y] = width
		for x := 0; x < width; x++ {
			g.SetSurface(x, y, world.DeepWater)
		}
		for x := width; x < width+3; x++ {
			g.SetSurface(x, y, world.ShallowWater)
		}
		n += 0.1
	}

	var docks []int
	piers := rangeInt(rng, 7, 12)
	for i := 0; i < piers; i++ {
		y := rangeInt(rng, 1, g.Height-1)
		for x := rangeInt(rng, 3, 9); x < waterWidth[y]+4; x++ {
			g.SetSurface(x, y, world.Bridge)
			docks = append(docks, g.Index(x, y))
		}
	}
	return docks
}

// walls draws the compound perimeter with a gate in the west wall and a road
// running east from it, gravels the yard and returns the tiles open for buildings
func (s *Settlement) walls(g *world.Grid, area world.Rect, gate int) mapset.Set[int] {
	available := mapset.New[int]()
	const margin = 2

	for y := area.Y1; y <= area.Y2; y++ {
		onRoad := abs(y-gate) < s.GateSize
		for x := area.X1; x <= area.X2; x++ {
			idx := g.Index(x, y)
			perimeter := x == area.X1 || x == area.X2 || y == area.Y1 || y == area.Y2
			switch {
			case onRoad && x < area.X2:
				g.Tiles[idx].Surface = world.Road
			case perimeter:
				g.Tiles[idx].Surface = world.Wall
			default:
				g.Tiles[idx].Surface = world.Gravel
				if x > area.X1+margin && x < area.X2-margin && y > area.Y1+margin && y < area.Y2-margin {
					available.Put(idx)
				}
			}
		}
		if onRoad {
			g.SetSurface(area.X1-1, y, world.Road)
			g.SetSurface(area.X1-2, y, world.Road)
		}
	}
	return available
}

// placeBuildings rejection-samples footprints made only of available tiles and
// reserves each footprint plus a one tile margin
func (s *Settlement) placeBuildings(rng *rand.Rand, data *BuildData, area world.Rect, available mapset.Set[int]) []Building {
	g := data.Grid
	var buildings []Building

	for attempt := 0; attempt < s.BuildingAttempts && len(buildings) < s.MaxBuildings; attempt++ {
		r := world.NewRect(
			rangeInt(rng, area.X1, area.X2),
			rangeInt(rng, area.Y1, area.Y2),
			rangeInt(rng, 5, 12),
			rangeInt(rng, 5, 12),
		)
		if !footprintAvailable(g, r, available) {
			continue
		}

		for y := r.Y1 - 1; y <= r.Y2; y++ {
			for x := r.X1 - 1; x <= r.X2; x++ {
				if g.Contains(x, y) {
					available.Remove(g.Index(x, y))
				}
			}
		}
		for y := r.Y1; y < r.Y2; y++ {
			for x := r.X1; x < r.X2; x++ {
				if x == r.X1 || x == r.X2-1 || y == r.Y1 || y == r.Y2-1 {
					g.SetSurface(x, y, world.Wall)
				} else {
					g.SetSurface(x, y, world.WoodFloor)
				}
			}
		}
		buildings = append(buildings, Building{Rect: r, Door: -1})
		data.TakeSnapshot()
	}
	return buildings
}

func footprintAvailable(g *world.Grid, r world.Rect, available mapset.Set[int]) bool {
	for y := r.Y1; y < r.Y2; y++ {
		for x := r.X1; x < r.X2; x++ {
			if !g.Contains(x, y) || !available.Has(g.Index(x, y)) {
				return false
			}
		}
	}
	return true
}

// addDoors opens one non-corner wall tile per building, on the side facing the road
func (s *Settlement) addDoors(rng *rand.Rand, data *BuildData, gate int) {
	g := data.Grid
	for i := range s.Buildings {
		r := s.Buildings[i].Rect
		x := rangeInt(rng, r.X1+1, r.X2-1)
		y := r.Y1
		if r.Center().Y < gate {
			y = r.Y2 - 1
		}
		idx := g.Index(x, y)
		g.Tiles[idx].Surface = world.Floor
		s.Buildings[i].Door = idx
		data.AddSpawn(idx, DoorEntity)
	}
	data.TakeSnapshot()
}

// addPaths joins every door to the nearest road tile. Tiles walked become Path
// and count as road for later doors.
func (s *Settlement) addPaths(data *BuildData) {
	g := data.Grid
	g.PopulateBlocked()
	roads := g.IndicesOf(world.Road)

	for _, b := range s.Buildings {
		target := nearestOf(g, b.Door, roads)
		if target < 0 {
			continue
		}

		steps := navigation.AStarSearch(b.Door, target, g).Steps
		if steps == nil {
			steps = descendToRoad(g, b.Door, roads)
		}
		if steps == nil {
			logger.Warning("door could not be joined to the road", "door", b.Door)
			continue
		}

		for _, step := range steps {
			if step == b.Door || g.Tiles[step].Surface == world.Road || g.Tiles[step].Surface == world.Path {
				continue
			}
			g.Tiles[step].Surface = world.Path
			roads = append(roads, step)
		}
		data.TakeSnapshot()
	}
}

// nearestOf returns the candidate closest to idx by squared distance
func nearestOf(g *world.Grid, idx int, candidates []int) int {
	best, bestDist := -1, 0.0
	for _, c := range candidates {
		d := g.PathingDistance(idx, c)
		if best < 0 || d < bestDist {
			best, bestDist = c, d
		}
	}
	return best
}

// descendToRoad follows the distance field from the road set downhill from
// idx. Used when the step-bounded search gives up.
func descendToRoad(g *world.Grid, idx int, roads []int) []int {
	df := navigation.NewDistanceField(g.Width, g.Height, roads, g, float64(len(g.Tiles)))
	if !df.Reachable(idx) {
		return nil
	}

	steps := []int{idx}
	for cur := idx; df.At(cur) > 0; {
		next := -1
		for _, e := range g.AvailableExits(cur) {
			if df.At(e.Index) < df.At(cur) && (next < 0 || df.At(e.Index) < df.At(next)) {
				next = e.Index
			}
		}
		if next < 0 {
			return nil
		}
		steps = append(steps, next)
		cur = next
	}
	return steps
}

// assignRoles gives buildings, already sorted largest first, their roles
func (s *Settlement) assignRoles() {
	for i := range s.Buildings {
		switch {
		case i < int(Hovel):
			s.Buildings[i].Role = BuildingRole(i)
		default:
			s.Buildings[i].Role = Hovel
		}
	}
	if n := len(s.Buildings); n > int(Hovel) {
		s.Buildings[n-1].Role = Abandoned
	}
}

func (s *Settlement) furnish(rng *rand.Rand, data *BuildData, b Building, used mapset.Set[int]) {
	contents := buildingContents[b.Role]
	if b.Role == Abandoned {
		contents = nil
		for i := rangeInt(rng, 4, 10); i > 0; i-- {
			contents = append(contents, "Rat")
		}
	}

	g := data.Grid
	r := b.Rect
	for _, name := range contents {
		for try := 0; try < 200; try++ {
			x := rangeInt(rng, r.X1+1, r.X2-1)
			y := rangeInt(rng, r.Y1+1, r.Y2-1)
			idx := g.Index(x, y)
			if used.Has(idx) || g.Tiles[idx].BlockMovement {
				continue
			}
			data.AddSpawn(idx, name)
			used.Put(idx)
			break
		}
	}
}

func spawnDockers(rng *rand.Rand, data *BuildData, docks []int, used mapset.Set[int]) {
	if len(docks) < 10 {
		return
	}
	for i := 0; i < 10; i++ {
		idx := docks[rng.Intn(len(docks))]
		name := dockFolk[rng.Intn(len(dockFolk))]
		if used.Has(idx) {
			continue
		}
		data.AddSpawn(idx, name)
		used.Put(idx)
	}
}

// spawnTownsfolk wanders people over the streets, paths and yard margins
func spawnTownsfolk(rng *rand.Rand, data *BuildData, area world.Rect, available, used mapset.Set[int]) {
	g := data.Grid
	for i := 0; i < 10; i++ {
		for try := 0; try < 200; try++ {
			idx := g.Index(rangeInt(rng, area.X1, area.X2), rangeInt(rng, area.Y1, area.Y2))
			if available.Has(idx) || used.Has(idx) || g.Tiles[idx].BlockMovement ||
				g.Tiles[idx].Surface == world.WoodFloor || data.HasSpawnAt(idx) {
				continue
			}
			data.AddSpawn(idx, townFolk[rng.Intn(len(townFolk))])
			used.Put(idx)
			break
		}
	}
}
