package generator

import (
	"math/rand"

	"github.com/leonelquinteros/gotext"
)

// Default size of the randomly built levels
const (
	DefaultWidth  = 80
	DefaultHeight = 50
)

// LevelBuilder returns the chain for a depth. The first five depths are
// hand-tuned recipes with fixed sizes; deeper levels are assembled at random
// from the stage catalogue at width x height.
func LevelBuilder(rng *rand.Rand, depth, width, height int) *BuilderChain {
	switch depth {
	case 0:
		return TownBuilder(depth)
	case 1:
		return ForestBuilder(depth)
	case 2:
		return CavernBuilder(depth)
	case 3:
		return DeepCavernBuilder(depth)
	case 4:
		return TransitionCavernBuilder(depth)
	default:
		if width <= 0 || height <= 0 {
			width, height = DefaultWidth, DefaultHeight
		}
		return RandomBuilder(rng, depth, width, height)
	}
}

// TownBuilder is the walled harbour settlement
func TownBuilder(depth int) *BuilderChain {
	return NewBuilderChain(depth, 80, 50, gotext.Get("Town of Lost Hope")).
		StartWith(NewSettlement())
}

// ForestBuilder is an open cave-like forest crossed by a road
func ForestBuilder(depth int) *BuilderChain {
	return NewBuilderChain(depth, 100, 60, gotext.Get("The Deep Dark Forest")).
		StartWith(NewCellularAutomata()).
		With(NewAreaStartingPosition(XCenter, YCenter)).
		With(CullUnreachable{}).
		With(NewAreaStartingPosition(Left, YCenter)).
		With(VoronoiSpawner{}).
		With(ForestRoad{})
}

// CavernBuilder is a winding drunkard's cave
func CavernBuilder(depth int) *BuilderChain {
	return NewBuilderChain(depth, 100, 60, gotext.Get("The Ominous Cavern")).
		StartWith(DrunkardWindingPassages()).
		With(NewAreaStartingPosition(XCenter, YCenter)).
		With(CullUnreachable{}).
		With(NewAreaStartingPosition(Left, YCenter)).
		With(VoronoiSpawner{}).
		With(DistantExit{}).
		With(CavernDecorator{})
}

// DeepCavernBuilder grows a DLA cave around the orc camp
func DeepCavernBuilder(depth int) *BuilderChain {
	return NewBuilderChain(depth, 80, 80, gotext.Get("The Goblin's Cavern")).
		StartWith(DLACentralAttractor()).
		With(NewAreaStartingPosition(Left, Top)).
		With(VoronoiSpawner{}).
		With(DistantExit{}).
		With(CavernDecorator{}).
		With(NewPrefabSection(OrcCamp, XCenter, YCenter))
}

// TransitionCavernBuilder opens a cave on the west into a fort on the east
func TransitionCavernBuilder(depth int) *BuilderChain {
	return NewBuilderChain(depth, 80, 80, gotext.Get("Into the Fort")).
		StartWith(NewCellularAutomata()).
		With(NewAreaStartingPosition(XCenter, YCenter)).
		With(CullUnreachable{}).
		With(NewAreaStartingPosition(Left, YCenter)).
		With(VoronoiSpawner{}).
		With(CavernDecorator{}).
		With(CavernTransition{}).
		With(NewAreaStartingPosition(Left, YCenter)).
		With(CullUnreachable{}).
		With(NewAreaEndingPosition(Right, YCenter)).
		With(DistantExit{})
}

// RandomBuilder picks either a room-based or a shape-based layout, then adds doors
func RandomBuilder(rng *rand.Rand, depth, width, height int) *BuilderChain {
	chain := NewBuilderChain(depth, width, height, gotext.Get("Random Dungeon"))
	if rng.Intn(2) == 1 {
		randomRoomBuilder(rng, chain)
	} else {
		randomShapeBuilder(rng, chain)
	}
	return chain.With(DoorPlacement{})
}

func randomShapeBuilder(rng *rand.Rand, chain *BuilderChain) {
	var starter InitialStage
	switch rangeInt(rng, 1, 15) {
	case 1:
		starter = NewCellularAutomata()
	case 2:
		starter = DrunkardOpenArea()
	case 3:
		starter = DrunkardOpenHalls()
	case 4:
		starter = DrunkardWindingPassages()
	case 5:
		starter = DrunkardFatPassages()
	case 6:
		starter = DrunkardFearfulSymmetry()
	case 7:
		starter = NewMaze()
	case 8:
		starter = DLAWalkInwards()
	case 9:
		starter = DLAWalkOutwards()
	case 10:
		starter = DLACentralAttractor()
	case 11:
		starter = DLAInsectoid()
	case 12:
		starter = VoronoiPythagoras()
	case 13:
		starter = VoronoiManhattan()
	default:
		starter = VoronoiChebyshev()
	}

	x, y := randomAnchor(rng)
	chain.StartWith(starter).
		With(NewAreaStartingPosition(XCenter, YCenter)).
		With(CullUnreachable{}).
		With(NewAreaStartingPosition(x, y)).
		With(VoronoiSpawner{}).
		With(DistantExit{})
}

func randomRoomBuilder(rng *rand.Rand, chain *BuilderChain) {
	roll := rng.Intn(3)
	switch roll {
	case 0:
		chain.StartWith(NewSimpleRooms())
	case 1:
		chain.StartWith(NewBSPDungeon())
	default:
		chain.StartWith(NewBSPInterior())
	}

	// the interior partitioner carves and connects its own rooms
	if roll != 2 {
		chain.With(RoomDrawer{}).
			With(NewRoomSorter(RoomSort(rng.Intn(5))))

		switch rng.Intn(4) {
		case 0:
			chain.With(StraightLineCorridors{})
		case 1:
			chain.With(NearestCorridors{})
		case 2:
			chain.With(DoglegCorridors{})
		default:
			chain.With(BSPCorridors{})
		}

		switch rng.Intn(6) {
		case 1:
			chain.With(RoomExploder{})
		case 2:
			chain.With(RoomCornerRounder{})
		}

		if rng.Intn(2) == 0 {
			chain.With(CorridorSpawner{})
		}
	}

	if rng.Intn(2) == 0 {
		chain.With(RoomBasedStartingPosition{})
	} else {
		chain.With(NewAreaStartingPosition(randomAnchor(rng)))
	}
	chain.With(CullUnreachable{})
	if rng.Intn(2) == 0 {
		chain.With(RoomBasedStairs{})
	} else {
		chain.With(DistantExit{})
	}
	if rng.Intn(2) == 0 {
		chain.With(RoomBasedSpawner{})
	} else {
		chain.With(VoronoiSpawner{})
	}
	chain.With(NewPrefabVaults(3, ObviousTrap))
}

func randomAnchor(rng *rand.Rand) (XAnchor, YAnchor) {
	return XAnchor(rng.Intn(3)), YAnchor(rng.Intn(3))
}
