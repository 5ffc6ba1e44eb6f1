package world

// Surface classifies the terrain of a single tile
type Surface int

// Surface constants
const (
	Wall Surface = iota
	Floor
	UpStairs
	DownStairs
	Grass
	DeepWater
	ShallowWater
	Bridge
	Road
	Gravel
	WoodFloor
	Path
	Stalactite
	Stalagmite
)

// String returns the name of the surface
func (s Surface) String() string {
	switch s {
	case Wall:
		return "Wall"
	case Floor:
		return "Floor"
	case UpStairs:
		return "UpStairs"
	case DownStairs:
		return "DownStairs"
	case Grass:
		return "Grass"
	case DeepWater:
		return "DeepWater"
	case ShallowWater:
		return "ShallowWater"
	case Bridge:
		return "Bridge"
	case Road:
		return "Road"
	case Gravel:
		return "Gravel"
	case WoodFloor:
		return "WoodFloor"
	case Path:
		return "Path"
	case Stalactite:
		return "Stalactite"
	case Stalagmite:
		return "Stalagmite"
	default:
		return "Unknown"
	}
}

// IsWalkable reports whether creatures can stand on the surface.
// This is the only place surface and movement blocking are linked.
func (s Surface) IsWalkable() bool {
	switch s {
	case Floor, Road, Grass, ShallowWater, WoodFloor, Bridge, Gravel, Path, UpStairs, DownStairs:
		return true
	default:
		return false
	}
}

// IsOpaque reports whether the surface blocks line of sight
func (s Surface) IsOpaque() bool {
	return s == Wall
}
