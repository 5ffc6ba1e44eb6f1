package world

// Tile is one cell of a Grid. Occupants are not stored here: the SpatialIndex
// observes them for the entity runtime that owns them.
type Tile struct {
	Surface         Surface
	Revealed        bool
	Visible         bool
	BlockVisibility bool
	Bloodstain      bool
	BlockMovement   bool
}

// wallTile returns the tile every fresh grid is filled with
func wallTile() Tile {
	return Tile{Surface: Wall, BlockVisibility: true, BlockMovement: true}
}
