// Package world provides the tile grid and level layout generation.
package world

// TileKind is the terrain of a tile.
type TileKind rune

const (
	// KindWall is impassable terrain.
	KindWall TileKind = '#'
	// KindFloor is passable terrain.
	KindFloor TileKind = '.'
)

// IsPassable returns true if the terrain can be walked on.
func (k TileKind) IsPassable() bool {
	return k == KindFloor
}

// Sprite returns the base sprite drawn for the terrain.
func (k TileKind) Sprite() Sprite {
	if k == KindFloor {
		return SpriteFloor
	}
	return SpriteWall
}

// ActorID refers to an entity by its index in the entity arena.
// Tiles never hold entities directly, only their IDs.
type ActorID int

// NoActor marks an unoccupied tile.
const NoActor ActorID = 0

// effectFrames is how many frames a visual effect stays on a tile.
const effectFrames = 30

// Tile is a single addressable grid cell.
type Tile struct {
	X, Y     int
	Kind     TileKind
	Occupant ActorID // NoActor when empty
	Treasure bool

	Effect        Sprite
	EffectCounter int // frames left before the effect fades
}

// Passable reports whether entities may enter the tile.
func (t *Tile) Passable() bool {
	return t.Kind.IsPassable()
}

// Occupied reports whether an entity stands on the tile.
func (t *Tile) Occupied() bool {
	return t.Occupant != NoActor
}

// SetEffect marks the tile with a transient visual effect. Last write wins.
func (t *Tile) SetEffect(id Sprite) {
	t.Effect = id
	t.EffectCounter = effectFrames
}

// FadeEffect advances the effect animation by one frame.
func (t *Tile) FadeEffect() {
	if t.EffectCounter > 0 {
		t.EffectCounter--
	}
}

// Dist returns the Manhattan distance between two tiles.
func (t *Tile) Dist(other *Tile) int {
	return abs(t.X-other.X) + abs(t.Y-other.Y)
}

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}
