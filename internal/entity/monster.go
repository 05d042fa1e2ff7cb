package entity

import (
	"fmt"

	"github.com/samdwyer/gridspell/internal/world"
)

// pipSpacing is the gap between hp pips, in tiles.
const pipSpacing = 5.0 / 16

// pipOffsetY places the first pip row below the entity, in tiles.
const pipOffsetY = 5.0 / 8

// Canvas is the rendering collaborator monsters draw themselves on.
// Coordinates are in tiles and may be fractional.
type Canvas interface {
	DrawSprite(sprite world.Sprite, x, y float64)
}

// Monster is any entity on the grid. The player is a Monster of KindPlayer.
type Monster struct {
	ID     world.ActorID
	Kind   Kind
	Tile   *world.Tile
	Sprite world.Sprite
	HP     int

	Dead    bool
	Stunned bool

	// AttackedThisTurn is set by combat when the monster strikes, and reset
	// by behaviors that care about it.
	AttackedThisTurn bool
	// TeleportCounter is set by mass teleports; the turn driver counts it down
	// and the monster skips turns while it is positive.
	TeleportCounter int

	// Player-only state.
	Spells      []string     // spell loadout, "" marks an empty slot
	BonusAttack int          // one-shot bonus damage charge
	Shield      int          // shield charges
	LastMove    world.Offset // direction of the last attempted step
	HasMoved    bool         // LastMove holds a real direction
}

// IsPlayer reports whether the monster belongs to the player faction.
func (m *Monster) IsPlayer() bool {
	return m.Kind.IsPlayer()
}

// Alive reports whether the monster is still on the grid.
func (m *Monster) Alive() bool {
	return !m.Dead
}

// MoveTo vacates the current tile and occupies the destination.
func (m *Monster) MoveTo(to *world.Tile) {
	if m.Tile != nil && m.Tile.Occupant == m.ID {
		m.Tile.Occupant = world.NoActor
	}
	m.Tile = to
	to.Occupant = m.ID
}

// Snapshot returns a flat view of the monster for debugging and save display.
func (m *Monster) Snapshot() map[string]any {
	return map[string]any{
		"tile":   [2]int{m.Tile.X, m.Tile.Y},
		"sprite": int(m.Sprite),
		"hp":     m.HP,
	}
}

// String formats the snapshot.
func (m *Monster) String() string {
	return fmt.Sprint(m.Snapshot())
}

// Draw renders the monster sprite followed by one pip per hit point, laid
// out three to a row below the monster.
func (m *Monster) Draw(c Canvas) {
	x, y := float64(m.Tile.X), float64(m.Tile.Y)
	c.DrawSprite(m.Sprite, x, y)
	for i := 0; i < m.HP; i++ {
		c.DrawSprite(world.SpriteHP,
			x+float64(i%3)*pipSpacing,
			y+pipOffsetY+float64(i/3)*pipSpacing,
		)
	}
}
