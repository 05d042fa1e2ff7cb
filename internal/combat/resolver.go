// Package combat arbitrates movement against attacks and applies damage.
package combat

import (
	"github.com/samdwyer/gridspell/internal/entity"
	"github.com/samdwyer/gridspell/internal/gamestate"
	"github.com/samdwyer/gridspell/internal/world"
)

// StrikeDamage is the damage dealt by a bump attack.
const StrikeDamage = 1

// Resolver resolves one-step actions against the shared game state.
type Resolver struct {
	state *gamestate.State
}

// NewResolver creates a resolver over the given state.
func NewResolver(state *gamestate.State) *Resolver {
	return &Resolver{state: state}
}

// SameFaction reports whether a and b are on the same side.
func SameFaction(a, b *entity.Monster) bool {
	return a.IsPlayer() == b.IsPlayer()
}

// TryMove makes m act toward the tile offset by (dx, dy): an empty
// passable tile is entered, an enemy occupant is stunned and struck.
// Walls and same-faction occupants make the action fail. Returns whether
// m moved or attacked.
func (r *Resolver) TryMove(m *entity.Monster, dx, dy int) bool {
	dest := r.state.Grid.Neighbor(m.Tile, dx, dy)
	if !dest.Passable() {
		return false
	}
	m.LastMove = world.Offset{DX: dx, DY: dy}
	m.HasMoved = true

	target := r.state.Occupant(dest)
	if target == nil {
		m.MoveTo(dest)
		return true
	}
	if SameFaction(m, target) {
		return false
	}

	m.AttackedThisTurn = true
	Stun(target)
	Hit(target, StrikeDamage)
	return true
}

// Stun makes m skip its next turn.
func Stun(m *entity.Monster) {
	m.Stunned = true
}

// Hit reduces m's hp by damage and kills it when hp drops to zero.
func Hit(m *entity.Monster, damage int) {
	if m.Dead {
		return
	}
	m.HP -= damage
	if m.HP <= 0 {
		Die(m)
	}
}

// Heal raises m's hp. There is no upper bound.
func Heal(m *entity.Monster, amount int) {
	if m.Dead {
		return
	}
	m.HP += amount
}

// Die removes m from the grid and leaves a corpse. Dying twice is a no-op.
func Die(m *entity.Monster) {
	if m.Dead {
		return
	}
	m.Dead = true
	if m.Tile != nil && m.Tile.Occupant == m.ID {
		m.Tile.Occupant = world.NoActor
	}
	m.Sprite = world.SpriteCorpse
}
