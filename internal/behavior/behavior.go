// Package behavior runs the per-turn state machine of every monster.
//
// A stunned monster spends its update clearing the stun. An active monster
// runs the decision routine of its kind. Kinds differ only through the
// behavior table below; there is no per-kind type.
package behavior

import (
	"github.com/samdwyer/gridspell/internal/combat"
	"github.com/samdwyer/gridspell/internal/entity"
)

// Behavior is the per-kind override table entry.
type Behavior struct {
	// Decide picks and performs the monster's action. Nil means the monster
	// is driven externally.
	Decide func(e *Engine, m *entity.Monster)
	// After runs at the end of every update, told whether the monster
	// entered the update stunned.
	After func(m *entity.Monster, startedStunned bool)
}

var table = map[entity.Kind]Behavior{
	entity.KindPlayer: {},
	entity.KindBird:   {Decide: seekPlayer},
	entity.KindEater:  {Decide: seekPlayer},
	entity.KindJester: {Decide: seekPlayer},
	entity.KindSnake:  {Decide: doubleMove},
	entity.KindTank:   {Decide: seekPlayer, After: restEveryOtherTurn},
}

// For returns the behavior registered for kind.
func For(kind entity.Kind) Behavior {
	if b, ok := table[kind]; ok {
		return b
	}
	return Behavior{Decide: seekPlayer}
}

// Update runs one turn of m's state machine. Dead monsters are skipped.
func (e *Engine) Update(m *entity.Monster) {
	if m.Dead {
		return
	}
	b := For(m.Kind)

	startedStunned := m.Stunned
	if m.Stunned {
		m.Stunned = false
	} else if b.Decide != nil {
		b.Decide(e, m)
	}

	if b.After != nil {
		b.After(m, startedStunned)
	}
}

// seekPlayer steps to the adjacent open tile closest to the player, or
// attacks the player if that is where the step leads. Ties go to the
// first tile in the grid's neighbor order.
func seekPlayer(e *Engine, m *entity.Monster) {
	player := e.state.Player()
	if player == nil {
		return
	}

	var best *candidate
	for _, t := range e.state.Grid.AdjacentPassableNeighbors(m.Tile) {
		if occupant := e.state.Occupant(t); occupant != nil && !occupant.IsPlayer() {
			continue
		}
		d := t.Dist(player.Tile)
		if best == nil || d < best.dist {
			best = &candidate{dx: t.X - m.Tile.X, dy: t.Y - m.Tile.Y, dist: d}
		}
	}
	if best == nil {
		return
	}
	e.resolver.TryMove(m, best.dx, best.dy)
}

type candidate struct {
	dx, dy int
	dist   int
}

// doubleMove seeks twice unless the first action was a strike.
func doubleMove(e *Engine, m *entity.Monster) {
	m.AttackedThisTurn = false
	seekPlayer(e, m)
	if !m.AttackedThisTurn && !m.Dead {
		seekPlayer(e, m)
	}
}

// restEveryOtherTurn stuns the monster for its next turn whenever it
// entered this one unstunned.
func restEveryOtherTurn(m *entity.Monster, startedStunned bool) {
	if !startedStunned {
		combat.Stun(m)
	}
}
