// Package gamestate holds the shared state that behaviors and spells mutate.
package gamestate

import (
	"github.com/samdwyer/gridspell/internal/entity"
	"github.com/samdwyer/gridspell/internal/world"
)

// LevelStarter restarts play on the given level, handing the player the
// carried-over spell loadout.
type LevelStarter func(level int, spells []string)

// State is the live game: grid, entities, and the player. Every pass
// (a turn or a spell cast) mutates it in place and runs to completion
// before the next one starts.
type State struct {
	Grid     *world.Grid
	Roster   *entity.Roster
	PlayerID world.ActorID

	Level int
	Turn  int

	// ShakeAmount is a request for screen shake, decayed by the renderer.
	ShakeAmount int

	// StartLevel is the level generation hook. It may be nil.
	StartLevel LevelStarter
}

// New creates a state over the given grid and roster.
func New(grid *world.Grid, roster *entity.Roster, player *entity.Monster) *State {
	s := &State{
		Grid:   grid,
		Roster: roster,
		Level:  1,
	}
	if player != nil {
		s.PlayerID = player.ID
	}
	return s
}

// Player returns the player monster, or nil if none is registered.
func (s *State) Player() *entity.Monster {
	return s.Roster.Get(s.PlayerID)
}

// Occupant returns the monster standing on t, or nil.
func (s *State) Occupant(t *world.Tile) *entity.Monster {
	return s.Roster.At(t)
}
