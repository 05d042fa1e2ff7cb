// Package entity provides the monsters that live on the grid, the player included.
package entity

import "github.com/samdwyer/gridspell/internal/world"

// Kind tags the variant of a monster.
type Kind int

const (
	KindPlayer Kind = iota
	KindBird
	KindSnake
	KindTank
	KindEater
	KindJester
)

// Kinds lists every variant in declaration order.
var Kinds = []Kind{KindPlayer, KindBird, KindSnake, KindTank, KindEater, KindJester}

// String returns the kind identifier used by game data.
func (k Kind) String() string {
	switch k {
	case KindPlayer:
		return "player"
	case KindBird:
		return "bird"
	case KindSnake:
		return "snake"
	case KindTank:
		return "tank"
	case KindEater:
		return "eater"
	case KindJester:
		return "jester"
	default:
		return "unknown"
	}
}

// ParseKind looks up a kind by its identifier.
func ParseKind(s string) (Kind, bool) {
	for _, k := range Kinds {
		if k.String() == s {
			return k, true
		}
	}
	return 0, false
}

// Sprite returns the sprite a living monster of this kind is drawn with.
func (k Kind) Sprite() world.Sprite {
	switch k {
	case KindPlayer:
		return world.SpritePlayer
	case KindBird:
		return world.SpriteBird
	case KindSnake:
		return world.SpriteSnake
	case KindTank:
		return world.SpriteTank
	case KindEater:
		return world.SpriteEater
	case KindJester:
		return world.SpriteJester
	default:
		return world.SpriteCorpse
	}
}

// StartingHP returns the hit points a new monster of this kind spawns with.
func (k Kind) StartingHP() int {
	switch k {
	case KindPlayer, KindBird:
		return 3
	case KindTank, KindJester:
		return 2
	case KindSnake, KindEater:
		return 1
	default:
		return 1
	}
}

// IsPlayer is the faction predicate: combat only harms across it.
func (k Kind) IsPlayer() bool {
	return k == KindPlayer
}
