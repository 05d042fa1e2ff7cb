package spell

import (
	"github.com/samdwyer/gridspell/internal/combat"
	"github.com/samdwyer/gridspell/internal/entity"
	"github.com/samdwyer/gridspell/internal/gamestate"
	"github.com/samdwyer/gridspell/internal/world"
)

const (
	quakeShake        = 20
	maelstromCooldown = 2
	powerBonus        = 5
	braveryShield     = 2

	boltDamage  = 4
	crossDamage = 2
	exDamage    = 3
)

// livingPlayer returns the player if one is alive.
func livingPlayer(s *gamestate.State) *entity.Monster {
	p := s.Player()
	if p == nil || p.Dead {
		return nil
	}
	return p
}

func woop(s *gamestate.State) {
	p := livingPlayer(s)
	if p == nil {
		return
	}
	if t := s.Grid.RandomPassable(); t != nil {
		p.MoveTo(t)
	}
}

func quake(s *gamestate.State) {
	s.Grid.Each(func(t *world.Tile) {
		m := s.Occupant(t)
		if m == nil {
			return
		}
		walls := 4 - len(s.Grid.AdjacentPassableNeighbors(t))
		combat.Hit(m, walls*2)
	})
	s.ShakeAmount = quakeShake
}

func maelstrom(s *gamestate.State) {
	for _, m := range s.Roster.Monsters() {
		if t := s.Grid.RandomPassable(); t != nil {
			m.MoveTo(t)
		}
		m.TeleportCounter = maelstromCooldown
	}
}

func mulligan(s *gamestate.State) {
	p := livingPlayer(s)
	if p == nil || s.StartLevel == nil {
		return
	}
	spells := make([]string, len(p.Spells))
	copy(spells, p.Spells)
	s.StartLevel(s.Level, spells)
}

func aura(s *gamestate.State) {
	p := livingPlayer(s)
	if p == nil {
		return
	}
	for _, t := range s.Grid.AdjacentNeighbors(p.Tile) {
		t.SetEffect(world.SpriteHeal)
		if m := s.Occupant(t); m != nil {
			combat.Heal(m, 1)
		}
	}
	p.Tile.SetEffect(world.SpriteHeal)
	combat.Heal(p, 1)
}

func dash(s *gamestate.State) {
	p := livingPlayer(s)
	if p == nil || !p.HasMoved || p.LastMove.IsZero() {
		return
	}

	dest := p.Tile
	for {
		next := s.Grid.Neighbor(dest, p.LastMove.DX, p.LastMove.DY)
		if !next.Passable() || next.Occupied() {
			break
		}
		dest = next
	}
	if dest == p.Tile {
		return
	}

	p.MoveTo(dest)
	for _, t := range s.Grid.AdjacentNeighbors(dest) {
		m := s.Occupant(t)
		if m == nil {
			continue
		}
		t.SetEffect(world.SpriteBlast)
		combat.Stun(m)
		combat.Hit(m, 1)
	}
}

func dig(s *gamestate.State) {
	s.Grid.Each(func(t *world.Tile) {
		if !t.Passable() {
			s.Grid.Replace(t, world.KindFloor)
		}
	})
	if p := livingPlayer(s); p != nil {
		p.Tile.SetEffect(world.SpriteHeal)
		combat.Heal(p, 2)
	}
}

func kingmaker(s *gamestate.State) {
	for _, m := range s.Roster.Monsters() {
		combat.Heal(m, 1)
		m.Tile.Treasure = true
	}
}

func alchemy(s *gamestate.State) {
	p := livingPlayer(s)
	if p == nil {
		return
	}
	for _, t := range s.Grid.AdjacentNeighbors(p.Tile) {
		if !t.Passable() && s.Grid.InBounds(t.X, t.Y) {
			s.Grid.Replace(t, world.KindFloor).Treasure = true
		}
	}
}

func power(s *gamestate.State) {
	if p := livingPlayer(s); p != nil {
		p.BonusAttack = powerBonus
	}
}

// bubble copies each empty slot's predecessor into it, scanning from the
// last slot down, so a spell spreads at most one slot per cast.
func bubble(s *gamestate.State) {
	p := livingPlayer(s)
	if p == nil {
		return
	}
	for i := len(p.Spells) - 1; i > 0; i-- {
		if p.Spells[i] == "" {
			p.Spells[i] = p.Spells[i-1]
		}
	}
}

func bravery(s *gamestate.State) {
	p := livingPlayer(s)
	if p == nil {
		return
	}
	p.Shield = braveryShield
	for _, m := range s.Roster.Monsters() {
		combat.Stun(m)
	}
}

func bolt(s *gamestate.State) {
	p := livingPlayer(s)
	if p == nil || !p.HasMoved {
		return
	}
	beam(s, p.LastMove, beamSprite(p.LastMove), boltDamage)
}

func cross(s *gamestate.State) {
	for _, dir := range world.Orthogonal {
		beam(s, dir, beamSprite(dir), crossDamage)
	}
}

func ex(s *gamestate.State) {
	for _, dir := range world.Diagonal {
		beam(s, dir, world.SpriteBlast, exDamage)
	}
}

func beamSprite(dir world.Offset) world.Sprite {
	dy := dir.DY
	if dy < 0 {
		dy = -dy
	}
	return world.SpriteBoltH + world.Sprite(dy)
}

// beam travels from the player in dir until the next tile is impassable,
// damaging every occupant it passes and marking every tile it enters.
// Occupants do not stop it.
func beam(s *gamestate.State, dir world.Offset, effect world.Sprite, damage int) {
	p := livingPlayer(s)
	if p == nil || dir.IsZero() {
		return
	}
	t := p.Tile
	for {
		next := s.Grid.Neighbor(t, dir.DX, dir.DY)
		if !next.Passable() {
			return
		}
		t = next
		if m := s.Occupant(t); m != nil {
			combat.Hit(m, damage)
		}
		t.SetEffect(effect)
	}
}
