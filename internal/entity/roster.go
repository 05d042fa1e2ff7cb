package entity

import "github.com/samdwyer/gridspell/internal/world"

// Roster is the arena that owns every monster of a level. Tiles refer to
// monsters by ID; IDs start at 1 and are never reused within a roster.
type Roster struct {
	order []*Monster
	byID  map[world.ActorID]*Monster
	next  world.ActorID
}

// NewRoster creates an empty roster.
func NewRoster() *Roster {
	return &Roster{
		byID: make(map[world.ActorID]*Monster),
		next: 1,
	}
}

// Spawn creates a monster of the given kind on tile t.
func (r *Roster) Spawn(kind Kind, t *world.Tile) *Monster {
	m := &Monster{
		ID:     r.next,
		Kind:   kind,
		Sprite: kind.Sprite(),
		HP:     kind.StartingHP(),
	}
	r.next++
	m.MoveTo(t)
	r.order = append(r.order, m)
	r.byID[m.ID] = m
	return m
}

// Get returns the monster with the given ID, or nil.
func (r *Roster) Get(id world.ActorID) *Monster {
	if id == world.NoActor {
		return nil
	}
	return r.byID[id]
}

// At returns the monster standing on t, or nil.
func (r *Roster) At(t *world.Tile) *Monster {
	return r.Get(t.Occupant)
}

// All returns every monster in spawn order, the dead included.
func (r *Roster) All() []*Monster {
	return r.order
}

// Monsters returns the living non-player monsters in spawn order.
func (r *Roster) Monsters() []*Monster {
	var out []*Monster
	for _, m := range r.order {
		if !m.IsPlayer() && m.Alive() {
			out = append(out, m)
		}
	}
	return out
}

// Prune drops dead non-player monsters and returns how many were removed.
func (r *Roster) Prune() int {
	kept := r.order[:0]
	removed := 0
	for _, m := range r.order {
		if m.Dead && !m.IsPlayer() {
			delete(r.byID, m.ID)
			removed++
			continue
		}
		kept = append(kept, m)
	}
	r.order = kept
	return removed
}

// Count returns the number of monsters in the roster.
func (r *Roster) Count() int {
	return len(r.order)
}
