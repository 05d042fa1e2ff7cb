// Package spell is the catalog of one-shot effects the player can cast.
//
// Every effect runs synchronously over the whole game state and always
// completes; an effect with nothing to act on does nothing.
package spell

import (
	"context"
	"errors"
	"fmt"
	"sort"

	"go.opentelemetry.io/otel/attribute"

	"github.com/samdwyer/gridspell/internal/gamestate"
	"github.com/samdwyer/gridspell/internal/telemetry"
)

// ErrUnknownSpell is returned when casting a name that is not registered.
var ErrUnknownSpell = errors.New("unknown spell")

// Name identifies a spell.
type Name string

const (
	Woop      Name = "WOOP"      // teleport the player
	Quake     Name = "QUAKE"     // area damage scaled by nearby walls
	Maelstrom Name = "MAELSTROM" // teleport every monster
	Mulligan  Name = "MULLIGAN"  // restart the level keeping spells
	Aura      Name = "AURA"      // heal the player and neighbors
	Dash      Name = "DASH"      // slide and stun on arrival
	Dig       Name = "DIG"       // remove every wall
	Kingmaker Name = "KINGMAKER" // heal monsters, drop treasure
	Alchemy   Name = "ALCHEMY"   // turn adjacent walls into treasure
	Power     Name = "POWER"     // bonus attack charge
	Bubble    Name = "BUBBLE"    // duplicate loadout slots forward
	Bravery   Name = "BRAVERY"   // shield and stun all
	Bolt      Name = "BOLT"      // beam in the last move direction
	Cross     Name = "CROSS"     // orthogonal beams
	Ex        Name = "EX"        // diagonal beams
)

// Effect mutates the game state.
type Effect func(s *gamestate.State)

// registry is filled once at package init and never written again.
var registry = map[Name]Effect{
	Woop:      woop,
	Quake:     quake,
	Maelstrom: maelstrom,
	Mulligan:  mulligan,
	Aura:      aura,
	Dash:      dash,
	Dig:       dig,
	Kingmaker: kingmaker,
	Alchemy:   alchemy,
	Power:     power,
	Bubble:    bubble,
	Bravery:   bravery,
	Bolt:      bolt,
	Cross:     cross,
	Ex:        ex,
}

// Lookup returns the effect registered under name.
func Lookup(name Name) (Effect, bool) {
	effect, ok := registry[name]
	return effect, ok
}

// Names returns every registered spell name in sorted order.
func Names() []Name {
	names := make([]Name, 0, len(registry))
	for name := range registry {
		names = append(names, name)
	}
	sort.Slice(names, func(i, j int) bool { return names[i] < names[j] })
	return names
}

// Cast runs the named effect against s.
func Cast(ctx context.Context, s *gamestate.State, name Name) error {
	tracer := telemetry.Tracer("spell")
	_, span := tracer.Start(ctx, "spell.cast")
	defer span.End()
	span.SetAttributes(
		attribute.String("spell", string(name)),
		attribute.Int("level", s.Level),
		attribute.Int("turn", s.Turn),
	)

	effect, ok := Lookup(name)
	if !ok {
		span.SetAttributes(attribute.Bool("failed", true))
		return fmt.Errorf("%w: %q", ErrUnknownSpell, name)
	}
	effect(s)
	return nil
}
