package game

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"

	"github.com/samdwyer/gridspell/internal/entity"
	"github.com/samdwyer/gridspell/internal/spell"
	"github.com/samdwyer/gridspell/internal/world"
)

// ErrNoPlayer is returned when a level has no room for the player.
var ErrNoPlayer = errors.New("no tile to place the player")

// NewRun starts a fresh run on the configured first level with a random
// loadout of distinct spells.
func (g *Game) NewRun(ctx context.Context) error {
	g.runID = uuid.New()
	return g.StartLevel(ctx, g.cfg.StartLevel, g.cfg.StartingHP, g.randomLoadout(g.cfg.SpellSlots))
}

// StartLevel replaces the grid and roster with a freshly generated level.
// The player enters with hp and spells; level+1 monsters are spawned.
func (g *Game) StartLevel(ctx context.Context, level, hp int, spells []string) error {
	ctx, span := g.tracer.Start(ctx, "level.start")
	defer span.End()

	grid := world.NewGrid(g.cfg.GridSize, g.rng)
	if err := grid.Generate(ctx); err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "generate failed")
		return fmt.Errorf("level %d: %w", level, err)
	}

	roster := entity.NewRoster()
	start := grid.RandomPassable()
	if start == nil {
		return fmt.Errorf("level %d: %w", level, ErrNoPlayer)
	}
	player := roster.Spawn(entity.KindPlayer, start)
	player.HP = hp
	player.Spells = spells

	for i := 0; i < level+1; i++ {
		t := grid.RandomPassable()
		if t == nil {
			break
		}
		roster.Spawn(g.monsters.SpawnRandom(g.rng), t)
	}

	// The state is updated in place so the engine keeps working on it.
	s := g.state
	s.Grid = grid
	s.Roster = roster
	s.PlayerID = player.ID
	s.Level = level
	s.Turn = 0
	s.ShakeAmount = 0

	g.phase = PhasePlaying
	g.message = fmt.Sprintf("Level %d", level)

	span.SetAttributes(
		attribute.String("run.id", g.runID.String()),
		attribute.Int("level", level),
		attribute.Int("player.hp", hp),
		attribute.Int("player.spells", len(spells)),
		attribute.Int("monsters", len(roster.Monsters())),
	)
	return nil
}

// MovePlayer steps or attacks with the player. It reports whether a turn
// was spent.
func (g *Game) MovePlayer(ctx context.Context, dx, dy int) (bool, error) {
	if g.phase.Over() {
		return false, nil
	}
	if !g.engine.MovePlayer(ctx, dx, dy) {
		return false, nil
	}
	return true, g.checkProgress(ctx)
}

// CastSpell casts the spell in the given loadout slot. An empty or
// missing slot does nothing. A cast empties the slot, applies the effect
// and then spends a turn.
func (g *Game) CastSpell(ctx context.Context, slot int) (bool, error) {
	if g.phase.Over() {
		return false, nil
	}
	player := g.state.Player()
	if player == nil || player.Dead {
		return false, ErrNoPlayer
	}
	if slot < 0 || slot >= len(player.Spells) || player.Spells[slot] == "" {
		return false, nil
	}

	name := spell.Name(player.Spells[slot])
	if _, ok := spell.Lookup(name); !ok {
		return false, fmt.Errorf("slot %d: %w: %q", slot+1, spell.ErrUnknownSpell, name)
	}
	player.Spells[slot] = ""

	var restartErr error
	g.state.StartLevel = func(level int, spells []string) {
		// a restart keeps the hp the player has now
		restartErr = g.StartLevel(ctx, level, player.HP, spells)
	}
	if err := spell.Cast(ctx, g.state, name); err != nil {
		return false, err
	}
	if restartErr != nil {
		return false, restartErr
	}
	g.message = string(name)

	g.engine.Tick(ctx)
	return true, g.checkProgress(ctx)
}

// checkProgress ends or advances the run after a turn.
func (g *Game) checkProgress(ctx context.Context) error {
	player := g.state.Player()
	if player == nil || player.Dead {
		g.phase = PhaseDead
		g.message = fmt.Sprintf("You died on level %d. Press n for a new run.", g.state.Level)
		return nil
	}
	if len(g.state.Roster.Monsters()) > 0 {
		return nil
	}
	if g.state.Level >= g.cfg.MaxLevel {
		g.phase = PhaseWon
		g.message = "You won! Press n for a new run."
		return nil
	}

	spells := append([]string(nil), player.Spells...)
	if len(spells) < maxSpellSlots {
		spells = append(spells, string(g.randomSpell()))
	}
	return g.StartLevel(ctx, g.state.Level+1, player.HP+1, spells)
}

// randomLoadout picks n distinct spells.
func (g *Game) randomLoadout(n int) []string {
	names := spell.Names()
	g.rng.Shuffle(len(names), func(i, j int) { names[i], names[j] = names[j], names[i] })
	if n > len(names) {
		n = len(names)
	}
	loadout := make([]string, n)
	for i := range loadout {
		loadout[i] = string(names[i])
	}
	return loadout
}

func (g *Game) randomSpell() spell.Name {
	names := spell.Names()
	return names[g.rng.Intn(len(names))]
}
