package game

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/samdwyer/gridspell/internal/combat"
	"github.com/samdwyer/gridspell/internal/spell"
	"github.com/samdwyer/gridspell/internal/world"
)

func newTestGame(t *testing.T, configure func(*Config)) *Game {
	t.Helper()
	cfg := DefaultConfig()
	cfg.Seed = 7
	if configure != nil {
		configure(&cfg)
	}
	g, err := New(context.Background(), cfg)
	require.NoError(t, err)
	return g
}

func killMonsters(g *Game) {
	for _, m := range g.State().Roster.Monsters() {
		combat.Die(m)
	}
}

func TestNewRunStartsFirstLevel(t *testing.T) {
	g := newTestGame(t, nil)
	s := g.State()

	player := s.Player()
	require.NotNil(t, player)
	assert.Equal(t, 1, s.Level)
	assert.Equal(t, 0, s.Turn)
	assert.Equal(t, 3, player.HP)
	assert.Len(t, player.Spells, 1)
	assert.Equal(t, player.ID, player.Tile.Occupant)
	assert.Len(t, s.Roster.Monsters(), 2)
	assert.Equal(t, PhasePlaying, g.Phase())
}

func TestNewRunIsReproducible(t *testing.T) {
	a := newTestGame(t, nil).State()
	b := newTestGame(t, nil).State()

	pa, pb := a.Player(), b.Player()
	assert.Equal(t, [2]int{pa.Tile.X, pa.Tile.Y}, [2]int{pb.Tile.X, pb.Tile.Y})
	assert.Equal(t, pa.Spells, pb.Spells)

	ma, mb := a.Roster.Monsters(), b.Roster.Monsters()
	require.Len(t, mb, len(ma))
	for i := range ma {
		assert.Equal(t, ma[i].Kind, mb[i].Kind)
	}
}

func TestLoadoutSpellsAreDistinct(t *testing.T) {
	g := newTestGame(t, func(c *Config) { c.SpellSlots = 5 })

	spells := g.State().Player().Spells
	require.Len(t, spells, 5)
	seen := map[string]bool{}
	for _, name := range spells {
		_, ok := spell.Lookup(spell.Name(name))
		assert.True(t, ok, "unknown spell %q", name)
		assert.False(t, seen[name], "duplicate spell %q", name)
		seen[name] = true
	}
}

func TestCastSpellEmptyOrMissingSlot(t *testing.T) {
	g := newTestGame(t, nil)
	ctx := context.Background()
	g.State().Player().Spells = []string{""}

	for _, slot := range []int{0, 4, -1} {
		ok, err := g.CastSpell(ctx, slot)
		require.NoError(t, err)
		assert.False(t, ok, "slot %d", slot)
	}
	assert.Equal(t, 0, g.State().Turn)
}

func TestCastSpellClearsSlotAndTicks(t *testing.T) {
	g := newTestGame(t, nil)
	player := g.State().Player()
	player.Spells = []string{"DIG"}

	ok, err := g.CastSpell(context.Background(), 0)
	require.NoError(t, err)
	require.True(t, ok)

	assert.Equal(t, []string{""}, player.Spells)
	assert.Equal(t, 1, g.State().Turn)
	assert.Equal(t, world.SpriteHeal, player.Tile.Effect)
}

func TestCastUnknownSpellKeepsSlot(t *testing.T) {
	g := newTestGame(t, nil)
	player := g.State().Player()
	player.Spells = []string{"NOPE"}

	ok, err := g.CastSpell(context.Background(), 0)
	assert.False(t, ok)
	assert.ErrorIs(t, err, spell.ErrUnknownSpell)
	assert.Equal(t, []string{"NOPE"}, player.Spells)
	assert.Equal(t, 0, g.State().Turn)
}

func TestMulliganRestartsLevelKeepingSpells(t *testing.T) {
	g := newTestGame(t, nil)
	s := g.State()
	oldGrid := s.Grid
	s.Player().Spells = []string{"MULLIGAN", "DIG"}

	ok, err := g.CastSpell(context.Background(), 0)
	require.NoError(t, err)
	require.True(t, ok)

	assert.NotSame(t, oldGrid, s.Grid)
	assert.Equal(t, 1, s.Level)
	assert.Equal(t, 1, s.Turn, "the cast still spends a turn on the new level")
	assert.Equal(t, []string{"", "DIG"}, s.Player().Spells)
}

func TestClearingLevelAdvances(t *testing.T) {
	g := newTestGame(t, nil)
	s := g.State()
	hp := s.Player().HP
	killMonsters(g)

	require.NoError(t, g.checkProgress(context.Background()))

	player := s.Player()
	assert.Equal(t, 2, s.Level)
	assert.Equal(t, hp+1, player.HP)
	assert.Len(t, player.Spells, 2)
	assert.Len(t, s.Roster.Monsters(), 3)
	assert.Equal(t, PhasePlaying, g.Phase())
}

func TestClearingLastLevelWins(t *testing.T) {
	g := newTestGame(t, func(c *Config) { c.MaxLevel = 1 })
	killMonsters(g)

	require.NoError(t, g.checkProgress(context.Background()))
	assert.Equal(t, PhaseWon, g.Phase())

	ok, err := g.MovePlayer(context.Background(), 1, 0)
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestPlayerDeathEndsRun(t *testing.T) {
	g := newTestGame(t, nil)
	ctx := context.Background()
	player := g.State().Player()
	player.Spells = []string{"DIG"}
	combat.Die(player)

	require.NoError(t, g.checkProgress(ctx))
	assert.Equal(t, PhaseDead, g.Phase())

	ok, err := g.CastSpell(ctx, 0)
	require.NoError(t, err)
	assert.False(t, ok)

	require.NoError(t, g.apply(ctx, command{kind: cmdNewRun}))
	assert.Equal(t, PhasePlaying, g.Phase())
	assert.Equal(t, 1, g.State().Level)
	assert.Equal(t, 3, g.State().Player().HP)
}

func TestQuitStopsLoop(t *testing.T) {
	g := newTestGame(t, nil)

	require.NoError(t, g.apply(context.Background(), command{kind: cmdQuit}))
	assert.False(t, g.running)
}

func TestDecodeRune(t *testing.T) {
	tests := []struct {
		r    rune
		want command
	}{
		{'w', command{kind: cmdMove, dx: 0, dy: -1}},
		{'S', command{kind: cmdMove, dx: 0, dy: 1}},
		{'a', command{kind: cmdMove, dx: -1, dy: 0}},
		{'d', command{kind: cmdMove, dx: 1, dy: 0}},
		{'1', command{kind: cmdCast, slot: 0}},
		{'9', command{kind: cmdCast, slot: 8}},
		{'0', command{}},
		{'q', command{kind: cmdQuit}},
		{'n', command{kind: cmdNewRun}},
		{'x', command{}},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, decodeRune(tt.r), "rune %q", tt.r)
	}
}

func TestPhaseString(t *testing.T) {
	tests := []struct {
		phase    Phase
		expected string
	}{
		{PhasePlaying, "playing"},
		{PhaseWon, "won"},
		{PhaseDead, "dead"},
		{Phase(99), "unknown"},
	}

	for _, tt := range tests {
		if got := tt.phase.String(); got != tt.expected {
			t.Errorf("Phase(%d).String() = %q, want %q", tt.phase, got, tt.expected)
		}
	}
	if PhasePlaying.Over() || !PhaseDead.Over() {
		t.Error("Over() reports the wrong phases as finished")
	}
}
