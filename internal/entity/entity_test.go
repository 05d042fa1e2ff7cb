package entity

import (
	"math/rand"
	"testing"

	"github.com/samdwyer/gridspell/internal/world"
)

func TestKindTable(t *testing.T) {
	tests := []struct {
		kind   Kind
		name   string
		sprite world.Sprite
		hp     int
	}{
		{KindPlayer, "player", world.SpritePlayer, 3},
		{KindBird, "bird", world.SpriteBird, 3},
		{KindSnake, "snake", world.SpriteSnake, 1},
		{KindTank, "tank", world.SpriteTank, 2},
		{KindEater, "eater", world.SpriteEater, 1},
		{KindJester, "jester", world.SpriteJester, 2},
	}

	for _, tt := range tests {
		if got := tt.kind.String(); got != tt.name {
			t.Errorf("Kind(%d).String() = %q, want %q", tt.kind, got, tt.name)
		}
		if got := tt.kind.Sprite(); got != tt.sprite {
			t.Errorf("%s.Sprite() = %d, want %d", tt.name, got, tt.sprite)
		}
		if got := tt.kind.StartingHP(); got != tt.hp {
			t.Errorf("%s.StartingHP() = %d, want %d", tt.name, got, tt.hp)
		}
		if parsed, ok := ParseKind(tt.name); !ok || parsed != tt.kind {
			t.Errorf("ParseKind(%q) = %v, %v", tt.name, parsed, ok)
		}
	}

	if _, ok := ParseKind("dragon"); ok {
		t.Error("ParseKind(\"dragon\") should fail")
	}
	if Kind(99).String() != "unknown" {
		t.Error("unknown kind should stringify as unknown")
	}
}

func TestFactionPredicate(t *testing.T) {
	for _, k := range Kinds {
		if got, want := k.IsPlayer(), k == KindPlayer; got != want {
			t.Errorf("%s.IsPlayer() = %v, want %v", k, got, want)
		}
	}
}

func TestSpawnAndMoveKeepOccupancy(t *testing.T) {
	g := world.NewGrid(5, rand.New(rand.NewSource(1)))
	r := NewRoster()

	a := r.Spawn(KindBird, g.Get(1, 1))
	b := r.Spawn(KindTank, g.Get(3, 3))

	if a.ID == b.ID || a.ID == world.NoActor {
		t.Fatalf("Spawn() ids = %d, %d; want distinct non-zero", a.ID, b.ID)
	}
	if g.Get(1, 1).Occupant != a.ID || r.At(g.Get(1, 1)) != a {
		t.Error("Spawn() should occupy the tile")
	}

	a.MoveTo(g.Get(1, 2))
	if g.Get(1, 1).Occupied() {
		t.Error("MoveTo() should vacate the source tile")
	}
	if r.At(g.Get(1, 2)) != a || a.Tile != g.Get(1, 2) {
		t.Error("MoveTo() should occupy the destination tile")
	}
}

func TestMoveToDoesNotClearOtherOccupant(t *testing.T) {
	g := world.NewGrid(5, rand.New(rand.NewSource(1)))
	r := NewRoster()
	a := r.Spawn(KindBird, g.Get(1, 1))

	// a stale reference: a's tile was handed to someone else
	g.Get(1, 1).Occupant = 42
	a.MoveTo(g.Get(2, 2))

	if g.Get(1, 1).Occupant != 42 {
		t.Error("MoveTo() cleared a tile it no longer occupied")
	}
}

func TestRosterMonstersAndPrune(t *testing.T) {
	g := world.NewGrid(5, rand.New(rand.NewSource(1)))
	r := NewRoster()
	player := r.Spawn(KindPlayer, g.Get(0, 0))
	bird := r.Spawn(KindBird, g.Get(1, 0))
	snake := r.Spawn(KindSnake, g.Get(2, 0))

	if got := r.Monsters(); len(got) != 2 || got[0] != bird || got[1] != snake {
		t.Fatalf("Monsters() = %v, want [bird snake]", got)
	}

	bird.Dead = true
	player.Dead = true
	if removed := r.Prune(); removed != 1 {
		t.Errorf("Prune() removed %d, want 1", removed)
	}
	if r.Get(bird.ID) != nil {
		t.Error("pruned monster still reachable by ID")
	}
	if r.Get(player.ID) != player {
		t.Error("Prune() must keep the player")
	}
	if r.Count() != 2 {
		t.Errorf("Count() = %d, want 2", r.Count())
	}
	if r.Get(world.NoActor) != nil {
		t.Error("Get(NoActor) should be nil")
	}
}

func TestSnapshotKeys(t *testing.T) {
	g := world.NewGrid(5, rand.New(rand.NewSource(1)))
	m := NewRoster().Spawn(KindJester, g.Get(2, 4))

	snap := m.Snapshot()
	if len(snap) != 3 {
		t.Fatalf("Snapshot() has %d keys, want 3", len(snap))
	}
	if snap["tile"] != [2]int{2, 4} {
		t.Errorf("tile = %v", snap["tile"])
	}
	if snap["sprite"] != int(world.SpriteJester) {
		t.Errorf("sprite = %v", snap["sprite"])
	}
	if snap["hp"] != 2 {
		t.Errorf("hp = %v", snap["hp"])
	}
	if m.String() == "" {
		t.Error("String() should not be empty")
	}
}

type recordingCanvas struct {
	calls []drawCall
}

type drawCall struct {
	sprite world.Sprite
	x, y   float64
}

func (c *recordingCanvas) DrawSprite(sprite world.Sprite, x, y float64) {
	c.calls = append(c.calls, drawCall{sprite, x, y})
}

func TestDrawEmitsSpriteAndPips(t *testing.T) {
	g := world.NewGrid(5, rand.New(rand.NewSource(1)))
	m := NewRoster().Spawn(KindBird, g.Get(1, 2))
	m.HP = 4

	var c recordingCanvas
	m.Draw(&c)

	if len(c.calls) != 5 {
		t.Fatalf("Draw() made %d calls, want 5", len(c.calls))
	}
	if c.calls[0] != (drawCall{world.SpriteBird, 1, 2}) {
		t.Errorf("first call = %+v", c.calls[0])
	}

	want := []drawCall{
		{world.SpriteHP, 1, 2 + pipOffsetY},
		{world.SpriteHP, 1 + pipSpacing, 2 + pipOffsetY},
		{world.SpriteHP, 1 + 2*pipSpacing, 2 + pipOffsetY},
		{world.SpriteHP, 1, 2 + pipOffsetY + pipSpacing},
	}
	for i, w := range want {
		if c.calls[i+1] != w {
			t.Errorf("pip %d = %+v, want %+v", i, c.calls[i+1], w)
		}
	}
}
