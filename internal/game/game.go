package game

import (
	"context"
	"fmt"
	"log"
	"math/rand"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/google/uuid"
	"go.opentelemetry.io/otel/trace"

	"github.com/samdwyer/gridspell/internal/behavior"
	"github.com/samdwyer/gridspell/internal/entity"
	"github.com/samdwyer/gridspell/internal/gamedata"
	"github.com/samdwyer/gridspell/internal/gamestate"
	"github.com/samdwyer/gridspell/internal/telemetry"
	"github.com/samdwyer/gridspell/internal/ui"
	"github.com/samdwyer/gridspell/internal/world"
)

// frameInterval paces effect fading and screen shake.
const frameInterval = 33 * time.Millisecond

// Game holds the entire game state.
type Game struct {
	cfg      Config
	rng      *rand.Rand
	monsters *gamedata.MonsterRegistry
	tracer   trace.Tracer
	runID    uuid.UUID

	state   *gamestate.State
	engine  *behavior.Engine
	phase   Phase
	message string

	screen   *ui.Screen
	renderer *ui.Renderer
	running  bool
}

// New creates a game and starts its first run. No terminal is opened
// until Run.
func New(ctx context.Context, cfg Config) (*Game, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	monsters, err := gamedata.LoadMonsterRegistry()
	if err != nil {
		return nil, fmt.Errorf("load monsters: %w", err)
	}

	seed := cfg.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	rng := rand.New(rand.NewSource(seed))

	g := &Game{
		cfg:      cfg,
		rng:      rng,
		monsters: monsters,
		tracer:   telemetry.Tracer("game"),
		state:    gamestate.New(world.NewGrid(cfg.GridSize, rng), entity.NewRoster(), nil),
		running:  true,
	}
	g.engine = behavior.NewEngine(g.state, telemetry.Tracer("behavior"))

	if err := g.NewRun(ctx); err != nil {
		return nil, err
	}
	return g, nil
}

// State returns the live game state.
func (g *Game) State() *gamestate.State {
	return g.state
}

// Phase returns where the current run stands.
func (g *Game) Phase() Phase {
	return g.phase
}

// Run opens the terminal and executes the main game loop until the
// player quits or ctx is cancelled.
func (g *Game) Run(ctx context.Context) error {
	screen, err := ui.NewScreen()
	if err != nil {
		return fmt.Errorf("open screen: %w", err)
	}
	defer screen.Close()

	sheet, err := gamedata.LoadSpriteSheet()
	if err != nil {
		return fmt.Errorf("load sprites: %w", err)
	}
	g.screen = screen
	g.renderer = ui.NewRenderer(screen, sheet, g.rng)

	done := make(chan struct{})
	defer close(done)
	events := make(chan tcell.Event)
	go func() {
		for {
			ev := screen.PollEvent()
			if ev == nil {
				return
			}
			select {
			case events <- ev:
			case <-done:
				return
			}
		}
	}()

	ticker := time.NewTicker(frameInterval)
	defer ticker.Stop()

	for g.running {
		g.render()

		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
		case ev := <-events:
			switch ev := ev.(type) {
			case *tcell.EventKey:
				if err := g.apply(ctx, decodeKey(ev)); err != nil {
					log.Printf("action failed: %v", err)
					g.message = err.Error()
				}
			case *tcell.EventResize:
				screen.Sync()
			}
		}
	}
	return nil
}

func (g *Game) render() {
	status := ui.StatusLine(g.state)
	if g.message != "" {
		status += "  " + g.message
	}
	g.renderer.Render(g.state, status)
}

type commandKind int

const (
	cmdNone commandKind = iota
	cmdMove
	cmdCast
	cmdQuit
	cmdNewRun
)

// command is a decoded key press.
type command struct {
	kind   commandKind
	dx, dy int
	slot   int
}

func move(o world.Offset) command {
	return command{kind: cmdMove, dx: o.DX, dy: o.DY}
}

// decodeKey maps a key event to a command.
func decodeKey(ev *tcell.EventKey) command {
	switch ev.Key() {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return command{kind: cmdQuit}
	case tcell.KeyUp:
		return move(world.Up)
	case tcell.KeyDown:
		return move(world.Down)
	case tcell.KeyLeft:
		return move(world.Left)
	case tcell.KeyRight:
		return move(world.Right)
	case tcell.KeyRune:
		return decodeRune(ev.Rune())
	}
	return command{}
}

func decodeRune(r rune) command {
	switch r {
	case 'w', 'W':
		return move(world.Up)
	case 's', 'S':
		return move(world.Down)
	case 'a', 'A':
		return move(world.Left)
	case 'd', 'D':
		return move(world.Right)
	case 'q', 'Q':
		return command{kind: cmdQuit}
	case 'n', 'N':
		return command{kind: cmdNewRun}
	}
	if r >= '1' && r <= '9' {
		return command{kind: cmdCast, slot: int(r - '1')}
	}
	return command{}
}

// apply runs a decoded command against the game.
func (g *Game) apply(ctx context.Context, cmd command) error {
	var err error
	switch cmd.kind {
	case cmdQuit:
		g.running = false
	case cmdNewRun:
		err = g.NewRun(ctx)
	case cmdMove:
		_, err = g.MovePlayer(ctx, cmd.dx, cmd.dy)
	case cmdCast:
		_, err = g.CastSpell(ctx, cmd.slot)
	}
	return err
}
