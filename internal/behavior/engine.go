package behavior

import (
	"context"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	"github.com/samdwyer/gridspell/internal/combat"
	"github.com/samdwyer/gridspell/internal/gamestate"
	"github.com/samdwyer/gridspell/internal/telemetry"
)

// Engine advances turns over a shared game state.
type Engine struct {
	state    *gamestate.State
	resolver *combat.Resolver
	tracer   trace.Tracer
}

// NewEngine creates an engine over state.
func NewEngine(state *gamestate.State, tracer trace.Tracer) *Engine {
	if tracer == nil {
		tracer = telemetry.Tracer("behavior")
	}
	return &Engine{
		state:    state,
		resolver: combat.NewResolver(state),
		tracer:   tracer,
	}
}

// MovePlayer steps or attacks with the player. Only a legal action
// consumes a turn, in which case every other monster acts once.
func (e *Engine) MovePlayer(ctx context.Context, dx, dy int) bool {
	player := e.state.Player()
	if player == nil || player.Dead {
		return false
	}
	if !e.resolver.TryMove(player, dx, dy) {
		return false
	}
	e.Tick(ctx)
	return true
}

// Tick runs one turn: every living non-player monster updates once in
// spawn order, then the dead are dropped from the roster.
func (e *Engine) Tick(ctx context.Context) {
	_, span := e.tracer.Start(ctx, "turn.tick")
	defer span.End()

	e.state.Turn++
	acted, skipped := 0, 0
	for _, m := range e.state.Roster.Monsters() {
		if m.TeleportCounter > 0 {
			m.TeleportCounter--
			if m.TeleportCounter > 0 {
				skipped++
				continue
			}
		}
		e.Update(m)
		acted++
	}
	pruned := e.state.Roster.Prune()

	span.SetAttributes(
		attribute.Int("turn", e.state.Turn),
		attribute.Int("acted", acted),
		attribute.Int("skipped", skipped),
		attribute.Int("pruned", pruned),
	)
}
