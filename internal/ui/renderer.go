package ui

import (
	"fmt"
	"math/rand"
	"strings"

	"github.com/gdamore/tcell/v2"

	"github.com/samdwyer/gridspell/internal/gamedata"
	"github.com/samdwyer/gridspell/internal/gamestate"
	"github.com/samdwyer/gridspell/internal/world"
)

const (
	// Terminal cells per tile. Four columns fit a row of three hp pips.
	TileWidth  = 4
	TileHeight = 3

	originX = 1
	originY = 1
)

// Renderer draws the game state. It implements entity.Canvas.
type Renderer struct {
	screen *Screen
	sheet  *gamedata.SpriteSheet
	rng    *rand.Rand

	shakeX, shakeY int
}

// NewRenderer creates a renderer for the given screen and sprite sheet.
func NewRenderer(screen *Screen, sheet *gamedata.SpriteSheet, rng *rand.Rand) *Renderer {
	return &Renderer{screen: screen, sheet: sheet, rng: rng}
}

// DrawSprite draws a sprite at tile coordinates.
func (r *Renderer) DrawSprite(sprite world.Sprite, x, y float64) {
	g := r.sheet.Glyph(sprite)
	cx := originX + r.shakeX + int(x*TileWidth)
	cy := originY + r.shakeY + int(y*TileHeight)
	r.screen.SetContent(cx, cy, g.Rune, g.Style)
}

// Render draws the grid, effects, and entities, then a status line.
// Effects fade and the shake request decays by one per call.
func (r *Renderer) Render(s *gamestate.State, status string) {
	r.screen.Clear()
	r.applyShake(s)

	s.Grid.Each(func(t *world.Tile) {
		x, y := float64(t.X), float64(t.Y)
		r.DrawSprite(t.Kind.Sprite(), x, y)
		if t.Treasure {
			r.DrawSprite(world.SpriteTreasure, x+0.5, y)
		}
		if t.EffectCounter > 0 {
			r.DrawSprite(t.Effect, x+0.75, y)
			t.FadeEffect()
		}
	})

	for _, m := range s.Roster.All() {
		if m.Alive() {
			m.Draw(r)
		}
	}

	r.RenderMessage(status, originY+s.Grid.Size*TileHeight+1)
	r.screen.Show()
}

func (r *Renderer) applyShake(s *gamestate.State) {
	r.shakeX, r.shakeY = 0, 0
	if s.ShakeAmount <= 0 {
		return
	}
	s.ShakeAmount--
	if r.rng != nil {
		r.shakeX = r.rng.Intn(3) - 1
		r.shakeY = r.rng.Intn(3) - 1
	}
}

// RenderMessage displays a message starting at row y.
func (r *Renderer) RenderMessage(msg string, y int) {
	style := tcell.StyleDefault.Foreground(tcell.ColorWhite)
	for i, ch := range msg {
		r.screen.SetContent(i, y, ch, style)
	}
}

// StatusLine summarizes the run for the bottom of the screen.
func StatusLine(s *gamestate.State) string {
	p := s.Player()
	if p == nil {
		return fmt.Sprintf("Level %d", s.Level)
	}

	var slots []string
	for i, name := range p.Spells {
		if name == "" {
			name = "-"
		}
		slots = append(slots, fmt.Sprintf("%d:%s", i+1, name))
	}
	return fmt.Sprintf("Level %d  Turn %d  HP %d  %s", s.Level, s.Turn, p.HP, strings.Join(slots, " "))
}
