package gamedata

import (
	"github.com/gdamore/tcell/v2"

	"github.com/samdwyer/gridspell/internal/world"
)

// SpriteDef maps a sprite id to its terminal glyph.
type SpriteDef struct {
	ID    int    `json:"id"`
	Name  string `json:"name"`
	Glyph string `json:"glyph"`
	Color string `json:"color"` // Hex color code (e.g., "#00FF00")
}

// SpritesFile represents the structure of sprites.json.
type SpritesFile struct {
	Sprites []SpriteDef `json:"sprites"`
}

// Glyph is a ready-to-draw sprite.
type Glyph struct {
	Rune  rune
	Style tcell.Style
}

// SpriteSheet resolves sprite ids to glyphs.
type SpriteSheet struct {
	glyphs map[world.Sprite]Glyph
}

// missingGlyph is drawn for sprite ids absent from the sheet.
var missingGlyph = Glyph{Rune: '?', Style: tcell.StyleDefault.Foreground(tcell.ColorPurple)}

// NewSpriteSheet builds a sheet from definitions. Bad colors fall back to white.
func NewSpriteSheet(defs []SpriteDef) *SpriteSheet {
	sheet := &SpriteSheet{glyphs: make(map[world.Sprite]Glyph, len(defs))}
	for _, def := range defs {
		color, err := ParseHexColor(def.Color)
		if err != nil {
			color = tcell.ColorWhite
		}
		r := '?'
		if def.Glyph != "" {
			r = []rune(def.Glyph)[0]
		}
		sheet.glyphs[world.Sprite(def.ID)] = Glyph{
			Rune:  r,
			Style: tcell.StyleDefault.Foreground(color),
		}
	}
	return sheet
}

// LoadSpriteSheet builds a sheet from the embedded sprites.json.
func LoadSpriteSheet() (*SpriteSheet, error) {
	file, err := Load[SpritesFile]("sprites.json")
	if err != nil {
		return nil, err
	}
	return NewSpriteSheet(file.Sprites), nil
}

// Glyph returns the glyph for a sprite id.
func (s *SpriteSheet) Glyph(id world.Sprite) Glyph {
	if g, ok := s.glyphs[id]; ok {
		return g
	}
	return missingGlyph
}
