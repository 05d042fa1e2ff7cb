package game

import (
	"errors"
	"fmt"

	"github.com/caarlos0/env/v11"
)

// maxSpellSlots is the number of slots reachable from the digit keys.
const maxSpellSlots = 9

// Config holds game configuration options.
type Config struct {
	// Seed for random number generation. Used for reproducible levels.
	// A seed of 0 means a random seed will be generated.
	Seed int64 `env:"GRIDSPELL_SEED" envDefault:"0"`

	GridSize   int `env:"GRIDSPELL_GRID_SIZE" envDefault:"9"`
	StartLevel int `env:"GRIDSPELL_START_LEVEL" envDefault:"1"`
	MaxLevel   int `env:"GRIDSPELL_MAX_LEVEL" envDefault:"6"`
	SpellSlots int `env:"GRIDSPELL_SPELL_SLOTS" envDefault:"1"`
	StartingHP int `env:"GRIDSPELL_STARTING_HP" envDefault:"3"`

	// Tracing enables the OTLP exporter. Spans go to a no-op provider
	// when it is off.
	Tracing bool `env:"GRIDSPELL_TRACING" envDefault:"true"`
}

// DefaultConfig returns the configuration used when no variables are set.
func DefaultConfig() Config {
	return Config{
		GridSize:   9,
		StartLevel: 1,
		MaxLevel:   6,
		SpellSlots: 1,
		StartingHP: 3,
		Tracing:    true,
	}
}

// LoadConfig reads the configuration from the environment.
func LoadConfig() (Config, error) {
	cfg, err := env.ParseAs[Config]()
	if err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate reports the first setting the game cannot run with.
func (c Config) Validate() error {
	switch {
	case c.GridSize < 3:
		return fmt.Errorf("grid size %d: need at least 3", c.GridSize)
	case c.StartLevel < 1:
		return fmt.Errorf("start level %d: must be positive", c.StartLevel)
	case c.MaxLevel < c.StartLevel:
		return fmt.Errorf("max level %d is below start level %d", c.MaxLevel, c.StartLevel)
	case c.SpellSlots < 0 || c.SpellSlots > maxSpellSlots:
		return fmt.Errorf("spell slots %d: must be between 0 and %d", c.SpellSlots, maxSpellSlots)
	case c.StartingHP < 1:
		return errors.New("starting hp must be positive")
	}
	return nil
}
