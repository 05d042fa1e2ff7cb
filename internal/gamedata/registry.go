package gamedata

import (
	"errors"
	"fmt"
	"math/rand"

	"github.com/samdwyer/gridspell/internal/entity"
)

// MonsterDef is one row of the spawn table.
type MonsterDef struct {
	Kind        string `json:"kind"`        // entity.Kind identifier (e.g., "snake")
	Name        string `json:"name"`        // Display name
	SpawnWeight int    `json:"spawnWeight"` // Relative spawn frequency (higher = more common)
}

// MonstersFile represents the structure of monsters.json.
type MonstersFile struct {
	Monsters []MonsterDef `json:"monsters"`
}

// MonsterRegistry picks monster kinds for level spawns.
type MonsterRegistry struct {
	defs        []MonsterDef
	kinds       []entity.Kind
	totalWeight int
}

// NewMonsterRegistry validates the definitions and builds a registry.
func NewMonsterRegistry(defs []MonsterDef) (*MonsterRegistry, error) {
	if len(defs) == 0 {
		return nil, errors.New("no monsters defined")
	}
	r := &MonsterRegistry{defs: defs}
	for _, def := range defs {
		kind, ok := entity.ParseKind(def.Kind)
		if !ok || kind.IsPlayer() {
			return nil, fmt.Errorf("monster %q: invalid kind %q", def.Name, def.Kind)
		}
		if def.SpawnWeight < 0 {
			return nil, fmt.Errorf("monster %q: negative spawn weight", def.Name)
		}
		r.kinds = append(r.kinds, kind)
		r.totalWeight += def.SpawnWeight
	}
	if r.totalWeight == 0 {
		return nil, errors.New("spawn weights sum to zero")
	}
	return r, nil
}

// LoadMonsterRegistry builds a registry from the embedded monsters.json.
func LoadMonsterRegistry() (*MonsterRegistry, error) {
	file, err := Load[MonstersFile]("monsters.json")
	if err != nil {
		return nil, err
	}
	return NewMonsterRegistry(file.Monsters)
}

// SpawnRandom selects a monster kind using weighted probability.
func (r *MonsterRegistry) SpawnRandom(rng *rand.Rand) entity.Kind {
	roll := rng.Intn(r.totalWeight)

	cumulative := 0
	for i, def := range r.defs {
		cumulative += def.SpawnWeight
		if roll < cumulative {
			return r.kinds[i]
		}
	}
	return r.kinds[len(r.kinds)-1]
}
