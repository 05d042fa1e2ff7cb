package world

import (
	"context"
	"errors"
	"math/rand"
	"time"

	"go.opentelemetry.io/otel/attribute"

	"github.com/samdwyer/gridspell/internal/telemetry"
)

const (
	// DefaultSize is the number of tiles per side of a level.
	DefaultSize = 9

	// Layout parameters
	wallChance  = 0.3  // Chance an interior tile starts as wall
	maxAttempts = 1000 // Layout retries before giving up
)

// ErrNoLayout is returned when no connected layout could be generated.
var ErrNoLayout = errors.New("world: could not generate a connected layout")

// Grid is a square map of tiles addressed by coordinate.
type Grid struct {
	Size  int
	tiles [][]*Tile
	rng   *rand.Rand
}

// NewGrid creates a grid filled with floor.
func NewGrid(size int, rng *rand.Rand) *Grid {
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	g := &Grid{
		Size: size,
		rng:  rng,
	}
	g.fill(func(x, y int) TileKind { return KindFloor })
	return g
}

func (g *Grid) fill(kind func(x, y int) TileKind) {
	g.tiles = make([][]*Tile, g.Size)
	for y := range g.tiles {
		g.tiles[y] = make([]*Tile, g.Size)
		for x := range g.tiles[y] {
			g.tiles[y][x] = &Tile{X: x, Y: y, Kind: kind(x, y)}
		}
	}
}

// Generate lays out a fresh level: a wall ring around a randomly walled
// interior whose passable tiles are all connected.
func (g *Grid) Generate(ctx context.Context) error {
	tracer := telemetry.Tracer("world")
	_, span := tracer.Start(ctx, "dungeon.generate")
	defer span.End()

	startTime := time.Now()

	for attempt := 1; attempt <= maxAttempts; attempt++ {
		passable := g.layout()
		start := g.RandomPassable()
		if start == nil {
			continue
		}
		if len(g.ConnectedTiles(start)) != passable {
			continue
		}

		span.SetAttributes(
			attribute.Int("dungeon.size", g.Size),
			attribute.Int("dungeon.passable", passable),
			attribute.Int("dungeon.attempts", attempt),
			attribute.Int64("dungeon.generation_ms", time.Since(startTime).Milliseconds()),
		)
		return nil
	}

	span.SetAttributes(attribute.Bool("failed", true))
	return ErrNoLayout
}

// layout rolls a new set of tiles and returns the passable count.
func (g *Grid) layout() int {
	passable := 0
	g.fill(func(x, y int) TileKind {
		if !g.InBounds(x, y) || g.rng.Float64() < wallChance {
			return KindWall
		}
		passable++
		return KindFloor
	})
	return passable
}

// InBounds returns true for the playable interior, excluding the outer ring.
func (g *Grid) InBounds(x, y int) bool {
	return x > 0 && y > 0 && x < g.Size-1 && y < g.Size-1
}

func (g *Grid) contains(x, y int) bool {
	return x >= 0 && y >= 0 && x < g.Size && y < g.Size
}

// Get returns the tile at the given position. Positions off the grid yield
// a detached wall tile that is not part of the grid.
func (g *Grid) Get(x, y int) *Tile {
	if !g.contains(x, y) {
		return &Tile{X: x, Y: y, Kind: KindWall}
	}
	return g.tiles[y][x]
}

// Replace swaps the terrain of a tile in place and returns the grid's tile.
// The effect marker and treasure are cleared; the occupant is kept.
func (g *Grid) Replace(t *Tile, kind TileKind) *Tile {
	if !g.contains(t.X, t.Y) {
		return t
	}
	stored := g.tiles[t.Y][t.X]
	stored.Kind = kind
	stored.Treasure = false
	stored.Effect = 0
	stored.EffectCounter = 0
	return stored
}

// RandomPassable returns a uniformly chosen passable, unoccupied tile,
// or nil when there is none.
func (g *Grid) RandomPassable() *Tile {
	var candidates []*Tile
	g.Each(func(t *Tile) {
		if t.Passable() && !t.Occupied() {
			candidates = append(candidates, t)
		}
	})
	if len(candidates) == 0 {
		return nil
	}
	return candidates[g.rng.Intn(len(candidates))]
}

// Each calls fn for every tile in row-major order.
func (g *Grid) Each(fn func(t *Tile)) {
	for y := 0; y < g.Size; y++ {
		for x := 0; x < g.Size; x++ {
			fn(g.tiles[y][x])
		}
	}
}

// Neighbor returns the tile offset from t by (dx, dy).
func (g *Grid) Neighbor(t *Tile, dx, dy int) *Tile {
	return g.Get(t.X+dx, t.Y+dy)
}

// AdjacentNeighbors returns the orthogonal neighbors of t in the fixed
// order up, down, left, right. Impassable neighbors are included.
func (g *Grid) AdjacentNeighbors(t *Tile) []*Tile {
	neighbors := make([]*Tile, 0, len(Orthogonal))
	for _, o := range Orthogonal {
		neighbors = append(neighbors, g.Neighbor(t, o.DX, o.DY))
	}
	return neighbors
}

// AdjacentPassableNeighbors returns the passable orthogonal neighbors of t.
func (g *Grid) AdjacentPassableNeighbors(t *Tile) []*Tile {
	var neighbors []*Tile
	for _, n := range g.AdjacentNeighbors(t) {
		if n.Passable() {
			neighbors = append(neighbors, n)
		}
	}
	return neighbors
}

// ConnectedTiles returns every passable tile reachable from start.
func (g *Grid) ConnectedTiles(start *Tile) []*Tile {
	connected := []*Tile{start}
	seen := map[*Tile]bool{start: true}
	frontier := []*Tile{start}

	for len(frontier) > 0 {
		next := frontier[len(frontier)-1]
		frontier = frontier[:len(frontier)-1]
		for _, n := range g.AdjacentPassableNeighbors(next) {
			if seen[n] {
				continue
			}
			seen[n] = true
			connected = append(connected, n)
			frontier = append(frontier, n)
		}
	}
	return connected
}
