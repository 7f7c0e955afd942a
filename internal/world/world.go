package world

import (
	"fmt"
	"io"
	"log/slog"

	"github.com/google/uuid"

	"tileworld/internal/core"
	"tileworld/internal/noise"
	pkgcore "tileworld/pkg/core"
)

// World owns the tile arena and every artifact of one generation run. Stage
// methods mutate it in pipeline order; consumers only read.
type World struct {
	cfg  Config
	grid core.Grid

	tiles     []Tile
	neighbors [][4]int

	height   *noise.MapData
	heat     *noise.MapData
	moisture *noise.MapData

	rivers      []*River
	riverGroups []*RiverGroup
	lands       []*TileGroup
	waters      []*TileGroup
	report      RiverReport

	rng    *pkgcore.RNG
	seed   int64
	log    *slog.Logger
	timing *core.Stopwatch

	display []uint8
	layer   int
}

// Option customizes a World at construction.
type Option func(*World)

// WithLogger routes pipeline logs to l.
func WithLogger(l *slog.Logger) Option {
	return func(w *World) {
		if l != nil {
			w.log = l
		}
	}
}

// New returns a World with the provided dimensions using defaults.
func New(width, height int, opts ...Option) (*World, error) {
	cfg := DefaultConfig()
	cfg.Width = width
	cfg.Height = height
	return NewWithConfig(cfg, opts...)
}

// NewWithConfig validates cfg and returns an empty World ready for Reset or
// Generate. Nothing is sampled until then.
func NewWithConfig(cfg Config, opts ...Option) (*World, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	grid := core.NewGrid(cfg.Width, cfg.Height)
	w := &World{
		cfg:       cfg,
		grid:      grid,
		tiles:     make([]Tile, grid.Len()),
		neighbors: make([][4]int, grid.Len()),
		rng:       pkgcore.NewRNG(cfg.Seed),
		seed:      cfg.Seed,
		log:       slog.New(slog.NewTextHandler(io.Discard, nil)),
		display:   make([]uint8, grid.Len()),
	}
	for _, opt := range opts {
		opt(w)
	}
	for i := range w.neighbors {
		w.neighbors[i] = grid.Neighbors(i)
	}
	return w, nil
}

// Name returns the generator identifier, which is the projection name.
func (w *World) Name() string { return w.cfg.Projection }

// Size reports the grid dimensions.
func (w *World) Size() core.Size { return core.Size{W: w.grid.W, H: w.grid.H} }

// Config returns the configuration the world was built with.
func (w *World) Config() Config { return w.cfg }

// Seed returns the seed of the most recent run.
func (w *World) Seed() int64 { return w.seed }

// ID returns a stable identifier derived from seed, size and projection.
func (w *World) ID() uuid.UUID {
	name := fmt.Sprintf("tileworld/%s/%dx%d/%d", w.cfg.Projection, w.grid.W, w.grid.H, w.seed)
	return uuid.NewSHA1(uuid.NameSpaceOID, []byte(name))
}

// Tiles exposes the tile arena in row-major order.
func (w *World) Tiles() []Tile { return w.tiles }

// At returns a pointer to the tile at (x, y) after wrapping.
func (w *World) At(x, y int) *Tile { return &w.tiles[w.grid.WrapIndex(x, y)] }

// Index returns the arena index of (x, y) after wrapping.
func (w *World) Index(x, y int) int { return w.grid.WrapIndex(x, y) }

// Neighbor returns the arena index of the neighbor of idx in direction d.
func (w *World) Neighbor(idx int, d core.Direction) int { return w.neighbors[idx][d] }

// Rivers returns the accepted rivers. A river's ID is its index.
func (w *World) Rivers() []*River { return w.rivers }

// RiverGroups returns groups of rivers that share at least one tile.
func (w *World) RiverGroups() []*RiverGroup { return w.riverGroups }

// Lands returns the connected land regions.
func (w *World) Lands() []*TileGroup { return w.lands }

// Waters returns the connected water regions.
func (w *World) Waters() []*TileGroup { return w.waters }

// RiverReport summarizes the last river seeding pass.
func (w *World) RiverReport() RiverReport { return w.report }

// Timings returns per-stage durations of the last run.
func (w *World) Timings() []core.StageTiming {
	if w.timing == nil {
		return nil
	}
	return w.timing.Stages()
}

func (w *World) reset() {
	for i := range w.tiles {
		x, y := w.grid.Coord(i)
		w.tiles[i] = Tile{X: x, Y: y}
	}
	w.rivers = nil
	w.riverGroups = nil
	w.lands = nil
	w.waters = nil
	w.report = RiverReport{}
}

func init() {
	for _, name := range noise.ProjectionNames() {
		projection := name
		core.Register(projection, func(cfg map[string]string) (core.Generator, error) {
			c := FromMap(cfg)
			c.Projection = projection
			w, err := NewWithConfig(c, WithLogger(slog.Default()))
			if err != nil {
				return nil, err
			}
			return w, nil
		})
	}
}
