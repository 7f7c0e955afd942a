package world

import (
	"errors"
	"fmt"

	"tileworld/internal/core"
	"tileworld/internal/noise"
	pkgcore "tileworld/pkg/core"
)

// ErrFieldSize is returned when supplied layer data does not match the grid.
var ErrFieldSize = errors.New("world: field size does not match grid")

// Fields holds the raw layer grids together with their observed ranges.
// Cloud fields are optional.
type Fields struct {
	Height   *noise.MapData
	Heat     *noise.MapData
	Moisture *noise.MapData
	Cloud1   *noise.MapData
	Cloud2   *noise.MapData
}

// SampleFields runs a full sampling pass of every layer over a w*h grid.
// Ranges are final once it returns.
func SampleFields(w, h int, layers noise.Layers) (Fields, error) {
	if err := layers.Validate(); err != nil {
		return Fields{}, err
	}
	f := Fields{
		Height:   noise.Fill(w, h, layers.Height),
		Heat:     noise.Fill(w, h, layers.Heat),
		Moisture: noise.Fill(w, h, layers.Moisture),
	}
	if layers.Cloud1 != nil {
		f.Cloud1 = noise.Fill(w, h, layers.Cloud1)
	}
	if layers.Cloud2 != nil {
		f.Cloud2 = noise.Fill(w, h, layers.Cloud2)
	}
	return f, nil
}

func (f Fields) check(g core.Grid) error {
	for name, md := range map[string]*noise.MapData{"height": f.Height, "heat": f.Heat, "moisture": f.Moisture} {
		if md == nil {
			return fmt.Errorf("%w: %s missing", ErrFieldSize, name)
		}
		if md.W != g.W || md.H != g.H || len(md.Data) != g.Len() {
			return fmt.Errorf("%w: %s is %dx%d, grid is %dx%d", ErrFieldSize, name, md.W, md.H, g.W, g.H)
		}
	}
	for name, md := range map[string]*noise.MapData{"cloud1": f.Cloud1, "cloud2": f.Cloud2} {
		if md != nil && len(md.Data) != g.Len() {
			return fmt.Errorf("%w: %s", ErrFieldSize, name)
		}
	}
	return nil
}

func (f Fields) clone() Fields {
	return Fields{
		Height:   f.Height.Clone(),
		Heat:     f.Heat.Clone(),
		Moisture: f.Moisture.Clone(),
		Cloud1:   f.Cloud1.Clone(),
		Cloud2:   f.Cloud2.Clone(),
	}
}

// Reset regenerates the world from scratch using the configured projection.
// A zero seed falls back to the configured seed.
func (w *World) Reset(seed int64) error {
	effective := seed
	if effective == 0 {
		effective = w.cfg.Seed
	}
	w.seed = effective
	w.rng = pkgcore.NewRNG(effective)

	seeds := noise.Seeds{
		Height:   w.rng.Int63(),
		Heat:     w.rng.Int63(),
		Moisture: w.rng.Int63(),
		Cloud1:   w.rng.Int63(),
		Cloud2:   w.rng.Int63(),
	}
	proj, err := noise.NewProjection(w.cfg.Projection, w.grid.W, w.grid.H)
	if err != nil {
		return err
	}
	layers, err := noise.NewLayers(proj, w.cfg.Params.LayerSpecs(), seeds)
	if err != nil {
		return fmt.Errorf("world: build layers: %w", err)
	}
	return w.Generate(layers)
}

// Generate samples layers over the grid and runs the full pipeline with the
// world's current RNG state.
func (w *World) Generate(layers noise.Layers) error {
	sw := core.NewStopwatch()
	fields, err := SampleFields(w.grid.W, w.grid.H, layers)
	if err != nil {
		return fmt.Errorf("world: sample: %w", err)
	}
	sw.Lap("sample")
	return w.run(fields, sw)
}

// GenerateFromFields runs the pipeline on pre-sampled layers. The fields are
// copied; the caller's data is left untouched.
func (w *World) GenerateFromFields(fields Fields) error {
	if err := fields.check(w.grid); err != nil {
		return err
	}
	return w.run(fields.clone(), core.NewStopwatch())
}

func (w *World) run(fields Fields, sw *core.Stopwatch) error {
	if err := fields.check(w.grid); err != nil {
		return err
	}
	w.timing = sw
	w.reset()

	w.classifyTerrain(fields)
	sw.Lap("classify")

	w.generateRivers()
	sw.Lap("rivers")

	w.buildRiverGroups(w.rowMajor())
	sw.Lap("group")

	w.digRiverGroups()
	sw.Lap("carve")

	w.adjustMoistureMap()
	sw.Lap("moisture")

	w.floodFill()
	sw.Lap("floodfill")

	w.assignBiomes()
	w.updateBitmasks()
	sw.Lap("biomes")

	w.rebuildDisplay()

	w.log.Info("world generated",
		"id", w.ID().String(),
		"projection", w.cfg.Projection,
		"size", fmt.Sprintf("%dx%d", w.grid.W, w.grid.H),
		"seed", w.seed,
		"rivers", len(w.rivers),
		"river_groups", len(w.riverGroups),
		"lands", len(w.lands),
		"waters", len(w.waters),
		"elapsed", sw.Total(),
	)
	return nil
}

func (w *World) rowMajor() []int {
	order := make([]int, len(w.tiles))
	for i := range order {
		order[i] = i
	}
	return order
}
