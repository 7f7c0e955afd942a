package world

import (
	"errors"
	"fmt"
	"strconv"

	"tileworld/internal/noise"
)

// ErrInvalidConfig is wrapped by every configuration validation failure.
var ErrInvalidConfig = errors.New("world: invalid configuration")

// ConfigError reports which configuration field was rejected and why.
type ConfigError struct {
	Field  string
	Reason string
}

func (e *ConfigError) Error() string {
	return fmt.Sprintf("world: invalid %s: %s", e.Field, e.Reason)
}

func (e *ConfigError) Unwrap() error { return ErrInvalidConfig }

// Thresholds is an ordered list of bucket upper bounds. A value belongs to
// the first bucket whose threshold it falls under.
type Thresholds [6]float64

// Bucket returns the index of the first threshold v falls under, or
// len(th) when v is at or above every threshold.
func (th Thresholds) Bucket(v float64) int {
	for i, limit := range th {
		if v < limit {
			return i
		}
	}
	return len(th)
}

func (th Thresholds) validate(field string) error {
	prev := 0.0
	for i, v := range th {
		if v <= 0 || v >= 1 {
			return &ConfigError{Field: field, Reason: fmt.Sprintf("threshold %d (%g) outside (0,1)", i, v)}
		}
		if i > 0 && v <= prev {
			return &ConfigError{Field: field, Reason: fmt.Sprintf("threshold %d (%g) not above %g", i, v, prev)}
		}
		prev = v
	}
	return nil
}

// Params holds the tunable thresholds and limits of the generation pipeline.
type Params struct {
	// Height thresholds in order DeepWater, ShallowWater, Sand, Grass,
	// Forest, Rock. Anything above the last is Snow.
	Height Thresholds
	// Heat thresholds in order Coldest..Warmest. Everything at or above the
	// fifth is Warmest, so the sixth only has to keep the list strictly
	// increasing.
	Heat Thresholds
	// Moisture thresholds in order Driest..Wettest. As with Heat, the last
	// entry does not move any tile between buckets.
	Moisture Thresholds

	Basis             noise.BasisKind
	TerrainOctaves    int
	TerrainFrequency  float64
	HeatOctaves       int
	HeatFrequency     float64
	MoistureOctaves   int
	MoistureFrequency float64

	RiverCount            int
	MinRiverHeight        float64
	MaxRiverAttempts      int
	MinRiverTurns         int
	MinRiverLength        int
	MaxRiverIntersections int
	RiverTieEpsilon       float64

	MoistureRadius  int
	MoistureFalloff float64
}

// Config controls the world dimensions, seed and projection.
type Config struct {
	Width  int
	Height int

	Seed       int64
	Projection string

	Params Params
}

// DefaultConfig returns the standard configuration.
func DefaultConfig() Config {
	return Config{
		Width:      512,
		Height:     512,
		Seed:       1337,
		Projection: "torus",
		Params: Params{
			Height:   Thresholds{0.2, 0.4, 0.5, 0.7, 0.8, 0.9},
			Heat:     Thresholds{0.05, 0.18, 0.4, 0.6, 0.8, 0.9},
			Moisture: Thresholds{0.27, 0.4, 0.6, 0.8, 0.9, 0.95},

			Basis:             noise.BasisSimplex,
			TerrainOctaves:    6,
			TerrainFrequency:  1.25,
			HeatOctaves:       4,
			HeatFrequency:     3.0,
			MoistureOctaves:   4,
			MoistureFrequency: 3.0,

			RiverCount:            40,
			MinRiverHeight:        0.6,
			MaxRiverAttempts:      1000,
			MinRiverTurns:         18,
			MinRiverLength:        20,
			MaxRiverIntersections: 2,
			RiverTieEpsilon:       0.1,

			MoistureRadius:  60,
			MoistureFalloff: 0.025,
		},
	}
}

// Validate rejects configurations the pipeline cannot run: later stages
// assume monotonic thresholds and a fully addressable toroidal grid.
func (c Config) Validate() error {
	if c.Width <= 0 || c.Height <= 0 {
		return &ConfigError{Field: "dimensions", Reason: fmt.Sprintf("%dx%d must be positive", c.Width, c.Height)}
	}
	if _, err := noise.NewProjection(c.Projection, c.Width, c.Height); err != nil {
		return &ConfigError{Field: "projection", Reason: err.Error()}
	}
	p := c.Params
	if err := p.Height.validate("height thresholds"); err != nil {
		return err
	}
	if err := p.Heat.validate("heat thresholds"); err != nil {
		return err
	}
	if err := p.Moisture.validate("moisture thresholds"); err != nil {
		return err
	}
	switch p.Basis {
	case noise.BasisSimplex, noise.BasisPerlin:
	default:
		return &ConfigError{Field: "basis", Reason: fmt.Sprintf("unknown basis %q", p.Basis)}
	}
	if c.Projection == "torus" && !noise.Supports4D(p.Basis) {
		return &ConfigError{Field: "basis", Reason: fmt.Sprintf("%q cannot sample the torus projection", p.Basis)}
	}
	if p.TerrainOctaves <= 0 || p.HeatOctaves <= 0 || p.MoistureOctaves <= 0 {
		return &ConfigError{Field: "octaves", Reason: "must be positive"}
	}
	if p.TerrainFrequency <= 0 || p.HeatFrequency <= 0 || p.MoistureFrequency <= 0 {
		return &ConfigError{Field: "frequency", Reason: "must be positive"}
	}
	if p.RiverCount < 0 || p.MaxRiverAttempts < 0 || p.MinRiverTurns < 0 || p.MinRiverLength < 0 || p.MaxRiverIntersections < 0 {
		return &ConfigError{Field: "river limits", Reason: "must not be negative"}
	}
	if p.RiverTieEpsilon < 0 {
		return &ConfigError{Field: "river_tie_epsilon", Reason: "must not be negative"}
	}
	if p.MoistureRadius < 0 {
		return &ConfigError{Field: "moisture_radius", Reason: "must not be negative"}
	}
	if p.MoistureRadius > c.Width || p.MoistureRadius > c.Height {
		return &ConfigError{Field: "moisture_radius", Reason: fmt.Sprintf("%d larger than %dx%d grid", p.MoistureRadius, c.Width, c.Height)}
	}
	if p.MoistureFalloff < 0 {
		return &ConfigError{Field: "moisture_falloff", Reason: "must not be negative"}
	}
	return nil
}

// LayerSpecs returns the fractal settings for the primary noise layers.
func (p Params) LayerSpecs() noise.LayerSpecs {
	return noise.LayerSpecs{
		Height:   noise.LayerSpec{Type: noise.FractalMulti, Basis: p.Basis, Octaves: p.TerrainOctaves, Frequency: p.TerrainFrequency},
		Heat:     noise.LayerSpec{Type: noise.FractalMulti, Basis: p.Basis, Octaves: p.HeatOctaves, Frequency: p.HeatFrequency},
		Moisture: noise.LayerSpec{Type: noise.FractalMulti, Basis: p.Basis, Octaves: p.MoistureOctaves, Frequency: p.MoistureFrequency},
	}
}

var (
	heightKeys   = [6]string{"deep_water", "shallow_water", "sand", "grass", "forest", "rock"}
	heatKeys     = [6]string{"coldest", "colder", "cold", "warm", "warmer", "warmest"}
	moistureKeys = [6]string{"driest", "dryer", "dry", "wet", "wetter", "wettest"}
)

// FromMap populates the config from a string map (flag-style key/value pairs).
// Unparseable values are ignored; Validate catches inconsistent results.
func FromMap(cfg map[string]string) Config {
	c := DefaultConfig()
	if cfg == nil {
		return c
	}
	if v, ok := cfg["w"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil {
			c.Width = parsed
		}
	}
	if v, ok := cfg["h"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil {
			c.Height = parsed
		}
	}
	if v, ok := cfg["seed"]; ok {
		if parsed, err := strconv.ParseInt(v, 10, 64); err == nil {
			c.Seed = parsed
		}
	}
	if v, ok := cfg["projection"]; ok && v != "" {
		c.Projection = v
	}
	if v, ok := cfg["basis"]; ok && v != "" {
		c.Params.Basis = noise.BasisKind(v)
	}
	applyThresholds(cfg, heightKeys, &c.Params.Height)
	applyThresholds(cfg, heatKeys, &c.Params.Heat)
	applyThresholds(cfg, moistureKeys, &c.Params.Moisture)

	ints := map[string]*int{
		"terrain_octaves":         &c.Params.TerrainOctaves,
		"heat_octaves":            &c.Params.HeatOctaves,
		"moisture_octaves":        &c.Params.MoistureOctaves,
		"river_count":             &c.Params.RiverCount,
		"max_river_attempts":      &c.Params.MaxRiverAttempts,
		"min_river_turns":         &c.Params.MinRiverTurns,
		"min_river_length":        &c.Params.MinRiverLength,
		"max_river_intersections": &c.Params.MaxRiverIntersections,
		"moisture_radius":         &c.Params.MoistureRadius,
	}
	for key, dst := range ints {
		if v, ok := cfg[key]; ok {
			if parsed, err := strconv.Atoi(v); err == nil {
				*dst = parsed
			}
		}
	}
	floats := map[string]*float64{
		"terrain_frequency":  &c.Params.TerrainFrequency,
		"heat_frequency":     &c.Params.HeatFrequency,
		"moisture_frequency": &c.Params.MoistureFrequency,
		"min_river_height":   &c.Params.MinRiverHeight,
		"river_tie_epsilon":  &c.Params.RiverTieEpsilon,
		"moisture_falloff":   &c.Params.MoistureFalloff,
	}
	for key, dst := range floats {
		if v, ok := cfg[key]; ok {
			if parsed, err := strconv.ParseFloat(v, 64); err == nil {
				*dst = parsed
			}
		}
	}
	return c
}

func applyThresholds(cfg map[string]string, keys [6]string, th *Thresholds) {
	for i, key := range keys {
		if v, ok := cfg[key]; ok {
			if parsed, err := strconv.ParseFloat(v, 64); err == nil {
				th[i] = parsed
			}
		}
	}
}
