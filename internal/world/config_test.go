package world

import (
	"errors"
	"testing"

	"tileworld/internal/noise"
)

func TestDefaultConfigValid(t *testing.T) {
	if err := DefaultConfig().Validate(); err != nil {
		t.Fatalf("default config rejected: %v", err)
	}
}

func TestValidateRejectsBadConfigs(t *testing.T) {
	cases := []struct {
		name   string
		field  string
		mutate func(*Config)
	}{
		{"zero width", "dimensions", func(c *Config) { c.Width = 0 }},
		{"negative height", "dimensions", func(c *Config) { c.Height = -3 }},
		{"unknown projection", "projection", func(c *Config) { c.Projection = "cube" }},
		{"non-increasing height", "height thresholds", func(c *Config) { c.Params.Height[3] = c.Params.Height[2] }},
		{"heat above one", "heat thresholds", func(c *Config) { c.Params.Heat[5] = 1.2 }},
		{"moisture at zero", "moisture thresholds", func(c *Config) { c.Params.Moisture[0] = 0 }},
		{"radius exceeds grid", "moisture_radius", func(c *Config) { c.Params.MoistureRadius = c.Width + 1 }},
		{"negative radius", "moisture_radius", func(c *Config) { c.Params.MoistureRadius = -1 }},
		{"unknown basis", "basis", func(c *Config) { c.Params.Basis = "value" }},
		{"perlin on torus", "basis", func(c *Config) { c.Params.Basis = noise.BasisPerlin }},
		{"zero octaves", "octaves", func(c *Config) { c.Params.HeatOctaves = 0 }},
		{"negative frequency", "frequency", func(c *Config) { c.Params.TerrainFrequency = -1 }},
		{"negative river count", "river limits", func(c *Config) { c.Params.RiverCount = -1 }},
		{"negative epsilon", "river_tie_epsilon", func(c *Config) { c.Params.RiverTieEpsilon = -0.1 }},
		{"negative falloff", "moisture_falloff", func(c *Config) { c.Params.MoistureFalloff = -1 }},
	}
	for _, tc := range cases {
		cfg := DefaultConfig()
		tc.mutate(&cfg)
		err := cfg.Validate()
		if !errors.Is(err, ErrInvalidConfig) {
			t.Fatalf("%s: expected ErrInvalidConfig, got %v", tc.name, err)
		}
		var cfgErr *ConfigError
		if !errors.As(err, &cfgErr) || cfgErr.Field != tc.field {
			t.Fatalf("%s: expected field %q, got %v", tc.name, tc.field, err)
		}
		if _, err := NewWithConfig(cfg); !errors.Is(err, ErrInvalidConfig) {
			t.Fatalf("%s: NewWithConfig accepted invalid config", tc.name)
		}
	}
}

func TestPerlinAllowedOffTorus(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Params.Basis = noise.BasisPerlin
	for _, projection := range []string{"plane", "sphere"} {
		cfg.Projection = projection
		if err := cfg.Validate(); err != nil {
			t.Fatalf("%s with perlin rejected: %v", projection, err)
		}
	}
}

func TestFromMapOverrides(t *testing.T) {
	cfg := FromMap(map[string]string{
		"w":                "96",
		"h":                "64",
		"seed":             "-12",
		"projection":       "sphere",
		"basis":            "perlin",
		"sand":             "0.55",
		"warmest":          "0.95",
		"wettest":          "0.97",
		"river_count":      "7",
		"min_river_height": "0.7",
		"moisture_radius":  "12",
		"moisture_falloff": "0.05",
		"heat_octaves":     "bogus",
	})
	if cfg.Width != 96 || cfg.Height != 64 || cfg.Seed != -12 {
		t.Fatalf("dimensions/seed not applied: %+v", cfg)
	}
	if cfg.Projection != "sphere" || cfg.Params.Basis != noise.BasisPerlin {
		t.Fatalf("projection/basis not applied: %q %q", cfg.Projection, cfg.Params.Basis)
	}
	if cfg.Params.Height[2] != 0.55 || cfg.Params.Heat[5] != 0.95 || cfg.Params.Moisture[5] != 0.97 {
		t.Fatalf("thresholds not applied: %+v", cfg.Params)
	}
	if cfg.Params.RiverCount != 7 || cfg.Params.MinRiverHeight != 0.7 {
		t.Fatalf("river overrides not applied: %+v", cfg.Params)
	}
	if cfg.Params.MoistureRadius != 12 || cfg.Params.MoistureFalloff != 0.05 {
		t.Fatalf("moisture overrides not applied: %+v", cfg.Params)
	}
	if cfg.Params.HeatOctaves != DefaultConfig().Params.HeatOctaves {
		t.Fatal("unparseable value must be ignored")
	}
	if err := cfg.Validate(); err != nil {
		t.Fatalf("override config invalid: %v", err)
	}
}
