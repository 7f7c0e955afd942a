package app

import (
	"flag"
	"strings"
	"testing"

	"tileworld/internal/world"
)

func TestShareCommandRoundTrips(t *testing.T) {
	cfg := world.DefaultConfig()
	cfg.Width = 40
	cfg.Height = 24
	cfg.Projection = "plane"
	cfg.Params.RiverCount = 17
	cfg.Params.MoistureRadius = 8
	cfg.Params.Height[2] = 0.47
	w, err := world.NewWithConfig(cfg)
	if err != nil {
		t.Fatalf("NewWithConfig: %v", err)
	}

	cmd := ShareCommand(w, 991)
	fields := strings.Fields(cmd)
	if fields[0] != "worldgen" {
		t.Fatalf("unexpected command %q", cmd)
	}

	parsed := NewConfig()
	fs := flag.NewFlagSet("share", flag.ContinueOnError)
	parsed.Bind(fs)
	if err := fs.Parse(fields[1:]); err != nil {
		t.Fatalf("command does not parse: %v", err)
	}
	if parsed.Seed != 991 || parsed.Projection != "plane" || parsed.Width != 40 || parsed.Height != 24 {
		t.Fatalf("dedicated flags lost: %+v", parsed)
	}

	back := world.FromMap(parsed.Overrides())
	back.Projection = parsed.Projection
	if back.Params.RiverCount != 17 || back.Params.Height[2] != 0.47 || back.Params.MoistureRadius != 8 {
		t.Fatalf("overrides lost: %+v", back.Params)
	}
	if back.Seed != 991 {
		t.Fatalf("seed %d, want 991", back.Seed)
	}
}
