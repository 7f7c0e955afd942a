package world

import (
	"testing"

	"tileworld/internal/core"
)

func TestParametersSnapshot(t *testing.T) {
	w := newTestWorld(t, smallConfig(32, 32))
	snap := w.Parameters()

	checks := map[string]string{
		"w":               "32",
		"seed":            "4242",
		"projection":      "torus",
		"river_count":     "12",
		"sand":            "0.5",
		"coldest":         "0.05",
		"wettest":         "0.95",
		"moisture_radius": "8",
	}
	for key, want := range checks {
		p, ok := snap.Lookup(key)
		if !ok {
			t.Fatalf("snapshot missing %q", key)
		}
		if p.Value != want {
			t.Fatalf("%s = %q, want %q", key, p.Value, want)
		}
	}
	if _, ok := snap.Lookup("erosion_rate"); ok {
		t.Fatal("unexpected parameter in snapshot")
	}
}

func TestParameterControlsAreSettable(t *testing.T) {
	w := newTestWorld(t, smallConfig(32, 32))
	for _, ctrl := range w.ParameterControls() {
		p, ok := w.Parameters().Lookup(ctrl.Key)
		if !ok {
			t.Fatalf("control %q missing from snapshot", ctrl.Key)
		}
		if p.Type != ctrl.Type {
			t.Fatalf("control %q type %s, snapshot %s", ctrl.Key, ctrl.Type, p.Type)
		}
	}

	var _ core.IntParameterSetter = w
	var _ core.FloatParameterSetter = w
	var _ core.ParameterControlsProvider = w
}

func TestSetIntParameter(t *testing.T) {
	w := newTestWorld(t, smallConfig(32, 32))
	if !w.SetIntParameter("river_count", 3) {
		t.Fatal("valid river count rejected")
	}
	if w.Config().Params.RiverCount != 3 {
		t.Fatalf("river count not applied: %d", w.Config().Params.RiverCount)
	}
	if w.SetIntParameter("moisture_radius", 64) {
		t.Fatal("radius larger than grid accepted")
	}
	if w.Config().Params.MoistureRadius != 8 {
		t.Fatal("rejected value leaked into config")
	}
	if w.SetIntParameter("lake_count", 5) {
		t.Fatal("unknown key accepted")
	}
}

func TestSetFloatParameterThreshold(t *testing.T) {
	w := newTestWorld(t, smallConfig(32, 32))
	if !w.SetFloatParameter("sand", 0.45) {
		t.Fatal("valid sea level rejected")
	}
	if w.Config().Params.Height[2] != 0.45 {
		t.Fatalf("sand threshold not applied: %v", w.Config().Params.Height)
	}
	if w.SetFloatParameter("sand", 0.3) {
		t.Fatal("non-increasing threshold accepted")
	}
	if !w.SetFloatParameter("min_river_height", 0.7) || w.Config().Params.MinRiverHeight != 0.7 {
		t.Fatal("min river height not applied")
	}
	if err := w.Reset(0); err != nil {
		t.Fatalf("Reset after tuning: %v", err)
	}
}
