package world

import (
	"math/rand/v2"
	"slices"
	"testing"

	"tileworld/internal/noise"
)

// sampleTorus samples the configured layers for w with fixed seeds.
func sampleTorus(t *testing.T, w *World) Fields {
	t.Helper()
	proj, err := noise.NewProjection(w.cfg.Projection, w.grid.W, w.grid.H)
	if err != nil {
		t.Fatalf("NewProjection: %v", err)
	}
	layers, err := noise.NewLayers(proj, w.cfg.Params.LayerSpecs(), noise.Seeds{Height: 11, Heat: 12, Moisture: 13, Cloud1: 14, Cloud2: 15})
	if err != nil {
		t.Fatalf("NewLayers: %v", err)
	}
	fields, err := SampleFields(w.grid.W, w.grid.H, layers)
	if err != nil {
		t.Fatalf("SampleFields: %v", err)
	}
	return fields
}

func TestBucketMonotone(t *testing.T) {
	rng := rand.New(rand.NewPCG(1, 2))
	cfg := DefaultConfig()
	for _, th := range []Thresholds{cfg.Params.Height, cfg.Params.Heat, cfg.Params.Moisture} {
		values := make([]float64, 500)
		for i := range values {
			values[i] = rng.Float64()*1.2 - 0.1
		}
		slices.Sort(values)
		prev := -1
		for _, v := range values {
			b := th.Bucket(v)
			if b < prev {
				t.Fatalf("bucket decreased from %d to %d at %f", prev, b, v)
			}
			prev = b
		}
	}
}

func TestBucketBoundaries(t *testing.T) {
	th := Thresholds{0.2, 0.4, 0.5, 0.7, 0.8, 0.9}
	cases := []struct {
		v    float64
		want int
	}{
		{0, 0},
		{0.19, 0},
		{0.2, 1},
		{0.45, 2},
		{0.9, 6},
		{0.95, 6},
	}
	for _, tc := range cases {
		if got := th.Bucket(tc.v); got != tc.want {
			t.Fatalf("Bucket(%v) = %d, want %d", tc.v, got, tc.want)
		}
	}
}

func TestClassifyTerrainHeightLevels(t *testing.T) {
	cfg := smallConfig(8, 1)
	cfg.Params.MoistureRadius = 0
	w := newTestWorld(t, cfg)

	heights := []float64{0.1, 0.3, 0.45, 0.6, 0.75, 0.85, 0.95, 0.5}
	w.classifyTerrain(Fields{
		Height:   noise.FromValues(8, 1, heights, 0, 1),
		Heat:     constantField(8, 1, 0.5),
		Moisture: constantField(8, 1, 0.5),
	})

	want := []HeightType{DeepWater, ShallowWater, Sand, Grass, Forest, Rock, Snow, Grass}
	for i, tile := range w.tiles {
		if tile.HeightType != want[i] {
			t.Fatalf("tile %d height %v, want %v", i, tile.HeightType, want[i])
		}
		if tile.Collidable != (want[i] >= Sand) {
			t.Fatalf("tile %d collidable=%v for %v", i, tile.Collidable, want[i])
		}
	}
}

func TestClassifyTerrainCoolsHighGround(t *testing.T) {
	cfg := smallConfig(2, 1)
	cfg.Params.MoistureRadius = 0
	w := newTestWorld(t, cfg)

	w.classifyTerrain(Fields{
		Height:   noise.FromValues(2, 1, []float64{0.45, 0.95}, 0, 1),
		Heat:     constantField(2, 1, 0.5),
		Moisture: constantField(2, 1, 0.5),
	})

	sand, snow := w.tiles[0], w.tiles[1]
	if sand.HeatValue <= snow.HeatValue {
		t.Fatalf("snow (%f) should be colder than sand (%f)", snow.HeatValue, sand.HeatValue)
	}
	if sand.MoistureValue <= snow.MoistureValue {
		t.Fatalf("sand (%f) should be wetter than snow (%f)", sand.MoistureValue, snow.MoistureValue)
	}
	if sand.HeatType != Warmest || snow.HeatType != Coldest {
		t.Fatalf("unexpected heat buckets %v / %v", sand.HeatType, snow.HeatType)
	}
}

func TestClassifyTerrainFlatFields(t *testing.T) {
	cfg := smallConfig(4, 4)
	w := newTestWorld(t, cfg)
	w.classifyTerrain(Fields{
		Height:   constantField(4, 4, 0.3),
		Heat:     constantField(4, 4, 0.3),
		Moisture: constantField(4, 4, 0.3),
	})
	for i, tile := range w.tiles {
		if tile.HeatValue != 0 || tile.HeatType != Coldest {
			t.Fatalf("flat heat should normalize to coldest, tile %d got %f/%v", i, tile.HeatValue, tile.HeatType)
		}
		if tile.MoistureValue != 0 || tile.MoistureType != Driest {
			t.Fatalf("flat moisture should normalize to driest, tile %d got %f/%v", i, tile.MoistureValue, tile.MoistureType)
		}
	}
}

func TestLastHeatAndMoistureThresholdFoldIntoTopBucket(t *testing.T) {
	w := newTestWorld(t, smallConfig(2, 2))
	p := &w.cfg.Params
	for _, v := range []float64{p.Moisture[4], (p.Moisture[4] + p.Moisture[5]) / 2, p.Moisture[5], 1} {
		if got := w.moistureType(v); got != Wettest {
			t.Fatalf("moisture %f: expected Wettest, got %v", v, got)
		}
	}

	p.Moisture[5] = 0.999
	if got := w.moistureType(p.Moisture[4]); got != Wettest {
		t.Fatalf("raising the last threshold changed the bucket to %v", got)
	}
	if got := w.moistureType(p.Moisture[4] - 0.001); got != Wetter {
		t.Fatalf("expected Wetter just below the fifth threshold, got %v", got)
	}
	if got := HeatType(min(p.Heat.Bucket(p.Heat[5]), int(Warmest))); got != Warmest {
		t.Fatalf("heat above every threshold should be Warmest, got %v", got)
	}
}
