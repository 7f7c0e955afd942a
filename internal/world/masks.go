package world

import (
	"fmt"
	"math"
)

// RiverMask returns per-tile river intensity in [0,1]: carved width over the
// widest footprint, zero where no river was dug.
func (w *World) RiverMask() []float32 {
	mask := make([]float32, len(w.tiles))
	for i := range w.tiles {
		t := &w.tiles[i]
		if t.RiverSize <= 0 && len(t.Rivers) == 0 {
			continue
		}
		size := max(t.RiverSize, 1)
		mask[i] = float32(min(size, len(footprints)-1)) / float32(len(footprints)-1)
	}
	return mask
}

// CloudMask returns the combined cover of both cloud layers. Worlds whose
// projection produces no clouds report an all-zero mask.
func (w *World) CloudMask() []float32 {
	mask := make([]float32, len(w.tiles))
	for i := range w.tiles {
		c := math.Max(w.tiles[i].Cloud1, w.tiles[i].Cloud2)
		// Thin cover below the cutoff stays clear.
		c = (c - cloudCutoff) / (1 - cloudCutoff)
		if c <= 0 {
			continue
		}
		mask[i] = float32(math.Min(c, 1))
	}
	return mask
}

const cloudCutoff = 0.55

// ElevationField exposes normalized heights in thousandths for hillshading.
func (w *World) ElevationField() []int16 {
	field := make([]int16, len(w.tiles))
	for i := range w.tiles {
		field[i] = int16(math.Round(w.tiles[i].HeightValue * 1000))
	}
	return field
}

// RegionField labels each tile with its flood-fill region: land regions
// count up from zero, water regions down from -1.
func (w *World) RegionField() []int {
	field := make([]int, len(w.tiles))
	for i, g := range w.lands {
		for _, idx := range g.Tiles {
			field[idx] = i
		}
	}
	for i, g := range w.waters {
		for _, idx := range g.Tiles {
			field[idx] = -i - 1
		}
	}
	return field
}

// Summary returns short status lines describing the last run.
func (w *World) Summary() []string {
	r := w.report
	lines := []string{
		fmt.Sprintf("seed %d", w.seed),
		fmt.Sprintf("id %s", w.ID().String()[:8]),
		fmt.Sprintf("rivers %d/%d (%d tries)", r.Accepted, r.Requested, r.Attempts),
		fmt.Sprintf("river groups %d", len(w.riverGroups)),
		fmt.Sprintf("land %d  water %d", len(w.lands), len(w.waters)),
	}
	if r.Exhausted {
		lines = append(lines, "river budget exhausted")
	}
	return lines
}
