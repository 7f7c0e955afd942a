package world

import (
	"image/color"
	"testing"
)

func TestPaletteLayout(t *testing.T) {
	w := newTestWorld(t, smallConfig(8, 8))
	palette := w.Palette()
	if len(palette) != paletteSize || paletteSize > 256 {
		t.Fatalf("unexpected palette size %d", len(palette))
	}
	if got := palette[paletteHeight+2*int(DeepWater)]; got != (color.RGBA{R: 0, G: 0, B: 128, A: 255}) {
		t.Fatalf("deep water color %v", got)
	}
	if got := palette[paletteHeight+2*int(Snow)+1]; got != (color.RGBA{R: 153, G: 153, B: 153, A: 255}) {
		t.Fatalf("snow edge color %v", got)
	}
	if got := palette[paletteHeat+int(Warmest)]; got != (color.RGBA{R: 241, G: 12, B: 0, A: 255}) {
		t.Fatalf("warmest color %v", got)
	}
	if got := palette[paletteBiome+2*int(Ice)]; got != (color.RGBA{R: 255, G: 255, B: 255, A: 255}) {
		t.Fatalf("ice color %v", got)
	}
	for i, c := range palette {
		if c.A != 255 {
			t.Fatalf("palette entry %d left transparent", i)
		}
	}
}

func TestSetLayerRebuildsCells(t *testing.T) {
	w := newTestWorld(t, smallConfig(8, 8))
	if err := w.GenerateFromFields(Fields{
		Height:   constantField(8, 8, 0.6),
		Heat:     constantField(8, 8, 0.5),
		Moisture: constantField(8, 8, 0.5),
	}); err != nil {
		t.Fatalf("GenerateFromFields: %v", err)
	}

	layers := w.Layers()
	if len(layers) != 4 || layers[w.Layer()] != LayerBiome {
		t.Fatalf("unexpected layers %v active %d", layers, w.Layer())
	}

	// Flat grass land: every tile is interior, coldest, driest, Ice.
	want := map[string]uint8{
		LayerBiome:    uint8(paletteBiome + 2*int(Ice)),
		LayerHeight:   uint8(paletteHeight + 2*int(Grass)),
		LayerHeat:     uint8(paletteHeat + int(Coldest)),
		LayerMoisture: uint8(paletteMoisture + int(Driest)),
	}
	for i, name := range layers {
		w.SetLayer(i)
		if w.Layer() != i {
			t.Fatalf("SetLayer(%d) ignored", i)
		}
		for idx, c := range w.Cells() {
			if c != want[name] {
				t.Fatalf("layer %s cell %d = %d, want %d", name, idx, c, want[name])
			}
		}
	}

	w.SetLayer(99)
	if w.Layer() != len(layers)-1 {
		t.Fatal("out of range layer must be ignored")
	}
}
