package world

import "image/color"

// Palette blocks. Height and biome entries come in pairs: base color followed
// by a darkened variant for tiles on a region edge.
const (
	paletteHeight   = 0
	paletteHeat     = paletteHeight + 2*(int(RiverBed)+1)
	paletteMoisture = paletteHeat + int(Warmest) + 1
	paletteBiome    = paletteMoisture + int(Wettest) + 1
	paletteSize     = paletteBiome + 2*(int(Ice)+1)

	edgeShade = 0.6
)

// Layer names in SetLayer order.
const (
	LayerBiome    = "biome"
	LayerHeight   = "height"
	LayerHeat     = "heat"
	LayerMoisture = "moisture"
)

var layerNames = []string{LayerBiome, LayerHeight, LayerHeat, LayerMoisture}

var worldPalette = buildWorldPalette()

var heightColors = [...]color.RGBA{
	DeepWater:    {R: 0, G: 0, B: 128, A: 255},
	ShallowWater: {R: 25, G: 25, B: 150, A: 255},
	Shore:        {R: 25, G: 25, B: 150, A: 255},
	Sand:         {R: 240, G: 240, B: 64, A: 255},
	Grass:        {R: 50, G: 220, B: 20, A: 255},
	Forest:       {R: 16, G: 160, B: 0, A: 255},
	Rock:         {R: 128, G: 128, B: 128, A: 255},
	Snow:         {R: 255, G: 255, B: 255, A: 255},
	RiverBed:     {R: 30, G: 120, B: 200, A: 255},
}

var heatColors = [...]color.RGBA{
	Coldest: {R: 0, G: 255, B: 255, A: 255},
	Colder:  {R: 170, G: 255, B: 255, A: 255},
	Cold:    {R: 0, G: 229, B: 133, A: 255},
	Warm:    {R: 255, G: 255, B: 100, A: 255},
	Warmer:  {R: 255, G: 100, B: 0, A: 255},
	Warmest: {R: 241, G: 12, B: 0, A: 255},
}

var moistureColors = [...]color.RGBA{
	Driest:  {R: 255, G: 139, B: 17, A: 255},
	Dryer:   {R: 245, G: 245, B: 23, A: 255},
	Dry:     {R: 80, G: 255, B: 0, A: 255},
	Wet:     {R: 85, G: 255, B: 255, A: 255},
	Wetter:  {R: 20, G: 70, B: 255, A: 255},
	Wettest: {R: 0, G: 0, B: 100, A: 255},
}

var biomeColors = [...]color.RGBA{
	BiomeNone:           {R: 0, G: 0, B: 128, A: 255},
	Desert:              {R: 238, G: 218, B: 130, A: 255},
	Savanna:             {R: 177, G: 209, B: 110, A: 255},
	TropicalRainforest:  {R: 66, G: 123, B: 25, A: 255},
	Grassland:           {R: 164, G: 225, B: 99, A: 255},
	Woodland:            {R: 139, G: 175, B: 90, A: 255},
	SeasonalForest:      {R: 73, G: 100, B: 35, A: 255},
	TemperateRainforest: {R: 29, G: 73, B: 40, A: 255},
	BorealForest:        {R: 95, G: 115, B: 62, A: 255},
	Tundra:              {R: 96, G: 131, B: 112, A: 255},
	Ice:                 {R: 255, G: 255, B: 255, A: 255},
}

func buildWorldPalette() []color.RGBA {
	palette := make([]color.RGBA, paletteSize)
	for i, c := range heightColors {
		palette[paletteHeight+2*i] = c
		palette[paletteHeight+2*i+1] = shade(c, edgeShade)
	}
	copy(palette[paletteHeat:], heatColors[:])
	copy(palette[paletteMoisture:], moistureColors[:])
	for i, c := range biomeColors {
		palette[paletteBiome+2*i] = c
		palette[paletteBiome+2*i+1] = shade(c, edgeShade)
	}
	return palette
}

func shade(c color.RGBA, f float64) color.RGBA {
	return color.RGBA{
		R: uint8(float64(c.R)*f + 0.5),
		G: uint8(float64(c.G)*f + 0.5),
		B: uint8(float64(c.B)*f + 0.5),
		A: c.A,
	}
}

// Palette exposes the color palette shared by every layer.
func (w *World) Palette() []color.RGBA { return worldPalette }

// Layers lists the selectable display layers.
func (w *World) Layers() []string { return layerNames }

// Layer returns the index of the active display layer.
func (w *World) Layer() int { return w.layer }

// SetLayer switches the display layer. Out-of-range values are ignored.
func (w *World) SetLayer(i int) {
	if i < 0 || i >= len(layerNames) || i == w.layer {
		return
	}
	w.layer = i
	w.rebuildDisplay()
}

// Cells returns palette indices for the active layer in row-major order.
func (w *World) Cells() []uint8 { return w.display }

func (w *World) rebuildDisplay() {
	layer := layerNames[w.layer]
	for i := range w.tiles {
		w.display[i] = w.displayValue(&w.tiles[i], layer)
	}
}

func (w *World) displayValue(t *Tile, layer string) uint8 {
	switch layer {
	case LayerHeat:
		return uint8(paletteHeat + int(t.HeatType))
	case LayerMoisture:
		return uint8(paletteMoisture + int(t.MoistureType))
	case LayerBiome:
		if t.Collidable {
			v := paletteBiome + 2*int(t.Biome)
			if t.BiomeBitmask != BitAll {
				v++
			}
			return uint8(v)
		}
	}
	v := paletteHeight + 2*int(t.HeightType)
	if t.Collidable && t.Bitmask != BitAll {
		v++
	}
	return uint8(v)
}
