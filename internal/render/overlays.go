package render

import (
	"image/color"
	"math"

	"tileworld/internal/core"
)

// MaskRGBA writes a translucent tint for every positive mask value and
// clears the rest. Stronger values glow brighter and more opaque.
func MaskRGBA(buf []byte, mask []float32, tint color.RGBA) {
	const (
		maxAlpha      = 140.0
		glowBase      = 0.35
		glowRange     = 0.65
		intensityBias = 0.75
	)
	for i, m := range mask {
		base := i * 4
		intensity := clamp01(float64(m))
		if intensity == 0 {
			clear(buf[base : base+4])
			continue
		}
		glow := glowBase + glowRange*math.Sqrt(intensity)
		buf[base+0] = scaleComponent(tint.R, glow)
		buf[base+1] = scaleComponent(tint.G, glow)
		buf[base+2] = scaleComponent(tint.B, glow)
		buf[base+3] = uint8(math.Round(maxAlpha * math.Pow(intensity, intensityBias)))
	}
}

// ReliefRGBA colors an elevation field by height band. Steeper tiles are
// drawn more opaque so ridges and river valleys stand out.
func ReliefRGBA(buf []byte, field []int16, size core.Size) {
	if len(field) != size.W*size.H || len(field) == 0 {
		return
	}
	lo, hi := field[0], field[0]
	for _, v := range field {
		lo = min(lo, v)
		hi = max(hi, v)
	}
	span := math.Max(float64(hi)-float64(lo), 1)

	for y := 0; y < size.H; y++ {
		for x := 0; x < size.W; x++ {
			idx := y*size.W + x
			v := int(field[idx])
			steepest := 0
			for _, n := range [4][2]int{{x - 1, y}, {x + 1, y}, {x, y - 1}, {x, y + 1}} {
				if n[0] < 0 || n[0] >= size.W || n[1] < 0 || n[1] >= size.H {
					continue
				}
				steepest = max(steepest, absInt(v-int(field[n[1]*size.W+n[0]])))
			}
			col := elevationColor(float64(v-int(lo)) / span)
			alpha := float64(col.A) * (0.55 + 0.45*clamp01(float64(steepest)*8/span))

			base := idx * 4
			buf[base+0] = col.R
			buf[base+1] = col.G
			buf[base+2] = col.B
			buf[base+3] = uint8(math.Round(alpha))
		}
	}
}

// RegionRGBA gives every region label its own translucent color. Land
// labels are non-negative and drawn warm; water labels are negative and
// drawn cool.
func RegionRGBA(buf []byte, regions []int) {
	for i, id := range regions {
		col := regionColor(id)
		base := i * 4
		buf[base+0] = col.R
		buf[base+1] = col.G
		buf[base+2] = col.B
		buf[base+3] = col.A
	}
}

func regionColor(id int) color.RGBA {
	// Golden-ratio hue stepping keeps neighbouring labels apart.
	hue := math.Mod(float64(absInt(id))*0.618033988749895, 1)
	if id >= 0 {
		return hsv(hue*0.35, 0.55, 0.95, 110)
	}
	return hsv(0.5+hue*0.2, 0.6, 0.8, 90)
}

func hsv(h, s, v float64, a uint8) color.RGBA {
	i := math.Floor(h * 6)
	f := h*6 - i
	p := v * (1 - s)
	q := v * (1 - f*s)
	t := v * (1 - (1-f)*s)
	var r, g, b float64
	switch int(i) % 6 {
	case 0:
		r, g, b = v, t, p
	case 1:
		r, g, b = q, v, p
	case 2:
		r, g, b = p, v, t
	case 3:
		r, g, b = p, q, v
	case 4:
		r, g, b = t, p, v
	default:
		r, g, b = v, p, q
	}
	return color.RGBA{R: uint8(r*255 + 0.5), G: uint8(g*255 + 0.5), B: uint8(b*255 + 0.5), A: a}
}

func elevationColor(t float64) color.RGBA {
	t = clamp01(t)
	stops := [...]struct {
		t   float64
		col color.RGBA
	}{
		{0.0, color.RGBA{R: 40, G: 60, B: 120, A: 150}},
		{0.25, color.RGBA{R: 70, G: 105, B: 160, A: 165}},
		{0.5, color.RGBA{R: 90, G: 150, B: 100, A: 185}},
		{0.75, color.RGBA{R: 190, G: 160, B: 80, A: 205}},
		{1.0, color.RGBA{R: 240, G: 235, B: 215, A: 215}},
	}
	for i := 1; i < len(stops); i++ {
		if t <= stops[i].t {
			prev := stops[i-1]
			return lerpRGBA(prev.col, stops[i].col, (t-prev.t)/(stops[i].t-prev.t))
		}
	}
	return stops[len(stops)-1].col
}

func lerpRGBA(a, b color.RGBA, t float64) color.RGBA {
	lerp := func(x, y uint8) uint8 {
		return uint8(math.Round(float64(x) + (float64(y)-float64(x))*t))
	}
	return color.RGBA{R: lerp(a.R, b.R), G: lerp(a.G, b.G), B: lerp(a.B, b.B), A: lerp(a.A, b.A)}
}

func scaleComponent(v uint8, factor float64) uint8 {
	return uint8(math.Round(math.Min(math.Max(float64(v)*factor, 0), 255)))
}

func clamp01(v float64) float64 {
	return math.Min(math.Max(v, 0), 1)
}

func absInt(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
