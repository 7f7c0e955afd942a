// Package noise produces the raw scalar layers a world is classified from:
// fractal noise over a pluggable basis, sampled through a world projection
// into MapData grids that remember their observed range.
package noise

import "math"

// Sampler yields a raw scalar for tile (x, y). Implementations must be pure
// functions of the coordinate.
type Sampler interface {
	Sample(x, y int) float64
}

// SamplerFunc adapts a plain function to the Sampler interface.
type SamplerFunc func(x, y int) float64

// Sample calls f(x, y).
func (f SamplerFunc) Sample(x, y int) float64 { return f(x, y) }

// Constant returns a sampler that yields v everywhere.
func Constant(v float64) Sampler {
	return SamplerFunc(func(int, int) float64 { return v })
}

// Field wraps a Sampler and tracks the min/max of every value it hands out.
type Field struct {
	src      Sampler
	min, max float64
	samples  int
}

// NewField wraps src.
func NewField(src Sampler) *Field {
	return &Field{src: src, min: math.Inf(1), max: math.Inf(-1)}
}

// Sample evaluates the wrapped sampler and records the value's range.
func (f *Field) Sample(x, y int) float64 {
	v := f.src.Sample(x, y)
	if v < f.min {
		f.min = v
	}
	if v > f.max {
		f.max = v
	}
	f.samples++
	return v
}

// Finalize returns the observed range. It is only meaningful after the full
// grid has been sampled.
func (f *Field) Finalize() (float64, float64) {
	if f.samples == 0 {
		return 0, 0
	}
	return f.min, f.max
}

// MapData is a W*H grid of raw samples plus the range observed while filling it.
type MapData struct {
	W, H int
	Data []float64
	Min  float64
	Max  float64
}

// NewMapData allocates an empty grid whose range is not yet established.
func NewMapData(w, h int) *MapData {
	return &MapData{
		W:    w,
		H:    h,
		Data: make([]float64, w*h),
		Min:  math.Inf(1),
		Max:  math.Inf(-1),
	}
}

// FromValues wraps pre-computed samples with an explicit range. It is used by
// callers that already hold normalized data (min 0, max 1).
func FromValues(w, h int, values []float64, min, max float64) *MapData {
	data := make([]float64, w*h)
	copy(data, values)
	return &MapData{W: w, H: h, Data: data, Min: min, Max: max}
}

// Fill samples src across the whole grid in row-major order and returns the
// finalized MapData.
func Fill(w, h int, src Sampler) *MapData {
	md := NewMapData(w, h)
	field := NewField(src)
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			md.Data[y*w+x] = field.Sample(x, y)
		}
	}
	md.Min, md.Max = field.Finalize()
	return md
}

// Clone returns a deep copy.
func (m *MapData) Clone() *MapData {
	if m == nil {
		return nil
	}
	c := *m
	c.Data = append([]float64(nil), m.Data...)
	return &c
}

// At returns the raw value at linear index idx.
func (m *MapData) At(idx int) float64 { return m.Data[idx] }

// Add adds delta to the raw value at idx without touching the range.
func (m *MapData) Add(idx int, delta float64) { m.Data[idx] += delta }

// Recompute re-derives Min and Max from the current data.
func (m *MapData) Recompute() {
	m.Min, m.Max = math.Inf(1), math.Inf(-1)
	for _, v := range m.Data {
		if v < m.Min {
			m.Min = v
		}
		if v > m.Max {
			m.Max = v
		}
	}
}

// Normalized maps the raw value at idx into [0, 1] using the recorded range.
// A flat field normalizes to 0.
func (m *MapData) Normalized(idx int) float64 {
	span := m.Max - m.Min
	if span <= 0 || math.IsInf(span, 0) || math.IsNaN(span) {
		return 0
	}
	return (m.Data[idx] - m.Min) / span
}
