package noise

import (
	"fmt"
	"math"
)

// FractalType selects how octaves are combined.
type FractalType string

const (
	// FractalMulti multiplies octaves together, giving sharp continents with
	// flat lowlands.
	FractalMulti FractalType = "multi"
	// FractalBillow sums folded octaves, used for cloud cover.
	FractalBillow FractalType = "billow"
	// FractalFBM is plain fractional Brownian motion.
	FractalFBM FractalType = "fbm"
)

// LayerSpec configures one fractal layer.
type LayerSpec struct {
	Type      FractalType
	Basis     BasisKind
	Octaves   int
	Frequency float64
}

// Fractal layers several octaves of a basis.
type Fractal struct {
	basis      Basis
	kind       FractalType
	octaves    int
	frequency  float64
	lacunarity float64
	gain       float64
}

// NewFractal builds a fractal from spec using a basis seeded with seed.
func NewFractal(spec LayerSpec, seed int64) (*Fractal, error) {
	if spec.Octaves <= 0 {
		return nil, fmt.Errorf("noise: octaves must be positive, got %d", spec.Octaves)
	}
	if spec.Frequency <= 0 {
		return nil, fmt.Errorf("noise: frequency must be positive, got %g", spec.Frequency)
	}
	kind := spec.Type
	switch kind {
	case FractalMulti, FractalBillow, FractalFBM:
	case "":
		kind = FractalMulti
	default:
		return nil, fmt.Errorf("noise: unknown fractal type %q", spec.Type)
	}
	basis, err := NewBasis(spec.Basis, seed)
	if err != nil {
		return nil, err
	}
	return &Fractal{
		basis:      basis,
		kind:       kind,
		octaves:    spec.Octaves,
		frequency:  spec.Frequency,
		lacunarity: 2,
		gain:       0.5,
	}, nil
}

// Has4D reports whether the underlying basis supports Eval4.
func (f *Fractal) Has4D() bool {
	_, ok := f.basis.(Basis4)
	return ok
}

// Eval2 samples the fractal in two dimensions.
func (f *Fractal) Eval2(x, y float64) float64 {
	return f.combine(func(freq float64) float64 {
		return f.basis.Eval2(x*freq, y*freq)
	})
}

// Eval3 samples the fractal in three dimensions.
func (f *Fractal) Eval3(x, y, z float64) float64 {
	return f.combine(func(freq float64) float64 {
		return f.basis.Eval3(x*freq, y*freq, z*freq)
	})
}

// Eval4 samples the fractal in four dimensions. It returns 0 for bases
// without 4D support; callers check Has4D first.
func (f *Fractal) Eval4(x, y, z, w float64) float64 {
	b4, ok := f.basis.(Basis4)
	if !ok {
		return 0
	}
	return f.combine(func(freq float64) float64 {
		return b4.Eval4(x*freq, y*freq, z*freq, w*freq)
	})
}

func (f *Fractal) combine(octave func(freq float64) float64) float64 {
	freq := f.frequency
	switch f.kind {
	case FractalMulti:
		value := 1.0
		for i := 0; i < f.octaves; i++ {
			weight := math.Pow(f.lacunarity, -float64(i))
			value *= octave(freq)*weight + 1
			freq *= f.lacunarity
		}
		return value
	case FractalBillow:
		sum, amp := 0.0, 1.0
		for i := 0; i < f.octaves; i++ {
			sum += (2*math.Abs(octave(freq)) - 1) * amp
			amp *= f.gain
			freq *= f.lacunarity
		}
		return sum
	default:
		sum, amp := 0.0, 1.0
		for i := 0; i < f.octaves; i++ {
			sum += octave(freq) * amp
			amp *= f.gain
			freq *= f.lacunarity
		}
		return sum
	}
}
