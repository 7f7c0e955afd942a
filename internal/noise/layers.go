package noise

import (
	"errors"
	"fmt"
)

// Layers holds one sampler per raw world layer. Cloud samplers are nil for
// projections without cloud cover.
type Layers struct {
	Height   Sampler
	Heat     Sampler
	Moisture Sampler
	Cloud1   Sampler
	Cloud2   Sampler
}

// Seeds carries the per-layer basis seeds.
type Seeds struct {
	Height, Heat, Moisture, Cloud1, Cloud2 int64
}

// LayerSpecs configures the fractal for each primary layer.
type LayerSpecs struct {
	Height   LayerSpec
	Heat     LayerSpec
	Moisture LayerSpec
}

var (
	cloud1Spec = LayerSpec{Type: FractalBillow, Basis: BasisSimplex, Octaves: 4, Frequency: 1.55}
	cloud2Spec = LayerSpec{Type: FractalBillow, Basis: BasisSimplex, Octaves: 5, Frequency: 1.75}
)

// NewLayers builds fractal samplers for every layer through projection p.
func NewLayers(p Projection, specs LayerSpecs, seeds Seeds) (Layers, error) {
	height, err := newLayerFractal(p, "height", specs.Height, seeds.Height)
	if err != nil {
		return Layers{}, err
	}
	heat, err := newLayerFractal(p, "heat", specs.Heat, seeds.Heat)
	if err != nil {
		return Layers{}, err
	}
	moisture, err := newLayerFractal(p, "moisture", specs.Moisture, seeds.Moisture)
	if err != nil {
		return Layers{}, err
	}
	layers := Layers{
		Height:   Bind(p, height),
		Heat:     BindHeat(p, heat),
		Moisture: Bind(p, moisture),
	}
	if p.Clouds() {
		c1, err := newLayerFractal(p, "cloud1", cloud1Spec, seeds.Cloud1)
		if err != nil {
			return Layers{}, err
		}
		c2, err := newLayerFractal(p, "cloud2", cloud2Spec, seeds.Cloud2)
		if err != nil {
			return Layers{}, err
		}
		layers.Cloud1 = Bind(p, c1)
		layers.Cloud2 = Bind(p, c2)
	}
	return layers, nil
}

func newLayerFractal(p Projection, name string, spec LayerSpec, seed int64) (*Fractal, error) {
	f, err := NewFractal(spec, seed)
	if err != nil {
		return nil, fmt.Errorf("%s layer: %w", name, err)
	}
	if _, torus := p.(Torus); torus && !f.Has4D() {
		return nil, fmt.Errorf("%s layer: %w (basis %q)", name, ErrNo4D, spec.Basis)
	}
	return f, nil
}

// ErrMissingLayer is returned by Validate when a required sampler is nil.
var ErrMissingLayer = errors.New("noise: missing layer sampler")

// Validate checks that the primary samplers are present.
func (l Layers) Validate() error {
	switch {
	case l.Height == nil:
		return fmt.Errorf("%w: height", ErrMissingLayer)
	case l.Heat == nil:
		return fmt.Errorf("%w: heat", ErrMissingLayer)
	case l.Moisture == nil:
		return fmt.Errorf("%w: moisture", ErrMissingLayer)
	}
	return nil
}
