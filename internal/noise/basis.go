package noise

import (
	"errors"
	"fmt"

	"github.com/aquilax/go-perlin"
	opensimplex "github.com/ojrac/opensimplex-go"
)

// ErrNo4D is returned when a projection needs four-dimensional noise from a
// basis that cannot provide it.
var ErrNo4D = errors.New("noise: basis has no 4D evaluation")

// Basis is a single-octave coherent noise function.
type Basis interface {
	Eval2(x, y float64) float64
	Eval3(x, y, z float64) float64
}

// Basis4 is a Basis that can also be evaluated in four dimensions, which the
// torus projection requires.
type Basis4 interface {
	Basis
	Eval4(x, y, z, w float64) float64
}

// BasisKind selects the noise implementation backing a fractal.
type BasisKind string

const (
	BasisSimplex BasisKind = "simplex"
	BasisPerlin  BasisKind = "perlin"
)

// NewBasis constructs a basis of the given kind.
func NewBasis(kind BasisKind, seed int64) (Basis, error) {
	switch kind {
	case BasisSimplex, "":
		return simplexBasis{n: opensimplex.New(seed)}, nil
	case BasisPerlin:
		return perlinBasis{p: perlin.NewPerlin(2, 2, 1, seed)}, nil
	}
	return nil, fmt.Errorf("noise: unknown basis %q", kind)
}

// Supports4D reports whether kind can back the torus projection.
func Supports4D(kind BasisKind) bool {
	return kind == BasisSimplex || kind == ""
}

type simplexBasis struct {
	n opensimplex.Noise
}

func (b simplexBasis) Eval2(x, y float64) float64       { return b.n.Eval2(x, y) }
func (b simplexBasis) Eval3(x, y, z float64) float64    { return b.n.Eval3(x, y, z) }
func (b simplexBasis) Eval4(x, y, z, w float64) float64 { return b.n.Eval4(x, y, z, w) }

type perlinBasis struct {
	p *perlin.Perlin
}

func (b perlinBasis) Eval2(x, y float64) float64    { return b.p.Noise2D(x, y) }
func (b perlinBasis) Eval3(x, y, z float64) float64 { return b.p.Noise3D(x, y, z) }
