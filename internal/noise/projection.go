package noise

import (
	"fmt"
	"math"
	"sort"

	"github.com/go-gl/mathgl/mgl64"
)

// Projection maps tile coordinates of a W*H grid into noise space.
type Projection interface {
	Name() string
	// Sample evaluates f at tile (x, y).
	Sample(f *Fractal, x, y int) float64
	// Heat evaluates a heat layer, folding in the projection's latitude model.
	Heat(f *Fractal, x, y int) float64
	// Clouds reports whether cloud layers are meaningful for this projection.
	Clouds() bool
}

// ProjectionFactory builds a projection for a grid of the given size.
type ProjectionFactory func(w, h int) Projection

var projections = map[string]ProjectionFactory{
	"plane":  func(w, h int) Projection { return Plane{W: w, H: h} },
	"torus":  func(w, h int) Projection { return Torus{W: w, H: h} },
	"sphere": func(w, h int) Projection { return Sphere{W: w, H: h} },
}

// NewProjection returns the named projection sized for a w*h grid.
func NewProjection(name string, w, h int) (Projection, error) {
	f, ok := projections[name]
	if !ok {
		return nil, fmt.Errorf("noise: unknown projection %q", name)
	}
	return f(w, h), nil
}

// ProjectionNames lists the known projections in sorted order.
func ProjectionNames() []string {
	names := make([]string, 0, len(projections))
	for name := range projections {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// equatorGradient is 0 at both poles (top and bottom rows) and 1 at the
// middle row. It is continuous across vertical wraparound.
func equatorGradient(y, h int) float64 {
	t := float64(y) / float64(h)
	return 1 - math.Abs(2*t-1)
}

// Plane samples 2D noise over the unit square. It does not tile.
type Plane struct {
	W, H int
}

func (p Plane) Name() string { return "plane" }

func (p Plane) Sample(f *Fractal, x, y int) float64 {
	return f.Eval2(float64(x)/float64(p.W), float64(y)/float64(p.H))
}

func (p Plane) Heat(f *Fractal, x, y int) float64 {
	return p.Sample(f, x, y) * equatorGradient(y, p.H)
}

func (p Plane) Clouds() bool { return false }

// Torus embeds both axes as circles in 4D noise space, so the map tiles
// seamlessly horizontally and vertically.
type Torus struct {
	W, H int
}

func (p Torus) Name() string { return "torus" }

func (p Torus) Sample(f *Fractal, x, y int) float64 {
	s := float64(x) / float64(p.W)
	t := float64(y) / float64(p.H)
	const r = 1 / (2 * math.Pi)
	nx := math.Cos(s*2*math.Pi) * r
	ny := math.Cos(t*2*math.Pi) * r
	nz := math.Sin(s*2*math.Pi) * r
	nw := math.Sin(t*2*math.Pi) * r
	return f.Eval4(nx, ny, nz, nw)
}

func (p Torus) Heat(f *Fractal, x, y int) float64 {
	return p.Sample(f, x, y) * equatorGradient(y, p.H)
}

func (p Torus) Clouds() bool { return false }

// Sphere treats x as longitude in [-180, 180) and y as latitude in
// [-90, 90) and samples 3D noise on the unit sphere.
type Sphere struct {
	W, H int
}

func (p Sphere) Name() string { return "sphere" }

func (p Sphere) latLon(x, y int) (float64, float64) {
	lon := -180 + 360*float64(x)/float64(p.W)
	lat := -90 + 180*float64(y)/float64(p.H)
	return lat, lon
}

func (p Sphere) point(x, y int) mgl64.Vec3 {
	lat, lon := p.latLon(x, y)
	latR := mgl64.DegToRad(lat)
	lonR := mgl64.DegToRad(lon)
	r := math.Cos(latR)
	return mgl64.Vec3{r * math.Cos(lonR), math.Sin(latR), r * math.Sin(lonR)}
}

func (p Sphere) Sample(f *Fractal, x, y int) float64 {
	v := p.point(x, y)
	return f.Eval3(v.X(), v.Y(), v.Z())
}

// Heat adds a warm equator and subtracts cold poles from the raw layer.
func (p Sphere) Heat(f *Fractal, x, y int) float64 {
	lat, _ := p.latLon(x, y)
	coldness := math.Abs(lat) / 90
	return p.Sample(f, x, y) + (1 - coldness) - coldness
}

func (p Sphere) Clouds() bool { return true }

// Bind returns a Sampler that evaluates f through p.
func Bind(p Projection, f *Fractal) Sampler {
	return SamplerFunc(func(x, y int) float64 { return p.Sample(f, x, y) })
}

// BindHeat returns a Sampler that evaluates the heat model of p over f.
func BindHeat(p Projection, f *Fractal) Sampler {
	return SamplerFunc(func(x, y int) float64 { return p.Heat(f, x, y) })
}
