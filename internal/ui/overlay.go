//go:build ebiten

package ui

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"tileworld/internal/core"
	"tileworld/internal/render"
)

type riverMaskProvider interface {
	RiverMask() []float32
}

type cloudMaskProvider interface {
	CloudMask() []float32
}

type elevationFieldProvider interface {
	ElevationField() []int16
}

type regionFieldProvider interface {
	RegionField() []int
}

// overlayLayer is one toggleable debug layer drawn over the world.
type overlayLayer struct {
	key  ebiten.Key
	on   bool
	img  *ebiten.Image
	buf  []byte
	fill func(buf []byte)
}

// Overlay draws optional debugging visuals on top of the base world.
type Overlay struct {
	gen    core.Generator
	scale  int
	layers []*overlayLayer
}

// NewOverlay constructs an overlay for gen. Layers the generator cannot
// provide are skipped.
func NewOverlay(gen core.Generator, scale int) *Overlay {
	o := &Overlay{gen: gen, scale: max(scale, 1)}
	size := gen.Size()
	if p, ok := gen.(riverMaskProvider); ok {
		o.add(ebiten.KeyDigit1, func(buf []byte) {
			render.MaskRGBA(buf, p.RiverMask(), render.RiverTint)
		})
	}
	if p, ok := gen.(cloudMaskProvider); ok {
		o.add(ebiten.KeyDigit2, func(buf []byte) {
			render.MaskRGBA(buf, p.CloudMask(), render.CloudTint)
		})
	}
	if p, ok := gen.(elevationFieldProvider); ok {
		o.add(ebiten.KeyDigit3, func(buf []byte) {
			render.ReliefRGBA(buf, p.ElevationField(), size)
		})
	}
	if p, ok := gen.(regionFieldProvider); ok {
		o.add(ebiten.KeyDigit4, func(buf []byte) {
			render.RegionRGBA(buf, p.RegionField())
		})
	}
	return o
}

func (o *Overlay) add(key ebiten.Key, fill func([]byte)) {
	o.layers = append(o.layers, &overlayLayer{key: key, fill: fill})
}

// Update toggles layers on their number keys.
func (o *Overlay) Update() {
	for _, l := range o.layers {
		if inpututil.IsKeyJustPressed(l.key) {
			l.on = !l.on
		}
	}
}

// Draw renders every enabled layer onto screen.
func (o *Overlay) Draw(screen *ebiten.Image) {
	size := o.gen.Size()
	total := size.W * size.H
	if total == 0 {
		return
	}
	for _, l := range o.layers {
		if !l.on {
			continue
		}
		if l.img == nil || len(l.buf) != 4*total {
			l.img = ebiten.NewImage(size.W, size.H)
			l.buf = make([]byte, 4*total)
		}
		l.fill(l.buf)
		l.img.ReplacePixels(l.buf)
		op := &ebiten.DrawImageOptions{}
		op.GeoM.Scale(float64(o.scale), float64(o.scale))
		screen.DrawImage(l.img, op)
	}
}
