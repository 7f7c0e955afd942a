// Package render turns palette-indexed cell buffers into pixels, either as
// in-memory images for export or as ebiten textures in the viewer.
package render

import (
	"image"
	"image/color"

	"tileworld/internal/core"
)

// fillPaletteRGBA converts cell values into RGBA pixels using a palette. When
// the palette is empty the buffer is cleared to transparent black.
func fillPaletteRGBA(buf []byte, cells []uint8, palette []color.RGBA) {
	if len(palette) == 0 {
		clear(buf[:4*len(cells)])
		return
	}

	last := len(palette) - 1
	for i, c := range cells {
		col := palette[min(int(c), last)]
		base := i * 4
		buf[base+0] = col.R
		buf[base+1] = col.G
		buf[base+2] = col.B
		buf[base+3] = col.A
	}
}

// blendMask tints buf by tint wherever mask is positive. Intensity drives
// the alpha of the tint.
func blendMask(buf []byte, mask []float32, tint color.RGBA, maxAlpha float64) {
	for i, m := range mask {
		if m <= 0 {
			continue
		}
		a := maxAlpha * float64(min(m, 1))
		base := i * 4
		buf[base+0] = mix(buf[base+0], tint.R, a)
		buf[base+1] = mix(buf[base+1], tint.G, a)
		buf[base+2] = mix(buf[base+2], tint.B, a)
	}
}

func mix(dst, src uint8, a float64) uint8 {
	return uint8(float64(dst)*(1-a) + float64(src)*a + 0.5)
}

// PaletteImage paints cells into a new image of size, one pixel per cell.
func PaletteImage(size core.Size, cells []uint8, palette []color.RGBA) (*image.RGBA, error) {
	if size.W <= 0 || size.H <= 0 || len(cells) != size.W*size.H {
		return nil, ErrSizeMismatch
	}
	img := image.NewRGBA(image.Rect(0, 0, size.W, size.H))
	fillPaletteRGBA(img.Pix, cells, palette)
	return img, nil
}

// Upscale returns img enlarged by an integer factor with nearest-neighbor
// sampling. A factor below two returns img unchanged.
func Upscale(img *image.RGBA, factor int) *image.RGBA {
	if factor < 2 {
		return img
	}
	b := img.Bounds()
	out := image.NewRGBA(image.Rect(0, 0, b.Dx()*factor, b.Dy()*factor))
	for y := 0; y < out.Rect.Dy(); y++ {
		srcRow := img.Pix[(y/factor)*img.Stride:]
		dstRow := out.Pix[y*out.Stride:]
		for x := 0; x < out.Rect.Dx(); x++ {
			copy(dstRow[x*4:x*4+4], srcRow[(x/factor)*4:(x/factor)*4+4])
		}
	}
	return out
}
