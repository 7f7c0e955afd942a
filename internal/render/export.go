package render

import (
	"errors"
	"fmt"
	"image"
	"image/color"
	"image/png"
	"io"
	"os"
	"path/filepath"
	"strings"

	"golang.org/x/image/bmp"
	"golang.org/x/image/tiff"

	"tileworld/internal/core"
)

// ErrSizeMismatch is returned when a cell or mask buffer does not cover the
// requested image.
var ErrSizeMismatch = errors.New("render: buffer does not match image size")

// Format names an image encoding supported by Encode.
type Format string

const (
	FormatPNG  Format = "png"
	FormatBMP  Format = "bmp"
	FormatTIFF Format = "tiff"
)

// ParseFormat validates a format name.
func ParseFormat(s string) (Format, error) {
	switch f := Format(strings.ToLower(s)); f {
	case FormatPNG, FormatBMP, FormatTIFF:
		return f, nil
	}
	return "", fmt.Errorf("render: unknown image format %q", s)
}

// Encode writes img to w in format f.
func Encode(w io.Writer, img image.Image, f Format) error {
	switch f {
	case FormatPNG, "":
		return png.Encode(w, img)
	case FormatBMP:
		return bmp.Encode(w, img)
	case FormatTIFF:
		return tiff.Encode(w, img, &tiff.Options{Compression: tiff.Deflate})
	}
	return fmt.Errorf("render: unknown image format %q", f)
}

// Tint blends tint over img wherever mask is positive.
func Tint(img *image.RGBA, mask []float32, tint color.RGBA, alpha float64) error {
	if len(mask)*4 != len(img.Pix) {
		return ErrSizeMismatch
	}
	blendMask(img.Pix, mask, tint, alpha)
	return nil
}

type riverMasker interface {
	RiverMask() []float32
}

type cloudMasker interface {
	CloudMask() []float32
}

// ExportOptions controls ExportLayers.
type ExportOptions struct {
	Dir    string
	Prefix string
	Format Format
	Scale  int
	// Rivers and Clouds tint the matching masks over every layer.
	Rivers bool
	Clouds bool
}

// Overlay colors shared by the exporter and the viewer.
var (
	RiverTint = color.RGBA{R: 40, G: 110, B: 230, A: 255}
	CloudTint = color.RGBA{R: 250, G: 250, B: 255, A: 255}
)

// ExportLayers writes one image per layer of gen and returns the written
// paths. Generators without layers produce a single image. The active layer
// is restored afterwards.
func ExportLayers(gen core.Generator, opts ExportOptions) ([]string, error) {
	pp, ok := gen.(core.PaletteProvider)
	if !ok {
		return nil, fmt.Errorf("render: %s has no palette", gen.Name())
	}
	if opts.Prefix == "" {
		opts.Prefix = gen.Name()
	}
	if opts.Format == "" {
		opts.Format = FormatPNG
	}
	if err := os.MkdirAll(opts.Dir, 0o755); err != nil {
		return nil, fmt.Errorf("render: %w", err)
	}

	names := []string{"cells"}
	ls, hasLayers := gen.(core.LayerSelector)
	if hasLayers {
		names = ls.Layers()
		defer ls.SetLayer(ls.Layer())
	}

	paths := make([]string, 0, len(names))
	for i, name := range names {
		if hasLayers {
			ls.SetLayer(i)
		}
		img, err := PaletteImage(gen.Size(), gen.Cells(), pp.Palette())
		if err != nil {
			return paths, err
		}
		if opts.Rivers {
			if rm, ok := gen.(riverMasker); ok {
				if err := Tint(img, rm.RiverMask(), RiverTint, 0.8); err != nil {
					return paths, err
				}
			}
		}
		if opts.Clouds {
			if cm, ok := gen.(cloudMasker); ok {
				if err := Tint(img, cm.CloudMask(), CloudTint, 0.6); err != nil {
					return paths, err
				}
			}
		}
		path := filepath.Join(opts.Dir, fmt.Sprintf("%s-%s.%s", opts.Prefix, name, opts.Format))
		if err := writeImage(path, Upscale(img, opts.Scale), opts.Format); err != nil {
			return paths, err
		}
		paths = append(paths, path)
	}
	return paths, nil
}

func writeImage(path string, img image.Image, f Format) (err error) {
	out, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("render: %w", err)
	}
	defer func() {
		if cerr := out.Close(); err == nil && cerr != nil {
			err = fmt.Errorf("render: %w", cerr)
		}
	}()
	if err := Encode(out, img, f); err != nil {
		return fmt.Errorf("render: encode %s: %w", path, err)
	}
	return nil
}
