package core

import (
	"image/color"
	"sort"
)

// Size describes the dimensions of a generated grid.
type Size struct {
	W int
	H int
}

// Generator defines the minimal contract a world generator must implement so
// the viewer and CLIs can drive it without knowing its projection.
type Generator interface {
	Name() string
	Size() Size
	Reset(seed int64) error
	Cells() []uint8
}

// PaletteProvider is implemented by generators whose cell values index a
// color palette.
type PaletteProvider interface {
	Palette() []color.RGBA
}

// LayerSelector is implemented by generators that can present more than one
// view of the same cells.
type LayerSelector interface {
	Layers() []string
	Layer() int
	SetLayer(i int)
}

// Factory constructs a Generator using an optional configuration map.
type Factory func(cfg map[string]string) (Generator, error)

var generators = map[string]Factory{}

// Register adds a generator factory under the provided name.
func Register(name string, f Factory) {
	if name == "" || f == nil {
		return
	}
	generators[name] = f
}

// Generators exposes the registry of available generator factories.
func Generators() map[string]Factory {
	return generators
}

// GeneratorNames returns the registered names in sorted order.
func GeneratorNames() []string {
	names := make([]string, 0, len(generators))
	for name := range generators {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
