package app

import (
	"fmt"
	"strings"

	"tileworld/internal/core"
)

// NewGenerator builds the registered generator for c.Projection with the
// flag overrides applied.
func (c *Config) NewGenerator() (core.Generator, error) {
	factory, ok := core.Generators()[c.Projection]
	if !ok {
		return nil, fmt.Errorf("unknown projection %q (have %s)", c.Projection, strings.Join(core.GeneratorNames(), ", "))
	}
	return factory(c.Overrides())
}
