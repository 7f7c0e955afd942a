package app

import (
	"fmt"
	"strings"

	"tileworld/internal/core"
)

type parameterProvider interface {
	Parameters() core.ParameterSnapshot
}

// ShareCommand renders a worldgen invocation reproducing gen's current
// parameters at seed. Dimensions map to dedicated flags; every other
// parameter becomes a -set pair.
func ShareCommand(gen core.Generator, seed int64) string {
	var b strings.Builder
	size := gen.Size()
	fmt.Fprintf(&b, "worldgen -projection %s -seed %d -w %d -h %d", gen.Name(), seed, size.W, size.H)
	provider, ok := gen.(parameterProvider)
	if !ok {
		return b.String()
	}
	for _, kv := range provider.Parameters().Pairs("w", "h", "seed", "projection") {
		b.WriteString(" -set ")
		b.WriteString(kv)
	}
	return b.String()
}
