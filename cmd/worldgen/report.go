package main

import (
	"fmt"
	"io"
	"slices"
	"text/tabwriter"

	"tileworld/internal/world"
)

// writeReport prints a human-readable summary of w's last run. Timings are
// optional so the output can be compared across runs.
func writeReport(out io.Writer, w *world.World, timings bool) error {
	tw := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
	size := w.Size()
	r := w.RiverReport()

	fmt.Fprintf(tw, "id\t%s\n", w.ID())
	fmt.Fprintf(tw, "projection\t%s\n", w.Name())
	fmt.Fprintf(tw, "size\t%dx%d\n", size.W, size.H)
	fmt.Fprintf(tw, "seed\t%d\n", w.Seed())
	fmt.Fprintf(tw, "rivers\t%d accepted, %d discarded, %d attempts\n", r.Accepted, r.Discarded, r.Attempts)
	if r.Exhausted {
		fmt.Fprintf(tw, "\tattempt budget exhausted before %d rivers\n", r.Requested)
	}
	fmt.Fprintf(tw, "river groups\t%d\n", len(w.RiverGroups()))
	fmt.Fprintf(tw, "land regions\t%d (largest %d tiles)\n", len(w.Lands()), largest(w.Lands()))
	fmt.Fprintf(tw, "water regions\t%d (largest %d tiles)\n", len(w.Waters()), largest(w.Waters()))

	fmt.Fprintln(tw, "\nbiome\ttiles\tshare")
	total := size.W * size.H
	for _, bc := range biomeCounts(w) {
		fmt.Fprintf(tw, "%s\t%d\t%.1f%%\n", bc.biome, bc.count, 100*float64(bc.count)/float64(total))
	}

	if timings {
		fmt.Fprintln(tw, "\nstage\telapsed")
		for _, st := range w.Timings() {
			fmt.Fprintf(tw, "%s\t%s\n", st.Stage, st.Duration)
		}
	}
	return tw.Flush()
}

func largest(groups []*world.TileGroup) int {
	n := 0
	for _, g := range groups {
		n = max(n, len(g.Tiles))
	}
	return n
}

type biomeCount struct {
	biome world.BiomeType
	count int
}

// biomeCounts tallies land biomes, most common first.
func biomeCounts(w *world.World) []biomeCount {
	counts := map[world.BiomeType]int{}
	for _, t := range w.Tiles() {
		if t.Collidable {
			counts[t.Biome]++
		}
	}
	out := make([]biomeCount, 0, len(counts))
	for b, n := range counts {
		out = append(out, biomeCount{b, n})
	}
	slices.SortFunc(out, func(a, b biomeCount) int {
		if a.count != b.count {
			return b.count - a.count
		}
		return int(a.biome) - int(b.biome)
	})
	return out
}
