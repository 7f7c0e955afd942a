package world

import (
	"slices"
)

// RiverGroup is a set of rivers that share at least one tile, directly or
// through other members. Rivers are held by ID in ascending order.
type RiverGroup struct {
	Rivers []int
}

// Contains reports whether river id is a member.
func (g *RiverGroup) Contains(id int) bool {
	_, ok := slices.BinarySearch(g.Rivers, id)
	return ok
}

// buildRiverGroups visits tiles in the given order and merges the rivers
// crossing each shared tile into one group. When a tile bridges two existing
// groups they are folded together, so the result is the set of connected
// components regardless of visiting order.
func (w *World) buildRiverGroups(order []int) {
	owner := make(map[int]*RiverGroup)
	var groups []*RiverGroup

	for _, idx := range order {
		t := &w.tiles[idx]
		if len(t.Rivers) < 2 {
			continue
		}

		var target *RiverGroup
		for _, id := range t.Rivers {
			g, ok := owner[id]
			if !ok || g == target {
				continue
			}
			if target == nil {
				target = g
				continue
			}
			for _, moved := range g.Rivers {
				owner[moved] = target
			}
			target.Rivers = append(target.Rivers, g.Rivers...)
			g.Rivers = nil
		}
		if target == nil {
			target = &RiverGroup{}
			groups = append(groups, target)
		}
		for _, id := range t.Rivers {
			if owner[id] != target {
				owner[id] = target
				target.Rivers = append(target.Rivers, id)
			}
		}
	}

	w.riverGroups = w.riverGroups[:0]
	for _, g := range groups {
		if len(g.Rivers) == 0 {
			continue
		}
		slices.Sort(g.Rivers)
		w.riverGroups = append(w.riverGroups, g)
	}
	slices.SortFunc(w.riverGroups, func(a, b *RiverGroup) int {
		return a.Rivers[0] - b.Rivers[0]
	})
}
