package world

import (
	"math"

	"tileworld/internal/core"
)

// River is an accepted descent path from a high source tile toward water.
// Tiles holds arena indices in path order, source first.
type River struct {
	ID            int
	Tiles         []int
	Direction     core.Direction
	TurnCount     int
	Intersections int
	Length        int
}

// Source returns the arena index of the first path tile.
func (r *River) Source() int { return r.Tiles[0] }

// Mouth returns the arena index of the last path tile.
func (r *River) Mouth() int { return r.Tiles[len(r.Tiles)-1] }

// RiverReport summarizes one seeding pass.
type RiverReport struct {
	Requested int
	Accepted  int
	Discarded int
	Attempts  int
	// Exhausted is set when the attempt budget ran out before the requested
	// count was reached.
	Exhausted bool
}

// generateRivers seeds and descends candidates until the requested count is
// accepted or the attempt budget is spent.
func (w *World) generateRivers() {
	p := w.cfg.Params
	remaining := p.RiverCount
	report := RiverReport{Requested: p.RiverCount}

	for remaining > 0 && report.Attempts < p.MaxRiverAttempts {
		report.Attempts++
		idx := w.rng.IntN(len(w.tiles))
		t := &w.tiles[idx]
		if !t.Collidable || len(t.Rivers) > 0 || t.HeightValue <= p.MinRiverHeight {
			continue
		}

		r := &River{ID: len(w.rivers), Direction: w.lowestNeighbor(idx)}
		w.findPathToWater(idx, r)

		if r.TurnCount < p.MinRiverTurns || len(r.Tiles) < p.MinRiverLength || r.Intersections > p.MaxRiverIntersections {
			w.discardRiver(r)
			report.Discarded++
			continue
		}
		r.Length = len(r.Tiles)
		w.rivers = append(w.rivers, r)
		w.tiles[idx].addRiver(r.ID)
		remaining--
	}

	report.Accepted = len(w.rivers)
	report.Exhausted = remaining > 0
	w.report = report
	if report.Exhausted {
		w.log.Warn("river attempt budget exhausted",
			"requested", report.Requested,
			"accepted", report.Accepted,
			"attempts", report.Attempts,
		)
	} else {
		w.log.Debug("rivers seeded", "accepted", report.Accepted, "discarded", report.Discarded, "attempts", report.Attempts)
	}
}

// discardRiver drops every trace of r from the arena.
func (w *World) discardRiver(r *River) {
	for _, idx := range r.Tiles {
		w.tiles[idx].removeRiver(r.ID)
	}
	r.Tiles = nil
}

// lowestNeighbor returns the direction of the cardinal neighbor lying strictly
// below the other three, checked left, right, top, bottom. Bottom wins when
// no single neighbor is lowest.
func (w *World) lowestNeighbor(idx int) core.Direction {
	order := [...]core.Direction{core.Left, core.Right, core.Top, core.Bottom}
	var h [4]float64
	for _, d := range order {
		h[d] = w.tiles[w.neighbors[idx][d]].HeightValue
	}
	for _, d := range order {
		lowest := true
		for _, o := range order {
			if o != d && h[d] >= h[o] {
				lowest = false
				break
			}
		}
		if lowest {
			return d
		}
	}
	return core.Bottom
}

// findPathToWater walks r downhill from start, one tile per step, until it
// reaches open water, a dead end, or its own path.
func (w *World) findPathToWater(start int, r *River) {
	eps := w.cfg.Params.RiverTieEpsilon
	inPath := make(map[int]struct{})
	cur := start

	for len(r.Tiles) < len(w.tiles) {
		t := &w.tiles[cur]
		if t.HasRiver(r.ID) {
			return
		}
		if len(t.Rivers) > 0 {
			r.Intersections++
		}
		if t.Collidable {
			t.addRiver(r.ID)
		}
		r.Tiles = append(r.Tiles, cur)
		inPath[cur] = struct{}{}

		nb := w.neighbors[cur]
		var cost [4]float64
		for _, d := range core.Directions {
			cost[d] = w.flowCost(nb[d], r.ID, inPath)
		}

		switch r.Direction {
		case core.Left:
			if math.Abs(cost[core.Right]-cost[core.Left]) < eps {
				cost[core.Right] = math.Inf(1)
			}
		case core.Right:
			if math.Abs(cost[core.Right]-cost[core.Left]) < eps {
				cost[core.Left] = math.Inf(1)
			}
		case core.Top:
			if math.Abs(cost[core.Top]-cost[core.Bottom]) < eps {
				cost[core.Bottom] = math.Inf(1)
			}
		case core.Bottom:
			if math.Abs(cost[core.Top]-cost[core.Bottom]) < eps {
				cost[core.Top] = math.Inf(1)
			}
		}

		next, ok := pickFlow(cost)
		if !ok {
			return
		}
		if !w.tiles[nb[next]].Collidable {
			return
		}
		if next != r.Direction {
			r.TurnCount++
			r.Direction = next
		}
		cur = nb[next]
	}
}

// flowCost scores neighbor n as the next step of river id. Open water is a
// terminal attractor; tiles hugging the river or already in its path are
// excluded.
func (w *World) flowCost(n, id int, inPath map[int]struct{}) float64 {
	t := &w.tiles[n]
	if len(t.Rivers) == 0 && !t.Collidable {
		return 0
	}
	if _, seen := inPath[n]; seen {
		return math.Inf(1)
	}
	if w.riverNeighborCount(n, id) >= 2 {
		return math.Inf(1)
	}
	return t.HeightValue
}

// riverNeighborCount counts the cardinal neighbors of idx carrying river id.
func (w *World) riverNeighborCount(idx, id int) int {
	count := 0
	for _, n := range w.neighbors[idx] {
		if w.tiles[n].HasRiver(id) {
			count++
		}
	}
	return count
}

// pickFlow returns the cheapest finite direction. Ties go to left, right,
// bottom, top in that order.
func pickFlow(cost [4]float64) (core.Direction, bool) {
	best := core.Left
	for _, d := range [...]core.Direction{core.Right, core.Bottom, core.Top} {
		if cost[d] < cost[best] {
			best = d
		}
	}
	if math.IsInf(cost[best], 1) {
		return best, false
	}
	return best, true
}
