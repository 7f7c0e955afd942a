package world

import (
	"slices"
	"testing"

	"tileworld/internal/core"
)

// buildValley lays out an 8x3 world whose middle row ramps down from east to
// a single water tile at x=0, walled in by high ground.
func buildValley(t *testing.T) *World {
	t.Helper()
	cfg := smallConfig(8, 3)
	cfg.Params.MoistureRadius = 0
	w := newTestWorld(t, cfg)
	for i := range w.tiles {
		w.tiles[i].HeightValue = 0.95
		w.tiles[i].HeightType = Snow
		w.tiles[i].Collidable = true
	}
	ramp := []float64{0.1, 0.55, 0.6, 0.65, 0.7, 0.75, 0.8, 0.9}
	for x, h := range ramp {
		tile := w.At(x, 1)
		tile.HeightValue = h
		tile.HeightType = Grass
	}
	water := w.At(0, 1)
	water.HeightType = ShallowWater
	water.Collidable = false
	return w
}

func TestFindPathToWaterDescendsRamp(t *testing.T) {
	w := buildValley(t)
	source := w.Index(6, 1)

	if got := w.lowestNeighbor(source); got != core.Left {
		t.Fatalf("expected initial direction left, got %v", got)
	}

	r := &River{ID: 0, Direction: w.lowestNeighbor(source)}
	w.findPathToWater(source, r)

	want := []int{w.Index(6, 1), w.Index(5, 1), w.Index(4, 1), w.Index(3, 1), w.Index(2, 1), w.Index(1, 1)}
	if !slices.Equal(r.Tiles, want) {
		t.Fatalf("unexpected path %v, want %v", r.Tiles, want)
	}
	if r.TurnCount != 0 || r.Intersections != 0 {
		t.Fatalf("straight descent recorded %d turns, %d intersections", r.TurnCount, r.Intersections)
	}
	for _, idx := range want {
		if !w.tiles[idx].HasRiver(0) {
			t.Fatalf("path tile %d missing membership", idx)
		}
	}
	if w.tiles[w.Index(0, 1)].HasRiver(0) {
		t.Fatal("open water must not record membership")
	}
}

func TestFindPathCountsIntersections(t *testing.T) {
	w := buildValley(t)
	w.tiles[w.Index(3, 1)].addRiver(5)

	r := &River{ID: 0, Direction: core.Left}
	w.findPathToWater(w.Index(6, 1), r)
	if r.Intersections != 1 {
		t.Fatalf("expected one intersection, got %d", r.Intersections)
	}
}

func TestDiscardRiverRemovesAllMembership(t *testing.T) {
	w := buildValley(t)
	r := &River{ID: 3, Direction: core.Left}
	w.findPathToWater(w.Index(6, 1), r)
	w.tiles[w.Index(4, 1)].addRiver(9)

	w.discardRiver(r)

	for i, tile := range w.tiles {
		if tile.HasRiver(3) {
			t.Fatalf("tile %d still references discarded river", i)
		}
	}
	if !w.tiles[w.Index(4, 1)].HasRiver(9) {
		t.Fatal("discard removed a foreign river")
	}
}

func TestLowestNeighborDefaultsToBottom(t *testing.T) {
	w := newTestWorld(t, smallConfig(4, 4))
	for i := range w.tiles {
		w.tiles[i].HeightValue = 0.5
	}
	idx := w.Index(1, 1)
	if got := w.lowestNeighbor(idx); got != core.Bottom {
		t.Fatalf("flat ground should default to bottom, got %v", got)
	}

	setNeighbor := func(d core.Direction, h float64) {
		w.tiles[w.neighbors[idx][d]].HeightValue = h
	}
	setNeighbor(core.Left, 0.2)
	setNeighbor(core.Top, 0.2)
	if got := w.lowestNeighbor(idx); got != core.Bottom {
		t.Fatalf("left/top tie for lowest should default to bottom, got %v", got)
	}

	setNeighbor(core.Top, 0.1)
	if got := w.lowestNeighbor(idx); got != core.Top {
		t.Fatalf("expected top once it is strictly lowest, got %v", got)
	}

	setNeighbor(core.Right, 0.05)
	setNeighbor(core.Bottom, 0.05)
	if got := w.lowestNeighbor(idx); got != core.Bottom {
		t.Fatalf("right/bottom tie should default to bottom, got %v", got)
	}
}

func TestPickFlowTieOrder(t *testing.T) {
	cost := [4]float64{core.Right: 0.5, core.Top: 0.5, core.Left: 0.5, core.Bottom: 0.5}
	if d, ok := pickFlow(cost); !ok || d != core.Left {
		t.Fatalf("expected left on full tie, got %v ok=%v", d, ok)
	}
	cost[core.Left] = 0.9
	if d, _ := pickFlow(cost); d != core.Right {
		t.Fatalf("expected right after left, got %v", d)
	}
	cost[core.Right] = 0.9
	if d, _ := pickFlow(cost); d != core.Bottom {
		t.Fatalf("expected bottom before top, got %v", d)
	}
}

func TestGenerateRiversDiscardIsTotal(t *testing.T) {
	cfg := smallConfig(64, 64)
	cfg.Params.RiverCount = 30
	cfg.Params.MinRiverTurns = 6
	cfg.Params.MinRiverLength = 10
	cfg.Params.MaxRiverIntersections = 1
	w := newTestWorld(t, cfg)

	fields := sampleTorus(t, w)
	w.classifyTerrain(fields)
	w.generateRivers()

	for idx, tile := range w.tiles {
		for _, id := range tile.Rivers {
			if id >= len(w.rivers) {
				t.Fatalf("tile %d references discarded river %d", idx, id)
			}
			if !slices.Contains(w.rivers[id].Tiles, idx) {
				t.Fatalf("tile %d claims river %d outside its path", idx, id)
			}
		}
	}
	for _, r := range w.rivers {
		if r.TurnCount < cfg.Params.MinRiverTurns || r.Length < cfg.Params.MinRiverLength || r.Intersections > cfg.Params.MaxRiverIntersections {
			t.Fatalf("river %d accepted outside limits: %+v", r.ID, r)
		}
		if !w.tiles[r.Source()].HasRiver(r.ID) {
			t.Fatalf("river %d source lost membership", r.ID)
		}
	}
	rep := w.RiverReport()
	if rep.Attempts > cfg.Params.MaxRiverAttempts {
		t.Fatalf("attempts %d exceed budget", rep.Attempts)
	}
	if rep.Exhausted != (rep.Accepted < rep.Requested) {
		t.Fatalf("inconsistent exhaustion flag in %+v", rep)
	}
}

func TestGenerateRiversZeroBudget(t *testing.T) {
	cfg := smallConfig(16, 16)
	cfg.Params.MaxRiverAttempts = 0
	w := newTestWorld(t, cfg)
	w.classifyTerrain(sampleTorus(t, w))
	w.generateRivers()
	rep := w.RiverReport()
	if !rep.Exhausted || rep.Accepted != 0 || rep.Attempts != 0 {
		t.Fatalf("expected exhausted empty report, got %+v", rep)
	}
}
