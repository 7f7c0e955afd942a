package world

import (
	"context"
	"fmt"
	"math"
	"strconv"

	"golang.org/x/sync/errgroup"
)

// RiverYieldResult captures how well a configuration fills its river quota.
type RiverYieldResult struct {
	Requested int
	Accepted  int
	Discarded int
	Attempts  int
	Exhausted bool
	// Groups counts rivers joined into confluences.
	Groups int
	// RiverTiles counts tiles turned into river terrain by carving.
	RiverTiles int
	// LongestRiver is the path length of the longest accepted river.
	LongestRiver int
}

// SweepRecord documents one improvement found while exploring river
// parameters.
type SweepRecord struct {
	Pass      int
	Parameter string
	Value     string
	Result    RiverYieldResult
	Params    Params
}

// RiverFlowResult generates a world with cfg and measures its rivers.
func RiverFlowResult(cfg Config) (RiverYieldResult, error) {
	w, err := NewWithConfig(cfg)
	if err != nil {
		return RiverYieldResult{}, err
	}
	if err := w.Reset(0); err != nil {
		return RiverYieldResult{}, err
	}
	return measureRivers(w), nil
}

func measureRivers(w *World) RiverYieldResult {
	rep := w.RiverReport()
	res := RiverYieldResult{
		Requested: rep.Requested,
		Accepted:  rep.Accepted,
		Discarded: rep.Discarded,
		Attempts:  rep.Attempts,
		Exhausted: rep.Exhausted,
		Groups:    len(w.RiverGroups()),
	}
	for _, r := range w.Rivers() {
		res.LongestRiver = max(res.LongestRiver, r.Length)
	}
	for i := range w.tiles {
		if w.tiles[i].HeightType == RiverBed {
			res.RiverTiles++
		}
	}
	return res
}

type floatSpec struct {
	name   string
	values []float64
	getter func(Params) float64
	setter func(*Params, float64)
}

type intSpec struct {
	name   string
	values []int
	getter func(Params) int
	setter func(*Params, int)
}

var riverIntSpecs = []intSpec{
	{
		name:   "min_river_turns",
		values: []int{4, 8, 12, 18, 24},
		getter: func(p Params) int { return p.MinRiverTurns },
		setter: func(p *Params, v int) { p.MinRiverTurns = v },
	},
	{
		name:   "min_river_length",
		values: []int{10, 15, 20, 30, 40},
		getter: func(p Params) int { return p.MinRiverLength },
		setter: func(p *Params, v int) { p.MinRiverLength = v },
	},
	{
		name:   "max_river_intersections",
		values: []int{0, 1, 2, 3, 4},
		getter: func(p Params) int { return p.MaxRiverIntersections },
		setter: func(p *Params, v int) { p.MaxRiverIntersections = v },
	},
}

var riverFloatSpecs = []floatSpec{
	{
		name:   "min_river_height",
		values: []float64{0.5, 0.55, 0.6, 0.65, 0.7},
		getter: func(p Params) float64 { return p.MinRiverHeight },
		setter: func(p *Params, v float64) { p.MinRiverHeight = v },
	},
	{
		name:   "river_tie_epsilon",
		values: []float64{0, 0.05, 0.1, 0.2},
		getter: func(p Params) float64 { return p.RiverTieEpsilon },
		setter: func(p *Params, v float64) { p.RiverTieEpsilon = v },
	},
}

// RiverParameterSweep runs a coordinate-descent search over the river
// validation limits and returns the best parameters found, their yield and
// an improvement trace. Candidate worlds are generated on up to workers
// goroutines.
func RiverParameterSweep(ctx context.Context, base Config, passes, workers int) (Params, RiverYieldResult, []SweepRecord, error) {
	if passes <= 0 {
		passes = 1
	}
	if workers <= 0 {
		workers = 1
	}

	current := base.Params
	best, err := RiverFlowResult(base)
	if err != nil {
		return current, RiverYieldResult{}, nil, err
	}
	records := []SweepRecord{{Parameter: "baseline", Result: best, Params: current}}

	for pass := 1; pass <= passes; pass++ {
		improved := false
		for _, spec := range riverIntSpecs {
			values := make([]func(*Params), len(spec.values))
			labels := make([]string, len(spec.values))
			for i, v := range spec.values {
				if v == spec.getter(current) {
					continue
				}
				setter, v := spec.setter, v
				values[i] = func(p *Params) { setter(p, v) }
				labels[i] = strconv.Itoa(v)
			}
			next, res, recs, err := evaluateCandidates(ctx, base, current, best, spec.name, values, labels, workers, pass)
			if err != nil {
				return current, best, records, err
			}
			if len(recs) > 0 {
				current, best = next, res
				records = append(records, recs...)
				improved = true
			}
		}
		for _, spec := range riverFloatSpecs {
			values := make([]func(*Params), len(spec.values))
			labels := make([]string, len(spec.values))
			for i, v := range spec.values {
				if almostEqual(v, spec.getter(current)) {
					continue
				}
				setter, v := spec.setter, v
				values[i] = func(p *Params) { setter(p, v) }
				labels[i] = fmt.Sprintf("%.3f", v)
			}
			next, res, recs, err := evaluateCandidates(ctx, base, current, best, spec.name, values, labels, workers, pass)
			if err != nil {
				return current, best, records, err
			}
			if len(recs) > 0 {
				current, best = next, res
				records = append(records, recs...)
				improved = true
			}
		}
		if !improved {
			break
		}
	}
	return current, best, records, nil
}

// evaluateCandidates generates one world per non-nil mutation concurrently and
// keeps the improvements in candidate order.
func evaluateCandidates(ctx context.Context, base Config, params Params, baseline RiverYieldResult, name string, mutations []func(*Params), labels []string, workers, pass int) (Params, RiverYieldResult, []SweepRecord, error) {
	results := make([]RiverYieldResult, len(mutations))
	valid := make([]bool, len(mutations))

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)
	for i, mutate := range mutations {
		if mutate == nil {
			continue
		}
		candidate := params
		mutate(&candidate)
		cfg := applyParams(base, candidate)
		if cfg.Validate() != nil {
			continue
		}
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			res, err := RiverFlowResult(cfg)
			if err != nil {
				return fmt.Errorf("%s=%s: %w", name, labels[i], err)
			}
			results[i], valid[i] = res, true
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return params, baseline, nil, err
	}

	bestParams, bestResult := params, baseline
	var records []SweepRecord
	for i, mutate := range mutations {
		if !valid[i] || !betterRiverResult(results[i], bestResult) {
			continue
		}
		candidate := params
		mutate(&candidate)
		bestParams, bestResult = candidate, results[i]
		records = append(records, SweepRecord{
			Pass:      pass,
			Parameter: name,
			Value:     labels[i],
			Result:    results[i],
			Params:    candidate,
		})
	}
	return bestParams, bestResult, records, nil
}

// betterRiverResult prefers more accepted rivers, then more carved river
// terrain, then fewer seeding attempts.
func betterRiverResult(a, b RiverYieldResult) bool {
	if a.Accepted != b.Accepted {
		return a.Accepted > b.Accepted
	}
	if a.RiverTiles != b.RiverTiles {
		return a.RiverTiles > b.RiverTiles
	}
	return a.Attempts < b.Attempts
}

func almostEqual(a, b float64) bool {
	const eps = 1e-6
	return math.Abs(a-b) <= eps
}

func applyParams(base Config, params Params) Config {
	cfg := base
	cfg.Params = params
	return cfg
}
