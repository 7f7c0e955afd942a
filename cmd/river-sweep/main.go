// Command river-sweep tunes the river seeding parameters by coordinate
// descent, maximising how many rivers a world accepts.
package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"runtime"
	"time"

	"tileworld/internal/app"
	"tileworld/internal/world"
)

func main() {
	cfg := app.NewConfig()
	cfg.Width = 192
	cfg.Height = 192
	cfg.Seed = 1337
	cfg.Bind(flag.CommandLine)
	passes := flag.Int("passes", 3, "coordinate-descent passes to execute")
	workers := flag.Int("workers", runtime.NumCPU(), "parallel candidate evaluations")
	manualOnly := flag.Bool("manual", false, "skip sweeping and only evaluate provided overrides")
	flag.Parse()

	logger := app.NewLogger(os.Stderr, cfg.LogLevel)

	base := world.FromMap(cfg.Overrides())
	base.Projection = cfg.Projection
	if err := base.Validate(); err != nil {
		logger.Error("invalid configuration", "err", err)
		os.Exit(2)
	}

	baseline, err := world.RiverFlowResult(base)
	if err != nil {
		logger.Error("baseline", "err", err)
		os.Exit(1)
	}
	fmt.Printf("Baseline: %s\n", describe(baseline))

	if *manualOnly {
		fmt.Println("Manual evaluation requested; skipping sweep.")
		printParams(os.Stdout, base.Params)
		return
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	start := time.Now()
	params, result, trace, err := world.RiverParameterSweep(ctx, base, *passes, *workers)
	if err != nil {
		logger.Error("sweep aborted", "err", err, "elapsed", time.Since(start).Round(time.Millisecond))
		os.Exit(1)
	}

	fmt.Printf("\nBest found (elapsed %s): %s\n", time.Since(start).Round(time.Millisecond), describe(result))
	printParams(os.Stdout, params)

	if len(trace) > 1 {
		fmt.Println("\nImprovements:")
		for _, rec := range trace[1:] {
			fmt.Printf("  pass %d: %s=%s -> %s\n", rec.Pass, rec.Parameter, rec.Value, describe(rec.Result))
		}
	}
}

func describe(r world.RiverYieldResult) string {
	s := fmt.Sprintf("%d/%d rivers, %d discarded, %d attempts, %d groups, %d river tiles, longest %d",
		r.Accepted, r.Requested, r.Discarded, r.Attempts, r.Groups, r.RiverTiles, r.LongestRiver)
	if r.Exhausted {
		s += " (budget exhausted)"
	}
	return s
}

func printParams(out io.Writer, p world.Params) {
	fmt.Fprintln(out, "Parameters:")
	fmt.Fprintf(out, "  river_count=%d\n", p.RiverCount)
	fmt.Fprintf(out, "  min_river_height=%.3f\n", p.MinRiverHeight)
	fmt.Fprintf(out, "  max_river_attempts=%d\n", p.MaxRiverAttempts)
	fmt.Fprintf(out, "  min_river_turns=%d\n", p.MinRiverTurns)
	fmt.Fprintf(out, "  min_river_length=%d\n", p.MinRiverLength)
	fmt.Fprintf(out, "  max_river_intersections=%d\n", p.MaxRiverIntersections)
	fmt.Fprintf(out, "  river_tie_epsilon=%.3f\n", p.RiverTieEpsilon)
}
