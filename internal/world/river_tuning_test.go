package world

import (
	"context"
	"testing"
)

func TestRiverFlowResultDeterministic(t *testing.T) {
	cfg := smallConfig(48, 48)
	a, err := RiverFlowResult(cfg)
	if err != nil {
		t.Fatalf("RiverFlowResult: %v", err)
	}
	b, err := RiverFlowResult(cfg)
	if err != nil {
		t.Fatalf("RiverFlowResult: %v", err)
	}
	if a != b {
		t.Fatalf("identical configs measured differently: %+v vs %+v", a, b)
	}
	if a.Requested != cfg.Params.RiverCount {
		t.Fatalf("requested %d, want %d", a.Requested, cfg.Params.RiverCount)
	}
	if a.Accepted > 0 && a.RiverTiles < a.LongestRiver {
		t.Fatalf("carved %d tiles but longest river has %d", a.RiverTiles, a.LongestRiver)
	}
}

func TestRiverFlowResultInvalidConfig(t *testing.T) {
	cfg := smallConfig(48, 48)
	cfg.Width = 0
	if _, err := RiverFlowResult(cfg); err == nil {
		t.Fatal("expected error for invalid config")
	}
}

func TestRiverParameterSweepNeverRegresses(t *testing.T) {
	cfg := smallConfig(32, 32)
	params, best, records, err := RiverParameterSweep(context.Background(), cfg, 1, 4)
	if err != nil {
		t.Fatalf("RiverParameterSweep: %v", err)
	}
	if len(records) == 0 || records[0].Parameter != "baseline" {
		t.Fatalf("expected baseline record first, got %+v", records)
	}
	baseline := records[0].Result
	if betterRiverResult(baseline, best) {
		t.Fatalf("sweep result %+v worse than baseline %+v", best, baseline)
	}
	last := records[len(records)-1]
	if last.Params != params || last.Result != best {
		t.Fatal("final record does not match returned parameters")
	}

	again, err := RiverFlowResult(applyParams(cfg, params))
	if err != nil {
		t.Fatalf("RiverFlowResult: %v", err)
	}
	if again != best {
		t.Fatalf("best params re-measured as %+v, want %+v", again, best)
	}
}

func TestRiverParameterSweepCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if _, _, _, err := RiverParameterSweep(ctx, smallConfig(24, 24), 1, 2); err == nil {
		t.Fatal("expected cancellation error")
	}
}

func TestBetterRiverResultOrdering(t *testing.T) {
	base := RiverYieldResult{Accepted: 3, RiverTiles: 40, Attempts: 100}
	if !betterRiverResult(RiverYieldResult{Accepted: 4}, base) {
		t.Fatal("more rivers must win")
	}
	if !betterRiverResult(RiverYieldResult{Accepted: 3, RiverTiles: 41, Attempts: 500}, base) {
		t.Fatal("more river terrain must win on equal count")
	}
	if !betterRiverResult(RiverYieldResult{Accepted: 3, RiverTiles: 40, Attempts: 50}, base) {
		t.Fatal("fewer attempts must win on equal yield")
	}
	if betterRiverResult(base, base) {
		t.Fatal("equal results must not count as improvement")
	}
}
