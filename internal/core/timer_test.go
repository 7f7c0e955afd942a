package core

import (
	"testing"
	"time"
)

func TestStopwatchLapsAccumulate(t *testing.T) {
	base := time.Unix(0, 0)
	tick := base
	sw := &Stopwatch{now: func() time.Time { return tick }, last: base}

	tick = base.Add(3 * time.Millisecond)
	if d := sw.Lap("noise"); d != 3*time.Millisecond {
		t.Fatalf("expected 3ms lap, got %v", d)
	}
	tick = tick.Add(5 * time.Millisecond)
	sw.Lap("classify")

	stages := sw.Stages()
	if len(stages) != 2 || stages[1].Stage != "classify" {
		t.Fatalf("unexpected stages %+v", stages)
	}
	if total := sw.Total(); total != 8*time.Millisecond {
		t.Fatalf("expected total 8ms, got %v", total)
	}
}
