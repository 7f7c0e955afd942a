package core

import "time"

// StageTiming records how long one named pipeline stage took.
type StageTiming struct {
	Stage    string
	Duration time.Duration
}

// Stopwatch accumulates per-stage durations for a single generation run.
type Stopwatch struct {
	now    func() time.Time
	last   time.Time
	stages []StageTiming
}

// NewStopwatch constructs a Stopwatch that starts timing immediately.
func NewStopwatch() *Stopwatch {
	sw := &Stopwatch{now: time.Now}
	sw.last = sw.now()
	return sw
}

// Lap closes the current stage under the given name and starts the next one.
// It returns the duration of the closed stage.
func (s *Stopwatch) Lap(stage string) time.Duration {
	now := s.now()
	d := now.Sub(s.last)
	s.last = now
	s.stages = append(s.stages, StageTiming{Stage: stage, Duration: d})
	return d
}

// Stages returns the recorded stage timings in order.
func (s *Stopwatch) Stages() []StageTiming {
	return s.stages
}

// Total returns the sum of all recorded stages.
func (s *Stopwatch) Total() time.Duration {
	var total time.Duration
	for _, st := range s.stages {
		total += st.Duration
	}
	return total
}
