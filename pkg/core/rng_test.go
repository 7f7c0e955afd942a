package core

import "testing"

func TestRangeDegenerateReturnsMin(t *testing.T) {
	r := NewRNG(1)
	for _, tc := range []struct{ min, max int }{{3, 3}, {5, 2}, {0, 0}} {
		if got := r.Range(tc.min, tc.max); got != tc.min {
			t.Fatalf("Range(%d,%d) = %d, expected %d", tc.min, tc.max, got, tc.min)
		}
	}
}

func TestRangeStaysInBounds(t *testing.T) {
	r := NewRNG(7)
	for i := 0; i < 1000; i++ {
		v := r.Range(1, 5)
		if v < 1 || v >= 5 {
			t.Fatalf("Range(1,5) produced %d", v)
		}
	}
}

func TestRNGDeterministic(t *testing.T) {
	a := NewRNG(42)
	b := NewRNG(42)
	for i := 0; i < 100; i++ {
		if a.Int63() != b.Int63() {
			t.Fatalf("sequences diverged at %d", i)
		}
	}
}
