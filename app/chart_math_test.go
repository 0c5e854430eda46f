package app

import (
	"math"
	"testing"
)

func TestCatmullRomHitsKnots(t *testing.T) {
	p0, p1, p2, p3 := 3.0, -1.0, 4.0, 2.0
	if got := catmullRom(p0, p1, p2, p3, 0); math.Abs(got-p1) > 1e-9 {
		t.Errorf("t=0: got %v, want %v", got, p1)
	}
	if got := catmullRom(p0, p1, p2, p3, 1); math.Abs(got-p2) > 1e-9 {
		t.Errorf("t=1: got %v, want %v", got, p2)
	}
}

func TestCatmullRomLinearData(t *testing.T) {
	// Collinear control points keep the curve on the line.
	if got := catmullRom(0, 1, 2, 3, 0.5); math.Abs(got-1.5) > 1e-9 {
		t.Errorf("midpoint: got %v, want 1.5", got)
	}
}

func TestNiceValueStep(t *testing.T) {
	cases := []struct {
		visibleRange float64
		want         float64
	}{
		{1_000_000, 200_000},
		{45_000, 5_000},
		{750, 100},
		{199, 20},
		{10, 2},
		{0, 1},
	}
	for _, c := range cases {
		if got := niceValueStep(c.visibleRange); math.Abs(got-c.want) > 1e-9 {
			t.Errorf("niceValueStep(%v) = %v, want %v", c.visibleRange, got, c.want)
		}
	}
}
