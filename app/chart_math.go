package app

import "math"

// catmullRom interpolates between p1 and p2 at t in [0,1], p0 and p3
// steer the tangents. Applied to Y only so the curve stays a function
// of the category axis.
func catmullRom(p0, p1, p2, p3, t float64) float64 {
	t2 := t * t
	t3 := t2 * t
	return 0.5 * ((2 * p1) +
		(-p0+p2)*t +
		(2*p0-5*p1+4*p2-p3)*t2 +
		(-p0+3*p1-3*p2+p3)*t3)
}

// niceValueStep picks a tick step that lands between roughly 4 and 10
// ticks over the visible range.
func niceValueStep(visibleRange float64) float64 {
	if visibleRange <= 0 {
		return 1
	}
	magnitude := math.Floor(math.Log10(visibleRange))
	baseStep := math.Pow(10, magnitude)
	normalizedRange := visibleRange / baseStep
	switch {
	case normalizedRange <= 2.0:
		return baseStep / 5
	case normalizedRange <= 5.0:
		return baseStep / 2
	default:
		return baseStep
	}
}
