package fill

import "math"

const Tolerance = 1e-6

// To compensate for imprecision in floats, equality is tolerance based.
// Vertices that land within Tolerance of each other after an inset are the
// same vertex for all practical plotting purposes.
func Equal(a, b float64) bool {
	return math.Abs(a-b) < Tolerance
}

// Often we want to treat a vertex list as a circular buffer. This gives the
// modular index given length n, but unlike the raw modulo operator, it only
// gives positive values.
func CircularIndex(i, n int) int {
	return (i%n + n) % n
}
