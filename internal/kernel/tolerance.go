// Package kernel holds the float64 geometry behind the planar package:
// tolerance-aware points and segments, affine matrices, and the chain
// algorithms (parametrization, crossings, contiguousness, trimming).
//
// Nothing here knows about coordinate systems. Callers express every
// operand in one frame before calling in.
package kernel

import (
	"math"

	"gonum.org/v1/gonum/floats/scalar"
)

// Epsilon is the absolute tolerance shared by every predicate in the kernel.
const Epsilon = 1e-8

// RelativeEpsilon only matters for magnitudes where Epsilon drops below
// float64 resolution (roughly beyond 1e7).
const RelativeEpsilon = 1e-15

// Equal reports whether two scalars are equal within tolerance.
func Equal(a, b float64) bool {
	return scalar.EqualWithinAbsOrRel(a, b, Epsilon, RelativeEpsilon)
}

// IsZero reports whether v is within Epsilon of zero.
func IsZero(v float64) bool {
	return math.Abs(v) <= Epsilon
}

// near reports whether a distance d measured around coordinates of the
// given magnitude is within tolerance.
func near(d, magnitude float64) bool {
	return d <= Epsilon || d <= RelativeEpsilon*magnitude
}

// NormalizeAngle maps an angle in radians into [0, 2π).
func NormalizeAngle(a float64) float64 {
	a = math.Mod(a, 2*math.Pi)
	if a < 0 {
		a += 2 * math.Pi
	}
	if a >= 2*math.Pi {
		a = 0
	}
	return a
}
