package gogeometry

import "math"

// Unit classifies the dimension of a property value.
type Unit int

const (
	UnitLength Unit = iota
	UnitArea
	UnitVolume
	UnitAngle // degrees
	UnitRatio
	UnitCount
)

// String returns the unit class name.
func (u Unit) String() string {
	switch u {
	case UnitLength:
		return "length"
	case UnitArea:
		return "area"
	case UnitVolume:
		return "volume"
	case UnitAngle:
		return "angle"
	case UnitRatio:
		return "ratio"
	case UnitCount:
		return "count"
	}
	return "unknown"
}

// Angles are stored in degrees; trigonometry runs in radians.

// Radians converts degrees to radians.
func Radians(deg float64) float64 {
	return deg * math.Pi / 180
}

// Degrees converts radians to degrees.
func Degrees(rad float64) float64 {
	return rad * 180 / math.Pi
}

// Central tolerance policy. Every consistency and degeneracy check in the
// package goes through approxEqual/approxZero; mesh-vs-solver cross-checks use
// the looser epsMesh because divergence-theorem sums accumulate rounding over
// many faces.
const (
	epsAbs  = 1e-9
	epsRel  = 1e-9
	epsMesh = 1e-6
)

// approxEqual reports whether a and b agree within the hybrid
// absolute/relative tolerance.
func approxEqual(a, b float64) bool {
	return approxEqualTol(a, b, epsAbs, epsRel)
}

func approxEqualTol(a, b, abs, rel float64) bool {
	diff := math.Abs(a - b)
	if diff <= abs {
		return true
	}
	return diff <= rel*math.Max(math.Abs(a), math.Abs(b))
}

// approxZero reports whether v is indistinguishable from zero.
func approxZero(v float64) bool {
	return math.Abs(v) <= epsAbs
}

// isCount reports whether v holds an exact non-negative integer. Count-valued
// properties (polygon side counts, terrace tiers) travel as float64 like every
// other property but must not carry a fractional part.
func isCount(v float64) bool {
	return v == math.Trunc(v) && v >= 0 && !math.IsInf(v, 0)
}
