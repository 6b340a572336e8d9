package entity

import (
	"math"

	"github.com/jakecoffman/cp"
)

// Unit directions in world space (y grows upward).
var (
	Up    = cp.Vector{X: 0, Y: 1}
	Down  = cp.Vector{X: 0, Y: -1}
	Left  = cp.Vector{X: -1, Y: 0}
	Right = cp.Vector{X: 1, Y: 0}
)

// approxEpsilon is the tolerance used by Approximately.
const approxEpsilon = 1e-5

// MoveTowards moves current toward target by at most maxDelta and never overshoots.
func MoveTowards(current, target, maxDelta float64) float64 {
	if maxDelta < 0 {
		maxDelta = 0
	}
	if math.Abs(target-current) <= maxDelta {
		return target
	}
	return current + math.Copysign(maxDelta, target-current)
}

// MoveTowardsVector is the vector form of MoveTowards.
func MoveTowardsVector(current, target cp.Vector, maxDelta float64) cp.Vector {
	if maxDelta < 0 {
		maxDelta = 0
	}
	return current.LerpConst(target, maxDelta)
}

// Sign returns -1 for negative values and +1 otherwise (zero counts as positive).
func Sign(v float64) float64 {
	if v < 0 {
		return -1
	}
	return 1
}

// Clamp01 clamps v into [0, 1]. NaN clamps to 0.
func Clamp01(v float64) float64 {
	if !(v > 0) {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}

// Approximately reports whether a and b are equal within a small tolerance.
func Approximately(a, b float64) bool {
	return math.Abs(a-b) < approxEpsilon
}

// AngleDegrees returns the unsigned angle between a and b in degrees.
// A zero-length vector yields 90 so it never passes an angle limit check.
func AngleDegrees(a, b cp.Vector) float64 {
	la, lb := a.Length(), b.Length()
	if la < approxEpsilon || lb < approxEpsilon {
		return 90
	}
	cos := a.Dot(b) / (la * lb)
	cos = math.Max(-1, math.Min(1, cos))
	return math.Acos(cos) * 180 / math.Pi
}

// Lerp interpolates between a and b by t without clamping.
func Lerp(a, b, t float64) float64 {
	return a + (b-a)*t
}

// IsZero reports whether v has no length.
func IsZero(v cp.Vector) bool {
	return v.X == 0 && v.Y == 0
}
