package utils

import (
	"math"

	"golang.org/x/exp/constraints"
)

func Abs[T constraints.Signed | constraints.Float](x T) T {
	if x < 0 {
		return -x
	}
	return x
}

// Clamp limits v to [lo, hi].
func Clamp[T constraints.Ordered](v, lo, hi T) T {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// AlmostEqual compares floats with an absolute tolerance.
func AlmostEqual(a, b, eps float64) bool {
	return math.Abs(a-b) <= eps
}
