package util

import (
	"math"

	"golang.org/x/exp/constraints"
)

// SafeDiv returns n/d, or 0 when d is too close to zero to divide by.
func SafeDiv[T constraints.Float](n, d T) T {
	const eps = 1e-12
	if d > eps || d < -eps {
		return n / d
	}
	return 0
}

// Clamp bounds v to [lo, hi].
func Clamp[T constraints.Ordered](v, lo, hi T) T {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// TruncInt drops the fractional part (toward zero) and converts to int.
// A value strictly below an integer bound stays below it after truncation.
// NaN and infinities map to 0.
func TruncInt[T constraints.Float](x T) int {
	f := float64(x)
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return 0
	}
	return int(math.Trunc(f))
}

// Square returns x*x.
func Square[T constraints.Integer | constraints.Float](x T) T { return x * x }

// FullScale returns the largest code of an n-bit converter (2^n - 1).
func FullScale(bits int) int {
	if bits <= 0 {
		return 0
	}
	return 1<<bits - 1
}
