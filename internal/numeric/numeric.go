// Package numeric provides the free-standing scalar helpers used across
// the control stack: tolerant comparison, range clamping, deadband
// application, and small container predicates.
//
// All functions are pure and safe for concurrent use.
package numeric

import "cmp"

// Number covers the signed scalar types the control stack computes with.
type Number interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 | ~float32 | ~float64
}

// Float restricts to floating-point scalar types.
type Float interface {
	~float32 | ~float64
}

// Abs returns the absolute value of v.
func Abs[T Number](v T) T {
	if v < 0 {
		return -v
	}
	return v
}

// EqualWithin reports whether a and b differ by at most tol.
//
// The comparison is non-strict: EqualWithin(a, b, 0) is exact equality.
// Symmetric in a and b, and reflexive for any tol >= 0.
func EqualWithin[T Number](a, b, tol T) bool {
	return Abs(a-b) <= tol
}

// SlicesEqual reports whether a and b have the same length and exactly
// equal elements pairwise. No tolerance is applied.
func SlicesEqual[T comparable](a, b []T) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

// Clamp restricts v to the range [lo, hi].
//
// The caller must guarantee lo <= hi; an inverted range is a programmer
// error and panics.
func Clamp[T cmp.Ordered](v, lo, hi T) T {
	if hi < lo {
		panic("numeric: Clamp range inverted (lo > hi)")
	}
	if v < lo {
		return lo
	}
	if hi < v {
		return hi
	}
	return v
}

// Deadband zeroes v when its magnitude is strictly below band.
// Values with |v| == band pass through unchanged.
func Deadband[T Number](v, band T) T {
	if v < band && v > -band {
		return 0
	}
	return v
}

// DeadbandClamp applies Deadband and then coerces the result into
// [lo, hi]. The range precondition of Clamp applies.
func DeadbandClamp[T Number](v, band, lo, hi T) T {
	return Clamp(Deadband(v, band), lo, hi)
}

// Sign returns the ternary sign of v: 1 for positive, 0 for zero,
// -1 for negative.
func Sign[T Number](v T) int {
	switch {
	case v > 0:
		return 1
	case v < 0:
		return -1
	default:
		return 0
	}
}

// MapToRange maps x from [inMin, inMax] to [outMin, outMax] linearly.
// x outside the input range extrapolates on the same line.
//
// Undefined when inMin == inMax (division by zero).
func MapToRange[T Float](x, inMin, inMax, outMin, outMax T) T {
	return outMin + (x-inMin)*(outMax-outMin)/(inMax-inMin)
}

// ContainsKey reports whether key is present in m, without exposing the
// mapped value. A nil map contains nothing.
func ContainsKey[K comparable, V any](m map[K]V, key K) bool {
	_, ok := m[key]
	return ok
}
