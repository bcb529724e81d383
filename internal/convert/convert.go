// Package convert holds the scalar conversion and string formatting
// helpers shared across the control stack.
package convert

import (
	"fmt"
	"strconv"
)

// FormatNumber renders a floating-point value in its shortest
// representation that parses back to the same value ('g' format,
// negative precision). Unlike fixed-decimal formatting this never
// truncates very small or very large magnitudes.
func FormatNumber[T float32 | float64](v T) string {
	return strconv.FormatFloat(float64(v), 'g', -1, bitSize[T]())
}

// FormatBool renders b as the literal "true" or "false".
func FormatBool(b bool) string {
	return strconv.FormatBool(b)
}

// ParseNumber parses s as a floating-point value of type T. Malformed
// input fails with the underlying strconv error wrapped for context.
func ParseNumber[T float32 | float64](s string) (T, error) {
	f, err := strconv.ParseFloat(s, bitSize[T]())
	if err != nil {
		return 0, fmt.Errorf("parse number %q: %w", s, err)
	}
	return T(f), nil
}

// Sprintf formats printf-style and returns the result.
func Sprintf(format string, args ...any) string {
	return fmt.Sprintf(format, args...)
}

// bitSize reports the mantissa width strconv expects for T.
func bitSize[T float32 | float64]() int {
	var v T
	if _, ok := any(v).(float32); ok {
		return 32
	}
	return 64
}
