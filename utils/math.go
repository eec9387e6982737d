// Package utils contains small shared helpers for the fsync packages.
package utils

import "math"

func DegToRad(degrees float64) float64 {
	return degrees * math.Pi / 180
}

func RadToDeg(radians float64) float64 {
	return radians * 180 / math.Pi
}

// Clamp restricts value to the inclusive range [min, max].
func Clamp(value, min, max float64) float64 {
	if value < min {
		return min
	}
	if value > max {
		return max
	}
	return value
}

// Float64AlmostEqual reports whether a and b differ by less than tol.
func Float64AlmostEqual(a, b, tol float64) bool {
	return math.Abs(a-b) < tol
}
