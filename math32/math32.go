// math32 is a stand-in for the built-in math package, but the functions take at least float32s (if not all comparable numbers) instead of float64s.
// This is to make it easier to work with meshtree, since vertex buffers, vectors and bounding boxes are all stored as float32s.
// Most of the heavy lifting is handed to github.com/chewxy/math32, which implements the float32 routines natively rather than round-tripping through float64.
package math32

import (
	cmath "github.com/chewxy/math32"
)

// MaxFloat32 is the largest finite float32 value.
const MaxFloat32 = cmath.MaxFloat32

// Min returns the minimum value out of two provided values.
// Unlike math.Min, NaNs are not propagated; if either value is NaN, y is returned.
func Min[number float32 | float64 | int | int32 | int64 | uint32](x, y number) number {
	if x < y {
		return x
	}
	return y
}

// Max returns the maximum value out of two provided values.
// Unlike math.Max, NaNs are not propagated; if either value is NaN, y is returned.
func Max[number float32 | float64 | int | int32 | int64 | uint32](x, y number) number {
	if x > y {
		return x
	}
	return y
}

// Clamp clamps a value to the minimum and maximum values provided.
func Clamp[number float32 | float64 | int | int32 | int64](value, min, max number) number {
	if value < min {
		return min
	} else if value > max {
		return max
	}
	return value
}

// Abs returns the absolute value of x.
//
// Special cases are:
//
//	Abs(±Inf) = +Inf
//	Abs(NaN) = NaN
func Abs(x float32) float32 {
	return cmath.Abs(x)
}

// Sign returns the sign of the value given. If it's greater than 0, it returns 1. If less than 0, it returns -1. Otherwise, it returns 0.
func Sign(f float32) float32 {
	if f > 0 {
		return 1
	} else if f < 0 {
		return -1
	}
	return 0
}

// Inf returns positive infinity if sign >= 0, negative infinity if sign < 0.
func Inf(sign int) float32 {
	return cmath.Inf(sign)
}

// IsNaN returns if the provided float32 is a NaN.
func IsNaN(x float32) bool {
	return cmath.IsNaN(x)
}

// IsInf returns if the provided float32 (x) is Inf in the direction of the sign provided.
// If sign > 0, IsInf reports whether x is positive infinity.
// If sign < 0, IsInf reports whether x is negative infinity.
// If sign == 0, IsInf reports whether x is either infinity.
func IsInf(x float32, sign int) bool {
	return cmath.IsInf(x, sign)
}

// Sqrt returns the square root of x.
//
// Special cases are:
//
//	Sqrt(+Inf) = +Inf
//	Sqrt(±0) = ±0
//	Sqrt(x < 0) = NaN
//	Sqrt(NaN) = NaN
func Sqrt(x float32) float32 {
	return cmath.Sqrt(x)
}
