// Copyright 2025 go-glm Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package glm

import (
	"math"
	"unsafe"
)

// This file holds the scalar building blocks. Every vector and matrix
// function is a component-wise application of one of these, so the rules
// for a scalar kind (rounding, truncation, overflow) are decided here once.
//
// Transcendental functions go through float64 and are converted back to T:
// float32 results are rounded, integer results are truncated toward zero.

// isFloat reports whether T is a floating-point kind.
func isFloat[T Number]() bool {
	one, two := T(1), T(2)
	return one/two != 0
}

// isSigned reports whether T can hold negative values.
func isSigned[T Number]() bool {
	var z T
	z--
	return z < 0
}

// bitSize returns the width of T in bits.
func bitSize[T Number]() int {
	var z T
	return int(unsafe.Sizeof(z)) * 8
}

// convert is the single narrowing/widening rule used by every cross-kind
// conversion: Go's native conversion (float to integer truncates toward zero).
func convert[D, S Number](s S) D {
	return D(s)
}

func toBool[T Number](x T) bool {
	return x != 0
}

func fromBool[T Number](b bool) T {
	if b {
		return 1
	}
	return 0
}

// natural rounds f to the precision vector norms of T are reported in:
// float32 for kinds of 32 bits or less, float64 otherwise.
func natural[T Number](f float64) float64 {
	if bitSize[T]() <= 32 {
		return float64(float32(f))
	}
	return f
}

func viaFloat[T Number](x T, f func(float64) float64) T {
	return T(f(float64(x)))
}

// MaxValue returns the largest finite value of T.
func MaxValue[T Number]() T {
	bits := bitSize[T]()
	switch {
	case isFloat[T]():
		f := math.MaxFloat64
		if bits == 32 {
			f = math.MaxFloat32
		}
		return T(f)
	case isSigned[T]():
		u := uint64(1)<<(bits-1) - 1
		return T(u)
	default:
		var z T
		z--
		return z
	}
}

// MinValue returns the most negative finite value of T (zero for unsigned
// kinds, -MaxValue for floating kinds).
func MinValue[T Number]() T {
	switch {
	case isFloat[T]():
		return -MaxValue[T]()
	case isSigned[T]():
		i := int64(-1) << (bitSize[T]() - 1)
		return T(i)
	default:
		return 0
	}
}

// Epsilon returns the smallest positive value of T.
func Epsilon[T Floats]() T {
	if bitSize[T]() == 32 {
		f := math.SmallestNonzeroFloat32
		return T(f)
	}
	f := math.SmallestNonzeroFloat64
	return T(f)
}

// NaN returns a not-a-number value of T.
func NaN[T Floats]() T {
	return T(math.NaN())
}

// PositiveInfinity returns +Inf of T.
func PositiveInfinity[T Floats]() T {
	return T(math.Inf(1))
}

// NegativeInfinity returns -Inf of T.
func NegativeInfinity[T Floats]() T {
	return T(math.Inf(-1))
}

// Abs returns the absolute value of x.
func Abs[T Number](x T) T {
	if isFloat[T]() {
		return viaFloat(x, math.Abs)
	}
	if x < 0 {
		return -x
	}
	return x
}

// Sign returns -1, 0 or 1 depending on the sign of x. NaN yields 0.
func Sign[T Number](x T) T {
	var one T = 1
	switch {
	case x > 0:
		return one
	case x < 0:
		return -one
	default:
		return 0
	}
}

// Min returns the smaller of a and b.
func Min[T Number](a, b T) T { return min(a, b) }

// Max returns the larger of a and b.
func Max[T Number](a, b T) T { return max(a, b) }

// Mod returns the remainder of a / b. Integer kinds use the truncated
// remainder (panicking on b == 0), floating kinds use math.Mod.
func Mod[T Number](a, b T) T {
	switch {
	case isFloat[T]():
		return T(math.Mod(float64(a), float64(b)))
	case isSigned[T]():
		return T(int64(a) % int64(b))
	default:
		return T(uint64(a) % uint64(b))
	}
}

// Sqrt returns the square root of x.
func Sqrt[T Number](x T) T { return viaFloat(x, math.Sqrt) }

// InverseSqrt returns 1 / Sqrt(x).
func InverseSqrt[T Number](x T) T {
	return viaFloat(x, func(f float64) float64 { return 1 / math.Sqrt(f) })
}

// Pow returns x raised to the power y.
func Pow[T Number](x, y T) T { return T(math.Pow(float64(x), float64(y))) }

// Exp returns e**x.
func Exp[T Number](x T) T { return viaFloat(x, math.Exp) }

// Exp2 returns 2**x.
func Exp2[T Number](x T) T { return viaFloat(x, math.Exp2) }

// Log returns the natural logarithm of x.
func Log[T Number](x T) T { return viaFloat(x, math.Log) }

// Log2 returns the binary logarithm of x.
func Log2[T Number](x T) T { return viaFloat(x, math.Log2) }

// Log10 returns the decimal logarithm of x.
func Log10[T Number](x T) T { return viaFloat(x, math.Log10) }

// Floor returns the greatest integer value less than or equal to x.
func Floor[T Number](x T) T {
	if !isFloat[T]() {
		return x
	}
	return viaFloat(x, math.Floor)
}

// Ceiling returns the least integer value greater than or equal to x.
func Ceiling[T Number](x T) T {
	if !isFloat[T]() {
		return x
	}
	return viaFloat(x, math.Ceil)
}

// Round returns the nearest integer value, rounding half to even.
func Round[T Number](x T) T {
	if !isFloat[T]() {
		return x
	}
	return viaFloat(x, math.RoundToEven)
}

// Truncate returns the integer part of x.
func Truncate[T Number](x T) T {
	if !isFloat[T]() {
		return x
	}
	return viaFloat(x, math.Trunc)
}

// Trunc is Truncate.
func Trunc[T Number](x T) T { return Truncate(x) }

// Fract returns x - Floor(x).
func Fract[T Number](x T) T { return x - Floor(x) }

// Sin returns the sine of the radian argument x.
func Sin[T Number](x T) T { return viaFloat(x, math.Sin) }

// Cos returns the cosine of the radian argument x.
func Cos[T Number](x T) T { return viaFloat(x, math.Cos) }

// Tan returns the tangent of the radian argument x.
func Tan[T Number](x T) T { return viaFloat(x, math.Tan) }

// Asin returns the arcsine, in radians, of x.
func Asin[T Number](x T) T { return viaFloat(x, math.Asin) }

// Acos returns the arccosine, in radians, of x.
func Acos[T Number](x T) T { return viaFloat(x, math.Acos) }

// Atan returns the arctangent, in radians, of x.
func Atan[T Number](x T) T { return viaFloat(x, math.Atan) }

// Atan2 returns the arc tangent of y/x, using the signs of the two to
// determine the quadrant.
func Atan2[T Number](y, x T) T { return T(math.Atan2(float64(y), float64(x))) }

// Sinh returns the hyperbolic sine of x.
func Sinh[T Number](x T) T { return viaFloat(x, math.Sinh) }

// Cosh returns the hyperbolic cosine of x.
func Cosh[T Number](x T) T { return viaFloat(x, math.Cosh) }

// Tanh returns the hyperbolic tangent of x.
func Tanh[T Number](x T) T { return viaFloat(x, math.Tanh) }

// Asinh returns the inverse hyperbolic sine of x.
func Asinh[T Number](x T) T { return viaFloat(x, math.Asinh) }

// Acosh returns the inverse hyperbolic cosine of x.
func Acosh[T Number](x T) T { return viaFloat(x, math.Acosh) }

// Atanh returns the inverse hyperbolic tangent of x.
func Atanh[T Number](x T) T { return viaFloat(x, math.Atanh) }

// Degrees converts radians to degrees (x * 180/π).
func Degrees[T Number](x T) T {
	return viaFloat(x, func(f float64) float64 { return f * (180 / math.Pi) })
}

// Radians converts degrees to radians (x * π/180).
func Radians[T Number](x T) T {
	return viaFloat(x, func(f float64) float64 { return f * (math.Pi / 180) })
}

// HermiteInterpolationOrder3 returns (3 - 2v)v².
func HermiteInterpolationOrder3[T Number](v T) T {
	return (3 - 2*v) * v * v
}

// HermiteInterpolationOrder5 returns ((6v - 15)v + 10)v³.
func HermiteInterpolationOrder5[T Number](v T) T {
	return ((6*v-15)*v + 10) * v * v * v
}

// Clamp returns min(max(v, lo), hi). The lower bound is applied first, so
// with lo > hi the result is hi.
func Clamp[T Number](v, lo, hi T) T {
	return min(max(v, lo), hi)
}

// Mix linearly interpolates between a and b: a*(1-t) + b*t.
func Mix[T Number](a, b, t T) T {
	return a*(1-t) + b*t
}

// Lerp is Mix.
func Lerp[T Number](a, b, t T) T {
	return Mix(a, b, t)
}

// Smoothstep performs Hermite interpolation of v between edge0 and edge1.
func Smoothstep[T Number](edge0, edge1, v T) T {
	return HermiteInterpolationOrder3(Clamp((v-edge0)/(edge1-edge0), 0, 1))
}

// Smootherstep is Smoothstep with the fifth-order Hermite polynomial.
func Smootherstep[T Number](edge0, edge1, v T) T {
	return HermiteInterpolationOrder5(Clamp((v-edge0)/(edge1-edge0), 0, 1))
}

// Fma returns a*b + c. The product is rounded before the addition; the
// explicit conversion keeps the compiler from fusing the two operations.
func Fma[T Number](a, b, c T) T {
	return T(a*b) + c
}

// Step returns 0 if x < edge and 1 otherwise.
func Step[T Number](edge, x T) T {
	if x < edge {
		return 0
	}
	return 1
}
