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

import "math"

// Vec2 is a 2-component vector stored in x, y order.
type Vec2[T Number] [2]T

// NewVec2 returns (x, y).
func NewVec2[T Number](x, y T) Vec2[T] { return Vec2[T]{x, y} }

// Splat2 returns (s, s).
func Splat2[T Number](s T) Vec2[T] { return Vec2[T]{s, s} }

// Vec2FromSlice copies the first two elements of s. Missing elements are
// zero.
func Vec2FromSlice[T Number](s []T) (v Vec2[T]) {
	copy(v[:], s)
	return
}

// FromAngle returns the unit vector (cos a, sin a) converted to T.
func FromAngle[T Number](a float64) Vec2[T] {
	return Vec2[T]{T(math.Cos(a)), T(math.Sin(a))}
}

func Zero2[T Number]() Vec2[T]  { return Vec2[T]{} }
func Ones2[T Number]() Vec2[T]  { return Vec2[T]{1, 1} }
func UnitX2[T Number]() Vec2[T] { return Vec2[T]{1, 0} }
func UnitY2[T Number]() Vec2[T] { return Vec2[T]{0, 1} }

func (v Vec2[T]) X() T { return v[0] }
func (v Vec2[T]) Y() T { return v[1] }

func (v *Vec2[T]) SetX(x T) { v[0] = x }
func (v *Vec2[T]) SetY(y T) { v[1] = y }

// Extend returns (x, y, z).
func (v Vec2[T]) Extend(z T) Vec3[T] { return Vec3[T]{v[0], v[1], z} }

// Cross returns the 2D cross product (determinant) x0*y1 - y0*x1.
func (v Vec2[T]) Cross(o Vec2[T]) T { return v[0]*o[1] - v[1]*o[0] }

// Perp returns v rotated by 90 degrees counter-clockwise.
func (v Vec2[T]) Perp() Vec2[T] { return Vec2[T]{-v[1], v[0]} }

// Angle returns atan2(y, x).
func (v Vec2[T]) Angle() float64 { return math.Atan2(float64(v[1]), float64(v[0])) }

// Rotated returns v rotated by angle radians, keeping its length. The result
// is converted back to T, so integer kinds lose precision.
func (v Vec2[T]) Rotated(angle float64) Vec2[T] {
	a := v.Angle() + angle
	l := v.Length()
	return Vec2[T]{T(math.Cos(a) * l), T(math.Sin(a) * l)}
}

// Swizzle2 returns the selected components, repetition allowed.
// A selector beyond y panics like an out-of-range index.
func (v Vec2[T]) Swizzle2(a, b Component) Vec2[T] { return Vec2[T]{v[a], v[b]} }

// Swizzle3 returns the selected components, repetition allowed.
func (v Vec2[T]) Swizzle3(a, b, c Component) Vec3[T] { return Vec3[T]{v[a], v[b], v[c]} }

// Swizzle4 returns the selected components, repetition allowed.
func (v Vec2[T]) Swizzle4(a, b, c, d Component) Vec4[T] {
	return Vec4[T]{v[a], v[b], v[c], v[d]}
}

// Swizzle returns the components named by a letter selector such as "yx".
func (v Vec2[T]) Swizzle(selector string) ([]T, error) { return swizzle(v[:], selector) }

func (v *Vec2[T]) SetXY(s Vec2[T]) { *v = s }
