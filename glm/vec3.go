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

// Vec3 is a 3-component vector. Components are stored in x, y, z order;
// v[0] and v.X() are the same element.
type Vec3[T Number] [3]T

// NewVec3 returns (x, y, z).
func NewVec3[T Number](x, y, z T) Vec3[T] { return Vec3[T]{x, y, z} }

// Splat3 returns (s, s, s).
func Splat3[T Number](s T) Vec3[T] { return Vec3[T]{s, s, s} }

// Vec3FromSlice copies the first three elements of s. Missing elements are
// zero.
func Vec3FromSlice[T Number](s []T) (v Vec3[T]) {
	copy(v[:], s)
	return
}

func Zero3[T Number]() Vec3[T]  { return Vec3[T]{} }
func Ones3[T Number]() Vec3[T]  { return Vec3[T]{1, 1, 1} }
func UnitX3[T Number]() Vec3[T] { return Vec3[T]{1, 0, 0} }
func UnitY3[T Number]() Vec3[T] { return Vec3[T]{0, 1, 0} }
func UnitZ3[T Number]() Vec3[T] { return Vec3[T]{0, 0, 1} }

func (v Vec3[T]) X() T { return v[0] }
func (v Vec3[T]) Y() T { return v[1] }
func (v Vec3[T]) Z() T { return v[2] }

func (v *Vec3[T]) SetX(x T) { v[0] = x }
func (v *Vec3[T]) SetY(y T) { v[1] = y }
func (v *Vec3[T]) SetZ(z T) { v[2] = z }

// XY drops z.
func (v Vec3[T]) XY() Vec2[T] { return Vec2[T]{v[0], v[1]} }

// Extend returns (x, y, z, w).
func (v Vec3[T]) Extend(w T) Vec4[T] { return Vec4[T]{v[0], v[1], v[2], w} }

// Cross returns the cross product v × o.
func (v Vec3[T]) Cross(o Vec3[T]) Vec3[T] {
	return Vec3[T]{
		v[1]*o[2] - v[2]*o[1],
		v[2]*o[0] - v[0]*o[2],
		v[0]*o[1] - v[1]*o[0],
	}
}

// Swizzle2 returns the selected components, repetition allowed.
// A selector beyond z panics like an out-of-range index.
func (v Vec3[T]) Swizzle2(a, b Component) Vec2[T] { return Vec2[T]{v[a], v[b]} }

// Swizzle3 returns the selected components, repetition allowed.
func (v Vec3[T]) Swizzle3(a, b, c Component) Vec3[T] { return Vec3[T]{v[a], v[b], v[c]} }

// Swizzle4 returns the selected components, repetition allowed.
func (v Vec3[T]) Swizzle4(a, b, c, d Component) Vec4[T] {
	return Vec4[T]{v[a], v[b], v[c], v[d]}
}

// Swizzle returns the components named by a letter selector such as "zyx"
// or "rgb". The result has the selector's length (1 to 4).
func (v Vec3[T]) Swizzle(selector string) ([]T, error) { return swizzle(v[:], selector) }

func (v *Vec3[T]) SetXY(s Vec2[T])  { v[0], v[1] = s[0], s[1] }
func (v *Vec3[T]) SetXZ(s Vec2[T])  { v[0], v[2] = s[0], s[1] }
func (v *Vec3[T]) SetYZ(s Vec2[T])  { v[1], v[2] = s[0], s[1] }
func (v *Vec3[T]) SetXYZ(s Vec3[T]) { *v = s }
