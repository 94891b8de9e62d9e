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

// Vec4 is a 4-component vector stored in x, y, z, w order.
type Vec4[T Number] [4]T

// NewVec4 returns (x, y, z, w).
func NewVec4[T Number](x, y, z, w T) Vec4[T] { return Vec4[T]{x, y, z, w} }

// Splat4 returns (s, s, s, s).
func Splat4[T Number](s T) Vec4[T] { return Vec4[T]{s, s, s, s} }

// Vec4FromSlice copies the first four elements of s. Missing elements are
// zero.
func Vec4FromSlice[T Number](s []T) (v Vec4[T]) {
	copy(v[:], s)
	return
}

func Zero4[T Number]() Vec4[T]  { return Vec4[T]{} }
func Ones4[T Number]() Vec4[T]  { return Vec4[T]{1, 1, 1, 1} }
func UnitX4[T Number]() Vec4[T] { return Vec4[T]{1, 0, 0, 0} }
func UnitY4[T Number]() Vec4[T] { return Vec4[T]{0, 1, 0, 0} }
func UnitZ4[T Number]() Vec4[T] { return Vec4[T]{0, 0, 1, 0} }
func UnitW4[T Number]() Vec4[T] { return Vec4[T]{0, 0, 0, 1} }

func (v Vec4[T]) X() T { return v[0] }
func (v Vec4[T]) Y() T { return v[1] }
func (v Vec4[T]) Z() T { return v[2] }
func (v Vec4[T]) W() T { return v[3] }

func (v *Vec4[T]) SetX(x T) { v[0] = x }
func (v *Vec4[T]) SetY(y T) { v[1] = y }
func (v *Vec4[T]) SetZ(z T) { v[2] = z }
func (v *Vec4[T]) SetW(w T) { v[3] = w }

// XY drops z and w.
func (v Vec4[T]) XY() Vec2[T] { return Vec2[T]{v[0], v[1]} }

// XYZ drops w.
func (v Vec4[T]) XYZ() Vec3[T] { return Vec3[T]{v[0], v[1], v[2]} }

// Swizzle2 returns the selected components, repetition allowed.
func (v Vec4[T]) Swizzle2(a, b Component) Vec2[T] { return Vec2[T]{v[a], v[b]} }

// Swizzle3 returns the selected components, repetition allowed.
func (v Vec4[T]) Swizzle3(a, b, c Component) Vec3[T] { return Vec3[T]{v[a], v[b], v[c]} }

// Swizzle4 returns the selected components, repetition allowed.
func (v Vec4[T]) Swizzle4(a, b, c, d Component) Vec4[T] {
	return Vec4[T]{v[a], v[b], v[c], v[d]}
}

// Swizzle returns the components named by a letter selector such as "wzyx"
// or "bgra".
func (v Vec4[T]) Swizzle(selector string) ([]T, error) { return swizzle(v[:], selector) }

func (v *Vec4[T]) SetXY(s Vec2[T])   { v[0], v[1] = s[0], s[1] }
func (v *Vec4[T]) SetXZ(s Vec2[T])   { v[0], v[2] = s[0], s[1] }
func (v *Vec4[T]) SetXW(s Vec2[T])   { v[0], v[3] = s[0], s[1] }
func (v *Vec4[T]) SetYZ(s Vec2[T])   { v[1], v[2] = s[0], s[1] }
func (v *Vec4[T]) SetYW(s Vec2[T])   { v[1], v[3] = s[0], s[1] }
func (v *Vec4[T]) SetZW(s Vec2[T])   { v[2], v[3] = s[0], s[1] }
func (v *Vec4[T]) SetXYZ(s Vec3[T])  { v[0], v[1], v[2] = s[0], s[1], s[2] }
func (v *Vec4[T]) SetXYW(s Vec3[T])  { v[0], v[1], v[3] = s[0], s[1], s[2] }
func (v *Vec4[T]) SetXZW(s Vec3[T])  { v[0], v[2], v[3] = s[0], s[1], s[2] }
func (v *Vec4[T]) SetYZW(s Vec3[T])  { v[1], v[2], v[3] = s[0], s[1], s[2] }
func (v *Vec4[T]) SetXYZW(s Vec4[T]) { *v = s }
