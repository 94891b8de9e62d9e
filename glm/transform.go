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

// Transform builders follow the OpenGL conventions: right-handed eye space
// looking down -z and a clip volume with depth in [-1, 1]. Points are
// column vectors, so m.MulVec(p) applies m to p.

func sinCos[T Floats](angle T) (T, T) {
	s, c := math.Sincos(float64(angle))
	return T(s), T(c)
}

// Translate4x4 returns the translation by v.
func Translate4x4[T Floats](v Vec3[T]) Mat4x4[T] {
	m := IdentityMat4x4[T]()
	m[3] = [4]T{v[0], v[1], v[2], 1}
	return m
}

// Scale4x4 returns the scaling by v.
func Scale4x4[T Floats](v Vec3[T]) Mat4x4[T] {
	return Mat4x4[T]{{v[0]}, {1: v[1]}, {2: v[2]}, {3: 1}}
}

// Scale3x3 returns the linear scaling by v.
func Scale3x3[T Floats](v Vec3[T]) Mat3x3[T] {
	return Mat3x3[T]{{v[0]}, {1: v[1]}, {2: v[2]}}
}

// Rotate2x2 returns the counter-clockwise rotation by angle radians.
func Rotate2x2[T Floats](angle T) Mat2x2[T] {
	s, c := sinCos(angle)
	return Mat2x2[T]{{c, s}, {-s, c}}
}

// RotateX4x4 rotates by angle radians around the x axis.
func RotateX4x4[T Floats](angle T) Mat4x4[T] {
	s, c := sinCos(angle)
	return Mat4x4[T]{{1, 0, 0, 0}, {0, c, s, 0}, {0, -s, c, 0}, {0, 0, 0, 1}}
}

// RotateY4x4 rotates by angle radians around the y axis.
func RotateY4x4[T Floats](angle T) Mat4x4[T] {
	s, c := sinCos(angle)
	return Mat4x4[T]{{c, 0, -s, 0}, {0, 1, 0, 0}, {s, 0, c, 0}, {0, 0, 0, 1}}
}

// RotateZ4x4 rotates by angle radians around the z axis.
func RotateZ4x4[T Floats](angle T) Mat4x4[T] {
	s, c := sinCos(angle)
	return Mat4x4[T]{{c, s, 0, 0}, {-s, c, 0, 0}, {0, 0, 1, 0}, {0, 0, 0, 1}}
}

// Rotate4x4 rotates by angle radians around axis, which does not need to be
// normalized.
func Rotate4x4[T Floats](angle T, axis Vec3[T]) Mat4x4[T] {
	return Mat4x4FromQuat(QuatFromAxisAngle(axis, angle))
}

// LookAt returns the view matrix of a camera at eye looking at center.
func LookAt[T Floats](eye, center, up Vec3[T]) Mat4x4[T] {
	f := center.Sub(eye).Normalized()
	s := f.Cross(up).Normalized()
	u := s.Cross(f)
	return Mat4x4[T]{
		{s[0], u[0], -f[0], 0},
		{s[1], u[1], -f[1], 0},
		{s[2], u[2], -f[2], 0},
		{-s.Dot(eye), -u.Dot(eye), f.Dot(eye), 1},
	}
}

// Perspective returns the projection for a vertical field of view fovy in
// radians.
func Perspective[T Floats](fovy, aspect, near, far T) (m Mat4x4[T]) {
	tanHalf := T(math.Tan(float64(fovy) / 2))
	m[0][0] = 1 / (aspect * tanHalf)
	m[1][1] = 1 / tanHalf
	m[2][2] = -(far + near) / (far - near)
	m[2][3] = -1
	m[3][2] = -(2 * far * near) / (far - near)
	return
}

// Ortho returns the orthographic projection of the given box.
func Ortho[T Floats](left, right, bottom, top, near, far T) Mat4x4[T] {
	m := IdentityMat4x4[T]()
	m[0][0] = 2 / (right - left)
	m[1][1] = 2 / (top - bottom)
	m[2][2] = -2 / (far - near)
	m[3][0] = -(right + left) / (right - left)
	m[3][1] = -(top + bottom) / (top - bottom)
	m[3][2] = -(far + near) / (far - near)
	return m
}

// Frustum returns the perspective projection of the given near plane
// rectangle.
func Frustum[T Floats](left, right, bottom, top, near, far T) (m Mat4x4[T]) {
	m[0][0] = 2 * near / (right - left)
	m[1][1] = 2 * near / (top - bottom)
	m[2][0] = (right + left) / (right - left)
	m[2][1] = (top + bottom) / (top - bottom)
	m[2][2] = -(far + near) / (far - near)
	m[2][3] = -1
	m[3][2] = -(2 * far * near) / (far - near)
	return
}
