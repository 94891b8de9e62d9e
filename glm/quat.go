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
	"hash/maphash"
	"math"
)

// Quat is a rotation quaternion stored as x, y, z (the vector part) then w.
type Quat[T Floats] [4]T

// NewQuat returns x*i + y*j + z*k + w.
func NewQuat[T Floats](x, y, z, w T) Quat[T] { return Quat[T]{x, y, z, w} }

// IdentityQuat returns the rotation by zero.
func IdentityQuat[T Floats]() Quat[T] { return Quat[T]{0, 0, 0, 1} }

// QuatFromAxisAngle returns the rotation by angle radians around axis. The
// axis does not need to be normalized.
func QuatFromAxisAngle[T Floats](axis Vec3[T], angle T) Quat[T] {
	half := float64(angle) / 2
	v := axis.Normalized().MulS(T(math.Sin(half)))
	return Quat[T]{v[0], v[1], v[2], T(math.Cos(half))}
}

// QuatFromMat3x3 extracts the rotation of an orthonormal matrix.
func QuatFromMat3x3[T Floats](m Mat3x3[T]) Quat[T] {
	// at reads row r, column c.
	at := func(r, c int) float64 { return float64(m[c][r]) }
	var x, y, z, w float64
	switch trace := at(0, 0) + at(1, 1) + at(2, 2); {
	case trace > 0:
		s := math.Sqrt(trace+1) * 2
		w = s / 4
		x = (at(2, 1) - at(1, 2)) / s
		y = (at(0, 2) - at(2, 0)) / s
		z = (at(1, 0) - at(0, 1)) / s
	case at(0, 0) > at(1, 1) && at(0, 0) > at(2, 2):
		s := math.Sqrt(1+at(0, 0)-at(1, 1)-at(2, 2)) * 2
		w = (at(2, 1) - at(1, 2)) / s
		x = s / 4
		y = (at(0, 1) + at(1, 0)) / s
		z = (at(0, 2) + at(2, 0)) / s
	case at(1, 1) > at(2, 2):
		s := math.Sqrt(1+at(1, 1)-at(0, 0)-at(2, 2)) * 2
		w = (at(0, 2) - at(2, 0)) / s
		x = (at(0, 1) + at(1, 0)) / s
		y = s / 4
		z = (at(1, 2) + at(2, 1)) / s
	default:
		s := math.Sqrt(1+at(2, 2)-at(0, 0)-at(1, 1)) * 2
		w = (at(1, 0) - at(0, 1)) / s
		x = (at(0, 2) + at(2, 0)) / s
		y = (at(1, 2) + at(2, 1)) / s
		z = s / 4
	}
	return Quat[T]{T(x), T(y), T(z), T(w)}
}

// QuatFromMat4x4 extracts the rotation of the upper-left 3x3 block.
func QuatFromMat4x4[T Floats](m Mat4x4[T]) Quat[T] {
	return QuatFromMat3x3(Mat3x3From[T](m))
}

// Mat3x3FromQuat returns the rotation matrix of the unit quaternion q.
func Mat3x3FromQuat[T Floats](q Quat[T]) Mat3x3[T] {
	x, y, z, w := q[0], q[1], q[2], q[3]
	xx, yy, zz := x*x, y*y, z*z
	xy, xz, yz := x*y, x*z, y*z
	wx, wy, wz := w*x, w*y, w*z
	return Mat3x3[T]{
		{1 - 2*(yy+zz), 2 * (xy + wz), 2 * (xz - wy)},
		{2 * (xy - wz), 1 - 2*(xx+zz), 2 * (yz + wx)},
		{2 * (xz + wy), 2 * (yz - wx), 1 - 2*(xx+yy)},
	}
}

// Mat4x4FromQuat returns the homogeneous rotation matrix of q.
func Mat4x4FromQuat[T Floats](q Quat[T]) Mat4x4[T] {
	return Mat4x4From[T](Mat3x3FromQuat(q))
}

func (q Quat[T]) X() T { return q[0] }
func (q Quat[T]) Y() T { return q[1] }
func (q Quat[T]) Z() T { return q[2] }
func (q Quat[T]) W() T { return q[3] }

// Vec returns the vector part.
func (q Quat[T]) Vec() Vec3[T] { return Vec3[T]{q[0], q[1], q[2]} }

// Mul returns the Hamilton product q * o, the rotation o followed by q.
func (q Quat[T]) Mul(o Quat[T]) Quat[T] {
	a, b := q.Vec(), o.Vec()
	v := b.MulS(q[3]).Add(a.MulS(o[3])).Add(a.Cross(b))
	return Quat[T]{v[0], v[1], v[2], q[3]*o[3] - a.Dot(b)}
}

func (q Quat[T]) Conjugate() Quat[T] { return Quat[T]{-q[0], -q[1], -q[2], q[3]} }

func (q Quat[T]) Dot(o Quat[T]) T { return dot(q[:], o[:]) }

func (q Quat[T]) Length() float64 { return length(q[:]) }

// Normalized returns q / Length, with no guard against zero.
func (q Quat[T]) Normalized() (r Quat[T]) {
	divSTo(r[:], q[:], T(q.Length()))
	return
}

// Inverse returns Conjugate / Dot(q, q).
func (q Quat[T]) Inverse() (r Quat[T]) {
	c := q.Conjugate()
	divSTo(r[:], c[:], q.Dot(q))
	return
}

// Rotate applies the rotation of the unit quaternion q to v.
func (q Quat[T]) Rotate(v Vec3[T]) Vec3[T] {
	u := q.Vec()
	t := u.Cross(v).MulS(2)
	return v.Add(t.MulS(q[3])).Add(u.Cross(t))
}

// Slerp interpolates along the shorter arc between the unit quaternions q
// and o. Nearly parallel inputs fall back to a normalized linear blend.
func (q Quat[T]) Slerp(o Quat[T], t T) (r Quat[T]) {
	cos := float64(q.Dot(o))
	if cos < 0 {
		negTo(o[:], o[:])
		cos = -cos
	}
	tf := float64(t)
	if cos > 0.9995 {
		for i := range r {
			r[i] = Mix(q[i], o[i], t)
		}
		return r.Normalized()
	}
	theta := math.Acos(cos)
	sin := math.Sin(theta)
	a := T(math.Sin((1-tf)*theta) / sin)
	b := T(math.Sin(tf*theta) / sin)
	for i := range r {
		r[i] = q[i]*a + o[i]*b
	}
	return
}

// Equals reports whether all components are equal.
func (q Quat[T]) Equals(o Quat[T]) bool { return q == o }

// ApproxEqual compares component-wise. q and -q are the same rotation but
// are not approximately equal here.
func (q Quat[T]) ApproxEqual(o Quat[T], eps T) bool { return approxEqual(q[:], o[:], eps) }

func (q Quat[T]) Hash(seed maphash.Seed) uint64 { return maphash.Comparable(seed, q) }

// String formats x, y, z, w with DefaultSeparator.
func (q Quat[T]) String() string { return joinScalars(q[:], DefaultSeparator, formatScalar[T]) }
