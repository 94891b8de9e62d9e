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

package glm_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/ajroetker/go-glm/glm"
)

// sameRotation reports whether a and b are equal up to sign, since q and -q
// describe the same rotation.
func sameRotation(a, b glm.Quat[float64], eps float64) bool {
	neg := glm.NewQuat(-b[0], -b[1], -b[2], -b[3])
	return a.ApproxEqual(b, eps) || a.ApproxEqual(neg, eps)
}

func TestQuatIdentity(t *testing.T) {
	q := glm.IdentityQuat[float64]()
	v := glm.NewVec3(1.0, -2.0, 3.0)
	assert.Equal(t, v, q.Rotate(v))
	assert.Equal(t, glm.IdentityMat3x3[float64](), glm.Mat3x3FromQuat(q))
	assert.Equal(t, "0, 0, 0, 1", q.String())
	assert.Equal(t, 1.0, q.W())
	assert.Equal(t, glm.Vec3[float64]{}, q.Vec())
}

func TestQuatAxisAngle(t *testing.T) {
	q := glm.QuatFromAxisAngle(glm.NewVec3(0.0, 0.0, 5.0), math.Pi/2)
	assert.InDelta(t, 1.0, q.Length(), 1e-12)
	assert.True(t, q.Rotate(glm.UnitX3[float64]()).ApproxEqual(glm.UnitY3[float64](), 1e-12))
	assert.True(t, q.Rotate(glm.UnitY3[float64]()).ApproxEqual(glm.UnitX3[float64]().Neg(), 1e-12))

	// float32 goes through the same path.
	q32 := glm.QuatFromAxisAngle(glm.UnitX3[float32](), math.Pi)
	assert.True(t, q32.Rotate(glm.UnitY3[float32]()).ApproxEqual(glm.UnitY3[float32]().Neg(), 1e-6))
}

func TestQuatMatrixRoundTrip(t *testing.T) {
	axes := []glm.Vec3[float64]{
		{1, 2, 3},
		{1, 0, 0},
		{0, 1, 0},
		{0, 0, 1},
		{-1, 0.5, 0.25},
	}
	angles := []float64{0.3, 2.5, math.Pi - 0.01, -1.2}
	v := glm.NewVec3(0.5, -1.5, 2.0)
	for _, axis := range axes {
		for _, angle := range angles {
			q := glm.QuatFromAxisAngle(axis, angle)
			m := glm.Mat3x3FromQuat(q)
			assert.True(t, m.MulVec(v).ApproxEqual(q.Rotate(v), 1e-12), "axis=%v angle=%v", axis, angle)
			assert.True(t, sameRotation(q, glm.QuatFromMat3x3(m), 1e-9), "axis=%v angle=%v", axis, angle)
			assert.True(t, sameRotation(q, glm.QuatFromMat4x4(glm.Mat4x4FromQuat(q)), 1e-9))
			assert.InDelta(t, 1.0, m.Determinant(), 1e-12)
		}
	}
}

func TestQuatAlgebra(t *testing.T) {
	a := glm.QuatFromAxisAngle(glm.NewVec3(1.0, 1.0, 0.0), 0.7)
	b := glm.QuatFromAxisAngle(glm.NewVec3(0.0, -1.0, 2.0), 1.9)
	v := glm.NewVec3(3.0, 1.0, -2.0)

	// a*b applies b first.
	assert.True(t, a.Mul(b).Rotate(v).ApproxEqual(a.Rotate(b.Rotate(v)), 1e-12))
	assert.True(t, a.Mul(a.Inverse()).ApproxEqual(glm.IdentityQuat[float64](), 1e-12))
	assert.True(t, a.Conjugate().ApproxEqual(a.Inverse(), 1e-12))

	// Non-unit quaternions.
	q := glm.NewQuat(1.0, 2.0, 2.0, 4.0)
	assert.Equal(t, 5.0, q.Length())
	assert.Equal(t, 25.0, q.Dot(q))
	assert.True(t, q.Normalized().ApproxEqual(glm.NewQuat(0.2, 0.4, 0.4, 0.8), 1e-15))
	assert.True(t, q.Mul(q.Inverse()).ApproxEqual(glm.IdentityQuat[float64](), 1e-12))
	assert.Equal(t, glm.NewQuat(-1.0, -2.0, -2.0, 4.0), q.Conjugate())
}

func TestQuatSlerp(t *testing.T) {
	from := glm.IdentityQuat[float64]()
	to := glm.QuatFromAxisAngle(glm.UnitZ3[float64](), math.Pi/2)

	assert.True(t, from.Slerp(to, 0).ApproxEqual(from, 1e-12))
	assert.True(t, from.Slerp(to, 1).ApproxEqual(to, 1e-12))
	half := glm.QuatFromAxisAngle(glm.UnitZ3[float64](), math.Pi/4)
	assert.True(t, from.Slerp(to, 0.5).ApproxEqual(half, 1e-12))

	// -to is the same rotation, so the path is the same short arc.
	negTo := glm.NewQuat(-to[0], -to[1], -to[2], -to[3])
	assert.True(t, sameRotation(from.Slerp(negTo, 0.5), half, 1e-12))

	// Nearly parallel inputs stay normalized.
	near := glm.QuatFromAxisAngle(glm.UnitZ3[float64](), 1e-4)
	assert.InDelta(t, 1.0, from.Slerp(near, 0.5).Length(), 1e-12)
}

func TestQuatEquality(t *testing.T) {
	a := glm.NewQuat(1.0, 2.0, 3.0, 4.0)
	b := glm.NewQuat(1.0, 2.0, 3.0, 4.0)
	assert.True(t, a.Equals(b))
	assert.False(t, a.Equals(a.Conjugate()))
	assert.True(t, a.ApproxEqual(glm.NewQuat(1.0, 2.0, 3.0, 4.0+1e-12), 1e-9))
}
