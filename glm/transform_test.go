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

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/stretchr/testify/assert"

	"github.com/ajroetker/go-glm/glm"
)

// project applies m to p and divides by w.
func project(m glm.Mat4x4[float64], p glm.Vec3[float64]) glm.Vec3[float64] {
	h := m.MulVec(p.Extend(1))
	return h.XYZ().DivS(h.W())
}

func TestTranslateScale(t *testing.T) {
	tr := glm.Translate4x4(glm.NewVec3(1.0, 2.0, 3.0))
	assert.Equal(t, glm.NewVec4(1.0, 2.0, 3.0, 1.0), tr.MulVec(glm.UnitW4[float64]()))
	// Directions are not translated.
	assert.Equal(t, glm.NewVec4(1.0, 0.0, 0.0, 0.0), tr.MulVec(glm.UnitX4[float64]()))

	sc := glm.Scale4x4(glm.NewVec3(2.0, 3.0, 4.0))
	assert.Equal(t, glm.NewVec4(2.0, 3.0, 4.0, 1.0), sc.MulVec(glm.Ones4[float64]()))
	assert.Equal(t, glm.NewVec3(2.0, 3.0, 4.0), glm.Scale3x3(glm.NewVec3(2.0, 3.0, 4.0)).MulVec(glm.Ones3[float64]()))

	// Scale then translate.
	both := tr.Mul(sc)
	assert.Equal(t, glm.NewVec4(3.0, 5.0, 7.0, 1.0), both.MulVec(glm.Ones4[float64]()))
}

func TestRotations(t *testing.T) {
	const eps = 1e-12
	quarter := math.Pi / 2
	x, y, z := glm.UnitX4[float64](), glm.UnitY4[float64](), glm.UnitZ4[float64]()

	assert.True(t, glm.RotateX4x4(quarter).MulVec(y).ApproxEqual(z, eps))
	assert.True(t, glm.RotateY4x4(quarter).MulVec(z).ApproxEqual(x, eps))
	assert.True(t, glm.RotateZ4x4(quarter).MulVec(x).ApproxEqual(y, eps))
	assert.True(t, glm.Rotate2x2(quarter).MulVec(glm.UnitX2[float64]()).ApproxEqual(glm.UnitY2[float64](), eps))

	approx := cmpopts.EquateApprox(0, eps)
	for name, tc := range map[string]struct {
		axis  glm.Vec3[float64]
		fixed glm.Mat4x4[float64]
	}{
		"x": {glm.NewVec3(2.0, 0.0, 0.0), glm.RotateX4x4(0.8)},
		"y": {glm.NewVec3(0.0, 0.5, 0.0), glm.RotateY4x4(0.8)},
		"z": {glm.NewVec3(0.0, 0.0, 1.0), glm.RotateZ4x4(0.8)},
	} {
		if diff := cmp.Diff(tc.fixed, glm.Rotate4x4(0.8, tc.axis), approx); diff != "" {
			t.Errorf("Rotate4x4 around %s mismatch (-want +got):\n%s", name, diff)
		}
	}

	// Rotations are orthonormal.
	r := glm.Rotate4x4(1.1, glm.NewVec3(1.0, -2.0, 0.5))
	if diff := cmp.Diff(glm.IdentityMat4x4[float64](), r.Mul(r.Transpose()), approx); diff != "" {
		t.Errorf("R*R^T mismatch (-want +got):\n%s", diff)
	}
}

func TestLookAt(t *testing.T) {
	eye := glm.NewVec3(0.0, 0.0, 5.0)
	view := glm.LookAt(eye, glm.Vec3[float64]{}, glm.UnitY3[float64]())
	assert.True(t, project(view, eye).ApproxEqual(glm.Vec3[float64]{}, 1e-12))
	assert.True(t, project(view, glm.Vec3[float64]{}).ApproxEqual(glm.NewVec3(0.0, 0.0, -5.0), 1e-12))
	assert.True(t, project(view, glm.NewVec3(1.0, 1.0, 5.0)).ApproxEqual(glm.NewVec3(1.0, 1.0, 0.0), 1e-12))

	// Looking down +x from the origin puts +x on the -z axis.
	side := glm.LookAt(glm.Vec3[float64]{}, glm.UnitX3[float64](), glm.UnitY3[float64]())
	assert.True(t, project(side, glm.NewVec3(2.0, 0.0, 0.0)).ApproxEqual(glm.NewVec3(0.0, 0.0, -2.0), 1e-12))
}

func TestProjections(t *testing.T) {
	const near, far = 1.0, 10.0
	persp := glm.Perspective(math.Pi/2, 1.0, near, far)
	assert.InDelta(t, -1.0, project(persp, glm.NewVec3(0.0, 0.0, -near)).Z(), 1e-12)
	assert.InDelta(t, 1.0, project(persp, glm.NewVec3(0.0, 0.0, -far)).Z(), 1e-12)
	// The edge of a 90 degree field of view maps to the clip boundary.
	assert.InDelta(t, 1.0, project(persp, glm.NewVec3(0.0, 2.0, -2.0)).Y(), 1e-12)

	frustum := glm.Frustum(-1.0, 1.0, -1.0, 1.0, near, far)
	if diff := cmp.Diff(persp, frustum, cmpopts.EquateApprox(0, 1e-12)); diff != "" {
		t.Errorf("Frustum mismatch (-want +got):\n%s", diff)
	}

	ortho := glm.Ortho(-2.0, 2.0, -1.0, 1.0, near, far)
	assert.True(t, project(ortho, glm.NewVec3(-2.0, -1.0, -near)).ApproxEqual(glm.NewVec3(-1.0, -1.0, -1.0), 1e-12))
	assert.True(t, project(ortho, glm.NewVec3(2.0, 1.0, -far)).ApproxEqual(glm.NewVec3(1.0, 1.0, 1.0), 1e-12))

	p32 := glm.Perspective[float32](math.Pi/3, 16.0/9, 0.1, 100)
	assert.Equal(t, float32(-1), p32[2][3])
}
