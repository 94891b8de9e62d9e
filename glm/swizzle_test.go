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
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ajroetker/go-glm/glm"
)

func TestParseSwizzle(t *testing.T) {
	for _, tc := range []struct {
		selector string
		want     []glm.Component
	}{
		{"x", []glm.Component{glm.X}},
		{"wzyx", []glm.Component{glm.W, glm.Z, glm.Y, glm.X}},
		{"rgba", []glm.Component{glm.X, glm.Y, glm.Z, glm.W}},
		{"qq", []glm.Component{glm.W, glm.W}},
		{"st", []glm.Component{glm.X, glm.Y}},
	} {
		got, err := glm.ParseSwizzle(tc.selector)
		require.NoError(t, err, tc.selector)
		assert.Equal(t, tc.want, got, tc.selector)
	}

	for _, bad := range []string{"", "xyzwx", "xg", "m", "X", "é"} {
		_, err := glm.ParseSwizzle(bad)
		assert.ErrorIs(t, err, glm.ErrSwizzle, "selector %q", bad)
	}
}

func TestSwizzleRead(t *testing.T) {
	v := glm.NewVec4(1.0, 2.0, 3.0, 4.0)
	assert.Equal(t, glm.Vec2[float64]{4, 1}, v.Swizzle2(glm.W, glm.X))
	assert.Equal(t, glm.Vec3[float64]{3, 3, 3}, v.Swizzle3(glm.Z, glm.Z, glm.Z))
	assert.Equal(t, glm.Vec4[float64]{4, 3, 2, 1}, v.Swizzle4(glm.W, glm.Z, glm.Y, glm.X))

	got, err := v.Swizzle("zzyx")
	require.NoError(t, err)
	assert.Equal(t, []float64{3, 3, 2, 1}, got)

	gotI, err := glm.NewVec2[int32](5, 6).Swizzle("yxyx")
	require.NoError(t, err)
	assert.Equal(t, []int32{6, 5, 6, 5}, gotI)

	_, err = glm.NewVec3[int32](1, 2, 3).Swizzle("xw")
	require.ErrorIs(t, err, glm.ErrSwizzle)

	// A 2-vector widened through a swizzle.
	assert.Equal(t, glm.Vec4[int32]{5, 5, 6, 6}, glm.NewVec2[int32](5, 6).Swizzle4(glm.X, glm.X, glm.Y, glm.Y))
}

func TestSwizzleWrite(t *testing.T) {
	v := glm.NewVec4(1.0, 2.0, 3.0, 4.0)
	require.NoError(t, v.SetSwizzle("zx", 9, 8))
	assert.Equal(t, glm.Vec4[float64]{8, 2, 9, 4}, v)

	require.NoError(t, v.SetSwizzle("bgr", -1, -2, -3))
	assert.Equal(t, glm.Vec4[float64]{-3, -2, -1, 4}, v)

	require.ErrorIs(t, v.SetSwizzle("xx", 1, 2), glm.ErrSwizzle)
	require.ErrorIs(t, v.SetSwizzle("xy", 1), glm.ErrSwizzle)
	assert.Equal(t, glm.Vec4[float64]{-3, -2, -1, 4}, v, "failed writes leave v unchanged")

	w := glm.NewVec3[int32](1, 2, 3)
	require.ErrorIs(t, w.SetSwizzle("xw", 1, 2), glm.ErrSwizzle)
	assert.Equal(t, glm.Vec3[int32]{1, 2, 3}, w)

	w.SetXZ(glm.NewVec2[int32](7, 9))
	assert.Equal(t, glm.Vec3[int32]{7, 2, 9}, w)
	w.SetYZ(glm.NewVec2[int32](0, 0))
	assert.Equal(t, glm.Vec3[int32]{7, 0, 0}, w)

	u := glm.Vec4[uint32]{}
	u.SetYW(glm.NewVec2[uint32](1, 2))
	u.SetXZ(glm.NewVec2[uint32](3, 4))
	assert.Equal(t, glm.Vec4[uint32]{3, 1, 4, 2}, u)
	u.SetXYW(glm.NewVec3[uint32](5, 6, 7))
	assert.Equal(t, glm.Vec4[uint32]{5, 6, 4, 7}, u)

	p := glm.NewVec2(1.0, 2.0)
	require.NoError(t, p.SetSwizzle("yx", 3, 4))
	assert.Equal(t, glm.Vec2[float64]{4, 3}, p)
}

func TestComponentString(t *testing.T) {
	assert.Equal(t, "x", glm.X.String())
	assert.Equal(t, "w", glm.W.String())
	assert.Equal(t, "?", glm.Component(7).String())
}
