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
	"github.com/stretchr/testify/require"

	"github.com/ajroetker/go-glm/glm"
)

func TestLimits(t *testing.T) {
	assert.Equal(t, int32(math.MaxInt32), glm.MaxValue[int32]())
	assert.Equal(t, int32(math.MinInt32), glm.MinValue[int32]())
	assert.Equal(t, uint32(math.MaxUint32), glm.MaxValue[uint32]())
	assert.Equal(t, uint32(0), glm.MinValue[uint32]())
	assert.Equal(t, int64(math.MaxInt64), glm.MaxValue[int64]())
	assert.Equal(t, int64(math.MinInt64), glm.MinValue[int64]())
	assert.Equal(t, float32(math.MaxFloat32), glm.MaxValue[float32]())
	assert.Equal(t, -math.MaxFloat64, glm.MinValue[float64]())
	assert.Equal(t, float32(math.SmallestNonzeroFloat32), glm.Epsilon[float32]())
	assert.True(t, math.IsNaN(glm.NaN[float64]()))
	assert.True(t, math.IsInf(float64(glm.PositiveInfinity[float32]()), 1))
	assert.True(t, math.IsInf(glm.NegativeInfinity[float64](), -1))
}

func TestClampAppliesLowerBoundFirst(t *testing.T) {
	// With lo > hi the upper bound wins.
	assert.Equal(t, 1, glm.Clamp(5, 10, 1))
	assert.Equal(t, 3.0, glm.Clamp(3.0, 0, 5))
	assert.Equal(t, 0.0, glm.Clamp(-3.0, 0, 5))
	assert.Equal(t, uint32(5), glm.Clamp[uint32](9, 0, 5))
}

func TestInterpolation(t *testing.T) {
	assert.Equal(t, 2.5, glm.Mix(2.0, 4.0, 0.25))
	for _, x := range []float64{-1, 0, 0.3, 0.5, 1, 2} {
		assert.Equal(t, glm.Mix(-3.0, 7.0, x), glm.Lerp(-3.0, 7.0, x))
	}
	assert.Equal(t, 0.5, glm.HermiteInterpolationOrder3(0.5))
	assert.Equal(t, 0.5, glm.HermiteInterpolationOrder5(0.5))
	assert.Equal(t, 0.5, glm.Smoothstep(0.0, 1.0, 0.5))
	assert.Equal(t, 0.5, glm.Smootherstep(0.0, 1.0, 0.5))
	assert.Equal(t, 0.0, glm.Smoothstep(2.0, 4.0, 1.0))
	assert.Equal(t, 1.0, glm.Smoothstep(2.0, 4.0, 5.0))
	assert.InDelta(t, 0.15625, glm.Smoothstep(0.0, 4.0, 1.0), 1e-15)
	assert.Equal(t, 0.0, glm.Step(1.0, 0.5))
	assert.Equal(t, 1.0, glm.Step(1.0, 1.0))
}

func TestFma(t *testing.T) {
	assert.Equal(t, 7.0, glm.Fma(2.0, 3.0, 1.0))
	assert.Equal(t, int32(-5), glm.Fma[int32](-2, 3, 1))
}

func TestRoundingFamily(t *testing.T) {
	for _, tc := range []struct {
		x, floor, ceil, round, trunc, fract float64
	}{
		{2.5, 2, 3, 2, 2, 0.5},
		{3.5, 3, 4, 4, 3, 0.5},
		{-2.5, -3, -2, -2, -2, 0.5},
		{-0.25, -1, -0, -0, -0, 0.75},
	} {
		assert.Equal(t, tc.floor, glm.Floor(tc.x), "Floor(%v)", tc.x)
		assert.Equal(t, tc.ceil, glm.Ceiling(tc.x), "Ceiling(%v)", tc.x)
		assert.Equal(t, tc.round, glm.Round(tc.x), "Round(%v)", tc.x)
		assert.Equal(t, tc.trunc, glm.Truncate(tc.x), "Truncate(%v)", tc.x)
		assert.Equal(t, tc.trunc, glm.Trunc(tc.x), "Trunc(%v)", tc.x)
		assert.Equal(t, tc.fract, glm.Fract(tc.x), "Fract(%v)", tc.x)
	}
	// Integer kinds are already integral.
	assert.Equal(t, int32(7), glm.Round[int32](7))
	assert.Equal(t, int64(-7), glm.Floor[int64](-7))
}

func TestSignAbsMod(t *testing.T) {
	assert.Equal(t, -1.0, glm.Sign(-3.5))
	assert.Equal(t, 0.0, glm.Sign(0.0))
	assert.Equal(t, uint32(1), glm.Sign[uint32](5))
	assert.Equal(t, int32(-1), glm.Sign[int32](-9))
	assert.Equal(t, 0.0, glm.Sign(math.NaN()))

	assert.Equal(t, int64(4), glm.Abs[int64](-4))
	assert.Equal(t, 2.5, glm.Abs(-2.5))

	assert.Equal(t, int32(1), glm.Mod[int32](7, 3))
	assert.Equal(t, int32(-1), glm.Mod[int32](-7, 3))
	assert.Equal(t, uint32(2), glm.Mod[uint32](17, 5))
	assert.Equal(t, -1.5, glm.Mod(-7.5, 2.0))
}

func TestTranscendentals(t *testing.T) {
	assert.InDelta(t, 180.0, glm.Degrees(math.Pi), 1e-12)
	assert.InDelta(t, math.Pi, glm.Radians(180.0), 1e-15)
	assert.Equal(t, 3.0, glm.Sqrt(9.0))
	assert.Equal(t, 0.5, glm.InverseSqrt(4.0))
	assert.Equal(t, 8.0, glm.Pow(2.0, 3.0))
	assert.Equal(t, 8.0, glm.Exp2(3.0))
	assert.Equal(t, 3.0, glm.Log2(8.0))
	assert.InDelta(t, 2.0, glm.Log10(100.0), 1e-15)
	assert.InDelta(t, math.Pi/4, glm.Atan2(1.0, 1.0), 1e-15)
	assert.InDelta(t, 0.0, glm.Tanh(0.0), 0)
	assert.InDelta(t, 1.0, glm.Cosh(0.0), 0)

	// Integer kinds truncate the float64 result.
	assert.Equal(t, int32(2), glm.Sqrt[int32](8))
	assert.Equal(t, uint32(1), glm.Log[uint32](5))

	// float32 results are rounded from float64.
	require.Equal(t, float32(math.Sqrt(2)), glm.Sqrt[float32](2))
}
