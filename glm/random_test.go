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
	"math/rand/v2"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ajroetker/go-glm/glm"
)

func newRand() *rand.Rand { return rand.New(rand.NewPCG(1, 2)) }

func TestRandomUniformFloat(t *testing.T) {
	r := newRand()
	for range 1000 {
		v := glm.RandomUniform4(r, -2.0, 3.0)
		require.True(t, v.GreaterThanEqualS(-2).All(), "%v", v)
		require.True(t, v.LessThanS(3).All(), "%v", v)
	}
	// Equal bounds collapse to a constant.
	assert.Equal(t, glm.Splat3[float32](1.5), glm.RandomUniform3[float32](r, 1.5, 1.5))
}

func TestRandomUniformIntInclusive(t *testing.T) {
	r := newRand()
	seen := map[int32]int{}
	for range 500 {
		v := glm.RandomUniform2[int32](r, -1, 2)
		for _, x := range v {
			require.GreaterOrEqual(t, x, int32(-1))
			require.LessOrEqual(t, x, int32(2))
			seen[x]++
		}
	}
	assert.Len(t, seen, 4, "both bounds must be reachable: %v", seen)

	// Full ranges do not overflow the span.
	assert.NotPanics(t, func() {
		glm.RandomUniform4[int64](r, math.MinInt64, math.MaxInt64)
		glm.RandomUniform4[uint32](r, 0, math.MaxUint32)
		glm.RandomUniform4[int32](r, math.MinInt32, math.MaxInt32)
	})
}

func TestRandomDeterministic(t *testing.T) {
	a := glm.RandomNormal3(newRand(), 0.0, 1.0)
	b := glm.RandomNormal3(newRand(), 0.0, 1.0)
	assert.Equal(t, a, b)
	assert.Equal(t, glm.RandomPoisson4[int32](newRand(), 3), glm.RandomPoisson4[int32](newRand(), 3))
}

func TestRandomNormalMoments(t *testing.T) {
	r := newRand()
	const n = 10000
	var sum, sumSq float64
	for range n {
		v := glm.RandomNormal2(r, 5.0, 2.0)
		for _, x := range v {
			sum += x
			sumSq += x * x
		}
	}
	mean := sum / (2 * n)
	variance := sumSq/(2*n) - mean*mean
	assert.InDelta(t, 5.0, mean, 0.1)
	assert.InDelta(t, 4.0, variance, 0.2)

	// Zero deviation returns the mean.
	assert.Equal(t, glm.Splat4(7.0), glm.RandomNormal4(r, 7.0, 0.0))
}

func TestRandomPoisson(t *testing.T) {
	r := newRand()
	for _, lambda := range []float64{0.5, 4, 1000} {
		const n = 4000
		var sum float64
		for range n {
			v := glm.RandomPoisson3[int64](r, lambda)
			require.True(t, v.GreaterThanEqualS(0).All(), "%v", v)
			sum += float64(v.Sum())
		}
		mean := sum / (3 * n)
		assert.InDelta(t, lambda, mean, 5*math.Sqrt(lambda/(3*n)), "lambda=%v", lambda)
	}
	assert.Equal(t, glm.Vec2[uint32]{}, glm.RandomPoisson2[uint32](r, 0))
}

func TestRandomBVec(t *testing.T) {
	r := newRand()
	assert.Equal(t, glm.BVec4{}, glm.RandomBVec4(r, 0))
	assert.Equal(t, glm.SplatB3(true), glm.RandomBVec3(r, 1))
	assert.Equal(t, glm.SplatB4(true), glm.RandomBVec4(r, 1))
	assert.Equal(t, glm.SplatB2(true), glm.RandomBVec2(r, 1))

	trues := 0
	for range 1000 {
		for _, b := range glm.RandomBVec2(r, 0.25) {
			if b {
				trues++
			}
		}
	}
	assert.InDelta(t, 500, trues, 100)
}
