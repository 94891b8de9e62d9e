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
	"math"
	"math/rand/v2"
)

// Random generators draw every component independently from the caller's
// source; there is no package-level generator.

// uniform returns a value in [lo, hi) for float kinds and in [lo, hi] for
// integer kinds.
func uniform[T Number](r *rand.Rand, lo, hi T) T {
	if isFloat[T]() {
		return lo + (hi-lo)*T(r.Float64())
	}
	// hi-lo modulo 2^64 is exact for every integer kind once hi >= lo; a
	// zero span means the full 64-bit range.
	span := uint64(int64(hi)-int64(lo)) + 1
	if span == 0 {
		return lo + T(r.Uint64())
	}
	return lo + T(r.Uint64N(span))
}

// poissonStep bounds the exponent applied at once so e^step stays finite.
const poissonStep = 500

// poisson draws from the Poisson distribution with mean lambda.
func poisson(r *rand.Rand, lambda float64) int64 {
	var k int64
	p, left := 1.0, lambda
	for {
		k++
		p *= r.Float64()
		for p < 1 && left > 0 {
			step := min(left, poissonStep)
			p *= math.Exp(step)
			left -= step
		}
		if p <= 1 {
			return k - 1
		}
	}
}

// RandomUniform2 returns a vector with components uniform in [lo, hi), or in
// [lo, hi] for integer kinds.
func RandomUniform2[T Number](r *rand.Rand, lo, hi T) (v Vec2[T]) {
	for i := range v {
		v[i] = uniform(r, lo, hi)
	}
	return
}

// RandomNormal2 returns a vector with normally distributed components.
func RandomNormal2[T Floats](r *rand.Rand, mean, stddev T) (v Vec2[T]) {
	for i := range v {
		v[i] = mean + stddev*T(r.NormFloat64())
	}
	return
}

// RandomPoisson2 returns a vector with Poisson distributed components of
// mean lambda.
func RandomPoisson2[T Integers](r *rand.Rand, lambda float64) (v Vec2[T]) {
	for i := range v {
		v[i] = T(poisson(r, lambda))
	}
	return
}

// RandomBVec2 returns a vector whose components are true with probability p.
func RandomBVec2(r *rand.Rand, p float64) (v BVec2) {
	for i := range v {
		v[i] = r.Float64() < p
	}
	return
}

// RandomUniform3 returns a vector with components uniform in [lo, hi), or in
// [lo, hi] for integer kinds.
func RandomUniform3[T Number](r *rand.Rand, lo, hi T) (v Vec3[T]) {
	for i := range v {
		v[i] = uniform(r, lo, hi)
	}
	return
}

// RandomNormal3 returns a vector with normally distributed components.
func RandomNormal3[T Floats](r *rand.Rand, mean, stddev T) (v Vec3[T]) {
	for i := range v {
		v[i] = mean + stddev*T(r.NormFloat64())
	}
	return
}

// RandomPoisson3 returns a vector with Poisson distributed components of
// mean lambda.
func RandomPoisson3[T Integers](r *rand.Rand, lambda float64) (v Vec3[T]) {
	for i := range v {
		v[i] = T(poisson(r, lambda))
	}
	return
}

// RandomBVec3 returns a vector whose components are true with probability p.
func RandomBVec3(r *rand.Rand, p float64) (v BVec3) {
	for i := range v {
		v[i] = r.Float64() < p
	}
	return
}

// RandomUniform4 returns a vector with components uniform in [lo, hi), or in
// [lo, hi] for integer kinds.
func RandomUniform4[T Number](r *rand.Rand, lo, hi T) (v Vec4[T]) {
	for i := range v {
		v[i] = uniform(r, lo, hi)
	}
	return
}

// RandomNormal4 returns a vector with normally distributed components.
func RandomNormal4[T Floats](r *rand.Rand, mean, stddev T) (v Vec4[T]) {
	for i := range v {
		v[i] = mean + stddev*T(r.NormFloat64())
	}
	return
}

// RandomPoisson4 returns a vector with Poisson distributed components of
// mean lambda.
func RandomPoisson4[T Integers](r *rand.Rand, lambda float64) (v Vec4[T]) {
	for i := range v {
		v[i] = T(poisson(r, lambda))
	}
	return
}

// RandomBVec4 returns a vector whose components are true with probability p.
func RandomBVec4(r *rand.Rand, p float64) (v BVec4) {
	for i := range v {
		v[i] = r.Float64() < p
	}
	return
}
