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

// Package batch applies glm operations to slices of vectors, splitting long
// slices over a worker pool.
//
// Every kernel takes an optional pool; with a nil pool, or fewer vectors than
// Grain(), it runs on the calling goroutine. Kernels process
// min(len(dst), len(src)) elements, like the slice kernels they are modeled
// on, and return that count.
//
//	pool := workerpool.Default()
//	n := batch.TransformVec4s(pool, out, mvp, vertices)
package batch

import (
	"github.com/ajroetker/go-glm/glm"
	"github.com/ajroetker/go-glm/glm/contrib/workerpool"
)

// apply runs fn over [0, n) on pool, or sequentially when pool is nil or n is
// below the grain.
func apply(pool *workerpool.Pool, n int, fn func(start, end int)) {
	grain := Grain()
	if pool == nil || n < grain {
		fn(0, n)
		return
	}
	pool.ParallelFor(n, grain, fn)
}

// TransformVec4s sets dst[i] = m * src[i].
func TransformVec4s[T glm.Number](pool *workerpool.Pool, dst []glm.Vec4[T], m glm.Mat4x4[T], src []glm.Vec4[T]) int {
	n := min(len(dst), len(src))
	apply(pool, n, func(start, end int) {
		for i := start; i < end; i++ {
			dst[i] = m.MulVec(src[i])
		}
	})
	return n
}

// TransformPoints3 applies m to the points src[i] (w = 1) and stores the
// result after the perspective divide.
func TransformPoints3[T glm.Floats](pool *workerpool.Pool, dst []glm.Vec3[T], m glm.Mat4x4[T], src []glm.Vec3[T]) int {
	n := min(len(dst), len(src))
	apply(pool, n, func(start, end int) {
		for i := start; i < end; i++ {
			p := m.MulVec(src[i].Extend(1))
			dst[i] = p.XYZ()
			if w := p.W(); w != 1 {
				dst[i] = dst[i].DivS(w)
			}
		}
	})
	return n
}

// NormalizeVec3s sets dst[i] = src[i].NormalizedSafe(). dst and src may be
// the same slice.
func NormalizeVec3s[T glm.Floats](pool *workerpool.Pool, dst, src []glm.Vec3[T]) int {
	n := min(len(dst), len(src))
	apply(pool, n, func(start, end int) {
		for i := start; i < end; i++ {
			dst[i] = src[i].NormalizedSafe()
		}
	})
	return n
}

// DotVec3s sets dst[i] = a[i].Dot(b[i]).
func DotVec3s[T glm.Number](pool *workerpool.Pool, dst []T, a, b []glm.Vec3[T]) int {
	n := min(len(dst), len(a), len(b))
	apply(pool, n, func(start, end int) {
		for i := start; i < end; i++ {
			dst[i] = a[i].Dot(b[i])
		}
	})
	return n
}
