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

// Slice kernels shared by vectors and matrices. Vectors pass v[:] and
// matrices pass their flattened column-major storage, so a component-wise
// rule is written once for every shape.
//
// All kernels process len(dst) elements; callers always pass operands of
// the same length.

func addTo[T Number](dst, a, b []T) {
	for i := range dst {
		dst[i] = a[i] + b[i]
	}
}

func subTo[T Number](dst, a, b []T) {
	for i := range dst {
		dst[i] = a[i] - b[i]
	}
}

func mulTo[T Number](dst, a, b []T) {
	for i := range dst {
		dst[i] = a[i] * b[i]
	}
}

func divTo[T Number](dst, a, b []T) {
	for i := range dst {
		dst[i] = a[i] / b[i]
	}
}

func modTo[T Number](dst, a, b []T) {
	for i := range dst {
		dst[i] = Mod(a[i], b[i])
	}
}

func addSTo[T Number](dst, a []T, s T) {
	for i := range dst {
		dst[i] = a[i] + s
	}
}

func subSTo[T Number](dst, a []T, s T) {
	for i := range dst {
		dst[i] = a[i] - s
	}
}

func mulSTo[T Number](dst, a []T, s T) {
	for i := range dst {
		dst[i] = a[i] * s
	}
}

func divSTo[T Number](dst, a []T, s T) {
	for i := range dst {
		dst[i] = a[i] / s
	}
}

func modSTo[T Number](dst, a []T, s T) {
	for i := range dst {
		dst[i] = Mod(a[i], s)
	}
}

func negTo[T Number](dst, a []T) {
	for i := range dst {
		dst[i] = -a[i]
	}
}

func mapTo[T Number](dst, a []T, f func(T) T) {
	for i := range dst {
		dst[i] = f(a[i])
	}
}

func map2To[T Number](dst, a, b []T, f func(T, T) T) {
	for i := range dst {
		dst[i] = f(a[i], b[i])
	}
}

func map3To[T Number](dst, a, b, c []T, f func(T, T, T) T) {
	for i := range dst {
		dst[i] = f(a[i], b[i], c[i])
	}
}

func compareTo[T Number](dst []bool, a, b []T, pred func(T, T) bool) {
	for i := range dst {
		dst[i] = pred(a[i], b[i])
	}
}

func compareSTo[T Number](dst []bool, a []T, s T, pred func(T, T) bool) {
	for i := range dst {
		dst[i] = pred(a[i], s)
	}
}

func lt[T Number](a, b T) bool { return a < b }
func le[T Number](a, b T) bool { return a <= b }
func gt[T Number](a, b T) bool { return a > b }
func ge[T Number](a, b T) bool { return a >= b }
func eq[T Number](a, b T) bool { return a == b }
func ne[T Number](a, b T) bool { return a != b }

func dot[T Number](a, b []T) T {
	var sum T
	for i := range a {
		sum += a[i] * b[i]
	}
	return sum
}

// length returns sqrt(Σ a[i]²) in the natural precision of T.
func length[T Number](a []T) float64 {
	return natural[T](math.Sqrt(float64(dot(a, a))))
}

func sumAbs[T Number](a []T) T {
	var sum T
	for _, x := range a {
		sum += Abs(x)
	}
	return sum
}

func maxAbs[T Number](a []T) T {
	var m T
	for _, x := range a {
		m = max(m, Abs(x))
	}
	return m
}

// normP returns (Σ|a[i]|^p)^(1/p).
func normP[T Number](a []T, p float64) float64 {
	var sum float64
	for _, x := range a {
		sum += math.Pow(math.Abs(float64(x)), p)
	}
	return natural[T](math.Pow(sum, 1/p))
}

func approxEqual[T Number](a, b []T, eps T) bool {
	for i := range a {
		d := a[i] - b[i]
		if a[i] < b[i] {
			d = b[i] - a[i]
		}
		// NaN never compares equal.
		if !(d <= eps) {
			return false
		}
	}
	return true
}

func allTrue(a []bool) bool {
	for _, b := range a {
		if !b {
			return false
		}
	}
	return true
}

func anyTrue(a []bool) bool {
	for _, b := range a {
		if b {
			return true
		}
	}
	return false
}
