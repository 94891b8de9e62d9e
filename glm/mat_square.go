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

// Square matrices add the determinant family. The determinant expands along
// the first row; the adjugate is the transposed cofactor matrix. Inverse is
// Adjugate / Determinant without a singularity check: a singular float matrix
// yields infinities or NaNs, while an integer one panics on the division like
// any Go integer division by zero.

// minorFlat copies the n x n matrix a into dst without column skipCol and row
// skipRow.
func minorFlat[T Number](dst, a []T, n, skipCol, skipRow int) {
	i := 0
	for c := range n {
		if c == skipCol {
			continue
		}
		for r := range n {
			if r == skipRow {
				continue
			}
			dst[i] = a[c*n+r]
			i++
		}
	}
}

func detFlat[T Number](a []T, n int) T {
	switch n {
	case 1:
		return a[0]
	case 2:
		return a[0]*a[3] - a[2]*a[1]
	}
	var det T
	var buf [9]T
	sub := buf[:(n-1)*(n-1)]
	for c := range n {
		minorFlat(sub, a, n, c, 0)
		term := a[c*n] * detFlat(sub, n-1)
		if c%2 == 0 {
			det += term
		} else {
			det -= term
		}
	}
	return det
}

func adjugateFlat[T Number](dst, a []T, n int) {
	var buf [9]T
	sub := buf[:(n-1)*(n-1)]
	for c := range n {
		for r := range n {
			minorFlat(sub, a, n, r, c)
			cof := detFlat(sub, n-1)
			if (c+r)%2 != 0 {
				cof = -cof
			}
			dst[c*n+r] = cof
		}
	}
}

func traceFlat[T Number](a []T, n int) (t T) {
	for i := range n {
		t += a[i*n+i]
	}
	return
}

// Determinant returns det(m).
func (m Mat2x2[T]) Determinant() T { return detFlat(m.flat(), 2) }

// Adjugate returns the transposed cofactor matrix.
func (m Mat2x2[T]) Adjugate() (r Mat2x2[T]) {
	adjugateFlat(r.flat(), m.flat(), 2)
	return
}

// Inverse returns Adjugate / Determinant.
func (m Mat2x2[T]) Inverse() Mat2x2[T] { return m.Adjugate().DivS(m.Determinant()) }

// Trace returns the sum of the main diagonal.
func (m Mat2x2[T]) Trace() T { return traceFlat(m.flat(), 2) }

// Mul returns m * o.
func (m Mat2x2[T]) Mul(o Mat2x2[T]) Mat2x2[T] { return m.MulMat2x2(o) }

// Div returns m * o.Inverse().
func (m Mat2x2[T]) Div(o Mat2x2[T]) Mat2x2[T] { return m.Mul(o.Inverse()) }

// Determinant returns det(m).
func (m Mat3x3[T]) Determinant() T { return detFlat(m.flat(), 3) }

// Adjugate returns the transposed cofactor matrix.
func (m Mat3x3[T]) Adjugate() (r Mat3x3[T]) {
	adjugateFlat(r.flat(), m.flat(), 3)
	return
}

// Inverse returns Adjugate / Determinant.
func (m Mat3x3[T]) Inverse() Mat3x3[T] { return m.Adjugate().DivS(m.Determinant()) }

// Trace returns the sum of the main diagonal.
func (m Mat3x3[T]) Trace() T { return traceFlat(m.flat(), 3) }

// Mul returns m * o.
func (m Mat3x3[T]) Mul(o Mat3x3[T]) Mat3x3[T] { return m.MulMat3x3(o) }

// Div returns m * o.Inverse().
func (m Mat3x3[T]) Div(o Mat3x3[T]) Mat3x3[T] { return m.Mul(o.Inverse()) }

// Determinant returns det(m).
func (m Mat4x4[T]) Determinant() T { return detFlat(m.flat(), 4) }

// Adjugate returns the transposed cofactor matrix.
func (m Mat4x4[T]) Adjugate() (r Mat4x4[T]) {
	adjugateFlat(r.flat(), m.flat(), 4)
	return
}

// Inverse returns Adjugate / Determinant.
func (m Mat4x4[T]) Inverse() Mat4x4[T] { return m.Adjugate().DivS(m.Determinant()) }

// Trace returns the sum of the main diagonal.
func (m Mat4x4[T]) Trace() T { return traceFlat(m.flat(), 4) }

// Mul returns m * o.
func (m Mat4x4[T]) Mul(o Mat4x4[T]) Mat4x4[T] { return m.MulMat4x4(o) }

// Div returns m * o.Inverse().
func (m Mat4x4[T]) Div(o Mat4x4[T]) Mat4x4[T] { return m.Mul(o.Inverse()) }
