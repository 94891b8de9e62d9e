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
	"unsafe"
)

// Mat2x2 is a matrix with 2 columns and 2 rows stored column-major:
// m[c][r] is the element in column c, row r.
type Mat2x2[T Number] [2][2]T

// NewMat2x2 returns the matrix with the given components in column-major
// order: mCR is column C, row R.
func NewMat2x2[T Number](m00, m01, m10, m11 T) Mat2x2[T] {
	return Mat2x2[T]{{m00, m01}, {m10, m11}}
}

// Mat2x2FromCols builds the matrix from its columns.
func Mat2x2FromCols[T Number](c0, c1 Vec2[T]) Mat2x2[T] {
	return Mat2x2[T]{c0, c1}
}

// Mat2x2From converts any matrix shape to 2x2. Extra columns and rows are
// dropped; new diagonal entries are 1 and every other new entry is 0.
func Mat2x2From[T Number](m Matrix[T]) (res Mat2x2[T]) {
	for c := range res {
		for r := range res[c] {
			res[c][r] = padded(m, c, r)
		}
	}
	return
}

// IdentityMat2x2 returns the 2x2 matrix with ones on the main diagonal.
func IdentityMat2x2[T Number]() Mat2x2[T] { return DiagonalMat2x2(T(1)) }

// DiagonalMat2x2 returns the matrix with s on the main diagonal and 0
// elsewhere.
func DiagonalMat2x2[T Number](s T) (m Mat2x2[T]) {
	for i := range 2 {
		m[i][i] = s
	}
	return
}

// FillMat2x2 returns the matrix with every component set to s.
func FillMat2x2[T Number](s T) (m Mat2x2[T]) {
	fillTo(m.flat(), s)
	return
}

// OuterProduct2x2 returns c * r^T: c is the column vector and r the row
// vector, so the result has len(r) columns and len(c) rows.
func OuterProduct2x2[T Number](c Vec2[T], r Vec2[T]) (m Mat2x2[T]) {
	for i := range m {
		for j := range m[i] {
			m[i][j] = c[j] * r[i]
		}
	}
	return
}

// ConvertMat2x2 converts every component to D with Go conversion rules.
func ConvertMat2x2[D, S Number](m Mat2x2[S]) (res Mat2x2[D]) {
	src, dst := m.flat(), res.flat()
	for i := range dst {
		dst[i] = convert[D](src[i])
	}
	return
}

// ParseMat2x2 parses columns separated by ';' whose components are separated
// by ','. It accepts the output of String.
func ParseMat2x2[T Number](s string) (m Mat2x2[T], err error) {
	err = parseMat(m.flat(), 2, s)
	return
}

func (m *Mat2x2[T]) flat() []T { return unsafe.Slice(&m[0][0], 4) }

func (m Mat2x2[T]) Cols() int         { return 2 }
func (m Mat2x2[T]) Rows() int         { return 2 }
func (m Mat2x2[T]) At(c, r int) T     { return m[c][r] }
func (m Mat2x2[T]) Col(c int) Vec2[T] { return m[c] }

// Row returns row r as a vector.
func (m Mat2x2[T]) Row(r int) (v Vec2[T]) {
	for c := range v {
		v[c] = m[c][r]
	}
	return
}

func (m *Mat2x2[T]) SetCol(c int, v Vec2[T]) { m[c] = v }

// SetRow overwrites row r.
func (m *Mat2x2[T]) SetRow(r int, v Vec2[T]) {
	for c := range v {
		m[c][r] = v[c]
	}
}

// Component returns the i-th component in column-major order, or
// ErrIndexOutOfRange.
func (m Mat2x2[T]) Component(i int) (T, error) {
	if i < 0 || i >= 4 {
		return 0, indexError(i, 4)
	}
	return m.flat()[i], nil
}

// SetComponent sets the i-th component in column-major order.
func (m *Mat2x2[T]) SetComponent(i int, x T) error {
	if i < 0 || i >= 4 {
		return indexError(i, 4)
	}
	m.flat()[i] = x
	return nil
}

func (m Mat2x2[T]) Transpose() (t Mat2x2[T]) {
	transposeFlat(t.flat(), m.flat(), 2, 2)
	return
}

func (m Mat2x2[T]) Add(o Mat2x2[T]) (r Mat2x2[T]) {
	addTo(r.flat(), m.flat(), o.flat())
	return
}

func (m Mat2x2[T]) Sub(o Mat2x2[T]) (r Mat2x2[T]) {
	subTo(r.flat(), m.flat(), o.flat())
	return
}

// CompMul multiplies component-wise. Mul* are the algebraic products.
func (m Mat2x2[T]) CompMul(o Mat2x2[T]) (r Mat2x2[T]) {
	mulTo(r.flat(), m.flat(), o.flat())
	return
}

func (m Mat2x2[T]) CompDiv(o Mat2x2[T]) (r Mat2x2[T]) {
	divTo(r.flat(), m.flat(), o.flat())
	return
}

func (m Mat2x2[T]) AddS(s T) (r Mat2x2[T]) {
	addSTo(r.flat(), m.flat(), s)
	return
}

func (m Mat2x2[T]) SubS(s T) (r Mat2x2[T]) {
	subSTo(r.flat(), m.flat(), s)
	return
}

func (m Mat2x2[T]) MulS(s T) (r Mat2x2[T]) {
	mulSTo(r.flat(), m.flat(), s)
	return
}

func (m Mat2x2[T]) DivS(s T) (r Mat2x2[T]) {
	divSTo(r.flat(), m.flat(), s)
	return
}

func (m Mat2x2[T]) Neg() (r Mat2x2[T]) {
	negTo(r.flat(), m.flat())
	return
}

// Map applies f to every component.
func (m Mat2x2[T]) Map(f func(T) T) (r Mat2x2[T]) {
	mapTo(r.flat(), m.flat(), f)
	return
}

// MulVec returns m * v with v taken as a column vector.
func (m Mat2x2[T]) MulVec(v Vec2[T]) (r Vec2[T]) {
	mulFlat(r[:], m.flat(), v[:], 2, 2, 1)
	return
}

// VecMul returns v * m with v taken as a row vector.
func (m Mat2x2[T]) VecMul(v Vec2[T]) (r Vec2[T]) {
	for c := range r {
		r[c] = dot(m[c][:], v[:])
	}
	return
}

// MulMat2x2 returns m * o.
func (m Mat2x2[T]) MulMat2x2(o Mat2x2[T]) (r Mat2x2[T]) {
	mulFlat(r.flat(), m.flat(), o.flat(), 2, 2, 2)
	return
}

// MulMat3x2 returns m * o.
func (m Mat2x2[T]) MulMat3x2(o Mat3x2[T]) (r Mat3x2[T]) {
	mulFlat(r.flat(), m.flat(), o.flat(), 2, 2, 3)
	return
}

// MulMat4x2 returns m * o.
func (m Mat2x2[T]) MulMat4x2(o Mat4x2[T]) (r Mat4x2[T]) {
	mulFlat(r.flat(), m.flat(), o.flat(), 2, 2, 4)
	return
}

// Equals reports whether all components are equal.
func (m Mat2x2[T]) Equals(o Mat2x2[T]) bool { return m == o }

// ApproxEqual reports whether every component differs by at most eps.
func (m Mat2x2[T]) ApproxEqual(o Mat2x2[T], eps T) bool {
	return approxEqual(m.flat(), o.flat(), eps)
}

// Hash returns a hash of the components.
func (m Mat2x2[T]) Hash(seed maphash.Seed) uint64 { return maphash.Comparable(seed, m) }

// String formats the columns separated by "; ".
func (m Mat2x2[T]) String() string { return formatMat(m.flat(), 2, formatScalar[T]) }
