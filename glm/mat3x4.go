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

// Mat3x4 is a matrix with 3 columns and 4 rows stored column-major:
// m[c][r] is the element in column c, row r.
type Mat3x4[T Number] [3][4]T

// NewMat3x4 returns the matrix with the given components in column-major
// order: mCR is column C, row R.
func NewMat3x4[T Number](m00, m01, m02, m03, m10, m11, m12, m13, m20, m21, m22, m23 T) Mat3x4[T] {
	return Mat3x4[T]{{m00, m01, m02, m03}, {m10, m11, m12, m13}, {m20, m21, m22, m23}}
}

// Mat3x4FromCols builds the matrix from its columns.
func Mat3x4FromCols[T Number](c0, c1, c2 Vec4[T]) Mat3x4[T] {
	return Mat3x4[T]{c0, c1, c2}
}

// Mat3x4From converts any matrix shape to 3x4. Extra columns and rows are
// dropped; new diagonal entries are 1 and every other new entry is 0.
func Mat3x4From[T Number](m Matrix[T]) (res Mat3x4[T]) {
	for c := range res {
		for r := range res[c] {
			res[c][r] = padded(m, c, r)
		}
	}
	return
}

// IdentityMat3x4 returns the 3x4 matrix with ones on the main diagonal.
func IdentityMat3x4[T Number]() Mat3x4[T] { return DiagonalMat3x4(T(1)) }

// DiagonalMat3x4 returns the matrix with s on the main diagonal and 0
// elsewhere.
func DiagonalMat3x4[T Number](s T) (m Mat3x4[T]) {
	for i := range 3 {
		m[i][i] = s
	}
	return
}

// FillMat3x4 returns the matrix with every component set to s.
func FillMat3x4[T Number](s T) (m Mat3x4[T]) {
	fillTo(m.flat(), s)
	return
}

// OuterProduct3x4 returns c * r^T: c is the column vector and r the row
// vector, so the result has len(r) columns and len(c) rows.
func OuterProduct3x4[T Number](c Vec4[T], r Vec3[T]) (m Mat3x4[T]) {
	for i := range m {
		for j := range m[i] {
			m[i][j] = c[j] * r[i]
		}
	}
	return
}

// ConvertMat3x4 converts every component to D with Go conversion rules.
func ConvertMat3x4[D, S Number](m Mat3x4[S]) (res Mat3x4[D]) {
	src, dst := m.flat(), res.flat()
	for i := range dst {
		dst[i] = convert[D](src[i])
	}
	return
}

// ParseMat3x4 parses columns separated by ';' whose components are separated
// by ','. It accepts the output of String.
func ParseMat3x4[T Number](s string) (m Mat3x4[T], err error) {
	err = parseMat(m.flat(), 4, s)
	return
}

func (m *Mat3x4[T]) flat() []T { return unsafe.Slice(&m[0][0], 12) }

func (m Mat3x4[T]) Cols() int         { return 3 }
func (m Mat3x4[T]) Rows() int         { return 4 }
func (m Mat3x4[T]) At(c, r int) T     { return m[c][r] }
func (m Mat3x4[T]) Col(c int) Vec4[T] { return m[c] }

// Row returns row r as a vector.
func (m Mat3x4[T]) Row(r int) (v Vec3[T]) {
	for c := range v {
		v[c] = m[c][r]
	}
	return
}

func (m *Mat3x4[T]) SetCol(c int, v Vec4[T]) { m[c] = v }

// SetRow overwrites row r.
func (m *Mat3x4[T]) SetRow(r int, v Vec3[T]) {
	for c := range v {
		m[c][r] = v[c]
	}
}

// Component returns the i-th component in column-major order, or
// ErrIndexOutOfRange.
func (m Mat3x4[T]) Component(i int) (T, error) {
	if i < 0 || i >= 12 {
		return 0, indexError(i, 12)
	}
	return m.flat()[i], nil
}

// SetComponent sets the i-th component in column-major order.
func (m *Mat3x4[T]) SetComponent(i int, x T) error {
	if i < 0 || i >= 12 {
		return indexError(i, 12)
	}
	m.flat()[i] = x
	return nil
}

func (m Mat3x4[T]) Transpose() (t Mat4x3[T]) {
	transposeFlat(t.flat(), m.flat(), 3, 4)
	return
}

func (m Mat3x4[T]) Add(o Mat3x4[T]) (r Mat3x4[T]) {
	addTo(r.flat(), m.flat(), o.flat())
	return
}

func (m Mat3x4[T]) Sub(o Mat3x4[T]) (r Mat3x4[T]) {
	subTo(r.flat(), m.flat(), o.flat())
	return
}

// CompMul multiplies component-wise. Mul* are the algebraic products.
func (m Mat3x4[T]) CompMul(o Mat3x4[T]) (r Mat3x4[T]) {
	mulTo(r.flat(), m.flat(), o.flat())
	return
}

func (m Mat3x4[T]) CompDiv(o Mat3x4[T]) (r Mat3x4[T]) {
	divTo(r.flat(), m.flat(), o.flat())
	return
}

func (m Mat3x4[T]) AddS(s T) (r Mat3x4[T]) {
	addSTo(r.flat(), m.flat(), s)
	return
}

func (m Mat3x4[T]) SubS(s T) (r Mat3x4[T]) {
	subSTo(r.flat(), m.flat(), s)
	return
}

func (m Mat3x4[T]) MulS(s T) (r Mat3x4[T]) {
	mulSTo(r.flat(), m.flat(), s)
	return
}

func (m Mat3x4[T]) DivS(s T) (r Mat3x4[T]) {
	divSTo(r.flat(), m.flat(), s)
	return
}

func (m Mat3x4[T]) Neg() (r Mat3x4[T]) {
	negTo(r.flat(), m.flat())
	return
}

// Map applies f to every component.
func (m Mat3x4[T]) Map(f func(T) T) (r Mat3x4[T]) {
	mapTo(r.flat(), m.flat(), f)
	return
}

// MulVec returns m * v with v taken as a column vector.
func (m Mat3x4[T]) MulVec(v Vec3[T]) (r Vec4[T]) {
	mulFlat(r[:], m.flat(), v[:], 4, 3, 1)
	return
}

// VecMul returns v * m with v taken as a row vector.
func (m Mat3x4[T]) VecMul(v Vec4[T]) (r Vec3[T]) {
	for c := range r {
		r[c] = dot(m[c][:], v[:])
	}
	return
}

// MulMat2x3 returns m * o.
func (m Mat3x4[T]) MulMat2x3(o Mat2x3[T]) (r Mat2x4[T]) {
	mulFlat(r.flat(), m.flat(), o.flat(), 4, 3, 2)
	return
}

// MulMat3x3 returns m * o.
func (m Mat3x4[T]) MulMat3x3(o Mat3x3[T]) (r Mat3x4[T]) {
	mulFlat(r.flat(), m.flat(), o.flat(), 4, 3, 3)
	return
}

// MulMat4x3 returns m * o.
func (m Mat3x4[T]) MulMat4x3(o Mat4x3[T]) (r Mat4x4[T]) {
	mulFlat(r.flat(), m.flat(), o.flat(), 4, 3, 4)
	return
}

// Equals reports whether all components are equal.
func (m Mat3x4[T]) Equals(o Mat3x4[T]) bool { return m == o }

// ApproxEqual reports whether every component differs by at most eps.
func (m Mat3x4[T]) ApproxEqual(o Mat3x4[T], eps T) bool {
	return approxEqual(m.flat(), o.flat(), eps)
}

// Hash returns a hash of the components.
func (m Mat3x4[T]) Hash(seed maphash.Seed) uint64 { return maphash.Comparable(seed, m) }

// String formats the columns separated by "; ".
func (m Mat3x4[T]) String() string { return formatMat(m.flat(), 4, formatScalar[T]) }
