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

// Package glm provides GLSL-style fixed-size vector and matrix value types.
//
// Vectors come in lengths 2, 3 and 4 over any integer or floating-point
// scalar kind, plus boolean vectors for comparison results. Matrices cover
// every shape from 2x2 to 4x4 and are stored column-major, so m[c][r] is the
// element in column c, row r.
//
// Basic usage:
//
//	import "github.com/ajroetker/go-glm/glm"
//
//	a := glm.NewVec3[float64](1, 2, 3)
//	b := glm.Splat3[float64](2)
//	c := a.Add(b).Normalized()
//
//	m := glm.Rotate4x4[float64](math.Pi/2, glm.UnitZ3[float64]())
//	p := m.MulVec(c.Extend(1))
//
// Every operation returns a new value; the only mutation is through pointer
// setters (SetX, SetXY, SetCol, ...) or the index expression. All types are
// safe to use from multiple goroutines as long as a single value is not
// mutated concurrently.
//
// Numeric edge cases follow the scalar kind: floating division by zero and
// the inverse of a singular matrix give Inf or NaN, integer division by zero
// panics with the usual runtime error.
package glm

import "golang.org/x/exp/constraints"

//go:generate go run ../cmd/glmgen -output zz_aliases.go -pkg glm

// Floats is a constraint for floating-point scalar kinds.
type Floats interface {
	constraints.Float
}

// SignedInts is a constraint for signed integer scalar kinds.
type SignedInts interface {
	constraints.Signed
}

// UnsignedInts is a constraint for unsigned integer scalar kinds.
type UnsignedInts interface {
	constraints.Unsigned
}

// Integers is a constraint for all integer scalar kinds.
type Integers interface {
	constraints.Integer
}

// Number is a constraint for every scalar kind that can be stored in a
// numeric vector or matrix.
type Number interface {
	Integers | Floats
}

// Component selects one component of a vector in swizzles.
type Component int

const (
	X Component = iota
	Y
	Z
	W
)

// String returns the lower-case letter of the component.
func (c Component) String() string {
	switch c {
	case X:
		return "x"
	case Y:
		return "y"
	case Z:
		return "z"
	case W:
		return "w"
	default:
		return "?"
	}
}

// Matrix is implemented by every matrix shape. It is the input of the
// shape-converting constructors (Mat3x3From, Mat4x4From, ...).
type Matrix[T Number] interface {
	// Cols returns the number of columns.
	Cols() int
	// Rows returns the number of rows.
	Rows() int
	// At returns the element in column c, row r.
	At(c, r int) T
}
