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
	"errors"
	"fmt"
	"strings"
)

// Matrix kernels work on the flattened column-major storage: element
// (c, r) of a matrix with R rows lives at index c*R + r.

// padded returns m.At(c, r), or the identity element when (c, r) lies
// outside m. This is the rule behind every shape-converting constructor:
// narrowing truncates, widening adds 1 on the new diagonal and 0 elsewhere.
func padded[T Number](m Matrix[T], c, r int) T {
	if c < m.Cols() && r < m.Rows() {
		return m.At(c, r)
	}
	if c == r {
		return 1
	}
	return 0
}

// mulFlat computes dst = a * b where a has inner columns and aRows rows,
// b has bCols columns and inner rows, and dst has bCols columns and aRows
// rows.
func mulFlat[T Number](dst, a, b []T, aRows, inner, bCols int) {
	for c := range bCols {
		for r := range aRows {
			var sum T
			for k := range inner {
				sum += a[k*aRows+r] * b[c*inner+k]
			}
			dst[c*aRows+r] = sum
		}
	}
}

// transposeFlat writes the transpose of a (cols x rows) into dst.
func transposeFlat[T Number](dst, a []T, cols, rows int) {
	for c := range cols {
		for r := range rows {
			dst[r*cols+c] = a[c*rows+r]
		}
	}
}

func fillTo[T Number](dst []T, s T) {
	for i := range dst {
		dst[i] = s
	}
}

// formatMat prints columns separated by "; " and the rows of a column
// separated by ", ".
func formatMat[T Number](flat []T, rows int, format func(T) string) string {
	cols := make([]string, 0, len(flat)/rows)
	for c := 0; c < len(flat); c += rows {
		cols = append(cols, joinScalars(flat[c:c+rows], DefaultSeparator, format))
	}
	return strings.Join(cols, "; ")
}

// parseMat is the inverse of formatMat. The column and row counts must match
// exactly.
func parseMat[T Number](dst []T, rows int, s string) error {
	cols := strings.Split(s, ";")
	if len(cols)*rows != len(dst) {
		return &ParseError{
			Input: s,
			Index: -1,
			Err:   fmt.Errorf("%w: got %d columns, want %d", ErrComponentCount, len(cols), len(dst)/rows),
		}
	}
	for c, col := range cols {
		err := parseScalars(dst[c*rows:(c+1)*rows], col, ",", parseScalar[T])
		var pe *ParseError
		if errors.As(err, &pe) {
			clear(dst)
			idx := pe.Index
			if idx >= 0 {
				idx += c * rows
			}
			return &ParseError{Input: s, Index: idx, Err: pe.Err}
		}
	}
	return nil
}
