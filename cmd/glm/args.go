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

package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/samber/lo"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"

	"github.com/ajroetker/go-glm/glm"
)

// parseWith picks the localized parser when a locale is set.
func parseWith[V any](o *options, arg string,
	plain func(string, string) (V, error),
	localized func(string, string, language.Tag) (V, error),
) (V, error) {
	if o.tag == language.Und {
		return plain(arg, o.sep)
	}
	return localized(arg, o.sep, o.tag)
}

// parseVec reads a vector of 2 to 4 components. The length is taken from
// the number of separators.
func (o *options) parseVec(arg string) ([]float64, error) {
	n := len(strings.Split(arg, o.sep))
	var (
		xs  []float64
		err error
	)
	switch n {
	case 2:
		var v glm.Vec2[float64]
		v, err = parseWith(o, arg, glm.ParseVec2[float64], glm.ParseVec2Locale[float64])
		xs = v[:]
	case 3:
		var v glm.Vec3[float64]
		v, err = parseWith(o, arg, glm.ParseVec3[float64], glm.ParseVec3Locale[float64])
		xs = v[:]
	case 4:
		var v glm.Vec4[float64]
		v, err = parseWith(o, arg, glm.ParseVec4[float64], glm.ParseVec4Locale[float64])
		xs = v[:]
	default:
		return nil, fmt.Errorf("%q: want 2 to 4 components separated by %q, got %d", arg, o.sep, n)
	}
	if err != nil {
		return nil, err
	}
	o.logger.Debug("parsed vector", "arg", arg, "len", n)
	return xs, nil
}

// parseVecs reads every argument as a vector and requires equal lengths.
func (o *options) parseVecs(args []string) ([][]float64, error) {
	vs := make([][]float64, len(args))
	for i, arg := range args {
		v, err := o.parseVec(arg)
		if err != nil {
			return nil, err
		}
		vs[i] = v
	}
	lens := lo.Uniq(lo.Map(vs, func(v []float64, _ int) int { return len(v) }))
	if len(lens) > 1 {
		return nil, fmt.Errorf("vectors of different lengths %v", lens)
	}
	return vs, nil
}

// formatScalar prints x with --format and --locale.
func (o *options) formatScalar(x float64) string {
	localized := o.tag != language.Und
	switch {
	case localized && o.format != "":
		return message.NewPrinter(o.tag).Sprintf(o.format, x)
	case localized:
		return message.NewPrinter(o.tag).Sprint(number.Decimal(x))
	case o.format != "":
		return fmt.Sprintf(o.format, x)
	default:
		return strconv.FormatFloat(x, 'g', -1, 64)
	}
}

func (o *options) formatVec(xs []float64) string {
	return strings.Join(lo.Map(xs, func(x float64, _ int) string { return o.formatScalar(x) }), o.sep)
}

// parseMat reads a matrix in the column-major text form "1,2; 3,4". The
// shape is taken from the number of columns and the length of the first.
func parseMat(arg string) (glm.Matrix[float64], error) {
	cols := strings.Split(arg, ";")
	rows := len(strings.Split(cols[0], ","))
	switch [2]int{len(cols), rows} {
	case [2]int{2, 2}:
		m, err := glm.ParseMat2x2[float64](arg)
		return m, err
	case [2]int{2, 3}:
		m, err := glm.ParseMat2x3[float64](arg)
		return m, err
	case [2]int{2, 4}:
		m, err := glm.ParseMat2x4[float64](arg)
		return m, err
	case [2]int{3, 2}:
		m, err := glm.ParseMat3x2[float64](arg)
		return m, err
	case [2]int{3, 3}:
		m, err := glm.ParseMat3x3[float64](arg)
		return m, err
	case [2]int{3, 4}:
		m, err := glm.ParseMat3x4[float64](arg)
		return m, err
	case [2]int{4, 2}:
		m, err := glm.ParseMat4x2[float64](arg)
		return m, err
	case [2]int{4, 3}:
		m, err := glm.ParseMat4x3[float64](arg)
		return m, err
	case [2]int{4, 4}:
		m, err := glm.ParseMat4x4[float64](arg)
		return m, err
	}
	return nil, fmt.Errorf("%q: matrices have 2 to 4 columns of 2 to 4 rows, got %d columns of %d", arg, len(cols), rows)
}

// formatMat prints m in the form parseMat reads. --format applies to every
// element; --locale does not, since its separators could clash with the
// matrix syntax.
func (o *options) formatMat(m glm.Matrix[float64]) string {
	if o.format == "" {
		return fmt.Sprint(m)
	}
	cols := make([]string, m.Cols())
	for c := range cols {
		col := make([]string, m.Rows())
		for r := range col {
			col[r] = fmt.Sprintf(o.format, m.At(c, r))
		}
		cols[c] = strings.Join(col, ", ")
	}
	return strings.Join(cols, "; ")
}

// square returns the size of m, or an error when m is not square.
func square(m glm.Matrix[float64]) (int, error) {
	if m.Cols() != m.Rows() {
		return 0, fmt.Errorf("%dx%d matrix is not square", m.Cols(), m.Rows())
	}
	return m.Cols(), nil
}
