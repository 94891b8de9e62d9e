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
	"bufio"
	"fmt"
	"runtime"
	"strings"

	"github.com/spf13/cobra"

	"github.com/ajroetker/go-glm/glm"
	"github.com/ajroetker/go-glm/glm/contrib/batch"
	"github.com/ajroetker/go-glm/glm/contrib/workerpool"
)

func newDetCmd(o *options) *cobra.Command {
	return &cobra.Command{
		Use:   "det M",
		Short: "Determinant of a square matrix",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			m, err := parseMat(args[0])
			if err != nil {
				return err
			}
			n, err := square(m)
			if err != nil {
				return err
			}
			var d float64
			switch n {
			case 2:
				d = glm.Mat2x2From(m).Determinant()
			case 3:
				d = glm.Mat3x3From(m).Determinant()
			case 4:
				d = glm.Mat4x4From(m).Determinant()
			}
			return o.println(cmd, o.formatScalar(d))
		},
	}
}

func newInverseCmd(o *options) *cobra.Command {
	return &cobra.Command{
		Use:   "inverse M",
		Short: "Inverse of a square matrix; singular input prints NaN or Inf",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			m, err := parseMat(args[0])
			if err != nil {
				return err
			}
			n, err := square(m)
			if err != nil {
				return err
			}
			var inv glm.Matrix[float64]
			switch n {
			case 2:
				inv = glm.Mat2x2From(m).Inverse()
			case 3:
				inv = glm.Mat3x3From(m).Inverse()
			case 4:
				inv = glm.Mat4x4From(m).Inverse()
			}
			return o.println(cmd, o.formatMat(inv))
		},
	}
}

func newTransposeCmd(o *options) *cobra.Command {
	return &cobra.Command{
		Use:   "transpose M",
		Short: "Transpose of a matrix of any shape",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			m, err := parseMat(args[0])
			if err != nil {
				return err
			}
			return o.println(cmd, o.formatMat(transpose(m)))
		},
	}
}

func transpose(m glm.Matrix[float64]) glm.Matrix[float64] {
	switch m := m.(type) {
	case glm.Mat2x2[float64]:
		return m.Transpose()
	case glm.Mat2x3[float64]:
		return m.Transpose()
	case glm.Mat2x4[float64]:
		return m.Transpose()
	case glm.Mat3x2[float64]:
		return m.Transpose()
	case glm.Mat3x3[float64]:
		return m.Transpose()
	case glm.Mat3x4[float64]:
		return m.Transpose()
	case glm.Mat4x2[float64]:
		return m.Transpose()
	case glm.Mat4x3[float64]:
		return m.Transpose()
	case glm.Mat4x4[float64]:
		return m.Transpose()
	}
	panic(fmt.Sprintf("unexpected matrix type %T", m))
}

func newMulCmd(o *options) *cobra.Command {
	return &cobra.Command{
		Use:   "mul M X",
		Short: "Product of M with a vector or a square matrix of the same size",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			m, err := parseMat(args[0])
			if err != nil {
				return err
			}
			if strings.Contains(args[1], ";") {
				x, err := parseMat(args[1])
				if err != nil {
					return err
				}
				p, err := mulMat(m, x)
				if err != nil {
					return err
				}
				return o.println(cmd, o.formatMat(p))
			}
			v, err := o.parseVec(args[1])
			if err != nil {
				return err
			}
			if len(v) != m.Cols() {
				return fmt.Errorf("%dx%d matrix times %d-component vector", m.Cols(), m.Rows(), len(v))
			}
			return o.println(cmd, o.formatVec(mulVec(m, v)))
		},
	}
}

func mulMat(a, b glm.Matrix[float64]) (glm.Matrix[float64], error) {
	n, err := square(a)
	if err != nil {
		return nil, err
	}
	if b.Cols() != n || b.Rows() != n {
		return nil, fmt.Errorf("%dx%d matrix times %dx%d matrix", n, n, b.Cols(), b.Rows())
	}
	switch n {
	case 2:
		return glm.Mat2x2From(a).Mul(glm.Mat2x2From(b)), nil
	case 3:
		return glm.Mat3x3From(a).Mul(glm.Mat3x3From(b)), nil
	default:
		return glm.Mat4x4From(a).Mul(glm.Mat4x4From(b)), nil
	}
}

// mulVec returns m * v for a v with m.Cols() components.
func mulVec(m glm.Matrix[float64], v []float64) []float64 {
	var out []float64
	switch m := m.(type) {
	case glm.Mat2x2[float64]:
		r := m.MulVec(glm.Vec2FromSlice(v))
		out = r[:]
	case glm.Mat2x3[float64]:
		r := m.MulVec(glm.Vec2FromSlice(v))
		out = r[:]
	case glm.Mat2x4[float64]:
		r := m.MulVec(glm.Vec2FromSlice(v))
		out = r[:]
	case glm.Mat3x2[float64]:
		r := m.MulVec(glm.Vec3FromSlice(v))
		out = r[:]
	case glm.Mat3x3[float64]:
		r := m.MulVec(glm.Vec3FromSlice(v))
		out = r[:]
	case glm.Mat3x4[float64]:
		r := m.MulVec(glm.Vec3FromSlice(v))
		out = r[:]
	case glm.Mat4x2[float64]:
		r := m.MulVec(glm.Vec4FromSlice(v))
		out = r[:]
	case glm.Mat4x3[float64]:
		r := m.MulVec(glm.Vec4FromSlice(v))
		out = r[:]
	case glm.Mat4x4[float64]:
		r := m.MulVec(glm.Vec4FromSlice(v))
		out = r[:]
	}
	return out
}

func newTransformCmd(o *options) *cobra.Command {
	return &cobra.Command{
		Use:   "transform M",
		Short: "Apply a 4x4 matrix to the 3D points read from stdin, one per line",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			m, err := parseMat(args[0])
			if err != nil {
				return err
			}
			if n, err := square(m); err != nil || n != 4 {
				return fmt.Errorf("transform needs a 4x4 matrix, got %dx%d", m.Cols(), m.Rows())
			}

			var lines []string
			scanner := bufio.NewScanner(cmd.InOrStdin())
			for scanner.Scan() {
				if line := strings.TrimSpace(scanner.Text()); line != "" {
					lines = append(lines, line)
				}
			}
			if err := scanner.Err(); err != nil {
				return err
			}

			pool := workerpool.Default()
			points, err := batch.ParseVec3sOn[float64](cmd.Context(), pool, lines, o.sep)
			if err != nil {
				return err
			}
			out := make([]glm.Vec3[float64], len(points))
			n := batch.TransformPoints3(pool, out, glm.Mat4x4From(m), points)
			o.logger.Debug("transformed", "points", n, "level", batch.CurrentLevel())

			w := bufio.NewWriter(cmd.OutOrStdout())
			for _, p := range out {
				fmt.Fprintln(w, o.formatVec(p[:]))
			}
			return w.Flush()
		},
	}
}

func newInfoCmd(o *options) *cobra.Command {
	return &cobra.Command{
		Use:   "info",
		Short: "Print the batch kernel configuration",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			w := cmd.OutOrStdout()
			fmt.Fprintf(w, "simd level:  %s\n", batch.CurrentLevel())
			fmt.Fprintf(w, "width:       %d bytes\n", batch.CurrentWidth())
			fmt.Fprintf(w, "grain:       %d vectors\n", batch.Grain())
			fmt.Fprintf(w, "workers:     %d\n", workerpool.Default().NumWorkers())
			fmt.Fprintf(w, "GOMAXPROCS:  %d\n", runtime.GOMAXPROCS(0))
			o.logger.Debug("no simd override", "set", batch.NoSimdEnv())
			return nil
		},
	}
}
