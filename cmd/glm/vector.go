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
	"errors"

	"github.com/spf13/cobra"

	"github.com/ajroetker/go-glm/glm"
)

func newDotCmd(o *options) *cobra.Command {
	return &cobra.Command{
		Use:   "dot A B",
		Short: "Dot product of two vectors",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			vs, err := o.parseVecs(args)
			if err != nil {
				return err
			}
			a, b := vs[0], vs[1]
			var d float64
			switch len(a) {
			case 2:
				d = glm.Vec2FromSlice(a).Dot(glm.Vec2FromSlice(b))
			case 3:
				d = glm.Vec3FromSlice(a).Dot(glm.Vec3FromSlice(b))
			case 4:
				d = glm.Vec4FromSlice(a).Dot(glm.Vec4FromSlice(b))
			}
			return o.println(cmd, o.formatScalar(d))
		},
	}
}

func newCrossCmd(o *options) *cobra.Command {
	return &cobra.Command{
		Use:   "cross A B",
		Short: "Cross product of two 3-component vectors",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			vs, err := o.parseVecs(args)
			if err != nil {
				return err
			}
			if len(vs[0]) != 3 {
				return errors.New("cross needs 3-component vectors")
			}
			c := glm.Vec3FromSlice(vs[0]).Cross(glm.Vec3FromSlice(vs[1]))
			return o.println(cmd, o.formatVec(c[:]))
		},
	}
}

func newLengthCmd(o *options) *cobra.Command {
	return &cobra.Command{
		Use:   "length V",
		Short: "Euclidean length of a vector",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			v, err := o.parseVec(args[0])
			if err != nil {
				return err
			}
			var l float64
			switch len(v) {
			case 2:
				l = glm.Vec2FromSlice(v).Length()
			case 3:
				l = glm.Vec3FromSlice(v).Length()
			case 4:
				l = glm.Vec4FromSlice(v).Length()
			}
			return o.println(cmd, o.formatScalar(l))
		},
	}
}

func newNormalizeCmd(o *options) *cobra.Command {
	return &cobra.Command{
		Use:   "normalize V",
		Short: "Unit vector in the direction of V; the zero vector stays zero",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			v, err := o.parseVec(args[0])
			if err != nil {
				return err
			}
			var out []float64
			switch len(v) {
			case 2:
				n := glm.Vec2FromSlice(v).NormalizedSafe()
				out = n[:]
			case 3:
				n := glm.Vec3FromSlice(v).NormalizedSafe()
				out = n[:]
			case 4:
				n := glm.Vec4FromSlice(v).NormalizedSafe()
				out = n[:]
			}
			return o.println(cmd, o.formatVec(out))
		},
	}
}

func newReflectCmd(o *options) *cobra.Command {
	return &cobra.Command{
		Use:   "reflect I N",
		Short: "Reflect the incident vector I about the unit normal N",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			vs, err := o.parseVecs(args)
			if err != nil {
				return err
			}
			i, n := vs[0], vs[1]
			var out []float64
			switch len(i) {
			case 2:
				r := glm.Vec2FromSlice(i).Reflect(glm.Vec2FromSlice(n))
				out = r[:]
			case 3:
				r := glm.Vec3FromSlice(i).Reflect(glm.Vec3FromSlice(n))
				out = r[:]
			case 4:
				r := glm.Vec4FromSlice(i).Reflect(glm.Vec4FromSlice(n))
				out = r[:]
			}
			return o.println(cmd, o.formatVec(out))
		},
	}
}

func newRefractCmd(o *options) *cobra.Command {
	var eta float64
	cmd := &cobra.Command{
		Use:   "refract I N",
		Short: "Refract I through N; total internal reflection gives zero",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			vs, err := o.parseVecs(args)
			if err != nil {
				return err
			}
			i, n := vs[0], vs[1]
			var out []float64
			switch len(i) {
			case 2:
				r := glm.Vec2FromSlice(i).Refract(glm.Vec2FromSlice(n), eta)
				out = r[:]
			case 3:
				r := glm.Vec3FromSlice(i).Refract(glm.Vec3FromSlice(n), eta)
				out = r[:]
			case 4:
				r := glm.Vec4FromSlice(i).Refract(glm.Vec4FromSlice(n), eta)
				out = r[:]
			}
			return o.println(cmd, o.formatVec(out))
		},
	}
	cmd.Flags().Float64Var(&eta, "eta", 1, "Ratio of indices of refraction")
	return cmd
}

func newSwizzleCmd(o *options) *cobra.Command {
	return &cobra.Command{
		Use:   "swizzle V SELECTOR",
		Short: "Select components by letters from xyzw, rgba or stpq",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			v, err := o.parseVec(args[0])
			if err != nil {
				return err
			}
			var out []float64
			switch len(v) {
			case 2:
				out, err = glm.Vec2FromSlice(v).Swizzle(args[1])
			case 3:
				out, err = glm.Vec3FromSlice(v).Swizzle(args[1])
			case 4:
				out, err = glm.Vec4FromSlice(v).Swizzle(args[1])
			}
			if err != nil {
				return err
			}
			return o.println(cmd, o.formatVec(out))
		},
	}
}
