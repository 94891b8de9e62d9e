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

package batch

import (
	"context"
	"errors"
	"fmt"
	"math"
	"math/rand/v2"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"

	"github.com/ajroetker/go-glm/glm"
	"github.com/ajroetker/go-glm/glm/contrib/workerpool"
)

func randomVec3s(n int, seed uint64) []glm.Vec3[float64] {
	r := rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
	out := make([]glm.Vec3[float64], n)
	for i := range out {
		out[i] = glm.RandomUniform3(r, -10.0, 10.0)
	}
	return out
}

func TestLevelString(t *testing.T) {
	if CurrentLevel().String() == "unknown" {
		t.Errorf("CurrentLevel() = %d has no name", CurrentLevel())
	}
	if CurrentWidth() < 16 {
		t.Errorf("CurrentWidth() = %d, want >= 16", CurrentWidth())
	}
	if Grain() < MinParallelItems {
		t.Errorf("Grain() = %d, want >= %d", Grain(), MinParallelItems)
	}
}

func TestNoSimdEnv(t *testing.T) {
	for _, tc := range []struct {
		val  string
		want bool
	}{
		{"", false},
		{"0", false},
		{"false", false},
		{"1", true},
		{"true", true},
		{"yes", true},
	} {
		t.Setenv("GLM_NO_SIMD", tc.val)
		if got := NoSimdEnv(); got != tc.want {
			t.Errorf("GLM_NO_SIMD=%q: NoSimdEnv() = %v, want %v", tc.val, got, tc.want)
		}
	}
}

func TestTransformVec4s(t *testing.T) {
	pool := workerpool.New(4)
	defer pool.Close()

	m := glm.Translate4x4(glm.NewVec3(1.0, 2.0, 3.0))
	// Large enough to take the parallel path.
	n := 3*Grain() + 17
	src := make([]glm.Vec4[float64], n)
	for i := range src {
		src[i] = glm.NewVec4(float64(i), 0, 0, 1)
	}
	for _, p := range []*workerpool.Pool{nil, pool} {
		dst := make([]glm.Vec4[float64], n)
		if got := TransformVec4s(p, dst, m, src); got != n {
			t.Fatalf("TransformVec4s() = %d, want %d", got, n)
		}
		for i, v := range dst {
			want := glm.NewVec4(float64(i)+1, 2, 3, 1)
			if v != want {
				t.Fatalf("dst[%d] = %v, want %v", i, v, want)
			}
		}
	}
}

func TestTransformVec4sShortDst(t *testing.T) {
	src := make([]glm.Vec4[int32], 10)
	dst := make([]glm.Vec4[int32], 4)
	if got := TransformVec4s(nil, dst, glm.IdentityMat4x4[int32](), src); got != 4 {
		t.Errorf("TransformVec4s() = %d, want 4", got)
	}
}

func TestTransformPoints3(t *testing.T) {
	src := []glm.Vec3[float64]{{1, 0, 0}, {0, 1, 0}, {2, 3, 4}}
	dst := make([]glm.Vec3[float64], len(src))

	rot := glm.RotateZ4x4(math.Pi / 2)
	TransformPoints3(nil, dst, rot, src)
	want := []glm.Vec3[float64]{{0, 1, 0}, {-1, 0, 0}, {-3, 2, 4}}
	if diff := cmp.Diff(want, dst, cmpopts.EquateApprox(0, 1e-12)); diff != "" {
		t.Errorf("rotation mismatch (-want +got):\n%s", diff)
	}

	// A matrix that writes w = 2 halves every point.
	half := glm.DiagonalMat4x4(1.0)
	half[3][3] = 2
	TransformPoints3(nil, dst, half, src)
	want = []glm.Vec3[float64]{{0.5, 0, 0}, {0, 0.5, 0}, {1, 1.5, 2}}
	if diff := cmp.Diff(want, dst); diff != "" {
		t.Errorf("perspective divide mismatch (-want +got):\n%s", diff)
	}
}

func TestNormalizeVec3s(t *testing.T) {
	pool := workerpool.New(3)
	defer pool.Close()

	src := randomVec3s(2*Grain()+5, 1)
	src[7] = glm.Vec3[float64]{}
	dst := make([]glm.Vec3[float64], len(src))
	NormalizeVec3s(pool, dst, src)
	for i, v := range dst {
		if i == 7 {
			if v != (glm.Vec3[float64]{}) {
				t.Errorf("zero vector normalized to %v", v)
			}
			continue
		}
		if l := v.Length(); math.Abs(l-1) > 1e-12 {
			t.Fatalf("dst[%d].Length() = %v", i, l)
		}
	}

	// In place.
	NormalizeVec3s(pool, src, src)
	if diff := cmp.Diff(dst, src); diff != "" {
		t.Errorf("in-place result differs (-want +got):\n%s", diff)
	}
}

func TestDotVec3s(t *testing.T) {
	a := randomVec3s(100, 2)
	b := randomVec3s(100, 3)
	dst := make([]float64, 100)
	DotVec3s(nil, dst, a, b)
	for i := range dst {
		if want := a[i][0]*b[i][0] + a[i][1]*b[i][1] + a[i][2]*b[i][2]; dst[i] != want {
			t.Fatalf("dst[%d] = %v, want %v", i, dst[i], want)
		}
	}
}

func TestParseVec3s(t *testing.T) {
	n := 2*Grain() + 3
	lines := make([]string, n)
	for i := range lines {
		lines[i] = fmt.Sprintf("%d, %d, %d", i, -i, 2*i)
	}
	got, err := ParseVec3s[int64](context.Background(), lines, ", ")
	if err != nil {
		t.Fatalf("ParseVec3s() failed: %v", err)
	}
	for i, v := range got {
		if want := glm.NewVec3(int64(i), int64(-i), int64(2*i)); v != want {
			t.Fatalf("got[%d] = %v, want %v", i, v, want)
		}
	}
}

func TestParseVec4sError(t *testing.T) {
	lines := []string{"1, 2, 3, 4", "1, 2, 3", "5, 6, 7, 8"}
	_, err := ParseVec4s[float32](context.Background(), lines, ", ")
	var le *LineError
	if !errors.As(err, &le) {
		t.Fatalf("got %v, want a *LineError", err)
	}
	if le.Line != 1 {
		t.Errorf("LineError.Line = %d, want 1", le.Line)
	}
	if !errors.Is(err, glm.ErrComponentCount) {
		t.Errorf("error %v does not wrap ErrComponentCount", err)
	}
}

func TestParseCanceled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := ParseVec3s[float64](ctx, []string{"1, 2, 3"}, ", ")
	if !errors.Is(err, context.Canceled) {
		t.Errorf("got %v, want context.Canceled", err)
	}
}

func TestParseVec3sOn(t *testing.T) {
	pool := workerpool.New(4)
	defer pool.Close()

	// Lines of very different lengths, spread over many batches.
	n := 10*parseBatch + 7
	lines := make([]string, n)
	for i := range lines {
		if i%3 == 0 {
			lines[i] = fmt.Sprintf("%d.000000000000, %d.5, %d", i, -i, 2*i)
		} else {
			lines[i] = fmt.Sprintf("%d,%d,%d", i, -i, 2*i)
		}
	}
	got, err := ParseVec3sOn[float64](context.Background(), pool, lines, ",")
	if err != nil {
		t.Fatalf("ParseVec3sOn() failed: %v", err)
	}
	want, err := ParseVec3s[float64](context.Background(), lines, ",")
	if err != nil {
		t.Fatalf("ParseVec3s() failed: %v", err)
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("ParseVec3sOn() mismatch (-want +got):\n%s", diff)
	}
	if got[3] != glm.NewVec3(3.0, -3.5, 6.0) {
		t.Errorf("got[3] = %v, want (3, -3.5, 6)", got[3])
	}

	// A nil pool takes the errgroup path.
	got4, err := ParseVec4sOn[int32](context.Background(), nil, []string{"1, 2, 3, 4"}, ", ")
	if err != nil {
		t.Fatalf("ParseVec4sOn(nil pool) failed: %v", err)
	}
	if got4[0] != glm.NewVec4[int32](1, 2, 3, 4) {
		t.Errorf("got %v, want (1, 2, 3, 4)", got4[0])
	}
}

func TestParseVec4sOnError(t *testing.T) {
	pool := workerpool.New(4)
	defer pool.Close()

	n := 4 * parseBatch
	lines := make([]string, n)
	for i := range lines {
		lines[i] = "1, 2, 3, 4"
	}
	bad := 3*parseBatch + 5
	lines[bad] = "1, 2, x, 4"
	_, err := ParseVec4sOn[float64](context.Background(), pool, lines, ", ")
	var le *LineError
	if !errors.As(err, &le) {
		t.Fatalf("got %v, want a *LineError", err)
	}
	if le.Line != bad {
		t.Errorf("LineError.Line = %d, want %d", le.Line, bad)
	}

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err = ParseVec3sOn[float64](ctx, pool, []string{"1, 2, 3"}, ", ")
	if !errors.Is(err, context.Canceled) {
		t.Errorf("got %v, want context.Canceled", err)
	}
}

func BenchmarkTransformVec4s(b *testing.B) {
	pool := workerpool.New(0)
	defer pool.Close()

	m := glm.Perspective(1.0, 1.5, 0.1, 100.0).Mul(glm.Translate4x4(glm.NewVec3(1.0, 2.0, 3.0)))
	for _, n := range []int{1 << 10, 1 << 16, 1 << 20} {
		src := make([]glm.Vec4[float64], n)
		for i := range src {
			src[i] = glm.NewVec4(float64(i), 1, 2, 1)
		}
		dst := make([]glm.Vec4[float64], n)
		for _, tc := range []struct {
			name string
			pool *workerpool.Pool
		}{{"seq", nil}, {"pool", pool}} {
			b.Run(fmt.Sprintf("%s/%d", tc.name, n), func(b *testing.B) {
				for b.Loop() {
					TransformVec4s(tc.pool, dst, m, src)
				}
			})
		}
	}
}

func BenchmarkNormalizeVec3s(b *testing.B) {
	pool := workerpool.New(0)
	defer pool.Close()

	src := randomVec3s(1<<18, 4)
	dst := make([]glm.Vec3[float64], len(src))
	b.Run("seq", func(b *testing.B) {
		for b.Loop() {
			NormalizeVec3s(nil, dst, src)
		}
	})
	b.Run("pool", func(b *testing.B) {
		for b.Loop() {
			NormalizeVec3s(pool, dst, src)
		}
	})
}
