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
	"fmt"
	"runtime"
	"sync"
	"sync/atomic"

	"golang.org/x/sync/errgroup"

	"github.com/ajroetker/go-glm/glm"
	"github.com/ajroetker/go-glm/glm/contrib/workerpool"
)

// parseBatch is the number of lines a pool worker takes at a time. Line
// lengths vary, so workers pull small batches instead of fixed chunks.
const parseBatch = 256

// LineError reports the line of a batch parse that failed. Err is the
// *glm.ParseError of that line.
type LineError struct {
	Line int // zero-based
	Err  error
}

func (e *LineError) Error() string { return fmt.Sprintf("line %d: %v", e.Line+1, e.Err) }

func (e *LineError) Unwrap() error { return e.Err }

// parseLines parses every line with parse, in chunks of at least Grain()
// lines on up to GOMAXPROCS goroutines. The first failure cancels the
// remaining chunks and is returned.
func parseLines[V any](ctx context.Context, lines []string, parse func(string) (V, error)) ([]V, error) {
	out := make([]V, len(lines))
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(runtime.GOMAXPROCS(0))
	chunk := max(Grain(), (len(lines)+runtime.GOMAXPROCS(0)-1)/runtime.GOMAXPROCS(0))
	for start := 0; start < len(lines); start += chunk {
		end := min(start+chunk, len(lines))
		g.Go(func() error {
			for i := start; i < end; i++ {
				if i%1024 == 0 {
					if err := ctx.Err(); err != nil {
						return err
					}
				}
				v, err := parse(lines[i])
				if err != nil {
					return &LineError{Line: i, Err: err}
				}
				out[i] = v
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return out, nil
}

// parseLinesOn is parseLines on a worker pool. Workers stop taking batches
// once a line fails or ctx is done; the failure with the lowest line number
// seen so far is returned.
func parseLinesOn[V any](ctx context.Context, pool *workerpool.Pool, lines []string, parse func(string) (V, error)) ([]V, error) {
	if pool == nil {
		return parseLines(ctx, lines, parse)
	}
	out := make([]V, len(lines))
	var (
		stop     atomic.Bool
		mu       sync.Mutex
		firstErr error
		firstAt  = len(lines)
	)
	fail := func(at int, err error) {
		mu.Lock()
		if at < firstAt {
			firstAt, firstErr = at, err
		}
		mu.Unlock()
		stop.Store(true)
	}
	pool.ParallelForBatched(len(lines), parseBatch, func(start, end int) {
		if stop.Load() {
			return
		}
		if err := ctx.Err(); err != nil {
			fail(start, err)
			return
		}
		for i := start; i < end; i++ {
			v, err := parse(lines[i])
			if err != nil {
				fail(i, &LineError{Line: i, Err: err})
				return
			}
			out[i] = v
		}
	})
	if firstErr != nil {
		return nil, firstErr
	}
	return out, nil
}

// ParseVec3s parses one vector per line with glm.ParseVec3.
func ParseVec3s[T glm.Number](ctx context.Context, lines []string, sep string) ([]glm.Vec3[T], error) {
	return parseLines(ctx, lines, func(s string) (glm.Vec3[T], error) { return glm.ParseVec3[T](s, sep) })
}

// ParseVec4s parses one vector per line with glm.ParseVec4.
func ParseVec4s[T glm.Number](ctx context.Context, lines []string, sep string) ([]glm.Vec4[T], error) {
	return parseLines(ctx, lines, func(s string) (glm.Vec4[T], error) { return glm.ParseVec4[T](s, sep) })
}

// ParseVec3sOn is ParseVec3s running on pool. A nil pool falls back to
// ParseVec3s.
func ParseVec3sOn[T glm.Number](ctx context.Context, pool *workerpool.Pool, lines []string, sep string) ([]glm.Vec3[T], error) {
	return parseLinesOn(ctx, pool, lines, func(s string) (glm.Vec3[T], error) { return glm.ParseVec3[T](s, sep) })
}

// ParseVec4sOn is ParseVec4s running on pool. A nil pool falls back to
// ParseVec4s.
func ParseVec4sOn[T glm.Number](ctx context.Context, pool *workerpool.Pool, lines []string, sep string) ([]glm.Vec4[T], error) {
	return parseLinesOn(ctx, pool, lines, func(s string) (glm.Vec4[T], error) { return glm.ParseVec4[T](s, sep) })
}
