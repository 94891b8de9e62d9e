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

package workerpool

import (
	"runtime"
	"strings"
	"sync/atomic"
	"testing"
)

func TestNew(t *testing.T) {
	pool := New(4)
	defer pool.Close()

	if pool.NumWorkers() != 4 {
		t.Errorf("NumWorkers() = %d, want 4", pool.NumWorkers())
	}
}

func TestNewDefaultSize(t *testing.T) {
	pool := New(0)
	defer pool.Close()

	if pool.NumWorkers() != runtime.GOMAXPROCS(0) {
		t.Errorf("NumWorkers() = %d, want %d", pool.NumWorkers(), runtime.GOMAXPROCS(0))
	}
}

func TestDefaultIsShared(t *testing.T) {
	if Default() != Default() {
		t.Error("Default() returned different pools")
	}
}

func TestParallelFor(t *testing.T) {
	pool := New(4)
	defer pool.Close()

	for _, grain := range []int{0, 1, 7, 100, 1000} {
		n := 100
		results := make([]int, n)
		pool.ParallelFor(n, grain, func(start, end int) {
			for i := start; i < end; i++ {
				results[i] += i * 2
			}
		})
		for i := range n {
			if results[i] != i*2 {
				t.Errorf("grain %d: results[%d] = %d, want %d", grain, i, results[i], i*2)
			}
		}
	}
}

func TestParallelForBelowGrainRunsOnce(t *testing.T) {
	pool := New(8)
	defer pool.Close()

	var calls atomic.Int32
	pool.ParallelFor(50, 64, func(start, end int) {
		calls.Add(1)
		if start != 0 || end != 50 {
			t.Errorf("got range [%d, %d), want [0, 50)", start, end)
		}
	})
	if calls.Load() != 1 {
		t.Errorf("fn called %d times, want 1", calls.Load())
	}
}

func TestParallelForBatched(t *testing.T) {
	pool := New(4)
	defer pool.Close()

	n := 1001
	var count atomic.Int64
	results := make([]int, n)
	pool.ParallelForBatched(n, 10, func(start, end int) {
		count.Add(int64(end - start))
		for i := start; i < end; i++ {
			results[i] = i + 1
		}
	})
	if count.Load() != int64(n) {
		t.Errorf("covered %d indices, want %d", count.Load(), n)
	}
	for i := range n {
		if results[i] != i+1 {
			t.Fatalf("results[%d] = %d, want %d", i, results[i], i+1)
		}
	}
}

func TestParallelForZeroN(t *testing.T) {
	pool := New(4)
	defer pool.Close()

	var called bool
	pool.ParallelFor(0, 1, func(start, end int) { called = true })
	pool.ParallelForBatched(0, 1, func(start, end int) { called = true })
	if called {
		t.Error("fn called for n=0")
	}
}

func TestPanicPropagates(t *testing.T) {
	pool := New(4)
	defer pool.Close()

	defer func() {
		r := recover()
		if r == nil {
			t.Fatal("expected the panic to reach the caller")
		}
		if !strings.Contains(r.(string), "boom") {
			t.Errorf("panic value %q lost the original message", r)
		}
	}()
	pool.ParallelFor(100, 1, func(start, end int) {
		if start == 0 {
			panic("boom")
		}
	})
}

func TestCloseMultipleTimes(t *testing.T) {
	pool := New(4)
	pool.Close()
	pool.Close()
}

func TestParallelForAfterClose(t *testing.T) {
	pool := New(4)
	pool.Close()

	var count atomic.Int32
	pool.ParallelFor(100, 1, func(start, end int) {
		count.Add(int32(end - start))
	})
	if count.Load() != 100 {
		t.Errorf("count = %d, want 100", count.Load())
	}
}
