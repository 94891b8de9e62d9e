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

// Package workerpool runs index ranges over a fixed set of goroutines.
//
// The batch kernels share one pool per process:
//
//	pool := workerpool.Default()
//	pool.ParallelFor(len(points), 4096, func(start, end int) {
//	    transform(points[start:end])
//	})
//
// Ranges shorter than the grain run on the calling goroutine. A panic inside
// fn is re-raised on the caller once every range has finished.
package workerpool

import (
	"fmt"
	"runtime"
	"sync"
	"sync/atomic"
)

// Pool is a persistent set of workers reused across parallel loops.
type Pool struct {
	numWorkers int
	workC      chan task
	closeOnce  sync.Once
	closed     atomic.Bool
}

// task is one range of a parallel loop.
type task struct {
	fn   func()
	loop *loop
}

// loop collects the completion and the first panic of one ParallelFor call.
type loop struct {
	wg        sync.WaitGroup
	panicOnce sync.Once
	panicVal  any
}

func (l *loop) run(fn func()) {
	defer l.wg.Done()
	defer func() {
		if r := recover(); r != nil {
			l.panicOnce.Do(func() { l.panicVal = r })
		}
	}()
	fn()
}

func (l *loop) wait() {
	l.wg.Wait()
	if l.panicVal != nil {
		panic(fmt.Sprintf("workerpool: task panicked: %v", l.panicVal))
	}
}

// New starts a pool of numWorkers goroutines. If numWorkers <= 0 it uses
// GOMAXPROCS.
func New(numWorkers int) *Pool {
	if numWorkers <= 0 {
		numWorkers = runtime.GOMAXPROCS(0)
	}
	p := &Pool{
		numWorkers: numWorkers,
		workC:      make(chan task, numWorkers*2),
	}
	for range numWorkers {
		go p.worker()
	}
	return p
}

var defaultPool = sync.OnceValue(func() *Pool { return New(0) })

// Default returns the process-wide pool, started on first use and never
// closed.
func Default() *Pool { return defaultPool() }

func (p *Pool) worker() {
	for t := range p.workC {
		t.loop.run(t.fn)
	}
}

// NumWorkers returns the number of workers in the pool.
func (p *Pool) NumWorkers() int { return p.numWorkers }

// Close stops the workers after pending ranges complete. Loops started after
// Close run sequentially. Calling Close more than once is safe.
func (p *Pool) Close() {
	p.closeOnce.Do(func() {
		p.closed.Store(true)
		close(p.workC)
	})
}

// ParallelFor calls fn over contiguous ranges covering [0, n), each at least
// grain long except possibly the last, and blocks until all return.
func (p *Pool) ParallelFor(n, grain int, fn func(start, end int)) {
	if n <= 0 {
		return
	}
	grain = max(grain, 1)
	workers := min(p.numWorkers, (n+grain-1)/grain)
	if workers <= 1 || p.closed.Load() {
		fn(0, n)
		return
	}

	chunk := (n + workers - 1) / workers
	l := &loop{}
	for start := 0; start < n; start += chunk {
		end := min(start+chunk, n)
		l.wg.Add(1)
		p.workC <- task{fn: func() { fn(start, end) }, loop: l}
	}
	l.wait()
}

// ParallelForBatched hands out batches of batchSize indices on demand, which
// balances ranges of uneven cost better than ParallelFor.
func (p *Pool) ParallelForBatched(n, batchSize int, fn func(start, end int)) {
	if n <= 0 {
		return
	}
	batchSize = max(batchSize, 1)
	workers := min(p.numWorkers, (n+batchSize-1)/batchSize)
	if workers <= 1 || p.closed.Load() {
		fn(0, n)
		return
	}

	var next atomic.Int64
	l := &loop{}
	l.wg.Add(workers)
	for range workers {
		p.workC <- task{
			fn: func() {
				for {
					start := int(next.Add(int64(batchSize))) - batchSize
					if start >= n {
						return
					}
					fn(start, min(start+batchSize, n))
				}
			},
			loop: l,
		}
	}
	l.wait()
}
