// Copyright 2025 go-highway Authors
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

// Package arith provides elementwise add/sub/mul and dot products over pairs
// of equal-length float slices.
//
// Every operation comes in a sequential and a parallel form. Sequential calls
// run one lane-batched kernel over [0, n) on the caller's goroutine. Parallel
// calls split [0, n) into disjoint contiguous ranges, run the same kernel per
// range and join before returning. Elementwise results are identical in both
// forms; dot products agree within DotTolerance, since the parallel form adds
// the per-range partial sums in a different order.
//
// Example:
//
//	a := []float64{1, 2, 3, 4, 5}
//	b := []float64{5, 4, 3, 2, 1}
//	sum, _ := arith.Elementwise(a, b, arith.OpAdd) // [6 6 6 6 6]
//	dot, _ := arith.Dot(a, b)                      // 35
//
// Inputs are never modified and every call allocates its own result.
package arith

import (
	"fmt"
	"log/slog"
	"runtime"

	"golang.org/x/sync/semaphore"

	"github.com/ajroetker/hwyarray/hwy"
	"github.com/ajroetker/hwyarray/hwy/contrib/workerpool"
)

// Engine runs the arithmetic kernels for element type T with a fixed
// target and scheduling configuration. It is safe for concurrent use.
type Engine[T hwy.Floats] struct {
	target      hwy.Target
	lanes       int
	parallelism int
	runner      workerpool.Runner
	admit       *semaphore.Weighted // nil if unlimited
	logger      *slog.Logger
}

// New creates an Engine.
func New[T hwy.Floats](opts ...Option) *Engine[T] {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	e := &Engine[T]{
		target:      o.target,
		lanes:       hwy.LanesFor[T](o.target),
		parallelism: o.parallelism,
		runner:      workerpool.PerCall{},
		logger:      o.logger,
	}
	if o.pool != nil {
		e.runner = o.pool
	}
	if o.maxParallelCalls > 0 {
		e.admit = semaphore.NewWeighted(o.maxParallelCalls)
	}
	return e
}

// Target returns the vector target the engine was built for.
func (e *Engine[T]) Target() hwy.Target {
	return e.target
}

// Lanes returns the number of elements each kernel step processes.
func (e *Engine[T]) Lanes() int {
	return e.lanes
}

// Parallelism returns the number of ranges the next parallel call will use.
func (e *Engine[T]) Parallelism() int {
	if e.parallelism > 0 {
		return e.parallelism
	}
	return runtime.GOMAXPROCS(0)
}

// partition splits [0, n) for a parallel call and proves the split exact.
func (e *Engine[T]) partition(n int) ([]workerpool.Range, error) {
	p := e.Parallelism()
	ranges := workerpool.Partition(n, p)
	if err := workerpool.CheckCover(ranges, n); err != nil {
		e.logger.Error("partition does not cover input", "n", n, "parallelism", p, "error", err)
		return nil, fmt.Errorf("%w: %w", ErrInternalInconsistency, err)
	}

	e.logger.Debug("partitioned input",
		"n", n,
		"parallelism", p,
		"ranges", len(ranges),
		"lanes", e.lanes,
		"target", e.target.Name,
	)
	return ranges, nil
}

// tryAdmit reserves a parallel slot. It never blocks; false means the call
// should run sequentially.
func (e *Engine[T]) tryAdmit() bool {
	if e.admit == nil {
		return true
	}
	if e.admit.TryAcquire(1) {
		return true
	}
	e.logger.Debug("parallel limit reached, running sequentially")
	return false
}

func (e *Engine[T]) release() {
	if e.admit != nil {
		e.admit.Release(1)
	}
}

// run executes task over ranges, falling back to one sequential pass over
// the whole input when the call is not admitted. seq runs that pass.
func (e *Engine[T]) run(op string, n int, ranges []workerpool.Range, task workerpool.TaskFunc, seq func() error) error {
	if !e.tryAdmit() {
		return seq()
	}
	defer e.release()

	if err := e.runner.Run(ranges, task); err != nil {
		e.logger.Error("parallel worker failed", "op", op, "n", n, "error", err)
		return err
	}
	return nil
}
