// Copyright 2025 The go-highway Authors. SPDX-License-Identifier: Apache-2.0

// Package workerpool runs range-partitioned work in parallel.
//
// Work is described as a list of disjoint half-open ranges (see Partition)
// and a TaskFunc invoked once per range. Two Runners are provided: Pool, a
// persistent pool that is created once and reused across many calls, and
// PerCall, which spawns one goroutine per range for the duration of a
// single call.
//
// Usage:
//
//	pool := workerpool.New(runtime.GOMAXPROCS(0))
//	defer pool.Close()
//
//	ranges := workerpool.Partition(n, runtime.GOMAXPROCS(0))
//	err := pool.Run(ranges, func(i int, r workerpool.Range) error {
//	    processRows(r.Start, r.End)
//	    return nil
//	})
//
// Both runners return only after every task has finished, so a failing
// task never leaves other tasks running behind the caller's back.
package workerpool

import (
	"runtime"
	"sync"
	"sync/atomic"
)

// TaskFunc processes the i-th range of a Run call.
type TaskFunc func(i int, r Range) error

// Runner executes fn once for each range and blocks until all calls have
// returned. It returns the error of the lowest-indexed failing range.
type Runner interface {
	Run(ranges []Range, fn TaskFunc) error
}

// Pool is a persistent worker pool that can be reused across many parallel
// operations. Workers are spawned once at creation and reused.
type Pool struct {
	numWorkers int
	workC      chan workItem
	closeOnce  sync.Once
	closed     atomic.Bool
}

var _ Runner = (*Pool)(nil)

// workItem represents a single range of a Run call.
type workItem struct {
	fn      func()
	barrier *sync.WaitGroup
}

// New creates a new worker pool with the specified number of workers.
// Workers are spawned immediately and persist until Close is called.
// If numWorkers <= 0, uses GOMAXPROCS.
func New(numWorkers int) *Pool {
	if numWorkers <= 0 {
		numWorkers = runtime.GOMAXPROCS(0)
	}

	p := &Pool{
		numWorkers: numWorkers,
		// Buffer enough for all workers to have pending work
		workC: make(chan workItem, numWorkers*2),
	}

	for range numWorkers {
		go p.worker()
	}

	return p
}

func (p *Pool) worker() {
	for item := range p.workC {
		item.fn()
		item.barrier.Done()
	}
}

// NumWorkers returns the number of workers in the pool.
func (p *Pool) NumWorkers() int {
	return p.numWorkers
}

// Close shuts down the worker pool. All pending work will complete.
// Calling Close multiple times is safe; Close must not race with Run.
func (p *Pool) Close() {
	p.closeOnce.Do(func() {
		p.closed.Store(true)
		close(p.workC)
	})
}

// Run executes fn for each range on the pool's workers. More ranges than
// workers is fine; the extra ranges queue until a worker is free.
// A closed pool runs the ranges sequentially on the caller's goroutine.
func (p *Pool) Run(ranges []Range, fn TaskFunc) error {
	errs := make([]error, len(ranges))

	if p.closed.Load() || len(ranges) <= 1 {
		for i, r := range ranges {
			errs[i] = call(fn, i, r)
		}
		return firstError(errs)
	}

	var wg sync.WaitGroup
	wg.Add(len(ranges))

	for i, r := range ranges {
		p.workC <- workItem{
			fn: func() {
				errs[i] = call(fn, i, r)
			},
			barrier: &wg,
		}
	}

	wg.Wait()
	return firstError(errs)
}

func firstError(errs []error) error {
	for _, err := range errs {
		if err != nil {
			return err
		}
	}
	return nil
}
