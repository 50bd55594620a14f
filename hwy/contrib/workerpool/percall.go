// Copyright 2025 The go-highway Authors. SPDX-License-Identifier: Apache-2.0

package workerpool

import (
	"errors"
	"fmt"

	"golang.org/x/sync/errgroup"
)

// ErrPanic marks a task that panicked instead of returning.
var ErrPanic = errors.New("workerpool: task panicked")

// RangeError reports the range whose task failed.
type RangeError struct {
	Range Range
	Err   error
}

func (e *RangeError) Error() string {
	return fmt.Sprintf("range %v: %v", e.Range, e.Err)
}

func (e *RangeError) Unwrap() error { return e.Err }

// PerCall is a Runner that creates goroutines for one Run call and joins
// them before returning. Nothing is kept between calls.
type PerCall struct {
	// Limit caps the number of goroutines alive at once. 0 means one per range.
	Limit int
}

var _ Runner = PerCall{}

// Run executes fn for each range on its own goroutine.
func (pc PerCall) Run(ranges []Range, fn TaskFunc) error {
	errs := make([]error, len(ranges))

	var g errgroup.Group
	if pc.Limit > 0 {
		g.SetLimit(pc.Limit)
	}
	for i, r := range ranges {
		g.Go(func() error {
			errs[i] = call(fn, i, r)
			return errs[i]
		})
	}

	// Wait joins every goroutine; report by range order, not arrival order.
	_ = g.Wait()
	return firstError(errs)
}

// call runs fn for one range, turning a panic into a RangeError.
func call(fn TaskFunc, i int, r Range) (err error) {
	defer func() {
		if v := recover(); v != nil {
			err = &RangeError{Range: r, Err: fmt.Errorf("%w: %v", ErrPanic, v)}
		}
	}()

	if err := fn(i, r); err != nil {
		return &RangeError{Range: r, Err: err}
	}
	return nil
}
