package arith

import (
	"github.com/ajroetker/hwyarray/hwy/contrib/workerpool"
)

// Elementwise returns a new slice with out[i] = op(a[i], b[i]), computed on
// the caller's goroutine.
//
// It returns ErrInvalidArgument for a nil input or an unrecognized op and
// ErrLengthMismatch when len(a) != len(b). Empty inputs give an empty result.
func (e *Engine[T]) Elementwise(a, b []T, op Op) ([]T, error) {
	if err := validateOp(a, b, op); err != nil {
		return nil, err
	}

	n := len(a)
	out := make([]T, n)
	if err := applyChunk(a, b, out, workerpool.Range{Start: 0, End: n}, op, e.lanes); err != nil {
		return nil, err
	}
	return out, nil
}

// ElementwiseParallel is Elementwise with [0, n) split across
// Parallelism() workers. Each worker writes only its own range of the
// result, and the call returns after all workers finish. The result is
// bit-for-bit identical to Elementwise.
func (e *Engine[T]) ElementwiseParallel(a, b []T, op Op) ([]T, error) {
	if err := validateOp(a, b, op); err != nil {
		return nil, err
	}

	n := len(a)
	ranges, err := e.partition(n)
	if err != nil {
		return nil, err
	}

	out := make([]T, n)
	err = e.run(op.String(), n, ranges,
		func(_ int, r workerpool.Range) error {
			return applyChunk(a, b, out, r, op, e.lanes)
		},
		func() error {
			return applyChunk(a, b, out, workerpool.Range{Start: 0, End: n}, op, e.lanes)
		},
	)
	if err != nil {
		return nil, err
	}
	return out, nil
}

// Add returns a[i] + b[i] for every i.
func (e *Engine[T]) Add(a, b []T) ([]T, error) { return e.Elementwise(a, b, OpAdd) }

// Sub returns a[i] - b[i] for every i.
func (e *Engine[T]) Sub(a, b []T) ([]T, error) { return e.Elementwise(a, b, OpSub) }

// Mul returns a[i] * b[i] for every i.
func (e *Engine[T]) Mul(a, b []T) ([]T, error) { return e.Elementwise(a, b, OpMul) }

// AddParallel is the parallel form of Add.
func (e *Engine[T]) AddParallel(a, b []T) ([]T, error) {
	return e.ElementwiseParallel(a, b, OpAdd)
}

// SubParallel is the parallel form of Sub.
func (e *Engine[T]) SubParallel(a, b []T) ([]T, error) {
	return e.ElementwiseParallel(a, b, OpSub)
}

// MulParallel is the parallel form of Mul.
func (e *Engine[T]) MulParallel(a, b []T) ([]T, error) {
	return e.ElementwiseParallel(a, b, OpMul)
}
