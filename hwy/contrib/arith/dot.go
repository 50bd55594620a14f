package arith

import (
	"math"
	"unsafe"

	"github.com/ajroetker/hwyarray/hwy"
	"github.com/ajroetker/hwyarray/hwy/contrib/workerpool"
)

// Dot returns the sum of a[i]*b[i], computed on the caller's goroutine.
// Empty inputs give 0. Errors are as for Elementwise.
func (e *Engine[T]) Dot(a, b []T) (T, error) {
	if err := validate(a, b); err != nil {
		return 0, err
	}
	return dotChunk(a, b, workerpool.Range{Start: 0, End: len(a)}, e.lanes)
}

// DotParallel is Dot with [0, n) split across Parallelism() workers. Each
// worker accumulates a partial sum for its own range; after all workers
// finish the partials are added in range order.
//
// Floating-point addition is not associative, so the result may differ from
// Dot in the last bits. See DotTolerance.
func (e *Engine[T]) DotParallel(a, b []T) (T, error) {
	if err := validate(a, b); err != nil {
		return 0, err
	}

	n := len(a)
	ranges, err := e.partition(n)
	if err != nil {
		return 0, err
	}

	partials := make([]T, len(ranges))
	err = e.run("dot", n, ranges,
		func(i int, r workerpool.Range) error {
			s, err := dotChunk(a, b, r, e.lanes)
			partials[i] = s
			return err
		},
		func() error {
			s, err := dotChunk(a, b, workerpool.Range{Start: 0, End: n}, e.lanes)
			partials = []T{s}
			return err
		},
	)
	if err != nil {
		return 0, err
	}

	var sum T
	for _, p := range partials {
		sum += p
	}
	return sum, nil
}

// epsilon returns the machine epsilon of T.
func epsilon[T hwy.Floats]() float64 {
	var zero T
	if unsafe.Sizeof(zero) == 4 {
		return 0x1p-23
	}
	return 0x1p-52
}

// DotTolerance bounds how far two summation orders of the dot product of a
// and b may drift apart: 2·n·ε·Σ|a[i]·b[i]|, with ε the machine epsilon of T.
// Inputs of different lengths are truncated to the shorter one.
func DotTolerance[T hwy.Floats](a, b []T) T {
	n := min(len(a), len(b))
	var mag float64
	for i := range n {
		mag += math.Abs(float64(a[i]) * float64(b[i]))
	}
	return T(2 * float64(n) * epsilon[T]() * mag)
}
