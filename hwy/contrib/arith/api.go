package arith

import "github.com/ajroetker/hwyarray/hwy"

// The package-level functions use an Engine with default options: the
// current target, no pool, and runtime.GOMAXPROCS(0) ranges per parallel
// call.

// Elementwise returns op(a[i], b[i]) for every i. See Engine.Elementwise.
func Elementwise[T hwy.Floats](a, b []T, op Op) ([]T, error) {
	return New[T]().Elementwise(a, b, op)
}

// ElementwiseParallel is the parallel form of Elementwise.
func ElementwiseParallel[T hwy.Floats](a, b []T, op Op) ([]T, error) {
	return New[T]().ElementwiseParallel(a, b, op)
}

// Dot returns the dot product of a and b. See Engine.Dot.
func Dot[T hwy.Floats](a, b []T) (T, error) {
	return New[T]().Dot(a, b)
}

// DotParallel is the parallel form of Dot.
func DotParallel[T hwy.Floats](a, b []T) (T, error) {
	return New[T]().DotParallel(a, b)
}
