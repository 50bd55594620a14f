package arith

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidArgument is returned for a nil input array or an
	// unrecognized Op.
	ErrInvalidArgument = errors.New("arith: invalid argument")

	// ErrLengthMismatch is returned when the input arrays differ in length.
	ErrLengthMismatch = errors.New("arith: length mismatch")

	// ErrInternalInconsistency is returned when a work partition does not
	// cover the input exactly. It indicates a bug, not bad input, and the
	// call must not be retried.
	ErrInternalInconsistency = errors.New("arith: internal inconsistency")
)

// validate checks the inputs of every entry point. It runs before any
// output is allocated or any worker is scheduled.
func validate[T any](a, b []T) error {
	if a == nil || b == nil {
		return fmt.Errorf("%w: nil input array", ErrInvalidArgument)
	}
	if len(a) != len(b) {
		return fmt.Errorf("%w: len(a) = %d, len(b) = %d", ErrLengthMismatch, len(a), len(b))
	}
	return nil
}

func validateOp[T any](a, b []T, op Op) error {
	if a == nil || b == nil {
		return fmt.Errorf("%w: nil input array", ErrInvalidArgument)
	}
	if !op.Valid() {
		return fmt.Errorf("%w: unrecognized operation %v", ErrInvalidArgument, op)
	}
	return validate(a, b)
}
