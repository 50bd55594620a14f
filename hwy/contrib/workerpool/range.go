// Copyright 2025 The go-highway Authors. SPDX-License-Identifier: Apache-2.0

package workerpool

import (
	"errors"
	"fmt"
)

// ErrCoverage is returned by CheckCover when ranges do not tile [0, n).
var ErrCoverage = errors.New("workerpool: ranges do not cover [0, n) exactly")

// Range is a half-open index interval [Start, End).
type Range struct {
	Start int
	End   int
}

// Len returns the number of indices in the range.
func (r Range) Len() int {
	return r.End - r.Start
}

func (r Range) String() string {
	return fmt.Sprintf("[%d,%d)", r.Start, r.End)
}

// Partition splits [0, n) into at most parts contiguous ranges of
// ceil(n/parts) indices each; the last range may be shorter. Ranges that
// would start at or after n are omitted, so the result is empty for n <= 0.
// parts < 1 is treated as 1.
func Partition(n, parts int) []Range {
	if n <= 0 {
		return nil
	}
	parts = max(parts, 1)

	chunkSize := (n + parts - 1) / parts
	ranges := make([]Range, 0, min(parts, n))
	for t := range parts {
		start := t * chunkSize
		if start >= n {
			break
		}
		ranges = append(ranges, Range{Start: start, End: min(n, start+chunkSize)})
	}
	return ranges
}

// CheckCover verifies that ranges are non-empty, ordered, pairwise disjoint
// and jointly cover [0, n) with no gaps.
func CheckCover(ranges []Range, n int) error {
	next := 0
	for i, r := range ranges {
		if r.Start != next || r.End <= r.Start {
			return fmt.Errorf("%w: range %d is %v, expected start %d", ErrCoverage, i, r, next)
		}
		next = r.End
	}
	if next != n {
		return fmt.Errorf("%w: ranges end at %d, n is %d", ErrCoverage, next, n)
	}
	return nil
}
