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

package arith

import (
	"fmt"

	"github.com/ajroetker/hwyarray/hwy"
	"github.com/ajroetker/hwyarray/hwy/contrib/workerpool"
)

// The chunk kernels below touch only indices inside r and keep no state
// between calls, so disjoint ranges may run concurrently.

func checkRange(r workerpool.Range, n int) error {
	if r.Start < 0 || r.Start > r.End || r.End > n {
		return fmt.Errorf("%w: range %v outside [0,%d)", ErrInvalidArgument, r, n)
	}
	return nil
}

// applyChunk writes op(a[i], b[i]) to out[i] for every i in r.
//
// Full lanes are computed directly into out; the remainder is loaded into
// a masked register, computed, and stored back through the same mask.
func applyChunk[T hwy.Floats](a, b, out []T, r workerpool.Range, op Op, lanes int) error {
	if err := checkRange(r, min(len(a), len(b), len(out))); err != nil {
		return err
	}
	lane := laneFunc[T](op)
	if lane == nil {
		return fmt.Errorf("%w: unrecognized operation %v", ErrInvalidArgument, op)
	}

	hwy.ProcessRange(r.Start, r.End, lanes,
		func(offset int) {
			lane(hwy.LoadFull(out[offset:], lanes),
				hwy.LoadFull(a[offset:], lanes),
				hwy.LoadFull(b[offset:], lanes))
		},
		func(offset, count int) {
			mask := hwy.TailMask(count, lanes)
			va := hwy.MaskLoad(mask, a[offset:offset+count])
			vb := hwy.MaskLoad(mask, b[offset:offset+count])
			lane(va, va, vb)
			hwy.MaskStore(mask, va, out[offset:offset+count])
		},
	)
	return nil
}

// dotChunk returns the sum of a[i]*b[i] over r.
//
// Each full lane is multiplied, summed horizontally, and added to the
// running total. The remainder goes through a masked register; inactive
// lanes are zero and add nothing.
func dotChunk[T hwy.Floats](a, b []T, r workerpool.Range, lanes int) (T, error) {
	if err := checkRange(r, min(len(a), len(b))); err != nil {
		return 0, err
	}

	var sum T
	prod := hwy.Zero[T](lanes)
	vb := hwy.Zero[T](lanes)

	hwy.ProcessRange(r.Start, r.End, lanes,
		func(offset int) {
			hwy.Mul(prod, hwy.LoadFull(a[offset:], lanes), hwy.LoadFull(b[offset:], lanes))
			sum += hwy.ReduceSum(prod)
		},
		func(offset, count int) {
			mask := hwy.TailMask(count, lanes)
			hwy.MaskLoadInto(prod, mask, a[offset:offset+count])
			hwy.MaskLoadInto(vb, mask, b[offset:offset+count])
			hwy.Mul(prod, prod, vb)
			sum += hwy.ReduceSum(prod)
		},
	)
	return sum, nil
}
