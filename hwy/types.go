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

// Package hwy provides lane-width aware primitives for processing float
// slices a fixed number of elements at a time.
//
// The lane width is resolved once per process from the CPU features reported
// by golang.org/x/sys/cpu and exposed as an immutable Target. Kernels take the
// lane count explicitly, so a Target can be forced for testing:
//
//	lanes := hwy.MaxLanes[float64]()
//	hwy.ProcessRange(0, len(a), lanes,
//	    func(offset int) {
//	        hwy.Add(hwy.LoadFull(out[offset:], lanes),
//	            hwy.LoadFull(a[offset:], lanes),
//	            hwy.LoadFull(b[offset:], lanes))
//	    },
//	    func(offset, count int) {
//	        mask := hwy.TailMask(count, lanes)
//	        va := hwy.MaskLoad(mask, a[offset:])
//	        vb := hwy.MaskLoad(mask, b[offset:])
//	        hwy.Add(va, va, vb)
//	        hwy.MaskStore(mask, va, out[offset:])
//	    },
//	)
package hwy

// Floats is a constraint for floating-point types.
type Floats interface {
	~float32 | ~float64
}

// Vec is a lane register. A full register loaded with LoadFull is a view
// of the source slice, so storing into it writes through to that slice.
// Registers produced by Zero or MaskLoad own their storage.
type Vec[T Floats] struct {
	data []T
}

// NumLanes returns the number of lanes in this vector.
func (v Vec[T]) NumLanes() int {
	return len(v.data)
}

// Data returns the lanes of the vector. Used by tests.
func (v Vec[T]) Data() []T {
	return v.data
}

// Mask selects the active lanes of a register. Only a prefix of lanes can be
// active, which is all the tail handling needs.
type Mask struct {
	active int
	lanes  int
}

// NumLanes returns the number of lanes covered by the mask.
func (m Mask) NumLanes() int {
	return m.lanes
}

// CountTrue returns the number of active lanes.
func (m Mask) CountTrue() int {
	return m.active
}

// AllTrue returns true if every lane is active.
func (m Mask) AllTrue() bool {
	return m.active == m.lanes
}

// GetBit returns whether lane i is active.
func (m Mask) GetBit(i int) bool {
	return i >= 0 && i < m.active
}
