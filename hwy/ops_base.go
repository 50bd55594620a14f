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

package hwy

// This file provides the pure Go lane operations. Each operation works on
// whole registers; lane i of the result depends only on lane i of the inputs,
// so results never depend on the lane count.

// LoadFull returns a register viewing exactly lanes elements of src.
// The caller guarantees len(src) >= lanes.
func LoadFull[T Floats](src []T, lanes int) Vec[T] {
	return Vec[T]{data: src[:lanes:lanes]}
}

// StoreFull copies all lanes of v into dst.
func StoreFull[T Floats](v Vec[T], dst []T) {
	copy(dst[:len(v.data)], v.data)
}

// Zero creates a register with all lanes set to zero.
func Zero[T Floats](lanes int) Vec[T] {
	return Vec[T]{data: make([]T, lanes)}
}

// Add performs element-wise addition: dst = a + b.
// dst may alias a or b.
func Add[T Floats](dst, a, b Vec[T]) {
	d, x, y := dst.data, a.data, b.data
	for i := range d {
		d[i] = x[i] + y[i]
	}
}

// Sub performs element-wise subtraction: dst = a - b.
func Sub[T Floats](dst, a, b Vec[T]) {
	d, x, y := dst.data, a.data, b.data
	for i := range d {
		d[i] = x[i] - y[i]
	}
}

// Mul performs element-wise multiplication: dst = a * b.
func Mul[T Floats](dst, a, b Vec[T]) {
	d, x, y := dst.data, a.data, b.data
	for i := range d {
		d[i] = x[i] * y[i]
	}
}

// ReduceSum sums all lanes, in lane order.
func ReduceSum[T Floats](v Vec[T]) T {
	var sum T
	for _, x := range v.data {
		sum += x
	}
	return sum
}

// MaskLoad loads the active lanes of mask from src into a new register.
// Inactive lanes are zero and src is never read past the active lanes.
func MaskLoad[T Floats](mask Mask, src []T) Vec[T] {
	v := Zero[T](mask.lanes)
	copy(v.data[:mask.active], src[:mask.active])
	return v
}

// MaskLoadInto is MaskLoad into an existing register, which avoids
// allocating a register per tail.
func MaskLoadInto[T Floats](dst Vec[T], mask Mask, src []T) {
	n := copy(dst.data[:mask.active], src[:mask.active])
	clear(dst.data[n:])
}

// MaskStore stores the active lanes of v into dst. dst is never written
// past the active lanes.
func MaskStore[T Floats](mask Mask, v Vec[T], dst []T) {
	copy(dst[:mask.active], v.data[:mask.active])
}
