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

// TailMask creates a mask with the first count of lanes lanes active.
// This is useful for handling the tail (remainder) of a range
// when its size is not a multiple of the vector width.
//
// Example:
//
//	remaining := (end - start) % lanes
//	if remaining > 0 {
//	    mask := hwy.TailMask(remaining, lanes)
//	    v := hwy.MaskLoad(mask, data[end-remaining:])
//	    // ... process tail
//	    hwy.MaskStore(mask, v, output[end-remaining:])
//	}
func TailMask(count, lanes int) Mask {
	if lanes < 1 {
		lanes = 1
	}
	count = min(max(count, 0), lanes)
	return Mask{active: count, lanes: lanes}
}

// ProcessRange walks the half-open range [start, end) in steps of lanes.
//
// It calls:
//   - fullFn(offset) for each full vector (offset is the starting index)
//   - tailFn(offset, count) once for the remainder if (end-start) is not a
//     multiple of lanes; the remainder is the whole range when end-start < lanes
//
// Offsets are absolute indices, and offset+lanes (or offset+count for the
// tail) never exceeds end.
func ProcessRange(start, end, lanes int, fullFn func(offset int), tailFn func(offset, count int)) {
	if lanes < 1 {
		lanes = 1
	}
	size := end - start
	if size <= 0 {
		return
	}

	fullEnd := start + size/lanes*lanes
	for offset := start; offset < fullEnd; offset += lanes {
		fullFn(offset)
	}

	if remaining := end - fullEnd; remaining > 0 {
		tailFn(fullEnd, remaining)
	}
}
