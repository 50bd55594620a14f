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
)

// Op selects the elementwise binary operation.
type Op int

const (
	// OpAdd computes a[i] + b[i].
	OpAdd Op = iota + 1
	// OpSub computes a[i] - b[i].
	OpSub
	// OpMul computes a[i] * b[i].
	OpMul
)

func (op Op) String() string {
	switch op {
	case OpAdd:
		return "add"
	case OpSub:
		return "sub"
	case OpMul:
		return "mul"
	default:
		return fmt.Sprintf("Op(%d)", int(op))
	}
}

// Valid reports whether op is a recognized operation.
func (op Op) Valid() bool {
	return op == OpAdd || op == OpSub || op == OpMul
}

// laneFunc returns the register operation for op, or nil if op is not valid.
func laneFunc[T hwy.Floats](op Op) func(dst, a, b hwy.Vec[T]) {
	switch op {
	case OpAdd:
		return hwy.Add[T]
	case OpSub:
		return hwy.Sub[T]
	case OpMul:
		return hwy.Mul[T]
	default:
		return nil
	}
}
