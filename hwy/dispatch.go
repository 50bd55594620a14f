package hwy

import (
	"os"
	"strconv"
	"sync"
	"unsafe"
)

// DispatchLevel represents the SIMD instruction set a Target describes.
type DispatchLevel int

const (
	// DispatchScalar indicates no SIMD, one element per step.
	DispatchScalar DispatchLevel = iota

	// DispatchSSE2 indicates SSE2 instructions (x86-64 baseline, 128-bit).
	DispatchSSE2

	// DispatchAVX2 indicates AVX2 instructions (256-bit SIMD).
	DispatchAVX2

	// DispatchAVX512 indicates AVX-512 instructions (512-bit SIMD).
	DispatchAVX512

	// DispatchNEON indicates ARM NEON instructions (128-bit SIMD).
	DispatchNEON
)

// String returns a human-readable name for the dispatch level.
func (d DispatchLevel) String() string {
	switch d {
	case DispatchScalar:
		return "scalar"
	case DispatchSSE2:
		return "sse2"
	case DispatchAVX2:
		return "avx2"
	case DispatchAVX512:
		return "avx512"
	case DispatchNEON:
		return "neon"
	default:
		return "unknown"
	}
}

// widthOf returns the register width in bytes of a dispatch level.
func widthOf(level DispatchLevel) int {
	switch level {
	case DispatchSSE2, DispatchNEON:
		return 16
	case DispatchAVX2:
		return 32
	case DispatchAVX512:
		return 64
	default:
		return 0
	}
}

// Target is an immutable description of the vector unit kernels run on.
type Target struct {
	Level DispatchLevel
	// Width is the register width in bytes, 0 for scalar.
	Width int
	Name  string
}

// NewTarget returns a Target for level. A positive width overrides the
// level's natural register width, which lets tests force a lane count.
func NewTarget(level DispatchLevel, width int) Target {
	if width <= 0 {
		width = widthOf(level)
	}
	if level == DispatchScalar {
		width = 0
	}
	return Target{Level: level, Width: width, Name: level.String()}
}

// ScalarTarget returns the target that processes one element per step.
func ScalarTarget() Target {
	return NewTarget(DispatchScalar, 0)
}

// currentTarget is resolved on first use and never changes afterwards.
// detectLevel is provided by dispatch_*.go.
var currentTarget = sync.OnceValue(func() Target {
	if NoSimdEnv() {
		return ScalarTarget()
	}
	return NewTarget(detectLevel(), 0)
})

// CurrentTarget returns the target detected for this process.
func CurrentTarget() Target {
	return currentTarget()
}

// CurrentLevel returns the SIMD instruction set being used.
func CurrentLevel() DispatchLevel {
	return currentTarget().Level
}

// CurrentWidth returns the SIMD register width in bytes.
// For example: 16 for SSE2/NEON, 32 for AVX2, 64 for AVX-512, 0 for scalar.
func CurrentWidth() int {
	return currentTarget().Width
}

// CurrentName returns a human-readable name for the current SIMD target.
func CurrentName() string {
	return currentTarget().Name
}

// NoSimdEnv checks if the HWY_NO_SIMD environment variable is set.
// When set, the scalar target is used regardless of CPU capabilities.
func NoSimdEnv() bool {
	val := os.Getenv("HWY_NO_SIMD")
	if val == "" {
		return false
	}
	// Any non-empty value is considered true unless it parses as false.
	if b, err := strconv.ParseBool(val); err == nil {
		return b
	}
	return true
}

// LanesFor returns the number of T elements processed per step on t.
// It is at least 1, so the scalar target degenerates to an element loop.
//
// For example, with AVX2 (32 bytes):
//   - float32: 32/4 = 8 lanes
//   - float64: 32/8 = 4 lanes
func LanesFor[T Floats](t Target) int {
	var dummy T
	return max(1, t.Width/int(unsafe.Sizeof(dummy)))
}

// MaxLanes returns the number of lanes for type T on the current target.
func MaxLanes[T Floats]() int {
	return LanesFor[T](currentTarget())
}
