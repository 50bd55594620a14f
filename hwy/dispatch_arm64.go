//go:build arm64

package hwy

import "golang.org/x/sys/cpu"

func detectLevel() DispatchLevel {
	// ASIMD is part of the ARMv8-A base architecture, checked for consistency.
	if cpu.ARM64.HasASIMD {
		return DispatchNEON
	}
	return DispatchScalar
}
