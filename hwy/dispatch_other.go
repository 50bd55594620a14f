//go:build !amd64 && !arm64

package hwy

func detectLevel() DispatchLevel {
	// Other architectures (wasm, riscv64, ...) fall back to scalar mode.
	return DispatchScalar
}
