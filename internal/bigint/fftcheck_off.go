//go:build !fftcheck

package bigint

// assertNearInteger is a no-op in normal builds. Build with -tags fftcheck
// to verify that every pre-rounding FFT coefficient lies within
// fftRoundingEpsilon of an integer.
func assertNearInteger(float64) {}
