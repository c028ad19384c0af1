//go:build fftcheck

package bigint

import (
	"fmt"
	"math"
)

// assertNearInteger panics when a pre-rounding FFT coefficient strays
// further than fftRoundingEpsilon from an integer. A violation means the
// convolution left the double-precision exact range and the rounded
// product cannot be trusted; crashing here is preferable to returning a
// silently wrong result.
func assertNearInteger(re float64) {
	if math.Abs(re-math.Round(re)) > fftRoundingEpsilon {
		panic(fmt.Sprintf("bigint: FFT coefficient %g is not within %g of an integer", re, fftRoundingEpsilon))
	}
}
