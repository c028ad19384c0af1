package bigint

import (
	"math"
	"sync"
)

// This file implements convolution-via-FFT multiplication for operands
// above the Karatsuba ceiling. The transform works over complex128; its
// exactness rests on the precision contract documented in constants.go:
// every convolution column sum must stay within the double-precision
// exact-integer range (2^53), which the base-10^4 sub-digit split and the
// fftMaxBlocks ceiling together guarantee.

// fftScratchPool pools the complex coefficient buffers so a sequence of
// multiplications of growing size reuses one allocation instead of
// allocating two transform-length slices per call. Each call owns its
// buffer exclusively for the duration of the multiplication; buffers are
// resized, never aliased.
var fftScratchPool = sync.Pool{
	New: func() any {
		buf := make([]complex128, 0, 2048)
		return &buf
	},
}

// mulFFT multiplies the magnitudes of x and y via forward transforms,
// pointwise product, and an inverse transform. Signs are ignored; the
// result is Positive.
//
// Zero operands must not reach this function: a degenerate zero-length
// transform is undefined. The dispatcher short-circuits zeros before any
// multiplier runs.
func mulFFT(x, y *Int) *Int {
	// Two base-10^4 coefficients per block; pad to the next power of two
	// that holds the full product.
	aCoeffs := len(x.digits) * 2
	bCoeffs := len(y.digits) * 2
	n := fftLen(aCoeffs, bCoeffs)

	bufp := fftScratchPool.Get().(*[]complex128)
	buf := *bufp
	if cap(buf) < 2*n {
		buf = make([]complex128, 2*n)
	} else {
		buf = buf[:2*n]
	}
	left, right := buf[:n], buf[n:]

	coefficientsFromBlocks(x, left)
	coefficientsFromBlocks(y, right)

	fftTransform(left, false)
	fftTransform(right, false)
	for i := range left {
		left[i] *= right[i]
	}
	fftTransform(left, true)

	result := blocksFromCoefficients(left)

	*bufp = buf
	fftScratchPool.Put(bufp)
	return result
}

// fftLen returns the smallest power of two at least aCoeffs+bCoeffs, the
// coefficient count of the product polynomial.
func fftLen(aCoeffs, bCoeffs int) int {
	n := 1
	for n < aCoeffs+bCoeffs {
		n <<= 1
	}
	return n
}

// coefficientsFromBlocks fills dst with the sub-digit coefficients of x:
// each base-10^8 block is split into its low and high base-10^4 halves,
// occupying two adjacent coefficient slots. Remaining slots are zeroed.
func coefficientsFromBlocks(x *Int, dst []complex128) {
	clear(dst)
	for i, d := range x.digits {
		lo := d % splitBase
		hi := d / splitBase
		dst[2*i] = complex(float64(lo), 0)
		dst[2*i+1] = complex(float64(hi), 0)
	}
}

// fftTransform runs an iterative in-place Cooley-Tukey transform over
// data, whose length must be a power of two: a bit-reversal permutation
// followed by butterfly combination at doubling spans. The inverse
// transform conjugates the rotation and divides by the length.
func fftTransform(data []complex128, inverse bool) {
	n := len(data)

	// Bit-reversal permutation.
	j := 0
	for i := 1; i < n; i++ {
		bit := n >> 1
		for j&bit != 0 {
			j ^= bit
			bit >>= 1
		}
		j ^= bit
		if i < j {
			data[i], data[j] = data[j], data[i]
		}
	}

	// Butterflies.
	for span := 2; span <= n; span <<= 1 {
		half := span >> 1
		angle := -2 * math.Pi / float64(span)
		if inverse {
			angle = -angle
		}
		wSpan := complex(math.Cos(angle), math.Sin(angle))
		for start := 0; start < n; start += span {
			w := complex(1, 0)
			for k := 0; k < half; k++ {
				u := data[start+k]
				v := data[start+k+half] * w
				data[start+k] = u + v
				data[start+k+half] = u - v
				w *= wSpan
			}
		}
	}

	if inverse {
		scale := complex(1/float64(n), 0)
		for i := range data {
			data[i] *= scale
		}
	}
}

// blocksFromCoefficients rounds the real component of each inverse-
// transform coefficient to the nearest integer (ties away from zero via
// the +0.5 floor), then merges adjacent sub-digit pairs back into
// base-10^8 blocks with carry propagation.
func blocksFromCoefficients(data []complex128) *Int {
	digits := make([]uint32, 0, len(data)/2+1)
	var carry uint64
	for i := 0; i < len(data); i += 2 {
		lo := roundCoefficient(real(data[i]))
		var hi uint64
		if i+1 < len(data) {
			hi = roundCoefficient(real(data[i+1]))
		}
		combined := lo + hi*splitBase + carry
		digits = append(digits, uint32(combined%Base))
		carry = combined / Base
	}
	for carry > 0 {
		digits = append(digits, uint32(carry%Base))
		carry /= Base
	}
	return fromDigits(Positive, digits)
}

// roundCoefficient rounds a recovered convolution coefficient to the
// nearest non-negative integer. Floating-point noise can leave an exact
// zero fractionally below zero; those are clamped rather than wrapped.
func roundCoefficient(re float64) uint64 {
	assertNearInteger(re)
	v := math.Floor(re + 0.5)
	if v <= 0 {
		return 0
	}
	return uint64(v)
}
