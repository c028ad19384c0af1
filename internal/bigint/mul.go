package bigint

// mulFunc multiplies two magnitudes, ignoring signs, and returns a
// Positive-tagged product.
type mulFunc func(x, y *Int) *Int

// mulTier binds one multiplication algorithm to the largest operand block
// count it handles.
type mulTier struct {
	// maxBlocks is the inclusive upper bound on max(len(x), len(y)).
	maxBlocks int
	// name identifies the algorithm for instrumentation and tests.
	name string
	// mul is the magnitude multiplier.
	mul mulFunc
}

// mulTiers is the dispatch table, ordered by ascending size limit. The
// first tier whose limit covers the operand size wins. Expressing the
// fallback chain as a table keeps threshold retuning and per-tier testing
// away from the dispatch logic itself.
var mulTiers = []mulTier{
	{maxBlocks: schoolbookThreshold, name: "schoolbook", mul: mulSchoolbook},
	{maxBlocks: karatsubaThreshold, name: "karatsuba", mul: mulKaratsuba},
	{maxBlocks: fftMaxBlocks, name: "fft", mul: mulFFT},
}

// Mul returns x * y, selecting the multiplication algorithm by operand
// size: schoolbook convolution for small operands, Karatsuba in the middle
// range, FFT convolution above that. The result sign is the XOR of the
// operand signs.
//
// Mul panics with a SizeLimitError when either operand exceeds the FFT
// multiplier's supported ceiling (fftMaxBlocks blocks). That is a
// precondition violation rather than a data-dependent failure: no
// algorithm in this engine can produce an exact product at that size.
//
// Parameters:
//   - y: The second factor.
//
// Returns:
//   - *Int: The product x * y.
func (x *Int) Mul(y *Int) *Int {
	if x.IsZero() || y.IsZero() {
		return Zero()
	}
	n := len(x.digits)
	if len(y.digits) > n {
		n = len(y.digits)
	}
	for _, tier := range mulTiers {
		if n <= tier.maxBlocks {
			return tier.mul(x, y).withSign(xorSign(x.sign, y.sign))
		}
	}
	panic(SizeLimitError{Blocks: n, Limit: fftMaxBlocks})
}

// MulAlgorithm reports the name of the multiplier Mul would select for the
// given operands: "schoolbook", "karatsuba", or "fft". It returns "none"
// for the zero short-circuit and for operands beyond the supported
// ceiling. Intended for instrumentation; it performs no arithmetic.
func MulAlgorithm(x, y *Int) string {
	if x.IsZero() || y.IsZero() {
		return "none"
	}
	n := len(x.digits)
	if len(y.digits) > n {
		n = len(y.digits)
	}
	for _, tier := range mulTiers {
		if n <= tier.maxBlocks {
			return tier.name
		}
	}
	return "none"
}
