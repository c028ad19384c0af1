package bigint

// ─────────────────────────────────────────────────────────────────────────────
// Radix Constants
// ─────────────────────────────────────────────────────────────────────────────

const (
	// Base is the radix of a single digit block. Every block satisfies
	// block < Base, and blocks are stored least-significant first.
	//
	// A power-of-ten radix keeps decimal parsing and rendering a pure
	// chunking operation, with no division needed at the string boundary.
	Base = 100_000_000

	// BaseWidth is the number of decimal digits represented by one block
	// (Base = 10^BaseWidth). Non-leading blocks are rendered zero-padded
	// to exactly this width.
	BaseWidth = 8
)

// ─────────────────────────────────────────────────────────────────────────────
// Multiplication Tuning Constants
// ─────────────────────────────────────────────────────────────────────────────
//
// These thresholds drive the dispatcher in mul.go. Each multiplier must be
// independently correct for every size it can be invoked with, including
// sizes exactly at a boundary, so the values below are pure performance
// knobs: retuning them never affects results.

const (
	// schoolbookThreshold is the block count at or below which the
	// quadratic schoolbook convolution is used. It also serves as the
	// recursion floor for Karatsuba.
	schoolbookThreshold = 32

	// schoolbookFlushRows is the number of convolution rows the
	// schoolbook multiplier accumulates before propagating carries.
	// Each partial product is below (Base-1)^2 < 10^16 and a flushed
	// column restarts below Base, so between flushes a column stays
	// under Base + schoolbookFlushRows*10^16 ~= 1.03*10^19, inside the
	// uint64 ceiling of ~1.84*10^19. Without the flush, forcing
	// schoolbook past ~1844 blocks would overflow columns silently.
	schoolbookFlushRows = 1024

	// karatsubaThreshold is the block count at or below which the
	// divide-and-conquer Karatsuba multiplier is used. Above it the FFT
	// multiplier wins despite its larger constant factors.
	karatsubaThreshold = 256

	// fftMaxBlocks is the hard ceiling for the FFT multiplier. Beyond it
	// convolution column sums approach the double-precision exact-integer
	// range (2^53) and rounding the recovered coefficients is no longer
	// guaranteed to be exact. Multiplying operands above this size panics.
	fftMaxBlocks = 1 << 20

	// splitBase is the sub-digit radix used by the FFT multiplier. Each
	// base-10^8 block is split into two base-10^4 sub-digits before
	// transforming, bounding each coefficient by splitBase-1 and each
	// pairwise product by ~10^8. With at most 2*fftMaxBlocks coefficients
	// per operand, every convolution sum stays below 2^53 and rounds
	// exactly. This constant is tied to fftMaxBlocks: raising one without
	// lowering the other breaks the precision contract.
	splitBase = 10_000

	// fftRoundingEpsilon is the maximum distance from an integer tolerated
	// for a pre-rounding FFT coefficient in fftcheck builds. Well inside
	// the ceiling the observed error is orders of magnitude smaller; a
	// violation indicates the precision contract has been broken.
	fftRoundingEpsilon = 0.1
)
