package bigint

// This file implements magnitude-level block arithmetic and the signed
// add/subtract combinators built on top of it.

// absCmp compares the magnitudes of x and y: block counts first, then
// blocks from most to least significant. Total order on magnitudes.
func absCmp(x, y *Int) int {
	if len(x.digits) != len(y.digits) {
		if len(x.digits) < len(y.digits) {
			return -1
		}
		return 1
	}
	for i := len(x.digits) - 1; i >= 0; i-- {
		if x.digits[i] != y.digits[i] {
			if x.digits[i] < y.digits[i] {
				return -1
			}
			return 1
		}
	}
	return 0
}

// absAdd adds the magnitudes of x and y blockwise with radix carry
// propagation. The result is always Positive; the caller assigns the sign.
func absAdd(x, y *Int) *Int {
	n := len(x.digits)
	if len(y.digits) > n {
		n = len(y.digits)
	}
	digits := make([]uint32, 0, n+1)
	var carry uint64
	for i := 0; i < n; i++ {
		sum := carry
		if i < len(x.digits) {
			sum += uint64(x.digits[i])
		}
		if i < len(y.digits) {
			sum += uint64(y.digits[i])
		}
		digits = append(digits, uint32(sum%Base))
		carry = sum / Base
	}
	if carry > 0 {
		digits = append(digits, uint32(carry))
	}
	return &Int{sign: Positive, digits: digits}
}

// absSub subtracts the magnitude of y from the magnitude of x with borrow
// propagation. Precondition: |x| >= |y|, enforced by callers via absCmp.
// The result is always Positive.
func absSub(x, y *Int) *Int {
	digits := make([]uint32, 0, len(x.digits))
	var borrow uint32
	for i := 0; i < len(x.digits); i++ {
		a := int64(x.digits[i]) - int64(borrow)
		var b int64
		if i < len(y.digits) {
			b = int64(y.digits[i])
		}
		if a >= b {
			digits = append(digits, uint32(a-b))
			borrow = 0
		} else {
			digits = append(digits, uint32(a+Base-b))
			borrow = 1
		}
	}
	return fromDigits(Positive, digits)
}

// Add returns x + y.
func (x *Int) Add(y *Int) *Int {
	if x.sign == y.sign {
		return absAdd(x, y).withSign(x.sign)
	}
	// Differing signs reduce to a subtraction of magnitudes.
	return x.Sub(y.Neg())
}

// Sub returns x - y.
func (x *Int) Sub(y *Int) *Int {
	switch {
	case x.sign == Positive && y.sign == Negative:
		return absAdd(x, y)
	case x.sign == Negative && y.sign == Positive:
		return absAdd(x, y).withSign(Negative)
	}
	// Same sign: subtract the smaller magnitude from the larger; the sign
	// follows the operand whose magnitude dominates.
	if absCmp(x, y) >= 0 {
		return absSub(x, y).withSign(x.sign)
	}
	return absSub(y, x).withSign(xorSign(x.sign, Negative))
}

// mulSmall returns x * k for a single block factor k < Base, preserving
// x's sign.
func (x *Int) mulSmall(k uint32) *Int {
	if k == 0 || x.IsZero() {
		return Zero()
	}
	digits := make([]uint32, 0, len(x.digits)+1)
	var carry uint64
	for _, d := range x.digits {
		t := uint64(d)*uint64(k) + carry
		digits = append(digits, uint32(t%Base))
		carry = t / Base
	}
	if carry > 0 {
		digits = append(digits, uint32(carry))
	}
	return &Int{sign: x.sign, digits: digits}
}

// divSmall returns the quotient x / k for a single positive block divisor,
// truncated toward zero. Panics if k is zero.
func (x *Int) divSmall(k uint32) *Int {
	if k == 0 {
		panic(DivisionByZeroError{Op: "divSmall"})
	}
	digits := make([]uint32, len(x.digits))
	var rem uint64
	for i := len(x.digits) - 1; i >= 0; i-- {
		cur := rem*Base + uint64(x.digits[i])
		digits[i] = uint32(cur / uint64(k))
		rem = cur % uint64(k)
	}
	return fromDigits(x.sign, digits)
}

// mulBaseAdd returns x * Base + d: the running-remainder step of long
// division, prepending d as a new least-significant block.
func (x *Int) mulBaseAdd(d uint32) *Int {
	if x.IsZero() {
		return &Int{sign: Positive, digits: []uint32{d}}
	}
	digits := make([]uint32, 0, len(x.digits)+1)
	digits = append(digits, d)
	digits = append(digits, x.digits...)
	return &Int{sign: x.sign, digits: digits}
}

// shiftBlocks returns x * Base^k by prepending k zero blocks. This is the
// block-level shift used to recombine Karatsuba sub-products; it is not a
// bitwise operation.
func shiftBlocks(x *Int, k int) *Int {
	if x.IsZero() || k == 0 {
		return x
	}
	digits := make([]uint32, k, k+len(x.digits))
	digits = append(digits, x.digits...)
	return &Int{sign: x.sign, digits: digits}
}

// MulPow10 returns x * 10^k. Shifts whole blocks first, then multiplies the
// remaining sub-block factor through with carry.
func (x *Int) MulPow10(k int) *Int {
	if x.IsZero() {
		return x
	}
	blockShift := k / BaseWidth
	digitShift := k % BaseWidth

	digits := make([]uint32, blockShift, blockShift+len(x.digits)+1)
	digits = append(digits, x.digits...)
	if digitShift == 0 {
		return fromDigits(x.sign, digits)
	}

	mul := pow10(digitShift)
	var carry uint64
	for i, d := range digits {
		t := uint64(d)*mul + carry
		digits[i] = uint32(t % Base)
		carry = t / Base
	}
	if carry > 0 {
		digits = append(digits, uint32(carry))
	}
	return fromDigits(x.sign, digits)
}

// DivRemPow10 returns the quotient and remainder of x divided by 10^k. The
// quotient is truncated toward zero and both results carry x's sign where
// nonzero. This is the trailing-zero normalization primitive consumed by
// the decimal-scaled wrapper type.
func (x *Int) DivRemPow10(k int) (*Int, *Int) {
	if x.IsZero() {
		return Zero(), Zero()
	}
	blockShift := k / BaseWidth
	digitShift := k % BaseWidth

	if blockShift >= len(x.digits) {
		return Zero(), x
	}

	qDigits := make([]uint32, len(x.digits)-blockShift)
	copy(qDigits, x.digits[blockShift:])
	var remHigh uint64
	if digitShift != 0 {
		div := pow10(digitShift)
		for i := len(qDigits) - 1; i >= 0; i-- {
			cur := remHigh*Base + uint64(qDigits[i])
			qDigits[i] = uint32(cur / div)
			remHigh = cur % div
		}
	}
	q := fromDigits(x.sign, qDigits)

	// The remainder is the dropped low blocks plus the sub-block remainder
	// of the quotient scan sitting one block above them:
	//   x mod 10^k = remHigh * Base^blockShift + (x mod Base^blockShift).
	rDigits := make([]uint32, blockShift, blockShift+1)
	copy(rDigits, x.digits[:blockShift])
	if remHigh > 0 {
		rDigits = append(rDigits, uint32(remHigh))
	}
	return q, fromDigits(x.sign, rDigits)
}

// pow10 returns 10^k for 0 <= k < BaseWidth.
func pow10(k int) uint64 {
	p := uint64(1)
	for ; k > 0; k-- {
		p *= 10
	}
	return p
}
