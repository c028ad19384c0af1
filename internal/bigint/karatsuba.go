package bigint

// mulKaratsuba multiplies the magnitudes of x and y by recursive
// divide-and-conquer, trading one multiplication of size n for three of
// size n/2 plus O(n) block additions. Signs are ignored; the result is
// Positive.
func mulKaratsuba(x, y *Int) *Int {
	return karatsuba(x.Abs(), y.Abs())
}

// karatsuba is the recursive worker. Operands are non-negative.
//
// Split each operand at block position m = n/2 into (high, low), then
//
//	x*y = ac*Base^(2m) + ((xh+xl)*(yh+yl) - ac - bd)*Base^m + bd
//
// with ac = xh*yh and bd = xl*yl. Recursion depth is O(log n); the floor
// delegates to the schoolbook convolution.
func karatsuba(x, y *Int) *Int {
	n := len(x.digits)
	if len(y.digits) > n {
		n = len(y.digits)
	}
	if n <= schoolbookThreshold {
		return mulSchoolbook(x, y)
	}

	m := n / 2
	xh, xl := splitAt(x, m)
	yh, yl := splitAt(y, m)

	ac := karatsuba(xh, yh)
	bd := karatsuba(xl, yl)
	cross := karatsuba(xh.Add(xl), yh.Add(yl))
	mid := cross.Sub(ac).Sub(bd)

	return shiftBlocks(ac, 2*m).Add(shiftBlocks(mid, m)).Add(bd)
}

// splitAt splits x at block position m into its high (blocks m and above)
// and low (blocks below m) halves. Operands shorter than m have a zero
// high half.
func splitAt(x *Int, m int) (hi, lo *Int) {
	if len(x.digits) <= m {
		return Zero(), x
	}
	hiDigits := make([]uint32, len(x.digits)-m)
	copy(hiDigits, x.digits[m:])
	loDigits := make([]uint32, m)
	copy(loDigits, x.digits[:m])
	return fromDigits(Positive, hiDigits), fromDigits(Positive, loDigits)
}
