package bigint

// DivRem returns the quotient and remainder of x divided by y, truncated
// toward zero: the quotient sign is the XOR of the operand signs and the
// remainder shares the dividend's sign (or is zero). This is the
// truncating convention, not a floored or Euclidean one.
//
// Parameters:
//   - y: The divisor.
//
// Returns:
//   - *Int: The quotient.
//   - *Int: The remainder, satisfying y*q + r == x.
//   - error: A DivisionByZeroError if y is zero.
func (x *Int) DivRem(y *Int) (*Int, *Int, error) {
	if y.IsZero() {
		return nil, nil, DivisionByZeroError{Op: "DivRem"}
	}
	q, r := x.divRem(y)
	return q, r, nil
}

// Div returns the truncated quotient x / y. It panics with a
// DivisionByZeroError when y is zero; use DivRem when the divisor is not
// known to be nonzero.
func (x *Int) Div(y *Int) *Int {
	if y.IsZero() {
		panic(DivisionByZeroError{Op: "Div"})
	}
	q, _ := x.divRem(y)
	return q
}

// Mod returns the remainder of x / y under the truncating convention. It
// panics with a DivisionByZeroError when y is zero.
func (x *Int) Mod(y *Int) *Int {
	if y.IsZero() {
		panic(DivisionByZeroError{Op: "Mod"})
	}
	_, r := x.divRem(y)
	return r
}

// divRem performs long division one block at a time, most-significant
// first. Each step appends the next dividend block to the running
// remainder and binary-searches the largest quotient digit q in [0, Base)
// with q*|y| <= remainder. The divisor must be nonzero.
func (x *Int) divRem(y *Int) (*Int, *Int) {
	if absCmp(x, y) < 0 {
		return Zero(), x
	}

	yAbs := y.Abs()
	quot := make([]uint32, len(x.digits))
	rem := Zero()

	for i := len(x.digits) - 1; i >= 0; i-- {
		rem = rem.mulBaseAdd(x.digits[i])

		// Binary search the quotient digit. q = 0 always satisfies the
		// bound, so the search window never underflows.
		lo, hi := uint32(0), uint32(Base-1)
		var q uint32
		for lo <= hi {
			mid := lo + (hi-lo)/2
			if yAbs.mulSmall(mid).Cmp(rem) <= 0 {
				q = mid
				lo = mid + 1
			} else {
				hi = mid - 1
			}
		}

		rem = rem.Sub(yAbs.mulSmall(q))
		quot[i] = q
	}

	return fromDigits(xorSign(x.sign, y.sign), quot), rem.withSign(x.sign)
}
