package bigint

// mulSchoolbook multiplies the magnitudes of x and y by direct quadratic
// convolution: every partial product x[i]*y[j] is accumulated into a
// uint64 column indexed by i+j, then a carry-propagation pass converts
// the columns into canonical base-10^8 blocks.
//
// Each partial product is below (Base-1)^2 < 10^16, so a column can
// absorb only a bounded number of them before the uint64 accumulator
// would overflow. The dispatcher never sends more than
// schoolbookThreshold rows here, but MulWith and the Karatsuba floor
// may invoke it at any operand size, so carries are flushed every
// schoolbookFlushRows rows to keep every column inside uint64 range
// (see constants.go for the bound). Signs are ignored; the result is
// Positive.
//
// This is the correctness reference for the cross-algorithm agreement
// tests: every other multiplier must agree with it on all inputs.
func mulSchoolbook(x, y *Int) *Int {
	if x.IsZero() || y.IsZero() {
		return Zero()
	}

	acc := make([]uint64, len(x.digits)+len(y.digits))
	for i, xd := range x.digits {
		if xd != 0 {
			xv := uint64(xd)
			for j, yd := range y.digits {
				acc[i+j] += xv * uint64(yd)
			}
		}
		if (i+1)%schoolbookFlushRows == 0 {
			flushColumns(acc)
		}
	}

	digits := make([]uint32, 0, len(acc)+1)
	var carry uint64
	for _, column := range acc {
		total := column + carry
		digits = append(digits, uint32(total%Base))
		carry = total / Base
	}
	for carry > 0 {
		digits = append(digits, uint32(carry%Base))
		carry /= Base
	}
	return fromDigits(Positive, digits)
}

// flushColumns propagates carries in place, reducing every column below
// Base so further accumulation cannot overflow. The columns hold a
// partial sum of the final product, which fits in len(acc) blocks, so
// no carry leaves the top column.
func flushColumns(acc []uint64) {
	var carry uint64
	for k := range acc {
		total := acc[k] + carry
		acc[k] = total % Base
		carry = total / Base
	}
}
