package bigint

import "strings"

// Sign is the sign of an Int. The zero value is Positive; canonical zero is
// always Positive, so no negative zero exists.
type Sign uint8

// Sign values.
const (
	Positive Sign = iota
	Negative
)

// String returns "+" for Positive and "-" for Negative.
func (s Sign) String() string {
	if s == Negative {
		return "-"
	}
	return "+"
}

// xorSign combines two operand signs into a product or quotient sign.
func xorSign(a, b Sign) Sign {
	if a == b {
		return Positive
	}
	return Negative
}

// Int is an arbitrary-precision signed integer: a sign plus base-10^8 digit
// blocks stored least-significant first.
//
// Invariants held by every live value:
//   - every block is < Base;
//   - no leading (most-significant) zero block, except the single-block zero;
//   - zero is always Positive;
//   - the block slice is never empty.
//
// Int is immutable. Operations return new values and never alias their
// operands' block storage.
type Int struct {
	sign   Sign
	digits []uint32
}

// fromDigits builds an Int from a raw block slice, taking ownership of the
// slice and normalizing it: leading zero blocks are stripped down to one
// block, and the sign is forced Positive when the magnitude is zero. It
// never rejects input.
func fromDigits(sign Sign, digits []uint32) *Int {
	for len(digits) > 1 && digits[len(digits)-1] == 0 {
		digits = digits[:len(digits)-1]
	}
	if len(digits) == 0 {
		digits = []uint32{0}
	}
	if len(digits) == 1 && digits[0] == 0 {
		sign = Positive
	}
	return &Int{sign: sign, digits: digits}
}

// FromBlocks constructs an Int from an explicit base-10^8 block sequence,
// least-significant block first. The slice is copied and normalized; blocks
// must be < Base.
//
// Parameters:
//   - sign: The requested sign; forced to Positive if the magnitude is zero.
//   - blocks: The digit blocks, least-significant first.
//
// Returns:
//   - *Int: The normalized value.
func FromBlocks(sign Sign, blocks []uint32) *Int {
	digits := make([]uint32, len(blocks))
	copy(digits, blocks)
	return fromDigits(sign, digits)
}

// New constructs an Int from a native machine integer.
func New(n int64) *Int {
	if n == 0 {
		return Zero()
	}
	sign := Positive
	// Negate via unsigned magnitude so MinInt64 does not overflow.
	mag := uint64(n)
	if n < 0 {
		sign = Negative
		mag = -mag
	}
	digits := make([]uint32, 0, 3)
	for mag > 0 {
		digits = append(digits, uint32(mag%Base))
		mag /= Base
	}
	return &Int{sign: sign, digits: digits}
}

// Zero returns the canonical zero value.
func Zero() *Int { return &Int{sign: Positive, digits: []uint32{0}} }

// One returns the value 1.
func One() *Int { return &Int{sign: Positive, digits: []uint32{1}} }

// Two returns the value 2.
func Two() *Int { return &Int{sign: Positive, digits: []uint32{2}} }

// Parse converts a decimal string into an Int. The accepted form is an
// optional leading '-' followed by one or more decimal digits; anything
// else fails with a ParseError.
//
// Parameters:
//   - s: The decimal representation, e.g. "-123456789012345678901234567890".
//
// Returns:
//   - *Int: The parsed value.
//   - error: A ParseError if the input is malformed.
func Parse(s string) (*Int, error) {
	trimmed := strings.TrimSpace(s)
	sign := Positive
	if strings.HasPrefix(trimmed, "-") {
		sign = Negative
		trimmed = trimmed[1:]
	}
	if len(trimmed) == 0 {
		return nil, ParseError{Input: s, Reason: "empty digit sequence"}
	}
	for i := 0; i < len(trimmed); i++ {
		if trimmed[i] < '0' || trimmed[i] > '9' {
			return nil, ParseError{Input: s, Reason: "invalid character " + string(trimmed[i])}
		}
	}

	// Chunk into base-10^8 blocks from the least-significant digit upward.
	digits := make([]uint32, 0, (len(trimmed)+BaseWidth-1)/BaseWidth)
	for end := len(trimmed); end > 0; end -= BaseWidth {
		start := end - BaseWidth
		if start < 0 {
			start = 0
		}
		var block uint32
		for _, c := range []byte(trimmed[start:end]) {
			block = block*10 + uint32(c-'0')
		}
		digits = append(digits, block)
	}
	return fromDigits(sign, digits), nil
}

// MustParse is like Parse but panics on malformed input. It is intended for
// literals in tests and initialization code.
func MustParse(s string) *Int {
	x, err := Parse(s)
	if err != nil {
		panic(err)
	}
	return x
}

// String renders the value in decimal: a '-' prefix for negative values,
// the most-significant block without padding, and every remaining block
// zero-padded to BaseWidth digits.
func (x *Int) String() string {
	var b strings.Builder
	b.Grow(len(x.digits)*BaseWidth + 1)
	if x.sign == Negative {
		b.WriteByte('-')
	}
	writeBlock(&b, x.digits[len(x.digits)-1], false)
	for i := len(x.digits) - 2; i >= 0; i-- {
		writeBlock(&b, x.digits[i], true)
	}
	return b.String()
}

// writeBlock appends one block in decimal, zero-padded to BaseWidth when
// padded is set.
func writeBlock(b *strings.Builder, block uint32, padded bool) {
	var buf [BaseWidth]byte
	i := BaseWidth
	for block > 0 {
		i--
		buf[i] = byte('0' + block%10)
		block /= 10
	}
	if padded {
		for i > 0 {
			i--
			buf[i] = '0'
		}
	} else if i == BaseWidth {
		i--
		buf[i] = '0'
	}
	b.Write(buf[i:])
}

// Sign returns the sign of x. Zero reports Positive.
func (x *Int) Sign() Sign { return x.sign }

// IsZero reports whether x is zero.
func (x *Int) IsZero() bool {
	return len(x.digits) == 1 && x.digits[0] == 0
}

// IsOne reports whether x is exactly 1.
func (x *Int) IsOne() bool {
	return x.sign == Positive && len(x.digits) == 1 && x.digits[0] == 1
}

// IsNegative reports whether x is strictly negative.
func (x *Int) IsNegative() bool { return x.sign == Negative }

// IsOdd reports whether x is odd, from the parity of the least-significant
// block.
func (x *Int) IsOdd() bool { return x.digits[0]&1 == 1 }

// IsEven reports whether x is even.
func (x *Int) IsEven() bool { return x.digits[0]&1 == 0 }

// Size returns the number of decimal digits in the magnitude of x. Zero has
// size zero.
func (x *Int) Size() int {
	size := (len(x.digits) - 1) * BaseWidth
	for high := x.digits[len(x.digits)-1]; high > 0; high /= 10 {
		size++
	}
	return size
}

// BlockCount returns the number of digit blocks in the canonical
// representation of x. It determines which multiplier the dispatcher
// selects.
func (x *Int) BlockCount() int { return len(x.digits) }

// Blocks returns a copy of the digit blocks, least-significant first.
func (x *Int) Blocks() []uint32 {
	blocks := make([]uint32, len(x.digits))
	copy(blocks, x.digits)
	return blocks
}

// Abs returns the absolute value of x.
func (x *Int) Abs() *Int {
	if x.sign == Positive {
		return x
	}
	return &Int{sign: Positive, digits: x.digits}
}

// Neg returns -x. Negating zero returns zero.
func (x *Int) Neg() *Int {
	if x.IsZero() {
		return x
	}
	return &Int{sign: xorSign(x.sign, Negative), digits: x.digits}
}

// withSign returns x with the given sign, preserving the no-negative-zero
// invariant. Shares x's block storage; callers must not mutate it.
func (x *Int) withSign(sign Sign) *Int {
	if x.IsZero() {
		return x
	}
	return &Int{sign: sign, digits: x.digits}
}

// Cmp compares x and y, returning -1 if x < y, 0 if x == y, +1 if x > y.
func (x *Int) Cmp(y *Int) int {
	switch {
	case x.sign == Positive && y.sign == Negative:
		return 1
	case x.sign == Negative && y.sign == Positive:
		return -1
	case x.sign == Negative:
		return absCmp(y, x)
	default:
		return absCmp(x, y)
	}
}

// Equal reports whether x and y represent the same value.
func (x *Int) Equal(y *Int) bool { return x.Cmp(y) == 0 }

// Int64 converts x to a native integer. The second return value is false
// when x does not fit in an int64.
func (x *Int) Int64() (int64, bool) {
	var mag uint64
	for i := len(x.digits) - 1; i >= 0; i-- {
		if mag > (1<<63)/Base {
			return 0, false
		}
		mag = mag*Base + uint64(x.digits[i])
	}
	if x.sign == Negative {
		if mag > 1<<63 {
			return 0, false
		}
		return -int64(mag), true
	}
	if mag >= 1<<63 {
		return 0, false
	}
	return int64(mag), true
}
