package bigint

// Pow returns x raised to the given native exponent, by binary
// square-and-multiply. Pow(x, 0) is 1 for every x.
func (x *Int) Pow(exp uint64) *Int {
	if exp == 0 {
		return One()
	}
	base := x
	result := One()
	for exp > 0 {
		if exp&1 == 1 {
			result = result.Mul(base)
		}
		exp >>= 1
		if exp > 0 {
			base = base.Mul(base)
		}
	}
	return result
}

// ModPow returns x^exp mod m by square-and-multiply, reducing modulo m
// after every multiplication so intermediate operands never grow beyond
// roughly twice the modulus size. The exponent's binary expansion is
// obtained by repeated parity tests and halving of the arbitrary-precision
// exponent itself.
//
// The exponent must be non-negative; ModPow panics otherwise. The result
// carries the sign produced by the truncating remainder convention, so a
// negative base can yield a negative residue.
//
// Parameters:
//   - exp: The non-negative exponent.
//   - m: The modulus.
//
// Returns:
//   - *Int: x^exp mod m.
//   - error: A DivisionByZeroError if m is zero.
func (x *Int) ModPow(exp, m *Int) (*Int, error) {
	if m.IsZero() {
		return nil, DivisionByZeroError{Op: "ModPow"}
	}
	if exp.IsNegative() {
		panic("bigint: negative exponent in ModPow")
	}
	if exp.IsZero() {
		return One(), nil
	}

	base := x.Mod(m)
	result := One()
	e := exp
	for !e.IsZero() {
		if e.IsOdd() {
			result = result.Mul(base).Mod(m)
		}
		base = base.Mul(base).Mod(m)
		e = e.divSmall(2)
	}
	return result, nil
}

// GCD returns the greatest common divisor of |x| and |y| by the Euclidean
// algorithm. GCD(0, 0) is 0.
func (x *Int) GCD(y *Int) *Int {
	a, b := x.Abs(), y.Abs()
	for !b.IsZero() {
		_, r := a.divRem(b)
		a, b = b, r
	}
	return a
}

// LCM returns the least common multiple of |x| and |y|, derived as
// (|x| / gcd(x, y)) * |y|. Either operand being zero yields zero.
func (x *Int) LCM(y *Int) *Int {
	if x.IsZero() || y.IsZero() {
		return Zero()
	}
	return x.Abs().Div(x.GCD(y)).Mul(y.Abs())
}
