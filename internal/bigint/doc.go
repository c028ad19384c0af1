// Package bigint implements arbitrary-precision signed integer arithmetic
// over base-10^8 digit blocks, with an adaptive multiplication subsystem
// that selects between schoolbook, Karatsuba, and FFT convolution depending
// on operand size.
//
// Values are immutable: every operation returns a freshly normalized *Int
// and never mutates its operands. The fallible entry points (Parse, DivRem,
// ModPow) return typed errors; the operator-style methods (Add, Sub, Mul,
// Div, Mod) assume their preconditions hold and panic when they are
// violated, keeping the multiplication hot path free of per-call branching.
package bigint
