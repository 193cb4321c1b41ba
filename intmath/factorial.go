// Package intmath collects exact integer functions on int64: square root,
// factorials, binomial coefficients and Fibonacci numbers. Everything is
// exact or panics; nothing silently wraps.
package intmath

import "math/bits"

// Factorial returns n! for 0 <= n <= 20; 21! no longer fits in an int64 and
// panics.
func Factorial(n int64) int64 {
	if n < 0 || n > 20 {
		panic("intmath: Factorial argument out of [0, 20]")
	}
	r := int64(1)
	for i := int64(2); i <= n; i++ {
		r *= i
	}
	return r
}

// Binomial returns the binomial coefficient C(n, k), exactly. It panics when
// the result exceeds an int64; k outside [0, n] yields 0.
func Binomial(n, k int64) int64 {
	if n < 0 {
		panic("intmath: Binomial needs n >= 0")
	}
	if k < 0 || k > n {
		return 0
	}
	if k > n-k {
		k = n - k
	}
	// The running value after step i is C(n-k+i, i), so it only grows
	// towards the result: a 64-bit overflow along the way means the result
	// itself does not fit.
	r := uint64(1)
	for i := uint64(1); i <= uint64(k); i++ {
		hi, lo := bits.Mul64(r, uint64(n)-uint64(k)+i)
		if hi >= i {
			panic("intmath: Binomial overflows int64")
		}
		r, _ = bits.Div64(hi, lo, i)
		if r > 1<<63-1 {
			panic("intmath: Binomial overflows int64")
		}
	}
	return int64(r)
}
