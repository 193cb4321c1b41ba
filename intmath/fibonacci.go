package intmath

import (
	"math/bits"

	"github.com/Krox/math/modular"
)

// Fibonacci returns F(n) by fast doubling, using F(-n) = (-1)^(n+1) F(n)
// for negative indices. |n| must be at most 92; F(93) overflows an int64.
func Fibonacci(n int64) int64 {
	if n < -92 || n > 92 {
		panic("intmath: Fibonacci argument out of [-92, 92]")
	}
	neg := false
	if n < 0 {
		neg = n&1 == 0
		n = -n
	}
	a, b := int64(0), int64(1) // F(k), F(k+1) for the processed prefix k
	for i := bits.Len64(uint64(n)) - 1; i >= 0; i-- {
		// For n == 92 the final b = F(93) wraps; only a is ever returned.
		c := a * (2*b - a)
		d := a*a + b*b
		if n>>uint(i)&1 == 1 {
			a, b = d, c+d
		} else {
			a, b = c, d
		}
	}
	if neg {
		return -a
	}
	return a
}

// FibonacciMod returns F(n) mod m for any int64 index, m >= 1. The result
// is the canonical representative in [0, m).
func FibonacciMod(n, m int64) int64 {
	if m <= 0 {
		panic("intmath: modulus must be positive")
	}
	neg := false
	k := uint64(n)
	if n < 0 {
		neg = n&1 == 0
		k = -k
	}
	a, b := int64(0), int64(1%m)
	for i := bits.Len64(k) - 1; i >= 0; i-- {
		t := modular.Sub(modular.Add(b, b, m), a, m)
		c := modular.Mul(a, t, m)
		d := modular.Add(modular.Mul(a, a, m), modular.Mul(b, b, m), m)
		if k>>uint(i)&1 == 1 {
			a, b = d, modular.Add(c, d, m)
		} else {
			a, b = c, d
		}
	}
	if neg {
		return modular.Neg(a, m)
	}
	return a
}
