package modular

import (
	"math"
	"math/bits"
)

// Add returns (a + b) mod m. Operands must already be reduced into [0, m).
// The branch keeps the intermediate sum below m, so the result is exact for
// any positive m representable in an int64.
func Add(a, b, m int64) int64 {
	if b < m-a {
		return a + b
	}
	return a - (m - b)
}

// Sub returns (a - b) mod m. Operands must already be reduced into [0, m).
func Sub(a, b, m int64) int64 {
	if a >= b {
		return a - b
	}
	return a - b + m
}

// Neg returns (-a) mod m. a must already be reduced into [0, m).
func Neg(a, m int64) int64 {
	if a == 0 {
		return 0
	}
	return m - a
}

// Mul returns (a * b) mod m using a 128-bit intermediate product, exact for
// any positive m representable in an int64. Operands must already be reduced
// into [0, m).
func Mul(a, b, m int64) int64 {
	hi, lo := bits.Mul64(uint64(a), uint64(b))
	_, rem := bits.Div64(hi, lo, uint64(m))
	return int64(rem)
}

// Pow returns a^b mod m by square-and-multiply. a must already be reduced
// into [0, m). A negative exponent inverts a first and fails with
// ErrNotInvertible if gcd(a, m) != 1.
func Pow(a, b, m int64) (int64, error) {
	if b < 0 {
		inv, err := Inv(a, m)
		if err != nil {
			return 0, err
		}
		// -uint64(b) is |b| even for the minimum int64.
		return pow(inv, m, -uint64(b)), nil
	}
	return pow(a, m, uint64(b)), nil
}

func pow(a, m int64, e uint64) int64 {
	result := int64(1 % m)
	base := a
	for e > 0 {
		if e&1 == 1 {
			result = Mul(result, base, m)
		}
		e >>= 1
		if e > 0 {
			base = Mul(base, base, m)
		}
	}
	return result
}

// Inv returns the multiplicative inverse of a modulo m, or ErrNotInvertible
// if gcd(a, m) != 1. Unlike the mod-space primitives above it accepts any
// int64 a and reduces it itself. m must be positive.
func Inv(a, m int64) (int64, error) {
	if m <= 0 {
		panic("modular: modulus must be positive")
	}
	a %= m
	if a < 0 {
		a += m
	}
	r0, r1 := a, m
	s0, s1 := int64(1), int64(0)
	for r1 != 0 {
		q := r0 / r1
		r0, r1 = r1, r0-q*r1
		s0, s1 = s1, s0-q*s1
	}
	if r0 != 1 {
		return 0, ErrNotInvertible
	}
	if s0 < 0 {
		s0 += m
	}
	return s0 % m, nil
}

// Euclid runs the extended Euclidean algorithm on a and b, returning
// (g, x, y) with x*a + y*b = g = gcd(a, b) > 0. Both arguments must be
// non-zero and greater than math.MinInt64.
func Euclid(a, b int64) (g, x, y int64) {
	if a == 0 || b == 0 {
		panic("modular: Euclid requires non-zero arguments")
	}
	r0, r1 := abs(a), abs(b)
	s0, s1 := int64(1), int64(0)
	t0, t1 := int64(0), int64(1)
	for r1 != 0 {
		q := r0 / r1
		r0, r1 = r1, r0-q*r1
		s0, s1 = s1, s0-q*s1
		t0, t1 = t1, t0-q*t1
	}
	if a < 0 {
		s0 = -s0
	}
	if b < 0 {
		t0 = -t0
	}
	return r0, s0, t0
}

// GCD returns the greatest common divisor of a and b, always non-negative,
// with GCD(0, x) = |x|. It panics if either argument is math.MinInt64,
// whose magnitude does not fit in an int64.
func GCD(a, b int64) int64 {
	a, b = abs(a), abs(b)
	for b != 0 {
		a, b = b, a%b
	}
	return a
}

// LCM returns the least common multiple of a and b, always non-negative,
// with LCM(0, x) = 0. It panics if either argument is math.MinInt64 or the
// result does not fit in an int64.
func LCM(a, b int64) int64 {
	if a == 0 || b == 0 {
		return 0
	}
	a, b = abs(a), abs(b)
	l := a / GCD(a, b)
	hi, lo := bits.Mul64(uint64(l), uint64(b))
	if hi != 0 || lo > 1<<63-1 {
		panic("modular: lcm overflows int64")
	}
	return int64(lo)
}

func abs(x int64) int64 {
	if x == math.MinInt64 {
		panic("modular: magnitude of math.MinInt64 overflows int64")
	}
	if x < 0 {
		return -x
	}
	return x
}
