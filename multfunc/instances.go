package multfunc

import (
	"github.com/Krox/math/factor"
	"github.com/Krox/math/modular"
)

// DivisorCount is d(n), the number of positive divisors.
func DivisorCount(fz *factor.Factorizer) *Func {
	return New(fz, func(p, e int64) int64 { return e + 1 })
}

// DivisorSum is sigma(n), the sum of all positive divisors.
func DivisorSum(fz *factor.Factorizer) *Func {
	return New(fz, func(p, e int64) int64 {
		s, pw := int64(1), int64(1)
		for i := int64(0); i < e; i++ {
			pw *= p
			s += pw
		}
		return s
	})
}

// DivisorSumSquares is sigma_2(n), the sum of squared divisors.
func DivisorSumSquares(fz *factor.Factorizer) *Func {
	return New(fz, func(p, e int64) int64 {
		s, pw := int64(1), int64(1)
		for i := int64(0); i < e; i++ {
			pw *= p * p
			s += pw
		}
		return s
	})
}

// Totient is Euler's phi, the number of units modulo n.
func Totient(fz *factor.Factorizer) *Func {
	return New(fz, func(p, e int64) int64 {
		r := p - 1
		for i := int64(1); i < e; i++ {
			r *= p
		}
		return r
	})
}

// Carmichael is lambda(n), the exponent of the unit group: prime powers
// combine by lcm rather than by product, and the power-of-two branch
// halves once more from 8 upwards.
func Carmichael(fz *factor.Factorizer) *Func {
	return NewWith(fz, func(p, e int64) int64 {
		if p == 2 && e >= 3 {
			return int64(1) << (e - 2)
		}
		r := p - 1
		for i := int64(1); i < e; i++ {
			r *= p
		}
		return r
	}, Opts{Combine: modular.LCM, Neutral: 1})
}

// Radical is the squarefree kernel, the product of the distinct primes.
func Radical(fz *factor.Factorizer) *Func {
	return New(fz, func(p, e int64) int64 { return p })
}

// Moebius is mu(n): zero on any square divisor, otherwise the parity of
// the prime count.
func Moebius(fz *factor.Factorizer) *Func {
	return New(fz, func(p, e int64) int64 {
		if e == 1 {
			return -1
		}
		return 0
	})
}

// Omega counts distinct prime factors; it is additive, not multiplicative.
func Omega(fz *factor.Factorizer) *Func {
	return NewWith(fz, func(p, e int64) int64 { return 1 },
		Opts{Combine: func(a, b int64) int64 { return a + b }})
}

// BigOmega counts prime factors with multiplicity.
func BigOmega(fz *factor.Factorizer) *Func {
	return NewWith(fz, func(p, e int64) int64 { return e },
		Opts{Combine: func(a, b int64) int64 { return a + b }})
}
