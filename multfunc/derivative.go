package multfunc

import "github.com/Krox/math/factor"

// Derivative is the arithmetic derivative of n > 0: D(1) = 0, D(p) = 1 on
// primes, and D(ab) = a·D(b) + D(a)·b. It is not multiplicative, so it is
// computed straight from the factorization as n · sum of e/p, which the
// Leibniz rule reduces to.
func Derivative(fz *factor.Factorizer, n int64) int64 {
	if n <= 0 {
		panic("multfunc: Derivative requires a positive argument")
	}
	d := int64(0)
	for _, pe := range fz.Factor(n) {
		d += pe.E * (n / pe.P)
	}
	return d
}
