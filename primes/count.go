package primes

import "github.com/Krox/math/intmath"

// Count returns pi(n), the number of primes <= n, by Legendre's
// inclusion-exclusion: pi(n) = phi(n, a) + a - 1 with a = pi(sqrt(n)).
// Only the primes up to sqrt(n) are materialized (growing the cache if
// needed); the count itself never enumerates primes beyond the root.
func (c *Cache) Count(n int64) int64 {
	if n < 2 {
		return 0
	}
	ps := c.UpTo(intmath.Sqrt(n))
	return phi(n, len(ps), ps) + int64(len(ps)) - 1
}

// phi counts the integers in [1, x] not divisible by any of the first a
// primes, via phi(x, a) = phi(x, a-1) - phi(x/p_a, a-1). When p_a >= x
// every integer in [2, x] has its least prime factor among the first a
// primes, so only 1 survives.
func phi(x int64, a int, ps []int64) int64 {
	if x == 0 {
		return 0
	}
	if a == 0 {
		return x
	}
	p := ps[a-1]
	if p >= x {
		return 1
	}
	return phi(x, a-1, ps) - phi(x/p, a-1, ps)
}
