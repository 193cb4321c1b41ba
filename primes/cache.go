// Package primes provides deterministic primality testing for the full
// int64 range, a wheel sieve, and Cache, a growing memo of the prime
// sequence that answers prefix, range and counting queries.
package primes

import (
	"math"
	"sort"
)

// Cache memoizes the ascending sequence of primes up to a movable limit.
// It starts empty and regrows on demand; queries return sub-slice views
// into the cached sequence, valid only until the next growth or Reset.
// There is no internal locking: concurrent use needs external coordination
// or a pre-warmed, read-only cache.
type Cache struct {
	limit  int64
	primes []int64
}

// New returns an empty cache. The first query pays for the first sieve.
func New() *Cache {
	return &Cache{limit: 1}
}

// Limit reports the bound the cache is currently sieved to.
func (c *Cache) Limit() int64 { return c.limit }

// Reset returns the cache to its initial empty state and invalidates all
// outstanding views. Intended for test isolation; results never depend on
// cache state, only timings do.
func (c *Cache) Reset() {
	c.limit = 1
	c.primes = nil
}

// growTarget overshoots n by half so that a sequence of creeping queries
// re-sieves only a logarithmic number of times. Near the top of the int64
// range the sum wraps, so it clamps instead of going negative.
func growTarget(n int64) int64 {
	t := n + n/2
	if t < n {
		return math.MaxInt64
	}
	return t
}

// ensure regrows the cache to cover n.
func (c *Cache) ensure(n int64) {
	if n <= c.limit {
		return
	}
	limit := growTarget(n)
	c.primes = Sieve(limit)
	c.limit = limit
}

// UpTo returns the primes <= n, ascending, as a view into the cache.
func (c *Cache) UpTo(n int64) []int64 {
	if n < 2 {
		return nil
	}
	c.ensure(n)
	i := sort.Search(len(c.primes), func(i int) bool { return c.primes[i] > n })
	return c.primes[:i:i]
}

// Range returns the primes in the inclusive interval [a, b], ascending, as
// a view into the cache.
func (c *Cache) Range(a, b int64) []int64 {
	if b < 2 || b < a {
		return nil
	}
	c.ensure(b)
	lo := sort.Search(len(c.primes), func(i int) bool { return c.primes[i] >= a })
	hi := sort.Search(len(c.primes), func(i int) bool { return c.primes[i] > b })
	return c.primes[lo:hi:hi]
}
