package primes

import "github.com/Krox/math/modular"

// smallPrimes lists the primes below 53. Trial division by these is a
// complete primality decision for n < 53^2 and strips easy factors before
// the strong-pseudoprime machinery runs.
var smallPrimes = []int64{2, 3, 5, 7, 11, 13, 17, 19, 23, 29, 31, 37, 41, 43, 47}

// IsSPRP reports whether odd n >= 3 is a strong probable prime to base a.
// The base is reduced mod n first; residues 0, 1 and n-1 pass trivially,
// matching the convention under which the fixed witness sets below were
// verified.
func IsSPRP(a, n int64) bool {
	a %= n
	if a < 0 {
		a += n
	}
	if a == 0 || a == 1 || a == n-1 {
		return true
	}
	d, s := n-1, 0
	for d&1 == 0 {
		d >>= 1
		s++
	}
	x := powmod(a, d, n)
	if x == 1 || x == n-1 {
		return true
	}
	for ; s > 1; s-- {
		x = modular.Mul(x, x, n)
		if x == 1 {
			return false
		}
		if x == n-1 {
			return true
		}
	}
	return false
}

// IsPrime decides primality for any int64, deterministically. Trial
// division by the primes below 53 settles n < 2809 outright; larger n go
// through Miller-Rabin with fixed witness sets.
func IsPrime(n int64) bool {
	if n < 2 {
		return false
	}
	for _, p := range smallPrimes {
		if n%p == 0 {
			return n == p
		}
	}
	if n < 53*53 {
		return true
	}
	return millerRabin(n)
}

// witnessSet pairs a magnitude bound with Miller-Rabin bases that are
// jointly conclusive for every n below that bound.
type witnessSet struct {
	below int64
	bases []int64
}

// witnessLadder holds the published best-known-SPRP-base records
// (miller-rabin.appspot.com), bounds strictly increasing. Passing every
// base of the matching set is a proof of primality for that range, so the
// literals must never be altered or "simplified".
var witnessLadder = []witnessSet{
	{291831, []int64{126401071349994536}},
	{1050535501, []int64{336781006125, 9639812373923155}},
	{273919523041, []int64{15, 7363882082, 992620450144556}},
	{47636622961201, []int64{2, 2570940, 211991001, 3749873356}},
	{3770579582154547, []int64{2, 880937, 2570940, 610386380, 4130785767}},
	{585226005592931977, []int64{2, 123635709730000, 9233062284813009,
		43835965440333360, 761179012939631437, 1263739024124850375}},
}

// witnessTail serves every n past the last ladder bound; the record behind
// it covers all n below 3.3*10^24.
var witnessTail = []int64{2, 325, 9375, 28178, 450775, 9780504, 1795265022}

// millerRabin runs the deterministic test for odd n >= 2809 with no factor
// below 53.
func millerRabin(n int64) bool {
	bases := witnessTail
	for _, ws := range witnessLadder {
		if n < ws.below {
			bases = ws.bases
			break
		}
	}
	for _, a := range bases {
		if !IsSPRP(a, n) {
			return false
		}
	}
	return true
}

// maxPrime is the largest prime representable in an int64.
const maxPrime = 9223372036854775783

// NextPrime returns the smallest prime strictly greater than n. It panics
// for n >= 9223372036854775783, the largest 63-bit prime, where the scan
// would overflow.
func NextPrime(n int64) int64 {
	if n < 2 {
		return 2
	}
	if n >= maxPrime {
		panic("primes: no larger prime fits in an int64")
	}
	c := n + 1
	if c&1 == 0 {
		c++
	}
	for ; ; c += 2 {
		if IsPrime(c) {
			return c
		}
	}
}

func powmod(a, e, m int64) int64 {
	result := int64(1)
	base := a
	for e > 0 {
		if e&1 == 1 {
			result = modular.Mul(result, base, m)
		}
		e >>= 1
		if e > 0 {
			base = modular.Mul(base, base, m)
		}
	}
	return result
}
