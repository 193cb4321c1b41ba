// Package factor decomposes positive int64 values into prime powers and
// derives divisor lists from the decomposition. Small primes are removed by
// trial division against the shared prime cache; composite cofactors are
// split with Pollard's rho method in Brent's variant.
package factor

import (
	"os"
	"sort"

	"github.com/Krox/math/primes"
)

// PrimePower is one p^e entry of a factorization.
type PrimePower struct {
	P int64
	E int64
}

// Factorizer factors integers against a shared prime cache. The cache is
// used for the trial-division stage, so warming it is shared across all
// consumers of the same cache.
type Factorizer struct {
	cache *primes.Cache
}

func New(cache *primes.Cache) *Factorizer {
	return &Factorizer{cache: cache}
}

// Cache returns the prime cache the factorizer trial-divides against.
func (f *Factorizer) Cache() *primes.Cache {
	return f.cache
}

// trialBound is exclusive: every prime below it is removed by trial
// division, so any surviving composite cofactor is at least trialBound².
const trialBound = 53

// rhoConstants bounds the retry loop over perturbation constants. Splitting
// a cofactor that primality testing certified composite succeeds long before
// this; running out means the two stages disagree on n.
const rhoConstants = 64

// Factor returns the prime factorization of n > 0, sorted by prime with
// exponents merged. Factor(1) is the empty factorization.
func (f *Factorizer) Factor(n int64) []PrimePower {
	if n <= 0 {
		panic("factor: Factor requires a positive argument")
	}
	var fs []PrimePower
	for _, p := range f.cache.UpTo(trialBound - 1) {
		for n%p == 0 {
			n /= p
			fs = append(fs, PrimePower{P: p, E: 1})
		}
	}
	if n > 1 {
		fs = f.splitAll(n, fs)
	}
	return normalize(fs)
}

// splitAll appends the factorization of n, all of whose prime factors are
// at least trialBound, to fs.
func (f *Factorizer) splitAll(n int64, fs []PrimePower) []PrimePower {
	if primes.IsPrime(n) {
		return append(fs, PrimePower{P: n, E: 1})
	}
	d := f.split(n)
	fs = f.splitAll(d, fs)
	return f.splitAll(n/d, fs)
}

// split returns a nontrivial divisor of the composite n, retrying rho with
// fresh constants after every ExhaustedConstant outcome.
func (f *Factorizer) split(n int64) int64 {
	for c := int64(1); c <= rhoConstants; c++ {
		if d := FindFactor(n, rhoSeed(n, c), c); d != n {
			return d
		}
		dbg(os.Stderr, "factor: constant %d exhausted on %d\n", c, n)
	}
	panic("factor: rho constants exhausted; primality test and rho disagree")
}

// normalize sorts the raw (p,1) entries and merges runs of equal primes by
// summing exponents.
func normalize(fs []PrimePower) []PrimePower {
	sort.Slice(fs, func(i, j int) bool { return fs[i].P < fs[j].P })
	out := fs[:0]
	for _, pe := range fs {
		if len(out) > 0 && out[len(out)-1].P == pe.P {
			out[len(out)-1].E += pe.E
			continue
		}
		out = append(out, pe)
	}
	return out
}
