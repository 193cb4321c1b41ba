package factor

import (
	"encoding/binary"

	"github.com/Krox/math/modular"

	"github.com/cespare/xxhash/v2"
)

// FindFactor runs one rho attempt on n with the iteration x -> x² + c
// starting from x0, using Brent's doubling runs: after each run the
// checkpoint y is moved to the current x and the run length doubles, and
// every step inside a run tests gcd(x-y, n). The return value is either a
// nontrivial divisor of n or n itself, the latter meaning the orbit closed
// on the checkpoint without a split and the caller should retry with a new
// constant. Callers must already know n to be composite, odd and at least
// trialBound²; on a prime n the attempt can only ever report n, after a
// cycle of expected length around n^(1/2).
func FindFactor(n, x0, c int64) int64 {
	x := ((x0 % n) + n) % n
	c = ((c % n) + n) % n
	y := x
	for run := int64(1); ; run *= 2 {
		for i := int64(0); i < run; i++ {
			x = modular.Add(modular.Mul(x, x, n), c, n)
			g := modular.GCD(x-y, n)
			if g == n {
				return n
			}
			if g != 1 {
				return g
			}
		}
		y = x
	}
}

// rhoSeed spreads (n, c) into a starting point in [2, n-2], so that
// consecutive constants do not begin on the same orbit prefix.
func rhoSeed(n, c int64) int64 {
	var buf [16]byte
	binary.LittleEndian.PutUint64(buf[:8], uint64(n))
	binary.LittleEndian.PutUint64(buf[8:], uint64(c))
	return 2 + int64(xxhash.Sum64(buf[:])%uint64(n-3))
}
