package primes

// bitset is a fixed-size bit array over 64-bit words. The wheel sieve keeps
// two of them, one per residue class, so no bounds are re-checked here.
type bitset struct {
	bits []uint64
}

func newBitset(n int64) bitset {
	return bitset{bits: make([]uint64, (n+63)/64)}
}

func (b bitset) set(i int64) {
	b.bits[i>>6] |= 1 << uint(i&63)
}

func (b bitset) get(i int64) bool {
	return b.bits[i>>6]&(1<<uint(i&63)) != 0
}
