package primes

import "github.com/Krox/math/intmath"

// Sieve returns all primes up to and including n in ascending order. It
// runs Eratosthenes on the 6k±1 wheel: two bit arrays track the residues
// 5 and 7 (mod 6), so multiples of 2 and 3 are never touched and memory
// stays around n/3 bits. Composites are struck only up to sqrt(n); 2 and 3
// are prepended unconditionally.
func Sieve(n int64) []int64 {
	if n < 2 {
		return nil
	}
	if n < 3 {
		return []int64{2}
	}
	if n < 5 {
		return []int64{2, 3}
	}

	// Index k stands for 6k+5 in b5 and 6k+7 in b7.
	size := n/6 + 1
	b5 := newBitset(size)
	b7 := newBitset(size)
	marked := func(x int64) bool {
		if x%6 == 5 {
			return b5.get((x - 5) / 6)
		}
		return b7.get((x - 7) / 6)
	}
	mark := func(x int64) {
		if x%6 == 5 {
			b5.set((x - 5) / 6)
		} else {
			b7.set((x - 7) / 6)
		}
	}

	// A composite on the wheel factors as x*w with both on the wheel and
	// x <= sqrt(n), so striking wheel multiples of unmarked x suffices.
	// The alternating +2/+4 stride walks the wheel itself.
	root := intmath.Sqrt(n)
	for x, xs := int64(5), int64(2); x <= root; x, xs = x+xs, 6-xs {
		if marked(x) {
			continue
		}
		limit := n / x
		for w, ws := x, xs; w <= limit; w, ws = w+ws, 6-ws {
			mark(x * w)
		}
	}

	out := []int64{2, 3}
	for k := int64(0); 6*k+5 <= n; k++ {
		if !b5.get(k) {
			out = append(out, 6*k+5)
		}
		if 6*k+7 <= n && !b7.get(k) {
			out = append(out, 6*k+7)
		}
	}
	return out
}
