package primes

// NTTFriendly returns up to count primes p with p == 1 (mod 2n), scanning
// downward from just below 2^bits. Such p admit a primitive 2n-th root of
// unity, which is what negacyclic number-theoretic transforms over degree-n
// rings require of their moduli. bits must lie in [2, 62] and n must be
// positive; fewer than count primes may exist below 2^bits, in which case
// the result is short.
func NTTFriendly(bits uint, n, count int) []int64 {
	if bits < 2 || bits > 62 {
		panic("primes: NTTFriendly bits out of [2, 62]")
	}
	if n <= 0 {
		panic("primes: NTTFriendly degree must be positive")
	}
	step := 2 * int64(n)
	out := make([]int64, 0, count)
	for p := (int64(1)<<bits-1)/step*step + 1; p > step && len(out) < count; p -= step {
		if IsPrime(p) {
			out = append(out, p)
		}
	}
	return out
}
