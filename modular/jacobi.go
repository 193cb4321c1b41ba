package modular

// Jacobi returns the Jacobi symbol (a/n) in {-1, 0, 1}. n must be odd and
// positive; a may be any int64. For prime n this is the Legendre symbol, so
// (a/n) = 1 exactly when a is a non-zero quadratic residue mod n.
func Jacobi(a, n int64) int {
	if n <= 0 || n&1 == 0 {
		panic("modular: Jacobi symbol needs an odd positive n")
	}
	a %= n
	if a < 0 {
		a += n
	}
	result := 1
	for a != 0 {
		for a&1 == 0 {
			a >>= 1
			if r := n & 7; r == 3 || r == 5 {
				result = -result
			}
		}
		a, n = n, a
		if a&3 == 3 && n&3 == 3 {
			result = -result
		}
		a %= n
	}
	if n == 1 {
		return result
	}
	return 0
}
