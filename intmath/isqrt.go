package intmath

import "math/bits"

// Sqrt returns floor(sqrt(n)) for n >= 0. Newton iteration seeded at the
// power of two just above the root descends monotonically and stops exactly
// on the floor, so no correction step is needed.
func Sqrt(n int64) int64 {
	if n < 0 {
		panic("intmath: Sqrt of negative number")
	}
	if n == 0 {
		return 0
	}
	x := int64(1) << ((bits.Len64(uint64(n)) + 1) / 2)
	for {
		y := (x + n/x) / 2
		if y >= x {
			return x
		}
		x = y
	}
}
