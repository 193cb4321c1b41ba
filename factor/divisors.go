package factor

import "sort"

// Divisors returns every positive divisor of n in ascending order. The
// list is built by expanding the factorization one prime power at a time;
// its length is the product of the e+1 terms, preallocated up front.
func (f *Factorizer) Divisors(n int64) []int64 {
	fs := f.Factor(n)
	count := int64(1)
	for _, pe := range fs {
		count *= pe.E + 1
	}
	ds := make([]int64, 1, count)
	ds[0] = 1
	for _, pe := range fs {
		base := len(ds)
		pw := int64(1)
		for e := int64(0); e < pe.E; e++ {
			pw *= pe.P
			for i := 0; i < base; i++ {
				ds = append(ds, ds[i]*pw)
			}
		}
	}
	sort.Slice(ds, func(i, j int) bool { return ds[i] < ds[j] })
	return ds
}

// DivisorCount returns the number of positive divisors of n without
// materializing them.
func (f *Factorizer) DivisorCount(n int64) int64 {
	count := int64(1)
	for _, pe := range f.Factor(n) {
		count *= pe.E + 1
	}
	return count
}
