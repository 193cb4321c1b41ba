package primes

import "testing"

func TestSieveSmall(t *testing.T) {
	if got := Sieve(-3); got != nil {
		t.Fatalf("Sieve(-3) = %v", got)
	}
	if got := Sieve(1); got != nil {
		t.Fatalf("Sieve(1) = %v", got)
	}
	check := func(n int64, want []int64) {
		got := Sieve(n)
		if len(got) != len(want) {
			t.Fatalf("Sieve(%d) = %v, want %v", n, got, want)
		}
		for i := range want {
			if got[i] != want[i] {
				t.Fatalf("Sieve(%d) = %v, want %v", n, got, want)
			}
		}
	}
	check(2, []int64{2})
	check(3, []int64{2, 3})
	check(4, []int64{2, 3})
	check(5, []int64{2, 3, 5})
	check(30, []int64{2, 3, 5, 7, 11, 13, 17, 19, 23, 29})
	check(100, []int64{2, 3, 5, 7, 11, 13, 17, 19, 23, 29, 31, 37, 41, 43,
		47, 53, 59, 61, 67, 71, 73, 79, 83, 89, 97})
}

// The wheel must agree with the witness-based tester everywhere, including
// around the bit-array overshoot at the top of the range.
func TestSieveMatchesIsPrime(t *testing.T) {
	for _, n := range []int64{3000, 3001, 3002, 3003, 3004, 3005} {
		got := Sieve(n)
		idx := 0
		for k := int64(2); k <= n; k++ {
			inSieve := idx < len(got) && got[idx] == k
			if inSieve {
				idx++
			}
			if inSieve != IsPrime(k) {
				t.Fatalf("Sieve(%d) and IsPrime disagree at %d", n, k)
			}
		}
		if idx != len(got) {
			t.Fatalf("Sieve(%d) has %d trailing entries beyond n", n, len(got)-idx)
		}
	}
}

func TestSieveCounts(t *testing.T) {
	cases := []struct {
		n    int64
		want int
	}{
		{10, 4},
		{100, 25},
		{1000, 168},
		{10000, 1229},
		{100000, 9592},
		{1000000, 78498},
	}
	for _, c := range cases {
		if got := len(Sieve(c.n)); got != c.want {
			t.Fatalf("len(Sieve(%d)) = %d, want %d", c.n, got, c.want)
		}
	}
}

func TestSieveAscending(t *testing.T) {
	ps := Sieve(100000)
	for i := 1; i < len(ps); i++ {
		if ps[i] <= ps[i-1] {
			t.Fatalf("Sieve not strictly ascending at %d: %d, %d", i, ps[i-1], ps[i])
		}
	}
}

func BenchmarkSieveMillion(b *testing.B) {
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		Sieve(1000000)
	}
}
