package intmath

import (
	"math"
	"testing"
)

func TestSqrtExhaustiveSmall(t *testing.T) {
	want := int64(0)
	for n := int64(0); n < 1<<16; n++ {
		if (want+1)*(want+1) <= n {
			want++
		}
		if got := Sqrt(n); got != want {
			t.Fatalf("Sqrt(%d) = %d, want %d", n, got, want)
		}
	}
}

func TestSqrtBoundaries(t *testing.T) {
	cases := []struct{ n, want int64 }{
		{1<<31 - 1, 46340},
		{1 << 31, 46340},
		{46341 * 46341, 46341},
		{46341*46341 - 1, 46340},
		{1 << 62, 1 << 31},
		{1<<62 - 1, 1<<31 - 1},
		{3037000499 * 3037000499, 3037000499},
		{math.MaxInt64, 3037000499},
	}
	for _, c := range cases {
		if got := Sqrt(c.n); got != c.want {
			t.Fatalf("Sqrt(%d) = %d, want %d", c.n, got, c.want)
		}
	}
}

func TestSqrtAroundPerfectSquares(t *testing.T) {
	for _, k := range []int64{1 << 20, 1 << 30, 3037000499, 2147483647} {
		sq := k * k
		if got := Sqrt(sq); got != k {
			t.Fatalf("Sqrt(%d^2) = %d", k, got)
		}
		if got := Sqrt(sq - 1); got != k-1 {
			t.Fatalf("Sqrt(%d^2-1) = %d, want %d", k, got, k-1)
		}
		if got := Sqrt(sq + 1); got != k {
			t.Fatalf("Sqrt(%d^2+1) = %d, want %d", k, got, k)
		}
	}
}

func TestFactorial(t *testing.T) {
	want := int64(1)
	for n := int64(0); n <= 20; n++ {
		if n > 0 {
			want *= n
		}
		if got := Factorial(n); got != want {
			t.Fatalf("Factorial(%d) = %d, want %d", n, got, want)
		}
	}
	if Factorial(20) != 2432902008176640000 {
		t.Fatalf("Factorial(20) = %d", Factorial(20))
	}
	for _, bad := range []int64{-1, 21} {
		func() {
			defer func() {
				if recover() == nil {
					t.Fatalf("Factorial(%d) did not panic", bad)
				}
			}()
			Factorial(bad)
		}()
	}
}

func TestBinomial(t *testing.T) {
	cases := []struct{ n, k, want int64 }{
		{0, 0, 1},
		{5, 2, 10},
		{10, 0, 1},
		{10, 10, 1},
		{10, 11, 0},
		{10, -1, 0},
		{20, 10, 184756},
		{52, 5, 2598960},
		{62, 31, 465428353255261088},
	}
	for _, c := range cases {
		if got := Binomial(c.n, c.k); got != c.want {
			t.Fatalf("Binomial(%d, %d) = %d, want %d", c.n, c.k, got, c.want)
		}
	}

	// Pascal triangle consistency.
	for n := int64(1); n <= 40; n++ {
		for k := int64(1); k < n; k++ {
			if Binomial(n, k) != Binomial(n-1, k-1)+Binomial(n-1, k) {
				t.Fatalf("Pascal rule broken at (%d, %d)", n, k)
			}
		}
	}

	func() {
		defer func() {
			if recover() == nil {
				t.Fatalf("Binomial(70, 35) did not panic")
			}
		}()
		Binomial(70, 35)
	}()
}

func TestFibonacciRecurrence(t *testing.T) {
	for n := int64(-50); n <= 50; n++ {
		if Fibonacci(n+2) != Fibonacci(n+1)+Fibonacci(n) {
			t.Fatalf("F(%d+2) != F(%d+1) + F(%d): %d %d %d",
				n, n, n, Fibonacci(n+2), Fibonacci(n+1), Fibonacci(n))
		}
	}
	cases := []struct{ n, want int64 }{
		{0, 0}, {1, 1}, {2, 1}, {10, 55}, {20, 6765},
		{-1, 1}, {-2, -1}, {-10, -55},
		{92, 7540113804746346429},
		{-92, -7540113804746346429},
		{91, 4660046610375530309},
	}
	for _, c := range cases {
		if got := Fibonacci(c.n); got != c.want {
			t.Fatalf("Fibonacci(%d) = %d, want %d", c.n, got, c.want)
		}
	}
	for _, bad := range []int64{-93, 93} {
		func() {
			defer func() {
				if recover() == nil {
					t.Fatalf("Fibonacci(%d) did not panic", bad)
				}
			}()
			Fibonacci(bad)
		}()
	}
}

func TestFibonacciMod(t *testing.T) {
	for m := int64(1); m < 20; m++ {
		for n := int64(-92); n <= 92; n++ {
			want := Fibonacci(n) % m
			if want < 0 {
				want += m
			}
			if got := FibonacciMod(n, m); got != want {
				t.Fatalf("FibonacciMod(%d, %d) = %d, want %d", n, m, got, want)
			}
		}
	}
	// Pisano period of 10 is 60: F(300) ends in 0, F(301) in 1.
	if got := FibonacciMod(300, 10); got != 0 {
		t.Fatalf("FibonacciMod(300, 10) = %d", got)
	}
	if got := FibonacciMod(301, 10); got != 1 {
		t.Fatalf("FibonacciMod(301, 10) = %d", got)
	}
	// Large index against a large prime modulus stays in range.
	const p = 1000000007
	got := FibonacciMod(1<<40, p)
	if got < 0 || got >= p {
		t.Fatalf("FibonacciMod(2^40, p) = %d out of range", got)
	}
	// Addition rule F(2k) = F(k)*(2F(k+1)-F(k)) checked modularly.
	const k = 1 << 39
	fk := FibonacciMod(k, p)
	fk1 := FibonacciMod(k+1, p)
	lhs := got
	rhs := fk * ((2*fk1 - fk + p) % p) % p
	if lhs != rhs%p {
		t.Fatalf("doubling identity broken: %d vs %d", lhs, rhs%p)
	}
}
