package modular

import (
	"errors"
	"math"
	"math/big"
	"math/rand"
	"testing"
)

// mulLadder is the portable double-and-add reference: exact for any m
// without a wide multiply, and deliberately independent of math/bits.
func mulLadder(a, b, m int64) int64 {
	var r int64
	for b > 0 {
		if b&1 == 1 {
			r = Add(r, a, m)
		}
		a = Add(a, a, m)
		b >>= 1
	}
	return r
}

var testModuli = []int64{
	1, 2, 3, 7, 10, 97, 1 << 20, 1000000007,
	1<<62 - 57, 1 << 62, 1<<63 - 25, 1<<63 - 1,
}

func TestMulMatchesReferences(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	for _, m := range testModuli {
		bigM := big.NewInt(m)
		for i := 0; i < 200; i++ {
			a := rng.Int63n(m)
			b := rng.Int63n(m)
			got := Mul(a, b, m)
			want := new(big.Int).Mul(big.NewInt(a), big.NewInt(b))
			want.Mod(want, bigM)
			if got != want.Int64() {
				t.Fatalf("Mul(%d, %d, %d) = %d, big.Int says %d", a, b, m, got, want.Int64())
			}
			if ladder := mulLadder(a, b, m); ladder != got {
				t.Fatalf("Mul(%d, %d, %d) = %d, ladder says %d", a, b, m, got, ladder)
			}
		}
	}
}

func TestAddSubNeg(t *testing.T) {
	rng := rand.New(rand.NewSource(2))
	for _, m := range testModuli {
		bigM := big.NewInt(m)
		values := []int64{0, 1 % m, m - 1, rng.Int63n(m), rng.Int63n(m)}
		for _, a := range values {
			for _, b := range values {
				got := Add(a, b, m)
				want := new(big.Int).Add(big.NewInt(a), big.NewInt(b))
				want.Mod(want, bigM)
				if got != want.Int64() {
					t.Fatalf("Add(%d, %d, %d) = %d, want %d", a, b, m, got, want.Int64())
				}
				if back := Add(Sub(a, b, m), b, m); back != a {
					t.Fatalf("Add(Sub(%d, %d), %d) mod %d = %d", a, b, b, m, back)
				}
			}
			if s := Add(a, Neg(a, m), m); s != 0 {
				t.Fatalf("a + (-a) mod %d = %d for a=%d", m, s, a)
			}
		}
	}
}

func TestPow(t *testing.T) {
	cases := []struct {
		a, b, m, want int64
	}{
		{2, 10, 1000, 24},
		{3, 0, 7, 1},
		{0, 0, 5, 1},
		{5, 3, 1, 0},
		{7, 1, 13, 7},
		{2, 62, 1<<63 - 1, 1 << 62},
	}
	for _, c := range cases {
		got, err := Pow(c.a, c.b, c.m)
		if err != nil {
			t.Fatalf("Pow(%d, %d, %d): %v", c.a, c.b, c.m, err)
		}
		if got != c.want {
			t.Fatalf("Pow(%d, %d, %d) = %d, want %d", c.a, c.b, c.m, got, c.want)
		}
	}

	// Fermat: a^(p-1) == 1 mod p for a != 0.
	const p = 1000000007
	rng := rand.New(rand.NewSource(3))
	for i := 0; i < 50; i++ {
		a := 1 + rng.Int63n(p-1)
		got, err := Pow(a, p-1, p)
		if err != nil || got != 1 {
			t.Fatalf("Pow(%d, p-1, p) = %d, %v; want 1", a, got, err)
		}
	}
}

func TestPowNegativeExponent(t *testing.T) {
	got, err := Pow(3, -1, 7)
	if err != nil || got != 5 {
		t.Fatalf("Pow(3, -1, 7) = %d, %v; want 5", got, err)
	}
	got, err = Pow(2, -2, 9)
	if err != nil || got != 7 {
		t.Fatalf("Pow(2, -2, 9) = %d, %v; want 7", got, err)
	}
	if _, err = Pow(2, -1, 4); !errors.Is(err, ErrNotInvertible) {
		t.Fatalf("Pow(2, -1, 4) err = %v, want ErrNotInvertible", err)
	}
}

func TestInvExhaustiveSmall(t *testing.T) {
	for m := int64(1); m <= 20; m++ {
		for a := int64(0); a < m; a++ {
			inv, err := Inv(a, m)
			if GCD(a, m) == 1 {
				if err != nil {
					t.Fatalf("Inv(%d, %d): %v", a, m, err)
				}
				if inv < 0 || inv >= m {
					t.Fatalf("Inv(%d, %d) = %d out of range", a, m, inv)
				}
				if p := Mul(a, inv, m); p != 1%m {
					t.Fatalf("%d * Inv(%d) mod %d = %d", a, a, m, p)
				}
			} else if !errors.Is(err, ErrNotInvertible) {
				t.Fatalf("Inv(%d, %d) err = %v, want ErrNotInvertible", a, m, err)
			}
		}
	}
}

func TestInvLargeModuli(t *testing.T) {
	rng := rand.New(rand.NewSource(4))
	for _, m := range []int64{1000000007, 1<<63 - 25, 1<<63 - 1} {
		for i := 0; i < 100; i++ {
			a := 1 + rng.Int63n(m-1)
			inv, err := Inv(a, m)
			if err != nil {
				// Composite moduli have non-units; skip those draws.
				if errors.Is(err, ErrNotInvertible) && GCD(a, m) != 1 {
					continue
				}
				t.Fatalf("Inv(%d, %d): %v", a, m, err)
			}
			if p := Mul(a, inv, m); p != 1 {
				t.Fatalf("%d * Inv(%d) mod %d = %d", a, a, m, p)
			}
		}
	}
}

func TestEuclid(t *testing.T) {
	rng := rand.New(rand.NewSource(5))
	check := func(a, b int64) {
		g, x, y := Euclid(a, b)
		if g <= 0 {
			t.Fatalf("Euclid(%d, %d): non-positive gcd %d", a, b, g)
		}
		if g != GCD(a, b) {
			t.Fatalf("Euclid(%d, %d) gcd = %d, GCD says %d", a, b, g, GCD(a, b))
		}
		lhs := new(big.Int).Mul(big.NewInt(x), big.NewInt(a))
		lhs.Add(lhs, new(big.Int).Mul(big.NewInt(y), big.NewInt(b)))
		if lhs.Cmp(big.NewInt(g)) != 0 {
			t.Fatalf("Euclid(%d, %d): %d*%d + %d*%d = %s, want %d", a, b, x, a, y, b, lhs.String(), g)
		}
	}
	check(1, 1)
	check(12, 18)
	check(-12, 18)
	check(12, -18)
	check(-12, -18)
	check(1<<62, 3)
	for i := 0; i < 200; i++ {
		a := rng.Int63n(1<<40) + 1
		b := rng.Int63n(1<<40) + 1
		if i%2 == 0 {
			a = -a
		}
		check(a, b)
	}
}

func TestEuclidZeroPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatalf("Euclid(0, 5) did not panic")
		}
	}()
	Euclid(0, 5)
}

func TestGCDLCMConventions(t *testing.T) {
	cases := []struct{ a, b, gcd, lcm int64 }{
		{0, 0, 0, 0},
		{0, 7, 7, 0},
		{7, 0, 7, 0},
		{-4, 6, 2, 12},
		{4, -6, 2, 12},
		{-4, -6, 2, 12},
		{12, 18, 6, 36},
		{1, 1, 1, 1},
		{1 << 40, 1 << 20, 1 << 20, 1 << 40},
	}
	for _, c := range cases {
		if g := GCD(c.a, c.b); g != c.gcd {
			t.Fatalf("GCD(%d, %d) = %d, want %d", c.a, c.b, g, c.gcd)
		}
		if l := LCM(c.a, c.b); l != c.lcm {
			t.Fatalf("LCM(%d, %d) = %d, want %d", c.a, c.b, l, c.lcm)
		}
	}
}

func TestLCMOverflowPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatalf("LCM(1<<62, 3) did not panic")
		}
	}()
	LCM(1<<62, 3)
}

// |math.MinInt64| is not an int64, so negation would silently wrap; the
// magnitude-based functions must refuse the value instead.
func TestMinInt64MagnitudePanics(t *testing.T) {
	mustPanic := func(name string, f func()) {
		defer func() {
			if recover() == nil {
				t.Fatalf("%s did not panic", name)
			}
		}()
		f()
	}
	mustPanic("GCD(MinInt64, MinInt64)", func() { GCD(math.MinInt64, math.MinInt64) })
	mustPanic("GCD(MinInt64, 0)", func() { GCD(math.MinInt64, 0) })
	mustPanic("GCD(6, MinInt64)", func() { GCD(6, math.MinInt64) })
	mustPanic("LCM(MinInt64, 3)", func() { LCM(math.MinInt64, 3) })
	mustPanic("Euclid(MinInt64, 5)", func() { Euclid(math.MinInt64, 5) })

	// One past the boundary is fine.
	if g := GCD(math.MinInt64+1, 0); g != math.MaxInt64 {
		t.Fatalf("GCD(MinInt64+1, 0) = %d, want %d", g, int64(math.MaxInt64))
	}
}
