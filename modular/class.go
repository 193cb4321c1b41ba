package modular

import "fmt"

// Class is a congruence class x (mod n): the set of integers congruent to x
// modulo n. The zero Class is not valid; construct through NewClass or
// Reduce. Classes are immutable values and can be compared with ==.
type Class struct {
	x, n int64
}

// NewClass builds the class x (mod n). It panics unless 0 <= x < n; use
// Reduce for arbitrary representatives.
func NewClass(x, n int64) Class {
	if n <= 0 {
		panic("modular: modulus must be positive")
	}
	if x < 0 || x >= n {
		panic("modular: residue out of range")
	}
	return Class{x: x, n: n}
}

// Reduce builds the class of an arbitrary integer x modulo n.
func Reduce(x, n int64) Class {
	if n <= 0 {
		panic("modular: modulus must be positive")
	}
	x %= n
	if x < 0 {
		x += n
	}
	return Class{x: x, n: n}
}

// Residue returns the canonical representative in [0, n).
func (c Class) Residue() int64 { return c.x }

// Modulus returns n.
func (c Class) Modulus() int64 { return c.n }

func (c Class) String() string {
	return fmt.Sprintf("%d (mod %d)", c.x, c.n)
}

func (c Class) sameModulus(o Class) {
	if c.n != o.n {
		panic("modular: modulus mismatch")
	}
}

// Add returns c + o. Both classes must share a modulus.
func (c Class) Add(o Class) Class {
	c.sameModulus(o)
	return Class{x: Add(c.x, o.x, c.n), n: c.n}
}

// Sub returns c - o. Both classes must share a modulus.
func (c Class) Sub(o Class) Class {
	c.sameModulus(o)
	return Class{x: Sub(c.x, o.x, c.n), n: c.n}
}

// Neg returns -c.
func (c Class) Neg() Class {
	return Class{x: Neg(c.x, c.n), n: c.n}
}

// Mul returns c * o. Both classes must share a modulus.
func (c Class) Mul(o Class) Class {
	c.sameModulus(o)
	return Class{x: Mul(c.x, o.x, c.n), n: c.n}
}

// Div returns c / o, failing with ErrNotInvertible if o shares a factor
// with the modulus.
func (c Class) Div(o Class) (Class, error) {
	c.sameModulus(o)
	inv, err := Inv(o.x, c.n)
	if err != nil {
		return Class{}, fmt.Errorf("divide by %v: %w", o, err)
	}
	return Class{x: Mul(c.x, inv, c.n), n: c.n}, nil
}

// Inv returns 1 / c, failing with ErrNotInvertible if the residue shares a
// factor with the modulus.
func (c Class) Inv() (Class, error) {
	inv, err := Inv(c.x, c.n)
	if err != nil {
		return Class{}, fmt.Errorf("invert %v: %w", c, err)
	}
	return Class{x: inv, n: c.n}, nil
}

// Pow returns c^k. Negative k inverts first and fails with ErrNotInvertible
// if the residue is not a unit.
func (c Class) Pow(k int64) (Class, error) {
	r, err := Pow(c.x, k, c.n)
	if err != nil {
		return Class{}, fmt.Errorf("power %v^%d: %w", c, k, err)
	}
	return Class{x: r, n: c.n}, nil
}

// AddInt returns c + k for an arbitrary integer k.
func (c Class) AddInt(k int64) Class { return c.Add(Reduce(k, c.n)) }

// SubInt returns c - k for an arbitrary integer k.
func (c Class) SubInt(k int64) Class { return c.Sub(Reduce(k, c.n)) }

// MulInt returns c * k for an arbitrary integer k.
func (c Class) MulInt(k int64) Class { return c.Mul(Reduce(k, c.n)) }

// DivInt returns c / k for an arbitrary integer k.
func (c Class) DivInt(k int64) (Class, error) { return c.Div(Reduce(k, c.n)) }

// Combine merges two congruences into a single class modulo lcm(n1, n2),
// the Chinese Remainder construction generalized to non-coprime moduli.
// The system is solvable exactly when gcd(n1, n2) divides x1 - x2;
// otherwise Combine fails with ErrNoSolution. The combined modulus must fit
// in an int64.
func (c Class) Combine(o Class) (Class, error) {
	g := GCD(c.n, o.n)
	diff := o.x - c.x
	if diff%g != 0 {
		return Class{}, fmt.Errorf("combine %v with %v: %w", c, o, ErrNoSolution)
	}
	l := LCM(c.n, o.n)
	// x = c.x + c.n*t with t = (o.x-c.x)/g * (c.n/g)^-1 (mod o.n/g).
	n2 := o.n / g
	if n2 == 1 {
		return Class{x: c.x, n: l}, nil
	}
	inv, err := Inv((c.n/g)%n2, n2)
	if err != nil {
		panic("modular: combine invariant broken: n1/g must be a unit mod n2/g")
	}
	t := Mul(Reduce(diff/g, n2).x, inv, n2)
	return Class{x: Add(c.x, Mul(c.n, t, l), l), n: l}, nil
}
