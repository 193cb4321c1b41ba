package factor

import (
	"fmt"

	"github.com/Krox/math/modular"
)

// Order returns the multiplicative order of a modulo m > 0, the least
// k >= 1 with a^k == 1 (mod m). A non-unit has no order and yields
// ErrNotInvertible.
func (f *Factorizer) Order(a, m int64) (int64, error) {
	if m <= 0 {
		panic("factor: Order requires a positive modulus")
	}
	a = ((a % m) + m) % m
	if modular.GCD(a, m) != 1 {
		return 0, fmt.Errorf("order of %d mod %d: %w", a, m, modular.ErrNotInvertible)
	}
	// The order divides phi(m); strip every prime out of phi(m) for as
	// long as the power still fixes 1.
	ord := f.totient(m)
	for _, pe := range f.Factor(ord) {
		for ord%pe.P == 0 && powmod(a, ord/pe.P, m) == 1 {
			ord /= pe.P
		}
	}
	return ord, nil
}

// PrimitiveRoot returns the smallest residue generating the full unit
// group modulo m > 0. Only m in {1, 2, 4, p^k, 2p^k} for odd prime p have
// one; anything else yields ErrNoSolution.
func (f *Factorizer) PrimitiveRoot(m int64) (int64, error) {
	if m <= 0 {
		panic("factor: PrimitiveRoot requires a positive modulus")
	}
	fs := f.Factor(m)
	cyclic := false
	switch {
	case m == 1 || m == 2 || m == 4:
		cyclic = true
	case len(fs) == 1 && fs[0].P != 2:
		cyclic = true
	case len(fs) == 2 && fs[0].P == 2 && fs[0].E == 1:
		cyclic = true
	}
	if !cyclic {
		return 0, fmt.Errorf("primitive root mod %d: %w", m, modular.ErrNoSolution)
	}
	phi := f.totient(m)
	phifs := f.Factor(phi)
	for g := int64(0); g < m; g++ {
		if modular.GCD(g, m) != 1 {
			continue
		}
		ok := true
		for _, pe := range phifs {
			if powmod(g, phi/pe.P, m) == 1 {
				ok = false
				break
			}
		}
		if ok {
			return g, nil
		}
	}
	panic("factor: primitive root search exhausted the residues")
}

// totient computes phi(m) from the factorization.
func (f *Factorizer) totient(m int64) int64 {
	t := int64(1)
	for _, pe := range f.Factor(m) {
		pk := int64(1)
		for i := int64(1); i < pe.E; i++ {
			pk *= pe.P
		}
		t *= pk * (pe.P - 1)
	}
	return t
}

// powmod is modular exponentiation by squaring for e >= 0, m > 1.
func powmod(a, e, m int64) int64 {
	r := int64(1)
	for a %= m; e > 0; e >>= 1 {
		if e&1 == 1 {
			r = modular.Mul(r, a, m)
		}
		a = modular.Mul(a, a, m)
	}
	return r
}
