// Package fp2 implements just enough arithmetic in the quadratic extension
// F_p[w]/(w^2 - t) for Cipolla-style square-root extraction: multiplication
// and exponentiation of elements re + im*w. It is self-contained and keeps
// its own 128-bit-intermediate modular helpers.
package fp2

import "math/bits"

// Field describes F_p[w]/(w^2 - t). p must be an odd prime and t a
// quadratic non-residue mod p for the quotient to be a field; callers are
// responsible for both.
type Field struct {
	P int64
	T int64
}

// Elem is re + im*w with both coordinates reduced into [0, p).
type Elem struct {
	Re, Im int64
}

// New returns the extension descriptor for modulus p and non-residue t.
func New(p, t int64) Field {
	return Field{P: p, T: t}
}

// Mul returns a * b using (w^2 = t) to fold the cross term.
func (f Field) Mul(a, b Elem) Elem {
	re := modAdd(modMul(a.Re, b.Re, f.P), modMul(f.T, modMul(a.Im, b.Im, f.P), f.P), f.P)
	im := modAdd(modMul(a.Re, b.Im, f.P), modMul(a.Im, b.Re, f.P), f.P)
	return Elem{Re: re, Im: im}
}

// Pow returns a^e by square-and-multiply. e must be non-negative.
func (f Field) Pow(a Elem, e int64) Elem {
	result := Elem{Re: 1 % f.P}
	base := a
	for ; e > 0; e >>= 1 {
		if e&1 == 1 {
			result = f.Mul(result, base)
		}
		base = f.Mul(base, base)
	}
	return result
}

func modAdd(a, b, p int64) int64 {
	if b < p-a {
		return a + b
	}
	return a - (p - b)
}

func modMul(a, b, p int64) int64 {
	hi, lo := bits.Mul64(uint64(a), uint64(b))
	_, rem := bits.Div64(hi, lo, uint64(p))
	return int64(rem)
}
