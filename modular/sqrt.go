package modular

import (
	"encoding/binary"

	"github.com/Krox/math/internal/fp2"

	"golang.org/x/crypto/sha3"
)

// Sqrt returns a square root of c, i.e. a class r with r*r == c. The
// modulus must be prime (not re-verified) and the residue must be a square:
// Sqrt panics when Jacobi(x, m) == -1. Of the two roots r and -r the
// smaller representative is returned.
//
// For m == 2 and x == 0 the root is the class itself; for m == 3 (mod 4)
// the closed form x^((m+1)/4) applies; the remaining case runs Cipolla's
// algorithm, with the customary random non-residue search derandomized
// through a SHAKE-256 stream keyed by (x, m).
func (c Class) Sqrt() Class {
	x, m := c.x, c.n
	if m == 2 || x == 0 {
		return c
	}
	if Jacobi(x, m) != 1 {
		panic("modular: Sqrt of a quadratic non-residue")
	}
	if m&3 == 3 {
		// m+1 cannot overflow: the largest 63-bit prime is below MaxInt64.
		return Class{x: smallerRoot(pow(x, m, uint64((m+1)/4)), m), n: m}
	}

	// Cipolla: find a shift a with a^2 - x a non-residue, then take
	// (a + w)^((m+1)/2) in F_m[w]/(w^2 - (a^2-x)). The result lands in the
	// base field and squares to x.
	a, d, ok := nonResidueShift(x, m)
	if !ok {
		// a^2 == x turned up during the search.
		return Class{x: smallerRoot(a, m), n: m}
	}
	f := fp2.New(m, d)
	r := f.Pow(fp2.Elem{Re: a, Im: 1}, (m+1)/2).Re
	return Class{x: smallerRoot(r, m), n: m}
}

// nonResidueShift scans a deterministic SHAKE-256 stream for a shift a with
// d = a^2 - x a quadratic non-residue mod m. About half of all shifts
// qualify, so the stream is consumed only a few words deep. If a candidate
// happens to square to x it is returned directly with ok == false.
func nonResidueShift(x, m int64) (a, d int64, ok bool) {
	h := sha3.NewShake256()
	mustWrite(h, []byte("cipolla-shift"))
	mustWrite(h, u64le(uint64(x)))
	mustWrite(h, u64le(uint64(m)))
	const maxTries = 1 << 16
	var buf [8]byte
	for try := 0; try < maxTries; try++ {
		if _, err := h.Read(buf[:]); err != nil {
			panic("modular: shake read: " + err.Error())
		}
		a = int64(binary.LittleEndian.Uint64(buf[:]) % uint64(m))
		d = Sub(Mul(a, a, m), x, m)
		if d == 0 {
			return a, 0, false
		}
		if Jacobi(d, m) == -1 {
			return a, d, true
		}
	}
	panic("modular: non-residue search exhausted")
}

func smallerRoot(r, m int64) int64 {
	if m-r < r {
		return m - r
	}
	return r
}

func mustWrite(h sha3.ShakeHash, p []byte) {
	if _, err := h.Write(p); err != nil {
		panic("modular: shake write: " + err.Error())
	}
}

func u64le(v uint64) []byte {
	var buf [8]byte
	binary.LittleEndian.PutUint64(buf[:], v)
	return buf[:]
}
