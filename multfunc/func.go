// Package multfunc evaluates multiplicative arithmetic functions, either
// one value at a time through a factorization or in bulk through a sieved
// table. A function is described by its value f(p,e) on prime powers, a
// combining operator and the neutral element returned at 1; the standard
// number-theoretic functions are provided as ready-made instances.
package multfunc

import (
	"github.com/Krox/math/factor"
)

// Opts carries the combining operator for functions that are not plainly
// multiplicative over prime powers. A nil Combine means multiplication
// with neutral element 1, and Neutral is ignored; otherwise Neutral is
// used as given, so the zero value suits additive combiners.
type Opts struct {
	Combine func(a, b int64) int64
	Neutral int64
}

// Func is one multiplicative function. It memoizes values in a grow-only
// table up to tableCap and falls back to direct factorization beyond.
// The table is shared mutable state: growth reallocates it, and there is
// no internal locking.
type Func struct {
	eval    func(p, e int64) int64
	combine func(a, b int64) int64
	neutral int64
	fz      *factor.Factorizer
	table   []int64
}

// Table sizes are entries, not bytes. Growth doubles from minTable until
// the query is covered, never beyond tableCap.
const (
	minTable = 1 << 10
	tableCap = 1 << 20
)

func New(fz *factor.Factorizer, eval func(p, e int64) int64) *Func {
	return NewWith(fz, eval, Opts{})
}

func NewWith(fz *factor.Factorizer, eval func(p, e int64) int64, opts Opts) *Func {
	f := &Func{eval: eval, combine: opts.Combine, neutral: opts.Neutral, fz: fz}
	if f.combine == nil {
		f.combine = func(a, b int64) int64 { return a * b }
		f.neutral = 1
	}
	return f
}

// Eval returns the function value at n > 0. Values up to tableCap are
// served from the table, growing it to cover n first; beyond that the
// value is folded directly over the factorization of n.
func (f *Func) Eval(n int64) int64 {
	if n <= 0 {
		panic("multfunc: Eval requires a positive argument")
	}
	if n < int64(len(f.table)) {
		return f.table[n]
	}
	if n <= tableCap {
		f.grow(n)
		return f.table[n]
	}
	r := f.neutral
	for _, pe := range f.fz.Factor(n) {
		r = f.combine(r, f.eval(pe.P, pe.E))
	}
	return r
}

// Table sieves the function up to limit and returns the table as a view
// with entry i holding the value at i; entry 0 is meaningless. The view
// is valid until the next growth.
func (f *Func) Table(limit int64) []int64 {
	if limit < 1 || limit > tableCap {
		panic("multfunc: Table limit out of [1, tableCap]")
	}
	if limit >= int64(len(f.table)) {
		f.grow(limit)
	}
	return f.table[: limit+1 : limit+1]
}

func (f *Func) grow(n int64) {
	limit := int64(len(f.table)) - 1
	if limit < minTable {
		limit = minTable
	}
	for limit < n {
		limit *= 2
	}
	if limit > tableCap {
		limit = tableCap
	}
	f.extend(limit)
}

// extend completes table entries old+1..limit without touching the old
// region: entries at or below the previous limit already carry every
// prime-power contribution, and any prime power newly within range has no
// multiple down there.
func (f *Func) extend(limit int64) {
	old := int64(len(f.table)) - 1
	if limit <= old {
		return
	}
	grown := make([]int64, limit+1)
	copy(grown, f.table)
	for i := old + 1; i <= limit; i++ {
		grown[i] = f.neutral
	}
	f.table = grown
	if old < 1 {
		old = 1
	}
	for _, p := range f.fz.Cache().UpTo(limit) {
		for q, e := p, int64(1); ; q, e = q*p, e+1 {
			// Entries m = c·p^e with c coprime to p take the f(p,e)
			// contribution; for every other multiple of q a different
			// power is the exact divisor.
			v := f.eval(p, e)
			for m := (old/q + 1) * q; m <= limit; m += q {
				if (m/q)%p != 0 {
					grown[m] = f.combine(grown[m], v)
				}
			}
			if q > limit/p {
				break
			}
		}
	}
}
