package modular

import "errors"

// ErrNotInvertible is returned when an inverse is requested for a residue
// that shares a factor with the modulus.
var ErrNotInvertible = errors.New("residue not invertible")

// ErrNoSolution is returned when a system of congruences is incompatible.
var ErrNoSolution = errors.New("no solution")
