// Package modular implements overflow-safe arithmetic on 64-bit residues:
// addition, subtraction and multiplication modulo m without intermediate
// overflow for any positive m, modular exponentiation and inversion, the
// extended Euclidean algorithm, and the Jacobi symbol.
//
// On top of the raw primitives it provides Class, a value type pairing a
// residue with its modulus, with arithmetic methods, Chinese-Remainder
// combination and modular square roots via Cipolla's algorithm.
//
// The raw primitives assume their inputs are already reduced into [0, m)
// and do not re-validate; Class construction is where validation happens.
package modular
