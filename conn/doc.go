// Package conn models Boolean connectives as truth tables.
//
// An n-ary connective is stored as a bit vector of length 2^n, one bit per
// input assignment. Rows are indexed MSB-first: for inputs (x0, ..., xn-1),
// the row index is x0*2^(n-1) + x1*2^(n-2) + ... + xn-1. The table for AND
// is therefore 0b1000: only row 3, inputs (1,1), is true.
//
// Connectives are immutable values. Two connectives are equal when their
// arity and truth table match; the name is cosmetic and ignored by Equal.
package conn
