// Package post implements the classical completeness criterion over the five
// maximal clones of Boolean functions: a set of connectives can express every
// Boolean function if and only if, for each of the clones T0 (0-preserving),
// T1 (1-preserving), M (monotone), D (self-dual) and A (affine), at least one
// member of the set falls outside that clone.
package post

import (
	"math/bits"
	"strings"

	"github.com/boolcomb/nicesets/conn"
)

// Clone is a bitmask of maximal clone memberships.
type Clone byte

const (
	// T0 holds the 0-preserving functions: f(0,...,0) = 0.
	T0 Clone = 1 << iota
	// T1 holds the 1-preserving functions: f(1,...,1) = 1.
	T1
	// M holds the monotone functions.
	M
	// D holds the self-dual functions: f(!x1,...,!xn) = !f(x1,...,xn).
	D
	// A holds the affine functions: XORs of a subset of inputs plus a
	// constant.
	A

	// All is the union of the five clones.
	All = T0 | T1 | M | D | A
)

var cloneNames = []struct {
	c    Clone
	name string
}{
	{T0, "T0"}, {T1, "T1"}, {M, "M"}, {D, "D"}, {A, "A"},
}

func (cl Clone) String() string {
	if cl == 0 {
		return "none"
	}
	var parts []string
	for _, n := range cloneNames {
		if cl&n.c != 0 {
			parts = append(parts, n.name)
		}
	}
	return strings.Join(parts, "|")
}

// IsT0Preserving reports whether c maps the all-zero input to 0.
func IsT0Preserving(c conn.Connective) bool {
	return c.Bit(0) == 0
}

// IsT1Preserving reports whether c maps the all-one input to 1.
func IsT1Preserving(c conn.Connective) bool {
	return c.Bit(c.Rows()-1) == 1
}

// IsMonotone reports whether flipping any input from 0 to 1 never flips the
// output from 1 to 0.
func IsMonotone(c conn.Connective) bool {
	rows := c.Rows()
	for row := 0; row < rows; row++ {
		for b := 0; b < c.Arity(); b++ {
			up := row | 1<<b
			if up != row && c.Bit(row) > c.Bit(up) {
				return false
			}
		}
	}
	return true
}

// IsSelfDual reports whether complementing every input complements the
// output.
func IsSelfDual(c conn.Connective) bool {
	rows := c.Rows()
	for row := 0; row < rows; row++ {
		if c.Bit(row) == c.Bit(rows-1-row) {
			return false
		}
	}
	return true
}

// IsAffine reports whether c is linear over GF(2), i.e. expressible as
// c0 XOR c1*x1 XOR ... XOR cn*xn. The coefficients are extracted from the
// value at zero and at each unit vector, then the predicted table is checked
// against the whole table.
func IsAffine(c conn.Connective) bool {
	rows := c.Rows()
	f0 := c.Bit(0)
	var coeff int
	for b := 0; b < c.Arity(); b++ {
		if c.Bit(1<<b) != f0 {
			coeff |= 1 << b
		}
	}
	for row := 0; row < rows; row++ {
		want := f0 ^ uint8(bits.OnesCount(uint(row&coeff))&1)
		if c.Bit(row) != want {
			return false
		}
	}
	return true
}

// Membership returns the set of maximal clones c belongs to.
func Membership(c conn.Connective) Clone {
	var cl Clone
	if IsT0Preserving(c) {
		cl |= T0
	}
	if IsT1Preserving(c) {
		cl |= T1
	}
	if IsMonotone(c) {
		cl |= M
	}
	if IsSelfDual(c) {
		cl |= D
	}
	if IsAffine(c) {
		cl |= A
	}
	return cl
}

// Missing returns the clones that the whole set fails to escape: the clones
// containing every member. A set is complete exactly when Missing returns 0.
// The empty set misses all five.
func Missing(set []conn.Connective) Clone {
	missing := All
	for _, c := range set {
		missing &= Membership(c)
		if missing == 0 {
			break
		}
	}
	return missing
}

// IsComplete reports whether the set escapes all five maximal clones and can
// therefore express every Boolean function by composition. The empty set is
// not complete.
func IsComplete(set []conn.Connective) bool {
	return len(set) > 0 && Missing(set) == 0
}
