// Package sym classifies Boolean connectives under the symmetry group of
// input permutation, input complementation and output complementation, and
// shrinks candidate pools by dropping redundant members.
//
// The two granularities are not interchangeable. Composition trees can feed
// arguments to a function in any order, so two connectives that differ only
// by an input permutation generate identical closures and are mutually
// definable at depth 1; Reduce identifies exactly those, which keeps every
// reachable maximum set size intact for any pool. Complementation is not
// free in a composition, so the coarser orbits computed by Canonical are
// used for classification and reporting only, never for pool filtering.
package sym

import "github.com/boolcomb/nicesets/conn"

// Transform applies one group element to c: the result g satisfies
//
//	g(x0, ..., xn-1) = f(y0, ..., yn-1) XOR negOut
//
// where yi = x[perm[i]] XOR bit i of negMask. perm must be a permutation of
// 0..arity-1.
func Transform(c conn.Connective, perm []int, negMask uint32, negOut bool) conn.Connective {
	n := c.Arity()
	if len(perm) != n {
		panic("sym: permutation length does not match arity")
	}
	var table uint32
	for row := 0; row < c.Rows(); row++ {
		src := 0
		for i := 0; i < n; i++ {
			xi := uint32(row>>(n-1-perm[i])) & 1
			yi := xi ^ (negMask >> i & 1)
			src = src<<1 | int(yi)
		}
		bit := c.Bit(src)
		if negOut {
			bit ^= 1
		}
		table |= uint32(bit) << row
	}
	out, err := conn.New(n, table, "")
	if err != nil {
		panic(err)
	}
	return out
}

// Canonical returns the lexicographically least truth table in the orbit
// of c under the full symmetry group.
func Canonical(c conn.Connective) uint32 {
	best := c.Table()
	n := c.Arity()
	for _, perm := range permutations(n) {
		for negMask := uint32(0); negMask < 1<<n; negMask++ {
			for _, negOut := range []bool{false, true} {
				t := Transform(c, perm, negMask, negOut).Table()
				if t < best {
					best = t
				}
			}
		}
	}
	return best
}

// Orbits counts the distinct orbits of the pool under the full symmetry
// group. Connectives of different arities are never identified.
func Orbits(pool []conn.Connective) int {
	seen := make(map[class]struct{}, len(pool))
	for _, c := range pool {
		seen[class{arity: c.Arity(), table: Canonical(c)}] = struct{}{}
	}
	return len(seen)
}

type class struct {
	arity int
	table uint32
}

// Reduce returns one representative per input-permutation class, keeping
// the first member of each class in input order. Connectives of different
// arities are never identified with each other. Because a composition can
// reorder the arguments of any node, a permuted variant is definable from
// its representative (and vice versa) at depth 1, so reduction changes
// neither completeness nor independence of any subset: the raw pool and the
// reduced pool reach exactly the same maximum set sizes.
func Reduce(pool []conn.Connective) []conn.Connective {
	seen := make(map[class]struct{}, len(pool))
	reps := make([]conn.Connective, 0, len(pool))
	for _, c := range pool {
		k := class{arity: c.Arity(), table: permCanonical(c)}
		if _, ok := seen[k]; ok {
			continue
		}
		seen[k] = struct{}{}
		reps = append(reps, c)
	}
	return reps
}

// permCanonical is the least table reachable by permuting inputs only.
func permCanonical(c conn.Connective) uint32 {
	best := c.Table()
	for _, perm := range permutations(c.Arity()) {
		if t := Transform(c, perm, 0, false).Table(); t < best {
			best = t
		}
	}
	return best
}

// permutations returns all orderings of 0..n-1. For n = 0 it returns the
// single empty permutation.
func permutations(n int) [][]int {
	idx := make([]int, n)
	for i := range idx {
		idx[i] = i
	}
	var out [][]int
	var rec func(k int)
	rec = func(k int) {
		if k == n {
			p := make([]int, n)
			copy(p, idx)
			out = append(out, p)
			return
		}
		for i := k; i < n; i++ {
			idx[k], idx[i] = idx[i], idx[k]
			rec(k + 1)
			idx[k], idx[i] = idx[i], idx[k]
		}
	}
	rec(0)
	return out
}
