package defn

import (
	"context"

	"github.com/boolcomb/nicesets/conn"
)

// enumerator is the exhaustive strategy: it computes the set of truth tables
// of the target's arity reachable by composition trees of bounded depth.
// Round k applies every basis function to every combination of trees built
// by round k-1. Asymmetric shapes, such as a raw variable next to a deep
// subtree, fall out of the construction rather than needing a pattern
// catalogue.
type enumerator struct {
	cache *Cache
}

// pooled is one table available as a child for the current round.
type pooled struct {
	table uint32
	node  int
	depth int
}

// reachEntry tracks one reachable table: a witness node in the arena, the
// first depth it was reached at, and whether it was produced by a basis
// application (round 0 variables don't count as definable on their own).
type reachEntry struct {
	node    int
	depth   int
	applied bool
}

func (e enumerator) Search(ctx context.Context, target conn.Connective, basis []conn.Connective, maxDepth int) (Result, error) {
	res := Result{Outcome: Undefinable, Depth: maxDepth, Strategy: Enumeration}
	fp := Fingerprint(basis)
	if out, d, ok := e.cache.lookup(fp, target, maxDepth); ok {
		res.Outcome = out
		res.Depth = d
		return res, nil
	}

	n := target.Arity()
	rows := target.Rows()
	want := target.Table()

	ar := &arena{}
	reached := make(map[uint32]reachEntry)

	// Round 0: bare variable leaves.
	for v := 0; v < n; v++ {
		t := projTable(n, v)
		if _, ok := reached[t]; !ok {
			reached[t] = reachEntry{node: ar.leaf(v), depth: 0}
		}
	}

	snapshot := func() []pooled {
		ps := make([]pooled, 0, len(reached))
		for t, en := range reached {
			ps = append(ps, pooled{table: t, node: en.node, depth: en.depth})
		}
		return ps
	}

	fixpoint := false
	depth := 0
	for depth = 1; depth <= maxDepth; depth++ {
		if err := ctx.Err(); err != nil {
			return Result{Outcome: Indet, Depth: depth, Strategy: Enumeration}, nil
		}
		pool := snapshot()
		grew := false
		for _, b := range basis {
			k := b.Arity()
			kids := make([]int, k)
			pick := make([]int, k)
			var rec func(j int, fresh bool)
			rec = func(j int, fresh bool) {
				if j == k {
					// Children already existed before the previous
					// round, so this table was produced earlier.
					if !fresh && depth > 1 {
						return
					}
					table := applyTable(b, pool, pick, rows)
					if en, ok := reached[table]; ok && en.applied {
						return
					} else if ok {
						// Known as a bare variable; now also
						// producible by an application.
						en.applied = true
						en.node = ar.apply(b, append([]int(nil), kids...))
						en.depth = depth
						reached[table] = en
					} else {
						reached[table] = reachEntry{
							node:    ar.apply(b, append([]int(nil), kids...)),
							depth:   depth,
							applied: true,
						}
					}
					grew = true
					return
				}
				for pi := range pool {
					kids[j] = pool[pi].node
					pick[j] = pi
					rec(j+1, fresh || pool[pi].depth == depth-1)
				}
			}
			if k == 0 {
				rec(0, depth == 1)
			} else {
				rec(0, false)
			}
		}
		if en, ok := reached[want]; ok && en.applied {
			res.Outcome = Definable
			res.Depth = en.depth
			res.Witness = ar.extract(en.node, n)
			// The current round is only partially explored, so the
			// cached closure may not claim coverage for it.
			e.storeClosure(fp, n, depth-1, false, reached)
			return res, nil
		}
		if !grew {
			fixpoint = true
			break
		}
	}
	if depth > maxDepth {
		depth = maxDepth
	}
	e.storeClosure(fp, n, depth, fixpoint, reached)
	return res, nil
}

func (e enumerator) storeClosure(fp uint64, arity, depth int, complete bool, reached map[uint32]reachEntry) {
	if e.cache == nil {
		return
	}
	cl := &closure{depth: depth, complete: complete, reached: make(map[uint32]int, len(reached))}
	for t, en := range reached {
		if en.applied {
			cl.reached[t] = en.depth
		}
	}
	e.cache.store(fp, arity, cl)
}

// projTable is the truth table, at the given arity, of the function that
// returns argument v.
func projTable(arity, v int) uint32 {
	var t uint32
	rows := 1 << arity
	for row := 0; row < rows; row++ {
		if row>>(arity-1-v)&1 == 1 {
			t |= 1 << row
		}
	}
	return t
}

// applyTable evaluates b over the child tables selected by pick, row by row.
func applyTable(b conn.Connective, pool []pooled, pick []int, rows int) uint32 {
	var out uint32
	for row := 0; row < rows; row++ {
		idx := 0
		for _, pi := range pick {
			idx = idx<<1 | int(pool[pi].table>>row&1)
		}
		if b.Bit(idx) == 1 {
			out |= 1 << row
		}
	}
	return out
}
