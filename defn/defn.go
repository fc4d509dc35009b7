package defn

import (
	"context"
	"time"

	"github.com/pkg/errors"

	"github.com/boolcomb/nicesets/conn"
)

// ErrWitness reports that a strategy produced a composition tree that does
// not actually evaluate to its target. It always indicates a bug in the
// strategy and is never swallowed.
var ErrWitness = errors.New("defn: witness fails verification")

// ErrDepth reports a non-positive depth bound.
var ErrDepth = errors.New("defn: depth bound must be at least 1")

// Options tune a definability query. The zero value picks the strategy
// automatically, uses no cache and lets the SAT backend run unbounded.
type Options struct {
	Strategy      Strategy
	Cache         *Cache
	SolverTimeout time.Duration
}

// Backend is a depth-bounded search for a composition of basis connectives
// whose truth table matches the target.
type Backend interface {
	Search(ctx context.Context, target conn.Connective, basis []conn.Connective, maxDepth int) (Result, error)
}

// IsDefinable reports whether target can be expressed as a composition of
// the basis connectives within maxDepth nested applications.
//
// Under TruthFunctional mode, projections are definable from any non-empty
// basis and constant functions of equal value define each other regardless
// of arity; these cases resolve without search. Under Syntactic mode a
// witness must contain at least one basis application, so even a projection
// has to be built, for instance AND(x0, x0).
//
// A Definable result found by search carries a witness tree that has been
// re-verified against the target. Results served from the cache carry none.
func IsDefinable(ctx context.Context, target conn.Connective, basis []conn.Connective, maxDepth int, mode Mode, opts *Options) (Result, error) {
	if opts == nil {
		opts = &Options{}
	}
	if maxDepth < 1 {
		return Result{}, ErrDepth
	}
	if len(basis) == 0 {
		return Result{Outcome: Undefinable, Depth: maxDepth}, nil
	}

	if mode == TruthFunctional {
		if arg, ok := target.IsProjection(); ok {
			return Result{Outcome: Definable, Witness: leafTree(target.Arity(), arg), Depth: 0}, nil
		}
		if val, ok := target.IsConstant(); ok {
			for _, b := range basis {
				bv, bok := b.IsConstant()
				if !bok || bv != val {
					continue
				}
				// The axiom does not demand a syntactic witness; one
				// is attached when a tree shape exists.
				if w := constantTree(b, target.Arity()); w != nil {
					return Result{Outcome: Definable, Witness: w, Depth: w.Depth()}, nil
				}
				return Result{Outcome: Definable, Depth: 0}, nil
			}
		}
	}

	for _, b := range basis {
		if b.Equal(target) {
			return Result{Outcome: Definable, Witness: memberTree(b, target.Arity()), Depth: 1}, nil
		}
	}

	backend := pickBackend(target, basis, opts)
	res, err := backend.Search(ctx, target, basis, maxDepth)
	if err != nil {
		return res, err
	}
	if res.Outcome == Definable && res.Witness != nil && !res.Witness.Verify(target) {
		return Result{Outcome: Indet, Depth: res.Depth, Strategy: res.Strategy},
			errors.Wrapf(ErrWitness, "target %s via %s", target, res.Witness)
	}
	return res, nil
}

func pickBackend(target conn.Connective, basis []conn.Connective, opts *Options) Backend {
	st := opts.Strategy
	if st == Auto {
		if target.Arity() >= 4 || len(basis) > 10 {
			st = SAT
		} else {
			st = Enumeration
		}
	}
	switch st {
	case SAT:
		return satSearcher{cache: opts.Cache, timeout: opts.SolverTimeout}
	default:
		return enumerator{cache: opts.Cache}
	}
}
