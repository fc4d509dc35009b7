package search

import (
	"context"

	"github.com/sirupsen/logrus"

	"github.com/boolcomb/nicesets/conn"
)

// arityOrder is the admission order for incremental growth. Binary
// connectives carry the known small maxima, so they come first; unary
// connectives are cheap to add, and wider arities follow only if the
// budget allows.
var arityOrder = []int{2, 1, 3, 4}

// FindIncremental grows the pool one arity class at a time and reruns the
// maximum search after each admission, keeping the best result seen. Growth
// stops once Patience consecutive admissions fail to improve the maximum,
// or when every arity up to maxArity has been admitted. An inconclusive
// pass never overwrites a conclusive best of the same size.
func FindIncremental(ctx context.Context, maxArity int, opts Options) (Result, error) {
	opts = opts.withDefaults()
	if maxArity < 1 {
		maxArity = 2
	}
	if maxArity > conn.MaxGenArity {
		maxArity = conn.MaxGenArity
	}

	var best Result
	conclusive := true
	stopped := ""
	var pool []conn.Connective
	misses := 0

	for _, ar := range arityOrder {
		if ar > maxArity {
			continue
		}
		class, err := conn.GenerateAll(ar)
		if err != nil {
			return best, err
		}
		pool = append(pool, class...)
		opts.Logger.WithFields(logrus.Fields{"arity": ar, "pool": len(pool)}).Info("admitted arity class")

		res, err := FindMaximumNiceSet(ctx, pool, opts)
		if err != nil {
			return best, err
		}
		if !res.Conclusive {
			conclusive = false
			if stopped == "" {
				stopped = res.Stopped
			}
		}
		improved := res.MaxSize > best.MaxSize
		if improved || best.Sets == nil {
			best = res
		}
		if improved {
			misses = 0
		} else {
			misses++
		}
		if misses >= opts.Patience || ctx.Err() != nil {
			break
		}
	}
	best.Conclusive = conclusive
	best.Stopped = stopped
	return best, nil
}
