// Package search finds nice sets: collections of Boolean connectives that
// are functionally complete while no member is a bounded composition of the
// others. It drives the completeness checker and the definability engine
// over candidate subsets of a connective pool, either exhaustively at each
// size or by admitting one arity class at a time.
package search

import (
	"context"
	"io"
	"runtime"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"

	"github.com/boolcomb/nicesets/conn"
	"github.com/boolcomb/nicesets/defn"
	"github.com/boolcomb/nicesets/post"
	"github.com/boolcomb/nicesets/sym"
)

const (
	// DefaultDepth is the composition depth bound used when Options.Depth
	// is unset.
	DefaultDepth = 3

	// DefaultPatience is how many consecutive fruitless increments the
	// growth loops tolerate before concluding.
	DefaultPatience = 2
)

// Stop reasons reported on an inconclusive Result.
const (
	StoppedBudget  = "candidate budget exhausted"
	StoppedCtx     = "context canceled or deadline exceeded"
	StoppedUnknown = "definability backend returned unknown"
)

// Options configure a search. The zero value searches the whole pool at
// depth DefaultDepth, Syntactic mode, automatic strategy, one worker per
// CPU, no candidate budget, and no symmetry reduction.
type Options struct {
	Depth         int
	Mode          defn.Mode
	Strategy      defn.Strategy
	MaxSize       int // largest subset size to try; 0 means the pool size
	MaxCandidates int // total candidate budget across all sizes; 0 means unlimited
	Workers       int
	SolverTimeout time.Duration
	Patience      int
	Reduce        bool // symmetry-reduce the pool before searching
	Logger        logrus.FieldLogger
}

func (o Options) withDefaults() Options {
	if o.Depth == 0 {
		o.Depth = DefaultDepth
	}
	if o.Workers <= 0 {
		o.Workers = runtime.GOMAXPROCS(0)
	}
	if o.Patience <= 0 {
		o.Patience = DefaultPatience
	}
	if o.Logger == nil {
		l := logrus.New()
		l.SetOutput(io.Discard)
		o.Logger = l
	}
	return o
}

// NiceSet is one complete and independent set of connectives.
type NiceSet []conn.Connective

func (s NiceSet) String() string {
	names := make([]string, len(s))
	for i, c := range s {
		names[i] = c.String()
	}
	return "{" + strings.Join(names, ", ") + "}"
}

// Metadata records how a result was obtained.
type Metadata struct {
	Depth      int           `json:"depth"`
	Mode       string        `json:"mode"`
	Strategy   string        `json:"strategy"`
	Elapsed    time.Duration `json:"elapsed"`
	PoolSize   int           `json:"pool_size"`
	Candidates int           `json:"candidates"`
}

// Result is the outcome of a maximum-size search. When Conclusive is false
// the reported maximum is a lower bound only and Stopped says why coverage
// ended early.
type Result struct {
	MaxSize    int
	Sets       []NiceSet
	Metadata   Metadata
	Conclusive bool
	Stopped    string
}

// Verdict classifies a single candidate set.
type Verdict uint8

const (
	Unknown Verdict = iota
	Nice
	NotNice
)

func (v Verdict) String() string {
	switch v {
	case Unknown:
		return "unknown"
	case Nice:
		return "nice"
	case NotNice:
		return "not nice"
	}
	panic("invalid verdict")
}

// Validate classifies one candidate set: complete and pairwise independent
// means Nice, a completeness or independence failure means NotNice, and a
// definability query that ran out of solver time or budget means Unknown.
func Validate(ctx context.Context, set []conn.Connective, opts Options) (Verdict, error) {
	opts = opts.withDefaults()
	return checkCandidate(ctx, set, opts, defn.NewCache())
}

func checkCandidate(ctx context.Context, set []conn.Connective, opts Options, cache *defn.Cache) (Verdict, error) {
	if !post.IsComplete(set) {
		return NotNice, nil
	}
	dopts := &defn.Options{Strategy: opts.Strategy, Cache: cache, SolverTimeout: opts.SolverTimeout}
	unknown := false
	rest := make([]conn.Connective, 0, len(set)-1)
	for i, member := range set {
		rest = rest[:0]
		rest = append(rest, set[:i]...)
		rest = append(rest, set[i+1:]...)
		res, err := defn.IsDefinable(ctx, member, rest, opts.Depth, opts.Mode, dopts)
		if err != nil {
			return Unknown, err
		}
		switch res.Outcome {
		case defn.Definable:
			return NotNice, nil
		case defn.Indet:
			unknown = true
		}
	}
	if unknown {
		return Unknown, nil
	}
	return Nice, nil
}

// budget is a shared candidate counter. A zero limit means unlimited; the
// counter still tallies how many candidates were checked.
type budget struct {
	mu      sync.Mutex
	used    int
	limit   int
	drained bool
}

func newBudget(limit int) *budget {
	return &budget{limit: limit}
}

func (b *budget) take() bool {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.limit > 0 && b.used >= b.limit {
		b.drained = true
		return false
	}
	b.used++
	return true
}

func (b *budget) exhausted() bool {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.drained
}

func (b *budget) spent() int {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.used
}

// FindNiceSetsOfSize enumerates every size-element subset of the pool and
// returns the nice ones in a deterministic order. The second return value
// is false when coverage was cut short by the context, the candidate
// budget, or an Unknown verdict, in which case the returned sets are still
// valid but the absence of others is not proven.
func FindNiceSetsOfSize(ctx context.Context, pool []conn.Connective, size int, opts Options) ([]NiceSet, bool, error) {
	opts = opts.withDefaults()
	sets, conclusive, err := findSize(ctx, pool, size, opts, defn.NewCache(), newBudget(opts.MaxCandidates))
	return sets, conclusive, err
}

type hit struct {
	ord int
	set NiceSet
}

func findSize(ctx context.Context, pool []conn.Connective, size int, opts Options, cache *defn.Cache, bud *budget) ([]NiceSet, bool, error) {
	if size <= 0 || size > len(pool) {
		return nil, true, nil
	}

	type job struct {
		ord  int
		pick []int
	}
	jobs := make(chan job)

	g, gctx := errgroup.WithContext(ctx)

	conclusive := true
	var mu sync.Mutex
	var hits []hit

	g.Go(func() error {
		defer close(jobs)
		ord := 0
		idx := make([]int, size)
		for i := range idx {
			idx[i] = i
		}
		for {
			if !bud.take() {
				mu.Lock()
				conclusive = false
				mu.Unlock()
				return nil
			}
			pick := append([]int(nil), idx...)
			select {
			case jobs <- job{ord: ord, pick: pick}:
			case <-gctx.Done():
				mu.Lock()
				conclusive = false
				mu.Unlock()
				return nil
			}
			ord++
			// Advance to the next combination in lexicographic order.
			i := size - 1
			for i >= 0 && idx[i] == len(pool)-size+i {
				i--
			}
			if i < 0 {
				return nil
			}
			idx[i]++
			for j := i + 1; j < size; j++ {
				idx[j] = idx[j-1] + 1
			}
		}
	})

	for w := 0; w < opts.Workers; w++ {
		g.Go(func() error {
			set := make([]conn.Connective, size)
			for jb := range jobs {
				for i, pi := range jb.pick {
					set[i] = pool[pi]
				}
				v, err := checkCandidate(gctx, set, opts, cache)
				if err != nil {
					return err
				}
				switch v {
				case Nice:
					mu.Lock()
					hits = append(hits, hit{ord: jb.ord, set: append(NiceSet(nil), set...)})
					mu.Unlock()
				case Unknown:
					mu.Lock()
					conclusive = false
					mu.Unlock()
				}
			}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, false, err
	}
	if ctx.Err() != nil {
		conclusive = false
	}

	sort.Slice(hits, func(i, j int) bool { return hits[i].ord < hits[j].ord })
	sets := make([]NiceSet, len(hits))
	for i, h := range hits {
		sets[i] = h.set
	}
	return sets, conclusive, nil
}

// FindMaximumNiceSet searches the pool for the largest nice set, trying
// sizes in increasing order and giving up on growth after Patience
// consecutive sizes yield nothing.
func FindMaximumNiceSet(ctx context.Context, pool []conn.Connective, opts Options) (Result, error) {
	opts = opts.withDefaults()
	start := time.Now()

	if opts.Reduce {
		before := len(pool)
		pool = sym.Reduce(pool)
		opts.Logger.WithFields(logrus.Fields{
			"before": before,
			"after":  len(pool),
			"orbits": sym.Orbits(pool),
		}).Debug("symmetry-reduced pool")
	}

	res := Result{Conclusive: true}
	res.Metadata = Metadata{
		Depth:    opts.Depth,
		Mode:     opts.Mode.String(),
		Strategy: opts.Strategy.String(),
		PoolSize: len(pool),
	}

	maxSize := opts.MaxSize
	if maxSize <= 0 || maxSize > len(pool) {
		maxSize = len(pool)
	}

	cache := defn.NewCache()
	bud := newBudget(opts.MaxCandidates)
	misses := 0
	for size := 1; size <= maxSize; size++ {
		sets, conclusive, err := findSize(ctx, pool, size, opts, cache, bud)
		if err != nil {
			return res, err
		}
		if !conclusive {
			res.Conclusive = false
			switch {
			case ctx.Err() != nil:
				res.Stopped = StoppedCtx
			case bud.exhausted():
				res.Stopped = StoppedBudget
			default:
				res.Stopped = StoppedUnknown
			}
		}
		if len(sets) > 0 {
			res.MaxSize = size
			res.Sets = sets
			misses = 0
		} else {
			misses++
		}
		opts.Logger.WithFields(logrus.Fields{"size": size, "found": len(sets)}).Info("size pass done")
		if ctx.Err() != nil || bud.exhausted() {
			break
		}
		if misses >= opts.Patience && res.MaxSize > 0 {
			break
		}
	}

	res.Metadata.Elapsed = time.Since(start)
	res.Metadata.Candidates = bud.spent()
	return res, nil
}
