package main

import (
	"time"

	"github.com/pkg/errors"
	"github.com/spf13/pflag"

	"github.com/boolcomb/nicesets/conn"
	"github.com/boolcomb/nicesets/defn"
	"github.com/boolcomb/nicesets/search"
)

// engineFlags are the options shared by every command that runs the
// definability engine.
type engineFlags struct {
	depth         int
	mode          string
	strategy      string
	solverTimeout time.Duration
	maxCandidates int
	workers       int
	reduce        bool
}

func (f *engineFlags) register(fs *pflag.FlagSet) {
	fs.IntVar(&f.depth, "depth", search.DefaultDepth, "composition depth bound")
	fs.StringVar(&f.mode, "mode", "syntactic", "definability mode: syntactic or truth-functional")
	fs.StringVar(&f.strategy, "strategy", "auto", "definability strategy: auto, enum or sat")
	fs.DurationVar(&f.solverTimeout, "timeout", 0, "per-query SAT solver timeout (0 means none)")
	fs.IntVar(&f.maxCandidates, "max-candidates", 0, "candidate budget for searches (0 means unlimited)")
	fs.IntVar(&f.workers, "workers", 0, "parallel candidate checkers (0 means one per CPU)")
	fs.BoolVar(&f.reduce, "reduce", false, "symmetry-reduce the pool before searching")
}

func (f *engineFlags) options() (search.Options, error) {
	mode, err := defn.ParseMode(f.mode)
	if err != nil {
		return search.Options{}, err
	}
	strategy, err := defn.ParseStrategy(f.strategy)
	if err != nil {
		return search.Options{}, err
	}
	return search.Options{
		Depth:         f.depth,
		Mode:          mode,
		Strategy:      strategy,
		MaxCandidates: f.maxCandidates,
		Workers:       f.workers,
		SolverTimeout: f.solverTimeout,
		Reduce:        f.reduce,
		Logger:        log,
	}, nil
}

// parseConnectives resolves command-line names like AND, NOR or NOT_X into
// connectives from the named catalogue.
func parseConnectives(names []string) ([]conn.Connective, error) {
	out := make([]conn.Connective, 0, len(names))
	for _, name := range names {
		c, ok := conn.ByName(name)
		if !ok {
			return nil, errors.Errorf("unknown connective %q", name)
		}
		out = append(out, c)
	}
	return out, nil
}
