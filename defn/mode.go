package defn

import "github.com/pkg/errors"

// Mode selects the notion of definability used by IsDefinable.
type Mode byte

const (
	// Syntactic definability requires an explicit composition witness for
	// every claim. Functions of different arities are always distinct.
	Syntactic Mode = iota
	// TruthFunctional definability grants the clone-theoretic axioms
	// before any composition search: projections are definable from any
	// non-empty basis, and same-valued constants are mutually definable
	// regardless of arity.
	TruthFunctional
)

func (m Mode) String() string {
	switch m {
	case Syntactic:
		return "syntactic"
	case TruthFunctional:
		return "truth-functional"
	default:
		panic("invalid definability mode")
	}
}

// ParseMode converts a command-line spelling into a Mode.
func ParseMode(s string) (Mode, error) {
	switch s {
	case "syntactic":
		return Syntactic, nil
	case "truth-functional":
		return TruthFunctional, nil
	}
	return 0, errors.Errorf("unknown definability mode %q", s)
}
