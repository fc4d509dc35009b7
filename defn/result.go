package defn

import "github.com/pkg/errors"

// Outcome is the three-valued verdict of a definability check.
type Outcome byte

const (
	// Indet means no verdict was reached: the solver timed out, the
	// context expired, or a search budget ran out. It must never be
	// treated as Undefinable.
	Indet Outcome = iota
	// Definable means a composition witness exists within the depth bound.
	Definable
	// Undefinable means the search space for the depth bound was covered
	// without finding a witness.
	Undefinable
)

func (o Outcome) String() string {
	switch o {
	case Indet:
		return "INDETERMINATE"
	case Definable:
		return "DEFINABLE"
	case Undefinable:
		return "UNDEFINABLE"
	default:
		panic("invalid outcome")
	}
}

// Strategy selects which backend performs the composition search.
type Strategy byte

const (
	// Auto picks a backend from the target arity and basis size.
	Auto Strategy = iota
	// Enumeration forces the truth-table closure backend.
	Enumeration
	// SAT forces the gini-encoded backend.
	SAT
)

func (s Strategy) String() string {
	switch s {
	case Auto:
		return "auto"
	case Enumeration:
		return "enumeration"
	case SAT:
		return "sat"
	default:
		panic("invalid strategy")
	}
}

// ParseStrategy converts a command-line spelling into a Strategy.
func ParseStrategy(s string) (Strategy, error) {
	switch s {
	case "auto":
		return Auto, nil
	case "enum", "enumeration":
		return Enumeration, nil
	case "sat":
		return SAT, nil
	}
	return 0, errors.Errorf("unknown strategy %q", s)
}

// Result is the outcome of a definability check. Witness is set when the
// backend produced one; cache hits and the truth-functional axioms may
// answer Definable without a tree. Depth is the composition depth of the
// witness when one was found, otherwise the bound that was searched.
type Result struct {
	Outcome  Outcome
	Witness  *Tree
	Depth    int
	Strategy Strategy
}
