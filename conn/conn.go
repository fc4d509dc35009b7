package conn

import (
	"fmt"
	"strings"

	"github.com/pkg/errors"
)

const (
	// MaxArity is the largest arity a single connective may have.
	MaxArity = 5
	// MaxGenArity is the largest arity accepted by GenerateAll. Arity 5
	// already means 2^32 distinct functions, which is out of reach for
	// exhaustive enumeration.
	MaxGenArity = 4
)

// ErrArity is returned when a requested arity exceeds the supported ceiling.
var ErrArity = errors.New("arity out of range")

// ErrTable is returned when a truth table value does not fit the given arity.
var ErrTable = errors.New("truth table out of range")

// A Connective is an n-ary Boolean function together with a cosmetic name.
type Connective struct {
	arity int
	table uint32
	name  string
}

// A Key identifies a connective up to equality: same arity, same table.
// It is comparable and suitable for map keys.
type Key struct {
	Arity uint8
	Table uint32
}

// New builds a connective of the given arity from its truth table value.
func New(arity int, table uint32, name string) (Connective, error) {
	if arity < 0 || arity > MaxArity {
		return Connective{}, errors.Wrapf(ErrArity, "arity %d", arity)
	}
	if uint64(table) >= uint64(1)<<(1<<arity) {
		return Connective{}, errors.Wrapf(ErrTable, "table %#b for arity %d", table, arity)
	}
	if name == "" {
		name = fmt.Sprintf("f%d_%d", arity, table)
	}
	return Connective{arity: arity, table: table, name: name}, nil
}

// MustNew is like New but panics on invalid input. It is meant for
// package-level catalogues and tests.
func MustNew(arity int, table uint32, name string) Connective {
	c, err := New(arity, table, name)
	if err != nil {
		panic(err)
	}
	return c
}

// Arity returns the number of inputs of c.
func (c Connective) Arity() int { return c.arity }

// Table returns the truth table of c as an integer.
func (c Connective) Table() uint32 { return c.table }

// Name returns the cosmetic name of c.
func (c Connective) Name() string { return c.name }

// WithName returns a copy of c carrying the given name.
func (c Connective) WithName(name string) Connective {
	c.name = name
	return c
}

// Rows returns the number of rows of the truth table, i.e. 2^arity.
func (c Connective) Rows() int { return 1 << c.arity }

// Bit returns the output of c on the given row index.
func (c Connective) Bit(row int) uint8 {
	return uint8(c.table>>row) & 1
}

// Eval evaluates c on an explicit input assignment.
// It panics if the number of arguments does not match the arity.
func (c Connective) Eval(args ...bool) bool {
	if len(args) != c.arity {
		panic(fmt.Sprintf("conn: %s expects %d arguments, got %d", c.name, c.arity, len(args)))
	}
	row := 0
	for _, a := range args {
		row <<= 1
		if a {
			row |= 1
		}
	}
	return c.Bit(row) == 1
}

// Equal reports whether c and o denote the same function.
// Names are ignored.
func (c Connective) Equal(o Connective) bool {
	return c.arity == o.arity && c.table == o.table
}

// Key returns the comparable identity of c.
func (c Connective) Key() Key {
	return Key{Arity: uint8(c.arity), Table: c.table}
}

// IsProjection reports whether c returns one of its arguments unchanged,
// ignoring the rest. On success, it returns the index of that argument.
func (c Connective) IsProjection() (arg int, ok bool) {
	for i := 0; i < c.arity; i++ {
		match := true
		for row := 0; row < c.Rows(); row++ {
			bit := uint8(row>>(c.arity-1-i)) & 1
			if c.Bit(row) != bit {
				match = false
				break
			}
		}
		if match {
			return i, true
		}
	}
	return 0, false
}

// IsConstant reports whether c outputs the same value on every row,
// and which value that is.
func (c Connective) IsConstant() (val bool, ok bool) {
	mask := tableMask(c.arity)
	switch c.table & mask {
	case 0:
		return false, true
	case mask:
		return true, true
	}
	return false, false
}

// GenerateAll returns every connective of the given arity, in truth table
// order. Arities above MaxGenArity yield ErrArity.
func GenerateAll(arity int) ([]Connective, error) {
	if arity < 0 || arity > MaxGenArity {
		return nil, errors.Wrapf(ErrArity, "cannot enumerate arity %d", arity)
	}
	n := uint64(1) << (1 << arity)
	all := make([]Connective, 0, n)
	for t := uint64(0); t < n; t++ {
		all = append(all, Connective{arity: arity, table: uint32(t), name: fmt.Sprintf("f%d_%d", arity, t)})
	}
	return all, nil
}

// Count returns the number of distinct connectives of the given arity,
// i.e. 2^(2^arity).
func Count(arity int) uint64 {
	return 1 << (1 << arity)
}

func (c Connective) String() string { return c.name }

// TruthTable renders the full table of c, one row per line, for display.
func (c Connective) TruthTable() string {
	var b strings.Builder
	fmt.Fprintf(&b, "%s (arity %d):\n", c.name, c.arity)
	if c.arity == 0 {
		fmt.Fprintf(&b, "  -> %d\n", c.Bit(0))
		return b.String()
	}
	for i := 0; i < c.arity; i++ {
		fmt.Fprintf(&b, "x%d ", i)
	}
	b.WriteString("| out\n")
	for row := 0; row < c.Rows(); row++ {
		for i := 0; i < c.arity; i++ {
			fmt.Fprintf(&b, " %d ", (row>>(c.arity-1-i))&1)
		}
		fmt.Fprintf(&b, "|  %d\n", c.Bit(row))
	}
	return b.String()
}

func tableMask(arity int) uint32 {
	rows := 1 << arity
	if rows >= 32 {
		return ^uint32(0)
	}
	return uint32(1)<<rows - 1
}
