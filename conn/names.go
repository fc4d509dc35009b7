package conn

import "strings"

// Standard catalogue of named connectives. Binary tables use the MSB-first
// row convention documented in doc.go: for inputs (x, y) the rows are
// (0,0)=0, (0,1)=1, (1,0)=2, (1,1)=3.
var (
	False = MustNew(0, 0b0, "FALSE")
	True  = MustNew(0, 0b1, "TRUE")

	Identity   = MustNew(1, 0b10, "ID")  // f(x) = x
	Not        = MustNew(1, 0b01, "NOT") // f(x) = !x
	FalseUnary = MustNew(1, 0b00, "FALSE_1")
	TrueUnary  = MustNew(1, 0b11, "TRUE_1")

	And     = MustNew(2, 0b1000, "AND")
	Or      = MustNew(2, 0b1110, "OR")
	Xor     = MustNew(2, 0b0110, "XOR")
	Implies = MustNew(2, 0b1011, "IMP")
	Iff     = MustNew(2, 0b1001, "IFF")

	Nand = MustNew(2, 0b0111, "NAND")
	Nor  = MustNew(2, 0b0001, "NOR")

	ProjX = MustNew(2, 0b1100, "PROJ_X") // f(x,y) = x
	ProjY = MustNew(2, 0b1010, "PROJ_Y") // f(x,y) = y
	NotX  = MustNew(2, 0b0011, "NOT_X")  // f(x,y) = !x
	NotY  = MustNew(2, 0b0101, "NOT_Y")  // f(x,y) = !y

	FalseBinary = MustNew(2, 0b0000, "FALSE_2")
	TrueBinary  = MustNew(2, 0b1111, "TRUE_2")

	Inhibit     = MustNew(2, 0b0010, "INHIBIT")      // x & !y
	ConvInhibit = MustNew(2, 0b0100, "CONV_INHIBIT") // !x & y
	ConvImplies = MustNew(2, 0b1101, "CONV_IMP")     // y -> x
)

// AllBinary returns the sixteen binary connectives in truth table order,
// carrying their conventional names where one exists.
func AllBinary() []Connective {
	return []Connective{
		FalseBinary, Nor, Inhibit, NotX,
		ConvInhibit, NotY, Xor, Nand,
		And, Iff, ProjY, Implies,
		ProjX, ConvImplies, Or, TrueBinary,
	}
}

// AllUnary returns the four unary connectives.
func AllUnary() []Connective {
	return []Connective{FalseUnary, Not, Identity, TrueUnary}
}

// Constants returns the two nullary connectives.
func Constants() []Connective {
	return []Connective{False, True}
}

var byName = func() map[string]Connective {
	cs := []Connective{
		False, True, Identity, Not, FalseUnary, TrueUnary,
		And, Or, Xor, Implies, Iff, Nand, Nor,
		ProjX, ProjY, NotX, NotY, FalseBinary, TrueBinary,
		Inhibit, ConvInhibit, ConvImplies,
	}
	m := make(map[string]Connective, len(cs))
	for _, c := range cs {
		m[c.Name()] = c
	}
	m["NEGATION"] = Not
	m["IDENTITY"] = Identity
	m["IMPLIES"] = Implies
	m["XNOR"] = Iff
	return m
}()

// ByName looks up a connective from the standard catalogue by its
// conventional name, case-insensitively.
func ByName(name string) (Connective, bool) {
	c, ok := byName[strings.ToUpper(name)]
	return c, ok
}
