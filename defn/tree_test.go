package defn

import (
	"testing"

	"github.com/boolcomb/nicesets/conn"
)

func TestMemberTree(t *testing.T) {
	w := memberTree(conn.Nand, 2)
	if !w.Verify(conn.Nand) {
		t.Errorf("member witness does not evaluate to NAND")
	}
	if w.Depth() != 1 {
		t.Errorf("member witness depth = %d, want 1", w.Depth())
	}
	if s := w.String(); s != "NAND(x0, x1)" {
		t.Errorf("witness rendered as %q", s)
	}
}

func TestLeafTree(t *testing.T) {
	w := leafTree(2, 1)
	if !w.Verify(conn.ProjY) {
		t.Errorf("leaf witness does not evaluate to PROJ_Y")
	}
	if w.Depth() != 0 {
		t.Errorf("leaf depth = %d, want 0", w.Depth())
	}
	if s := w.String(); s != "x1" {
		t.Errorf("leaf rendered as %q", s)
	}
}

func TestConstantTree(t *testing.T) {
	if w := constantTree(conn.TrueUnary, 0); w != nil {
		t.Errorf("positive-arity constant cannot witness a nullary target")
	}
	w := constantTree(conn.TrueUnary, 2)
	if w == nil || !w.Verify(conn.TrueBinary) {
		t.Errorf("TRUE_1 witness for TRUE_2 wrong")
	}
	w = constantTree(conn.False, 2)
	if w == nil || !w.Verify(conn.FalseBinary) {
		t.Errorf("nullary FALSE witness for FALSE_2 wrong")
	}
}

func TestArenaExtract(t *testing.T) {
	// NOR(NOT_X(x0, x1), x0) is constant false.
	ar := &arena{}
	x0 := ar.leaf(0)
	x1 := ar.leaf(1)
	inner := ar.apply(conn.NotX, []int{x0, x1})
	root := ar.apply(conn.Nor, []int{inner, x0})
	w := ar.extract(root, 2)
	if !w.Verify(conn.FalseBinary) {
		t.Errorf("asymmetric tree evaluates to %#b, want constant false", w.Table())
	}
	if w.Depth() != 2 {
		t.Errorf("depth = %d, want 2", w.Depth())
	}
	if s := w.String(); s != "NOR(NOT_X(x0, x1), x0)" {
		t.Errorf("rendered as %q", s)
	}
}

func TestTreeEval(t *testing.T) {
	w := memberTree(conn.Implies, 2)
	for _, x := range []bool{false, true} {
		for _, y := range []bool{false, true} {
			want := !x || y
			if got := w.Eval(x, y); got != want {
				t.Errorf("IMP witness(%v, %v) = %v, want %v", x, y, got, want)
			}
		}
	}
}
