package conn

import (
	"fmt"
	"testing"

	"github.com/pkg/errors"
)

func TestEval(t *testing.T) {
	for _, x := range []bool{false, true} {
		for _, y := range []bool{false, true} {
			if And.Eval(x, y) != (x && y) {
				t.Errorf("AND(%v, %v) wrong", x, y)
			}
			if Or.Eval(x, y) != (x || y) {
				t.Errorf("OR(%v, %v) wrong", x, y)
			}
			if Xor.Eval(x, y) != (x != y) {
				t.Errorf("XOR(%v, %v) wrong", x, y)
			}
			if Nand.Eval(x, y) != !(x && y) {
				t.Errorf("NAND(%v, %v) wrong", x, y)
			}
		}
		if Not.Eval(x) != !x {
			t.Errorf("NOT(%v) wrong", x)
		}
	}
	if !True.Eval() || False.Eval() {
		t.Errorf("nullary constants wrong")
	}
}

func TestNewBounds(t *testing.T) {
	if _, err := New(-1, 0, ""); !errors.Is(err, ErrArity) {
		t.Errorf("negative arity: expected ErrArity, got %v", err)
	}
	if _, err := New(MaxArity+1, 0, ""); !errors.Is(err, ErrArity) {
		t.Errorf("arity %d: expected ErrArity, got %v", MaxArity+1, err)
	}
	if _, err := New(1, 0b100, ""); !errors.Is(err, ErrTable) {
		t.Errorf("oversized table: expected ErrTable, got %v", err)
	}
	if _, err := New(2, 0b1111, ""); err != nil {
		t.Errorf("valid table rejected: %v", err)
	}
}

func TestIsProjection(t *testing.T) {
	tests := []struct {
		c    Connective
		arg  int
		want bool
	}{
		{ProjX, 0, true},
		{ProjY, 1, true},
		{Identity, 0, true},
		{And, 0, false},
		{Not, 0, false},
		{TrueBinary, 0, false},
	}
	for _, tt := range tests {
		arg, ok := tt.c.IsProjection()
		if ok != tt.want || (ok && arg != tt.arg) {
			t.Errorf("%s.IsProjection() = (%d, %v), want (%d, %v)", tt.c, arg, ok, tt.arg, tt.want)
		}
	}
}

func TestIsConstant(t *testing.T) {
	if v, ok := TrueBinary.IsConstant(); !ok || !v {
		t.Errorf("TRUE_2 should be constant true")
	}
	if v, ok := FalseUnary.IsConstant(); !ok || v {
		t.Errorf("FALSE_1 should be constant false")
	}
	if _, ok := Xor.IsConstant(); ok {
		t.Errorf("XOR is not constant")
	}
	if v, ok := False.IsConstant(); !ok || v {
		t.Errorf("nullary FALSE should be constant false")
	}
}

func TestGenerateAll(t *testing.T) {
	for arity := 0; arity <= 2; arity++ {
		all, err := GenerateAll(arity)
		if err != nil {
			t.Fatalf("GenerateAll(%d): %v", arity, err)
		}
		if uint64(len(all)) != Count(arity) {
			t.Errorf("GenerateAll(%d) returned %d functions, want %d", arity, len(all), Count(arity))
		}
	}
	if _, err := GenerateAll(MaxGenArity + 1); !errors.Is(err, ErrArity) {
		t.Errorf("expected ErrArity for arity %d, got %v", MaxGenArity+1, err)
	}
}

func TestByName(t *testing.T) {
	c, ok := ByName("and")
	if !ok || !c.Equal(And) {
		t.Errorf("ByName(and) failed")
	}
	c, ok = ByName("NEGATION")
	if !ok || !c.Equal(Not) {
		t.Errorf("ByName(NEGATION) should alias NOT")
	}
	if _, ok := ByName("FROBNICATE"); ok {
		t.Errorf("ByName accepted an unknown name")
	}
}

func TestAllBinaryTableOrder(t *testing.T) {
	all := AllBinary()
	if len(all) != 16 {
		t.Fatalf("expected 16 binary connectives, got %d", len(all))
	}
	for i, c := range all {
		if c.Arity() != 2 || c.Table() != uint32(i) {
			t.Errorf("position %d holds %s with table %#b", i, c, c.Table())
		}
	}
}

func ExampleConnective_Eval() {
	fmt.Println(And.Eval(true, false), Or.Eval(true, false))
	// Output: false true
}
