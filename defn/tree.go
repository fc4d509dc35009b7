package defn

import (
	"fmt"
	"strings"

	"github.com/boolcomb/nicesets/conn"
)

// A Tree is a composition witness: a finite tree whose internal nodes are
// labeled by basis connectives (child count = arity) and whose leaves are
// input-variable references. Shapes need not be balanced; a leaf may sit
// directly under the root while a sibling subtree goes deeper. Nodes live in
// an arena and refer to each other by index, so enumeration can share
// subtrees freely.
type Tree struct {
	nodes []treeNode
	root  int
	arity int
}

type treeNode struct {
	leaf bool
	v    int // input index, when leaf
	fn   conn.Connective
	kids []int
}

// arena accumulates nodes during a search. Many partial trees share nodes;
// a Tree is extracted by copying the part reachable from one root.
type arena struct {
	nodes []treeNode
}

func (a *arena) leaf(v int) int {
	a.nodes = append(a.nodes, treeNode{leaf: true, v: v})
	return len(a.nodes) - 1
}

func (a *arena) apply(fn conn.Connective, kids []int) int {
	a.nodes = append(a.nodes, treeNode{fn: fn, kids: kids})
	return len(a.nodes) - 1
}

// extract copies the subtree rooted at root into a standalone Tree of the
// given target arity.
func (a *arena) extract(root, arity int) *Tree {
	t := &Tree{arity: arity}
	remap := make(map[int]int)
	var copyNode func(i int) int
	copyNode = func(i int) int {
		if j, ok := remap[i]; ok {
			return j
		}
		n := a.nodes[i]
		nn := treeNode{leaf: n.leaf, v: n.v, fn: n.fn}
		if len(n.kids) > 0 {
			nn.kids = make([]int, len(n.kids))
			for k, kid := range n.kids {
				nn.kids[k] = copyNode(kid)
			}
		}
		t.nodes = append(t.nodes, nn)
		j := len(t.nodes) - 1
		remap[i] = j
		return j
	}
	t.root = copyNode(root)
	return t
}

// leafTree returns the degenerate pass-through witness for projections in
// truth-functional mode: a single leaf reading input v.
func leafTree(arity, v int) *Tree {
	return &Tree{nodes: []treeNode{{leaf: true, v: v}}, root: 0, arity: arity}
}

// memberTree returns the depth-1 witness fn(x0, ..., xk-1) for direct basis
// membership.
func memberTree(fn conn.Connective, arity int) *Tree {
	t := &Tree{arity: arity}
	kids := make([]int, fn.Arity())
	for i := range kids {
		t.nodes = append(t.nodes, treeNode{leaf: true, v: i})
		kids[i] = len(t.nodes) - 1
	}
	t.nodes = append(t.nodes, treeNode{fn: fn, kids: kids})
	t.root = len(t.nodes) - 1
	return t
}

// constantTree returns a witness applying the constant basis function fn at
// the root, feeding it target-arity variables. It returns nil when no legal
// leaves exist (positive-arity constant, nullary target).
func constantTree(fn conn.Connective, arity int) *Tree {
	if fn.Arity() > 0 && arity == 0 {
		return nil
	}
	t := &Tree{arity: arity}
	kids := make([]int, fn.Arity())
	for i := range kids {
		t.nodes = append(t.nodes, treeNode{leaf: true, v: i % arity})
		kids[i] = len(t.nodes) - 1
	}
	t.nodes = append(t.nodes, treeNode{fn: fn, kids: kids})
	t.root = len(t.nodes) - 1
	return t
}

// Arity returns the arity of the function the tree denotes.
func (t *Tree) Arity() int { return t.arity }

// Eval evaluates the tree on an explicit input assignment.
func (t *Tree) Eval(args ...bool) bool {
	if len(args) != t.arity {
		panic(fmt.Sprintf("defn: tree expects %d arguments, got %d", t.arity, len(args)))
	}
	return t.eval(t.root, args)
}

func (t *Tree) eval(i int, args []bool) bool {
	n := &t.nodes[i]
	if n.leaf {
		return args[n.v]
	}
	kids := make([]bool, len(n.kids))
	for k, kid := range n.kids {
		kids[k] = t.eval(kid, args)
	}
	return n.fn.Eval(kids...)
}

// Table evaluates the tree on every input assignment and returns the truth
// table it denotes.
func (t *Tree) Table() uint32 {
	var table uint32
	args := make([]bool, t.arity)
	rows := 1 << t.arity
	for row := 0; row < rows; row++ {
		for i := 0; i < t.arity; i++ {
			args[i] = row>>(t.arity-1-i)&1 == 1
		}
		if t.Eval(args...) {
			table |= 1 << row
		}
	}
	return table
}

// Verify replays the witness against every row of the target's truth table.
func (t *Tree) Verify(target conn.Connective) bool {
	return t.arity == target.Arity() && t.Table() == target.Table()
}

// Depth returns the maximum number of nested basis applications.
// A bare leaf has depth 0.
func (t *Tree) Depth() int {
	return t.depth(t.root)
}

func (t *Tree) depth(i int) int {
	n := &t.nodes[i]
	if n.leaf {
		return 0
	}
	max := 0
	for _, kid := range n.kids {
		if d := t.depth(kid); d > max {
			max = d
		}
	}
	return max + 1
}

// String renders the witness as a formula, e.g. "NOR(NOT_X(x0, x1), x0)".
func (t *Tree) String() string {
	var b strings.Builder
	t.render(&b, t.root)
	return b.String()
}

func (t *Tree) render(b *strings.Builder, i int) {
	n := &t.nodes[i]
	if n.leaf {
		fmt.Fprintf(b, "x%d", n.v)
		return
	}
	b.WriteString(n.fn.Name())
	if len(n.kids) == 0 {
		return
	}
	b.WriteByte('(')
	for k, kid := range n.kids {
		if k > 0 {
			b.WriteString(", ")
		}
		t.render(b, kid)
	}
	b.WriteByte(')')
}
