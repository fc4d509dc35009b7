package defn

import (
	"context"
	"time"

	"github.com/irifrance/gini"
	"github.com/irifrance/gini/z"
	"github.com/pkg/errors"

	"github.com/boolcomb/nicesets/conn"
)

// satSearcher encodes the existence of a composition tree as a CNF formula
// and hands it to gini. The template is a complete b-ary tree, b the widest
// basis arity, with one selector variable per (node, choice) and one output
// variable per (node, row). Every interior node may choose a basis function
// or fall through to a bare input variable, so lopsided trees cost nothing
// extra. Depths are tried in increasing order; the first satisfiable depth
// yields the witness.
type satSearcher struct {
	cache   *Cache
	timeout time.Duration
}

// satChoice is one selectable role for a template node.
type satChoice struct {
	fn  conn.Connective
	v   int // input variable index when fn is unset
	isV bool
}

func (s satSearcher) Search(ctx context.Context, target conn.Connective, basis []conn.Connective, maxDepth int) (Result, error) {
	res := Result{Outcome: Undefinable, Depth: maxDepth, Strategy: SAT}
	fp := Fingerprint(basis)
	if s.cache != nil {
		if out, d, ok := s.cache.lookup(fp, target, maxDepth); ok {
			res.Outcome = out
			res.Depth = d
			return res, nil
		}
	}

	n := target.Arity()
	branch := 0
	nullary := false
	for _, b := range basis {
		if b.Arity() > branch {
			branch = b.Arity()
		}
		if b.Arity() == 0 {
			nullary = true
		}
	}
	if n == 0 && !nullary {
		// A nullary target needs constants at the leaves and there
		// are none to pick.
		return res, nil
	}
	if branch == 0 {
		branch = 1
	}

	for d := 1; d <= maxDepth; d++ {
		if err := ctx.Err(); err != nil {
			res.Outcome = Indet
			res.Depth = d
			return res, nil
		}
		out, w, err := s.solveDepth(target, basis, n, branch, d)
		if err != nil {
			return Result{Outcome: Indet, Depth: d, Strategy: SAT}, err
		}
		switch out {
		case Definable:
			res.Outcome = Definable
			res.Depth = d
			res.Witness = w
			return res, nil
		case Indet:
			res.Outcome = Indet
			res.Depth = d
			return res, nil
		}
	}
	return res, nil
}

// solveDepth builds and solves the template for one exact depth bound.
func (s satSearcher) solveDepth(target conn.Connective, basis []conn.Connective, n, branch, d int) (Outcome, *Tree, error) {
	rows := target.Rows()

	// Template nodes laid out heap-style: children of i start at i*branch+1.
	total := 0
	width := 1
	levelOf := make([]int, 0)
	for l := 0; l <= d; l++ {
		for i := 0; i < width; i++ {
			levelOf = append(levelOf, l)
		}
		total += width
		width *= branch
	}

	choicesOf := make([][]satChoice, total)
	for node := 0; node < total; node++ {
		var cs []satChoice
		for _, b := range basis {
			if levelOf[node] == d && b.Arity() > 0 {
				continue
			}
			cs = append(cs, satChoice{fn: b})
		}
		if node != 0 {
			for v := 0; v < n; v++ {
				cs = append(cs, satChoice{v: v, isV: true})
			}
		}
		choicesOf[node] = cs
	}
	if len(choicesOf[0]) == 0 {
		return Undefinable, nil, nil
	}

	g := gini.New()
	nv := 0
	newLit := func() z.Lit {
		nv++
		return z.Var(nv).Pos()
	}

	sel := make([][]z.Lit, total)
	outLit := make([][]z.Lit, total)
	for node := 0; node < total; node++ {
		sel[node] = make([]z.Lit, len(choicesOf[node]))
		for i := range sel[node] {
			sel[node][i] = newLit()
		}
		outLit[node] = make([]z.Lit, rows)
		for r := 0; r < rows; r++ {
			outLit[node][r] = newLit()
		}
	}

	for node := 0; node < total; node++ {
		cs := choicesOf[node]
		if len(cs) == 0 {
			continue
		}
		for _, m := range sel[node] {
			g.Add(m)
		}
		g.Add(0)
		for i := 0; i < len(sel[node]); i++ {
			for j := i + 1; j < len(sel[node]); j++ {
				g.Add(sel[node][i].Not())
				g.Add(sel[node][j].Not())
				g.Add(0)
			}
		}
		for ci, c := range cs {
			m := sel[node][ci]
			if c.isV {
				for r := 0; r < rows; r++ {
					o := outLit[node][r]
					if r>>(n-1-c.v)&1 == 0 {
						o = o.Not()
					}
					g.Add(m.Not())
					g.Add(o)
					g.Add(0)
				}
				continue
			}
			k := c.fn.Arity()
			for r := 0; r < rows; r++ {
				for pat := 0; pat < 1<<k; pat++ {
					g.Add(m.Not())
					for j := 0; j < k; j++ {
						child := node*branch + 1 + j
						cl := outLit[child][r]
						if pat>>(k-1-j)&1 == 1 {
							cl = cl.Not()
						}
						g.Add(cl)
					}
					o := outLit[node][r]
					if c.fn.Bit(pat) == 0 {
						o = o.Not()
					}
					g.Add(o)
					g.Add(0)
				}
			}
		}
	}

	for r := 0; r < rows; r++ {
		o := outLit[0][r]
		if target.Bit(r) == 0 {
			o = o.Not()
		}
		g.Add(o)
		g.Add(0)
	}

	var verdict int
	if s.timeout > 0 {
		verdict = g.GoSolve().Try(s.timeout)
	} else {
		verdict = g.Solve()
	}
	switch verdict {
	case 1:
	case -1:
		return Undefinable, nil, nil
	default:
		return Indet, nil, nil
	}

	ar := &arena{}
	var decode func(node int) int
	decode = func(node int) int {
		cs := choicesOf[node]
		pick := -1
		for i, m := range sel[node] {
			if g.Value(m) {
				pick = i
				break
			}
		}
		if pick < 0 {
			return -1
		}
		c := cs[pick]
		if c.isV {
			return ar.leaf(c.v)
		}
		k := c.fn.Arity()
		kids := make([]int, k)
		for j := 0; j < k; j++ {
			kids[j] = decode(node*branch + 1 + j)
			if kids[j] < 0 {
				return -1
			}
		}
		return ar.apply(c.fn, kids)
	}
	root := decode(0)
	if root < 0 {
		return Indet, nil, errors.Wrap(ErrWitness, "model assigns no role to a used node")
	}
	w := ar.extract(root, n)
	if !w.Verify(target) {
		return Indet, nil, errors.Wrapf(ErrWitness, "decoded tree %s does not evaluate to the target", w)
	}
	return Definable, w, nil
}
