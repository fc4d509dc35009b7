package defn

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/boolcomb/nicesets/conn"
)

var strategies = []Strategy{Enumeration, SAT}

func check(t *testing.T, st Strategy, target conn.Connective, basis []conn.Connective, depth int, mode Mode) Result {
	t.Helper()
	res, err := IsDefinable(context.Background(), target, basis, depth, mode, &Options{Strategy: st})
	require.NoError(t, err)
	if res.Outcome == Definable && res.Witness != nil {
		assert.True(t, res.Witness.Verify(target), "witness %s does not replay to %s", res.Witness, target)
		assert.LessOrEqual(t, res.Witness.Depth(), depth)
	}
	return res
}

func TestBasisMember(t *testing.T) {
	for _, st := range strategies {
		res := check(t, st, conn.And, []conn.Connective{conn.And, conn.Or}, 1, Syntactic)
		assert.Equal(t, Definable, res.Outcome)
		assert.Equal(t, 1, res.Depth)
		require.NotNil(t, res.Witness)
	}
}

func TestNandFromAndNot(t *testing.T) {
	basis := []conn.Connective{conn.And, conn.Not}
	for _, st := range strategies {
		res := check(t, st, conn.Nand, basis, 2, Syntactic)
		assert.Equal(t, Definable, res.Outcome, "strategy %s", st)
		require.NotNil(t, res.Witness, "strategy %s", st)
	}
}

func TestDepthMonotonicity(t *testing.T) {
	// OR needs three nested applications of {AND, NOT}: the De Morgan
	// witness NOT(AND(NOT(x0), NOT(x1))) has no depth-2 equivalent.
	basis := []conn.Connective{conn.And, conn.Not}
	for _, st := range strategies {
		res := check(t, st, conn.Or, basis, 2, Syntactic)
		assert.Equal(t, Undefinable, res.Outcome, "strategy %s at depth 2", st)
		for _, depth := range []int{3, 4} {
			res = check(t, st, conn.Or, basis, depth, Syntactic)
			assert.Equal(t, Definable, res.Outcome, "strategy %s at depth %d", st, depth)
		}
	}
}

func TestUndefinableFromMonotone(t *testing.T) {
	// XOR is not monotone, so no composition of AND and OR reaches it at
	// any depth.
	basis := []conn.Connective{conn.And, conn.Or}
	for _, st := range strategies {
		res := check(t, st, conn.Xor, basis, 3, Syntactic)
		assert.Equal(t, Undefinable, res.Outcome, "strategy %s", st)
	}
}

func TestAsymmetricWitness(t *testing.T) {
	// Constant false from a basis without projections, reachable only by
	// a lopsided tree such as NOR(NOT_X(x0, x1), x0).
	basis := []conn.Connective{conn.Nor, conn.NotX, conn.Nand}
	for _, st := range strategies {
		res := check(t, st, conn.FalseBinary, basis, 2, Syntactic)
		assert.Equal(t, Definable, res.Outcome, "strategy %s", st)
		require.NotNil(t, res.Witness, "strategy %s", st)
		assert.LessOrEqual(t, res.Witness.Depth(), 2)
	}
}

func TestUnaryTargetsFromWiderBasis(t *testing.T) {
	// Wider basis functions may consume repeated variables, so a binary
	// basis reaches unary targets: FALSE_1 = NOR(NOR(x0, x0), TRUE_1(x0))
	// at depth 2, and the reverse direction defines NOR from
	// NAND(TRUE_1(x0), NAND(NAND(x0, x0), NAND(x1, x1))) at depth 3.
	for _, st := range strategies {
		basis := []conn.Connective{conn.Nor, conn.TrueUnary}
		res := check(t, st, conn.FalseUnary, basis, 1, Syntactic)
		assert.Equal(t, Undefinable, res.Outcome, "strategy %s at depth 1", st)
		res = check(t, st, conn.FalseUnary, basis, 2, Syntactic)
		assert.Equal(t, Definable, res.Outcome, "strategy %s at depth 2", st)
		require.NotNil(t, res.Witness, "strategy %s", st)

		res = check(t, st, conn.Nor, []conn.Connective{conn.Nand, conn.TrueUnary}, 3, Syntactic)
		assert.Equal(t, Definable, res.Outcome, "strategy %s", st)
		require.NotNil(t, res.Witness, "strategy %s", st)
	}
}

func TestProjectionAxiom(t *testing.T) {
	basis := []conn.Connective{conn.Nand}
	res, err := IsDefinable(context.Background(), conn.ProjX, basis, 1, TruthFunctional, nil)
	require.NoError(t, err)
	assert.Equal(t, Definable, res.Outcome)
	assert.Equal(t, 0, res.Depth)
	require.NotNil(t, res.Witness)
	assert.True(t, res.Witness.Verify(conn.ProjX))

	// Syntactically the projection still needs to be built, which NAND
	// can do at depth 2: NAND(NAND(x0, x0), NAND(x0, x0)).
	res, err = IsDefinable(context.Background(), conn.ProjX, basis, 2, Syntactic, nil)
	require.NoError(t, err)
	assert.Equal(t, Definable, res.Outcome)

	res, err = IsDefinable(context.Background(), conn.ProjX, basis, 1, Syntactic, nil)
	require.NoError(t, err)
	assert.Equal(t, Undefinable, res.Outcome)
}

func TestConstantAxiom(t *testing.T) {
	// A nullary constant defines its wider siblings in either mode, but
	// only truth-functional mode grants the reverse direction.
	res, err := IsDefinable(context.Background(), conn.TrueBinary, []conn.Connective{conn.True}, 1, Syntactic, nil)
	require.NoError(t, err)
	assert.Equal(t, Definable, res.Outcome)

	res, err = IsDefinable(context.Background(), conn.True, []conn.Connective{conn.TrueUnary}, 3, TruthFunctional, nil)
	require.NoError(t, err)
	assert.Equal(t, Definable, res.Outcome)
	assert.Nil(t, res.Witness)

	res, err = IsDefinable(context.Background(), conn.True, []conn.Connective{conn.TrueUnary}, 3, Syntactic, nil)
	require.NoError(t, err)
	assert.Equal(t, Undefinable, res.Outcome)
}

func TestModeOrdering(t *testing.T) {
	// Syntactic definability implies truth-functional definability.
	basis := []conn.Connective{conn.Nand}
	for _, target := range conn.AllBinary() {
		syn, err := IsDefinable(context.Background(), target, basis, 2, Syntactic, nil)
		require.NoError(t, err)
		if syn.Outcome != Definable {
			continue
		}
		tf, err := IsDefinable(context.Background(), target, basis, 2, TruthFunctional, nil)
		require.NoError(t, err)
		assert.Equal(t, Definable, tf.Outcome, "target %s", target)
	}
}

func TestStrategiesAgree(t *testing.T) {
	basis := []conn.Connective{conn.And, conn.Not}
	for _, target := range conn.AllBinary() {
		enum := check(t, Enumeration, target, basis, 3, Syntactic)
		sat := check(t, SAT, target, basis, 3, Syntactic)
		assert.Equal(t, enum.Outcome, sat.Outcome, "target %s", target)
	}
}

func TestEmptyBasis(t *testing.T) {
	res, err := IsDefinable(context.Background(), conn.And, nil, 3, Syntactic, nil)
	require.NoError(t, err)
	assert.Equal(t, Undefinable, res.Outcome)
}

func TestDepthBound(t *testing.T) {
	_, err := IsDefinable(context.Background(), conn.And, []conn.Connective{conn.Nand}, 0, Syntactic, nil)
	assert.ErrorIs(t, err, ErrDepth)
}

func TestCanceledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	res, err := IsDefinable(ctx, conn.Xor, []conn.Connective{conn.And, conn.Not}, 3, Syntactic, nil)
	require.NoError(t, err)
	assert.Equal(t, Indet, res.Outcome)
}

func TestCacheReuse(t *testing.T) {
	cache := NewCache()
	basis := []conn.Connective{conn.And, conn.Not}
	opts := &Options{Strategy: Enumeration, Cache: cache}

	res, err := IsDefinable(context.Background(), conn.Or, basis, 3, Syntactic, opts)
	require.NoError(t, err)
	assert.Equal(t, Definable, res.Outcome)
	require.NotNil(t, res.Witness)

	// The closure computed above answers a different target of the same
	// basis without another search; cached answers carry no witness.
	res, err = IsDefinable(context.Background(), conn.Nor, basis, 3, Syntactic, opts)
	require.NoError(t, err)
	assert.Equal(t, Definable, res.Outcome)
}

func TestFingerprint(t *testing.T) {
	a := []conn.Connective{conn.And, conn.Not}
	b := []conn.Connective{conn.Not, conn.And, conn.And}
	assert.Equal(t, Fingerprint(a), Fingerprint(b), "fingerprint must ignore order and duplicates")
	c := []conn.Connective{conn.And, conn.Or}
	assert.NotEqual(t, Fingerprint(a), Fingerprint(c))
}
