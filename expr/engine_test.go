// SPDX-License-Identifier: MIT
package expr_test

import (
	"math"
	"testing"

	"github.com/go-logr/logr/testr"
	"github.com/katalvlaran/qsym/expr"
	"github.com/katalvlaran/qsym/operator"
	"github.com/katalvlaran/qsym/pauli"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newEngine(t *testing.T, opts ...operator.Option) *expr.Engine {
	t.Helper()
	opts = append([]operator.Option{operator.WithLogger(testr.NewWithOptions(t, testr.Options{Verbosity: 2}))}, opts...)
	e, err := expr.NewEngine(opts...)
	require.NoError(t, err)

	return e
}

// 1) TestNewEngine_RejectsBadTolerance surfaces the configuration error.
func TestNewEngine_RejectsBadTolerance(t *testing.T) {
	for _, tol := range []float64{-1, math.NaN(), math.Inf(1)} {
		_, err := expr.NewEngine(operator.WithTolerance(tol))
		assert.ErrorIs(t, err, operator.ErrToleranceConfiguration, "tol=%v", tol)
	}

	_, err := expr.NewEngine(operator.WithWorkers(0))
	assert.ErrorIs(t, err, operator.ErrWorkerConfiguration)
}

// 2) TestEngine_Arithmetic exercises the facade against the package functions.
func TestEngine_Arithmetic(t *testing.T) {
	e := newEngine(t)
	x0, err := e.Term(1, operator.F(0, pauli.X))
	require.NoError(t, err)
	z0, err := e.Term(1, operator.F(0, pauli.Z))
	require.NoError(t, err)

	a, b := e.Sum(x0), e.Sum(z0)
	assert.True(t, e.Equal(e.Commutator(a, b), operator.MustSum(-2i, operator.F(0, pauli.Y))))
	assert.True(t, e.IsZero(e.Anticommutator(a, b)))
	assert.True(t, e.IsZero(e.Sub(e.Add(a, b), e.Add(b, a))))
	assert.True(t, e.Equal(e.Mul(a, a), operator.One()))
	scaled, err := e.Scale(a, 3)
	require.NoError(t, err)
	x3, err := x0.Scale(3)
	require.NoError(t, err)
	assert.True(t, e.Equal(scaled, e.Sum(x3)))

	_, err = e.Term(1, operator.F(0, pauli.X), operator.F(0, pauli.Z))
	assert.ErrorIs(t, err, operator.ErrDuplicateSite)
}

// 3) TestEngine_Import rebuilds an exported sum under the engine policy.
func TestEngine_Import(t *testing.T) {
	e := newEngine(t)
	s := operator.MustSum(0.5, operator.F(0, pauli.X), operator.F(2, pauli.Y))

	got, err := e.Import(s.Export())
	require.NoError(t, err)
	assert.True(t, e.Equal(s, got))
}

// 4) TestCanonical_SquareOfSum checks (X0 + Z0)² = 2I.
func TestCanonical_SquareOfSum(t *testing.T) {
	e := newEngine(t)
	h := expr.Add(pauliOp(pauli.X, 0), pauliOp(pauli.Z, 0))

	got, err := e.Canonical(expr.Mul(h, h))
	require.NoError(t, err)
	require.Equal(t, 1, got.Len())
	id, ok := got.Term(0)
	require.True(t, ok)
	assert.True(t, id.IsIdentity())
	assert.Equal(t, complex(2, 0), id.Coefficient())
}

// 5) TestCanonical_ProductOrder distinguishes XZ from ZX.
func TestCanonical_ProductOrder(t *testing.T) {
	e := newEngine(t)
	x, z := pauliOp(pauli.X, 0), pauliOp(pauli.Z, 0)

	same, err := e.SameOperator(expr.Mul(x, z), expr.Mul(z, x))
	require.NoError(t, err)
	assert.False(t, same)

	anti, err := e.Canonical(expr.Add(expr.Mul(x, z), expr.Mul(z, x)))
	require.NoError(t, err)
	assert.True(t, e.IsZero(anti))
}

// 6) TestCanonical_SameOperatorAcrossNesting compares structurally different trees.
func TestCanonical_SameOperatorAcrossNesting(t *testing.T) {
	e := newEngine(t)
	x, y, z := pauliOp(pauli.X, 0), pauliOp(pauli.Y, 1), pauliOp(pauli.Z, 2)

	same, err := e.SameOperator(expr.Add(x, expr.Add(y, z)), expr.Add(expr.Add(z, x), y))
	require.NoError(t, err)
	assert.True(t, same)

	same, err = e.SameOperator(expr.Mul(expr.Const(2), x), expr.Add(x, x))
	require.NoError(t, err)
	assert.True(t, same)
}

// 7) TestCanonical_Symbols requires every symbol to be bound.
func TestCanonical_Symbols(t *testing.T) {
	e := newEngine(t)
	zz := expr.Pauli(operator.MustTerm(1, operator.F(0, pauli.Z), operator.F(1, pauli.Z)))
	var h expr.Node = expr.Add(expr.Mul(expr.Sym("J"), zz), expr.Mul(expr.Sym("g"), pauliOp(pauli.X, 0)))

	_, err := e.Canonical(h)
	require.ErrorIs(t, err, expr.ErrUnboundSymbol)
	assert.Contains(t, err.Error(), `"J"`)

	h = expr.Bind(expr.Bind(h, "J", -1), "g", 0.25)
	got, err := e.Canonical(h)
	require.NoError(t, err)

	want := operator.FromTerms(
		operator.MustTerm(-1, operator.F(0, pauli.Z), operator.F(1, pauli.Z)),
		operator.MustTerm(0.25, operator.F(0, pauli.X)),
	)
	assert.True(t, e.Equal(want, got))
	assert.Equal(t, complex(-1, 0), got.Coefficient(operator.Support{operator.F(0, pauli.Z), operator.F(1, pauli.Z)}))
}

// 8) TestCanonical_EmptyAndInvalid covers the degenerate trees.
func TestCanonical_EmptyAndInvalid(t *testing.T) {
	e := newEngine(t)

	zero, err := e.Canonical(expr.Add())
	require.NoError(t, err)
	assert.Equal(t, 0, zero.Len())

	one, err := e.Canonical(expr.Mul())
	require.NoError(t, err)
	assert.True(t, e.Equal(one, operator.One()))

	_, err = e.Canonical(nil)
	assert.ErrorIs(t, err, expr.ErrNilNode)

	_, err = e.Canonical(expr.Add(expr.Sym("a"), nil))
	assert.ErrorIs(t, err, expr.ErrNilNode)

	_, err = e.Canonical(&expr.Scalar{Value: 1})
	assert.ErrorIs(t, err, expr.ErrUnknownNode)
}

// 9) TestCanonical_ToleranceDropsResidue applies the engine tolerance.
func TestCanonical_ToleranceDropsResidue(t *testing.T) {
	x := pauliOp(pauli.X, 0)
	n := expr.Add(x, expr.Mul(expr.Const(-1+1e-9), x))

	loose := newEngine(t, operator.WithTolerance(1e-6))
	got, err := loose.Canonical(n)
	require.NoError(t, err)
	assert.Equal(t, 0, got.Len())

	exact := newEngine(t, operator.WithExactArithmetic())
	got, err = exact.Canonical(n)
	require.NoError(t, err)
	assert.Equal(t, 1, got.Len())
}

// 10) TestCanonical_NonFiniteValues rejects NaN and Inf leaves.
func TestCanonical_NonFiniteValues(t *testing.T) {
	e := newEngine(t)
	x := pauliOp(pauli.X, 0)

	_, err := e.Canonical(expr.Mul(expr.Const(complex(math.NaN(), 0)), x))
	assert.ErrorIs(t, err, operator.ErrNonFiniteCoefficient)

	bound := expr.Bind(expr.Mul(expr.Sym("g"), x), "g", math.Inf(1))
	_, err = e.Canonical(bound)
	require.ErrorIs(t, err, operator.ErrNonFiniteCoefficient)
	assert.Contains(t, err.Error(), `"g"`)

	_, err = e.Scale(operator.MustSum(1, operator.F(0, pauli.X)), complex(0, math.Inf(-1)))
	assert.ErrorIs(t, err, operator.ErrNonFiniteCoefficient)

	got, err := e.Canonical(expr.Bind(expr.Mul(expr.Sym("g"), x), "g", 2))
	require.NoError(t, err)
	assert.True(t, e.Equal(got, got))
}
