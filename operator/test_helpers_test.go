// SPDX-License-Identifier: MIT
// Package operator_test contains test helpers
//
// Purpose:
//   • Deterministic random fixtures (fixed seeds) for property tests.
//   • Short constructors so test bodies read like operator algebra.

package operator_test

import (
	"math"
	"math/rand"
	"testing"

	"github.com/katalvlaran/qsym/operator"
	"github.com/katalvlaran/qsym/pauli"
	"github.com/stretchr/testify/require"
)

var (
	x = func(site int) operator.Factor { return operator.F(site, pauli.X) }
	y = func(site int) operator.Factor { return operator.F(site, pauli.Y) }
	z = func(site int) operator.Factor { return operator.F(site, pauli.Z) }
)

// mustTerm builds a term or fails the test.
func mustTerm(t *testing.T, c complex128, fs ...operator.Factor) operator.Term {
	t.Helper()
	term, err := operator.NewTerm(c, fs...)
	require.NoError(t, err)

	return term
}

// randomTerm draws a term on sites [0, sites) with a random label per site
// (identity included) and a coefficient with components in [-1, 1).
func randomTerm(rng *rand.Rand, sites int) operator.Term {
	fs := make([]operator.Factor, 0, sites)
	for s := 0; s < sites; s++ {
		fs = append(fs, operator.F(s, pauli.Label(rng.Intn(pauli.NumLabels))))
	}
	rng.Shuffle(len(fs), func(i, j int) { fs[i], fs[j] = fs[j], fs[i] })
	c := complex(rng.Float64()*2-1, rng.Float64()*2-1)

	return operator.MustTerm(c, fs...)
}

// randomSum draws n random terms and merges them.
func randomSum(rng *rand.Rand, n, sites int) operator.Sum {
	terms := make([]operator.Term, n)
	for i := range terms {
		terms[i] = randomTerm(rng, sites)
	}

	return operator.FromTerms(terms...)
}

// supports lists the term supports of s as strings, in iteration order.
func supports(s operator.Sum) []string {
	out := make([]string, 0, s.Len())
	for t := range s.All() {
		out = append(out, t.Support().String())
	}

	return out
}

func nanF() float64 { return math.NaN() }

func infF() float64 { return math.Inf(1) }

// termAt returns the i-th term of s or fails the test.
func termAt(t *testing.T, s operator.Sum, i int) operator.Term {
	t.Helper()
	term, ok := s.Term(i)
	require.True(t, ok, "term %d of %d", i, s.Len())

	return term
}

// scale returns c·s or fails the test.
func scale(t *testing.T, s operator.Sum, c complex128) operator.Sum {
	t.Helper()
	out, err := s.Scale(c)
	require.NoError(t, err)

	return out
}
