// SPDX-License-Identifier: MIT

package operator

import (
	"math/cmplx"
	"slices"
)

// accumulator collects the contributions of one support during a merge.
type accumulator struct {
	factors []Factor
	coeff   complex128
	mag     float64 // Σ|cᵢ| of the contributions, the scale of the rounding error
}

// negligible is the cleaning rule: |c| <= tol · max(1, mag).
// Exact zeros are always negligible; NaN and ±Inf never are, so an
// overflowing product stays visible instead of cleaning to zero.
func negligible(c complex128, mag, tol float64) bool {
	switch {
	case c == 0:
		return true
	case cmplx.IsNaN(c) || cmplx.IsInf(c):
		return false
	}

	return cmplx.Abs(c) <= tol*max(1, mag)
}

// merge is the single reducer behind every Sum constructor and operator.
//
// Implementation:
//   - Stage 1: walk terms in input order; look each support key up in a hash
//     index over an arena of accumulators; add coefficients and magnitudes.
//   - Stage 2: drop negligible accumulators; copy supports into fresh storage.
//   - Stage 3: sort by CompareSupport.
//
// Grouping happens before summation, so the result does not depend on how
// the input was partitioned across operands. Summation inside a group runs
// in input order, so equal inputs give bit-identical outputs.
//
// Complexity: O(n·w) hashing for n terms of weight w, O(g log g) sort of g groups.
func (o Options) merge(terms []Term) Sum {
	index := make(map[string]int, len(terms))
	arena := make([]accumulator, 0, len(terms))

	var key []byte
	for _, t := range terms {
		if t.coeff == 0 {
			continue
		}
		key = Support(t.factors).appendKey(key[:0])
		if i, ok := index[string(key)]; ok {
			arena[i].coeff += t.coeff
			arena[i].mag += cmplx.Abs(t.coeff)

			continue
		}
		index[string(key)] = len(arena)
		arena = append(arena, accumulator{factors: t.factors, coeff: t.coeff, mag: cmplx.Abs(t.coeff)})
	}

	out := make([]Term, 0, len(arena))
	for _, a := range arena {
		if negligible(a.coeff, a.mag, o.tol) {
			continue
		}
		out = append(out, Term{factors: slices.Clone(a.factors), coeff: a.coeff})
	}
	slices.SortFunc(out, compareTerms)

	o.log.V(2).Info("merged terms", "inputs", len(terms), "groups", len(arena), "kept", len(out))
	if len(out) == 0 {
		return Sum{}
	}

	return Sum{terms: out}
}

// chop re-applies the cleaning rule to an already-merged sum, treating each
// coefficient as its own magnitude. Order is preserved.
func (o Options) chop(s Sum) Sum {
	var out []Term
	for _, t := range s.terms {
		if negligible(t.coeff, cmplx.Abs(t.coeff), o.tol) {
			continue
		}
		out = append(out, Term{factors: slices.Clone(t.factors), coeff: t.coeff})
	}

	return Sum{terms: out}
}
