// SPDX-License-Identifier: MIT

package operator

import (
	"iter"
	"math/cmplx"
	"slices"
	"strings"
)

// Sum is Σ cᵢ · Pᵢ, a linear combination of Pauli strings in canonical form.
//
// Invariants (held by every value this package returns):
//   - terms are sorted by CompareSupport,
//   - no two terms share a support,
//   - no term has a coefficient that is negligible under the tolerance it
//     was built with.
//
// Sum is a value type: it owns its term slice outright and every operation
// returns a freshly allocated result. The zero value is the zero operator.
type Sum struct {
	terms []Term
}

// Zero returns the empty sum.
func Zero() Sum { return Sum{} }

// One returns the identity operator 1 · I.
func One() Sum { return Sum{terms: []Term{{coeff: 1}}} }

// Len returns the number of terms.
func (s Sum) Len() int { return len(s.terms) }

// Terms returns a copy of the terms in canonical order.
func (s Sum) Terms() []Term { return slices.Clone(s.terms) }

// Term returns the i-th term in canonical order; ok is false when i is out
// of range.
func (s Sum) Term(i int) (t Term, ok bool) {
	if i < 0 || i >= len(s.terms) {
		return Term{}, false
	}

	return s.terms[i], true
}

// All iterates the terms in canonical order.
func (s Sum) All() iter.Seq[Term] {
	return func(yield func(Term) bool) {
		for _, t := range s.terms {
			if !yield(t) {
				return
			}
		}
	}
}

// Coefficient returns the coefficient attached to support, or 0 when the
// support does not occur. O(log n).
func (s Sum) Coefficient(support Support) complex128 {
	i, ok := slices.BinarySearchFunc(s.terms, support, func(t Term, sp Support) int {
		return CompareSupport(t.factors, sp)
	})
	if !ok {
		return 0
	}

	return s.terms[i].coeff
}

// Norm1 returns Σ|cᵢ|.
func (s Sum) Norm1() float64 {
	var n float64
	for _, t := range s.terms {
		n += cmplx.Abs(t.coeff)
	}

	return n
}

// MaxSite returns the largest site index used by any term, or -1.
func (s Sum) MaxSite() int {
	m := -1
	for _, t := range s.terms {
		m = max(m, t.MaxSite())
	}

	return m
}

// IsCanonical reports whether the ordering and uniqueness invariants hold.
// Every Sum produced by this package satisfies it; exported for tests and
// external serializers.
func (s Sum) IsCanonical() bool {
	for i, t := range s.terms {
		if !Support(t.factors).IsCanonical() {
			return false
		}
		if i > 0 && compareTerms(s.terms[i-1], t) >= 0 {
			return false
		}
	}

	return true
}

// String renders the terms joined by " + ", or "0" for the empty sum.
func (s Sum) String() string {
	if len(s.terms) == 0 {
		return "0"
	}
	parts := make([]string, len(s.terms))
	for i, t := range s.terms {
		parts[i] = t.String()
	}

	return strings.Join(parts, " + ")
}
