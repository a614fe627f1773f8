// SPDX-License-Identifier: MIT

package operator

import (
	"fmt"
	"math/cmplx"
	"slices"

	"github.com/katalvlaran/qsym/pauli"
)

// Term is c · P where P is a product of single-site Pauli factors.
//
// Invariants (established by NewTerm and preserved by every method):
//   - factors are sorted by site, sites are unique,
//   - no factor carries the identity label.
//
// Term is a value type. Its support is never modified after construction;
// operations return new Terms. The zero value is 0 · I.
type Term struct {
	factors []Factor
	coeff   complex128
}

// NewTerm builds coeff · f₁ f₂ … fₙ.
//
// Implementation:
//   - Stage 1: validate coefficient and every factor (site ≥ 0, label in alphabet).
//   - Stage 2: stable sort a copy by site; adjacent equal sites ⇒ DuplicateSiteError.
//   - Stage 3: elide identity factors.
//
// Errors:
//   - ErrNonFiniteCoefficient, ErrNegativeSite, ErrInvalidLabel.
//   - *DuplicateSiteError (errors.Is ErrDuplicateSite) when two factors share a
//     site. The check runs before identity elision, so (0,I),(0,X) is rejected.
//
// Complexity: O(n log n).
func NewTerm(coeff complex128, factors ...Factor) (Term, error) {
	if err := ValidateCoefficient(coeff); err != nil {
		return Term{}, operatorErrorf("NewTerm", err)
	}
	for _, f := range factors {
		if err := ValidateFactor(f); err != nil {
			return Term{}, operatorErrorf("NewTerm", err)
		}
	}

	sorted := slices.Clone(factors)
	slices.SortStableFunc(sorted, func(a, b Factor) int { return a.Site - b.Site })

	out := sorted[:0]
	for i, f := range sorted {
		if i > 0 && sorted[i-1].Site == f.Site {
			return Term{}, operatorErrorf("NewTerm", &DuplicateSiteError{
				Site:   f.Site,
				First:  sorted[i-1].Label,
				Second: f.Label,
			})
		}
		if f.Label != pauli.I {
			out = append(out, f)
		}
	}
	if len(out) == 0 {
		out = nil
	}

	return Term{factors: out, coeff: coeff}, nil
}

// MustTerm is NewTerm that panics on error. Intended for literals.
func MustTerm(coeff complex128, factors ...Factor) Term {
	t, err := NewTerm(coeff, factors...)
	if err != nil {
		panic(err)
	}

	return t
}

// Identity returns coeff · I.
// Errors: ErrNonFiniteCoefficient for a NaN or ±Inf component.
func Identity(coeff complex128) (Term, error) {
	if err := ValidateCoefficient(coeff); err != nil {
		return Term{}, operatorErrorf("Identity", err)
	}

	return Term{coeff: coeff}, nil
}

// MustIdentity is Identity that panics on error. Intended for literals.
func MustIdentity(coeff complex128) Term {
	t, err := Identity(coeff)
	if err != nil {
		panic(err)
	}

	return t
}

// Coefficient returns the scalar coefficient.
func (t Term) Coefficient() complex128 { return t.coeff }

// Support returns a copy of the canonical factor sequence.
func (t Term) Support() Support { return Support(slices.Clone(t.factors)) }

// Factors returns a copy of the canonical factor sequence.
func (t Term) Factors() []Factor { return slices.Clone(t.factors) }

// Len returns the number of non-identity factors (the Pauli weight).
func (t Term) Len() int { return len(t.factors) }

// IsIdentity reports whether the support is empty.
func (t Term) IsIdentity() bool { return len(t.factors) == 0 }

// LabelAt returns the label acting on site, or pauli.I when the site is idle.
func (t Term) LabelAt(site int) pauli.Label {
	i, ok := slices.BinarySearchFunc(t.factors, site, func(f Factor, s int) int { return f.Site - s })
	if !ok {
		return pauli.I
	}

	return t.factors[i].Label
}

// MaxSite returns the largest site index, or -1 for the identity support.
func (t Term) MaxSite() int {
	if len(t.factors) == 0 {
		return -1
	}

	return t.factors[len(t.factors)-1].Site
}

// SameSupport reports whether t and o have equal canonical factor sequences,
// ignoring coefficients.
func (t Term) SameSupport(o Term) bool {
	return CompareSupport(t.factors, o.factors) == 0
}

// Scale returns (c · coeff) · P. The support is shared: it is immutable.
// Errors: ErrNonFiniteCoefficient when c has a NaN or ±Inf component.
func (t Term) Scale(c complex128) (Term, error) {
	if err := ValidateCoefficient(c); err != nil {
		return Term{}, operatorErrorf("Term.Scale", err)
	}

	return Term{factors: t.factors, coeff: t.coeff * c}, nil
}

// Neg returns −t.
func (t Term) Neg() Term { return Term{factors: t.factors, coeff: pauli.MinusOne.Apply(t.coeff)} }

// Adjoint returns t†. Pauli strings are Hermitian, so only the coefficient
// is conjugated.
func (t Term) Adjoint() Term {
	return Term{factors: t.factors, coeff: cmplx.Conj(t.coeff)}
}

// Mul returns the operator product t·o (t applied on the left).
func (t Term) Mul(o Term) Term { return MulTerms(t, o) }

// anticommutingSites counts shared sites whose labels anti-commute.
func (t Term) anticommutingSites(o Term) int {
	n, i, j := 0, 0, 0
	for i < len(t.factors) && j < len(o.factors) {
		a, b := t.factors[i], o.factors[j]
		switch {
		case a.Site < b.Site:
			i++
		case a.Site > b.Site:
			j++
		default:
			if !pauli.Commute(a.Label, b.Label) {
				n++
			}
			i++
			j++
		}
	}

	return n
}

// Commutes reports whether the Pauli strings of t and o commute, i.e. they
// anti-commute on an even number of shared sites.
func (t Term) Commutes(o Term) bool { return t.anticommutingSites(o)%2 == 0 }

// QubitWiseCommutes reports whether t and o commute site by site. This is
// the grouping criterion for simultaneous measurement.
func (t Term) QubitWiseCommutes(o Term) bool { return t.anticommutingSites(o) == 0 }

// String renders "(re+imi) X0 Y1"; the identity support prints as "I".
func (t Term) String() string {
	return fmt.Sprintf("%v %v", t.coeff, Support(t.factors))
}

// compareTerms orders terms by support only.
func compareTerms(a, b Term) int { return CompareSupport(a.factors, b.factors) }
