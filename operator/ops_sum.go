// SPDX-License-Identifier: MIT

package operator

import (
	"math/cmplx"
	"slices"

	"github.com/katalvlaran/qsym/pauli"
)

// ---------- Arithmetic kernels (Options is the numeric context) ----------

// FromTerms merges terms with equal support, drops negligible coefficients
// and returns the canonical Sum. Input order does not affect the support
// set or the ordering of the result.
func (o Options) FromTerms(terms ...Term) Sum { return o.merge(terms) }

// Add returns a + b.
func (o Options) Add(a, b Sum) Sum {
	return o.merge(slices.Concat(a.terms, b.terms))
}

// Sub returns a − b.
func (o Options) Sub(a, b Sum) Sum {
	all := make([]Term, 0, len(a.terms)+len(b.terms))
	all = append(all, a.terms...)
	for _, t := range b.terms {
		all = append(all, t.Neg())
	}

	return o.merge(all)
}

// AddAll returns Σ sums, merged once.
func (o Options) AddAll(sums ...Sum) Sum {
	n := 0
	for _, s := range sums {
		n += len(s.terms)
	}
	all := make([]Term, 0, n)
	for _, s := range sums {
		all = append(all, s.terms...)
	}

	return o.merge(all)
}

// Mul returns the operator product a·b.
//
// Every term of a is multiplied on the right by every term of b
// (|a|·|b| products, see crossProducts) and the products are merged.
// Not commutative: Mul(a, b) and Mul(b, a) differ by the per-site phases
// of MulTerms.
func (o Options) Mul(a, b Sum) Sum {
	return o.merge(o.crossProducts(a.terms, b.terms))
}

// Scale returns c·s. Scaling by zero yields the empty sum.
//
// The scalar is validated like a coefficient: a NaN or ±Inf component is
// rejected with ErrNonFiniteCoefficient. A finite scalar whose products
// overflow keeps the ±Inf coefficients (see negligible).
func (o Options) Scale(s Sum, c complex128) (Sum, error) {
	if err := ValidateCoefficient(c); err != nil {
		return Sum{}, operatorErrorf("Scale", err)
	}
	if c == 0 {
		return Sum{}, nil
	}
	var out []Term
	for _, t := range s.terms {
		v := t.coeff * c
		if negligible(v, cmplx.Abs(v), o.tol) {
			continue
		}
		out = append(out, Term{factors: slices.Clone(t.factors), coeff: v})
	}

	return Sum{terms: out}, nil
}

// Neg returns −s.
func (o Options) Neg(s Sum) Sum {
	out := make([]Term, len(s.terms))
	for i, t := range s.terms {
		out[i] = Term{factors: slices.Clone(t.factors), coeff: pauli.MinusOne.Apply(t.coeff)}
	}
	if len(out) == 0 {
		return Sum{}
	}

	return Sum{terms: out}
}

// Adjoint returns s†: every coefficient conjugated.
func (o Options) Adjoint(s Sum) Sum {
	out := make([]Term, len(s.terms))
	for i, t := range s.terms {
		out[i] = Term{factors: slices.Clone(t.factors), coeff: cmplx.Conj(t.coeff)}
	}
	if len(out) == 0 {
		return Sum{}
	}

	return Sum{terms: out}
}

// Commutator returns [a, b] = a·b − b·a.
func (o Options) Commutator(a, b Sum) Sum {
	ab := o.crossProducts(a.terms, b.terms)
	for _, t := range o.crossProducts(b.terms, a.terms) {
		ab = append(ab, t.Neg())
	}

	return o.merge(ab)
}

// Anticommutator returns {a, b} = a·b + b·a.
func (o Options) Anticommutator(a, b Sum) Sum {
	return o.merge(append(o.crossProducts(a.terms, b.terms), o.crossProducts(b.terms, a.terms)...))
}

// Pow returns sⁿ by repeated squaring; s⁰ is the identity.
// Errors: ErrNegativePower for n < 0.
func (o Options) Pow(s Sum, n int) (Sum, error) {
	if n < 0 {
		return Sum{}, operatorErrorf("Pow", ErrNegativePower)
	}
	result, base := One(), s
	for n > 0 {
		if n&1 == 1 {
			result = o.Mul(result, base)
		}
		n >>= 1
		if n > 0 {
			base = o.Mul(base, base)
		}
	}

	return result, nil
}

// Chop drops every term whose coefficient is negligible under o.
func (o Options) Chop(s Sum) Sum { return o.chop(s) }

// IsZero reports whether s is empty after cleaning under o's tolerance.
func (o Options) IsZero(s Sum) bool {
	for _, t := range s.terms {
		if !negligible(t.coeff, cmplx.Abs(t.coeff), o.tol) {
			return false
		}
	}

	return true
}

// Equal reports whether a and b are the same operator within tolerance.
// Defined as IsZero(Sub(a, b)), never as a structural comparison.
func (o Options) Equal(a, b Sum) bool { return o.IsZero(o.Sub(a, b)) }

// IsHermitian reports whether s equals its adjoint within tolerance.
func (o Options) IsHermitian(s Sum) bool { return o.Equal(s, o.Adjoint(s)) }

// ---------- Sum methods (default policy) ----------

// Add returns s + o.
func (s Sum) Add(o Sum) Sum { return defaultOptions().Add(s, o) }

// Sub returns s − o.
func (s Sum) Sub(o Sum) Sum { return defaultOptions().Sub(s, o) }

// Mul returns s·o.
func (s Sum) Mul(o Sum) Sum { return defaultOptions().Mul(s, o) }

// Scale returns c·s. Errors: those of Options.Scale.
func (s Sum) Scale(c complex128) (Sum, error) { return defaultOptions().Scale(s, c) }

// Neg returns −s.
func (s Sum) Neg() Sum { return defaultOptions().Neg(s) }

// Adjoint returns s†.
func (s Sum) Adjoint() Sum { return defaultOptions().Adjoint(s) }

// IsZero reports whether s is empty after cleaning under DefaultTolerance.
func (s Sum) IsZero() bool { return defaultOptions().IsZero(s) }

// Equal reports whether s and o are equal under DefaultTolerance.
func (s Sum) Equal(o Sum) bool { return defaultOptions().Equal(s, o) }

// AddTerm returns s + t.
func (s Sum) AddTerm(t Term) Sum {
	return defaultOptions().merge(append(slices.Clone(s.terms), t))
}
