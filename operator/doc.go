// Package operator implements weighted Pauli strings (Term) and their
// canonical linear combinations (Sum).
//
// 🚀 What is here?
//
//	Term  — c · P₀ P₁ … Pₙ with one factor per site, sorted by site,
//	        identities elided.
//	Sum   — Σ cᵢ · Tᵢ with unique supports, sorted by CompareSupport,
//	        negligible coefficients removed after every operation.
//
// Two mathematically equal sums always have the same term list, so equality,
// hashing and deduplication are well defined up to the numeric tolerance.
//
// ✨ Key features:
//   - exact phase bookkeeping (XY = iZ, YX = −iZ) through pauli.Mul
//   - single deterministic reducer (merge-by-support) behind every operation
//   - fork-join product kernel for large sums, bit-identical to serial
//   - value semantics: operands are never mutated, results never alias them
//   - JSON / YAML export of the canonical record list
//
// ⚙️ Usage:
//
//	import (
//	  "github.com/katalvlaran/qsym/operator"
//	  "github.com/katalvlaran/qsym/pauli"
//	)
//
//	a := operator.MustSum(1, operator.F(0, pauli.X), operator.F(1, pauli.Y))
//	b := operator.MustSum(1, operator.F(0, pauli.Y), operator.F(1, pauli.X))
//	p := operator.Mul(a, b) // (1+0i) Z0 Z1
//
//	o, err := operator.NewOptions(operator.WithTolerance(1e-9))
//	if err != nil {
//	  // ErrToleranceConfiguration
//	}
//	same := o.Equal(p, operator.MustSum(1, operator.F(0, pauli.Z), operator.F(1, pauli.Z)))
//
// Errors:
//
//	ErrDuplicateSite          - two factors on the same site (typed *DuplicateSiteError).
//	ErrNegativeSite           - site index < 0.
//	ErrInvalidLabel           - label outside I, X, Y, Z.
//	ErrNonFiniteCoefficient   - NaN or Inf coefficient.
//	ErrToleranceConfiguration - negative or non-finite tolerance.
//	ErrWorkerConfiguration    - workers < 1 or negative threshold.
//	ErrNegativePower          - Pow with n < 0.
//	ErrMalformedRecord        - export record that cannot be imported.
package operator
