// SPDX-License-Identifier: MIT
// Package operator - public API facades.
//
// Purpose:
//   - Thin entry points using the default numeric policy
//     (DefaultTolerance, DefaultWorkers, DefaultParallelThreshold).
//   - Each facade delegates to the Options kernel; no logic duplication.
//
// AI-Hints:
//   - Build an Options once with NewOptions and reuse it when you need a
//     non-default tolerance, a logger or a fixed worker count.

package operator

// FromTerms returns the canonical sum of terms under the default policy.
func FromTerms(terms ...Term) Sum { return defaultOptions().FromTerms(terms...) }

// Add returns a + b.
func Add(a, b Sum) Sum { return defaultOptions().Add(a, b) }

// Sub returns a − b.
func Sub(a, b Sum) Sum { return defaultOptions().Sub(a, b) }

// Mul returns a·b.
func Mul(a, b Sum) Sum { return defaultOptions().Mul(a, b) }

// Scale returns c·s. Errors: ErrNonFiniteCoefficient for a non-finite c.
func Scale(s Sum, c complex128) (Sum, error) { return defaultOptions().Scale(s, c) }

// Commutator returns [a, b].
func Commutator(a, b Sum) Sum { return defaultOptions().Commutator(a, b) }

// Anticommutator returns {a, b}.
func Anticommutator(a, b Sum) Sum { return defaultOptions().Anticommutator(a, b) }

// Pow returns sⁿ.
func Pow(s Sum, n int) (Sum, error) { return defaultOptions().Pow(s, n) }

// Equal reports a == b under the default tolerance.
func Equal(a, b Sum) bool { return defaultOptions().Equal(a, b) }

// EqualWithin reports a == b under tol.
// Errors: ErrToleranceConfiguration for negative or non-finite tol.
func EqualWithin(a, b Sum, tol float64) (bool, error) {
	o, err := NewOptions(WithTolerance(tol), WithSerial())
	if err != nil {
		return false, operatorErrorf("EqualWithin", err)
	}

	return o.Equal(a, b), nil
}

// IsZeroWithin reports whether s cleans to the empty sum under tol.
// Errors: ErrToleranceConfiguration for negative or non-finite tol.
func IsZeroWithin(s Sum, tol float64) (bool, error) {
	if err := ValidateTolerance(tol); err != nil {
		return false, operatorErrorf("IsZeroWithin", err)
	}

	return Options{tol: tol}.IsZero(s), nil
}

// ChopWithin drops the terms of s that are negligible under tol.
// Errors: ErrToleranceConfiguration for negative or non-finite tol.
func ChopWithin(s Sum, tol float64) (Sum, error) {
	if err := ValidateTolerance(tol); err != nil {
		return Sum{}, operatorErrorf("ChopWithin", err)
	}

	return Options{tol: tol}.Chop(s), nil
}

// SumOf builds a one-term sum directly from factors.
// Errors: those of NewTerm.
func SumOf(coeff complex128, factors ...Factor) (Sum, error) {
	t, err := NewTerm(coeff, factors...)
	if err != nil {
		return Sum{}, operatorErrorf("SumOf", err)
	}

	return FromTerms(t), nil
}

// MustSum is SumOf that panics on error. Intended for literals.
func MustSum(coeff complex128, factors ...Factor) Sum {
	s, err := SumOf(coeff, factors...)
	if err != nil {
		panic(err)
	}

	return s
}
