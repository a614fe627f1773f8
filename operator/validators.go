// SPDX-License-Identifier: MIT
// Package: operator
//
// Purpose:
//   - Single source of truth for input checks on factors, coefficients and
//     numeric policy.
//   - Return plain sentinels tagged with the validator name so that callers
//     can wrap uniformly and match with errors.Is.
//
// Determinism & Performance:
//   - All checks are pure and allocate nothing on the success path.

package operator

import "math"

// isNonFinite reports whether x is NaN or ±Inf.
func isNonFinite(x float64) bool { return math.IsNaN(x) || math.IsInf(x, 0) }

// ValidateTolerance ensures tol is finite and non-negative.
// Returns wrapped ErrToleranceConfiguration otherwise.
func ValidateTolerance(tol float64) error {
	if isNonFinite(tol) || tol < 0 {
		return operatorErrorf("ValidateTolerance", ErrToleranceConfiguration)
	}

	return nil
}

// ValidateCoefficient ensures both components of c are finite.
func ValidateCoefficient(c complex128) error {
	if isNonFinite(real(c)) || isNonFinite(imag(c)) {
		return operatorErrorf("ValidateCoefficient", ErrNonFiniteCoefficient)
	}

	return nil
}

// ValidateFactor checks the site range and the label alphabet of f.
// It does not look at other factors; duplicate detection lives in NewTerm.
func ValidateFactor(f Factor) error {
	if f.Site < 0 {
		return operatorErrorf("ValidateFactor", ErrNegativeSite)
	}
	if !f.Label.Valid() {
		return operatorErrorf("ValidateFactor", ErrInvalidLabel)
	}

	return nil
}

// validateWorkers checks the concurrency knobs gathered into Options.
func validateWorkers(workers, threshold int) error {
	if workers < 1 || threshold < 0 {
		return operatorErrorf("validateWorkers", ErrWorkerConfiguration)
	}

	return nil
}
