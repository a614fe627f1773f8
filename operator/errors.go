// SPDX-License-Identifier: MIT
// Package operator: sentinel error set.
// Every message is prefixed with "operator: ..." for consistency. Call sites
// wrap sentinels with a tag via fmt.Errorf("%s: %w", tag, err); callers match
// with errors.Is. Arithmetic on well-formed values never returns an error:
// failures are surfaced only at construction, configuration and import time.

package operator

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/qsym/pauli"
)

var (
	// ErrDuplicateSite is matched by *DuplicateSiteError. Returned when a term
	// is constructed from factors that reuse a site index (identity factors
	// included, since elision happens after the check).
	ErrDuplicateSite = errors.New("operator: duplicate site index")

	// ErrNegativeSite indicates a factor with a site index < 0.
	ErrNegativeSite = errors.New("operator: negative site index")

	// ErrInvalidLabel indicates a factor label outside the Pauli alphabet.
	ErrInvalidLabel = errors.New("operator: invalid label")

	// ErrNonFiniteCoefficient indicates a NaN or ±Inf coefficient component.
	ErrNonFiniteCoefficient = errors.New("operator: coefficient is NaN or Inf")

	// ErrToleranceConfiguration indicates a negative or non-finite tolerance.
	ErrToleranceConfiguration = errors.New("operator: tolerance must be finite and >= 0")

	// ErrWorkerConfiguration indicates a worker count < 1 or a negative
	// parallel threshold.
	ErrWorkerConfiguration = errors.New("operator: invalid worker configuration")

	// ErrNegativePower indicates Pow was asked for a negative exponent.
	ErrNegativePower = errors.New("operator: negative power")

	// ErrMalformedRecord indicates an export record that cannot be rebuilt
	// into a term.
	ErrMalformedRecord = errors.New("operator: malformed record")
)

// DuplicateSiteError reports the first site index that appeared twice in a
// factor list, with both labels in input order.
type DuplicateSiteError struct {
	Site          int
	First, Second pauli.Label
}

// Error implements the error interface.
func (e *DuplicateSiteError) Error() string {
	return fmt.Sprintf("operator: duplicate site index %d (%v, %v)", e.Site, e.First, e.Second)
}

// Is lets errors.Is(err, ErrDuplicateSite) match.
func (e *DuplicateSiteError) Is(target error) bool { return target == ErrDuplicateSite }

// operatorErrorf wraps err with a call-site tag.
func operatorErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}
