// SPDX-License-Identifier: MIT

package dense

import (
	"fmt"

	"github.com/katalvlaran/qsym/operator"
	"github.com/katalvlaran/qsym/pauli"
)

// MaxSites bounds the register width FromSum will materialize (2^MaxSites
// rows).
const MaxSites = 10

// FromTerm returns the 2^sites × 2^sites matrix of t.
// Site k is bit k of the basis index; |0⟩ is the +1 eigenstate of Z.
func FromTerm(t operator.Term, sites int) (*Dense, error) {
	return FromSum(operator.FromTerms(t), sites)
}

// FromSum returns the 2^sites × 2^sites matrix of s.
//
// Implementation:
//   - Every Pauli string is a signed permutation: column j maps to row
//     j XOR flip, where flip has a bit for every X or Y factor; the entry is
//     coeff · Πₖ phaseₖ(bitₖ(j)).
//
// Errors:
//   - ErrInvalidDimensions when sites < 0.
//   - ErrTooManySites when sites > MaxSites.
//   - ErrOutOfRange when a term acts on a site ≥ sites.
//
// Complexity: O(len(s) · 2^sites · weight).
func FromSum(s operator.Sum, sites int) (*Dense, error) {
	switch {
	case sites < 0:
		return nil, fmt.Errorf("FromSum(%d): %w", sites, ErrInvalidDimensions)
	case sites > MaxSites:
		return nil, fmt.Errorf("FromSum(%d): %w", sites, ErrTooManySites)
	case s.MaxSite() >= sites:
		return nil, fmt.Errorf("FromSum(%d): site %d: %w", sites, s.MaxSite(), ErrOutOfRange)
	}

	n := 1 << sites
	m, err := NewDense(n, n)
	if err != nil {
		return nil, err
	}
	for t := range s.All() {
		flip := 0
		for _, f := range t.Factors() {
			if f.Label == pauli.X || f.Label == pauli.Y {
				flip |= 1 << f.Site
			}
		}
		factors := t.Factors()
		for j := 0; j < n; j++ {
			ph := pauli.One
			for _, f := range factors {
				down := j>>f.Site&1 == 1
				switch f.Label {
				case pauli.Y:
					ph = ph.Mul(pauli.PlusI)
					if down {
						ph = ph.Mul(pauli.MinusOne)
					}
				case pauli.Z:
					if down {
						ph = ph.Mul(pauli.MinusOne)
					}
				}
			}
			m.data[(j^flip)*n+j] += ph.Apply(t.Coefficient())
		}
	}

	return m, nil
}
