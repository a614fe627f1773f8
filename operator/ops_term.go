// SPDX-License-Identifier: MIT

package operator

import "github.com/katalvlaran/qsym/pauli"

// MulTerms returns the operator product a·b.
//
// Algorithm (merge walk over the two site-sorted factor lists):
//  1. A site present in only one operand copies that factor.
//  2. A shared site combines a's label (left) with b's label (right) via
//     pauli.Mul, multiplies the running phase, and drops the site when the
//     result is the identity.
//  3. coeff = a.coeff · b.coeff · Π phases, where the phase is applied as an
//     exact rotation.
//
// The walk never swaps operands at a shared site, so MulTerms(a, b) and
// MulTerms(b, a) differ exactly by the reversed per-site phases.
// The result is canonical by construction (the walk emits ascending sites).
//
// Complexity: O(len(a) + len(b)), one allocation.
func MulTerms(a, b Term) Term {
	out := make([]Factor, 0, len(a.factors)+len(b.factors))
	phase := pauli.One

	i, j := 0, 0
	for i < len(a.factors) && j < len(b.factors) {
		fa, fb := a.factors[i], b.factors[j]
		switch {
		case fa.Site < fb.Site:
			out = append(out, fa)
			i++
		case fa.Site > fb.Site:
			out = append(out, fb)
			j++
		default:
			l, ph := pauli.Mul(fa.Label, fb.Label)
			phase = phase.Mul(ph)
			if l != pauli.I {
				out = append(out, Factor{Site: fa.Site, Label: l})
			}
			i++
			j++
		}
	}
	out = append(out, a.factors[i:]...)
	out = append(out, b.factors[j:]...)
	if len(out) == 0 {
		out = nil
	}

	return Term{factors: out, coeff: phase.Apply(a.coeff * b.coeff)}
}
