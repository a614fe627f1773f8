// SPDX-License-Identifier: MIT

package pauli

// product is one cell of the multiplication table.
type product struct {
	label Label
	phase Phase
}

// table[a][b] is the product a·b with a applied as the left operand.
var table = [NumLabels][NumLabels]product{
	I: {I: {I, One}, X: {X, One}, Y: {Y, One}, Z: {Z, One}},
	X: {I: {X, One}, X: {I, One}, Y: {Z, PlusI}, Z: {Y, MinusI}},
	Y: {I: {Y, One}, X: {Z, MinusI}, Y: {I, One}, Z: {X, PlusI}},
	Z: {I: {Z, One}, X: {Y, PlusI}, Y: {X, MinusI}, Z: {I, One}},
}

// Mul multiplies two labels acting on the same site, left operand first,
// and returns the resulting label with its phase.
//
// Complexity: O(1), no allocation.
//
// Labels outside the alphabet are masked into it; callers validate labels
// at construction time so this never happens on well-formed values.
func Mul(left, right Label) (Label, Phase) {
	p := table[left&3][right&3]

	return p.label, p.phase
}

// Commute reports whether a and b commute as single-site operators.
// Two labels commute iff either is the identity or they are equal.
func Commute(a, b Label) bool {
	return a == I || b == I || a == b
}
