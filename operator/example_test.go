package operator_test

import (
	"fmt"

	"github.com/katalvlaran/qsym/operator"
	"github.com/katalvlaran/qsym/pauli"
)

// ExampleMul shows the per-site phase bookkeeping of (X0 Y1)·(Y0 X1):
// XY = iZ on site 0 and YX = −iZ on site 1, so the phases cancel.
func ExampleMul() {
	a := operator.MustSum(1, operator.F(0, pauli.X), operator.F(1, pauli.Y))
	b := operator.MustSum(1, operator.F(0, pauli.Y), operator.F(1, pauli.X))

	fmt.Println(operator.Mul(a, b))
	// Output:
	// (1+0i) Z0 Z1
}

// ExampleFromTerms merges equal supports and cancels opposite terms.
func ExampleFromTerms() {
	s := operator.FromTerms(
		operator.MustTerm(1, operator.F(1, pauli.Z)),
		operator.MustTerm(0.5, operator.F(0, pauli.X)),
		operator.MustTerm(0.5, operator.F(0, pauli.X)),
		operator.MustTerm(2, operator.F(3, pauli.Y)),
		operator.MustTerm(-2, operator.F(3, pauli.Y)),
	)
	for t := range s.All() {
		fmt.Println(t)
	}
	// Output:
	// (1+0i) X0
	// (1+0i) Z1
}

// ExampleCommutator evaluates [X, Y] = 2iZ.
func ExampleCommutator() {
	x := operator.MustSum(1, operator.F(0, pauli.X))
	y := operator.MustSum(1, operator.F(0, pauli.Y))

	fmt.Println(operator.Commutator(x, y))
	fmt.Println(operator.Anticommutator(x, y))
	// Output:
	// (0+2i) Z0
	// 0
}
