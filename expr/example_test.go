// SPDX-License-Identifier: MIT
package expr_test

import (
	"fmt"

	"github.com/katalvlaran/qsym/expr"
	"github.com/katalvlaran/qsym/operator"
	"github.com/katalvlaran/qsym/pauli"
)

// ExampleEngine_Canonical evaluates a bound transverse-field term and a square.
func ExampleEngine_Canonical() {
	eng, err := expr.NewEngine()
	if err != nil {
		fmt.Println(err)
		return
	}

	x := expr.Pauli(operator.MustTerm(1, operator.F(0, pauli.X)))
	z := expr.Pauli(operator.MustTerm(1, operator.F(0, pauli.Z)))
	h := expr.Add(x, z)

	sq, _ := eng.Canonical(expr.Mul(h, h))
	fmt.Println(sq)

	_, err = eng.Canonical(expr.Mul(expr.Sym("g"), x))
	fmt.Println(err)

	s, _ := eng.Canonical(expr.Bind(expr.Mul(expr.Sym("g"), x), "g", 0.5))
	fmt.Println(s)
	// Output:
	// (2+0i) I
	// Canonical: expr: unbound symbol "g"
	// (0.5+0i) X0
}
