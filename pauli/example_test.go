package pauli_test

import (
	"fmt"

	"github.com/katalvlaran/qsym/pauli"
)

// ExampleMul prints the cyclic products and their reversed-order counterparts.
func ExampleMul() {
	pairs := [][2]pauli.Label{{pauli.X, pauli.Y}, {pauli.Y, pauli.X}, {pauli.Z, pauli.Z}}
	for _, p := range pairs {
		l, ph := pauli.Mul(p[0], p[1])
		fmt.Printf("%v%v = %v %v\n", p[0], p[1], ph, l)
	}
	// Output:
	// XY = +i Z
	// YX = -i Z
	// ZZ = +1 I
}
