// Package qsym is a symbolic algebra kernel for Pauli operators: weighted
// sums of Pauli strings over indexed qubit sites, kept in one canonical form
// so that structurally different expressions of the same operator compare
// equal.
//
// 🚀 What is inside?
//
//	pauli/    — the single-site alphabet {I, X, Y, Z}, the 4×4 product table
//	            and exact phases i^k.
//	operator/ — Term (c · P) and Sum (Σ cᵢ Pᵢ) with the canonical merge,
//	            arithmetic (Add, Sub, Mul, Scale, Commutator, Pow …),
//	            numeric policy (Options), JSON/YAML export.
//	expr/     — Engine facade and a small expression tree (sums, ordered
//	            products, symbols) with Flatten/Normalize/Canonical.
//
// ✨ Guarantees
//
//   - Every Sum is canonical: unique supports, sorted, no negligible terms.
//   - Pauli products are exact; only coefficient arithmetic rounds.
//   - Parallel multiplication is bit-identical to the serial one.
//
// Quick example:
//
//	x0 := operator.MustSum(1, operator.F(0, pauli.X))
//	z0 := operator.MustSum(1, operator.F(0, pauli.Z))
//	fmt.Println(operator.Commutator(x0, z0)) // (0-2i) Y0
//
// Runnable programs live under examples/.
//
//	go get github.com/katalvlaran/qsym
package qsym
