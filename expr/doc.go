// Package expr is the expression-level facade over package operator.
//
// It offers two layers:
//
//	Engine — one validated numeric policy (tolerance, workers, logger) applied
//	         to every construction and arithmetic call.
//	Node   — a small expression tree (Scalar, Symbol, Op, Sum, Product) that
//	         higher-level tools build before evaluation; Flatten and Normalize
//	         give structural normal forms, Engine.Canonical the algebraic one.
//
// Products are never reordered: operator products do not commute.
// Symbols are real parameters; they must be bound (Bind) before a tree can be
// canonicalized, since coefficients are fixed-precision complex numbers.
//
// Usage:
//
//	eng, err := expr.NewEngine(operator.WithTolerance(1e-10))
//	if err != nil {
//	  // operator.ErrToleranceConfiguration
//	}
//	h := expr.Add(
//	  expr.Mul(expr.Sym("J"), expr.Pauli(operator.MustTerm(1, operator.F(0, pauli.Z), operator.F(1, pauli.Z)))),
//	  expr.Mul(expr.Sym("h"), expr.Pauli(operator.MustTerm(1, operator.F(0, pauli.X)))),
//	)
//	h = expr.Bind(expr.Bind(h, "J", -1), "h", 0.5)
//	sum, err := eng.Canonical(h)
package expr
