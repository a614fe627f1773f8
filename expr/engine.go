// SPDX-License-Identifier: MIT

package expr

import (
	"errors"
	"fmt"

	"github.com/go-logr/logr"
	"github.com/katalvlaran/qsym/operator"
)

var (
	// ErrUnboundSymbol indicates a symbol without a value reached evaluation.
	ErrUnboundSymbol = errors.New("expr: unbound symbol")

	// ErrNilNode indicates a nil Node inside an expression tree.
	ErrNilNode = errors.New("expr: nil node")

	// ErrUnknownNode indicates a Node implementation outside the closed set,
	// such as a pointer to one of the node types.
	ErrUnknownNode = errors.New("expr: unknown node type")
)

// Engine is the construction and arithmetic facade. It holds one validated
// numeric policy and applies it on every path, so every value it returns
// satisfies the canonical-form invariants under the same tolerance.
//
// An Engine is immutable after NewEngine and safe for concurrent use.
type Engine struct {
	opts operator.Options
	log  logr.Logger
}

// NewEngine validates opts and returns an Engine.
//
// Errors:
//   - operator.ErrToleranceConfiguration for a negative or non-finite tolerance.
//   - operator.ErrWorkerConfiguration for invalid concurrency knobs.
func NewEngine(opts ...operator.Option) (*Engine, error) {
	o, err := operator.NewOptions(opts...)
	if err != nil {
		return nil, fmt.Errorf("NewEngine: %w", err)
	}

	return &Engine{opts: o, log: o.Logger().WithName("expr")}, nil
}

// Options returns the engine's numeric policy.
func (e *Engine) Options() operator.Options { return e.opts }

// Term builds coeff · Π factors. Errors: those of operator.NewTerm.
func (e *Engine) Term(coeff complex128, factors ...operator.Factor) (operator.Term, error) {
	return operator.NewTerm(coeff, factors...)
}

// Sum merges terms into a canonical sum.
func (e *Engine) Sum(terms ...operator.Term) operator.Sum { return e.opts.FromTerms(terms...) }

// Add returns a + b.
func (e *Engine) Add(a, b operator.Sum) operator.Sum { return e.opts.Add(a, b) }

// Sub returns a − b.
func (e *Engine) Sub(a, b operator.Sum) operator.Sum { return e.opts.Sub(a, b) }

// Mul returns a·b.
func (e *Engine) Mul(a, b operator.Sum) operator.Sum { return e.opts.Mul(a, b) }

// Scale returns c·s. Errors: operator.ErrNonFiniteCoefficient for a
// non-finite c.
func (e *Engine) Scale(s operator.Sum, c complex128) (operator.Sum, error) {
	return e.opts.Scale(s, c)
}

// Commutator returns [a, b].
func (e *Engine) Commutator(a, b operator.Sum) operator.Sum { return e.opts.Commutator(a, b) }

// Anticommutator returns {a, b}.
func (e *Engine) Anticommutator(a, b operator.Sum) operator.Sum { return e.opts.Anticommutator(a, b) }

// Equal reports a == b within the engine tolerance.
func (e *Engine) Equal(a, b operator.Sum) bool { return e.opts.Equal(a, b) }

// IsZero reports whether s cleans to the empty sum.
func (e *Engine) IsZero(s operator.Sum) bool { return e.opts.IsZero(s) }

// Import rebuilds a sum from export records.
func (e *Engine) Import(records []operator.Record) (operator.Sum, error) {
	return e.opts.Import(records)
}

// Canonical evaluates n into its canonical operator sum.
//
// Implementation:
//   - Stage 1: Flatten the tree.
//   - Stage 2: evaluate bottom-up; sums merge all operands at once, products
//     multiply strictly left to right (the empty product is the identity,
//     the empty sum is zero); bound symbols evaluate to their value.
//
// Errors:
//   - ErrUnboundSymbol (with the symbol name) when a symbol has no value.
//   - operator.ErrNonFiniteCoefficient for a NaN or ±Inf scalar or symbol value.
//   - ErrNilNode for a nil operand, ErrUnknownNode for a foreign node type.
func (e *Engine) Canonical(n Node) (operator.Sum, error) {
	s, err := e.eval(Flatten(n))
	if err != nil {
		return operator.Sum{}, fmt.Errorf("Canonical: %w", err)
	}
	e.log.V(1).Info("canonicalized expression", "terms", s.Len())

	return s, nil
}

// SameOperator reports whether a and b canonicalize to equal sums.
func (e *Engine) SameOperator(a, b Node) (bool, error) {
	sa, err := e.Canonical(a)
	if err != nil {
		return false, err
	}
	sb, err := e.Canonical(b)
	if err != nil {
		return false, err
	}

	return e.opts.Equal(sa, sb), nil
}

func (e *Engine) eval(n Node) (operator.Sum, error) {
	switch v := n.(type) {
	case nil:
		return operator.Sum{}, ErrNilNode
	case Scalar:
		t, err := operator.Identity(v.Value)
		if err != nil {
			return operator.Sum{}, fmt.Errorf("scalar %v: %w", v.Value, err)
		}

		return e.opts.FromTerms(t), nil
	case Symbol:
		if !v.Bound {
			return operator.Sum{}, fmt.Errorf("%w %q", ErrUnboundSymbol, v.Name)
		}
		t, err := operator.Identity(complex(v.Value, 0))
		if err != nil {
			return operator.Sum{}, fmt.Errorf("symbol %q: %w", v.Name, err)
		}

		return e.opts.FromTerms(t), nil
	case Op:
		return e.opts.FromTerms(v.Term), nil
	case Sum:
		parts := make([]operator.Sum, len(v.Terms))
		for i, t := range v.Terms {
			s, err := e.eval(t)
			if err != nil {
				return operator.Sum{}, err
			}
			parts[i] = s
		}

		return e.opts.AddAll(parts...), nil
	case Product:
		acc := operator.One()
		for _, f := range v.Factors {
			s, err := e.eval(f)
			if err != nil {
				return operator.Sum{}, err
			}
			acc = e.opts.Mul(acc, s)
		}

		return acc, nil
	}

	return operator.Sum{}, fmt.Errorf("eval %T: %w", n, ErrUnknownNode)
}
