// SPDX-License-Identifier: MIT

package expr

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/katalvlaran/qsym/operator"
)

// Node is an expression tree node. The set of implementations is closed:
// Scalar, Symbol, Op, Sum and Product.
type Node interface {
	fmt.Stringer
	node()
}

// Scalar is a numeric constant.
type Scalar struct {
	Value complex128
}

// Symbol is a named real parameter. A bound symbol carries a value but keeps
// its name: binding does not imply evaluation.
type Symbol struct {
	Name  string
	Value float64
	Bound bool
}

// Op is a leaf holding one weighted Pauli string.
type Op struct {
	Term operator.Term
}

// Sum is an n-ary sum. The order of Terms is not significant.
type Sum struct {
	Terms []Node
}

// Product is an n-ary operator product. Factors are applied left to right
// and are never reordered.
type Product struct {
	Factors []Node
}

func (Scalar) node()  {}
func (Symbol) node()  {}
func (Op) node()      {}
func (Sum) node()     {}
func (Product) node() {}

// Const returns a Scalar node.
func Const(c complex128) Scalar { return Scalar{Value: c} }

// Sym returns an unbound Symbol node.
func Sym(name string) Symbol { return Symbol{Name: name} }

// Pauli returns an Op node.
func Pauli(t operator.Term) Op { return Op{Term: t} }

// Add returns a Sum node over nodes.
func Add(nodes ...Node) Sum { return Sum{Terms: nodes} }

// Mul returns a Product node over nodes.
func Mul(nodes ...Node) Product { return Product{Factors: nodes} }

func (s Scalar) String() string { return fmt.Sprint(s.Value) }

func (s Symbol) String() string {
	if !s.Bound {
		return s.Name
	}

	return s.Name + "=" + strconv.FormatFloat(s.Value, 'g', -1, 64)
}

func (o Op) String() string { return o.Term.String() }

func (s Sum) String() string { return join(s.Terms, " + ") }

func (p Product) String() string { return join(p.Factors, " * ") }

func join(nodes []Node, sep string) string {
	parts := make([]string, len(nodes))
	for i, n := range nodes {
		parts[i] = n.String()
	}

	return "(" + strings.Join(parts, sep) + ")"
}
