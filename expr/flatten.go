// SPDX-License-Identifier: MIT

package expr

import (
	"slices"
	"strings"
)

// Flatten splices nested sums into their parent sum and nested products
// into their parent product. No algebra is applied: a sum inside a product
// stays where it is, and leaves are returned unchanged.
func Flatten(n Node) Node {
	switch v := n.(type) {
	case Sum:
		out := make([]Node, 0, len(v.Terms))
		for _, t := range v.Terms {
			f := Flatten(t)
			if inner, ok := f.(Sum); ok {
				out = append(out, inner.Terms...)

				continue
			}
			out = append(out, f)
		}

		return Sum{Terms: out}
	case Product:
		out := make([]Node, 0, len(v.Factors))
		for _, t := range v.Factors {
			f := Flatten(t)
			if inner, ok := f.(Product); ok {
				out = append(out, inner.Factors...)

				continue
			}
			out = append(out, f)
		}

		return Product{Factors: out}
	}

	return n
}

// Normalize flattens n and sorts the operands of every sum by their
// rendered form; product operands keep their order. Two trees that differ
// only in how sums are nested or ordered normalize to the same tree.
// This is a structural normal form, not an algebraic one: use
// Engine.Canonical to combine like terms.
func Normalize(n Node) Node {
	switch v := Flatten(n).(type) {
	case Sum:
		out := make([]Node, len(v.Terms))
		for i, t := range v.Terms {
			out[i] = Normalize(t)
		}
		slices.SortStableFunc(out, func(a, b Node) int { return strings.Compare(a.String(), b.String()) })

		return Sum{Terms: out}
	case Product:
		out := make([]Node, len(v.Factors))
		for i, t := range v.Factors {
			out[i] = Normalize(t)
		}

		return Product{Factors: out}
	default:
		return v
	}
}

// Bind returns a copy of n in which every symbol called name is bound to value.
func Bind(n Node, name string, value float64) Node {
	switch v := n.(type) {
	case Symbol:
		if v.Name == name {
			return Symbol{Name: name, Value: value, Bound: true}
		}

		return v
	case Sum:
		out := make([]Node, len(v.Terms))
		for i, t := range v.Terms {
			out[i] = Bind(t, name, value)
		}

		return Sum{Terms: out}
	case Product:
		out := make([]Node, len(v.Factors))
		for i, t := range v.Factors {
			out[i] = Bind(t, name, value)
		}

		return Product{Factors: out}
	}

	return n
}

// FreeSymbols returns the names of unbound symbols in n, sorted and unique.
func FreeSymbols(n Node) []string {
	var names []string
	var walk func(Node)
	walk = func(n Node) {
		switch v := n.(type) {
		case Symbol:
			if !v.Bound {
				names = append(names, v.Name)
			}
		case Sum:
			for _, t := range v.Terms {
				walk(t)
			}
		case Product:
			for _, t := range v.Factors {
				walk(t)
			}
		}
	}
	walk(n)
	slices.Sort(names)

	return slices.Compact(names)
}
