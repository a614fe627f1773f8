// SPDX-License-Identifier: MIT

package pauli

import (
	"errors"
	"fmt"
	"strings"
)

// ErrUnknownLabel indicates that a textual label is not one of I, X, Y, Z.
var ErrUnknownLabel = errors.New("pauli: unknown label")

// Label is a single-site Pauli operator. The numeric value is the label
// code used by canonical ordering (I < X < Y < Z).
type Label uint8

const (
	// I is the identity.
	I Label = iota
	// X is the bit-flip operator σx.
	X
	// Y is σy = iXZ.
	Y
	// Z is the phase-flip operator σz.
	Z
)

// NumLabels is the size of the alphabet.
const NumLabels = 4

var labelNames = [NumLabels]string{"I", "X", "Y", "Z"}

// Labels returns all labels in code order.
func Labels() []Label { return []Label{I, X, Y, Z} }

// Valid reports whether l is one of the four defined labels.
func (l Label) Valid() bool { return l < NumLabels }

// IsIdentity reports whether l == I.
func (l Label) IsIdentity() bool { return l == I }

// String returns the single-letter name of the label.
func (l Label) String() string {
	if !l.Valid() {
		return fmt.Sprintf("Label(%d)", uint8(l))
	}

	return labelNames[l]
}

// ParseLabel parses "I", "X", "Y" or "Z" (case-insensitive).
func ParseLabel(s string) (Label, error) {
	switch strings.ToUpper(strings.TrimSpace(s)) {
	case "I":
		return I, nil
	case "X":
		return X, nil
	case "Y":
		return Y, nil
	case "Z":
		return Z, nil
	}

	return I, fmt.Errorf("ParseLabel %q: %w", s, ErrUnknownLabel)
}

// MarshalText implements encoding.TextMarshaler.
func (l Label) MarshalText() ([]byte, error) {
	if !l.Valid() {
		return nil, fmt.Errorf("MarshalText %d: %w", uint8(l), ErrUnknownLabel)
	}

	return []byte(labelNames[l]), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (l *Label) UnmarshalText(b []byte) error {
	v, err := ParseLabel(string(b))
	if err != nil {
		return err
	}
	*l = v

	return nil
}

// Phase is a unit phase i^k, stored as k mod 4.
//
//	One      = i^0 = +1
//	PlusI    = i^1 = +i
//	MinusOne = i^2 = −1
//	MinusI   = i^3 = −i
type Phase uint8

const (
	One Phase = iota
	PlusI
	MinusOne
	MinusI
)

var phaseValues = [4]complex128{1, 1i, -1, -1i}

var phaseNames = [4]string{"+1", "+i", "-1", "-i"}

// Mul returns p·q.
func (p Phase) Mul(q Phase) Phase { return (p + q) & 3 }

// Neg returns −p.
func (p Phase) Neg() Phase { return (p + 2) & 3 }

// Conj returns the complex conjugate of p.
func (p Phase) Conj() Phase { return (4 - p) & 3 }

// Complex returns p as a complex128 with exact components.
func (p Phase) Complex() complex128 { return phaseValues[p&3] }

// String returns one of "+1", "+i", "-1", "-i".
func (p Phase) String() string { return phaseNames[p&3] }

// Apply returns p·c. The rotation is exact: no floating-point products are
// formed, so coefficients never drift through repeated phase bookkeeping.
// Negations are written as 0−v so that no −0 component is produced.
func (p Phase) Apply(c complex128) complex128 {
	switch p & 3 {
	case PlusI:
		return complex(0-imag(c), real(c))
	case MinusOne:
		return complex(0-real(c), 0-imag(c))
	case MinusI:
		return complex(imag(c), 0-real(c))
	}

	return c
}
