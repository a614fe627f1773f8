// SPDX-License-Identifier: MIT

package operator

import (
	"cmp"
	"encoding/binary"
	"fmt"
	"strings"

	"github.com/katalvlaran/qsym/pauli"
)

// Factor binds a Pauli label to a site (qubit) index.
type Factor struct {
	Site  int
	Label pauli.Label
}

// F is shorthand for Factor{Site: site, Label: l}.
func F(site int, l pauli.Label) Factor { return Factor{Site: site, Label: l} }

// String renders the factor as label followed by site, e.g. "X3".
func (f Factor) String() string { return fmt.Sprintf("%v%d", f.Label, f.Site) }

// compareFactor orders factors by (site, label code).
func compareFactor(a, b Factor) int {
	if c := cmp.Compare(a.Site, b.Site); c != 0 {
		return c
	}

	return cmp.Compare(a.Label, b.Label)
}

// Support is a canonical factor sequence: sites strictly ascending, no
// identity labels. Values returned by this package are copies; mutating
// them does not affect any Term or Sum.
type Support []Factor

// CompareSupport is the canonical total order over supports.
//
// Supports are compared lexicographically by (site ascending, label code
// ascending); when one is a strict prefix of the other, the shorter one
// precedes. The empty support (the identity operator) is the minimum.
//
// Returns -1, 0 or +1.
func CompareSupport(a, b Support) int {
	n := min(len(a), len(b))
	for i := 0; i < n; i++ {
		if c := compareFactor(a[i], b[i]); c != 0 {
			return c
		}
	}

	return cmp.Compare(len(a), len(b))
}

// Equal reports whether s and o are the same support.
func (s Support) Equal(o Support) bool { return CompareSupport(s, o) == 0 }

// IsCanonical reports whether s satisfies the support invariants.
func (s Support) IsCanonical() bool {
	for i, f := range s {
		if f.Site < 0 || !f.Label.Valid() || f.Label == pauli.I {
			return false
		}
		if i > 0 && s[i-1].Site >= f.Site {
			return false
		}
	}

	return true
}

// Key returns an injective encoding of s, usable as a map key.
// Each factor contributes a uvarint site followed by one label byte; the
// uvarint is prefix-free, so equal keys imply equal supports.
func (s Support) Key() string { return string(s.appendKey(nil)) }

func (s Support) appendKey(dst []byte) []byte {
	for _, f := range s {
		dst = binary.AppendUvarint(dst, uint64(f.Site))
		dst = append(dst, byte(f.Label))
	}

	return dst
}

// String renders the support as space-separated factors, or "I" when empty.
func (s Support) String() string {
	if len(s) == 0 {
		return "I"
	}
	var sb strings.Builder
	for i, f := range s {
		if i > 0 {
			sb.WriteByte(' ')
		}
		sb.WriteString(f.String())
	}

	return sb.String()
}
