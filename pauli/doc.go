// SPDX-License-Identifier: MIT

// Package pauli defines the single-site operator alphabet and its
// multiplication table.
//
// 🚀 What is here?
//
//	The four single-qubit Pauli labels I, X, Y, Z together with the unit
//	phases {+1, +i, −1, −i} they produce when multiplied:
//	  • XY = iZ,  YZ = iX,  ZX = iY
//	  • YX = −iZ, ZY = −iX, XZ = −iY
//	  • LL = I for every label L, and I is neutral.
//
// ✨ Key properties:
//   - closed enumerations (Label, Phase), no dispatch hierarchy
//   - dense 4×4 lookup table: Mul is O(1), total and allocation-free
//   - phases are stored as exponents of i, so phase products never
//     touch floating point
//
// ⚙️ Usage:
//
//	import "github.com/katalvlaran/qsym/pauli"
//
//	l, ph := pauli.Mul(pauli.X, pauli.Y) // l == pauli.Z, ph == pauli.PlusI
//	c := ph.Complex()                    // 0+1i
package pauli
