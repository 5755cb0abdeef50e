// Package measure provides width oracles for the line breaker.
//
// An oracle maps a string to its rendered width for a fixed font
// configuration. The breaker itself is unit-agnostic: terminal columns
// and typographic points both work, as long as the target line width is
// expressed in the same unit.
package measure

import "unicode/utf8"

// Oracle measures rendered string widths. Implementations must be
// deterministic and safe for concurrent reads.
type Oracle interface {
	Width(s string) float64
}

// Func adapts a plain function to the Oracle interface.
type Func func(string) float64

// Width implements Oracle.
func (f Func) Width(s string) float64 { return f(s) }

// Monospace returns an oracle where every rune advances by the same
// amount. Monospace(1) measures in terminal columns.
func Monospace(advance float64) Oracle {
	return Func(func(s string) float64 {
		return float64(utf8.RuneCountInString(s)) * advance
	})
}
