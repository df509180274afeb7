// Package textutil trims text to a number of terminal columns.
package textutil

import "github.com/mattn/go-runewidth"

// Ellipsis marks a truncated line.
const Ellipsis = "…"

// Truncate shortens plain s to at most width columns, ending in Ellipsis
// when anything was cut. Wide runes are never split.
func Truncate(s string, width int) string {
	if width <= 0 {
		return ""
	}
	if runewidth.StringWidth(s) <= width {
		return s
	}
	return runewidth.Truncate(s, width, Ellipsis)
}
