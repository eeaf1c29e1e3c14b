package text

import (
	"strings"

	"github.com/mattn/go-runewidth"
	"github.com/rivo/uniseg"
)

// Grapheme is one user-perceived character with its display width in columns
type Grapheme struct {
	Symbol string
	Width  int
}

// Graphemes splits s into grapheme clusters
// Zero-width clusters (combining marks on their own, control chars) are skipped
func Graphemes(s string) []Grapheme {
	out := make([]Grapheme, 0, len(s))
	g := uniseg.NewGraphemes(s)
	for g.Next() {
		sym := g.Str()
		w := runewidth.StringWidth(sym)
		if w == 0 {
			continue
		}
		out = append(out, Grapheme{Symbol: sym, Width: w})
	}
	return out
}

// StringWidth returns the number of terminal columns s occupies
func StringWidth(s string) int {
	w := 0
	for _, g := range Graphemes(s) {
		w += g.Width
	}
	return w
}

// SplitWidth splits s so head is the longest grapheme prefix no wider than width
func SplitWidth(s string, width int) (head, tail string, headWidth int) {
	if width <= 0 {
		return "", s, 0
	}
	g := uniseg.NewGraphemes(s)
	for g.Next() {
		w := runewidth.StringWidth(g.Str())
		if headWidth+w > width {
			start, _ := g.Positions()
			return s[:start], s[start:], headWidth
		}
		headWidth += w
	}
	return s, "", headWidth
}

// Truncate truncates s with … suffix if it exceeds maxWidth columns
func Truncate(s string, maxWidth int) string {
	if maxWidth <= 0 {
		return ""
	}
	if StringWidth(s) <= maxWidth {
		return s
	}
	if maxWidth <= 1 {
		return "…"
	}
	head, _, _ := SplitWidth(s, maxWidth-1)
	return head + "…"
}

// PadCenter centers s within width, extra column goes right
func PadCenter(s string, width int) string {
	w := StringWidth(s)
	if w >= width {
		return s
	}
	left := (width - w) / 2
	return strings.Repeat(" ", left) + s + strings.Repeat(" ", width-w-left)
}
