package style

import (
	"strings"

	"github.com/gdamore/tcell/v2"
)

// Modifier is a bitset of text decorations
type Modifier uint16

const (
	Bold Modifier = 1 << iota
	Dim
	Italic
	Underlined
	SlowBlink
	RapidBlink
	Reversed
	Hidden
	CrossedOut

	ModifierNone Modifier = 0
	ModifierAll           = Bold | Dim | Italic | Underlined | SlowBlink | RapidBlink | Reversed | Hidden | CrossedOut
)

var modifierNames = [...]struct {
	mod  Modifier
	name string
}{
	{Bold, "bold"},
	{Dim, "dim"},
	{Italic, "italic"},
	{Underlined, "underlined"},
	{SlowBlink, "slow_blink"},
	{RapidBlink, "rapid_blink"},
	{Reversed, "reversed"},
	{Hidden, "hidden"},
	{CrossedOut, "crossed_out"},
}

// Contains reports whether every bit of o is set in m
func (m Modifier) Contains(o Modifier) bool {
	return m&o == o
}

// String lists set modifiers joined by '|'
func (m Modifier) String() string {
	if m == ModifierNone {
		return "none"
	}
	var parts []string
	for _, n := range modifierNames {
		if m&n.mod != 0 {
			parts = append(parts, n.name)
		}
	}
	return strings.Join(parts, "|")
}

// ParseModifier resolves a modifier name, case-insensitive
func ParseModifier(name string) (Modifier, bool) {
	name = strings.ToLower(strings.TrimSpace(name))
	for _, n := range modifierNames {
		if n.name == name {
			return n.mod, true
		}
	}
	return ModifierNone, false
}

// attrMask maps modifiers onto tcell attributes, underline is applied separately
// Hidden has no tcell attribute, buffers blank hidden cells when flushing
func (m Modifier) attrMask() tcell.AttrMask {
	attr := tcell.AttrNone
	if m&Bold != 0 {
		attr |= tcell.AttrBold
	}
	if m&Dim != 0 {
		attr |= tcell.AttrDim
	}
	if m&Italic != 0 {
		attr |= tcell.AttrItalic
	}
	if m&(SlowBlink|RapidBlink) != 0 {
		attr |= tcell.AttrBlink
	}
	if m&Reversed != 0 {
		attr |= tcell.AttrReverse
	}
	if m&CrossedOut != 0 {
		attr |= tcell.AttrStrikeThrough
	}
	return attr
}
