package style

import (
	"github.com/gdamore/tcell/v2"
)

// Style bundles foreground, background, and modifiers for text rendering
// Each attribute is either explicitly set or inherited: tcell.ColorDefault marks an unset color,
// Add/Sub hold modifiers forced on/off, modifiers absent from both are inherited
type Style struct {
	Fg  tcell.Color
	Bg  tcell.Color
	Add Modifier
	Sub Modifier
}

// New returns a style with every attribute unset
func New() Style {
	return Style{}
}

// Reset returns a style that resets all attributes to terminal defaults
func Reset() Style {
	return Style{
		Fg:  tcell.ColorReset,
		Bg:  tcell.ColorReset,
		Sub: ModifierAll,
	}
}

// Foreground returns a copy with fg set
func (s Style) Foreground(c tcell.Color) Style {
	s.Fg = c
	return s
}

// Background returns a copy with bg set
func (s Style) Background(c tcell.Color) Style {
	s.Bg = c
	return s
}

// AddModifier returns a copy with m forced on
func (s Style) AddModifier(m Modifier) Style {
	s.Sub &^= m
	s.Add |= m
	return s
}

// RemoveModifier returns a copy with m forced off
func (s Style) RemoveModifier(m Modifier) Style {
	s.Add &^= m
	s.Sub |= m
	return s
}

// HasFg reports whether the foreground is explicitly set
func (s Style) HasFg() bool {
	return s.Fg != tcell.ColorDefault
}

// HasBg reports whether the background is explicitly set
func (s Style) HasBg() bool {
	return s.Bg != tcell.ColorDefault
}

// IsZero returns true if style has no colors or modifiers set
func (s Style) IsZero() bool {
	return s == Style{}
}

// Patch overlays s onto base and returns the result
// Explicit attributes of s win, unset attributes fall through to base
func (s Style) Patch(base Style) Style {
	out := base
	if s.HasFg() {
		out.Fg = s.Fg
	}
	if s.HasBg() {
		out.Bg = s.Bg
	}
	out.Add = (base.Add &^ s.Sub) | s.Add
	out.Sub = (base.Sub &^ s.Add) | s.Sub
	return out
}

// Modifiers returns the modifiers in effect when the style is drawn on a blank cell
func (s Style) Modifiers() Modifier {
	return s.Add &^ s.Sub
}

// Tcell converts to a tcell style; unset colors map to the terminal default
func (s Style) Tcell() tcell.Style {
	st := tcell.StyleDefault.
		Foreground(resolve(s.Fg)).
		Background(resolve(s.Bg))

	mods := s.Modifiers()
	st = st.Attributes(mods.attrMask())
	if mods.Contains(Underlined) {
		st = st.Underline(true)
	}
	return st
}

// resolve maps reset to default, tcell has no separate notion of an explicit reset
func resolve(c tcell.Color) tcell.Color {
	if c == tcell.ColorReset {
		return tcell.ColorDefault
	}
	return c
}
