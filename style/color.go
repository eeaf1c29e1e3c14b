package style

import (
	"fmt"
	"strings"

	"github.com/gdamore/tcell/v2"
)

// ParseColor resolves a color name or #rrggbb hex value
// Empty string and "default" yield an unset color, "reset" yields the explicit terminal default
func ParseColor(name string) (tcell.Color, error) {
	name = strings.ToLower(strings.TrimSpace(name))
	switch name {
	case "", "default":
		return tcell.ColorDefault, nil
	case "reset":
		return tcell.ColorReset, nil
	}

	c := tcell.GetColor(name)
	if c == tcell.ColorDefault {
		return tcell.ColorDefault, fmt.Errorf("unknown color %q", name)
	}
	return c, nil
}

// Parse builds a style from color names and modifier names
func Parse(fg, bg string, modifiers []string) (Style, error) {
	var s Style
	var err error

	if s.Fg, err = ParseColor(fg); err != nil {
		return Style{}, fmt.Errorf("foreground: %w", err)
	}
	if s.Bg, err = ParseColor(bg); err != nil {
		return Style{}, fmt.Errorf("background: %w", err)
	}

	for _, name := range modifiers {
		remove := strings.HasPrefix(name, "-")
		m, ok := ParseModifier(strings.TrimPrefix(name, "-"))
		if !ok {
			return Style{}, fmt.Errorf("unknown modifier %q", name)
		}
		if remove {
			s = s.RemoveModifier(m)
		} else {
			s = s.AddModifier(m)
		}
	}
	return s, nil
}
