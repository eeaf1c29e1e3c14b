package buffer

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/barchart/style"
	"github.com/lixenwraith/barchart/text"
)

// Flush copies every cell to screen at its absolute position, caller calls Show
// Continuation cells are skipped, tcell advances past wide runes itself
// Hidden cells are blanked column by column, tcell has no concealed attribute
func (b *Buffer) Flush(screen tcell.Screen) {
	for y := b.area.Y; y < b.area.Bottom(); y++ {
		for x := b.area.X; x < b.area.Right(); x++ {
			c := b.cells[b.index(x, y)]
			if c.Style.Modifiers().Contains(style.Hidden) {
				screen.SetContent(x, y, ' ', nil, c.Style.Tcell())
				continue
			}
			if c.IsContinuation() {
				continue
			}
			runes := []rune(c.Symbol)
			screen.SetContent(x, y, runes[0], runes[1:], c.Style.Tcell())
		}
	}
}

// ANSI renders each row as a string with escape sequences, runs of equal style share one sequence
// Hidden cells are written as blanks of the same width
// Nil renderer uses the lipgloss default, which degrades to plain text off a TTY
func (b *Buffer) ANSI(r *lipgloss.Renderer) []string {
	if r == nil {
		r = lipgloss.DefaultRenderer()
	}

	lines := make([]string, 0, b.area.Height)
	var row, run strings.Builder
	for y := b.area.Y; y < b.area.Bottom(); y++ {
		row.Reset()
		run.Reset()
		var runStyle style.Style
		for x := b.area.X; x < b.area.Right(); x++ {
			c := b.cells[b.index(x, y)]
			if c.Style != runStyle && run.Len() > 0 {
				row.WriteString(lipglossStyle(r, runStyle).Render(run.String()))
				run.Reset()
			}
			runStyle = c.Style
			if c.Style.Modifiers().Contains(style.Hidden) {
				run.WriteString(strings.Repeat(blankSymbol, text.StringWidth(c.Symbol)))
				continue
			}
			run.WriteString(c.Symbol)
		}
		if run.Len() > 0 {
			row.WriteString(lipglossStyle(r, runStyle).Render(run.String()))
		}
		lines = append(lines, row.String())
	}
	return lines
}

func lipglossStyle(r *lipgloss.Renderer, st style.Style) lipgloss.Style {
	ls := r.NewStyle()
	if c, ok := lipglossColor(st.Fg); ok {
		ls = ls.Foreground(c)
	}
	if c, ok := lipglossColor(st.Bg); ok {
		ls = ls.Background(c)
	}

	mods := st.Modifiers()
	if mods.Contains(style.Bold) {
		ls = ls.Bold(true)
	}
	if mods.Contains(style.Dim) {
		ls = ls.Faint(true)
	}
	if mods.Contains(style.Italic) {
		ls = ls.Italic(true)
	}
	if mods.Contains(style.Underlined) {
		ls = ls.Underline(true)
	}
	if mods&(style.SlowBlink|style.RapidBlink) != 0 {
		ls = ls.Blink(true)
	}
	if mods.Contains(style.Reversed) {
		ls = ls.Reverse(true)
	}
	if mods.Contains(style.CrossedOut) {
		ls = ls.Strikethrough(true)
	}
	return ls
}

// lipglossColor maps palette colors to ANSI indices and RGB colors to hex
func lipglossColor(c tcell.Color) (lipgloss.Color, bool) {
	if c == tcell.ColorDefault || c == tcell.ColorReset || !c.Valid() {
		return "", false
	}
	if c.IsRGB() {
		return lipgloss.Color(fmt.Sprintf("#%06x", c.Hex())), true
	}
	return lipgloss.Color(strconv.Itoa(int(c - tcell.ColorValid))), true
}
