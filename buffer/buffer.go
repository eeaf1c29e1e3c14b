package buffer

import (
	"fmt"
	"strings"

	"github.com/lixenwraith/barchart/style"
	"github.com/lixenwraith/barchart/text"
)

// Buffer is a grid of cells covering an area of the terminal
// All writes are clipped silently at the area edges
type Buffer struct {
	cells []Cell
	area  Rect
}

// New creates a blank buffer covering area
func New(area Rect) *Buffer {
	b := &Buffer{}
	b.Resize(area)
	return b
}

// WithLines creates a buffer at the origin holding lines, width is the widest line
// Intended for building expected buffers in tests
func WithLines(lines ...string) *Buffer {
	w := 0
	for _, l := range lines {
		w = max(w, text.StringWidth(l))
	}
	b := New(NewRect(0, 0, w, len(lines)))
	for y, l := range lines {
		b.SetString(0, y, l, style.New())
	}
	return b
}

// Resize adjusts buffer area, reallocates only if capacity insufficient
func (b *Buffer) Resize(area Rect) {
	size := area.Area()
	if cap(b.cells) < size {
		b.cells = make([]Cell, size)
	} else {
		b.cells = b.cells[:size]
	}
	b.area = area
	b.Reset()
}

// Reset blanks all cells using exponential copy
func (b *Buffer) Reset() {
	if len(b.cells) == 0 {
		return
	}
	b.cells[0] = BlankCell()
	for filled := 1; filled < len(b.cells); filled *= 2 {
		copy(b.cells[filled:], b.cells[:filled])
	}
}

// Area returns the covered rect
func (b *Buffer) Area() Rect {
	return b.area
}

// inBounds returns true if (x, y) is inside the buffer area
func (b *Buffer) inBounds(x, y int) bool {
	return b.area.Contains(x, y)
}

func (b *Buffer) index(x, y int) int {
	return (y-b.area.Y)*b.area.Width + (x - b.area.X)
}

// Cell returns the cell at absolute (x, y), blank if outside the area
func (b *Buffer) Cell(x, y int) Cell {
	if !b.inBounds(x, y) {
		return BlankCell()
	}
	return b.cells[b.index(x, y)]
}

// CellMut returns a pointer to the cell at (x, y), nil if outside the area
func (b *Buffer) CellMut(x, y int) *Cell {
	if !b.inBounds(x, y) {
		return nil
	}
	return &b.cells[b.index(x, y)]
}

// SetStringN writes graphemes of s from (x, y) using at most maxWidth columns
// Writing stops at the buffer's right edge or before a grapheme that would not fit
// Returns the column after the last grapheme consumed
func (b *Buffer) SetStringN(x, y int, s string, maxWidth int, st style.Style) (int, int) {
	if maxWidth <= 0 || y < b.area.Y || y >= b.area.Bottom() {
		return x, y
	}

	limit := b.area.Right()
	if maxWidth < limit-x {
		limit = x + maxWidth
	}

	col := x
	for _, g := range text.Graphemes(s) {
		if col+g.Width > limit {
			break
		}
		if col == x {
			b.releaseLeft(col, y)
		}
		b.releaseRight(col+g.Width, y)
		for i := 0; i < g.Width; i++ {
			c := b.CellMut(col+i, y)
			if c == nil {
				continue
			}
			switch {
			case i == 0:
				c.SetSymbol(g.Symbol)
			case col < b.area.X:
				// Head clipped off the left edge, show the visible half as blank
				c.SetSymbol(blankSymbol)
			default:
				c.SetSymbol("")
			}
			c.SetStyle(st)
		}
		col += g.Width
	}
	return col, y
}

// SetString writes s from (x, y) up to the right edge of the buffer
func (b *Buffer) SetString(x, y int, s string, st style.Style) (int, int) {
	return b.SetStringN(x, y, s, b.area.Right()-x, st)
}

// SetLine writes spans of line from (x, y) in order, each with its own style,
// using at most maxWidth columns in total
func (b *Buffer) SetLine(x, y int, line text.Line, maxWidth int) (int, int) {
	remaining := maxWidth
	for _, span := range line.Spans {
		if remaining <= 0 {
			break
		}
		nx, _ := b.SetStringN(x, y, span.Content, remaining, span.Style)
		remaining -= nx - x
		x = nx
	}
	return x, y
}

// SetStyle patches st onto every cell of area
func (b *Buffer) SetStyle(area Rect, st style.Style) {
	area = area.Intersect(b.area)
	for y := area.Y; y < area.Bottom(); y++ {
		for x := area.X; x < area.Right(); x++ {
			b.cells[b.index(x, y)].SetStyle(st)
		}
	}
}

// Fill writes symbol into every cell of area, patching st onto each
func (b *Buffer) Fill(area Rect, symbol string, st style.Style) {
	area = area.Intersect(b.area)
	if area.IsEmpty() {
		return
	}
	for y := area.Y; y < area.Bottom(); y++ {
		b.releaseLeft(area.X, y)
		b.releaseRight(area.Right(), y)
		for x := area.X; x < area.Right(); x++ {
			b.cells[b.index(x, y)].SetSymbol(symbol).SetStyle(st)
		}
	}
}

// releaseLeft blanks the head of a wide grapheme whose trailing column (x, y) is about to be overwritten
func (b *Buffer) releaseLeft(x, y int) {
	c := b.CellMut(x, y)
	if c == nil || !c.IsContinuation() {
		return
	}
	for hx := x - 1; hx >= b.area.X; hx-- {
		h := b.CellMut(hx, y)
		cont := h.IsContinuation()
		h.Reset()
		if !cont {
			return
		}
	}
}

// releaseRight blanks continuation cells from (x, y) onward whose head was overwritten
func (b *Buffer) releaseRight(x, y int) {
	for ; x < b.area.Right(); x++ {
		c := b.CellMut(x, y)
		if c == nil || !c.IsContinuation() {
			return
		}
		c.Reset()
	}
}

// Lines returns the symbols of each row as plain strings
func (b *Buffer) Lines() []string {
	lines := make([]string, 0, b.area.Height)
	var sb strings.Builder
	for y := b.area.Y; y < b.area.Bottom(); y++ {
		sb.Reset()
		for x := b.area.X; x < b.area.Right(); x++ {
			sb.WriteString(b.cells[b.index(x, y)].Symbol)
		}
		lines = append(lines, sb.String())
	}
	return lines
}

// String joins Lines with newlines
func (b *Buffer) String() string {
	return strings.Join(b.Lines(), "\n")
}

// CellDiff describes one differing cell between two buffers
type CellDiff struct {
	X, Y      int
	Got, Want Cell
}

func (d CellDiff) String() string {
	return fmt.Sprintf("(%d,%d): got %q %+v, want %q %+v", d.X, d.Y, d.Got.Symbol, d.Got.Style, d.Want.Symbol, d.Want.Style)
}

// Diff compares b against want cell by cell over the union of both areas
func (b *Buffer) Diff(want *Buffer) []CellDiff {
	var diffs []CellDiff
	x1 := min(b.area.X, want.area.X)
	y1 := min(b.area.Y, want.area.Y)
	x2 := max(b.area.Right(), want.area.Right())
	y2 := max(b.area.Bottom(), want.area.Bottom())
	for y := y1; y < y2; y++ {
		for x := x1; x < x2; x++ {
			got, exp := b.Cell(x, y), want.Cell(x, y)
			if got != exp {
				diffs = append(diffs, CellDiff{X: x, Y: y, Got: got, Want: exp})
			}
		}
	}
	return diffs
}
