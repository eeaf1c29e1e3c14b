package buffer

import (
	"github.com/lixenwraith/barchart/style"
)

// blankSymbol fills cells that were never written
const blankSymbol = " "

// Cell is one terminal cell: a grapheme and its style
// Empty Symbol marks the trailing column of a wide grapheme
type Cell struct {
	Symbol string
	Style  style.Style
}

// BlankCell returns a cell holding a space with no style
func BlankCell() Cell {
	return Cell{Symbol: blankSymbol}
}

// SetSymbol replaces the symbol, style is kept
func (c *Cell) SetSymbol(s string) *Cell {
	c.Symbol = s
	return c
}

// SetStyle patches st onto the current cell style
func (c *Cell) SetStyle(st style.Style) *Cell {
	c.Style = st.Patch(c.Style)
	return c
}

// IsContinuation reports whether the cell is covered by a wide grapheme to its left
func (c Cell) IsContinuation() bool {
	return c.Symbol == ""
}

// Reset restores the blank state
func (c *Cell) Reset() {
	*c = BlankCell()
}
