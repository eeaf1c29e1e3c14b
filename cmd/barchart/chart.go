package main

import (
	"github.com/lixenwraith/barchart/barchart"
	"github.com/lixenwraith/barchart/buffer"
	"github.com/lixenwraith/barchart/config"
	"github.com/lixenwraith/barchart/style"
	"github.com/lixenwraith/barchart/text"
)

// chart lays bars out left to right at a fixed width and picks the renderer per mode
type chart struct {
	mode     string
	title    string
	barWidth int
	gap      int
	padding  int
	symbols  []string
	bars     []barchart.Bar

	valueStyle      style.Style
	labelStyle      style.Style
	overflowStyle   style.Style
	titleStyle      style.Style
	backgroundStyle style.Style
}

func newChart(cfg *config.Config) (*chart, error) {
	bars, err := cfg.BuildBars()
	if err != nil {
		return nil, err
	}
	value, label, overflow, err := cfg.ChartStyles()
	if err != nil {
		return nil, err
	}
	title, background, err := cfg.FrameStyles()
	if err != nil {
		return nil, err
	}

	symbols := make([]string, len(cfg.Bars))
	for i, bc := range cfg.Bars {
		symbols[i] = bc.FillSymbol()
	}

	return &chart{
		mode:            cfg.Mode,
		title:           cfg.Title,
		barWidth:        cfg.BarWidth,
		gap:             cfg.Gap,
		padding:         cfg.Padding,
		symbols:         symbols,
		bars:            bars,
		valueStyle:      value,
		labelStyle:      label,
		overflowStyle:   overflow,
		titleStyle:      title,
		backgroundStyle: background,
	}, nil
}

// area returns the rect needed at the origin: an optional title row, one body row,
// a value row in caption mode and a label row, surrounded by padding
func (c *chart) area() buffer.Rect {
	n := len(c.bars)
	w := n*c.barWidth + max(n-1, 0)*c.gap
	h := 2
	if c.mode == config.ModeCaption {
		h++
	}
	if c.title != "" {
		h++
	}
	return buffer.NewRect(0, 0, w+2*c.padding, h+2*c.padding)
}

func (c *chart) render() *buffer.Buffer {
	area := c.area()
	buf := buffer.New(area)
	buf.SetStyle(area, c.backgroundStyle)

	inner := area.Inset(c.padding)
	if inner.IsEmpty() {
		return buf
	}

	rows := inner.Rows()
	if c.title != "" {
		c.renderTitle(buf, rows[0])
		rows = rows[1:]
	}
	body := rows[0]

	for i, bar := range c.bars {
		x := i * (c.barWidth + c.gap)
		cell := body.Sub(x, 0, c.barWidth, 1)
		buf.Fill(cell, c.symbols[i], bar.Style())

		switch c.mode {
		case config.ModeCaption:
			bar.RenderCenteredCaption(buf, c.barWidth, cell.X, rows[1].Y, c.valueStyle, c.labelStyle)
		default:
			offset := max(c.barWidth-text.StringWidth(bar.DisplayText()), 0) / 2
			row := body.Sub(x+offset, 0, body.Width, 1)
			bar.RenderEmbeddedValue(buf, row, c.barWidth-offset, c.valueStyle, c.overflowStyle)

			// A zero-valued bar carrying only the label draws just the caption row
			if l, ok := bar.Label(); ok {
				barchart.NewBar().WithLabel(l).RenderCenteredCaption(buf, c.barWidth, cell.X, body.Y, c.valueStyle, c.labelStyle)
			}
		}
	}
	return buf
}

// renderTitle centers the title over the chart, shortening it with an ellipsis when too wide
func (c *chart) renderTitle(buf *buffer.Buffer, row buffer.Rect) {
	title := text.PadCenter(text.Truncate(c.title, row.Width), row.Width)
	buf.SetLine(row.X, row.Y, text.Styled(title, c.titleStyle), row.Width)
}
