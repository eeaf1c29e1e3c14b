// Package barchart renders the value text and caption of a single chart bar into a cell surface.
//
// A Bar is an immutable value record. The chart layer decides per bar which placement
// applies and calls exactly one renderer per render pass:
//
//   - RenderEmbeddedValue draws the value inside the bar's own columns; text wider than the
//     bar spills to the right in the overflow style.
//   - RenderCenteredCaption draws the value on one row and the label on the next, each centered
//     in a fixed column span; a value that does not fit is dropped, a label is clipped.
//
// Usage pattern:
//
//	bar := barchart.NewBar().
//	    WithValue(10).
//	    WithLabel(text.Raw("C1")).
//	    WithValueStyle(style.New().Foreground(tcell.ColorBlue))
//
//	buf := buffer.New(buffer.NewRect(0, 0, w, h))
//	bar.RenderEmbeddedValue(buf, buffer.NewRect(x, y, w, 1), barWidth, valueStyle, chartStyle)
//	bar.RenderCenteredCaption(buf, barWidth, x, y+1, valueStyle, labelStyle)
package barchart
