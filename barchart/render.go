package barchart

import (
	"github.com/lixenwraith/barchart/buffer"
	"github.com/lixenwraith/barchart/style"
	"github.com/lixenwraith/barchart/text"
)

// Surface accepts clipped styled writes at absolute cell coordinates
// *buffer.Buffer implements it
type Surface interface {
	SetStringN(x, y int, s string, maxWidth int, st style.Style) (int, int)
	SetLine(x, y int, line text.Line, maxWidth int) (int, int)
}

var _ Surface = (*buffer.Buffer)(nil)

// RenderEmbeddedValue draws the display text at the origin of area
// The first barSize columns use the value style over defaultValueStyle,
// anything past them is drawn with barStyle as given, bounded by area width
func (b Bar) RenderEmbeddedValue(s Surface, area buffer.Rect, barSize int, defaultValueStyle, barStyle style.Style) {
	txt := b.DisplayText()
	if txt == "" {
		return
	}

	head, tail, headWidth := text.SplitWidth(txt, barSize)
	s.SetStringN(area.X, area.Y, head, headWidth, b.valueStyle.Patch(defaultValueStyle))

	if tail != "" {
		s.SetStringN(area.X+headWidth, area.Y, tail, max(area.Width-headWidth, 0), barStyle)
	}
}

// RenderCenteredCaption draws the value on row y and the label on row y+1,
// each centered in [x, x+maxWidth)
// The value row is skipped for a zero magnitude even when override text is set,
// and dropped entirely when it is not narrower than maxWidth
func (b Bar) RenderCenteredCaption(s Surface, maxWidth, x, y int, defaultValueStyle, defaultLabelStyle style.Style) {
	if b.value != 0 {
		txt := b.DisplayText()
		w := text.StringWidth(txt)
		if w < maxWidth {
			s.SetStringN(x+(maxWidth-w)/2, y, txt, w, b.valueStyle.Patch(defaultValueStyle))
		}
	}

	if b.label != nil {
		label := b.label.Clone()
		label.PatchStyle(defaultLabelStyle)
		s.SetLine(x+centerOffset(maxWidth, label.Width()), y+1, label, maxWidth)
	}
}

// centerOffset returns the left padding that centers width within span, zero when it does not fit
// Odd slack leaves the extra column on the right
func centerOffset(span, width int) int {
	if width >= span {
		return 0
	}
	return (span - width) / 2
}
