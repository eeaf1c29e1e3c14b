package barchart

import (
	"strconv"

	"github.com/lixenwraith/barchart/style"
	"github.com/lixenwraith/barchart/text"
)

// Bar is one chartable quantity
// Zero value is a bar of value 0 with no label, no override text and unset styles
type Bar struct {
	value      uint64
	label      *text.Line
	style      style.Style
	valueStyle style.Style
	textValue  *string
}

// NewBar returns a bar with every field at its default
func NewBar() Bar {
	return Bar{}
}

// WithValue sets the magnitude used for height and for the default display text
func (b Bar) WithValue(v uint64) Bar {
	b.value = v
	return b
}

// WithLabel sets the caption drawn under the bar
func (b Bar) WithLabel(l text.Line) Bar {
	c := l.Clone()
	b.label = &c
	return b
}

// WithStyle sets the fill style consumed by the chart layer
func (b Bar) WithStyle(s style.Style) Bar {
	b.style = s
	return b
}

// WithValueStyle sets the style of the displayed value
func (b Bar) WithValueStyle(s style.Style) Bar {
	b.valueStyle = s
	return b
}

// WithTextValue overrides the displayed value, the magnitude is unaffected
// An empty string suppresses the embedded value
func (b Bar) WithTextValue(s string) Bar {
	b.textValue = &s
	return b
}

func (b Bar) Value() uint64 {
	return b.value
}

// Label returns a copy of the caption and whether one is set
func (b Bar) Label() (text.Line, bool) {
	if b.label == nil {
		return text.Line{}, false
	}
	return b.label.Clone(), true
}

func (b Bar) Style() style.Style {
	return b.style
}

func (b Bar) ValueStyle() style.Style {
	return b.valueStyle
}

// TextValue returns the override text and whether one is set
func (b Bar) TextValue() (string, bool) {
	if b.textValue == nil {
		return "", false
	}
	return *b.textValue, true
}

// DisplayText resolves the string shown for the bar: override text if set, else the decimal value
func (b Bar) DisplayText() string {
	if b.textValue != nil {
		return *b.textValue
	}
	return strconv.FormatUint(b.value, 10)
}
