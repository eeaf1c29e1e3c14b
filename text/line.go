package text

import (
	"strings"

	"github.com/lixenwraith/barchart/style"
)

// Span is a run of text drawn with a single style
type Span struct {
	Content string
	Style   style.Style
}

// RawSpan returns an unstyled span
func RawSpan(s string) Span {
	return Span{Content: s}
}

// StyledSpan returns a span with the given style
func StyledSpan(s string, st style.Style) Span {
	return Span{Content: s, Style: st}
}

// Width returns the display width of the span content
func (s Span) Width() int {
	return StringWidth(s.Content)
}

// Line is an ordered sequence of spans rendered on one terminal row
type Line struct {
	Spans []Span
}

// Raw returns a line holding s as a single unstyled span
func Raw(s string) Line {
	return Line{Spans: []Span{RawSpan(s)}}
}

// Styled returns a line holding s as a single span with st
func Styled(s string, st style.Style) Line {
	return Line{Spans: []Span{StyledSpan(s, st)}}
}

// FromSpans builds a line from spans in order
func FromSpans(spans ...Span) Line {
	return Line{Spans: spans}
}

// Width returns the display width of all spans
func (l Line) Width() int {
	w := 0
	for _, s := range l.Spans {
		w += s.Width()
	}
	return w
}

// PatchStyle merges base under every span style in place
// Span attributes that are set win over base
func (l *Line) PatchStyle(base style.Style) {
	for i := range l.Spans {
		l.Spans[i].Style = l.Spans[i].Style.Patch(base)
	}
}

// Clone returns a line with its own span storage
func (l Line) Clone() Line {
	if l.Spans == nil {
		return Line{}
	}
	spans := make([]Span, len(l.Spans))
	copy(spans, l.Spans)
	return Line{Spans: spans}
}

// String returns the concatenated span contents
func (l Line) String() string {
	var sb strings.Builder
	for _, s := range l.Spans {
		sb.WriteString(s.Content)
	}
	return sb.String()
}
