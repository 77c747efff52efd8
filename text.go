package glimmer

import (
	"strings"

	"github.com/rivo/uniseg"
)

// Text is a leaf widget drawing one or more lines of styled text. It
// measures to its content; dimension tokens on its layout style are
// resolved by the parent container, not by the text itself.
type Text struct {
	content  string
	style    Style
	layout   LayoutStyle
	gradient *Gradient

	lines     []string
	effective Style
	origin    Point
	size      Size
}

// TextOption configures a Text widget.
type TextOption func(*Text)

// TextStyle sets the visual style of the text.
func TextStyle(s Style) TextOption {
	return func(t *Text) {
		t.style = s
	}
}

// TextLayout sets the layout style of the text.
func TextLayout(ls LayoutStyle) TextOption {
	return func(t *Text) {
		t.layout = ls
	}
}

// TextGradient colors the text with a per-character gradient instead of a
// solid foreground.
func TextGradient(g Gradient) TextOption {
	return func(t *Text) {
		t.gradient = &g
	}
}

// NewText creates a text widget. Newlines split the content into rows.
func NewText(content string, opts ...TextOption) *Text {
	t := &Text{
		content: content,
		layout:  DefaultLayoutStyle(),
	}
	for _, opt := range opts {
		opt(t)
	}
	t.lines = strings.Split(t.content, "\n")
	return t
}

// SetContent replaces the text content. Takes effect on the next render.
func (t *Text) SetContent(content string) {
	t.content = content
	t.lines = strings.Split(content, "\n")
}

// BindText ties the content to a string state: the current value is taken
// immediately and every later change updates the text before the next
// render. Returns the Unbind handle for detaching.
func (t *Text) BindText(s *State[string]) Unbind {
	t.SetContent(s.Peek())
	return s.Bind(t.SetContent)
}

// Content returns the current text content.
func (t *Text) Content() string {
	return t.content
}

// LayoutStyle returns the layout properties the parent should use for
// this widget.
func (t *Text) LayoutStyle() LayoutStyle {
	return t.layout
}

// Measure reports the content size: the display width of the widest line
// and one row per line, clamped to the constraints.
func (t *Text) Measure(c Constraints, inherited Style) Size {
	t.effective = t.style.Merge(inherited)

	width := 0
	for _, line := range t.lines {
		if w := uniseg.StringWidth(line); w > width {
			width = w
		}
	}
	return c.Constrain(Size{Width: width, Height: len(t.lines)})
}

// Layout records the final position and size assigned by the parent.
func (t *Text) Layout(origin Point, size Size) {
	t.origin = origin
	t.size = size
}

// Paint emits one span per visible line, truncated to the assigned width.
func (t *Text) Paint() PaintOutput {
	var out PaintOutput
	for i, line := range t.lines {
		if i >= t.size.Height {
			break
		}
		text := truncateToWidth(line, t.size.Width)
		if text == "" {
			continue
		}
		out.Spans = append(out.Spans, Span{
			Pos:      Point{X: t.origin.X, Y: t.origin.Y + i},
			Text:     text,
			Style:    t.effective,
			Z:        t.layout.ZIndex,
			Gradient: t.gradient,
		})
	}
	return out
}

// truncateToWidth cuts a string to at most width display columns, never
// splitting a wide rune in half.
func truncateToWidth(s string, width int) string {
	if width <= 0 {
		return ""
	}
	if uniseg.StringWidth(s) <= width {
		return s
	}

	used := 0
	for i, r := range s {
		w := RuneWidth(r)
		if used+w > width {
			return s[:i]
		}
		used += w
	}
	return s
}
