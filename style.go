package glimmer

// Attr is a bitfield of text attributes.
type Attr uint8

const (
	AttrBold Attr = 1 << iota
	AttrDim
	AttrItalic
	AttrUnderline
	AttrBlink
	AttrReverse
	AttrStrikethrough
)

// Style describes how a cell or span of text is drawn: foreground color,
// background color, and text attributes. The zero value is the terminal
// default and emits no escape sequences at all.
type Style struct {
	Fg    Color
	Bg    Color
	Attrs Attr
}

// NewStyle returns the default style.
func NewStyle() Style {
	return Style{}
}

// Foreground returns a copy of the style with the foreground color set.
func (s Style) Foreground(c Color) Style {
	s.Fg = c
	return s
}

// Background returns a copy of the style with the background color set.
func (s Style) Background(c Color) Style {
	s.Bg = c
	return s
}

// Bold returns a copy of the style with the bold attribute set.
func (s Style) Bold() Style {
	s.Attrs |= AttrBold
	return s
}

// Dim returns a copy of the style with the dim attribute set.
func (s Style) Dim() Style {
	s.Attrs |= AttrDim
	return s
}

// Italic returns a copy of the style with the italic attribute set.
func (s Style) Italic() Style {
	s.Attrs |= AttrItalic
	return s
}

// Underline returns a copy of the style with the underline attribute set.
func (s Style) Underline() Style {
	s.Attrs |= AttrUnderline
	return s
}

// Blink returns a copy of the style with the blink attribute set.
func (s Style) Blink() Style {
	s.Attrs |= AttrBlink
	return s
}

// Reverse returns a copy of the style with the reverse-video attribute set.
func (s Style) Reverse() Style {
	s.Attrs |= AttrReverse
	return s
}

// Strikethrough returns a copy of the style with the strikethrough
// attribute set.
func (s Style) Strikethrough() Style {
	s.Attrs |= AttrStrikethrough
	return s
}

// HasAttr returns true if the style has the given attribute set.
func (s Style) HasAttr(a Attr) bool {
	return s.Attrs&a != 0
}

// IsDefault returns true if the style carries no colors and no attributes.
// Default-styled cells are emitted without any escape sequences.
func (s Style) IsDefault() bool {
	return s.Fg.IsDefault() && s.Bg.IsDefault() && s.Attrs == 0
}

// Equal returns true if both styles are identical field by field. Styles
// built through different call chains but with the same fields compare
// equal and produce byte-identical output.
func (s Style) Equal(other Style) bool {
	return s.Fg.Equal(other.Fg) && s.Bg.Equal(other.Bg) && s.Attrs == other.Attrs
}

// Merge overlays this style onto a base: unset colors fall through to the
// base, attributes accumulate. Used for style inheritance down the tree.
func (s Style) Merge(base Style) Style {
	out := s
	if out.Fg.IsDefault() {
		out.Fg = base.Fg
	}
	if out.Bg.IsDefault() {
		out.Bg = base.Bg
	}
	out.Attrs |= base.Attrs
	return out
}
