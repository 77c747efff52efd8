package glimmer

import "strings"

// BorderStyle represents different styles of box borders.
type BorderStyle int

const (
	// BorderNone indicates no border should be drawn.
	BorderNone BorderStyle = iota
	// BorderSingle uses single-line box-drawing characters (─, │, ┌, etc.)
	BorderSingle
	// BorderDouble uses double-line box-drawing characters (═, ║, ╔, etc.)
	BorderDouble
	// BorderRounded uses rounded corner characters (─, │, ╭, ╮, ╰, ╯)
	BorderRounded
	// BorderThick uses thick/heavy box-drawing characters (━, ┃, ┏, etc.)
	BorderThick
)

// BorderChars holds the characters used to draw a box border.
type BorderChars struct {
	TopLeft     rune
	Top         rune
	TopRight    rune
	Left        rune
	Right       rune
	BottomLeft  rune
	Bottom      rune
	BottomRight rune
}

// Chars returns the box-drawing characters for this border style.
func (b BorderStyle) Chars() BorderChars {
	switch b {
	case BorderSingle:
		return BorderChars{
			TopLeft:     '┌',
			Top:         '─',
			TopRight:    '┐',
			Left:        '│',
			Right:       '│',
			BottomLeft:  '└',
			Bottom:      '─',
			BottomRight: '┘',
		}
	case BorderDouble:
		return BorderChars{
			TopLeft:     '╔',
			Top:         '═',
			TopRight:    '╗',
			Left:        '║',
			Right:       '║',
			BottomLeft:  '╚',
			Bottom:      '═',
			BottomRight: '╝',
		}
	case BorderRounded:
		return BorderChars{
			TopLeft:     '╭',
			Top:         '─',
			TopRight:    '╮',
			Left:        '│',
			Right:       '│',
			BottomLeft:  '╰',
			Bottom:      '─',
			BottomRight: '╯',
		}
	case BorderThick:
		return BorderChars{
			TopLeft:     '┏',
			Top:         '━',
			TopRight:    '┓',
			Left:        '┃',
			Right:       '┃',
			BottomLeft:  '┗',
			Bottom:      '━',
			BottomRight: '┛',
		}
	default:
		// BorderNone or unknown - return spaces
		return BorderChars{
			TopLeft:     ' ',
			Top:         ' ',
			TopRight:    ' ',
			Left:        ' ',
			Right:       ' ',
			BottomLeft:  ' ',
			Bottom:      ' ',
			BottomRight: ' ',
		}
	}
}

// borderSpans builds the spans that draw a border around rect: one span
// for the top edge (with the title centered in it when given), one for
// the bottom edge, and a pair of single-rune spans per interior row.
// Rectangles smaller than 2x2 produce nothing.
func borderSpans(rect Rect, border BorderStyle, title string, style Style, z int) []Span {
	if border == BorderNone || rect.Width < 2 || rect.Height < 2 {
		return nil
	}

	chars := border.Chars()
	spans := make([]Span, 0, 2+2*(rect.Height-2))

	spans = append(spans, Span{
		Pos:   rect.Origin(),
		Text:  topEdge(chars, rect.Width, title),
		Style: style,
		Z:     z,
	})

	var bottom strings.Builder
	bottom.WriteRune(chars.BottomLeft)
	for x := 1; x < rect.Width-1; x++ {
		bottom.WriteRune(chars.Bottom)
	}
	bottom.WriteRune(chars.BottomRight)
	spans = append(spans, Span{
		Pos:   Point{X: rect.X, Y: rect.Bottom() - 1},
		Text:  bottom.String(),
		Style: style,
		Z:     z,
	})

	for y := rect.Y + 1; y < rect.Bottom()-1; y++ {
		spans = append(spans, Span{
			Pos:   Point{X: rect.X, Y: y},
			Text:  string(chars.Left),
			Style: style,
			Z:     z,
		})
		spans = append(spans, Span{
			Pos:   Point{X: rect.Right() - 1, Y: y},
			Text:  string(chars.Right),
			Style: style,
			Z:     z,
		})
	}

	return spans
}

// topEdge assembles the top border row, centering the title between the
// corners and truncating it if too long.
func topEdge(chars BorderChars, width int, title string) string {
	interior := width - 2

	titleWidth := 0
	var truncated []rune
	if title != "" && interior > 0 {
		for _, r := range title {
			w := RuneWidth(r)
			if titleWidth+w > interior {
				break
			}
			truncated = append(truncated, r)
			titleWidth += w
		}
	}

	var sb strings.Builder
	sb.WriteRune(chars.TopLeft)

	lead := (interior - titleWidth) / 2
	for x := 0; x < lead; x++ {
		sb.WriteRune(chars.Top)
	}
	sb.WriteString(string(truncated))
	for x := lead + titleWidth; x < interior; x++ {
		sb.WriteRune(chars.Top)
	}

	sb.WriteRune(chars.TopRight)
	return sb.String()
}
