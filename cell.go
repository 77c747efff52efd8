package glimmer

import "github.com/mattn/go-runewidth"

// Cell is a single terminal cell: a rune, its style, and its display width.
// Wide runes (CJK, many emoji) occupy two columns; the second column is a
// continuation cell with Width 0 that carries no rune of its own.
type Cell struct {
	Rune  rune
	Style Style
	Width uint8
}

// NewCell creates a cell with the display width derived from the rune.
func NewCell(r rune, style Style) Cell {
	return Cell{Rune: r, Style: style, Width: uint8(RuneWidth(r))}
}

// NewCellWithWidth creates a cell with an explicit width. Width 0 marks a
// continuation cell.
func NewCellWithWidth(r rune, style Style, width uint8) Cell {
	return Cell{Rune: r, Style: style, Width: width}
}

// IsContinuation returns true if this cell is the trailing column of a
// wide rune.
func (c Cell) IsContinuation() bool {
	return c.Width == 0
}

// IsEmpty returns true if the cell shows nothing: an unset rune, or a
// space with the default style.
func (c Cell) IsEmpty() bool {
	return c.Rune == 0 || (c.Rune == ' ' && c.Style.IsDefault())
}

// Equal returns true if both cells are identical in rune, style, and width.
func (c Cell) Equal(other Cell) bool {
	return c.Rune == other.Rune && c.Width == other.Width && c.Style.Equal(other.Style)
}

// RuneWidth returns the display width of a rune in terminal columns,
// clamped to 1 or 2. Zero-width and control runes report 1 since the
// buffer has no way to stack them onto a neighboring cell.
func RuneWidth(r rune) int {
	w := runewidth.RuneWidth(r)
	if w < 1 {
		return 1
	}
	if w > 2 {
		return 2
	}
	return w
}
