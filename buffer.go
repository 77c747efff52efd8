package glimmer

import (
	"strings"

	"github.com/rivo/uniseg"
)

// Buffer is a 2D grid of cells covering one frame's render bounds. Every
// render rasterizes into a fresh buffer; the renderer keeps the previous
// frame's buffer around only to diff against. Coordinates are local to the
// buffer, with (0, 0) at the top-left of the render bounds.
type Buffer struct {
	cells  []Cell
	width  int
	height int
}

// CellChange represents a single cell that differs between two frames.
// Coordinates are absolute terminal positions.
type CellChange struct {
	X, Y int
	Cell Cell
}

// blankCell is what an untouched buffer position holds: a space with the
// default style. Clearing a stale cell writes exactly this.
var blankCell = Cell{Rune: ' ', Width: 1}

// NewBuffer creates a buffer of the specified dimensions, initialized to
// blank cells.
func NewBuffer(width, height int) *Buffer {
	if width < 0 {
		width = 0
	}
	if height < 0 {
		height = 0
	}

	cells := make([]Cell, width*height)
	for i := range cells {
		cells[i] = blankCell
	}

	return &Buffer{
		cells:  cells,
		width:  width,
		height: height,
	}
}

// Width returns the buffer width in columns.
func (b *Buffer) Width() int {
	return b.width
}

// Height returns the buffer height in rows.
func (b *Buffer) Height() int {
	return b.height
}

// Size returns the buffer dimensions (width, height).
func (b *Buffer) Size() (width, height int) {
	return b.width, b.height
}

// Rect returns the buffer bounds as a Rect starting at (0, 0).
func (b *Buffer) Rect() Rect {
	return NewRect(0, 0, b.width, b.height)
}

// idx converts (x, y) coordinates to a flat index.
// Returns -1 if out of bounds.
func (b *Buffer) idx(x, y int) int {
	if x < 0 || x >= b.width || y < 0 || y >= b.height {
		return -1
	}
	return y*b.width + x
}

// Cell returns the cell at position (x, y).
// Returns a blank Cell if the position is out of bounds.
func (b *Buffer) Cell(x, y int) Cell {
	idx := b.idx(x, y)
	if idx < 0 {
		return blankCell
	}
	return b.cells[idx]
}

// SetCell sets the cell at position (x, y).
// Does nothing if the position is out of bounds.
func (b *Buffer) SetCell(x, y int, c Cell) {
	idx := b.idx(x, y)
	if idx < 0 {
		return
	}
	b.cells[idx] = c
}

// SetRune sets a rune at position (x, y) with the given style.
// Handles wide characters by setting continuation cells.
// Properly clears overlapped wide characters.
func (b *Buffer) SetRune(x, y int, r rune, style Style) {
	b.setRuneWidth(x, y, r, RuneWidth(r), style)
}

// setRuneWidth places a rune with an explicit display width, the width of
// the grapheme cluster it stands for.
func (b *Buffer) setRuneWidth(x, y int, r rune, width int, style Style) {
	if x < 0 || x >= b.width || y < 0 || y >= b.height {
		return
	}

	currentCell := b.Cell(x, y)

	// If target position is a continuation cell, clear the originating wide char
	if currentCell.IsContinuation() {
		b.clearWideCharAt(x, y)
	}

	// If target position is the START of a wide character, clear its continuation
	if currentCell.Width == 2 && x+1 < b.width {
		b.SetCell(x+1, y, blankCell)
	}

	// If placing a wide char would overlap an existing wide char at x+1, clear it
	if width == 2 && x+1 < b.width {
		next := b.Cell(x+1, y)
		// If next cell is the start of a wide char (width 2), clear it and its continuation
		if next.Width == 2 {
			b.clearWideCharAt(x+1, y)
		}
		// If next cell is a continuation, clear its originating wide char
		if next.IsContinuation() {
			b.clearWideCharAt(x+1, y)
		}
	}

	// Handle edge case: wide char at last column - can't fit, skip it
	if width == 2 && x+1 >= b.width {
		// Place a space instead since the wide char can't fit
		b.SetCell(x, y, NewCell(' ', style))
		return
	}

	// Set the primary cell
	b.SetCell(x, y, NewCellWithWidth(r, style, uint8(width)))

	// Set continuation cell for wide characters
	if width == 2 {
		b.SetCell(x+1, y, NewCellWithWidth(0, style, 0))
	}
}

// clearWideCharAt clears a wide character that includes position (x, y).
// If (x, y) is a continuation cell, finds and clears the originating cell.
// If (x, y) is a wide char start, clears it and its continuation.
func (b *Buffer) clearWideCharAt(x, y int) {
	cell := b.Cell(x, y)

	if cell.IsContinuation() {
		// This is a continuation - the wide char starts at x-1
		if x > 0 {
			b.SetCell(x-1, y, blankCell)
		}
		b.SetCell(x, y, blankCell)
	} else if cell.Width == 2 {
		// This is the start of a wide char
		b.SetCell(x, y, blankCell)
		if x+1 < b.width {
			b.SetCell(x+1, y, blankCell)
		}
	}
}

// clusterWidth returns the display width of a grapheme cluster, clamped to
// 1 or 2 like RuneWidth. Clusters wider than two columns do not exist on
// real terminals; zero-width clusters still need somewhere to live.
func clusterWidth(g *uniseg.Graphemes) int {
	w := g.Width()
	if w < 1 {
		return 1
	}
	if w > 2 {
		return 2
	}
	return w
}

// SetString writes a string starting at position (x, y) with the given style.
// The string is consumed grapheme cluster by grapheme cluster, so combining
// sequences and emoji advance by their display width rather than their rune
// count. Returns the total display width consumed. Stops at the buffer edge
// without wrapping.
func (b *Buffer) SetString(x, y int, s string, style Style) int {
	if y < 0 || y >= b.height {
		return 0
	}

	totalWidth := 0
	curX := x

	g := uniseg.NewGraphemes(s)
	for g.Next() {
		if curX >= b.width {
			break
		}
		width := clusterWidth(g)
		if curX < 0 {
			// Skip clusters before the visible area
			curX += width
			continue
		}

		// Check if wide cluster fits
		if width == 2 && curX+1 >= b.width {
			break
		}

		b.setRuneWidth(curX, y, g.Runes()[0], width, style)
		curX += width
		totalWidth += width
	}

	return totalWidth
}

// Fill fills a rectangle with the given rune and style.
// Handles wide characters appropriately.
func (b *Buffer) Fill(rect Rect, r rune, style Style) {
	// Intersect with buffer bounds
	rect = rect.Intersect(b.Rect())
	if rect.IsEmpty() {
		return
	}

	width := RuneWidth(r)

	for y := rect.Y; y < rect.Bottom(); y++ {
		for x := rect.X; x < rect.Right(); {
			if width == 2 && x+1 >= rect.Right() {
				// Wide char doesn't fit in remaining space, fill with space
				b.SetRune(x, y, ' ', style)
				x++
			} else {
				b.SetRune(x, y, r, style)
				x += width
			}
		}
	}
}

// SetStringGradient writes a string with a gradient applied per-cluster.
// The gradient is applied horizontally along the string.
// Returns the total display width consumed (handles wide characters).
func (b *Buffer) SetStringGradient(x, y int, s string, g Gradient, baseStyle Style) int {
	if y < 0 || y >= b.height {
		return 0
	}

	n := uniseg.GraphemeClusterCount(s)
	if n == 0 {
		return 0
	}

	totalWidth := 0
	curX := x

	gr := uniseg.NewGraphemes(s)
	for i := 0; gr.Next(); i++ {
		if curX >= b.width {
			break
		}
		width := clusterWidth(gr)
		if curX < 0 {
			// Skip clusters before the visible area
			curX += width
			continue
		}

		// Check if wide cluster fits
		if width == 2 && curX+1 >= b.width {
			break
		}

		// Gradient position t in [0, 1] along the cluster sequence
		t := 0.0
		if n > 1 {
			t = float64(i) / float64(n-1)
		}

		style := baseStyle
		style.Fg = g.At(t)

		b.setRuneWidth(curX, y, gr.Runes()[0], width, style)
		curX += width
		totalWidth += width
	}

	return totalWidth
}

// FillGradient fills a rectangle with a gradient background.
// The gradient direction determines how it's applied:
// - Horizontal: left to right
// - Vertical: top to bottom
// - DiagonalDown: top-left to bottom-right
// - DiagonalUp: bottom-left to top-right
func (b *Buffer) FillGradient(rect Rect, r rune, g Gradient, baseStyle Style) {
	// Intersect with buffer bounds
	rect = rect.Intersect(b.Rect())
	if rect.IsEmpty() {
		return
	}

	width := RuneWidth(r)

	for y := rect.Y; y < rect.Bottom(); y++ {
		for x := rect.X; x < rect.Right(); {
			t := gradientPos(g.Direction, rect, x, y)
			style := baseStyle

			if width == 2 && x+1 >= rect.Right() {
				// Wide char doesn't fit in remaining space, fill with space
				style.Bg = g.At(t)
				b.SetRune(x, y, ' ', style)
				x++
			} else {
				style.Bg = g.At(t)
				b.SetRune(x, y, r, style)
				x += width
			}
		}
	}
}

// gradientPos maps a cell position inside rect to a gradient position t in
// [0, 1] according to the gradient direction.
func gradientPos(d GradientDirection, rect Rect, x, y int) float64 {
	rectWidth := float64(rect.Width)
	rectHeight := float64(rect.Height)
	if rectWidth <= 0 {
		rectWidth = 1
	}
	if rectHeight <= 0 {
		rectHeight = 1
	}

	switch d {
	case GradientVertical:
		return float64(y-rect.Y) / rectHeight
	case GradientDiagonalDown:
		tx := float64(x-rect.X) / rectWidth
		ty := float64(y-rect.Y) / rectHeight
		return (tx + ty) / 2
	case GradientDiagonalUp:
		tx := float64(x-rect.X) / rectWidth
		ty := float64(rect.Bottom()-1-y) / rectHeight
		return (tx + ty) / 2
	default:
		return float64(x-rect.X) / rectWidth
	}
}

// Clear clears the entire buffer to blank cells.
func (b *Buffer) Clear() {
	b.ClearRect(b.Rect())
}

// ClearRect clears a rectangular region to blank cells.
func (b *Buffer) ClearRect(rect Rect) {
	// Intersect with buffer bounds
	rect = rect.Intersect(b.Rect())
	if rect.IsEmpty() {
		return
	}

	for y := rect.Y; y < rect.Bottom(); y++ {
		for x := rect.X; x < rect.Right(); x++ {
			// First, handle any wide character cleanup at the edges
			cell := b.Cell(x, y)
			if cell.IsContinuation() && x == rect.X {
				// Clearing starts at a continuation - clear the originating char too
				if x > 0 {
					b.SetCell(x-1, y, blankCell)
				}
			}
			if cell.Width == 2 && x+1 == rect.Right() {
				// Clearing ends at a wide char - also clear the continuation
				if x+1 < b.width {
					b.SetCell(x+1, y, blankCell)
				}
			}
			b.SetCell(x, y, blankCell)
		}
	}
}

// DiffFrames compares two frames and returns the cells that must be
// rewritten, in row-major order (top-to-bottom, left-to-right) which
// minimizes cursor moves. Each frame is a buffer anchored at an absolute
// terminal origin.
//
// With no previous frame (prev nil) every position of the new frame is
// emitted, blanks included: whatever the terminal held underneath cannot
// be trusted. Afterwards, positions covered by the previous frame but
// blank or outside the new one produce blank changes so stale content is
// cleared rather than left behind; positions blank in both frames produce
// nothing.
func DiffFrames(prev *Buffer, prevOrigin Point, next *Buffer, nextOrigin Point) []CellChange {
	nextRect := NewRect(nextOrigin.X, nextOrigin.Y, next.width, next.height)

	if prev == nil {
		changes := make([]CellChange, 0, next.width*next.height)
		for y := 0; y < next.height; y++ {
			for x := 0; x < next.width; x++ {
				changes = append(changes, CellChange{
					X:    nextOrigin.X + x,
					Y:    nextOrigin.Y + y,
					Cell: next.cells[y*next.width+x],
				})
			}
		}
		return changes
	}

	prevRect := NewRect(prevOrigin.X, prevOrigin.Y, prev.width, prev.height)
	region := nextRect.Union(prevRect)

	changes := make([]CellChange, 0, next.width)
	for y := region.Y; y < region.Bottom(); y++ {
		for x := region.X; x < region.Right(); x++ {
			newCell := blankCell
			if nextRect.Contains(x, y) {
				newCell = next.Cell(x-nextOrigin.X, y-nextOrigin.Y)
			}
			oldCell := blankCell
			if prevRect.Contains(x, y) {
				oldCell = prev.Cell(x-prevOrigin.X, y-prevOrigin.Y)
			}
			if !newCell.Equal(oldCell) {
				changes = append(changes, CellChange{X: x, Y: y, Cell: newCell})
			}
		}
	}
	return changes
}

// String renders the buffer to a string for debugging.
// Each row is separated by a newline. Continuation cells (from wide characters) are skipped.
func (b *Buffer) String() string {
	var sb strings.Builder
	for y := 0; y < b.height; y++ {
		for x := 0; x < b.width; x++ {
			cell := b.cells[y*b.width+x]
			if cell.IsContinuation() {
				continue // Skip continuation cells
			}
			if cell.Rune == 0 {
				sb.WriteRune(' ')
			} else {
				sb.WriteRune(cell.Rune)
			}
		}
		if y < b.height-1 {
			sb.WriteRune('\n')
		}
	}
	return sb.String()
}
