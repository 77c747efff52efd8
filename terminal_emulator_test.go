package glimmer_test

import (
	"fmt"
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/glimmerui/glimmer"
)

// EmulatorTerminal is a terminal emulator for testing that interprets the
// escape sequences the renderer writes and maintains both a visible screen
// and a scrollback buffer. MockTerminal only captures bytes; this is for
// tests that need to verify the resulting screen image, and for cursor
// queries answered from the emulated cursor rather than a script.
type EmulatorTerminal struct {
	width, height int
	screen        [][]rune // visible screen: screen[row][col]
	scrollback    []string // lines that scrolled off the top
	cursorRow     int      // 0-indexed
	cursorCol     int      // 0-indexed
	cursorHidden  bool
}

var _ glimmer.Terminal = (*EmulatorTerminal)(nil)

// continuation marks the second column of a wide rune on the emulated
// screen. Screen dumps skip it.
const continuation = rune(0)

// NewEmulatorTerminal creates a terminal emulator with the given
// dimensions. The screen is initialized with spaces and the cursor sits
// at the origin.
func NewEmulatorTerminal(width, height int) *EmulatorTerminal {
	screen := make([][]rune, height)
	for i := range screen {
		screen[i] = make([]rune, width)
		for j := range screen[i] {
			screen[i][j] = ' '
		}
	}
	return &EmulatorTerminal{
		width:  width,
		height: height,
		screen: screen,
	}
}

// Size returns the emulated terminal dimensions.
func (e *EmulatorTerminal) Size() (int, int) { return e.width, e.height }

// CursorPosition answers like a DSR query: the current emulated cursor
// position, 0-indexed.
func (e *EmulatorTerminal) CursorPosition() (x, y int, err error) {
	return e.cursorCol, e.cursorRow, nil
}

// Write processes raw bytes containing ANSI escape sequences. This is the
// method that makes the emulator useful: it interprets the sequences the
// renderer emits instead of discarding them.
func (e *EmulatorTerminal) Write(b []byte) (int, error) {
	s := string(b)
	i := 0
	for i < len(s) {
		switch {
		case s[i] == '\033':
			if i+1 < len(s) && s[i+1] == '[' {
				consumed := e.parseCSI(s[i+2:])
				i += 2 + consumed
			} else {
				i += 2
			}
		case s[i] == '\n':
			e.linefeed()
			i++
		case s[i] == '\r':
			e.cursorCol = 0
			i++
		default:
			r, size := utf8.DecodeRuneInString(s[i:])
			e.printRune(r)
			i += size
		}
	}
	return len(b), nil
}

// parseCSI parses a CSI sequence starting after "\033[".
// Returns the number of bytes consumed from s.
func (e *EmulatorTerminal) parseCSI(s string) int {
	i := 0
	for i < len(s) {
		ch := s[i]
		if ch >= 0x40 && ch <= 0x7E {
			params := s[:i]
			switch ch {
			case 'H': // CUP - Cursor Position
				e.cursorPosition(params)
			case 'h': // DECSET
				if params == "?25" {
					e.cursorHidden = false
				}
			case 'l': // DECRST
				if params == "?25" {
					e.cursorHidden = true
				}
			case 'J': // ED - Erase in Display
				e.eraseDisplay(params)
			case 'm': // SGR - styling is not part of the screen image
			}
			return i + 1
		}
		i++
	}
	return i
}

// cursorPosition handles ESC[row;colH (1-indexed)
func (e *EmulatorTerminal) cursorPosition(params string) {
	row, col := 1, 1
	if params != "" {
		parts := strings.Split(params, ";")
		if len(parts) >= 1 && parts[0] != "" {
			row, _ = strconv.Atoi(parts[0])
		}
		if len(parts) >= 2 && parts[1] != "" {
			col, _ = strconv.Atoi(parts[1])
		}
	}
	e.cursorRow = row - 1 // convert to 0-indexed
	e.cursorCol = col - 1
}

// eraseDisplay handles ESC[nJ
func (e *EmulatorTerminal) eraseDisplay(params string) {
	n := 0
	if params != "" {
		n, _ = strconv.Atoi(params)
	}
	if n != 2 {
		return
	}
	for r := 0; r < e.height; r++ {
		for c := 0; c < e.width; c++ {
			e.screen[r][c] = ' '
		}
	}
	e.cursorRow = 0
	e.cursorCol = 0
}

// printRune places a printable rune at the cursor and advances by the
// rune's display width, the way a real terminal does. Writes past the
// right edge are dropped rather than wrapped; the renderer never relies
// on wrapping.
func (e *EmulatorTerminal) printRune(r rune) {
	if e.cursorRow < 0 || e.cursorRow >= e.height || e.cursorCol < 0 {
		return
	}
	w := glimmer.RuneWidth(r)
	if e.cursorCol+w > e.width {
		return
	}

	row := e.screen[e.cursorRow]

	// Overwriting half of a wide pair leaves the orphaned column blank.
	if row[e.cursorCol] == continuation && e.cursorCol > 0 {
		row[e.cursorCol-1] = ' '
	}
	if last := e.cursorCol + w; last < e.width && row[last] == continuation {
		row[last] = ' '
	}

	row[e.cursorCol] = r
	if w == 2 {
		row[e.cursorCol+1] = continuation
	}
	e.cursorCol += w
}

// linefeed handles \n: at the bottom row the screen scrolls up and the
// top line moves into scrollback, otherwise the cursor moves down.
func (e *EmulatorTerminal) linefeed() {
	if e.cursorRow == e.height-1 {
		e.scrollUp()
	} else if e.cursorRow < e.height-1 {
		e.cursorRow++
	}
}

// scrollUp scrolls the screen up by one line, pushing the top line into
// scrollback and blanking the bottom.
func (e *EmulatorTerminal) scrollUp() {
	e.scrollback = append(e.scrollback, e.rowString(0))
	for r := 0; r < e.height-1; r++ {
		copy(e.screen[r], e.screen[r+1])
	}
	for c := 0; c < e.width; c++ {
		e.screen[e.height-1][c] = ' '
	}
}

func (e *EmulatorTerminal) rowString(row int) string {
	var sb strings.Builder
	for _, r := range e.screen[row] {
		if r == continuation {
			continue
		}
		sb.WriteRune(r)
	}
	return strings.TrimRight(sb.String(), " ")
}

// --- Test helper methods ---

// SetCursor moves the emulated cursor, for test setup.
func (e *EmulatorTerminal) SetCursor(x, y int) {
	e.cursorCol = x
	e.cursorRow = y
}

// Cursor returns the emulated cursor position.
func (e *EmulatorTerminal) Cursor() (x, y int) {
	return e.cursorCol, e.cursorRow
}

// CursorHidden reports whether the cursor is currently hidden.
func (e *EmulatorTerminal) CursorHidden() bool {
	return e.cursorHidden
}

// Scrollback returns all lines that have scrolled off the top.
func (e *EmulatorTerminal) Scrollback() []string {
	return e.scrollback
}

// ScreenRow returns the content of a screen row as a trimmed string.
func (e *EmulatorTerminal) ScreenRow(row int) string {
	if row < 0 || row >= e.height {
		return ""
	}
	return e.rowString(row)
}

// ScreenString returns the visible screen as a string, rows joined by \n
// and trailing spaces trimmed.
func (e *EmulatorTerminal) ScreenString() string {
	lines := make([]string, 0, e.height)
	for r := 0; r < e.height; r++ {
		lines = append(lines, e.rowString(r))
	}
	return strings.Join(lines, "\n")
}

// SetScreenRow sets the content of a screen row, for test setup.
func (e *EmulatorTerminal) SetScreenRow(row int, text string) {
	if row < 0 || row >= e.height {
		return
	}
	for c := 0; c < e.width; c++ {
		e.screen[row][c] = ' '
	}
	col := 0
	for _, r := range text {
		w := glimmer.RuneWidth(r)
		if col+w > e.width {
			break
		}
		e.screen[row][col] = r
		if w == 2 {
			e.screen[row][col+1] = continuation
		}
		col += w
	}
}

// DumpState returns a human-readable dump of the emulator state for
// debugging failed assertions.
func (e *EmulatorTerminal) DumpState() string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "Terminal %dx%d, cursor=(%d,%d)\n", e.width, e.height, e.cursorRow, e.cursorCol)
	sb.WriteString("--- Screen ---\n")
	for r := 0; r < e.height; r++ {
		fmt.Fprintf(&sb, "  %2d: |%s|\n", r, string(e.screen[r]))
	}
	fmt.Fprintf(&sb, "--- Scrollback (%d lines) ---\n", len(e.scrollback))
	for i, line := range e.scrollback {
		fmt.Fprintf(&sb, "  %2d: |%s|\n", i, line)
	}
	return sb.String()
}
