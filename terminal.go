package glimmer

import (
	"errors"
	"io"
	"os"
)

// Terminal is the surface the renderer draws on. The renderer composes all
// escape sequences itself and hands them over as one batched Write per
// frame, so implementations only need to provide geometry and a byte sink.
type Terminal interface {
	io.Writer

	// Size returns the terminal dimensions (width, height) in cells.
	Size() (width, height int)

	// CursorPosition reports the current cursor position, 0-indexed from
	// the top-left of the visible screen. Implementations backed by a real
	// terminal may block briefly to query it.
	CursorPosition() (x, y int, err error)
}

// ANSITerminal is a Terminal backed by a real TTY. The cursor position is
// obtained with a DSR query, which needs the input side in raw mode for
// the duration of the read.
type ANSITerminal struct {
	out io.Writer
	in  io.Reader

	outFd int
	inFd  int
}

// errNotATerminal is returned when an operation needs a file descriptor
// but the configured reader or writer has none.
var errNotATerminal = errors.New("glimmer: not a terminal")

// NewANSITerminal creates a terminal on the given streams, typically
// os.Stdout and os.Stdin. Streams that are not files degrade gracefully:
// Size falls back to 80x24 and CursorPosition returns an error.
func NewANSITerminal(out io.Writer, in io.Reader) *ANSITerminal {
	t := &ANSITerminal{
		out:   out,
		in:    in,
		outFd: -1,
		inFd:  -1,
	}
	if f, ok := out.(*os.File); ok {
		t.outFd = int(f.Fd())
	}
	if f, ok := in.(*os.File); ok {
		t.inFd = int(f.Fd())
	}
	return t
}

// Write writes raw bytes to the terminal output.
func (t *ANSITerminal) Write(p []byte) (int, error) {
	return t.out.Write(p)
}

// Size returns the terminal dimensions.
// Returns a default of 80x24 if the size cannot be determined.
func (t *ANSITerminal) Size() (width, height int) {
	if t.outFd < 0 {
		return 80, 24
	}
	w, h, err := getTerminalSize(t.outFd)
	if err != nil {
		return 80, 24 // Sensible default
	}
	return w, h
}

// CursorPosition queries the terminal for the cursor position with a DSR
// escape and reads back the report. 0-indexed.
func (t *ANSITerminal) CursorPosition() (x, y int, err error) {
	if t.inFd < 0 || t.outFd < 0 {
		return 0, 0, errNotATerminal
	}
	return queryCursorPosition(t.out, t.in, t.outFd, t.inFd)
}

// parseCursorReport extracts the 0-indexed cursor position from a DSR
// response of the form ESC [ row ; col R (1-indexed).
func parseCursorReport(report []byte) (x, y int, err error) {
	i := 0
	for i < len(report) && report[i] != '\x1b' {
		i++
	}
	if i+1 >= len(report) || report[i+1] != '[' {
		return 0, 0, errors.New("glimmer: malformed cursor report")
	}
	i += 2

	row, n := parseReportInt(report[i:])
	if n == 0 || i+n >= len(report) || report[i+n] != ';' {
		return 0, 0, errors.New("glimmer: malformed cursor report")
	}
	i += n + 1

	col, n := parseReportInt(report[i:])
	if n == 0 || i+n >= len(report) || report[i+n] != 'R' {
		return 0, 0, errors.New("glimmer: malformed cursor report")
	}

	return col - 1, row - 1, nil
}

// parseReportInt reads a decimal prefix, returning the value and how many
// bytes it consumed.
func parseReportInt(b []byte) (int, int) {
	v := 0
	n := 0
	for n < len(b) && b[n] >= '0' && b[n] <= '9' {
		v = v*10 + int(b[n]-'0')
		n++
	}
	return v, n
}
