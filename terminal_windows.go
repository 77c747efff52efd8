//go:build windows

package glimmer

import (
	"io"

	"golang.org/x/sys/windows"
)

// getTerminalSize returns the terminal dimensions.
func getTerminalSize(fd int) (width, height int, err error) {
	h := windows.Handle(fd)
	var info windows.ConsoleScreenBufferInfo
	if err := windows.GetConsoleScreenBufferInfo(h, &info); err != nil {
		return 0, 0, err
	}

	width = int(info.Window.Right - info.Window.Left + 1)
	height = int(info.Window.Bottom - info.Window.Top + 1)
	return width, height, nil
}

// queryCursorPosition reads the cursor position from the console screen
// buffer info. The Windows console reports it directly, so no DSR
// round-trip is needed; out and in are unused but kept for signature
// parity with the unix implementation.
func queryCursorPosition(out io.Writer, in io.Reader, outFd, inFd int) (x, y int, err error) {
	h := windows.Handle(outFd)
	var info windows.ConsoleScreenBufferInfo
	if err := windows.GetConsoleScreenBufferInfo(h, &info); err != nil {
		return 0, 0, err
	}

	// Positions are buffer-relative; translate into the visible window.
	x = int(info.CursorPosition.X - info.Window.Left)
	y = int(info.CursorPosition.Y - info.Window.Top)
	return x, y, nil
}
