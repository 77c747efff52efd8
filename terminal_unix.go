//go:build unix

package glimmer

import (
	"errors"
	"io"
	"time"

	"golang.org/x/sys/unix"
	"golang.org/x/term"
)

// cursorQueryTimeout bounds how long a DSR cursor query waits for the
// terminal to respond before giving up.
const cursorQueryTimeout = 200 * time.Millisecond

// getTerminalSize returns the terminal dimensions.
func getTerminalSize(fd int) (width, height int, err error) {
	ws, err := unix.IoctlGetWinsize(fd, unix.TIOCGWINSZ)
	if err != nil {
		return 0, 0, err
	}
	return int(ws.Col), int(ws.Row), nil
}

// queryCursorPosition writes a DSR query and reads the report back from
// the input. The input must be a terminal; it is put into raw mode for
// the duration so the report is not echoed or line-buffered.
func queryCursorPosition(out io.Writer, in io.Reader, outFd, inFd int) (x, y int, err error) {
	oldState, err := term.MakeRaw(inFd)
	if err != nil {
		return 0, 0, err
	}
	defer term.Restore(inFd, oldState)

	if _, err := out.Write([]byte("\x1b[6n")); err != nil {
		return 0, 0, err
	}

	report, err := readCursorReport(in, inFd)
	if err != nil {
		return 0, 0, err
	}
	return parseCursorReport(report)
}

// readCursorReport collects bytes until the report terminator 'R', with a
// deadline so a terminal that never answers cannot hang the caller.
func readCursorReport(in io.Reader, inFd int) ([]byte, error) {
	deadline := time.Now().Add(cursorQueryTimeout)
	report := make([]byte, 0, 16)

	for {
		remaining := time.Until(deadline)
		if remaining <= 0 {
			return nil, errors.New("glimmer: cursor query timed out")
		}

		ready, err := selectWithTimeout(inFd, remaining)
		if err != nil {
			return nil, err
		}
		if !ready {
			continue
		}

		var b [1]byte
		n, err := in.Read(b[:])
		if err != nil {
			return nil, err
		}
		if n == 0 {
			continue
		}

		report = append(report, b[0])
		if b[0] == 'R' {
			return report, nil
		}
		if len(report) > 32 {
			return nil, errors.New("glimmer: malformed cursor report")
		}
	}
}

// selectWithTimeout performs a select() call on the given fd with timeout.
// Returns (true, nil) if the fd is ready for reading.
// Returns (false, nil) on timeout.
// Returns (false, err) on error.
func selectWithTimeout(fd int, timeout time.Duration) (ready bool, err error) {
	// Prepare the fd set
	var readFds unix.FdSet
	readFds.Zero()
	readFds.Set(fd)

	// Convert timeout to timeval
	var tv *unix.Timeval
	if timeout >= 0 {
		tvVal := unix.NsecToTimeval(timeout.Nanoseconds())
		tv = &tvVal
	}
	// If timeout < 0, tv is nil which means block indefinitely

	// Call select
	n, err := unix.Select(fd+1, &readFds, nil, nil, tv)
	if err != nil {
		// EINTR is expected when signals arrive
		if err == unix.EINTR {
			return false, nil
		}
		return false, err
	}

	return n > 0, nil
}
