package glimmer

import "bytes"

// MockTerminal is a Terminal for testing: size and cursor position are
// scripted, and every Write is captured for inspection. It does not
// interpret escape sequences; tests that need a screen image drive an
// emulator instead.
type MockTerminal struct {
	width, height int
	cursorX       int
	cursorY       int
	cursorErr     error
	cursorQueries int
	writeErr      error
	writes        [][]byte
}

// Ensure MockTerminal implements Terminal.
var _ Terminal = (*MockTerminal)(nil)

// NewMockTerminal creates a mock terminal with the given dimensions and
// the cursor at the origin.
func NewMockTerminal(width, height int) *MockTerminal {
	return &MockTerminal{
		width:  width,
		height: height,
	}
}

// Size returns the scripted terminal dimensions.
func (m *MockTerminal) Size() (width, height int) {
	return m.width, m.height
}

// SetSize changes the scripted dimensions.
func (m *MockTerminal) SetSize(width, height int) {
	m.width = width
	m.height = height
}

// CursorPosition returns the scripted cursor position, or the scripted
// error if one was set.
func (m *MockTerminal) CursorPosition() (x, y int, err error) {
	m.cursorQueries++
	if m.cursorErr != nil {
		return 0, 0, m.cursorErr
	}
	return m.cursorX, m.cursorY, nil
}

// SetCursorPosition scripts the position the next queries report.
func (m *MockTerminal) SetCursorPosition(x, y int) {
	m.cursorX = x
	m.cursorY = y
}

// SetCursorError makes CursorPosition fail, simulating a terminal that
// does not answer DSR queries.
func (m *MockTerminal) SetCursorError(err error) {
	m.cursorErr = err
}

// CursorQueries returns how many times CursorPosition was called.
func (m *MockTerminal) CursorQueries() int {
	return m.cursorQueries
}

// SetWriteError makes every subsequent Write fail.
func (m *MockTerminal) SetWriteError(err error) {
	m.writeErr = err
}

// Write captures the bytes of one batched write.
func (m *MockTerminal) Write(p []byte) (int, error) {
	if m.writeErr != nil {
		return 0, m.writeErr
	}
	buf := make([]byte, len(p))
	copy(buf, p)
	m.writes = append(m.writes, buf)
	return len(p), nil
}

// WriteCount returns how many batched writes were made.
func (m *MockTerminal) WriteCount() int {
	return len(m.writes)
}

// Writes returns each captured write separately.
func (m *MockTerminal) Writes() [][]byte {
	return m.writes
}

// Output returns all captured writes concatenated.
func (m *MockTerminal) Output() []byte {
	return bytes.Join(m.writes, nil)
}

// LastWrite returns the most recent write, or nil if none were made.
func (m *MockTerminal) LastWrite() []byte {
	if len(m.writes) == 0 {
		return nil
	}
	return m.writes[len(m.writes)-1]
}

// Reset drops captured writes, query counts, and scripted errors,
// keeping the scripted geometry.
func (m *MockTerminal) Reset() {
	m.writes = nil
	m.cursorQueries = 0
	m.cursorErr = nil
	m.writeErr = nil
}
