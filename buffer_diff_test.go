package glimmer

import (
	"testing"
)

func TestDiffFrames_FirstFrameEmitsEverything(t *testing.T) {
	next := NewBuffer(3, 2)
	next.SetRune(1, 0, 'A', NewStyle())

	changes := DiffFrames(nil, Point{}, next, Point{X: 4, Y: 2})

	// with no previous frame every position is written, blanks included
	if len(changes) != 6 {
		t.Fatalf("DiffFrames() returned %d changes, want 6", len(changes))
	}
	if changes[0].X != 4 || changes[0].Y != 2 {
		t.Errorf("First change at (%d, %d), want (4, 2)", changes[0].X, changes[0].Y)
	}
	if changes[1].Cell.Rune != 'A' {
		t.Errorf("Change at origin+1 rune = %q, want 'A'", changes[1].Cell.Rune)
	}
	if changes[5].X != 6 || changes[5].Y != 3 {
		t.Errorf("Last change at (%d, %d), want (6, 3)", changes[5].X, changes[5].Y)
	}
}

func TestDiffFrames_IdenticalFramesProduceNothing(t *testing.T) {
	origin := Point{X: 1, Y: 1}
	prev := NewBuffer(5, 3)
	prev.SetString(0, 1, "abc", NewStyle())
	next := NewBuffer(5, 3)
	next.SetString(0, 1, "abc", NewStyle())

	changes := DiffFrames(prev, origin, next, origin)
	if len(changes) != 0 {
		t.Errorf("DiffFrames() returned %d changes, want 0", len(changes))
	}
}

func TestDiffFrames_SingleChange(t *testing.T) {
	origin := Point{}
	prev := NewBuffer(5, 3)
	next := NewBuffer(5, 3)
	next.SetRune(2, 1, 'A', NewStyle())

	changes := DiffFrames(prev, origin, next, origin)
	if len(changes) != 1 {
		t.Fatalf("DiffFrames() returned %d changes, want 1", len(changes))
	}
	if changes[0].X != 2 || changes[0].Y != 1 {
		t.Errorf("Change at (%d, %d), want (2, 1)", changes[0].X, changes[0].Y)
	}
	if changes[0].Cell.Rune != 'A' {
		t.Errorf("Change cell rune = %q, want 'A'", changes[0].Cell.Rune)
	}
}

func TestDiffFrames_RowMajorOrder(t *testing.T) {
	origin := Point{}
	prev := NewBuffer(3, 3)
	next := NewBuffer(3, 3)
	next.SetRune(2, 2, 'I', NewStyle())
	next.SetRune(0, 0, 'A', NewStyle())
	next.SetRune(1, 1, 'E', NewStyle())

	changes := DiffFrames(prev, origin, next, origin)
	if len(changes) != 3 {
		t.Fatalf("DiffFrames() returned %d changes, want 3", len(changes))
	}

	// row-major regardless of write order
	expected := []struct{ x, y int }{{0, 0}, {1, 1}, {2, 2}}
	for i, e := range expected {
		if changes[i].X != e.x || changes[i].Y != e.y {
			t.Errorf("Change %d at (%d, %d), want (%d, %d)", i, changes[i].X, changes[i].Y, e.x, e.y)
		}
	}
}

func TestDiffFrames_StyleOnlyChangeForcesRewrite(t *testing.T) {
	origin := Point{}
	prev := NewBuffer(3, 1)
	prev.SetRune(0, 0, 'A', NewStyle())
	next := NewBuffer(3, 1)
	next.SetRune(0, 0, 'A', NewStyle().Foreground(Red))

	changes := DiffFrames(prev, origin, next, origin)
	if len(changes) != 1 {
		t.Fatalf("DiffFrames() returned %d changes, want 1", len(changes))
	}
	if !changes[0].Cell.Style.Fg.Equal(Red) {
		t.Errorf("Change carries style %+v, want red foreground", changes[0].Cell.Style)
	}
}

func TestDiffFrames_RemovedCellsCleared(t *testing.T) {
	origin := Point{}
	prev := NewBuffer(5, 1)
	prev.SetString(0, 0, "hey", NewStyle().Bold())
	next := NewBuffer(5, 1)
	next.SetRune(0, 0, 'x', NewStyle())

	changes := DiffFrames(prev, origin, next, origin)
	if len(changes) != 3 {
		t.Fatalf("DiffFrames() returned %d changes, want 3", len(changes))
	}

	// vacated cells come back as blanks with the default style
	for _, c := range changes[1:] {
		if c.Cell.Rune != ' ' {
			t.Errorf("Cleared cell at (%d, %d) rune = %q, want ' '", c.X, c.Y, c.Cell.Rune)
		}
		if !c.Cell.Style.IsDefault() {
			t.Errorf("Cleared cell at (%d, %d) kept style %+v", c.X, c.Y, c.Cell.Style)
		}
	}
}

func TestDiffFrames_ShrunkFrameClearsVacatedRegion(t *testing.T) {
	prev := NewBuffer(4, 2)
	prev.SetString(0, 0, "aaaa", NewStyle())
	prev.SetString(0, 1, "bbbb", NewStyle())
	next := NewBuffer(2, 1)
	next.SetString(0, 0, "aa", NewStyle())
	origin := Point{X: 3, Y: 1}

	changes := DiffFrames(prev, origin, next, origin)

	// rows vanish: 2 cells cleared on row 1, 4 on row 2
	if len(changes) != 6 {
		t.Fatalf("DiffFrames() returned %d changes, want 6", len(changes))
	}
	for _, c := range changes {
		if c.Cell.Rune != ' ' {
			t.Errorf("Change at (%d, %d) rune = %q, want blank", c.X, c.Y, c.Cell.Rune)
		}
	}
}

func TestDiffFrames_ShiftedOriginRewritesMovedRows(t *testing.T) {
	// same content anchored one row higher: the top row is new, the
	// vacated bottom row is cleared, the overlap matches cell by cell
	prev := NewBuffer(2, 2)
	prev.SetString(0, 0, "aa", NewStyle())
	prev.SetString(0, 1, "aa", NewStyle())
	next := NewBuffer(2, 2)
	next.SetString(0, 0, "aa", NewStyle())
	next.SetString(0, 1, "aa", NewStyle())

	changes := DiffFrames(prev, Point{X: 0, Y: 3}, next, Point{X: 0, Y: 2})

	if len(changes) != 4 {
		t.Fatalf("DiffFrames() returned %d changes, want 4", len(changes))
	}
	// two writes on row 2, two clears on row 4
	for _, c := range changes[:2] {
		if c.Y != 2 || c.Cell.Rune != 'a' {
			t.Errorf("Change at (%d, %d) rune %q, want 'a' on row 2", c.X, c.Y, c.Cell.Rune)
		}
	}
	for _, c := range changes[2:] {
		if c.Y != 4 || c.Cell.Rune != ' ' {
			t.Errorf("Change at (%d, %d) rune %q, want blank on row 4", c.X, c.Y, c.Cell.Rune)
		}
	}
}

func TestDiffFrames_WideCharReplacedByNarrow(t *testing.T) {
	origin := Point{}
	prev := NewBuffer(4, 1)
	prev.SetRune(0, 0, '好', NewStyle())
	next := NewBuffer(4, 1)
	next.SetRune(0, 0, 'a', NewStyle())

	changes := DiffFrames(prev, origin, next, origin)

	// the head cell changes to 'a' and the continuation becomes a blank
	if len(changes) != 2 {
		t.Fatalf("DiffFrames() returned %d changes, want 2", len(changes))
	}
	if changes[0].Cell.Rune != 'a' {
		t.Errorf("Head cell rune = %q, want 'a'", changes[0].Cell.Rune)
	}
	if changes[1].X != 1 || changes[1].Cell.Rune != ' ' {
		t.Errorf("Continuation cell change = %+v, want blank at x=1", changes[1])
	}
}
