package hexslide

import (
	"testing"

	"github.com/vovakirdan/hexslide/internal/hexslide/bank"
	"github.com/vovakirdan/hexslide/internal/hexslide/core"
)

func newTestSession(t *testing.T, entry string) *Session {
	t.Helper()
	p, err := bank.Decode(entry)
	if err != nil {
		t.Fatalf("Decode(%q) failed: %v", entry, err)
	}
	return NewSession(p)
}

func TestSessionPlayThrough(t *testing.T) {
	s := newTestSession(t, "2912og")

	if s.State() != StatePlaying {
		t.Fatalf("expected playing, got %s", s.State())
	}
	if !s.Move(24, 17) {
		t.Fatal("green 24->17 should be accepted")
	}
	if got := s.Board().String(); got != "R-2,G-17,B-16" {
		t.Errorf("expected R-2,G-17,B-16, got %s", got)
	}
	if !s.Move(2, 12) {
		t.Fatal("red 2->12 should be accepted")
	}

	if !s.Solved() || s.State() != StateSolved {
		t.Error("expected solved session")
	}
	if s.Moves() != 2 {
		t.Errorf("expected 2 moves, got %d", s.Moves())
	}
	if s.Move(12, 2) {
		t.Error("moves after solving should be rejected")
	}
}

func TestSessionRejectsInvalidMoves(t *testing.T) {
	s := newTestSession(t, "2912og")
	before := s.Snapshot()

	tests := []struct {
		name     string
		from, to core.Cell
	}{
		{"empty source", 0, 5},
		{"not on a line", 2, 16},
		{"pass-through cell", 2, 7},
		{"occupied target", 2, 24},
		{"off board", 2, 40},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if s.Move(tc.from, tc.to) {
				t.Errorf("move %d->%d should be rejected", tc.from, tc.to)
			}
			if s.Snapshot() != before {
				t.Error("rejected move changed the session")
			}
		})
	}
}

func TestSessionSelect(t *testing.T) {
	s := newTestSession(t, "2912og")

	r := s.Select(2)
	if s.Selected() != 2 {
		t.Errorf("expected cell 2 selected, got %d", s.Selected())
	}
	if !r.IsStop(12) {
		t.Errorf("expected 12 among stops, got %v", r.Stops)
	}
	if !r.IsPassThrough(7) {
		t.Errorf("expected 7 among pass-through cells, got %v", r.PassThrough)
	}

	if !s.MoveSelected(12) {
		t.Fatal("MoveSelected(12) should be accepted")
	}
	if s.Selected() != core.OffBoard {
		t.Error("selection should clear after a move")
	}

	if r := s.Select(0); !r.Empty() || s.Selected() != core.OffBoard {
		t.Error("selecting an empty cell should clear the selection")
	}
	if s.MoveSelected(5) {
		t.Error("MoveSelected without selection should be rejected")
	}
}

func TestSessionHint(t *testing.T) {
	s := newTestSession(t, "2912og")

	if !s.Hint() {
		t.Fatal("first hint should apply")
	}
	if got := s.Board().String(); got != "R-2,G-17,B-16" {
		t.Errorf("expected R-2,G-17,B-16, got %s", got)
	}
	if !s.Hint() {
		t.Fatal("second hint should apply")
	}
	if !s.Solved() {
		t.Error("two hints should solve the puzzle")
	}
	if s.Hint() {
		t.Error("hint on a solved board should report nothing")
	}
	if s.HintsUsed() != 2 || s.Moves() != 0 {
		t.Errorf("expected 2 hints and 0 moves, got %d and %d", s.HintsUsed(), s.Moves())
	}
}

func TestSessionHintOffPathResets(t *testing.T) {
	s := newTestSession(t, "2912og")

	// Blue slides down past 21 to the auxiliary cell 25.
	if !s.Move(16, 25) {
		t.Fatal("blue 16->25 should be accepted")
	}
	if !s.Hint() {
		t.Fatal("hint should apply")
	}
	if s.Board() != s.Puzzle().Start {
		t.Errorf("off-path hint should reset to start, got %s", s.Board())
	}
	if s.Moves() != 0 || s.HintsUsed() != 1 {
		t.Errorf("expected 0 moves and 1 hint after restart, got %d and %d", s.Moves(), s.HintsUsed())
	}
	if snap := s.Snapshot(); snap.History != 0 {
		t.Errorf("expected empty history after restart, got %d", snap.History)
	}
	if s.Undo() {
		t.Error("nothing to undo after an off-path hint")
	}

	// Playing on from the start counts only the new line.
	if !s.Hint() || !s.Hint() || !s.Solved() {
		t.Fatal("two hints from the start should solve the puzzle")
	}
	if s.Moves() != 0 || s.HintsUsed() != 3 {
		t.Errorf("expected 0 moves and 3 hints, got %d and %d", s.Moves(), s.HintsUsed())
	}
}

func TestSessionUndo(t *testing.T) {
	s := newTestSession(t, "2912og")

	if s.Undo() {
		t.Error("undo with no history should fail")
	}

	s.Move(24, 17)
	s.Hint()
	if !s.Solved() {
		t.Fatal("expected solved after move and hint")
	}

	if !s.Undo() {
		t.Fatal("undo should succeed")
	}
	if got := s.Board().String(); got != "R-2,G-17,B-16" {
		t.Errorf("expected R-2,G-17,B-16 after undo, got %s", got)
	}
	if s.Moves() != 1 {
		t.Errorf("undoing a hint should keep the move count, got %d", s.Moves())
	}

	if !s.Undo() {
		t.Fatal("second undo should succeed")
	}
	if s.Board() != s.Puzzle().Start || s.Moves() != 0 {
		t.Errorf("expected start board and 0 moves, got %s and %d", s.Board(), s.Moves())
	}
	if s.HintsUsed() != 1 {
		t.Errorf("undo should not refund hints, got %d", s.HintsUsed())
	}
}

func TestSessionReset(t *testing.T) {
	s := newTestSession(t, "34f10dog")

	s.Move(0, 7)
	s.Hint()
	s.Reset()

	snap := s.Snapshot()
	expected := Snapshot{
		Entry:    "34f10dog",
		Board:    "R-0,G-13,B-24,Y-16",
		Selected: core.OffBoard,
		Moves:    0,
		Optimal:  3,
		Hints:    1,
		History:  0,
		State:    StatePlaying,
	}
	if snap != expected {
		t.Errorf("expected %+v, got %+v", expected, snap)
	}
}
