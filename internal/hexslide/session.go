// Package hexslide drives a single puzzle through play: piece selection, player
// moves, hints and undo. Front ends own a Session and feed it input.
package hexslide

import (
	"github.com/vovakirdan/hexslide/internal/hexslide/bank"
	"github.com/vovakirdan/hexslide/internal/hexslide/core"
)

// SessionState represents the current session state.
type SessionState string

const (
	StatePlaying SessionState = "playing"
	StateSolved  SessionState = "solved"
)

// Session is one attempt at a puzzle. It is not safe for concurrent use.
type Session struct {
	puzzle   bank.Puzzle
	board    core.Board
	history  []step
	selected core.Cell
	moves    int
	hints    int
}

type step struct {
	prev core.Board
	hint bool
}

// NewSession starts a session on the puzzle's start board.
func NewSession(p bank.Puzzle) *Session {
	return &Session{
		puzzle:   p,
		board:    p.Start,
		selected: core.OffBoard,
	}
}

// Puzzle returns the puzzle being played.
func (s *Session) Puzzle() bank.Puzzle {
	return s.puzzle
}

// Board returns the current board.
func (s *Session) Board() core.Board {
	return s.board
}

// Selected returns the selected cell, or core.OffBoard.
func (s *Session) Selected() core.Cell {
	return s.selected
}

// Select picks up the piece on cell and returns where it can slide.
// Selecting an empty cell clears the selection.
func (s *Session) Select(cell core.Cell) core.Reach {
	if s.Solved() || !s.board.Occupied(cell) {
		s.selected = core.OffBoard
		return core.Reach{}
	}
	s.selected = cell
	return s.board.Reachable(cell)
}

// Move slides the piece on from so that it stops on to. Invalid requests
// leave the session unchanged and return false.
func (s *Session) Move(from, to core.Cell) bool {
	if s.Solved() {
		return false
	}
	_, next, ok := s.board.ResolvePlayerMove(from, to)
	if !ok {
		return false
	}
	s.push(next, false)
	s.moves++
	return true
}

// MoveSelected moves the selected piece to cell.
func (s *Session) MoveSelected(to core.Cell) bool {
	if s.selected == core.OffBoard {
		return false
	}
	return s.Move(s.selected, to)
}

// Hint advances one state along the stored solution. A board that left the
// solution path restarts the puzzle like Reset, move count included.
// Returns false when already solved.
func (s *Session) Hint() bool {
	next, ok := core.HintStep(s.board, s.puzzle.Solution)
	if !ok {
		return false
	}
	s.hints++
	if !s.onPath() {
		s.Reset()
		return true
	}
	s.push(next, true)
	return true
}

func (s *Session) onPath() bool {
	for _, state := range s.puzzle.Solution {
		if state == s.board {
			return true
		}
	}
	return false
}

// Undo reverts the last move or hint.
func (s *Session) Undo() bool {
	if len(s.history) == 0 {
		return false
	}
	last := s.history[len(s.history)-1]
	s.history = s.history[:len(s.history)-1]
	s.board = last.prev
	s.selected = core.OffBoard
	if !last.hint {
		s.moves--
	}
	return true
}

// Reset returns to the start board. Hints already used stay counted.
func (s *Session) Reset() {
	s.board = s.puzzle.Start
	s.history = nil
	s.selected = core.OffBoard
	s.moves = 0
}

// Solved reports whether red is on the center cell.
func (s *Session) Solved() bool {
	return s.board.Solved()
}

// Moves returns the number of player moves on the current line of play.
func (s *Session) Moves() int {
	return s.moves
}

// HintsUsed returns how many hints were applied.
func (s *Session) HintsUsed() int {
	return s.hints
}

// State returns the session state.
func (s *Session) State() SessionState {
	if s.Solved() {
		return StateSolved
	}
	return StatePlaying
}

func (s *Session) push(next core.Board, hint bool) {
	s.history = append(s.history, step{prev: s.board, hint: hint})
	s.board = next
	s.selected = core.OffBoard
}

// Snapshot captures the session for tests and persistence.
type Snapshot struct {
	Entry    string
	Board    string
	Selected core.Cell
	Moves    int
	Optimal  int
	Hints    int
	History  int
	State    SessionState
}

// Snapshot returns the current session snapshot.
func (s *Session) Snapshot() Snapshot {
	return Snapshot{
		Entry:    s.puzzle.Entry,
		Board:    s.board.String(),
		Selected: s.selected,
		Moves:    s.moves,
		Optimal:  s.puzzle.Len(),
		Hints:    s.hints,
		History:  len(s.history),
		State:    s.State(),
	}
}
