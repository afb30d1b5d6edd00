package core

import "fmt"

// Move is an encoded move: color*6 + direction, in [0,35].
type Move uint8

// MoveCount is the number of distinct encoded moves.
const MoveCount = int(ColorCount) * int(DirCount)

// NewMove encodes a color and direction.
func NewMove(c Color, d Dir) Move {
	return Move(int(c)*int(DirCount) + int(d))
}

// Color returns the color of the piece the move slides.
func (m Move) Color() Color {
	return Color(int(m) / int(DirCount))
}

// Dir returns the slide direction.
func (m Move) Dir() Dir {
	return Dir(int(m) % int(DirCount))
}

// Valid reports whether m is in [0,35].
func (m Move) Valid() bool {
	return int(m) < MoveCount
}

// String returns a readable form such as "red Up".
func (m Move) String() string {
	if !m.Valid() {
		return fmt.Sprintf("move(%d)", int(m))
	}
	return fmt.Sprintf("%s %s", m.Color(), m.Dir())
}

// SlideDestination returns where a piece leaving from slides in direction d.
// The piece crosses empty cells and stops on the last one before another piece
// or the board edge. A piece blocked by its immediate neighbor (or the edge)
// does not move: the result is from itself.
func (b Board) SlideDestination(from Cell, d Dir) Cell {
	if !from.Valid() || !d.Valid() {
		return from
	}
	dest := from
	for next := from.Neighbor(d); next.Valid(); next = next.Neighbor(d) {
		if b.Occupied(next) {
			break
		}
		dest = next
	}
	return dest
}

// Apply performs an encoded move and returns the resulting board.
// Invalid moves, moves of absent pieces and blocked slides return b unchanged;
// callers compare the result with b to detect a non-move.
func (b Board) Apply(m Move) Board {
	if !m.Valid() {
		return b
	}
	from, ok := b.Cell(m.Color())
	if !ok {
		return b
	}
	dest := b.SlideDestination(from, m.Dir())
	if dest == from {
		return b
	}
	return b.With(m.Color(), dest)
}

// directionSlot maps a cell to the virtual linear slot used for direction
// arithmetic. The auxiliary cells take the slots a full sixth row would give
// them: 25 -> 26 (col 1, row 5) and 26 -> 28 (col 3, row 5).
func directionSlot(c Cell) int {
	switch c {
	case 25:
		return 26
	case 26:
		return 28
	default:
		return int(c)
	}
}

// maxLineSteps bounds the straight-line search; no two cells are further
// apart than this along any hex line.
const maxLineSteps = GridRows + 1

// DirectionBetween returns the direction whose straight hex line leads from
// start to end. Returns false if the cells are equal, not colinear, or not on
// the board.
func DirectionBetween(start, end Cell) (Dir, bool) {
	if !start.Valid() || !end.Valid() || start == end {
		return DirUp, false
	}
	s, e := directionSlot(start), directionSlot(end)
	from := Coord{Col: s % GridCols, Row: s / GridCols}
	to := Coord{Col: e % GridCols, Row: e / GridCols}

	for _, d := range AllDirs() {
		c := from
		for i := 0; i < maxLineSteps; i++ {
			c = c.Step(d)
			if c == to {
				return d, true
			}
		}
	}
	return DirUp, false
}

// ResolvePlayerMove turns a player's "drag from start to end" into a move.
// It succeeds only if a piece stands on start and its slide toward end stops
// exactly on end; dropping on a pass-through cell is rejected. A rejection is
// an ordinary outcome, reported by ok=false.
func (b Board) ResolvePlayerMove(start, end Cell) (m Move, next Board, ok bool) {
	d, ok := DirectionBetween(start, end)
	if !ok {
		return 0, b, false
	}
	color, ok := b.PieceAt(start)
	if !ok {
		return 0, b, false
	}
	m = NewMove(color, d)
	next = b.Apply(m)
	if cell, _ := next.Cell(color); cell != end {
		return 0, b, false
	}
	return m, next, true
}

// LegalMoves returns every move that changes the board, in encoding order.
func (b Board) LegalMoves() []Move {
	moves := make([]Move, 0, MoveCount)
	for _, p := range b.Pieces() {
		for _, d := range AllDirs() {
			if b.SlideDestination(p.Cell, d) != p.Cell {
				moves = append(moves, NewMove(p.Color, d))
			}
		}
	}
	return moves
}
