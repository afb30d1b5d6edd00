package core

import "fmt"

// Piece is a colored piece standing on a cell.
type Piece struct {
	Color Color
	Cell  Cell
}

// Board is one puzzle configuration: the cell of every piece, indexed by color.
// Absent pieces hold OffBoard. Board is a small comparable value; two boards
// are equal (==) exactly when every color sits on the same cell.
type Board struct {
	cells [ColorCount]Cell
}

// EmptyBoard returns a board with no pieces.
func EmptyBoard() Board {
	var b Board
	for i := range b.cells {
		b.cells[i] = OffBoard
	}
	return b
}

// NewBoard creates a board from cells given in color order R, G, B, Y, O, P.
// Fewer than six cells leaves the trailing colors absent; OffBoard entries are
// also treated as absent.
func NewBoard(cells ...Cell) Board {
	b := EmptyBoard()
	for i, c := range cells {
		if i >= int(ColorCount) {
			break
		}
		if c.Valid() {
			b.cells[i] = c
		}
	}
	return b
}

// Cell returns the cell of the given color's piece.
// Returns OffBoard and false if that piece is not on the board.
func (b Board) Cell(c Color) (Cell, bool) {
	if c >= ColorCount {
		return OffBoard, false
	}
	cell := b.cells[c]
	return cell, cell.Valid()
}

// Has returns true if the piece of the given color is on the board.
func (b Board) Has(c Color) bool {
	_, ok := b.Cell(c)
	return ok
}

// With returns a copy of the board with the given color moved to cell.
// Passing OffBoard removes the piece.
func (b Board) With(c Color, cell Cell) Board {
	if c >= ColorCount {
		return b
	}
	if !cell.Valid() {
		cell = OffBoard
	}
	b.cells[c] = cell
	return b
}

// Pieces returns the present pieces in board order.
func (b Board) Pieces() []Piece {
	pieces := make([]Piece, 0, ColorCount)
	for _, c := range AllColors() {
		if cell, ok := b.Cell(c); ok {
			pieces = append(pieces, Piece{Color: c, Cell: cell})
		}
	}
	return pieces
}

// PieceCount returns the number of pieces on the board.
func (b Board) PieceCount() int {
	n := 0
	for _, cell := range b.cells {
		if cell.Valid() {
			n++
		}
	}
	return n
}

// PieceAt returns the color of the piece occupying cell, if any.
func (b Board) PieceAt(cell Cell) (Color, bool) {
	if !cell.Valid() {
		return ColorRed, false
	}
	for i, c := range b.cells {
		if c == cell {
			return Color(i), true
		}
	}
	return ColorRed, false
}

// Occupied returns true if any piece stands on cell.
func (b Board) Occupied(cell Cell) bool {
	_, ok := b.PieceAt(cell)
	return ok
}

// Solved returns true if Red occupies the center cell.
func (b Board) Solved() bool {
	return b.cells[ColorRed] == CenterCell
}

// Validate checks the board invariants: Red and Green present and no two
// pieces sharing a cell.
func (b Board) Validate() error {
	if !b.Has(ColorRed) || !b.Has(ColorGreen) {
		return fmt.Errorf("board needs red and green pieces")
	}
	var seen [CellCount]bool
	for _, p := range b.Pieces() {
		if seen[p.Cell] {
			return fmt.Errorf("two pieces share cell %d", p.Cell)
		}
		seen[p.Cell] = true
	}
	return nil
}
