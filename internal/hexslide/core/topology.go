package core

import "fmt"

// Board geometry.
//
// Cells 0-24 form a 5x5 block (row = index/5, col = index%5). Odd columns are
// one cell taller: cells 25 and 26 hang below columns 1 and 3. Drawn as
// flat-topped hexagons, odd columns sit half a cell higher than even columns,
// which puts cell 12 at the exact center of the board.
const (
	GridCols  = 5
	GridRows  = 5
	CellCount = 27

	// CenterCell is the cell Red must reach to solve a puzzle.
	CenterCell Cell = 12
)

// Cell is a linear board index in [0, CellCount).
type Cell int8

// OffBoard is the sentinel for "no cell".
const OffBoard Cell = -1

// Valid reports whether c is a real board cell.
func (c Cell) Valid() bool {
	return c >= 0 && c < CellCount
}

// Coord is a column/row position in offset hex coordinates.
type Coord struct {
	Col int
	Row int
}

// C is a convenience constructor for Coord.
func C(col, row int) Coord {
	return Coord{Col: col, Row: row}
}

// String returns a string representation of the coordinate.
func (c Coord) String() string {
	return fmt.Sprintf("(%d,%d)", c.Col, c.Row)
}

// Step returns the coordinate one step away in the given direction.
// Diagonal steps change the row depending on column parity: going up only
// decrements the row when leaving an odd column, going down only increments it
// when leaving an even column.
func (c Coord) Step(d Dir) Coord {
	odd := c.Col&1 == 1
	switch d {
	case DirUp:
		return Coord{c.Col, c.Row - 1}
	case DirDown:
		return Coord{c.Col, c.Row + 1}
	case DirUpRight, DirUpLeft:
		dc := 1
		if d == DirUpLeft {
			dc = -1
		}
		if odd {
			return Coord{c.Col + dc, c.Row - 1}
		}
		return Coord{c.Col + dc, c.Row}
	case DirDownRight, DirDownLeft:
		dc := 1
		if d == DirDownLeft {
			dc = -1
		}
		if odd {
			return Coord{c.Col + dc, c.Row}
		}
		return Coord{c.Col + dc, c.Row + 1}
	default:
		return c
	}
}

// Auxiliary cells below the 5x5 block.
var (
	auxCoord25 = Coord{Col: 1, Row: 5}
	auxCoord26 = Coord{Col: 3, Row: 5}
)

var (
	cellCoords [CellCount]Coord          // index -> coordinate
	neighbors  [CellCount][DirCount]Cell // index -> neighbor per direction
)

func init() {
	for i := Cell(0); i < CellCount; i++ {
		cellCoords[i] = computeCoord(i)
	}
	for i := Cell(0); i < CellCount; i++ {
		for _, d := range AllDirs() {
			neighbors[i][d] = CoordCell(cellCoords[i].Step(d))
		}
	}
}

func computeCoord(i Cell) Coord {
	switch i {
	case 25:
		return auxCoord25
	case 26:
		return auxCoord26
	default:
		return Coord{Col: int(i) % GridCols, Row: int(i) / GridCols}
	}
}

// CellCoord returns the coordinate of a cell.
// Returns false if the index is not on the board.
func CellCoord(i Cell) (Coord, bool) {
	if !i.Valid() {
		return Coord{}, false
	}
	return cellCoords[i], true
}

// CoordCell returns the cell at a coordinate, or OffBoard.
func CoordCell(c Coord) Cell {
	switch c {
	case auxCoord25:
		return 25
	case auxCoord26:
		return 26
	}
	if c.Col < 0 || c.Col >= GridCols || c.Row < 0 || c.Row >= GridRows {
		return OffBoard
	}
	return Cell(c.Row*GridCols + c.Col)
}

// Neighbor returns the adjacent cell in direction d, or OffBoard past the edge.
func (c Cell) Neighbor(d Dir) Cell {
	if !c.Valid() || !d.Valid() {
		return OffBoard
	}
	return neighbors[c][d]
}

// AllCells returns every board cell in index order.
func AllCells() []Cell {
	cells := make([]Cell, CellCount)
	for i := range cells {
		cells[i] = Cell(i)
	}
	return cells
}
