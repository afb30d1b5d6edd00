package core

import "testing"

func TestCellCoordRoundTrip(t *testing.T) {
	for _, cell := range AllCells() {
		coord, ok := CellCoord(cell)
		if !ok {
			t.Fatalf("CellCoord(%d) reported off-board", cell)
		}
		if back := CoordCell(coord); back != cell {
			t.Errorf("CoordCell(%v) = %d, expected %d", coord, back, cell)
		}
	}
}

func TestCellCoordSpecialCells(t *testing.T) {
	tests := []struct {
		cell     Cell
		expected Coord
	}{
		{0, C(0, 0)},
		{4, C(4, 0)},
		{12, C(2, 2)},
		{24, C(4, 4)},
		{25, C(1, 5)},
		{26, C(3, 5)},
	}

	for _, tc := range tests {
		coord, ok := CellCoord(tc.cell)
		if !ok || coord != tc.expected {
			t.Errorf("CellCoord(%d) = %v/%v, expected %v", tc.cell, coord, ok, tc.expected)
		}
	}
}

func TestCellCoordOffBoard(t *testing.T) {
	for _, cell := range []Cell{-1, 27, 100} {
		if _, ok := CellCoord(cell); ok {
			t.Errorf("CellCoord(%d) should be off-board", cell)
		}
	}

	for _, coord := range []Coord{C(-1, 0), C(5, 0), C(0, 5), C(2, 5), C(4, 5), C(1, 6), C(0, -1)} {
		if cell := CoordCell(coord); cell != OffBoard {
			t.Errorf("CoordCell(%v) = %d, expected OffBoard", coord, cell)
		}
	}
}

func TestCoordStepParity(t *testing.T) {
	tests := []struct {
		name     string
		from     Coord
		dir      Dir
		expected Coord
	}{
		{"even up", C(2, 2), DirUp, C(2, 1)},
		{"even down", C(2, 2), DirDown, C(2, 3)},
		{"even up-right keeps row", C(2, 2), DirUpRight, C(3, 2)},
		{"even up-left keeps row", C(2, 2), DirUpLeft, C(1, 2)},
		{"even down-right adds row", C(2, 2), DirDownRight, C(3, 3)},
		{"even down-left adds row", C(2, 2), DirDownLeft, C(1, 3)},
		{"odd up-right drops row", C(3, 1), DirUpRight, C(4, 0)},
		{"odd up-left drops row", C(3, 1), DirUpLeft, C(2, 0)},
		{"odd down-right keeps row", C(3, 1), DirDownRight, C(4, 1)},
		{"odd down-left keeps row", C(3, 1), DirDownLeft, C(2, 1)},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := tc.from.Step(tc.dir); got != tc.expected {
				t.Errorf("%v.Step(%s) = %v, expected %v", tc.from, tc.dir, got, tc.expected)
			}
		})
	}
}

func TestNeighbors(t *testing.T) {
	tests := []struct {
		cell     Cell
		dir      Dir
		expected Cell
	}{
		{12, DirUp, 7},
		{12, DirDown, 17},
		{12, DirUpRight, 13},
		{12, DirUpLeft, 11},
		{12, DirDownRight, 18},
		{12, DirDownLeft, 16},
		{8, DirUpRight, 4},
		{8, DirDownLeft, 7},
		{21, DirDown, 25},
		{23, DirDown, 26},
		{22, DirDownLeft, 25},
		{22, DirDownRight, 26},
		{25, DirUp, 21},
		{25, DirUpRight, 22},
		{25, DirUpLeft, 20},
		{25, DirDown, OffBoard},
		{25, DirDownRight, OffBoard},
		{0, DirUp, OffBoard},
		{0, DirUpLeft, OffBoard},
		{0, DirUpRight, 1},
		{1, DirUpRight, OffBoard},
		{4, DirDownRight, OffBoard},
	}

	for _, tc := range tests {
		if got := tc.cell.Neighbor(tc.dir); got != tc.expected {
			t.Errorf("Neighbor(%d, %s) = %d, expected %d", tc.cell, tc.dir, got, tc.expected)
		}
	}
}

func TestNeighborSymmetry(t *testing.T) {
	for _, cell := range AllCells() {
		for _, d := range AllDirs() {
			n := cell.Neighbor(d)
			if !n.Valid() {
				continue
			}
			if back := n.Neighbor(d.Opposite()); back != cell {
				t.Errorf("Neighbor(%d,%s)=%d but back via %s gives %d", cell, d, n, d.Opposite(), back)
			}
		}
	}
}

func TestDirOpposite(t *testing.T) {
	pairs := map[Dir]Dir{
		DirUp:        DirDown,
		DirUpRight:   DirDownLeft,
		DirUpLeft:    DirDownRight,
		DirDown:      DirUp,
		DirDownLeft:  DirUpRight,
		DirDownRight: DirUpLeft,
	}
	for d, expected := range pairs {
		if got := d.Opposite(); got != expected {
			t.Errorf("%s.Opposite() = %s, expected %s", d, got, expected)
		}
	}
}
