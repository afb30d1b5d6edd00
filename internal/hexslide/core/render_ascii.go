package core

import "strings"

// RenderASCII creates a plain-text picture of the board.
// This is used for debugging, tests and the CLI.
//
// Format:
//   - each column is 4 characters wide, odd columns drawn half a cell higher
//   - empty cells '.', pieces by their letter (R/G/B/Y/O/P)
func RenderASCII(b Board) string {
	return RenderGrid(func(cell Cell) string {
		if c, ok := b.PieceAt(cell); ok {
			return string(c.Char())
		}
		return "."
	})
}

// RenderGrid lays out one glyph per cell in the board's brick pattern.
// Glyphs are expected to occupy a single terminal column; they may carry
// escape sequences.
func RenderGrid(glyph func(Cell) string) string {
	// Odd column row r sits on text line 2r, even column row r on line 2r+1.
	const lines = 2*(GridRows+1) - 1

	var rows [lines][GridCols]string
	for _, cell := range AllCells() {
		c := cellCoords[cell]
		line := 2 * c.Row
		if c.Col%2 == 0 {
			line++
		}
		rows[line][c.Col] = glyph(cell)
	}

	var sb strings.Builder
	for _, row := range rows {
		var line strings.Builder
		pending := 0
		for _, g := range row {
			if g == "" {
				pending += 4
				continue
			}
			line.WriteString(strings.Repeat(" ", pending+1))
			line.WriteString(g)
			pending = 2
		}
		sb.WriteString(line.String())
		sb.WriteString("\n")
	}
	return sb.String()
}
