package core

import "sort"

// Reach lists the cells a selected piece can slide over or stop on.
// Stops are final destinations; pass-through cells are crossed but cannot be
// dropped on. The two lists are disjoint and sorted.
type Reach struct {
	Stops       []Cell
	PassThrough []Cell
}

// IsStop returns true if cell is a legal destination.
func (r Reach) IsStop(cell Cell) bool {
	return containsCell(r.Stops, cell)
}

// IsPassThrough returns true if cell is crossed by some slide but is not a stop.
func (r Reach) IsPassThrough(cell Cell) bool {
	return containsCell(r.PassThrough, cell)
}

// Empty returns true if the piece cannot move at all.
func (r Reach) Empty() bool {
	return len(r.Stops) == 0
}

// Reachable computes, for the piece on selected, the stop cell of every
// direction it can move in and the empty cells it crosses on the way.
// A cell that is a stop for one direction is never reported as pass-through,
// even if another direction crosses it. An empty or invalid selection yields
// an empty Reach.
func (b Board) Reachable(selected Cell) Reach {
	var r Reach
	if !b.Occupied(selected) {
		return r
	}

	var stop, pass [CellCount]bool
	for _, d := range AllDirs() {
		last := OffBoard
		for next := selected.Neighbor(d); next.Valid(); next = next.Neighbor(d) {
			if b.Occupied(next) {
				break
			}
			pass[next] = true
			last = next
		}
		if last.Valid() {
			stop[last] = true
		}
	}

	for i := Cell(0); i < CellCount; i++ {
		switch {
		case stop[i]:
			r.Stops = append(r.Stops, i)
		case pass[i]:
			r.PassThrough = append(r.PassThrough, i)
		}
	}
	return r
}

func containsCell(cells []Cell, cell Cell) bool {
	i := sort.Search(len(cells), func(i int) bool { return cells[i] >= cell })
	return i < len(cells) && cells[i] == cell
}
