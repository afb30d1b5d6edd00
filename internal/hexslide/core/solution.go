package core

// BuildSolution replays a stored move list from start and returns every board
// along the way, start included (len(moves)+1 boards). A step that does not
// move anything means the stored data is corrupt and yields a *SolutionError.
func BuildSolution(start Board, moves []Move) ([]Board, error) {
	solution := make([]Board, 0, len(moves)+1)
	solution = append(solution, start)

	cur := start
	for i, m := range moves {
		next := cur.Apply(m)
		if next == cur {
			return nil, &SolutionError{Step: i, Move: m, Board: cur}
		}
		solution = append(solution, next)
		cur = next
	}
	return solution, nil
}

// HintStep returns the board the player should reach next.
// If current is not on the solution path the hint is the start board; if it is
// the final board there is nothing left to suggest and ok is false.
func HintStep(current Board, solution []Board) (next Board, ok bool) {
	if len(solution) == 0 {
		return current, false
	}
	for i, b := range solution {
		if b != current {
			continue
		}
		if i == len(solution)-1 {
			return current, false
		}
		return solution[i+1], true
	}
	return solution[0], true
}

// DiffMove finds the single move that turns prev into next.
// Returns false if the boards do not differ by exactly one legal slide.
func DiffMove(prev, next Board) (Move, bool) {
	for _, c := range AllColors() {
		from, ok := prev.Cell(c)
		if !ok {
			continue
		}
		to, _ := next.Cell(c)
		if from == to {
			continue
		}
		m, resolved, ok := prev.ResolvePlayerMove(from, to)
		if !ok || resolved != next {
			return 0, false
		}
		return m, true
	}
	return 0, false
}
