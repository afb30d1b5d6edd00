package core

// solverNode links a visited board to the move that reached it.
type solverNode struct {
	parent Board
	move   Move
	root   bool
}

// Solve finds a shortest move list that brings Red to the center.
// The search is breadth-first, expanding colors in board order and directions
// in encoding order, and gives up beyond maxDepth moves (maxDepth <= 0 means
// MaxMoves). An already solved board returns an empty list.
func Solve(start Board, maxDepth int) ([]Move, bool) {
	if start.Solved() {
		return []Move{}, true
	}
	if maxDepth <= 0 || maxDepth > MaxMoves {
		maxDepth = MaxMoves
	}

	visited := map[Board]solverNode{start: {root: true}}
	frontier := []Board{start}

	for depth := 0; depth < maxDepth && len(frontier) > 0; depth++ {
		var next []Board
		for _, b := range frontier {
			for _, m := range b.LegalMoves() {
				child := b.Apply(m)
				if _, seen := visited[child]; seen {
					continue
				}
				visited[child] = solverNode{parent: b, move: m}
				if child.Solved() {
					return tracePath(visited, child), true
				}
				next = append(next, child)
			}
		}
		frontier = next
	}
	return nil, false
}

// tracePath walks parent links back to the root and returns the moves in order.
func tracePath(visited map[Board]solverNode, end Board) []Move {
	var moves []Move
	for b := end; ; {
		n := visited[b]
		if n.root {
			break
		}
		moves = append(moves, n.move)
		b = n.parent
	}
	for i, j := 0, len(moves)-1; i < j; i, j = i+1, j-1 {
		moves[i], moves[j] = moves[j], moves[i]
	}
	return moves
}
