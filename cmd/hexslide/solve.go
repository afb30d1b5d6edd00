package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/hexslide/internal/config"
	"github.com/vovakirdan/hexslide/internal/hexslide/bank"
	"github.com/vovakirdan/hexslide/internal/hexslide/core"
)

var flagSolveSearch bool

var solveCmd = &cobra.Command{
	Use:   "solve <entry|board>",
	Short: "Print every state of a solution",
	Long: `Replay a bank entry's stored solution, printing each state.
With --search (or for a plain board) the solver finds a shortest solution.

Examples:
  hexslide solve 34f10dog
  hexslide solve R-0,G-13,B-24,Y-16`,
	Args: cobra.ExactArgs(1),
	Run:  runSolve,
}

func init() {
	solveCmd.Flags().BoolVar(&flagSolveSearch, "search", false, "Search for a shortest solution instead of replaying")
}

func runSolve(cmd *cobra.Command, args []string) {
	cfg := loadConfig()

	var (
		start core.Board
		moves []core.Move
	)
	if p, err := bank.Decode(args[0]); err == nil && !flagSolveSearch {
		start, moves = p.Start, p.Moves
	} else {
		b, perr := parseBoardArg(args[0])
		if perr != nil {
			fail("%v", perr)
		}
		depth := solverDepth(cfg.Solver)
		found, ok := core.Solve(b, depth)
		if !ok {
			fail("no solution within %d moves", depth)
		}
		start, moves = b, found
	}

	solution, err := core.BuildSolution(start, moves)
	if err != nil {
		fail("%v", err)
	}

	for i, state := range solution {
		if i == 0 {
			fmt.Println("Start")
		} else {
			fmt.Printf("Move %d: %s\n", i, moves[i-1])
		}
		printBoard(state)
		fmt.Println()
	}

	if entry, err := core.EncodeEntry(start, moves); err == nil {
		fmt.Printf("%d moves, entry %s\n", len(moves), entry)
	}
}

// solverDepth returns the search depth core.Solve will actually use.
func solverDepth(cfg config.SolverConfig) int {
	if cfg.MaxDepth <= 0 || cfg.MaxDepth > core.MaxMoves {
		return core.MaxMoves
	}
	return cfg.MaxDepth
}
