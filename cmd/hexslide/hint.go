package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/hexslide/internal/hexslide/bank"
	"github.com/vovakirdan/hexslide/internal/hexslide/core"
)

var hintCmd = &cobra.Command{
	Use:   "hint <entry> <board>",
	Short: "Print the next state toward the solution",
	Long: `Given a bank entry and the current board, print the next state of the
stored solution. A board off the solution path hints back to the start.

Examples:
  hexslide hint 2912og R-2,G-24,B-16`,
	Args: cobra.ExactArgs(2),
	Run:  runHint,
}

func runHint(cmd *cobra.Command, args []string) {
	p, err := bank.Decode(args[0])
	if err != nil {
		fail("%v", err)
	}
	current, err := core.ParseBoard(args[1])
	if err != nil {
		fail("%v", err)
	}

	next, ok := core.HintStep(current, p.Solution)
	if !ok {
		fmt.Println("Already solved.")
		return
	}
	if m, ok := core.DiffMove(current, next); ok {
		fmt.Printf("Hint: %s\n", m)
	} else {
		fmt.Println("Hint: back to the start")
	}
	printBoard(next)
}
