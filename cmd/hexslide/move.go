package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var moveCmd = &cobra.Command{
	Use:   "move <board> <from> <to>",
	Short: "Resolve a player move",
	Long: `Slide the piece on <from> so it stops on <to>. Prints the resulting board,
or exits with status 2 when the move is rejected.

Examples:
  hexslide move R-2,G-17,B-16 2 12`,
	Args: cobra.ExactArgs(3),
	Run:  runMove,
}

func runMove(cmd *cobra.Command, args []string) {
	b, err := parseBoardArg(args[0])
	if err != nil {
		fail("%v", err)
	}
	from, err := parseCell(args[1])
	if err != nil {
		fail("%v", err)
	}
	to, err := parseCell(args[2])
	if err != nil {
		fail("%v", err)
	}

	m, next, ok := b.ResolvePlayerMove(from, to)
	if !ok {
		fmt.Fprintf(os.Stderr, "Rejected: %d -> %d is not a slide destination\n", from, to)
		os.Exit(2)
	}

	fmt.Printf("Move: %s\n", m)
	printBoard(next)
	if next.Solved() {
		fmt.Println("Solved.")
	}
}
