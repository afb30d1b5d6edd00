package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var reachCmd = &cobra.Command{
	Use:   "reach <board> <cell>",
	Short: "Show where a piece can slide",
	Long: `Highlight the cells the piece on <cell> can stop on ('o') and the cells it
only passes through ('-').

Examples:
  hexslide reach R-12,G-7 12`,
	Args: cobra.ExactArgs(2),
	Run:  runReach,
}

func runReach(cmd *cobra.Command, args []string) {
	b, err := parseBoardArg(args[0])
	if err != nil {
		fail("%v", err)
	}
	cell, err := parseCell(args[1])
	if err != nil {
		fail("%v", err)
	}
	if !b.Occupied(cell) {
		fail("no piece on cell %d", cell)
	}

	r := b.Reachable(cell)
	fmt.Print(renderBoard(b, cell, r))
	fmt.Printf("Stops:        %v\n", r.Stops)
	fmt.Printf("Pass-through: %v\n", r.PassThrough)
}
