package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var flagShowIndex bool

var showCmd = &cobra.Command{
	Use:   "show <entry|board>",
	Short: "Draw a board",
	Long: `Draw a bank entry's start board or a serialized board.

Examples:
  hexslide show 2912og
  hexslide show R-12,G-7,B-25
  hexslide show --index`,
	Args: cobra.RangeArgs(0, 1),
	Run:  runShow,
}

func init() {
	showCmd.Flags().BoolVar(&flagShowIndex, "index", false, "Draw the cell numbering (base 36)")
}

func runShow(cmd *cobra.Command, args []string) {
	if flagShowIndex {
		fmt.Print(renderIndex())
		if len(args) == 0 {
			return
		}
		fmt.Println()
	}
	if len(args) == 0 {
		fail("expected an entry or board")
	}

	b, err := parseBoardArg(args[0])
	if err != nil {
		fail("%v", err)
	}
	printBoard(b)
	if b.Solved() {
		fmt.Println("Solved.")
	}
}
