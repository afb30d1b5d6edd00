package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/hexslide/internal/hexslide/bank"
	"github.com/vovakirdan/hexslide/internal/hexslide/core"
)

var flagValidateOptimal bool

var validateCmd = &cobra.Command{
	Use:   "validate",
	Short: "Validate the puzzle bank",
	Long: `Decode and replay every bank entry, reporting rejected ones.
With --optimal, also check that no shorter solution exists.
Exits with status 1 when any entry fails.

Examples:
  hexslide validate
  hexslide validate --bank ./my-bank.txt --optimal`,
	Args: cobra.NoArgs,
	Run:  runValidate,
}

func init() {
	validateCmd.Flags().BoolVar(&flagValidateOptimal, "optimal", false, "Verify stored solutions are shortest")
}

func runValidate(cmd *cobra.Command, args []string) {
	logger := newLogger()
	cfg := loadConfig()
	b := loadBank(cfg, logger)

	failed := 0
	for _, r := range b.Rejections() {
		fmt.Printf("  REJECT  %s\n", r.Error())
		failed++
	}

	if flagValidateOptimal {
		var all []bank.Puzzle
		all = append(all, b.Levels()...)
		for _, n := range b.Buckets() {
			all = append(all, b.Bucket(n)...)
		}
		for _, p := range all {
			if p.Len() == 0 {
				continue
			}
			if shorter, ok := core.Solve(p.Start, p.Len()-1); ok {
				fmt.Printf("  LONG    %s: stored %d moves, found %d\n", p.Entry, p.Len(), len(shorter))
				failed++
			}
		}
	}

	fmt.Println()
	fmt.Printf("%s: %d levels, %d pool puzzles, %d problems\n",
		b.Name, b.LevelCount(), b.PoolSize(), failed)
	if failed > 0 {
		fail("bank has %d problems", failed)
	}
}
