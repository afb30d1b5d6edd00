package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var flagProgressClear bool

var progressCmd = &cobra.Command{
	Use:   "progress",
	Short: "Show stored progress",
	Long: `Display solve statistics and the most recent solves.

Examples:
  hexslide progress
  hexslide progress --clear`,
	Args: cobra.NoArgs,
	Run:  runProgress,
}

func init() {
	progressCmd.Flags().BoolVar(&flagProgressClear, "clear", false, "Delete all stored progress")
}

func runProgress(cmd *cobra.Command, args []string) {
	logger := newLogger()
	cfg := loadConfig()
	cfg.Storage.Enabled = true

	store := openStore(cfg, logger)
	if store == nil {
		fail("cannot open progress database %s", cfg.Storage.Path)
	}
	defer store.Close()

	if flagProgressClear {
		if err := store.Clear(); err != nil {
			fail("%v", err)
		}
		fmt.Println("Progress cleared.")
		return
	}

	stats, err := store.Stats()
	if err != nil {
		fail("%v", err)
	}

	fmt.Println("Progress")
	fmt.Println()

	if stats.Solves == 0 {
		fmt.Println("No puzzles solved yet.")
		fmt.Println()
		fmt.Println("Play 'hexslide play' to solve your first puzzle!")
		return
	}

	fmt.Printf("  Solves:      %d\n", stats.Solves)
	fmt.Printf("  Puzzles:     %d\n", stats.Puzzles)
	fmt.Printf("  Perfect:     %d\n", stats.Perfect)
	fmt.Printf("  Hints used:  %d\n", stats.HintsUsed)
	fmt.Printf("  Last played: %s\n", stats.LastPlayed.Format("2006-01-02 15:04"))

	recent, err := store.RecentSolves(10)
	if err != nil {
		fail("%v", err)
	}

	fmt.Println()
	fmt.Printf("  %-10s  %-5s  %-5s  %-5s  %s\n", "Entry", "Level", "Moves", "Hints", "Date")
	fmt.Printf("  %-10s  %-5s  %-5s  %-5s  %s\n", "-----", "-----", "-----", "-----", "----")
	for _, s := range recent {
		level := "-"
		if s.Level >= 0 {
			level = fmt.Sprint(s.Level + 1)
		}
		moves := fmt.Sprintf("%d/%d", s.Moves, s.Optimal)
		fmt.Printf("  %-10s  %-5s  %-5s  %-5d  %s\n",
			s.Puzzle, level, moves, s.Hints, s.CreatedAt.Format("2006-01-02 15:04"))
	}
}
