package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var levelsCmd = &cobra.Command{
	Use:   "levels",
	Short: "List levels and progress",
	Long:  `Shows every level in the bank with its solution length and whether it was solved.`,
	Args:  cobra.NoArgs,
	Run:   runLevels,
}

func runLevels(cmd *cobra.Command, args []string) {
	logger := newLogger()
	cfg := loadConfig()
	b := loadBank(cfg, logger)

	cleared := map[int]bool{}
	if store := openStore(cfg, logger); store != nil {
		defer store.Close()
		if c, err := store.LevelsCleared(); err == nil {
			cleared = c
		} else {
			logger.Warn("could not read progress", "error", err)
		}
	}

	if b.LevelCount() == 0 {
		fmt.Println("No levels available.")
		return
	}

	fmt.Printf("Levels - %s\n", b.Name)
	fmt.Println()

	// Print header
	fmt.Printf("  %-5s  %-5s  %-10s  %s\n", "Level", "Moves", "Entry", "Solved")
	fmt.Printf("  %-5s  %-5s  %-10s  %s\n", "-----", "-----", "-----", "------")

	// Progress is keyed by file position, so rejected levels keep their row.
	for i := 0; i < b.LevelCount(); i++ {
		p, err := b.Level(i)
		if err != nil {
			fmt.Printf("  %-5d  %-5s  %-10s  %s\n", i+1, "-", "-", "rejected")
			continue
		}
		mark := ""
		if cleared[p.Index] {
			mark = "yes"
		}
		fmt.Printf("  %-5d  %-5d  %-10s  %s\n", i+1, p.Len(), p.Entry, mark)
	}

	fmt.Println()
	fmt.Printf("Pool: %d puzzles in %d buckets\n", b.PoolSize(), len(b.Buckets()))
	fmt.Println("Run 'hexslide play <level>' to play a level.")
}
