package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/hexslide/internal/config"
)

var (
	flagDifficulty string
	flagMinMoves   int
	flagMaxMoves   int
)

var randomCmd = &cobra.Command{
	Use:   "random",
	Short: "Pick a pool puzzle by difficulty",
	Long: `Pick a random pool puzzle whose solution length matches the difficulty.

Difficulty options:
  easy   - Shortest puzzles, widening toward hard as you solve more
  normal - Medium puzzles, widening toward hard as you solve more
  hard   - Longest puzzles
  fixed  - Normal range, no progression

Examples:
  hexslide random
  hexslide random --difficulty hard --seed 42
  hexslide random --min 2 --max 4`,
	Args: cobra.NoArgs,
	Run:  runRandom,
}

func init() {
	for _, c := range []*cobra.Command{randomCmd, playCmd} {
		c.Flags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, fixed")
		c.Flags().IntVar(&flagMinMoves, "min", 0, "Minimum solution length (overrides difficulty)")
		c.Flags().IntVar(&flagMaxMoves, "max", 0, "Maximum solution length (overrides difficulty)")
	}
}

// difficultyRange resolves the solution-length range from flags, config and
// the number of puzzles solved so far.
func difficultyRange(cfg config.HexslideConfig, solved int) config.MovesRange {
	if flagDifficulty != "" {
		preset, ok := config.ParsePreset(flagDifficulty)
		if !ok {
			fail("unknown difficulty %q", flagDifficulty)
		}
		config.ApplyPreset(&cfg, preset)
	}

	r := config.NewDifficultyManager(cfg.Difficulty).Range(solved)
	if flagMinMoves > 0 {
		r.Min = flagMinMoves
	}
	if flagMaxMoves > 0 {
		r.Max = flagMaxMoves
	}
	return r
}

func runRandom(cmd *cobra.Command, args []string) {
	logger := newLogger()
	cfg := loadConfig()
	b := loadBank(cfg, logger)

	solved := 0
	if store := openStore(cfg, logger); store != nil {
		defer store.Close()
		if stats, err := store.Stats(); err == nil {
			solved = stats.Puzzles
		}
	}

	r := difficultyRange(cfg, solved)
	logger.Debug("picking puzzle", "min", r.Min, "max", r.Max, "solved", solved)

	p, err := b.Random(newRNG(), r.Min, r.Max)
	if err != nil {
		fail("%v", err)
	}

	fmt.Printf("Entry: %s (%d moves)\n", p.Entry, p.Len())
	printBoard(p.Start)
}
