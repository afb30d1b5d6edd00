// hexslide is a sliding-hexagon puzzle game for the terminal.
//
// Usage:
//
//	hexslide levels                 - List levels and progress
//	hexslide play [level]           - Play a level (or a random pool puzzle)
//	hexslide show <entry|board>     - Draw a board
//	hexslide solve <entry>          - Print every state of the stored solution
//	hexslide hint <entry> <board>   - Print the next state toward the solution
//	hexslide move <board> <from> <to> - Resolve a player move
//	hexslide reach <board> <cell>   - Show where a piece can slide
//	hexslide random                 - Pick a pool puzzle by difficulty
//	hexslide validate               - Validate the puzzle bank
//	hexslide progress               - Show stored progress
//
// Global flags:
//
//	--config <path>  - Config file (default: search ~/.hexslide, ./configs, embedded)
//	--bank <path>    - Puzzle bank file (default: embedded bank)
//	--db <path>      - Progress database path
//	--seed <value>   - RNG seed for random picks
//	--verbose        - Debug logging
package main

import (
	"fmt"
	"math/rand"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/hexslide/internal/config"
	"github.com/vovakirdan/hexslide/internal/hexslide/bank"
	"github.com/vovakirdan/hexslide/internal/hexslide/core"
	"github.com/vovakirdan/hexslide/internal/storage"
)

var (
	// Global flags
	flagConfig   string
	flagBankPath string
	flagDBPath   string
	flagSeed     int64
	flagVerbose  bool
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "hexslide",
	Short: "hexslide - Slide hexagons until red reaches the center",
	Long: `hexslide is a sliding puzzle on a 27-cell hexagonal board. Pieces slide
in one of six directions until they hit another piece or the edge. Get the
red piece onto the center cell.

Available commands:
  levels    - List levels and progress
  play      - Play a level or a random puzzle
  show      - Draw a board
  solve     - Print a puzzle's stored solution
  hint      - Print the next state toward the solution
  move      - Resolve a player move
  reach     - Show where a piece can slide
  random    - Pick a pool puzzle by difficulty
  validate  - Validate the puzzle bank
  progress  - Show stored progress

Examples:
  hexslide levels
  hexslide play 3
  hexslide show 2912og
  hexslide reach R-12,G-7 12
  hexslide random --difficulty hard`,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to config YAML")
	rootCmd.PersistentFlags().StringVar(&flagBankPath, "bank", "", "Path to puzzle bank (.txt, .bank, .yaml)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "", "Path to progress database (default from config)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().BoolVarP(&flagVerbose, "verbose", "v", false, "Enable debug logging")

	// Add subcommands
	rootCmd.AddCommand(levelsCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(showCmd)
	rootCmd.AddCommand(solveCmd)
	rootCmd.AddCommand(hintCmd)
	rootCmd.AddCommand(moveCmd)
	rootCmd.AddCommand(reachCmd)
	rootCmd.AddCommand(randomCmd)
	rootCmd.AddCommand(validateCmd)
	rootCmd.AddCommand(progressCmd)
}

// fail prints an error and exits.
func fail(format string, args ...any) {
	fmt.Fprintf(os.Stderr, "Error: "+format+"\n", args...)
	os.Exit(1)
}

func newLogger() *log.Logger {
	logger := log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: true,
		Prefix:          "hexslide",
	})
	if flagVerbose {
		logger.SetLevel(log.DebugLevel)
	}
	return logger
}

func loadConfig() config.HexslideConfig {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		fail("loading config: %v", err)
	}
	if flagBankPath != "" {
		cfg.Bank.Path = flagBankPath
	}
	if flagDBPath != "" {
		cfg.Storage.Path = flagDBPath
	}
	return cfg
}

// loadBank loads the configured bank, or the embedded one.
func loadBank(cfg config.HexslideConfig, logger *log.Logger) *bank.Bank {
	var (
		b   *bank.Bank
		err error
	)
	if cfg.Bank.Path != "" {
		b, err = bank.Load(cfg.Bank.Path, bank.WithLogger(logger))
	} else {
		b, err = bank.Parse(config.DefaultBank(), ".txt", bank.WithLogger(logger))
		if b != nil {
			b.Name = "default"
		}
	}
	if err != nil {
		fail("loading bank: %v", err)
	}
	return b
}

// openStore opens the progress database. Progress is optional: failures are
// logged and play continues without it.
func openStore(cfg config.HexslideConfig, logger *log.Logger) *storage.Store {
	if !cfg.Storage.Enabled {
		return nil
	}
	store, err := storage.Open(cfg.Storage.Path)
	if err != nil {
		logger.Warn("could not open progress database", "error", err)
		return nil
	}
	return store
}

func newRNG() *rand.Rand {
	seed := flagSeed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return rand.New(rand.NewSource(seed))
}

// parseBoardArg accepts either a board string ("R-12,G-7") or a bank entry.
func parseBoardArg(s string) (core.Board, error) {
	if strings.Contains(s, "-") {
		return core.ParseBoard(s)
	}
	b, _, err := core.DecodeEntry(s)
	return b, err
}

func parseCell(s string) (core.Cell, error) {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil || n < 0 || n >= core.CellCount {
		return core.OffBoard, fmt.Errorf("invalid cell %q (expected 0-%d)", s, core.CellCount-1)
	}
	return core.Cell(n), nil
}
