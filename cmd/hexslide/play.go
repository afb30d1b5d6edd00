package main

import (
	"bufio"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/hexslide/internal/hexslide"
	"github.com/vovakirdan/hexslide/internal/hexslide/bank"
	"github.com/vovakirdan/hexslide/internal/hexslide/core"
	"github.com/vovakirdan/hexslide/internal/storage"
)

var playCmd = &cobra.Command{
	Use:   "play [level]",
	Short: "Play a level or a random puzzle",
	Long: `Play a level (1-based) or, without an argument, a random pool puzzle.

Controls (type a line, then Enter):
  <from> <to>  - Slide the piece on <from> so it stops on <to>
  s <cell>     - Select a piece and show where it can slide
  <to>         - Slide the selected piece to <to>
  h            - Hint: play the next move of the solution
  u            - Undo
  r            - Restart
  i            - Show cell numbers
  q            - Quit

Examples:
  hexslide play 1
  hexslide play --difficulty easy`,
	Args: cobra.RangeArgs(0, 1),
	Run:  runPlay,
}

func runPlay(cmd *cobra.Command, args []string) {
	logger := newLogger()
	cfg := loadConfig()
	b := loadBank(cfg, logger)

	store := openStore(cfg, logger)
	if store != nil {
		defer store.Close()
	}

	level := storage.NoLevel
	var p bank.Puzzle
	if len(args) == 1 {
		n, err := strconv.Atoi(args[0])
		if err != nil {
			fail("invalid level %q", args[0])
		}
		if p, err = b.Level(n - 1); err != nil {
			fail("%v", err)
		}
		level = p.Index
	} else {
		solved := 0
		if store != nil {
			if stats, err := store.Stats(); err == nil {
				solved = stats.Puzzles
			}
		}
		r := difficultyRange(cfg, solved)
		var err error
		if p, err = b.Random(newRNG(), r.Min, r.Max); err != nil {
			fail("%v", err)
		}
	}

	s := hexslide.NewSession(p)
	if level >= 0 {
		fmt.Printf("Level %d - solvable in %d moves\n", level+1, p.Len())
	} else {
		fmt.Printf("Puzzle %s - solvable in %d moves\n", p.Entry, p.Len())
	}

	if playLoop(s, bufio.NewScanner(os.Stdin)) {
		recordSolve(store, logger, s, level)
	}
}

// playLoop runs the line-based input loop. Returns true if the puzzle was solved.
func playLoop(s *hexslide.Session, in *bufio.Scanner) bool {
	reach := core.Reach{}
	for {
		fmt.Println()
		fmt.Print(renderBoard(s.Board(), s.Selected(), reach))
		if s.Solved() {
			fmt.Printf("Solved in %d moves (best %d), %d hints.\n", s.Moves(), s.Puzzle().Len(), s.HintsUsed())
			return true
		}
		fmt.Printf("moves %d > ", s.Moves())

		if !in.Scan() {
			fmt.Println()
			return false
		}
		fields := strings.Fields(in.Text())
		reach = core.Reach{}
		if len(fields) == 0 {
			continue
		}

		switch fields[0] {
		case "q", "quit":
			return false
		case "h", "hint":
			if !s.Hint() {
				fmt.Println("No hint available.")
			}
		case "u", "undo":
			if !s.Undo() {
				fmt.Println("Nothing to undo.")
			}
		case "r", "restart":
			s.Reset()
		case "i", "index":
			fmt.Print(renderIndex())
		case "s", "select":
			if len(fields) != 2 {
				fmt.Println("Usage: s <cell>")
				continue
			}
			cell, err := parseCell(fields[1])
			if err != nil {
				fmt.Println(err)
				continue
			}
			reach = s.Select(cell)
			if s.Selected() == core.OffBoard {
				fmt.Printf("No piece on cell %d.\n", cell)
			}
		default:
			playMove(s, fields, &reach)
		}
	}
}

func playMove(s *hexslide.Session, fields []string, reach *core.Reach) {
	cells := make([]core.Cell, 0, 2)
	for _, f := range fields {
		cell, err := parseCell(f)
		if err != nil {
			fmt.Println(err)
			return
		}
		cells = append(cells, cell)
	}

	switch len(cells) {
	case 1:
		selected := s.Selected()
		if selected == core.OffBoard {
			fmt.Println("Select a piece first (s <cell>) or enter <from> <to>.")
			return
		}
		if !s.MoveSelected(cells[0]) {
			fmt.Println("Can't stop there.")
			*reach = s.Select(selected)
		}
	case 2:
		if !s.Move(cells[0], cells[1]) {
			fmt.Println("Can't stop there.")
		}
	default:
		fmt.Println("Enter <from> <to>.")
	}
}

func recordSolve(store *storage.Store, logger *log.Logger, s *hexslide.Session, level int) {
	if store == nil {
		return
	}
	snap := s.Snapshot()
	_, err := store.SaveSolve(storage.Solve{
		Puzzle:  snap.Entry,
		Level:   level,
		Moves:   snap.Moves,
		Optimal: snap.Optimal,
		Hints:   snap.Hints,
	})
	if err != nil {
		logger.Warn("could not save progress", "error", err)
		return
	}
	logger.Debug("saved solve", "puzzle", snap.Entry, "moves", snap.Moves, "hints", snap.Hints)
}
