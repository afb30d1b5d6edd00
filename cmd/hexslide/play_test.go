package main

import (
	"bufio"
	"strings"
	"testing"

	"github.com/vovakirdan/hexslide/internal/config"
	"github.com/vovakirdan/hexslide/internal/hexslide"
	"github.com/vovakirdan/hexslide/internal/hexslide/bank"
	"github.com/vovakirdan/hexslide/internal/hexslide/core"
)

func newPlaySession(t *testing.T, entry string) *hexslide.Session {
	t.Helper()
	p, err := bank.Decode(entry)
	if err != nil {
		t.Fatalf("Decode(%q) failed: %v", entry, err)
	}
	return hexslide.NewSession(p)
}

func TestPlayLoop(t *testing.T) {
	tests := []struct {
		name   string
		input  string
		solved bool
		moves  int
	}{
		{"from-to moves", "24 17\n2 12\n", true, 2},
		{"select then drop", "s 24\n17\ns 2\n12\n", true, 2},
		{"hints", "h\nh\n", true, 0},
		{"bad input ignored", "x y\n2 7\n\ns 0\nu\n24 17\n2 12\n", true, 2},
		{"quit", "24 17\nq\n2 12\n", false, 1},
		{"eof", "24 17\n", false, 1},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			s := newPlaySession(t, "2912og")
			solved := playLoop(s, bufio.NewScanner(strings.NewReader(tc.input)))

			if solved != tc.solved {
				t.Errorf("expected solved=%v, got %v", tc.solved, solved)
			}
			if s.Moves() != tc.moves {
				t.Errorf("expected %d moves, got %d", tc.moves, s.Moves())
			}
		})
	}
}

func TestParseCell(t *testing.T) {
	if c, err := parseCell(" 26 "); err != nil || c != 26 {
		t.Errorf("expected 26, got %d (%v)", c, err)
	}
	for _, s := range []string{"-1", "27", "a", ""} {
		if _, err := parseCell(s); err == nil {
			t.Errorf("parseCell(%q): expected error", s)
		}
	}
}

func TestParseBoardArg(t *testing.T) {
	fromEntry, err := parseBoardArg("2912og")
	if err != nil {
		t.Fatalf("entry: %v", err)
	}
	fromBoard, err := parseBoardArg("R-2,G-24,B-16")
	if err != nil {
		t.Fatalf("board: %v", err)
	}
	if fromEntry != fromBoard {
		t.Errorf("expected equal boards, got %s and %s", fromEntry, fromBoard)
	}
	if _, err := parseBoardArg("R-2,G-2"); err == nil {
		t.Error("expected error for shared cell")
	}
}

func TestRenderBoardPlain(t *testing.T) {
	orig := colorOutput
	colorOutput = func() bool { return false }
	defer func() { colorOutput = orig }()

	b := core.MustParseBoard("R-12,G-7")
	out := renderBoard(b, core.OffBoard, b.Reachable(12))

	if strings.Count(out, "o") != 5 {
		t.Errorf("expected 5 stops, got:\n%s", out)
	}
	if strings.Count(out, "-") != 5 {
		t.Errorf("expected 5 pass-through cells, got:\n%s", out)
	}
	if !strings.Contains(out, "R") || !strings.Contains(out, "G") {
		t.Errorf("expected pieces drawn, got:\n%s", out)
	}
}

func TestSolverDepth(t *testing.T) {
	tests := []struct {
		maxDepth int
		expected int
	}{
		{0, core.MaxMoves},
		{-3, core.MaxMoves},
		{12, 12},
		{core.MaxMoves, core.MaxMoves},
		{100, core.MaxMoves},
	}

	for _, tc := range tests {
		if got := solverDepth(config.SolverConfig{MaxDepth: tc.maxDepth}); got != tc.expected {
			t.Errorf("max_depth %d: expected %d, got %d", tc.maxDepth, tc.expected, got)
		}
	}
}
