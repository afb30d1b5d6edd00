package core_test

import (
	"errors"
	"testing"

	"github.com/vovakirdan/hexslide/internal/hexslide/core"
)

func TestDecodeEntry(t *testing.T) {
	board, moves, err := core.DecodeEntry("2912og")
	if err != nil {
		t.Fatalf("DecodeEntry failed: %v", err)
	}

	if got := board.String(); got != "R-2,G-24,B-16" {
		t.Errorf("expected board R-2,G-24,B-16, got %s", got)
	}
	if len(moves) != 2 {
		t.Fatalf("expected 2 moves, got %d", len(moves))
	}
	if moves[0] != core.NewMove(core.ColorGreen, core.DirUpLeft) {
		t.Errorf("expected first move green UpLeft, got %s", moves[0])
	}
	if moves[1] != core.NewMove(core.ColorRed, core.DirDown) {
		t.Errorf("expected second move red Down, got %s", moves[1])
	}
}

func TestDecodeEntryUpperCase(t *testing.T) {
	lower, _, err := core.DecodeEntry("232q7d")
	if err != nil {
		t.Fatalf("DecodeEntry failed: %v", err)
	}
	upper, _, err := core.DecodeEntry("232Q7D")
	if err != nil {
		t.Fatalf("DecodeEntry failed: %v", err)
	}
	if lower != upper {
		t.Errorf("case should not matter: %s vs %s", lower, upper)
	}
}

func TestDecodeEntryMalformed(t *testing.T) {
	tests := []struct {
		name  string
		entry string
	}{
		{"empty", ""},
		{"too short for declared moves", "9ab"},
		{"only one piece", "0c"},
		{"invalid character", "1!2h"},
		{"too many pieces", "01234567"},
		{"cell out of range", "00r"},
		{"shared cell", "0cc"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, _, err := core.DecodeEntry(tc.entry)
			if !errors.Is(err, core.ErrMalformedEntry) {
				t.Errorf("DecodeEntry(%q): expected ErrMalformedEntry, got %v", tc.entry, err)
			}
		})
	}
}

func TestEncodeEntryRoundTrip(t *testing.T) {
	for _, entry := range []string{"112h", "13jb", "2912og", "232q7d", "34f10dog", "0c5"} {
		board, moves, err := core.DecodeEntry(entry)
		if err != nil {
			t.Fatalf("DecodeEntry(%q) failed: %v", entry, err)
		}
		got, err := core.EncodeEntry(board, moves)
		if err != nil {
			t.Fatalf("EncodeEntry failed: %v", err)
		}
		if got != entry {
			t.Errorf("expected %q, got %q", entry, got)
		}
	}
}

func TestEncodeEntryRejectsColorGap(t *testing.T) {
	// Yellow without Blue cannot be expressed in the compressed form.
	b := core.NewBoard(0, 1, core.OffBoard, 3)
	if _, err := core.EncodeEntry(b, nil); err == nil {
		t.Error("expected error for board with a color gap")
	}
}

func TestBoardStringParseRoundTrip(t *testing.T) {
	boards := []core.Board{
		core.NewBoard(0, 1),
		core.NewBoard(12, 3, 7),
		core.NewBoard(25, 26, 0, 4, 20, 24),
		core.NewBoard(5, 6, core.OffBoard, core.OffBoard, 9),
	}

	for _, b := range boards {
		s := b.String()
		parsed, err := core.ParseBoard(s)
		if err != nil {
			t.Fatalf("ParseBoard(%q) failed: %v", s, err)
		}
		if parsed != b {
			t.Errorf("round trip mismatch: %s -> %s", s, parsed)
		}
	}
}

func TestBoardStringOrder(t *testing.T) {
	b := core.NewBoard(12, 3).With(core.ColorPurple, 26).With(core.ColorBlue, 0)
	if got := b.String(); got != "R-12,G-3,B-0,P-26" {
		t.Errorf("expected R-12,G-3,B-0,P-26, got %s", got)
	}
}

func TestParseBoardMalformed(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{"empty", ""},
		{"no hyphen", "R12,G-3"},
		{"unknown color", "R-12,X-3"},
		{"full color name", "red-12,G-3"},
		{"bad index", "R-x,G-3"},
		{"index out of range", "R-27,G-3"},
		{"negative index", "R--1,G-3"},
		{"duplicate color", "R-1,R-2,G-3"},
		{"shared cell", "R-3,G-3"},
		{"missing green", "R-3,B-4"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := core.ParseBoard(tc.input)
			if !errors.Is(err, core.ErrMalformedBoard) {
				t.Errorf("ParseBoard(%q): expected ErrMalformedBoard, got %v", tc.input, err)
			}
		})
	}
}

func TestBoardSolved(t *testing.T) {
	if !core.MustParseBoard("R-12,G-3").Solved() {
		t.Error("R-12,G-3 should be solved")
	}
	if core.MustParseBoard("R-5,G-3").Solved() {
		t.Error("R-5,G-3 should not be solved")
	}
}

func TestColorParsing(t *testing.T) {
	tests := []struct {
		input    string
		expected core.Color
		ok       bool
	}{
		{"R", core.ColorRed, true},
		{"g", core.ColorGreen, true},
		{"blue", core.ColorBlue, true},
		{"YELLOW", core.ColorYellow, true},
		{"o", core.ColorOrange, true},
		{"purple", core.ColorPurple, true},
		{"cyan", core.ColorRed, false},
	}

	for _, tc := range tests {
		color, ok := core.ParseColor(tc.input)
		if ok != tc.ok {
			t.Errorf("ParseColor(%q): expected ok=%v, got %v", tc.input, tc.ok, ok)
		}
		if tc.ok && color != tc.expected {
			t.Errorf("ParseColor(%q): expected %v, got %v", tc.input, tc.expected, color)
		}
	}
}
