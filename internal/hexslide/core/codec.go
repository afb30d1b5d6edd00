package core

import (
	"fmt"
	"strconv"
	"strings"
)

// Entry layout limits.
const (
	MinPieces = 2
	MaxPieces = int(ColorCount)
	MaxMoves  = 35 // Largest count a single base-36 digit can hold
)

// DecodeEntry decodes a compressed puzzle-bank entry.
//
// Layout: one base-36 digit N (solution length), N base-36 encoded moves, then
// one base-36 starting cell per present piece in order R, G, [B, [Y, [O, [P]]]].
func DecodeEntry(entry string) (Board, []Move, error) {
	if entry == "" {
		return Board{}, nil, malformedEntry(entry, "empty")
	}

	digits := make([]int, len(entry))
	for i := 0; i < len(entry); i++ {
		v, ok := base36Digit(entry[i])
		if !ok {
			return Board{}, nil, malformedEntry(entry, "invalid base-36 character %q at %d", entry[i], i)
		}
		digits[i] = v
	}

	n := digits[0]
	positions := len(digits) - 1 - n
	if positions < MinPieces {
		return Board{}, nil, malformedEntry(entry, "declares %d moves but has %d characters", n, len(entry))
	}
	if positions > MaxPieces {
		return Board{}, nil, malformedEntry(entry, "%d starting cells, at most %d allowed", positions, MaxPieces)
	}

	moves := make([]Move, n)
	for i := 0; i < n; i++ {
		m := Move(digits[1+i])
		if !m.Valid() {
			return Board{}, nil, malformedEntry(entry, "move %d out of range", digits[1+i])
		}
		moves[i] = m
	}

	b := EmptyBoard()
	var seen [CellCount]bool
	for i, v := range digits[1+n:] {
		cell := Cell(v)
		if !cell.Valid() {
			return Board{}, nil, malformedEntry(entry, "cell %d out of range", v)
		}
		if seen[cell] {
			return Board{}, nil, malformedEntry(entry, "two pieces on cell %d", v)
		}
		seen[cell] = true
		b.cells[i] = cell
	}

	return b, moves, nil
}

// EncodeEntry builds the compressed puzzle-bank entry for a start board and its
// move list. Optional pieces must form a prefix of B, Y, O, P since the
// format only records how many pieces exist.
func EncodeEntry(start Board, moves []Move) (string, error) {
	if len(moves) > MaxMoves {
		return "", fmt.Errorf("%d moves, at most %d can be encoded", len(moves), MaxMoves)
	}
	if err := start.Validate(); err != nil {
		return "", err
	}

	var sb strings.Builder
	sb.WriteByte(base36Char(len(moves)))
	for _, m := range moves {
		if !m.Valid() {
			return "", fmt.Errorf("move %d out of range", int(m))
		}
		sb.WriteByte(base36Char(int(m)))
	}

	gap := false
	for _, c := range AllColors() {
		cell, ok := start.Cell(c)
		if !ok {
			gap = true
			continue
		}
		if gap {
			return "", fmt.Errorf("%s present after a missing color", c)
		}
		sb.WriteByte(base36Char(int(cell)))
	}
	return sb.String(), nil
}

// String serializes the board as "R-#,G-#[,B-#][,Y-#][,O-#][,P-#]".
func (b Board) String() string {
	parts := make([]string, 0, ColorCount)
	for _, p := range b.Pieces() {
		parts = append(parts, fmt.Sprintf("%c-%d", p.Color.Char(), p.Cell))
	}
	return strings.Join(parts, ",")
}

// ParseBoard parses the serialized "Color-Index" list produced by Board.String.
func ParseBoard(s string) (Board, error) {
	b := EmptyBoard()
	if strings.TrimSpace(s) == "" {
		return b, malformedBoard(s, "empty")
	}

	for _, seg := range strings.Split(s, ",") {
		seg = strings.TrimSpace(seg)
		name, idx, found := strings.Cut(seg, "-")
		if !found {
			return b, malformedBoard(s, "segment %q is not Color-Index", seg)
		}
		color, ok := ParseColor(name)
		if !ok || len(name) != 1 {
			return b, malformedBoard(s, "unknown color %q", name)
		}
		v, err := strconv.Atoi(idx)
		if err != nil {
			return b, malformedBoard(s, "segment %q has a bad index", seg)
		}
		if v < 0 || v >= CellCount {
			return b, malformedBoard(s, "cell %d out of range", v)
		}
		cell := Cell(v)
		if b.Has(color) {
			return b, malformedBoard(s, "%s listed twice", color)
		}
		if b.Occupied(cell) {
			return b, malformedBoard(s, "two pieces on cell %d", v)
		}
		b.cells[color] = cell
	}

	if !b.Has(ColorRed) || !b.Has(ColorGreen) {
		return b, malformedBoard(s, "red and green are required")
	}
	return b, nil
}

// MustParseBoard is like ParseBoard but panics on error.
// Intended for tests and static tables.
func MustParseBoard(s string) Board {
	b, err := ParseBoard(s)
	if err != nil {
		panic(err)
	}
	return b
}

// base36Digit decodes one base-36 character (either case).
func base36Digit(ch byte) (int, bool) {
	switch {
	case ch >= '0' && ch <= '9':
		return int(ch - '0'), true
	case ch >= 'a' && ch <= 'z':
		return int(ch-'a') + 10, true
	case ch >= 'A' && ch <= 'Z':
		return int(ch-'A') + 10, true
	default:
		return 0, false
	}
}

// base36Char encodes a value in [0,35] as a lower-case base-36 character.
func base36Char(v int) byte {
	return strconv.FormatInt(int64(v), 36)[0]
}
