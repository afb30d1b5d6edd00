// Package bank loads puzzle banks: an ordered list of hand-picked levels and a
// pool of extra puzzles bucketed by solution length for random play.
// This package depends on core but core does not depend on bank.
package bank

import (
	"errors"
	"fmt"
	"math/rand"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/hexslide/internal/hexslide/bank/formats"
	"github.com/vovakirdan/hexslide/internal/hexslide/core"
)

var (
	// ErrUnsolvedLevel reports a level entry whose stored solution does not
	// end with red on the center cell.
	ErrUnsolvedLevel = errors.New("level solution does not end solved")

	// ErrEmptyRange reports that no puzzle matches a requested length range.
	ErrEmptyRange = errors.New("no puzzles in range")
)

// Source names the bank section an entry came from.
type Source string

const (
	SourceLevels Source = "levels"
	SourcePool   Source = "pool"
)

// NoIndex marks a puzzle that is not a level.
const NoIndex = -1

// Puzzle is a decoded, validated bank entry.
type Puzzle struct {
	Entry    string
	Index    int // Level number (file position, zero-based), or NoIndex
	Start    core.Board
	Moves    []core.Move
	Solution []core.Board
}

// Len returns the length of the stored solution.
func (p Puzzle) Len() int {
	return len(p.Moves)
}

// Rejection records a bank entry that failed validation.
type Rejection struct {
	Entry  string
	Source Source
	Index  int
	Err    error
}

func (r Rejection) Error() string {
	return fmt.Sprintf("%s[%d] %q: %v", r.Source, r.Index, r.Entry, r.Err)
}

func (r Rejection) Unwrap() error {
	return r.Err
}

// Bank is an immutable, validated puzzle bank.
type Bank struct {
	Name       string
	Path       string
	levels     []levelSlot
	buckets    map[int][]Puzzle
	rejections []Rejection
}

// levelSlot holds the level at one file position, or why it was rejected.
type levelSlot struct {
	puzzle Puzzle
	err    error
}

// Option configures loading.
type Option func(*options)

type options struct {
	logger *log.Logger
}

// WithLogger sets the logger used to report rejected entries.
func WithLogger(l *log.Logger) Option {
	return func(o *options) {
		if l != nil {
			o.logger = l
		}
	}
}

// Load reads and validates a bank file. The format is picked by extension.
func Load(path string, opts ...Option) (*Bank, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("bank: reading %s: %w", path, err)
	}

	b, err := Parse(data, filepath.Ext(path), opts...)
	if err != nil {
		return nil, fmt.Errorf("bank: %s: %w", path, err)
	}
	b.Path = path
	if b.Name == "" {
		b.Name = strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	}
	return b, nil
}

// Parse validates bank data in the format named by ext. Bad entries never
// fail the load: they are logged and reported through Rejections.
func Parse(data []byte, ext string, opts ...Option) (*Bank, error) {
	o := options{logger: log.Default()}
	for _, opt := range opts {
		opt(&o)
	}

	raw, err := formats.Parse(data, ext)
	if err != nil {
		return nil, err
	}

	b := &Bank{
		Name:    raw.Name,
		buckets: make(map[int][]Puzzle),
	}

	reject := func(entry string, src Source, i int, err error) {
		r := Rejection{Entry: entry, Source: src, Index: i, Err: err}
		b.rejections = append(b.rejections, r)
		o.logger.Warn("rejected bank entry", "entry", entry, "source", src, "index", i, "error", err)
	}

	levelSet := make(map[string]bool, len(raw.Levels))
	for _, entry := range raw.Levels {
		levelSet[entry] = true
	}

	// Level n is always file entry n; rejected entries keep their slot.
	b.levels = make([]levelSlot, len(raw.Levels))
	for i, entry := range raw.Levels {
		p, err := decode(entry)
		if err == nil && !p.Solution[len(p.Solution)-1].Solved() {
			err = ErrUnsolvedLevel
		}
		if err != nil {
			reject(entry, SourceLevels, i, err)
			b.levels[i].err = b.rejections[len(b.rejections)-1]
			continue
		}
		p.Index = i
		b.levels[i].puzzle = p
	}

	seen := make(map[string]bool, len(raw.Pool))
	for i, entry := range raw.Pool {
		if levelSet[entry] || seen[entry] {
			o.logger.Debug("skipping duplicate pool entry", "entry", entry, "index", i)
			continue
		}
		seen[entry] = true

		p, err := decode(entry)
		if err != nil {
			reject(entry, SourcePool, i, err)
			continue
		}
		b.buckets[p.Len()] = append(b.buckets[p.Len()], p)
	}

	o.logger.Debug("loaded bank",
		"levels", len(b.Levels()),
		"pool", b.PoolSize(),
		"rejected", len(b.rejections))

	return b, nil
}

// Decode validates a single entry outside of any bank.
func Decode(entry string) (Puzzle, error) {
	return decode(entry)
}

func decode(entry string) (Puzzle, error) {
	start, moves, err := core.DecodeEntry(entry)
	if err != nil {
		return Puzzle{}, err
	}
	solution, err := core.BuildSolution(start, moves)
	if err != nil {
		return Puzzle{}, err
	}
	return Puzzle{
		Entry:    entry,
		Index:    NoIndex,
		Start:    start,
		Moves:    moves,
		Solution: solution,
	}, nil
}

// LevelCount returns the number of level entries in the file, rejected
// ones included.
func (b *Bank) LevelCount() int {
	return len(b.levels)
}

// Level returns level n (zero-based file position). A rejected level returns
// its Rejection.
func (b *Bank) Level(n int) (Puzzle, error) {
	if n < 0 || n >= len(b.levels) {
		return Puzzle{}, fmt.Errorf("bank: level %d out of range [0,%d)", n, len(b.levels))
	}
	if err := b.levels[n].err; err != nil {
		return Puzzle{}, fmt.Errorf("bank: level %d: %w", n, err)
	}
	return b.levels[n].puzzle, nil
}

// Levels returns the valid levels in bank order. Each keeps its Index.
func (b *Bank) Levels() []Puzzle {
	out := make([]Puzzle, 0, len(b.levels))
	for _, slot := range b.levels {
		if slot.err == nil {
			out = append(out, slot.puzzle)
		}
	}
	return out
}

// Buckets returns the solution lengths present in the pool, ascending.
func (b *Bank) Buckets() []int {
	lens := make([]int, 0, len(b.buckets))
	for n := range b.buckets {
		lens = append(lens, n)
	}
	sort.Ints(lens)
	return lens
}

// Bucket returns the pool puzzles whose solution has exactly n moves.
func (b *Bank) Bucket(n int) []Puzzle {
	src := b.buckets[n]
	out := make([]Puzzle, len(src))
	copy(out, src)
	return out
}

// PoolSize returns the number of valid pool puzzles.
func (b *Bank) PoolSize() int {
	n := 0
	for _, bucket := range b.buckets {
		n += len(bucket)
	}
	return n
}

// Rejections returns the entries that failed validation, in file order.
func (b *Bank) Rejections() []Rejection {
	out := make([]Rejection, len(b.rejections))
	copy(out, b.rejections)
	return out
}

// Random picks a pool puzzle uniformly among all puzzles whose solution length
// lies in [minMoves, maxMoves].
func (b *Bank) Random(rng *rand.Rand, minMoves, maxMoves int) (Puzzle, error) {
	total := 0
	for _, n := range b.Buckets() {
		if n >= minMoves && n <= maxMoves {
			total += len(b.buckets[n])
		}
	}
	if total == 0 {
		return Puzzle{}, fmt.Errorf("bank: %w: %d-%d moves", ErrEmptyRange, minMoves, maxMoves)
	}

	pick := rng.Intn(total)
	for _, n := range b.Buckets() {
		if n < minMoves || n > maxMoves {
			continue
		}
		if pick < len(b.buckets[n]) {
			return b.buckets[n][pick], nil
		}
		pick -= len(b.buckets[n])
	}
	panic("unreachable")
}

// Find looks an entry up among valid levels and pool. The level index is
// NoIndex for pool puzzles.
func (b *Bank) Find(entry string) (Puzzle, int, bool) {
	for _, p := range b.Levels() {
		if p.Entry == entry {
			return p, p.Index, true
		}
	}
	for _, bucket := range b.buckets {
		for _, p := range bucket {
			if p.Entry == entry {
				return p, NoIndex, true
			}
		}
	}
	return Puzzle{}, NoIndex, false
}
