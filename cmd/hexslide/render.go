package main

import (
	"fmt"
	"os"
	"strconv"

	"github.com/charmbracelet/lipgloss"
	"golang.org/x/term"

	"github.com/vovakirdan/hexslide/internal/hexslide/core"
)

var pieceStyles = map[core.Color]lipgloss.Style{
	core.ColorRed:    lipgloss.NewStyle().Foreground(lipgloss.Color("9")).Bold(true),
	core.ColorGreen:  lipgloss.NewStyle().Foreground(lipgloss.Color("10")).Bold(true),
	core.ColorBlue:   lipgloss.NewStyle().Foreground(lipgloss.Color("12")).Bold(true),
	core.ColorYellow: lipgloss.NewStyle().Foreground(lipgloss.Color("11")).Bold(true),
	core.ColorOrange: lipgloss.NewStyle().Foreground(lipgloss.Color("208")).Bold(true),
	core.ColorPurple: lipgloss.NewStyle().Foreground(lipgloss.Color("13")).Bold(true),
}

var (
	emptyStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("245"))
	centerStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("9"))
	stopStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("14")).Bold(true)
	passStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("6"))
	selectedStyle = lipgloss.NewStyle().Reverse(true)
)

// colorOutput reports whether stdout is a terminal.
var colorOutput = func() bool {
	return term.IsTerminal(int(os.Stdout.Fd()))
}

// renderBoard draws a board. Stops are drawn as 'o', pass-through cells as
// '-', the empty center as '+'.
func renderBoard(b core.Board, selected core.Cell, reach core.Reach) string {
	color := colorOutput()
	style := func(s lipgloss.Style, g string) string {
		if !color {
			return g
		}
		return s.Render(g)
	}

	return core.RenderGrid(func(cell core.Cell) string {
		if c, ok := b.PieceAt(cell); ok {
			g := style(pieceStyles[c], string(c.Char()))
			if cell == selected && color {
				g = selectedStyle.Render(string(c.Char()))
			}
			return g
		}
		switch {
		case reach.IsStop(cell):
			return style(stopStyle, "o")
		case reach.IsPassThrough(cell):
			return style(passStyle, "-")
		case cell == core.CenterCell:
			return style(centerStyle, "+")
		default:
			return style(emptyStyle, ".")
		}
	})
}

// renderIndex draws each cell's base-36 digit, as used by bank entries.
func renderIndex() string {
	return core.RenderGrid(func(cell core.Cell) string {
		return strconv.FormatInt(int64(cell), 36)
	})
}

func printBoard(b core.Board) {
	fmt.Print(renderBoard(b, core.OffBoard, core.Reach{}))
	fmt.Println(b.String())
}
