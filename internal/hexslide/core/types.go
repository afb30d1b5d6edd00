// Package core provides the puzzle state engine for hexslide.
// This package is UI-agnostic and deterministic: every operation is a pure
// function over small value types.
package core

// Dir represents one of the six hex slide directions.
// The numeric values are part of the puzzle-bank move encoding.
type Dir uint8

const (
	DirUp Dir = iota
	DirDown
	DirUpRight
	DirUpLeft
	DirDownRight
	DirDownLeft
	DirCount // Sentinel value for iteration
)

// String returns the string representation of a direction.
func (d Dir) String() string {
	switch d {
	case DirUp:
		return "Up"
	case DirDown:
		return "Down"
	case DirUpRight:
		return "UpRight"
	case DirUpLeft:
		return "UpLeft"
	case DirDownRight:
		return "DownRight"
	case DirDownLeft:
		return "DownLeft"
	default:
		return "Unknown"
	}
}

// Opposite returns the opposite direction.
func (d Dir) Opposite() Dir {
	switch d {
	case DirUp:
		return DirDown
	case DirDown:
		return DirUp
	case DirUpRight:
		return DirDownLeft
	case DirDownLeft:
		return DirUpRight
	case DirUpLeft:
		return DirDownRight
	case DirDownRight:
		return DirUpLeft
	default:
		return d
	}
}

// Valid reports whether d is one of the six directions.
func (d Dir) Valid() bool {
	return d < DirCount
}

// AllDirs returns the six directions in encoding order.
func AllDirs() []Dir {
	return []Dir{DirUp, DirDown, DirUpRight, DirUpLeft, DirDownRight, DirDownLeft}
}
