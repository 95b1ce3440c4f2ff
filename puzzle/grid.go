package puzzle

import (
	"errors"
	"fmt"
	"slices"
)

const (
	// Barrier marks a cell that bounds wordspans. It is not a letter of
	// any alphabet.
	Barrier = '█'
	// Blank marks an unfilled cell.
	Blank = ' '
)

var ErrBadDimensions = errors.New("grid dimensions do not match backing")

// Grid is a rectangle of cells stored row-major. Its dimensions never
// change after construction.
type Grid struct {
	rows    int
	cols    int
	backing []rune
}

// NewGrid copies backing into a rows x cols grid.
func NewGrid(rows, cols int, backing []rune) (Grid, error) {
	if rows <= 0 || cols <= 0 || len(backing) != rows*cols {
		return Grid{}, fmt.Errorf("%w: %dx%d with %d cells", ErrBadDimensions, rows, cols, len(backing))
	}
	return Grid{rows: rows, cols: cols, backing: slices.Clone(backing)}, nil
}

func (g *Grid) Rows() int {
	return g.rows
}

func (g *Grid) Cols() int {
	return g.cols
}

func (g *Grid) index(row, col int) int {
	if row < 0 || row >= g.rows || col < 0 || col >= g.cols {
		panic(fmt.Sprintf("puzzle: cell (%d, %d) out of bounds for %dx%d grid",
			row, col, g.rows, g.cols))
	}
	return g.cols*row + col
}

func (g *Grid) Read(row, col int) rune {
	return g.backing[g.index(row, col)]
}

func (g *Grid) Write(row, col int, letter rune) {
	g.backing[g.index(row, col)] = letter
}

// dimensions returns the number of beams and the length of each beam
// when scanning in orientation o.
func (g *Grid) dimensions(o Orientation) (beams, span int) {
	switch o {
	case Across:
		return g.rows, g.cols
	case Down:
		return g.cols, g.rows
	}
	panic(fmt.Sprintf("puzzle: unknown orientation %d", int(o)))
}

func (g *Grid) orientedRead(o Orientation, this, cross int) rune {
	row, col := orientedToGrid(o, this, cross)
	return g.Read(row, col)
}

func (g *Grid) clone() Grid {
	return Grid{rows: g.rows, cols: g.cols, backing: slices.Clone(g.backing)}
}
