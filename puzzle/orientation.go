package puzzle

import "fmt"

// Orientation is the direction a wordspan runs in.
type Orientation int

const (
	Across Orientation = iota
	Down
)

// Reverse returns the perpendicular orientation.
func (o Orientation) Reverse() Orientation {
	switch o {
	case Across:
		return Down
	case Down:
		return Across
	}
	panic(fmt.Sprintf("puzzle: unknown orientation %d", int(o)))
}

func (o Orientation) String() string {
	switch o {
	case Across:
		return "across"
	case Down:
		return "down"
	}
	return fmt.Sprintf("Orientation(%d)", int(o))
}

// The scan over a grid is written in terms of a "this" coordinate, the
// beam being scanned (a row for Across, a column for Down), and a "cross"
// coordinate along that beam. These two functions map between that frame
// and (row, col).

func orientedToGrid(o Orientation, this, cross int) (row, col int) {
	switch o {
	case Across:
		return this, cross
	case Down:
		return cross, this
	}
	panic(fmt.Sprintf("puzzle: unknown orientation %d", int(o)))
}

func gridToOriented(o Orientation, row, col int) (this, cross int) {
	switch o {
	case Across:
		return row, col
	case Down:
		return col, row
	}
	panic(fmt.Sprintf("puzzle: unknown orientation %d", int(o)))
}
