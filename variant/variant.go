package variant

import (
	"errors"
	"fmt"

	"github.com/samber/lo"

	"github.com/domino14/xwordfill/puzzle"
)

type Variant string

const (
	VarAmerican Variant = "american"
	VarBritish  Variant = "british"
	// Freestyle grids have no shape conventions at all.
	VarFreestyle Variant = "freestyle"
)

var (
	ErrSlotTooShort = errors.New("wordspan shorter than variant allows")
	ErrAsymmetric   = errors.New("barriers are not rotationally symmetric")
)

// MinWordspanLength is the shortest entry a grid of this variant may have.
func (v Variant) MinWordspanLength() int {
	switch v {
	case VarAmerican:
		return 3
	case VarBritish:
		return 2
	}
	return 1
}

// Symmetric reports whether barriers must have 180 degree rotational
// symmetry.
func (v Variant) Symmetric() bool {
	return v == VarAmerican || v == VarBritish
}

// Check verifies that the puzzle's shape follows the variant's conventions.
func (v Variant) Check(p *puzzle.Puzzle) error {
	minLength := v.MinWordspanLength()
	short, found := lo.Find(p.WordspanAddresses(), func(a puzzle.WordspanAddress) bool {
		return a.Length < minLength
	})
	if found {
		return fmt.Errorf("%w: %v in %s grid", ErrSlotTooShort, short, v)
	}
	if v.Symmetric() {
		rows, cols := p.Rows(), p.Cols()
		for r := 0; r < rows; r++ {
			for c := 0; c < cols; c++ {
				here := p.Read(r, c) == puzzle.Barrier
				there := p.Read(rows-1-r, cols-1-c) == puzzle.Barrier
				if here != there {
					return fmt.Errorf("%w: (%d, %d)", ErrAsymmetric, r, c)
				}
			}
		}
	}
	return nil
}
