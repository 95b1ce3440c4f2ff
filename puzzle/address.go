package puzzle

import (
	"fmt"
	"unicode"

	"github.com/domino14/xwordfill/lexicon"
)

// A Locale is a single cell, zero-based.
type Locale struct {
	Row int
	Col int
}

// A WordspanAddress identifies a slot: a maximal run of non-barrier cells
// in one orientation.
type WordspanAddress struct {
	StartRow    int
	StartCol    int
	Orientation Orientation
	Length      int
}

func NewWordspanAddress(startRow, startCol int, o Orientation, length int) WordspanAddress {
	return WordspanAddress{
		StartRow:    startRow,
		StartCol:    startCol,
		Orientation: o,
		Length:      length,
	}
}

// orientedAddress builds an address from scan coordinates.
func orientedAddress(o Orientation, this, cross, length int) WordspanAddress {
	row, col := orientedToGrid(o, this, cross)
	return NewWordspanAddress(row, col, o, length)
}

// Locale returns the i-th cell of the wordspan.
func (a WordspanAddress) Locale(i int) Locale {
	this, cross := gridToOriented(a.Orientation, a.StartRow, a.StartCol)
	row, col := orientedToGrid(a.Orientation, this, cross+i)
	return Locale{Row: row, Col: col}
}

// Locales returns the cells of the wordspan in reading order.
func (a WordspanAddress) Locales() []Locale {
	locales := make([]Locale, a.Length)
	for i := range locales {
		locales[i] = a.Locale(i)
	}
	return locales
}

// Offset returns the position of l within the wordspan.
func (a WordspanAddress) Offset(l Locale) (int, bool) {
	this, cross := gridToOriented(a.Orientation, l.Row, l.Col)
	startThis, startCross := gridToOriented(a.Orientation, a.StartRow, a.StartCol)
	if this != startThis || cross < startCross || cross >= startCross+a.Length {
		return 0, false
	}
	return cross - startCross, true
}

func (a WordspanAddress) Contains(l Locale) bool {
	_, ok := a.Offset(l)
	return ok
}

func (a WordspanAddress) String() string {
	return fmt.Sprintf("%s(%d,%d)x%d", a.Orientation, a.StartRow, a.StartCol, a.Length)
}

// A CrossRequirement summarizes the perpendicular wordspan through one
// cell of a wordspan: its total length, the run of letters already
// filled at its start, and where the shared cell sits in it. It is a
// snapshot and does not follow later writes.
type CrossRequirement struct {
	Length   int
	Prefix   []rune
	Crossing int
}

// Admits reports whether letter may be placed in the shared cell without
// ruling out every word for the perpendicular wordspan.
func (c CrossRequirement) Admits(letter rune, lex lexicon.PrefixChecker) bool {
	switch {
	case c.Crossing < len(c.Prefix):
		return unicode.ToUpper(c.Prefix[c.Crossing]) == unicode.ToUpper(letter) &&
			lex.HasPrefix(c.Prefix, c.Length)
	case c.Crossing == len(c.Prefix):
		extended := make([]rune, 0, len(c.Prefix)+1)
		extended = append(extended, c.Prefix...)
		extended = append(extended, letter)
		return lex.HasPrefix(extended, c.Length)
	default:
		// Unfilled cells sit between the prefix and the crossing.
		return lex.HasPrefix(c.Prefix, c.Length)
	}
}
