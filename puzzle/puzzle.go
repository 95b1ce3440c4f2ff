// Package puzzle models a crossword grid and the wordspans (slots) that
// its barrier cells carve out of it.
package puzzle

import (
	"fmt"
	"slices"

	"github.com/rs/zerolog/log"
	"github.com/samber/lo"

	"github.com/domino14/xwordfill/lexicon"
)

// Puzzle is a Grid together with its wordspan geometry. A Puzzle is owned
// by one solver at a time; branches of a search should each work on a
// Clone.
type Puzzle struct {
	Grid
}

func New(rows, cols int, backing []rune) (*Puzzle, error) {
	g, err := NewGrid(rows, cols, backing)
	if err != nil {
		return nil, err
	}
	return &Puzzle{Grid: g}, nil
}

func (p *Puzzle) Clone() *Puzzle {
	return &Puzzle{Grid: p.clone()}
}

// ReadWordspan returns a copy of the letters at address.
func (p *Puzzle) ReadWordspan(address WordspanAddress) []rune {
	if address.Length == 0 {
		return []rune{}
	}
	start := p.index(address.StartRow, address.StartCol)
	last := address.Locale(address.Length - 1)
	p.index(last.Row, last.Col)

	switch address.Orientation {
	case Across:
		return slices.Clone(p.backing[start : start+address.Length])
	case Down:
		word := make([]rune, address.Length)
		for i := range word {
			word[i] = p.backing[start+p.cols*i]
		}
		return word
	}
	panic(fmt.Sprintf("puzzle: unknown orientation %d", int(address.Orientation)))
}

// WriteWordspan writes word into the cells of address. The word must be
// exactly as long as the address.
func (p *Puzzle) WriteWordspan(address WordspanAddress, word []rune) {
	if len(word) != address.Length {
		panic(fmt.Sprintf("puzzle: cannot write %d letters into %v", len(word), address))
	}
	for i, letter := range word {
		l := address.Locale(i)
		p.Write(l.Row, l.Col, letter)
	}
}

// OrientedWordspanAddresses scans each beam (row for Across, column for
// Down) and returns every maximal run of non-barrier cells, in reading
// order.
func (p *Puzzle) OrientedWordspanAddresses(o Orientation) []WordspanAddress {
	beams, span := p.dimensions(o)
	var addresses []WordspanAddress
	for this := 0; this < beams; this++ {
		open, start := false, 0
		for cross := 0; cross < span; cross++ {
			barrier := p.orientedRead(o, this, cross) == Barrier
			switch {
			case !barrier && !open:
				open, start = true, cross
			case barrier && open:
				addresses = append(addresses, orientedAddress(o, this, start, cross-start))
				open = false
			}
		}
		if open {
			addresses = append(addresses, orientedAddress(o, this, start, span-start))
		}
	}
	return addresses
}

// WordspanAddresses returns all Across addresses followed by all Down
// addresses. Callers may rely on this order.
func (p *Puzzle) WordspanAddresses() []WordspanAddress {
	return append(p.OrientedWordspanAddresses(Across), p.OrientedWordspanAddresses(Down)...)
}

// WordspanAt returns the wordspan of orientation o covering l. Barrier
// cells are covered by none.
func (p *Puzzle) WordspanAt(l Locale, o Orientation) (WordspanAddress, bool) {
	p.index(l.Row, l.Col)
	return lo.Find(p.OrientedWordspanAddresses(o), func(a WordspanAddress) bool {
		return a.Contains(l)
	})
}

// GatherCrossRequirements returns, for each cell of address in order, the
// requirement imposed by the perpendicular wordspan through that cell.
//
// Perpendicular addresses come out of the scan in reading order, which is
// also the order address's cells meet them, so one forward pass suffices.
func (p *Puzzle) GatherCrossRequirements(address WordspanAddress) []CrossRequirement {
	perpendicular := p.OrientedWordspanAddresses(address.Orientation.Reverse())
	requirements := make([]CrossRequirement, 0, address.Length)
	next := 0
	for _, l := range address.Locales() {
		for next < len(perpendicular) && !perpendicular[next].Contains(l) {
			next++
		}
		if next == len(perpendicular) {
			panic(fmt.Sprintf("puzzle: no %s wordspan covers (%d, %d) of %v",
				address.Orientation.Reverse(), l.Row, l.Col, address))
		}
		requirements = append(requirements, p.crossRequirement(perpendicular[next], l))
		next++
	}
	return requirements
}

func (p *Puzzle) crossRequirement(cross WordspanAddress, l Locale) CrossRequirement {
	word := p.ReadWordspan(cross)
	prefix := word
	if i := slices.Index(word, Blank); i >= 0 {
		prefix = word[:i]
	}
	crossing, _ := cross.Offset(l)
	return CrossRequirement{Length: cross.Length, Prefix: prefix, Crossing: crossing}
}

// IsFull reports whether no cell is blank.
func (p *Puzzle) IsFull() bool {
	return !slices.Contains(p.backing, Blank)
}

// IsSolved reports whether every wordspan reads as a word lex accepts.
// lex must cover the longest wordspan in the puzzle.
func (p *Puzzle) IsSolved(lex lexicon.Checker) bool {
	return lo.EveryBy(p.WordspanAddresses(), func(a WordspanAddress) bool {
		return lex.Contains(p.ReadWordspan(a))
	})
}

// InvalidWordspans returns the addresses whose contents lex rejects.
func (p *Puzzle) InvalidWordspans(lex lexicon.Checker) []WordspanAddress {
	invalid := lo.Filter(p.WordspanAddresses(), func(a WordspanAddress, _ int) bool {
		return !lex.Contains(p.ReadWordspan(a))
	})
	log.Debug().Int("invalid", len(invalid)).Msg("checked-wordspans")
	return invalid
}

// LongestWordspan is the length of the longest wordspan, or 0 if the
// grid is all barriers.
func (p *Puzzle) LongestWordspan() int {
	return lo.Max(lo.Map(p.WordspanAddresses(), func(a WordspanAddress, _ int) int {
		return a.Length
	}))
}
