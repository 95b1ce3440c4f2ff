package puzzle

import (
	"errors"
	"fmt"
	"io"
	"strings"
	"unicode"
	"unicode/utf8"

	"gopkg.in/yaml.v3"
)

var (
	ErrEmptyLayout  = errors.New("layout has no cells")
	ErrRaggedLayout = errors.New("layout rows differ in length")
	ErrBadCell      = errors.New("layout cell is not a letter, blank or barrier")
)

// Layout text uses '#' (or the barrier rune itself) for barriers and '.',
// '_' or a space for blanks. Letters are uppercased.
const (
	layoutBarrier = '#'
	layoutBlank   = '.'
)

func cellFromLayout(r rune) (rune, bool) {
	switch {
	case r == layoutBarrier || r == Barrier:
		return Barrier, true
	case r == layoutBlank || r == '_' || r == Blank:
		return Blank, true
	case unicode.IsLetter(r):
		return unicode.ToUpper(r), true
	}
	return 0, false
}

func cellToLayout(r rune) rune {
	switch r {
	case Barrier:
		return layoutBarrier
	case Blank:
		return layoutBlank
	}
	return r
}

// FromRows builds a puzzle from one string per row.
func FromRows(rows []string) (*Puzzle, error) {
	if len(rows) == 0 || rows[0] == "" {
		return nil, ErrEmptyLayout
	}
	cols := utf8.RuneCountInString(rows[0])
	backing := make([]rune, 0, len(rows)*cols)
	for i, row := range rows {
		if n := utf8.RuneCountInString(row); n != cols {
			return nil, fmt.Errorf("%w: row %d has %d cells, want %d", ErrRaggedLayout, i, n, cols)
		}
		for j, r := range []rune(row) {
			cell, ok := cellFromLayout(r)
			if !ok {
				return nil, fmt.Errorf("%w: %q at (%d, %d)", ErrBadCell, r, i, j)
			}
			backing = append(backing, cell)
		}
	}
	return New(len(rows), cols, backing)
}

// Layout renders the puzzle in the same text form FromRows reads.
func (p *Puzzle) Layout() []string {
	rows := make([]string, p.rows)
	for i := range rows {
		line := make([]rune, p.cols)
		for j := range line {
			line[j] = cellToLayout(p.Read(i, j))
		}
		rows[i] = string(line)
	}
	return rows
}

func (p *Puzzle) String() string {
	return strings.Join(p.Layout(), "\n")
}

// LayoutFile is the YAML form of a named puzzle layout.
type LayoutFile struct {
	Name string   `yaml:"name"`
	Rows []string `yaml:"rows"`
}

func LoadLayout(r io.Reader) (*LayoutFile, error) {
	var lf LayoutFile
	if err := yaml.NewDecoder(r).Decode(&lf); err != nil {
		return nil, fmt.Errorf("decoding layout: %w", err)
	}
	return &lf, nil
}

func (lf *LayoutFile) Puzzle() (*Puzzle, error) {
	p, err := FromRows(lf.Rows)
	if err != nil {
		return nil, fmt.Errorf("layout %q: %w", lf.Name, err)
	}
	return p, nil
}

// SaveLayout writes p as a named YAML layout.
func (p *Puzzle) SaveLayout(w io.Writer, name string) error {
	enc := yaml.NewEncoder(w)
	defer enc.Close()
	return enc.Encode(LayoutFile{Name: name, Rows: p.Layout()})
}
