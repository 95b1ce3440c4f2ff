package game

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/rs/zerolog/log"
	"github.com/samber/lo"

	"github.com/domino14/xwordfill/board"
	"github.com/domino14/xwordfill/config"
	"github.com/domino14/xwordfill/lexicon"
	"github.com/domino14/xwordfill/puzzle"
	"github.com/domino14/xwordfill/variant"
	"github.com/domino14/xwordfill/wordsource"
)

const (
	// CheckWordList validates against a lexicon built from the configured
	// word list. It is the only checker that can propose candidates.
	CheckWordList = "wordlist"
	// CheckKWG validates against a precompiled KWG lexicon.
	CheckKWG = "kwg"
	// CheckAcceptAll accepts any letters; only geometry is checked.
	CheckAcceptAll = "any"
)

var (
	ErrUnsupportedLayout  = errors.New("unsupported puzzle layout")
	ErrUnsupportedChecker = errors.New("unsupported word checker")
	ErrLexiconRequired    = errors.New("lexicon name is required for this checker")
	ErrNoWordIndex        = errors.New("checker has no word index to draw candidates from")
)

// GameRules is a simple struct that encapsulates the instantiated objects
// needed to fill and validate a puzzle.
type GameRules struct {
	cfg         *config.Config
	layout      *puzzle.Puzzle
	checker     lexicon.Checker
	lex         *lexicon.Lexicon
	variant     variant.Variant
	layoutName  string
	lexiconName string
}

func (g GameRules) Config() *config.Config {
	return g.cfg
}

func (g GameRules) Checker() lexicon.Checker {
	return g.checker
}

// Lexicon is the word-list lexicon, or nil for other checkers.
func (g GameRules) Lexicon() *lexicon.Lexicon {
	return g.lex
}

func (g GameRules) LexiconName() string {
	return g.lexiconName
}

func (g GameRules) LayoutName() string {
	return g.layoutName
}

func (g GameRules) Variant() variant.Variant {
	return g.variant
}

// NewPuzzle returns a fresh copy of the layout for a solver to fill.
func (g GameRules) NewPuzzle() *puzzle.Puzzle {
	return g.layout.Clone()
}

func loadLayout(name string) (*puzzle.Puzzle, error) {
	switch filepath.Ext(name) {
	case ".yaml", ".yml":
		f, err := os.Open(name)
		if err != nil {
			return nil, err
		}
		defer f.Close()
		lf, err := puzzle.LoadLayout(f)
		if err != nil {
			return nil, err
		}
		return lf.Puzzle()
	}
	rows, ok := board.Layout(name)
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedLayout, name)
	}
	return puzzle.FromRows(rows)
}

// NewBasicGameRules loads the layout (a built-in board name or a YAML
// layout file), checks it against the variant and sets up the requested
// word checker. Word-list lexicons are drawn from cache when it is not nil.
func NewBasicGameRules(ctx context.Context, cfg *config.Config, cache *lexicon.Cache,
	lexiconName, layoutName, checkerName string, v variant.Variant) (*GameRules, error) {

	layout, err := loadLayout(layoutName)
	if err != nil {
		return nil, err
	}
	if err := v.Check(layout); err != nil {
		return nil, err
	}

	rules := &GameRules{
		cfg:        cfg,
		layout:     layout,
		variant:    v,
		layoutName: layoutName,
	}

	switch checkerName {
	case CheckWordList, "":
		src := wordsource.FileSource{Path: cfg.WordList()}
		maxLength := max(cfg.MaxWordLength(), layout.LongestWordspan())
		var lex *lexicon.Lexicon
		if cache != nil {
			lex, err = cache.Get(ctx, src, maxLength)
		} else {
			lex, err = lexicon.Build(ctx, src, maxLength)
		}
		if err != nil {
			return nil, err
		}
		rules.lex = lex
		rules.checker = lex
		rules.lexiconName = src.Identity()
	case CheckKWG:
		if lexiconName == "" {
			lexiconName = cfg.DefaultLexicon()
		}
		if lexiconName == "" {
			return nil, ErrLexiconRequired
		}
		k, err := lexicon.NewKWGChecker(cfg.AllSettings(), lexiconName)
		if err != nil {
			return nil, err
		}
		rules.checker = k
		rules.lexiconName = k.Name()
	case CheckAcceptAll:
		rules.checker = lexicon.AcceptAll{}
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedChecker, checkerName)
	}

	log.Debug().Str("layout", layoutName).Str("checker", checkerName).
		Str("lexicon", rules.lexiconName).Str("variant", string(v)).Msg("created-rules")
	return rules, nil
}

// Solved reports whether every wordspan of p is a valid word.
func (g GameRules) Solved(p *puzzle.Puzzle) bool {
	return p.IsSolved(g.checker)
}

// Invalid returns the wordspans of p the checker rejects.
func (g GameRules) Invalid(p *puzzle.Puzzle) []puzzle.WordspanAddress {
	return p.InvalidWordspans(g.checker)
}

// Candidates returns the words, in lexicographic order, that could be
// written at address: they agree with every letter already there, and
// each new letter leaves the perpendicular wordspan through it fillable.
func (g GameRules) Candidates(p *puzzle.Puzzle, address puzzle.WordspanAddress) ([]string, error) {
	if g.lex == nil {
		return nil, ErrNoWordIndex
	}
	pattern := lexicon.Upper(p.ReadWordspan(address))
	requirements := p.GatherCrossRequirements(address)

	prefix := pattern
	if i := lo.IndexOf(pattern, puzzle.Blank); i >= 0 {
		prefix = pattern[:i]
	}
	words := g.lex.WordsWithPrefix(prefix, address.Length)

	return lo.Filter(words, func(word string, _ int) bool {
		for i, letter := range []rune(word) {
			if pattern[i] != puzzle.Blank {
				if pattern[i] != letter {
					return false
				}
				continue
			}
			if !requirements[i].Admits(letter, g.lex) {
				return false
			}
		}
		return true
	}), nil
}
