package lexicon

import (
	"unicode"

	"github.com/domino14/word-golib/kwg"
	"github.com/domino14/word-golib/tilemapping"
	"github.com/samber/lo"
)

// KWGChecker validates words against a precompiled KWG lexicon such as
// NWL20 or CSW21, loaded from the configured data path.
type KWGChecker struct {
	name string
	// hasWord looks up an uppercased word.
	hasWord func(word string) bool
}

// NewKWGChecker loads the named lexicon. cfg must carry a "data-path".
func NewKWGChecker(cfg map[string]any, name string) (*KWGChecker, error) {
	k, err := kwg.Get(cfg, name)
	if err != nil {
		return nil, err
	}
	lex := kwg.Lexicon{KWG: *k}
	return &KWGChecker{
		name: lex.Name(),
		hasWord: func(word string) bool {
			mw, err := tilemapping.ToMachineWord(word, lex.GetAlphabet())
			if err != nil {
				return false
			}
			return lex.HasWord(mw)
		},
	}, nil
}

func (c *KWGChecker) Name() string {
	return c.name
}

// Contains reports whether word is in the lexicon. Words holding anything
// but letters, such as blanks or barriers, are not.
func (c *KWGChecker) Contains(word []rune) bool {
	if len(word) == 0 || !lo.EveryBy(word, unicode.IsLetter) {
		return false
	}
	return c.hasWord(normalize(word))
}
