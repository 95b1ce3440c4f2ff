package game

import (
	"context"
	"testing"

	"github.com/matryer/is"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/domino14/xwordfill/board"
	"github.com/domino14/xwordfill/config"
	"github.com/domino14/xwordfill/lexicon"
	"github.com/domino14/xwordfill/puzzle"
	"github.com/domino14/xwordfill/variant"
)

func testConfig(t *testing.T) *config.Config {
	t.Helper()
	cfg := config.DefaultConfig()
	cfg.Set(config.ConfigWordList, "testdata/words.txt")
	cfg.Set(config.ConfigMaxWordLength, 4)
	cfg.Set(config.ConfigDataPath, t.TempDir())
	return cfg
}

func open4Rules(t *testing.T) *GameRules {
	t.Helper()
	rules, err := NewBasicGameRules(context.Background(), testConfig(t), lexicon.NewCache(),
		"", "testdata/open4.yaml", CheckWordList, variant.VarFreestyle)
	require.NoError(t, err)
	return rules
}

func TestCandidates(t *testing.T) {
	is := is.New(t)
	rules := open4Rules(t)
	p := rules.NewPuzzle()
	p.WriteWordspan(puzzle.NewWordspanAddress(0, 0, puzzle.Across, 4), []rune("CARE"))
	p.WriteWordspan(puzzle.NewWordspanAddress(1, 0, puzzle.Across, 4), []rune("ARID"))

	row2 := puzzle.NewWordspanAddress(2, 0, puzzle.Across, 4)
	words, err := rules.Candidates(p, row2)
	is.NoErr(err)
	is.Equal(words, []string{"STAG"})

	p.Write(2, 0, 'Z')
	words, err = rules.Candidates(p, row2)
	is.NoErr(err)
	is.Equal(len(words), 0)
}

func TestCandidatesLowercaseGrid(t *testing.T) {
	is := is.New(t)
	rules := open4Rules(t)
	p := rules.NewPuzzle()
	p.WriteWordspan(puzzle.NewWordspanAddress(0, 0, puzzle.Across, 4), []rune("care"))
	p.WriteWordspan(puzzle.NewWordspanAddress(1, 0, puzzle.Across, 4), []rune("arid"))
	p.Write(2, 0, 's')

	words, err := rules.Candidates(p, puzzle.NewWordspanAddress(2, 0, puzzle.Across, 4))
	is.NoErr(err)
	is.Equal(words, []string{"STAG"})

	words, err = rules.Candidates(p, puzzle.NewWordspanAddress(0, 0, puzzle.Across, 4))
	is.NoErr(err)
	is.Equal(words, []string{"CARE"})
}

func TestCandidatesEmptyGrid(t *testing.T) {
	rules := open4Rules(t)
	words, err := rules.Candidates(rules.NewPuzzle(), puzzle.NewWordspanAddress(0, 0, puzzle.Down, 4))
	require.NoError(t, err)
	// Each letter must start some four-letter word across.
	assert.Equal(t, []string{"CARE", "CASE"}, words)
}

func TestNewPuzzleIsFresh(t *testing.T) {
	is := is.New(t)
	rules := open4Rules(t)
	p := rules.NewPuzzle()
	p.Write(0, 0, 'C')
	is.Equal(rules.NewPuzzle().Read(0, 0), puzzle.Blank)
	is.Equal(rules.LayoutName(), "testdata/open4.yaml")
	is.Equal(rules.LexiconName(), "file:testdata/words.txt")
	is.Equal(rules.Variant(), variant.VarFreestyle)
}

func TestSolvedAndInvalid(t *testing.T) {
	is := is.New(t)
	rules := open4Rules(t)
	p := rules.NewPuzzle()
	is.True(!rules.Solved(p))
	is.Equal(len(rules.Invalid(p)), 8)
	p.WriteWordspan(puzzle.NewWordspanAddress(0, 0, puzzle.Across, 4), []rune("CARE"))
	is.Equal(len(rules.Invalid(p)), 7)
}

func TestBuiltInLayoutAcceptAll(t *testing.T) {
	is := is.New(t)
	rules, err := NewBasicGameRules(context.Background(), testConfig(t), nil,
		"", board.MiniLayout, CheckAcceptAll, variant.VarAmerican)
	is.NoErr(err)
	p := rules.NewPuzzle()
	is.True(rules.Solved(p))
	is.True(rules.Lexicon() == nil)
	_, err = rules.Candidates(p, puzzle.NewWordspanAddress(1, 0, puzzle.Across, 5))
	is.True(err == ErrNoWordIndex)
}

func TestLexiconCoversLongestWordspan(t *testing.T) {
	is := is.New(t)
	rules, err := NewBasicGameRules(context.Background(), testConfig(t), nil,
		"", board.StandardLayout, CheckWordList, variant.VarAmerican)
	is.NoErr(err)
	is.Equal(rules.Lexicon().MaxLength(), 9)
	is.True(!rules.Solved(rules.NewPuzzle()))
}

func TestNewBasicGameRulesErrors(t *testing.T) {
	ctx := context.Background()
	cfg := testConfig(t)

	_, err := NewBasicGameRules(ctx, cfg, nil, "", "Jumbo", CheckAcceptAll, variant.VarFreestyle)
	assert.ErrorIs(t, err, ErrUnsupportedLayout)

	_, err = NewBasicGameRules(ctx, cfg, nil, "", "testdata/twos.yaml", CheckAcceptAll, variant.VarAmerican)
	assert.ErrorIs(t, err, variant.ErrSlotTooShort)

	_, err = NewBasicGameRules(ctx, cfg, nil, "", "testdata/twos.yaml", CheckAcceptAll, variant.VarBritish)
	assert.NoError(t, err)

	_, err = NewBasicGameRules(ctx, cfg, nil, "", board.MiniLayout, CheckKWG, variant.VarFreestyle)
	assert.ErrorIs(t, err, ErrLexiconRequired)

	_, err = NewBasicGameRules(ctx, cfg, nil, "NOSUCHLEX", board.MiniLayout, CheckKWG, variant.VarFreestyle)
	assert.Error(t, err)

	_, err = NewBasicGameRules(ctx, cfg, nil, "", board.MiniLayout, "gaddag", variant.VarFreestyle)
	assert.ErrorIs(t, err, ErrUnsupportedChecker)

	cfg.Set(config.ConfigWordList, "testdata/missing.txt")
	_, err = NewBasicGameRules(ctx, cfg, nil, "", board.MiniLayout, CheckWordList, variant.VarFreestyle)
	assert.Error(t, err)
}
