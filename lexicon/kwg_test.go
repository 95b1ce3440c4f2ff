package lexicon

import (
	"testing"

	"github.com/matryer/is"
	"github.com/stretchr/testify/assert"
)

func TestKWGCheckerMissingLexicon(t *testing.T) {
	cfg := map[string]any{"data-path": t.TempDir()}
	_, err := NewKWGChecker(cfg, "NOSUCHLEX")
	assert.Error(t, err)
}

func TestKWGCheckerContains(t *testing.T) {
	is := is.New(t)
	var looked []string
	c := &KWGChecker{
		name: "TEST",
		hasWord: func(word string) bool {
			looked = append(looked, word)
			return word == "CAT"
		},
	}
	is.Equal(c.Name(), "TEST")
	is.True(c.Contains([]rune("cat")))
	is.True(c.Contains([]rune("CaT")))
	is.True(!c.Contains([]rune("DOG")))
	is.Equal(looked, []string{"CAT", "CAT", "DOG"})

	// Blanks, barriers and empty words never reach the lexicon.
	is.True(!c.Contains([]rune("CA ")))
	is.True(!c.Contains([]rune("C█T")))
	is.True(!c.Contains([]rune("C4T")))
	is.True(!c.Contains(nil))
	is.Equal(len(looked), 3)
}
