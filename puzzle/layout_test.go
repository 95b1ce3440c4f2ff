package puzzle

import (
	"bytes"
	"strings"
	"testing"

	"github.com/matryer/is"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFromRows(t *testing.T) {
	is := is.New(t)
	p, err := FromRows([]string{"ab#", "_ █"})
	is.NoErr(err)
	is.Equal(p.Rows(), 2)
	is.Equal(p.Cols(), 3)
	is.Equal(p.Read(0, 0), 'A')
	is.Equal(p.Read(0, 2), Barrier)
	is.Equal(p.Read(1, 0), Blank)
	is.Equal(p.Read(1, 1), Blank)
	is.Equal(p.Read(1, 2), Barrier)
	is.Equal(p.Layout(), []string{"AB#", "..#"})
}

func TestFromRowsErrors(t *testing.T) {
	_, err := FromRows(nil)
	assert.ErrorIs(t, err, ErrEmptyLayout)
	_, err = FromRows([]string{""})
	assert.ErrorIs(t, err, ErrEmptyLayout)
	_, err = FromRows([]string{"ABC", "AB"})
	assert.ErrorIs(t, err, ErrRaggedLayout)
	_, err = FromRows([]string{"A3C"})
	assert.ErrorIs(t, err, ErrBadCell)
}

func TestLayoutRoundTrip(t *testing.T) {
	rows := []string{"SWIFT#STACK", ".....#....."}
	p, err := FromRows(rows)
	require.NoError(t, err)
	assert.Equal(t, rows, p.Layout())
	assert.Equal(t, strings.Join(rows, "\n"), p.String())
}

func TestLoadLayout(t *testing.T) {
	is := is.New(t)
	doc := `
name: corner
rows:
  - "#..."
  - "...."
  - "...#"
`
	lf, err := LoadLayout(strings.NewReader(doc))
	is.NoErr(err)
	is.Equal(lf.Name, "corner")
	p, err := lf.Puzzle()
	is.NoErr(err)
	is.Equal(p.Read(0, 0), Barrier)
	is.Equal(len(p.OrientedWordspanAddresses(Across)), 3)
}

func TestLoadLayoutBadRows(t *testing.T) {
	lf, err := LoadLayout(strings.NewReader("name: bad\nrows: [\"ab\", \"c\"]\n"))
	require.NoError(t, err)
	_, err = lf.Puzzle()
	assert.ErrorIs(t, err, ErrRaggedLayout)

	_, err = LoadLayout(strings.NewReader("rows: {"))
	assert.Error(t, err)
}

func TestSaveLayout(t *testing.T) {
	is := is.New(t)
	p, err := FromRows([]string{"#AB", "C.#"})
	is.NoErr(err)

	var buf bytes.Buffer
	is.NoErr(p.SaveLayout(&buf, "tiny"))
	lf, err := LoadLayout(&buf)
	is.NoErr(err)
	is.Equal(lf.Name, "tiny")
	is.Equal(lf.Rows, []string{"#AB", "C.#"})
}
