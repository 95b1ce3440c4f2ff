// Package wordsource supplies candidate words to lexicon construction.
package wordsource

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/rs/zerolog/log"
	"golang.org/x/text/unicode/norm"
)

var ErrNoPath = errors.New("word source has no path")

// A Supplier produces a finite, ordered list of candidate words. Identity
// names the underlying source so that builds can be cached per source.
type Supplier interface {
	Identity() string
	Words(ctx context.Context) ([]string, error)
}

// accept trims a raw line and reports whether it is a candidate word.
// Words containing an apostrophe are rejected; case is left as supplied.
// Words are composed to NFC so an accented letter counts as one rune.
func accept(raw string) (string, bool) {
	word := norm.NFC.String(strings.TrimSpace(raw))
	if strings.Contains(word, "'") {
		return "", false
	}
	return word, true
}

// ReadWords reads newline-delimited words from r.
func ReadWords(ctx context.Context, r io.Reader) ([]string, error) {
	var words []string
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		if word, ok := accept(scanner.Text()); ok {
			words = append(words, word)
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return words, nil
}

// FileSource reads a word list such as /usr/share/dict/words.
type FileSource struct {
	Path string
}

func (f FileSource) Identity() string {
	return "file:" + f.Path
}

func (f FileSource) Words(ctx context.Context) ([]string, error) {
	if f.Path == "" {
		return nil, ErrNoPath
	}
	file, err := os.Open(f.Path)
	if err != nil {
		return nil, fmt.Errorf("opening word list: %w", err)
	}
	defer file.Close()

	words, err := ReadWords(ctx, file)
	if err != nil {
		return nil, fmt.Errorf("reading word list %s: %w", f.Path, err)
	}
	log.Debug().Str("path", f.Path).Int("words", len(words)).Msg("loaded-word-list")
	return words, nil
}

// StaticSource supplies an in-memory list. Lines are filtered the same
// way a file would be.
type StaticSource struct {
	Name string
	List []string
}

func (s StaticSource) Identity() string {
	return "static:" + s.Name
}

func (s StaticSource) Words(ctx context.Context) ([]string, error) {
	words := make([]string, 0, len(s.List))
	for _, raw := range s.List {
		if word, ok := accept(raw); ok {
			words = append(words, word)
		}
	}
	return words, ctx.Err()
}
