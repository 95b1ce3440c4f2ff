// Package lexicon indexes words by exact length for fast membership and
// prefix queries.
package lexicon

import (
	"context"
	"fmt"
	"strings"
	"unicode"

	"github.com/armon/go-radix"
	"github.com/rs/zerolog/log"
	"golang.org/x/sync/errgroup"

	"github.com/domino14/xwordfill/wordsource"
)

// Checker answers whether a word is valid. Puzzles are validated against
// a Checker, so any word authority can stand in for a built Lexicon.
type Checker interface {
	Contains(word []rune) bool
}

// PrefixChecker can also tell whether any valid word of a given length
// starts with a prefix.
type PrefixChecker interface {
	Checker
	HasPrefix(prefix []rune, length int) bool
}

// Lexicon holds one radix tree per word length 0..maxLength. It is never
// mutated after construction and may be shared between goroutines.
type Lexicon struct {
	trees []*radix.Tree
}

// Build loads every word from src and indexes it.
func Build(ctx context.Context, src wordsource.Supplier, maxLength int) (*Lexicon, error) {
	words, err := src.Words(ctx)
	if err != nil {
		return nil, fmt.Errorf("loading words from %s: %w", src.Identity(), err)
	}
	return build(ctx, words, maxLength)
}

// FromWords indexes an in-memory word list.
func FromWords(words []string, maxLength int) *Lexicon {
	lex, err := build(context.Background(), words, maxLength)
	if err != nil {
		// Only cancellation can fail a build.
		panic(err)
	}
	return lex
}

func build(ctx context.Context, words []string, maxLength int) (*Lexicon, error) {
	if maxLength < 0 {
		panic(fmt.Sprintf("lexicon: negative max length %d", maxLength))
	}
	buckets := make([][]string, maxLength+1)
	for _, word := range words {
		if strings.Contains(word, "'") {
			continue
		}
		runes := []rune(word)
		if len(runes) > maxLength {
			continue
		}
		buckets[len(runes)] = append(buckets[len(runes)], normalize(runes))
	}

	lex := &Lexicon{trees: make([]*radix.Tree, maxLength+1)}
	g, ctx := errgroup.WithContext(ctx)
	for n := range buckets {
		n := n
		g.Go(func() error {
			tree := radix.New()
			for _, word := range buckets[n] {
				if err := ctx.Err(); err != nil {
					return err
				}
				tree.Insert(word, struct{}{})
			}
			lex.trees[n] = tree
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	log.Debug().Int("max-length", maxLength).Int("words", lex.Len()).Msg("built-lexicon")
	return lex, nil
}

// MaxLength is the longest word length this lexicon can be queried for.
func (l *Lexicon) MaxLength() int {
	return len(l.trees) - 1
}

// Len returns the total number of distinct indexed words.
func (l *Lexicon) Len() int {
	total := 0
	for _, t := range l.trees {
		total += t.Len()
	}
	return total
}

func (l *Lexicon) tree(n int) *radix.Tree {
	if n < 0 || n > l.MaxLength() {
		panic(fmt.Sprintf("lexicon: length %d out of range, lexicon built for lengths 0..%d",
			n, l.MaxLength()))
	}
	return l.trees[n]
}

// Upper uppercases word rune by rune. Runes with no single-rune
// uppercase form are left alone, so the result is always as long as word.
func Upper(word []rune) []rune {
	upper := make([]rune, len(word))
	for i, r := range word {
		upper[i] = unicode.ToUpper(r)
	}
	return upper
}

func normalize(word []rune) string {
	return string(Upper(word))
}

// Contains reports whether the uppercased word is indexed. Querying a
// length longer than MaxLength panics.
func (l *Lexicon) Contains(word []rune) bool {
	_, ok := l.tree(len(word)).Get(normalize(word))
	return ok
}

// HasPrefix reports whether some word of exactly length starts with prefix.
func (l *Lexicon) HasPrefix(prefix []rune, length int) bool {
	t := l.tree(length)
	if len(prefix) > length {
		return false
	}
	found := false
	t.WalkPrefix(normalize(prefix), func(string, interface{}) bool {
		found = true
		return true
	})
	return found
}

// WordsOfLength returns every word of length n in lexicographic order.
func (l *Lexicon) WordsOfLength(n int) []string {
	t := l.tree(n)
	words := make([]string, 0, t.Len())
	t.Walk(func(s string, _ interface{}) bool {
		words = append(words, s)
		return false
	})
	return words
}

// WordsWithPrefix returns the words of the given length starting with
// prefix, in lexicographic order.
func (l *Lexicon) WordsWithPrefix(prefix []rune, length int) []string {
	t := l.tree(length)
	var words []string
	if len(prefix) > length {
		return words
	}
	t.WalkPrefix(normalize(prefix), func(s string, _ interface{}) bool {
		words = append(words, s)
		return false
	})
	return words
}

// AcceptAll treats every word as valid. It is useful for checking layout
// geometry without a word list.
type AcceptAll struct{}

func (AcceptAll) Contains([]rune) bool { return true }

func (AcceptAll) HasPrefix(prefix []rune, length int) bool { return len(prefix) <= length }
