package lexicon

import (
	"context"
	"fmt"
	"sync"

	"github.com/rs/zerolog/log"
	"golang.org/x/sync/singleflight"

	"github.com/domino14/xwordfill/wordsource"
)

// Cache keeps built lexicons keyed by source identity and max length.
// Concurrent requests for the same key share a single build.
type Cache struct {
	mu      sync.RWMutex
	group   singleflight.Group
	entries map[string]*Lexicon
}

func NewCache() *Cache {
	return &Cache{entries: make(map[string]*Lexicon)}
}

func cacheKey(src wordsource.Supplier, maxLength int) string {
	return fmt.Sprintf("%s#%d", src.Identity(), maxLength)
}

// Get returns the cached lexicon for src, building it if needed. A failed
// build is not cached.
func (c *Cache) Get(ctx context.Context, src wordsource.Supplier, maxLength int) (*Lexicon, error) {
	key := cacheKey(src, maxLength)
	c.mu.RLock()
	lex, ok := c.entries[key]
	c.mu.RUnlock()
	if ok {
		log.Debug().Str("key", key).Msg("lexicon-cache-hit")
		return lex, nil
	}

	v, err, shared := c.group.Do(key, func() (interface{}, error) {
		c.mu.RLock()
		lex, ok := c.entries[key]
		c.mu.RUnlock()
		if ok {
			return lex, nil
		}
		lex, err := Build(ctx, src, maxLength)
		if err != nil {
			return nil, err
		}
		c.mu.Lock()
		c.entries[key] = lex
		c.mu.Unlock()
		return lex, nil
	})
	if err != nil {
		return nil, err
	}
	log.Debug().Str("key", key).Bool("shared", shared).Msg("lexicon-cache-miss")
	return v.(*Lexicon), nil
}

// Forget evicts a cached lexicon.
func (c *Cache) Forget(src wordsource.Supplier, maxLength int) {
	key := cacheKey(src, maxLength)
	c.mu.Lock()
	delete(c.entries, key)
	c.mu.Unlock()
	c.group.Forget(key)
}

func (c *Cache) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.entries)
}
