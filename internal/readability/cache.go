package readability

import (
	"fmt"

	lru "github.com/hashicorp/golang-lru/v2"
)

// DefaultCacheSize bounds the number of characterizations a Cache keeps.
const DefaultCacheSize = 1024

// Cache memoizes an Analyzer by document text. Paragraph rules and metrics
// often characterize the same text more than once; the cache makes the
// repeats free. It is safe for concurrent use.
type Cache struct {
	analyzer Analyzer
	entries  *lru.Cache[string, *Characterization]
}

// NewCache wraps analyzer with an LRU of at most size entries. A size of
// zero or less uses DefaultCacheSize.
func NewCache(analyzer Analyzer, size int) (*Cache, error) {
	if size <= 0 {
		size = DefaultCacheSize
	}
	entries, err := lru.New[string, *Characterization](size)
	if err != nil {
		return nil, fmt.Errorf("creating characterization cache: %w", err)
	}
	return &Cache{analyzer: analyzer, entries: entries}, nil
}

// Characterize returns the cached Characterization for document, computing
// it on a miss. Characterizations are read-only, so sharing them is safe.
func (c *Cache) Characterize(document string) *Characterization {
	if ch, ok := c.entries.Get(document); ok {
		return ch
	}
	ch := c.analyzer.Characterize(document)
	c.entries.Add(document, ch)
	return ch
}

// Len returns the number of cached entries.
func (c *Cache) Len() int {
	return c.entries.Len()
}

var _ Analyzer = (*Cache)(nil)
