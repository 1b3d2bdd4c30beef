package lang

import (
	"sync"

	"golang.org/x/text/language"

	"github.com/coreliang/hyphen"
)

// Cache memoizes compiled Hyphenators by language tag, so repeated Load
// calls for the same language skip re-parsing and re-packing its pattern
// set.
//
// Thread safety: all methods are safe for concurrent use via RWMutex.
type Cache struct {
	mu    sync.RWMutex
	built map[language.Tag]*hyphen.Hyphenator
}

func newCache() *Cache {
	return &Cache{built: make(map[language.Tag]*hyphen.Hyphenator)}
}

// getOrCompile returns the cached Hyphenator for tag, calling build to
// compile and cache it on a miss.
func (c *Cache) getOrCompile(tag language.Tag, build func() (*hyphen.Hyphenator, error)) (*hyphen.Hyphenator, error) {
	c.mu.RLock()
	h, ok := c.built[tag]
	c.mu.RUnlock()
	if ok {
		return h, nil
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	if h, ok := c.built[tag]; ok {
		return h, nil
	}

	h, err := build()
	if err != nil {
		return nil, err
	}
	c.built[tag] = h
	return h, nil
}

// Clear empties the cache. Primarily useful for testing.
func (c *Cache) Clear() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.built = make(map[language.Tag]*hyphen.Hyphenator)
}
