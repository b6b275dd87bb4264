package locale

import (
	"strings"
	"sync"
)

// Cache memoises locales by tag for long-lived callers such as the HTTP
// component. The mask generators themselves never cache.
type Cache struct {
	mu      sync.RWMutex
	locales map[string]*Locale
}

// NewCache returns an empty cache.
func NewCache() *Cache {
	return &Cache{locales: make(map[string]*Locale)}
}

// Get returns the locale for tag, building it on first use. An empty tag
// resolves to DefaultTag.
func (c *Cache) Get(tag string) (*Locale, error) {
	key := strings.TrimSpace(tag)
	if key == "" {
		key = DefaultTag
	}
	if c == nil {
		return New(key)
	}

	c.mu.RLock()
	l, ok := c.locales[key]
	c.mu.RUnlock()
	if ok {
		return l, nil
	}

	l, err := New(key)
	if err != nil {
		return nil, err
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	if existing, ok := c.locales[key]; ok {
		return existing, nil
	}
	if c.locales == nil {
		c.locales = make(map[string]*Locale)
	}
	c.locales[key] = l
	return l, nil
}

// Len reports how many locales are cached.
func (c *Cache) Len() int {
	if c == nil {
		return 0
	}
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.locales)
}
