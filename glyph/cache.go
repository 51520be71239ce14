package glyph

import "sync"

// Cache keeps loaded tables keyed by size so repeated renders reuse glyph
// data instead of reparsing the resource. Tables are immutable, so handing
// the same pointer to every caller is safe
type Cache struct {
	mu      sync.Mutex
	fontDir string
	tables  map[Size]*Table
}

// NewCache creates a cache. fontDir, when non-empty, is searched for font
// resources before falling back to the embedded copies
func NewCache(fontDir string) *Cache {
	return &Cache{
		fontDir: fontDir,
		tables:  make(map[Size]*Table),
	}
}

// DefaultCache serves callers that don't need a font directory override
var DefaultCache = NewCache("")

// Table returns the table for size, loading it on first use
func (c *Cache) Table(size Size) (*Table, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if t, ok := c.tables[size]; ok {
		return t, nil
	}
	t, err := LoadAuto("", c.fontDir, size)
	if err != nil {
		return nil, err
	}
	c.tables[size] = t
	return t, nil
}
