package level

import (
	"fmt"
	"sync"

	"github.com/automoto/heaven-and-hell/config"
)

// Source produces the grid for a level id.
type Source func(id uint32) (Grid, error)

// NodeSize returns the maze node size used on both axes for a level id.
func NodeSize(id uint32) int {
	return config.Level.BaseNodeSize + config.Level.NodeSizeGrowth*int(id)
}

// Cache keeps one grid per level id for the whole session. Entries are only
// ever added, never changed in place, so readers can share them.
type Cache struct {
	mu     sync.RWMutex
	source Source
	grids  map[uint32]Grid
}

func NewCache(source Source) *Cache {
	return &Cache{
		source: source,
		grids:  make(map[uint32]Grid),
	}
}

// Get returns a private copy of the grid for id, producing and storing it on
// first use.
func (c *Cache) Get(id uint32) (Grid, error) {
	c.mu.RLock()
	g, ok := c.grids[id]
	c.mu.RUnlock()
	if ok {
		return g.Clone(), nil
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	if g, ok := c.grids[id]; ok {
		return g.Clone(), nil
	}

	g, err := c.source(id)
	if err != nil {
		return nil, fmt.Errorf("level %d: %w", id, err)
	}
	if err := g.Validate(); err != nil {
		return nil, fmt.Errorf("level %d: %w", id, err)
	}
	c.grids[id] = g
	return g.Clone(), nil
}

// Has reports whether id has already been produced.
func (c *Cache) Has(id uint32) bool {
	c.mu.RLock()
	defer c.mu.RUnlock()
	_, ok := c.grids[id]
	return ok
}

// Len returns the number of cached levels.
func (c *Cache) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.grids)
}

// Clear drops every cached grid; later calls to Get regenerate them.
func (c *Cache) Clear() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.grids = make(map[uint32]Grid)
}
