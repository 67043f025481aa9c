package reconciler

import (
	"context"
	"fmt"
	"sync"
)

// SizeCache caches size attribute values by name and creates missing ones on
// first use. Safe for concurrent use, so regions reconciled in parallel never
// race-create duplicate values for the same size.
type SizeCache struct {
	catalog Catalog

	mu     sync.Mutex
	loaded bool
	values map[string]int64
}

// NewSizeCache returns new SizeCache backed by catalog.
func NewSizeCache(catalog Catalog) *SizeCache {
	return &SizeCache{
		catalog: catalog,
		values:  map[string]int64{},
	}
}

// GetOrCreate returns the id of the size attribute value with name, creating
// it if the catalog has no value for that name yet.
func (c *SizeCache) GetOrCreate(ctx context.Context, name string) (int64, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if !c.loaded {
		values, err := c.catalog.SizeValues(ctx)
		if err != nil {
			return 0, fmt.Errorf("can't load size values: %w", err)
		}
		c.values = values
		c.loaded = true
	}

	if id, ok := c.values[name]; ok {
		return id, nil
	}

	id, err := c.catalog.CreateSizeValue(ctx, name)
	if err != nil {
		return 0, fmt.Errorf("can't create size value: %w", err)
	}
	c.values[name] = id

	return id, nil
}
