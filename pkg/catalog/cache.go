package catalog

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/maypok86/otter/v2"
)

type cacheEntry struct {
	set     Set
	modTime time.Time
	size    int64
}

// Cache memoizes Load by source path. An entry is reused only while the file's
// modification time and size are unchanged, so results always match a fresh
// Load. Failed loads are never stored.
type Cache struct {
	cache  *otter.Cache[string, cacheEntry]
	logger *slog.Logger
}

// NewCache creates a cache holding up to size catalogs. A positive ttl also
// expires entries that long after they were written.
func NewCache(size int, ttl time.Duration, logger *slog.Logger) *Cache {
	if size <= 0 {
		size = 16
	}
	if logger == nil {
		logger = slog.Default()
	}

	opts := &otter.Options[string, cacheEntry]{
		MaximumSize: size,
	}
	if ttl > 0 {
		opts.ExpiryCalculator = otter.ExpiryWriting[string, cacheEntry](ttl)
	}

	return &Cache{
		cache:  otter.Must(opts),
		logger: logger,
	}
}

// Load returns the catalog at path, reading it only when no fresh entry exists.
func (c *Cache) Load(path string) (Set, error) {
	key, err := filepath.Abs(path)
	if err != nil {
		key = path
	}

	fi, err := os.Stat(path)
	if err != nil {
		c.cache.Invalidate(key)
		return Set{}, fmt.Errorf("%w: %s: %w", ErrNotFound, path, err)
	}

	if e, ok := c.cache.GetIfPresent(key); ok {
		if e.modTime.Equal(fi.ModTime()) && e.size == fi.Size() {
			c.logger.Debug("catalog cache hit", "path", key, "values", e.set.Len())
			return e.set, nil
		}
		c.logger.Debug("catalog cache stale", "path", key)
	}

	set, err := Load(path)
	if err != nil {
		c.cache.Invalidate(key)
		return Set{}, err
	}

	c.cache.Set(key, cacheEntry{set: set, modTime: fi.ModTime(), size: fi.Size()})
	c.logger.Debug("catalog cache set", "path", key, "values", set.Len())
	return set, nil
}

// Len returns the approximate number of cached catalogs.
func (c *Cache) Len() int { return c.cache.EstimatedSize() }
