package cache

import (
	"context"
	"log/slog"

	"github.com/BarthPaleologue/cloc-graph/internal/cloc"
	"github.com/BarthPaleologue/cloc-graph/internal/logging"
)

// CachingScanner serves scans from a Store and records fresh successful
// scans into it. Failed scans are never cached. Cache errors are logged and
// otherwise ignored.
type CachingScanner struct {
	inner  cloc.Scanner
	store  *Store
	scope  string
	logger *slog.Logger

	hits   int
	misses int
}

// NewCachingScanner wraps inner. scope separates results produced by
// different scanner configurations.
func NewCachingScanner(inner cloc.Scanner, store *Store, scope string, logger *slog.Logger) *CachingScanner {
	if logger == nil {
		logger = logging.Discard()
	}
	return &CachingScanner{inner: inner, store: store, scope: scope, logger: logger}
}

// Scan implements cloc.Scanner.
func (c *CachingScanner) Scan(ctx context.Context, hash string) (cloc.Result, error) {
	result, ok, err := c.store.Get(ctx, c.scope, hash)
	if err != nil {
		c.logger.Warn("cache read failed", "commit", hash, "error", err)
	} else if ok {
		c.hits++
		return result, nil
	}

	c.misses++
	result, err = c.inner.Scan(ctx, hash)
	if err != nil {
		return nil, err
	}

	if err := c.store.Put(ctx, c.scope, hash, result); err != nil {
		c.logger.Warn("cache write failed", "commit", hash, "error", err)
	}
	return result, nil
}

// Hits returns the number of scans served from the cache.
func (c *CachingScanner) Hits() int {
	return c.hits
}

// Misses returns the number of scans delegated to the wrapped scanner.
func (c *CachingScanner) Misses() int {
	return c.misses
}
