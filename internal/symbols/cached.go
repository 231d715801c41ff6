package symbols

import (
	"context"
	"sync"
)

// CachedSource keeps the last list produced by Upstream and serves it
// until Refresh is called again.
type CachedSource struct {
	Upstream Source

	mu      sync.RWMutex
	symbols []string
}

func NewCachedSource(upstream Source) *CachedSource {
	return &CachedSource{Upstream: upstream}
}

func (c *CachedSource) Name() string { return "cached-" + c.Upstream.Name() }

// ListSymbols returns the cached list, loading it on first use.
func (c *CachedSource) ListSymbols(ctx context.Context) []string {
	c.mu.RLock()
	cached := c.symbols
	c.mu.RUnlock()
	if len(cached) == 0 {
		return c.Refresh(ctx)
	}
	out := make([]string, len(cached))
	copy(out, cached)
	return out
}

// Refresh reloads the list from Upstream and returns it.
func (c *CachedSource) Refresh(ctx context.Context) []string {
	fresh := c.Upstream.ListSymbols(ctx)
	c.mu.Lock()
	c.symbols = fresh
	c.mu.Unlock()
	out := make([]string, len(fresh))
	copy(out, fresh)
	return out
}
