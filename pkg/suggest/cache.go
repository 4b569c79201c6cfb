package suggest

import (
	"context"
	"sync"
	"time"
)

// DefaultCacheTTL is the freshness window for cached reference lists. The
// cache is an optimization only; a miss or expiry falls through to the
// wrapped source.
const DefaultCacheTTL = 24 * time.Hour

// CacheOption customises a CachedSource.
type CacheOption func(*CachedSource)

// WithTTL overrides the freshness window.
func WithTTL(ttl time.Duration) CacheOption {
	return func(c *CachedSource) {
		if ttl > 0 {
			c.ttl = ttl
		}
	}
}

// WithClock injects a clock, used by tests to step through expiry.
func WithClock(now func() time.Time) CacheOption {
	return func(c *CachedSource) {
		if now != nil {
			c.now = now
		}
	}
}

type cacheEntry struct {
	candidates []Candidate
	fetchedAt  time.Time
}

// CachedSource memoises full candidate lists per scope so repeated lookups
// within the freshness window skip the upstream fetch. Entries key on the
// scope only; ranking against the query happens downstream, so one fetched
// list serves every keystroke.
type CachedSource struct {
	source Source
	ttl    time.Duration
	now    func() time.Time

	mu      sync.Mutex
	entries map[Scope]cacheEntry
}

// NewCachedSource wraps source with a freshness-window cache.
func NewCachedSource(source Source, options ...CacheOption) *CachedSource {
	c := &CachedSource{
		source:  source,
		ttl:     DefaultCacheTTL,
		now:     time.Now,
		entries: make(map[Scope]cacheEntry),
	}
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(c)
	}
	return c
}

// Lookup serves from cache when fresh, otherwise fetches from the wrapped
// source. The query is forwarded empty so the upstream returns its full list
// for the scope; fetch failures are not cached.
func (c *CachedSource) Lookup(ctx context.Context, query string, scope Scope) ([]Candidate, error) {
	if c == nil || c.source == nil {
		return nil, nil
	}

	c.mu.Lock()
	entry, ok := c.entries[scope]
	fresh := ok && c.now().Sub(entry.fetchedAt) < c.ttl
	c.mu.Unlock()

	if fresh {
		return append([]Candidate(nil), entry.candidates...), nil
	}

	candidates, err := c.source.Lookup(ctx, "", scope)
	if err != nil {
		return nil, err
	}

	c.mu.Lock()
	c.entries[scope] = cacheEntry{
		candidates: append([]Candidate(nil), candidates...),
		fetchedAt:  c.now(),
	}
	c.mu.Unlock()

	return candidates, nil
}

// Invalidate drops the cached list for a scope.
func (c *CachedSource) Invalidate(scope Scope) {
	if c == nil {
		return
	}
	c.mu.Lock()
	delete(c.entries, scope)
	c.mu.Unlock()
}
