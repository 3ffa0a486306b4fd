// internal/lookup/cache.go
//
// Process-wide memoizing wrappers around Translator and SummaryProvider.
// Keys are the case-folded input. Both caches are unbounded, read-mostly,
// and safe for concurrent use (RWMutex; writes are idempotent).
//
// The two caches intentionally differ on failure handling:
//   - CachedTranslator stores only successful non-empty translations, so
//     a failed call is retried on the next lookup for the same text.
//   - CachedSummaries stores whatever comes back, empty records included,
//     so a word that failed once never hits the upstream again.

package lookup

import (
	"context"
	"strings"
	"sync"
)

// CachedTranslator memoizes successful non-empty translations.
type CachedTranslator struct {
	inner Translator

	mu   sync.RWMutex
	hits map[string]string
}

// NewCachedTranslator wraps inner with a translation cache.
func NewCachedTranslator(inner Translator) *CachedTranslator {
	return &CachedTranslator{inner: inner, hits: make(map[string]string)}
}

// Translate returns the cached translation or falls through to inner.
// Empty results are returned but never cached.
func (c *CachedTranslator) Translate(ctx context.Context, text string) string {
	text = strings.TrimSpace(text)
	if text == "" {
		return ""
	}
	key := strings.ToLower(text)

	c.mu.RLock()
	cached, ok := c.hits[key]
	c.mu.RUnlock()
	if ok {
		return cached
	}

	out := c.inner.Translate(ctx, text)
	if out != "" {
		c.mu.Lock()
		c.hits[key] = out
		c.mu.Unlock()
	}
	return out
}

// Size reports the number of cached translations.
func (c *CachedTranslator) Size() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.hits)
}

// CachedSummaries memoizes summary lookups, failed ones included.
type CachedSummaries struct {
	inner SummaryProvider

	mu   sync.RWMutex
	seen map[string]Summary
}

// NewCachedSummaries wraps inner with a summary cache.
func NewCachedSummaries(inner SummaryProvider) *CachedSummaries {
	return &CachedSummaries{inner: inner, seen: make(map[string]Summary)}
}

// Summarize returns the cached record or falls through to inner.
// The result is cached unconditionally, so failures are permanent
// for the lifetime of the process.
func (c *CachedSummaries) Summarize(ctx context.Context, word string) Summary {
	word = strings.TrimSpace(word)
	if word == "" {
		return Summary{}
	}
	key := strings.ToLower(word)

	c.mu.RLock()
	cached, ok := c.seen[key]
	c.mu.RUnlock()
	if ok {
		return cached
	}

	out := c.inner.Summarize(ctx, word)
	c.mu.Lock()
	c.seen[key] = out
	c.mu.Unlock()
	return out
}

// Size reports the number of cached summary records.
func (c *CachedSummaries) Size() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.seen)
}
