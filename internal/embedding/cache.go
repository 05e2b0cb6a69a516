package embedding

import (
	"context"
	"crypto/sha1"
	"encoding/hex"
	"sync"
)

// Cached memoizes vectors of a frozen model in memory, keyed by a hash of
// the text. When full, the oldest entry is evicted first.
type Cached struct {
	inner    Embedder
	capacity int

	mu      sync.RWMutex
	vectors map[string][]float64
	order   []string
}

// NewCached wraps inner with a cache of at most capacity vectors.
func NewCached(inner Embedder, capacity int) *Cached {
	if capacity <= 0 {
		capacity = 1
	}
	return &Cached{inner: inner, capacity: capacity, vectors: make(map[string][]float64, capacity)}
}

func (c *Cached) Name() string { return c.inner.Name() }

func (c *Cached) Prepare(corpus []string) error { return c.inner.Prepare(corpus) }

func (c *Cached) Dimension() int { return c.inner.Dimension() }

// Len returns the number of cached vectors.
func (c *Cached) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.vectors)
}

// Embed returns the cached vector for text, embedding it on a miss.
// Returned slices are copies.
func (c *Cached) Embed(ctx context.Context, text string) ([]float64, error) {
	key := hashString(text)

	c.mu.RLock()
	v, ok := c.vectors[key]
	c.mu.RUnlock()
	if ok {
		return clone(v), nil
	}

	v, err := c.inner.Embed(ctx, text)
	if err != nil {
		return nil, err
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	if _, ok := c.vectors[key]; !ok {
		if len(c.order) >= c.capacity {
			delete(c.vectors, c.order[0])
			c.order = c.order[1:]
		}
		c.order = append(c.order, key)
	}
	c.vectors[key] = clone(v)
	return v, nil
}

func clone(v []float64) []float64 {
	out := make([]float64, len(v))
	copy(out, v)
	return out
}

func hashString(s string) string {
	h := sha1.Sum([]byte(s))
	return hex.EncodeToString(h[:])
}
