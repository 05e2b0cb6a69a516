package embedding

import (
	"context"
	"errors"
	"sync"

	"ats/internal/domain"
)

var errNilModel = errors.New("loader returned no model")

// Loader constructs an embedding model.
type Loader func(ctx context.Context) (Embedder, error)

// Lazy holds a process-wide model that is loaded on first use and then
// reused read-only. Concurrent first callers wait for a single load.
// A failed load is not remembered; the next call tries again.
type Lazy struct {
	name string
	load Loader

	mu    sync.Mutex
	model Embedder
}

// NewLazy wraps load so that it runs at most once successfully.
func NewLazy(name string, load Loader) *Lazy {
	return &Lazy{name: name, load: load}
}

// Get returns the loaded model, loading it if needed.
func (l *Lazy) Get(ctx context.Context) (Embedder, error) {
	l.mu.Lock()
	defer l.mu.Unlock()
	if l.model != nil {
		return l.model, nil
	}
	m, err := l.load(ctx)
	if err != nil {
		return nil, domain.NewModelInitError(l.name, err)
	}
	if m == nil {
		return nil, domain.NewModelInitError(l.name, errNilModel)
	}
	l.model = m
	return m, nil
}

// Name returns the configured model name.
func (l *Lazy) Name() string { return l.name }

// Prepare is a no-op: dense models are frozen.
func (l *Lazy) Prepare(corpus []string) error { return nil }

// Dimension returns the model dimension, or 0 before the first load.
func (l *Lazy) Dimension() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	if l.model == nil {
		return 0
	}
	return l.model.Dimension()
}

// Embed loads the model if needed and embeds text.
func (l *Lazy) Embed(ctx context.Context, text string) ([]float64, error) {
	m, err := l.Get(ctx)
	if err != nil {
		return nil, err
	}
	return m.Embed(ctx, text)
}
