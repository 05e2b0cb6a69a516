package embedding

import (
	"context"
	"fmt"
)

// Splitter breaks text into pieces small enough for a model's input window.
type Splitter interface {
	Split(text string) []string
}

// Pooled embeds each piece produced by a Splitter and returns the mean vector.
type Pooled struct {
	inner    Embedder
	splitter Splitter
}

// NewPooled wraps inner with mean pooling over splitter pieces.
func NewPooled(inner Embedder, splitter Splitter) *Pooled {
	return &Pooled{inner: inner, splitter: splitter}
}

func (p *Pooled) Name() string { return p.inner.Name() + "+mean" }

func (p *Pooled) Prepare(corpus []string) error { return p.inner.Prepare(corpus) }

func (p *Pooled) Dimension() int { return p.inner.Dimension() }

func (p *Pooled) Embed(ctx context.Context, text string) ([]float64, error) {
	pieces := p.splitter.Split(text)
	if len(pieces) <= 1 {
		return p.inner.Embed(ctx, text)
	}
	var sum []float64
	for i, piece := range pieces {
		v, err := p.inner.Embed(ctx, piece)
		if err != nil {
			return nil, fmt.Errorf("embed chunk %d: %w", i, err)
		}
		if sum == nil {
			sum = make([]float64, len(v))
		}
		if len(v) != len(sum) {
			return nil, fmt.Errorf("chunk %d has dimension %d, want %d", i, len(v), len(sum))
		}
		for j := range v {
			sum[j] += v[j]
		}
	}
	n := float64(len(pieces))
	for j := range sum {
		sum[j] /= n
	}
	return sum, nil
}
