package similarity

import (
	"context"
	"errors"
	"fmt"

	"ats/internal/domain"
	"ats/internal/embedding"
	"ats/internal/embedding/tfidf"
)

// Lexical compares texts by TF-IDF vectors fitted on exactly the two texts
// being compared. A fresh vectorizer is built for every call.
type Lexical struct {
	opts []tfidf.Option
}

// NewLexical creates the TF-IDF strategy.
func NewLexical(opts ...tfidf.Option) *Lexical {
	return &Lexical{opts: opts}
}

func (l *Lexical) Name() string { return "tfidf" }

func (l *Lexical) Similarity(ctx context.Context, a, b string) (float64, error) {
	vec := tfidf.NewEmbedder(l.opts...)
	if err := vec.Prepare([]string{a, b}); err != nil {
		if errors.Is(err, tfidf.ErrNoTokens) {
			return 0, &domain.AnalysisError{Op: "vectorize", Err: domain.ErrEmptyInput, Detail: "no terms in either text"}
		}
		return 0, err
	}
	return embedPair(ctx, vec, a, b)
}

// Dense compares texts by embeddings from a frozen sentence-embedding model.
type Dense struct {
	model embedding.Embedder
}

// NewDense creates the dense strategy around model.
func NewDense(model embedding.Embedder) *Dense {
	return &Dense{model: model}
}

func (d *Dense) Name() string { return "dense:" + d.model.Name() }

func (d *Dense) Similarity(ctx context.Context, a, b string) (float64, error) {
	return embedPair(ctx, d.model, a, b)
}

func embedPair(ctx context.Context, emb embedding.Embedder, a, b string) (float64, error) {
	va, err := emb.Embed(ctx, a)
	if err != nil {
		return 0, fmt.Errorf("embed resume: %w", err)
	}
	vb, err := emb.Embed(ctx, b)
	if err != nil {
		return 0, fmt.Errorf("embed job description: %w", err)
	}
	if len(va) != len(vb) {
		return 0, fmt.Errorf("embedding dimension mismatch: %d vs %d", len(va), len(vb))
	}
	return Cosine(va, vb), nil
}
