// Package similarity scores the semantic closeness of two texts.
package similarity

import (
	"context"
	"strings"

	"go.uber.org/zap"

	"ats/internal/domain"
)

// Strategy computes the cosine similarity of two texts in [-1, 1].
type Strategy interface {
	Name() string
	Similarity(ctx context.Context, a, b string) (float64, error)
}

// Scorer turns a Strategy's cosine similarity into a 0-100 style score.
// The result is not clamped, so a negative cosine gives a negative score.
type Scorer struct {
	strategy Strategy
	logger   *zap.Logger
}

// NewScorer creates a Scorer backed by strategy.
func NewScorer(strategy Strategy, logger *zap.Logger) *Scorer {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Scorer{strategy: strategy, logger: logger}
}

// Strategy returns the name of the underlying strategy.
func (s *Scorer) Strategy() string { return s.strategy.Name() }

// Score returns 100 times the cosine similarity of resumeText and jdText.
// Blank input fails with domain.ErrEmptyInput.
func (s *Scorer) Score(ctx context.Context, resumeText, jdText string) (float64, error) {
	if strings.TrimSpace(resumeText) == "" {
		return 0, domain.NewEmptyInputError("resume")
	}
	if strings.TrimSpace(jdText) == "" {
		return 0, domain.NewEmptyInputError("job description")
	}
	if err := ctx.Err(); err != nil {
		return 0, err
	}
	sim, err := s.strategy.Similarity(ctx, resumeText, jdText)
	if err != nil {
		return 0, err
	}
	s.logger.Debug("semantic similarity computed",
		zap.String("strategy", s.strategy.Name()),
		zap.Float64("cosine", sim),
	)
	return sim * 100, nil
}
