package service

import (
	"context"
	"fmt"
	"os"
	"time"

	"go.uber.org/zap"

	"ats/internal/chunker"
	"ats/internal/config"
	"ats/internal/embedding"
	"ats/internal/embedding/gemini"
	"ats/internal/embedding/openai"
	"ats/internal/embedding/tfidf"
	"ats/internal/extract"
	"ats/internal/scoring"
	"ats/internal/similarity"
	"ats/internal/skills"
)

// New assembles an AnalysisService from configuration. The dense model, if
// any, is loaded on the first request and shared by later ones.
func New(cfg *config.AppConfig, log *zap.Logger) (*AnalysisService, error) {
	if log == nil {
		log = zap.NewNop()
	}

	strategy, err := NewStrategy(cfg.Similarity)
	if err != nil {
		return nil, err
	}
	weights, err := cfg.ScoringWeights()
	if err != nil {
		return nil, err
	}
	vocab, err := cfg.SkillVocabulary()
	if err != nil {
		return nil, err
	}

	aggregator := scoring.NewAggregator(
		similarity.NewScorer(strategy, log.Named("similarity")),
		skills.NewMatcher(vocab),
		weights,
		log.Named("scoring"),
	)
	return NewAnalysisService(
		extract.New(log.Named("extract")),
		aggregator,
		log,
		WithTimeout(cfg.AnalysisTimeout()),
		WithPreset(cfg.Scoring.Preset),
	), nil
}

// NewStrategy returns the similarity strategy selected by cfg.
func NewStrategy(cfg config.SimilarityConfig) (similarity.Strategy, error) {
	switch cfg.Type {
	case config.SimilarityTFIDF, "":
		var opts []tfidf.Option
		if cfg.TFIDF.Stopwords {
			opts = append(opts, tfidf.WithStopwords())
		}
		return similarity.NewLexical(opts...), nil
	case config.SimilarityDense:
		model, err := NewDenseModel(cfg.Dense)
		if err != nil {
			return nil, err
		}
		return similarity.NewDense(model), nil
	default:
		return nil, fmt.Errorf("unknown similarity strategy: %s", cfg.Type)
	}
}

// NewDenseModel returns a lazily loaded embedding model for the configured
// provider, mean-pooled over sentence windows when chunking is enabled and
// memoized across requests only when a cache size is set.
func NewDenseModel(cfg config.DenseConfig) (embedding.Embedder, error) {
	var model embedding.Embedder
	switch cfg.Provider {
	case config.ProviderOpenAI, "":
		oc := cfg.OpenAI
		model = embedding.NewLazy("openai:"+oc.Model, func(ctx context.Context) (embedding.Embedder, error) {
			client, err := openai.NewClient(openai.Config{
				BaseURL:    oc.BaseURL,
				APIKeyEnv:  oc.APIKeyEnv,
				Model:      oc.Model,
				Dimensions: oc.Dimensions,
				Timeout:    time.Duration(oc.TimeoutSecs) * time.Second,
				MaxRetries: oc.MaxRetries,
			})
			if err != nil {
				return nil, err
			}
			return warmUp(ctx, client)
		})
	case config.ProviderGemini:
		gc := cfg.Gemini
		model = embedding.NewLazy("gemini:"+gc.Model, func(ctx context.Context) (embedding.Embedder, error) {
			emb, err := gemini.NewEmbedder(ctx, os.Getenv(gc.APIKeyEnv), gc.Model, gc.Dimensions)
			if err != nil {
				return nil, err
			}
			return warmUp(ctx, emb)
		})
	default:
		return nil, fmt.Errorf("unknown embedding provider: %s", cfg.Provider)
	}

	if cfg.ChunkSentences > 0 {
		model = embedding.NewPooled(model, chunker.NewSentenceChunker(cfg.ChunkSentences, 0))
	}
	if cfg.CacheSize > 0 {
		model = embedding.NewCached(model, cfg.CacheSize)
	}
	return model, nil
}

// warmUp embeds a short text so that an unreachable endpoint or a missing
// model fails model loading rather than the first comparison.
func warmUp(ctx context.Context, model embedding.Embedder) (embedding.Embedder, error) {
	if _, err := model.Embed(ctx, warmUpText); err != nil {
		return nil, fmt.Errorf("warm up %s: %w", model.Name(), err)
	}
	return model, nil
}

const warmUpText = "warm up"
