// Package gemini embeds text with the Google GenAI embedding models.
package gemini

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync/atomic"

	"google.golang.org/genai"
)

const (
	DefaultModel = "gemini-embedding-001"
	taskType     = "SEMANTIC_SIMILARITY"
)

type embedClient interface {
	EmbedContent(ctx context.Context, model string, contents []*genai.Content, config *genai.EmbedContentConfig) (*genai.EmbedContentResponse, error)
}

// Embedder wraps the GenAI client to produce dense sentence embeddings.
type Embedder struct {
	client     embedClient
	modelName  string
	dimensions int32
	dimension  atomic.Int64
}

// NewEmbedder creates an Embedder configured for the Gemini API backend.
// dimensions <= 0 keeps the model's native output size.
func NewEmbedder(ctx context.Context, apiKey, model string, dimensions int) (*Embedder, error) {
	apiKey = strings.TrimSpace(apiKey)
	if apiKey == "" {
		return nil, errors.New("gemini api key is required")
	}

	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  apiKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("create genai client: %w", err)
	}

	return newEmbedder(client.Models, model, dimensions), nil
}

func newEmbedder(client embedClient, model string, dimensions int) *Embedder {
	if model = strings.TrimSpace(model); model == "" {
		model = DefaultModel
	}
	if dimensions < 0 {
		dimensions = 0
	}
	return &Embedder{client: client, modelName: model, dimensions: int32(dimensions)}
}

func (e *Embedder) Name() string { return "gemini:" + e.modelName }

func (e *Embedder) Prepare(corpus []string) error { return nil }

func (e *Embedder) Dimension() int { return int(e.dimension.Load()) }

// Embed returns the embedding of text as float64 values.
func (e *Embedder) Embed(ctx context.Context, text string) ([]float64, error) {
	cfg := &genai.EmbedContentConfig{TaskType: taskType}
	if e.dimensions > 0 {
		dims := e.dimensions
		cfg.OutputDimensionality = &dims
	}

	resp, err := e.client.EmbedContent(ctx, e.modelName, genai.Text(text), cfg)
	if err != nil {
		return nil, fmt.Errorf("embed content: %w", err)
	}
	if resp == nil || len(resp.Embeddings) == 0 || resp.Embeddings[0] == nil || len(resp.Embeddings[0].Values) == 0 {
		return nil, errors.New("gemini api returned empty embedding")
	}

	values := resp.Embeddings[0].Values
	out := make([]float64, len(values))
	for i, v := range values {
		out[i] = float64(v)
	}
	e.dimension.CompareAndSwap(0, int64(len(out)))
	return out, nil
}
