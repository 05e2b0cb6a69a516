package similarity

import (
	"context"
	"errors"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ats/internal/domain"
	"ats/internal/embedding"
)

type mapEmbedder struct {
	vectors map[string][]float64
}

func (m *mapEmbedder) Name() string                  { return "map" }
func (m *mapEmbedder) Prepare(corpus []string) error { return nil }
func (m *mapEmbedder) Dimension() int                { return 2 }
func (m *mapEmbedder) Embed(_ context.Context, text string) ([]float64, error) {
	v, ok := m.vectors[text]
	if !ok {
		return nil, errors.New("unknown text")
	}
	return v, nil
}

func TestCosine(t *testing.T) {
	assert.InDelta(t, 1.0, Cosine([]float64{1, 2}, []float64{2, 4}), 1e-12)
	assert.InDelta(t, 0.0, Cosine([]float64{1, 0}, []float64{0, 1}), 1e-12)
	assert.InDelta(t, -1.0, Cosine([]float64{1, 0}, []float64{-3, 0}), 1e-12)
	assert.Equal(t, 0.0, Cosine([]float64{0, 0}, []float64{1, 1}))
	assert.Equal(t, 0.0, Cosine(nil, nil))
}

func TestLexical_KnownValue(t *testing.T) {
	s := NewScorer(NewLexical(), nil)
	got, err := s.Score(context.Background(), "python sql", "python java")
	require.NoError(t, err)

	w := math.Log(1.5) + 1
	assert.InDelta(t, 100/(1+w*w), got, 1e-9)
	assert.Equal(t, "tfidf", s.Strategy())
}

func TestLexical_IdenticalAndDisjoint(t *testing.T) {
	s := NewScorer(NewLexical(), nil)

	same, err := s.Score(context.Background(), "go developer with kubernetes", "go developer with kubernetes")
	require.NoError(t, err)
	assert.InDelta(t, 100, same, 1e-9)

	none, err := s.Score(context.Background(), "python developer", "chef cook")
	require.NoError(t, err)
	assert.Equal(t, 0.0, none)
}

func TestLexical_Deterministic(t *testing.T) {
	s := NewScorer(NewLexical(), nil)
	resume := "python sql 5 years experience building data pipelines"
	jd := "looking for python java 3 years experience"
	first, err := s.Score(context.Background(), resume, jd)
	require.NoError(t, err)
	for i := 0; i < 20; i++ {
		again, err := s.Score(context.Background(), resume, jd)
		require.NoError(t, err)
		assert.Equal(t, first, again)
	}
}

func TestScore_EmptyInput(t *testing.T) {
	s := NewScorer(NewLexical(), nil)

	_, err := s.Score(context.Background(), "", "python")
	assert.ErrorIs(t, err, domain.ErrEmptyInput)

	_, err = s.Score(context.Background(), "python", "   ")
	assert.ErrorIs(t, err, domain.ErrEmptyInput)

	_, err = s.Score(context.Background(), "! ?", "- +")
	assert.ErrorIs(t, err, domain.ErrEmptyInput)
}

func TestDense_NotClamped(t *testing.T) {
	model := &mapEmbedder{vectors: map[string][]float64{
		"resume": {1, 0},
		"jd":     {-1, 0},
		"other":  {1, 1},
	}}
	s := NewScorer(NewDense(model), nil)

	got, err := s.Score(context.Background(), "resume", "jd")
	require.NoError(t, err)
	assert.InDelta(t, -100, got, 1e-9)

	got, err = s.Score(context.Background(), "resume", "other")
	require.NoError(t, err)
	assert.InDelta(t, 100/math.Sqrt2, got, 1e-9)
	assert.Equal(t, "dense:map", s.Strategy())
}

func TestDense_DimensionMismatch(t *testing.T) {
	model := &mapEmbedder{vectors: map[string][]float64{"a": {1, 0}, "b": {1}}}
	_, err := NewScorer(NewDense(model), nil).Score(context.Background(), "a", "b")
	assert.Error(t, err)
}

func TestDense_ModelInitFailure(t *testing.T) {
	lazy := embedding.NewLazy("missing", func(context.Context) (embedding.Embedder, error) {
		return nil, errors.New("no weights")
	})
	_, err := NewScorer(NewDense(lazy), nil).Score(context.Background(), "a", "b")
	assert.ErrorIs(t, err, domain.ErrModelInitialization)
}
