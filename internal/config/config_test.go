package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ats/internal/scoring"
	"ats/internal/skills"
)

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoad_MissingFileReturnsDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "absent.yaml"))
	require.NoError(t, err)

	assert.Equal(t, SimilarityTFIDF, cfg.Similarity.Type)
	assert.Equal(t, ProviderOpenAI, cfg.Similarity.Dense.Provider)
	assert.Zero(t, cfg.Similarity.Dense.CacheSize, "vector cache is opt-in")
	assert.Equal(t, "A", cfg.Scoring.Preset)
	assert.Zero(t, cfg.AnalysisTimeout())

	w, err := cfg.ScoringWeights()
	require.NoError(t, err)
	assert.Equal(t, scoring.PresetA, w)

	vocab, err := cfg.SkillVocabulary()
	require.NoError(t, err)
	assert.Equal(t, len(skills.DefaultVocabulary), vocab.Len())
}

func TestLoad_PartialFileKeepsDefaults(t *testing.T) {
	path := writeFile(t, "ats.yaml", `
similarity:
  type: Dense
  dense:
    provider: gemini
scoring:
  preset: b
analysis:
  timeout_secs: 5
log:
  json: true
`)
	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, SimilarityDense, cfg.Similarity.Type)
	assert.Equal(t, ProviderGemini, cfg.Similarity.Dense.Provider)
	assert.Equal(t, "GEMINI_API_KEY", cfg.Similarity.Dense.Gemini.APIKeyEnv)
	assert.Equal(t, "gemini-embedding-001", cfg.Similarity.Dense.Gemini.Model)
	assert.Equal(t, "B", cfg.Scoring.Preset)
	assert.Equal(t, 5*time.Second, cfg.AnalysisTimeout())
	assert.True(t, cfg.Log.JSON)
	assert.False(t, cfg.Log.Debug)

	w, err := cfg.ScoringWeights()
	require.NoError(t, err)
	assert.Equal(t, scoring.PresetB, w)
}

func TestLoad_CustomWeights(t *testing.T) {
	path := writeFile(t, "ats.yaml", `
scoring:
  preset: custom
  weights:
    semantic: 0.5
    skill: 0.3
    experience: 0.2
`)
	cfg, err := Load(path)
	require.NoError(t, err)

	w, err := cfg.ScoringWeights()
	require.NoError(t, err)
	assert.Equal(t, scoring.Weights{Semantic: 0.5, Skill: 0.3, Experience: 0.2}, w)
}

func TestLoad_Invalid(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{name: "unknown strategy", content: "similarity:\n  type: bm25\n"},
		{name: "unknown provider", content: "similarity:\n  dense:\n    provider: cohere\n"},
		{name: "unknown preset", content: "scoring:\n  preset: C\n"},
		{name: "custom without weights", content: "scoring:\n  preset: custom\n"},
		{name: "negative weight", content: "scoring:\n  preset: custom\n  weights:\n    semantic: -1\n"},
		{name: "negative timeout", content: "analysis:\n  timeout_secs: -3\n"},
		{name: "malformed yaml", content: "similarity: [\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Load(writeFile(t, "ats.yaml", tt.content))
			assert.Error(t, err)
		})
	}
}

func TestSkillVocabulary_Sources(t *testing.T) {
	cfg := defaultConfig()
	cfg.Skills.Vocabulary = []string{" Go ", "Rust", "go"}
	vocab, err := cfg.SkillVocabulary()
	require.NoError(t, err)
	assert.Equal(t, []string{"go", "rust"}, vocab.Skills())

	cfg.Skills.File = writeFile(t, "skills.txt", "# languages\nErlang\n\nElixir\n")
	vocab, err = cfg.SkillVocabulary()
	require.NoError(t, err)
	assert.Equal(t, []string{"erlang", "elixir"}, vocab.Skills())

	cfg.Skills.File = filepath.Join(t.TempDir(), "missing.txt")
	_, err = cfg.SkillVocabulary()
	assert.Error(t, err)
}

func TestOverrides(t *testing.T) {
	cfg := defaultConfig()

	require.NoError(t, cfg.SetStrategy(" DENSE "))
	assert.Equal(t, SimilarityDense, cfg.Similarity.Type)
	assert.Error(t, cfg.SetStrategy("word2vec"))

	require.NoError(t, cfg.SetPreset("b"))
	assert.Equal(t, "B", cfg.Scoring.Preset)
	assert.Error(t, cfg.SetPreset("Custom"), "custom without weights")
}

func TestSaveAndLoadRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "config.yaml")
	cfg := defaultConfig()
	cfg.Similarity.TFIDF.Stopwords = true
	cfg.Scoring.Preset = "B"
	require.NoError(t, Save(path, cfg))

	loaded, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, cfg, loaded)
}

func TestLoadDefault_WritesUserConfig(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)
	t.Chdir(t.TempDir())

	cfg, path, err := LoadDefault()
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(home, ".config", "ats", "config.yaml"), path)
	assert.Equal(t, defaultConfig(), cfg)
	assert.FileExists(t, path)

	require.NoError(t, os.WriteFile("ats.yaml", []byte("scoring:\n  preset: B\n"), 0o644))
	cfg, path, err = LoadDefault()
	require.NoError(t, err)
	assert.Equal(t, "ats.yaml", path)
	assert.Equal(t, "B", cfg.Scoring.Preset)
}
