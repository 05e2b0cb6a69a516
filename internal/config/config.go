package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"

	"ats/internal/embedding/gemini"
	"ats/internal/embedding/openai"
	"ats/internal/scoring"
	"ats/internal/skills"
)

const (
	SimilarityTFIDF = "tfidf"
	SimilarityDense = "dense"

	ProviderOpenAI = "openai"
	ProviderGemini = "gemini"

	PresetCustom = "custom"
)

// TFIDFConfig configures the lexical similarity strategy.
type TFIDFConfig struct {
	Stopwords bool `yaml:"stopwords"`
}

// OpenAIConfig holds configuration for the OpenAI-compatible embedder.
type OpenAIConfig struct {
	BaseURL     string `yaml:"base_url"`
	APIKeyEnv   string `yaml:"api_key_env"`
	Model       string `yaml:"model"`
	Dimensions  int    `yaml:"dimensions" validate:"gte=0"`
	TimeoutSecs int    `yaml:"timeout_secs" validate:"gte=0"`
	MaxRetries  int    `yaml:"max_retries" validate:"gte=0"`
}

// GeminiConfig holds configuration for the Google GenAI embedder.
type GeminiConfig struct {
	APIKeyEnv  string `yaml:"api_key_env"`
	Model      string `yaml:"model"`
	Dimensions int    `yaml:"dimensions" validate:"gte=0"`
}

// DenseConfig selects and configures the embedding provider.
type DenseConfig struct {
	Provider       string       `yaml:"provider" validate:"oneof=openai gemini"`
	OpenAI         OpenAIConfig `yaml:"openai"`
	Gemini         GeminiConfig `yaml:"gemini"`
	ChunkSentences int          `yaml:"chunk_sentences" validate:"gte=0"`
	// CacheSize enables an in-memory cache of text vectors shared across
	// requests when > 0. Off by default.
	CacheSize int `yaml:"cache_size" validate:"gte=0"`
}

// SimilarityConfig selects the semantic similarity strategy.
type SimilarityConfig struct {
	Type  string      `yaml:"type" validate:"oneof=tfidf dense"`
	TFIDF TFIDFConfig `yaml:"tfidf"`
	Dense DenseConfig `yaml:"dense"`
}

// ScoringConfig selects the weighting preset. Weights are only read for
// the custom preset.
type ScoringConfig struct {
	Preset  string           `yaml:"preset" validate:"oneof=A B custom"`
	Weights *scoring.Weights `yaml:"weights,omitempty" validate:"required_if=Preset custom"`
}

// SkillsConfig overrides the built-in skill vocabulary.
type SkillsConfig struct {
	Vocabulary []string `yaml:"vocabulary,omitempty"`
	File       string   `yaml:"file,omitempty"`
}

// AnalysisConfig bounds a single analysis request.
type AnalysisConfig struct {
	TimeoutSecs int `yaml:"timeout_secs" validate:"gte=0"`
}

// LogConfig configures the zap logger.
type LogConfig struct {
	JSON  bool `yaml:"json"`
	Debug bool `yaml:"debug"`
}

// AppConfig is the root application configuration structure.
type AppConfig struct {
	Similarity SimilarityConfig `yaml:"similarity"`
	Scoring    ScoringConfig    `yaml:"scoring"`
	Skills     SkillsConfig     `yaml:"skills"`
	Analysis   AnalysisConfig   `yaml:"analysis"`
	Log        LogConfig        `yaml:"log"`
}

// Load reads a config from a specified path. If the file does not exist, returns defaults.
func Load(path string) (*AppConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return defaultConfig(), nil
		}
		return nil, err
	}
	cfg := defaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse config %s: %w", path, err)
	}
	applyConfigDefaults(cfg)
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// LoadDefault tries ./ats.yaml first, then ~/.config/ats/config.yaml.
// If neither exists, it writes defaults to ~/.config/ats/config.yaml and returns them.
func LoadDefault() (*AppConfig, string, error) {
	cwdPath := "ats.yaml"
	if _, err := os.Stat(cwdPath); err == nil {
		cfg, err := Load(cwdPath)
		return cfg, cwdPath, err
	}
	userPath, err := defaultUserConfigPath()
	if err != nil {
		return nil, "", err
	}
	if _, err := os.Stat(userPath); err == nil {
		cfg, err := Load(userPath)
		return cfg, userPath, err
	}
	cfg := defaultConfig()
	if err := Save(userPath, cfg); err != nil {
		return nil, "", err
	}
	return cfg, userPath, nil
}

// Save writes the config to the given path, creating directories as needed.
func Save(path string, cfg *AppConfig) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0o644)
}

// Validate checks the struct constraints of the configuration.
func (c *AppConfig) Validate() error {
	if err := validator.New().Struct(c); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}
	return nil
}

// ScoringWeights resolves the configured preset to concrete weights.
func (c *AppConfig) ScoringWeights() (scoring.Weights, error) {
	if c.Scoring.Preset == PresetCustom {
		if c.Scoring.Weights == nil {
			return scoring.Weights{}, errors.New("custom scoring preset requires weights")
		}
		return *c.Scoring.Weights, nil
	}
	return scoring.Preset(c.Scoring.Preset)
}

// SkillVocabulary returns the vocabulary from skills.file, skills.vocabulary
// or the built-in list, in that order of precedence.
func (c *AppConfig) SkillVocabulary() (*skills.Vocabulary, error) {
	if c.Skills.File != "" {
		return skills.LoadVocabulary(c.Skills.File)
	}
	if len(c.Skills.Vocabulary) > 0 {
		return skills.NewVocabulary(c.Skills.Vocabulary)
	}
	return skills.Default(), nil
}

// AnalysisTimeout returns the per-request timeout, zero meaning none.
func (c *AppConfig) AnalysisTimeout() time.Duration {
	return time.Duration(c.Analysis.TimeoutSecs) * time.Second
}

// SetStrategy overrides the similarity type, e.g. from a CLI flag.
func (c *AppConfig) SetStrategy(name string) error {
	c.Similarity.Type = strings.ToLower(strings.TrimSpace(name))
	return c.Validate()
}

// SetPreset overrides the scoring preset, e.g. from a CLI flag.
func (c *AppConfig) SetPreset(name string) error {
	c.Scoring.Preset = normalizePreset(name)
	return c.Validate()
}

func defaultUserConfigPath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".config", "ats", "config.yaml"), nil
}

func defaultConfig() *AppConfig {
	return &AppConfig{
		Similarity: SimilarityConfig{
			Type: SimilarityTFIDF,
			Dense: DenseConfig{
				Provider: ProviderOpenAI,
				OpenAI: OpenAIConfig{
					BaseURL:     openai.DefaultBaseURL,
					Model:       openai.DefaultModel,
					TimeoutSecs: 30,
					MaxRetries:  2,
				},
				Gemini: GeminiConfig{
					APIKeyEnv:  "GEMINI_API_KEY",
					Model:      gemini.DefaultModel,
					Dimensions: 768,
				},
			},
		},
		Scoring: ScoringConfig{Preset: "A"},
	}
}

func applyConfigDefaults(cfg *AppConfig) {
	cfg.Similarity.Type = strings.ToLower(strings.TrimSpace(cfg.Similarity.Type))
	if cfg.Similarity.Type == "" {
		cfg.Similarity.Type = SimilarityTFIDF
	}
	cfg.Similarity.Dense.Provider = strings.ToLower(strings.TrimSpace(cfg.Similarity.Dense.Provider))
	if cfg.Similarity.Dense.Provider == "" {
		cfg.Similarity.Dense.Provider = ProviderOpenAI
	}
	if cfg.Similarity.Dense.OpenAI.BaseURL == "" {
		cfg.Similarity.Dense.OpenAI.BaseURL = openai.DefaultBaseURL
	}
	if cfg.Similarity.Dense.OpenAI.Model == "" {
		cfg.Similarity.Dense.OpenAI.Model = openai.DefaultModel
	}
	if cfg.Similarity.Dense.OpenAI.TimeoutSecs == 0 {
		cfg.Similarity.Dense.OpenAI.TimeoutSecs = 30
	}
	if cfg.Similarity.Dense.Gemini.APIKeyEnv == "" {
		cfg.Similarity.Dense.Gemini.APIKeyEnv = "GEMINI_API_KEY"
	}
	if cfg.Similarity.Dense.Gemini.Model == "" {
		cfg.Similarity.Dense.Gemini.Model = gemini.DefaultModel
	}
	cfg.Scoring.Preset = normalizePreset(cfg.Scoring.Preset)
}

func normalizePreset(name string) string {
	name = strings.TrimSpace(name)
	switch {
	case name == "":
		return "A"
	case strings.EqualFold(name, PresetCustom):
		return PresetCustom
	default:
		return strings.ToUpper(name)
	}
}
