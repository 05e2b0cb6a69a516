// Package service is the request boundary of the scoring engine: it
// validates input, extracts resume text, bounds the request in time and
// delegates to the score aggregator.
package service

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"ats/internal/domain"
	"ats/internal/extract"
	"ats/internal/logger"
	"ats/internal/scoring"
)

var _ domain.Analyzer = (*AnalysisService)(nil)

// Option customizes an AnalysisService.
type Option func(*AnalysisService)

// WithTimeout bounds every analysis. Zero disables the bound.
func WithTimeout(d time.Duration) Option {
	return func(s *AnalysisService) { s.timeout = d }
}

// WithPreset records the preset name used in log entries.
func WithPreset(name string) Option {
	return func(s *AnalysisService) { s.preset = name }
}

// AnalysisService implements domain.Analyzer.
type AnalysisService struct {
	extractor  *extract.Extractor
	aggregator *scoring.Aggregator
	logger     *zap.Logger
	timeout    time.Duration
	preset     string
	newID      func() string
}

// NewAnalysisService wires an extractor and an aggregator into a service.
func NewAnalysisService(extractor *extract.Extractor, aggregator *scoring.Aggregator, log *zap.Logger, opts ...Option) *AnalysisService {
	if log == nil {
		log = zap.NewNop()
	}
	if extractor == nil {
		extractor = extract.New(log)
	}
	s := &AnalysisService{
		extractor:  extractor,
		aggregator: aggregator,
		logger:     log,
		newID:      uuid.NewString,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// AnalyzeText scores already extracted resume text against a job description.
func (s *AnalysisService) AnalyzeText(ctx context.Context, resumeText, jdText string) (*domain.ScoreBreakdown, error) {
	return s.analyze(ctx, s.requestLogger(), resumeText, jdText)
}

// AnalyzeDocument extracts text from doc and scores it against a job description.
func (s *AnalysisService) AnalyzeDocument(ctx context.Context, doc domain.Document, jdText string) (*domain.ScoreBreakdown, error) {
	log := s.requestLogger()
	if strings.TrimSpace(jdText) == "" {
		return nil, domain.NewEmptyInputError("job description")
	}
	resumeText, err := s.extractor.Extract(doc)
	if err != nil {
		log.Warn("resume extraction failed", zap.String("name", doc.Name), zap.Error(err))
		return nil, err
	}
	return s.analyze(ctx, log, resumeText, jdText)
}

// AnalyzeFile reads a resume from disk and scores it against a job description.
func (s *AnalysisService) AnalyzeFile(ctx context.Context, path, jdText string) (*domain.ScoreBreakdown, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read resume: %w", err)
	}
	return s.AnalyzeDocument(ctx, domain.Document{Name: filepath.Base(path), Data: data}, jdText)
}

func (s *AnalysisService) requestLogger() *zap.Logger {
	return logger.WithAnalysis(s.logger, s.newID(), s.aggregator.Strategy(), s.preset)
}

func (s *AnalysisService) analyze(ctx context.Context, log *zap.Logger, resumeText, jdText string) (*domain.ScoreBreakdown, error) {
	start := time.Now()

	resumeText = domain.Normalize(resumeText)
	jdText = domain.Normalize(jdText)
	if strings.TrimSpace(resumeText) == "" {
		return nil, domain.NewEmptyInputError("resume")
	}
	if strings.TrimSpace(jdText) == "" {
		return nil, domain.NewEmptyInputError("job description")
	}

	if s.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, s.timeout)
		defer cancel()
	}

	log.Debug("analysis started",
		zap.Int("resume_chars", len(resumeText)),
		zap.String("jd", logger.TruncateForLog(jdText, 80)),
	)

	result, err := s.aggregator.Aggregate(ctx, resumeText, jdText)
	if err != nil {
		log.Error("analysis failed", zap.Error(err), zap.Duration("took", time.Since(start)))
		return nil, err
	}

	log.Info("analysis finished",
		zap.Float64("final_score", result.FinalScore),
		zap.Float64("semantic_score", result.SemanticScore),
		zap.Float64("skill_score", result.SkillScore),
		zap.Float64("experience_score", result.ExperienceScore),
		zap.Int("missing_skills", len(result.MissingSkills)),
		zap.Duration("took", time.Since(start)),
	)
	return result, nil
}
