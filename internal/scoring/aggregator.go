// Package scoring combines semantic, skill and experience sub-scores into
// one weighted compatibility score.
package scoring

import (
	"context"

	"go.uber.org/zap"

	"ats/internal/domain"
	"ats/internal/experience"
	"ats/internal/skills"
)

const (
	fullScore         = 100.0
	neutralSkillScore = 50.0
)

// SemanticScorer scores semantic closeness on a 0-100 scale.
type SemanticScorer interface {
	Score(ctx context.Context, resumeText, jdText string) (float64, error)
	Strategy() string
}

// Aggregator produces a ScoreBreakdown for a resume/JD pair.
type Aggregator struct {
	semantic SemanticScorer
	skills   *skills.Matcher
	weights  Weights
	logger   *zap.Logger
}

// NewAggregator wires the sub-scorers together.
func NewAggregator(semantic SemanticScorer, matcher *skills.Matcher, weights Weights, logger *zap.Logger) *Aggregator {
	if matcher == nil {
		matcher = skills.NewMatcher(nil)
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Aggregator{semantic: semantic, skills: matcher, weights: weights, logger: logger}
}

// Weights returns the weighting in use.
func (a *Aggregator) Weights() Weights { return a.weights }

// Strategy returns the similarity strategy name.
func (a *Aggregator) Strategy() string { return a.semantic.Strategy() }

// Aggregate scores resumeText against jdText.
func (a *Aggregator) Aggregate(ctx context.Context, resumeText, jdText string) (*domain.ScoreBreakdown, error) {
	semantic, err := a.semantic.Score(ctx, resumeText, jdText)
	if err != nil {
		return nil, err
	}

	resumeSkills := a.skills.Extract(resumeText)
	jdSkills := a.skills.Extract(jdText)
	skillScore := SkillScore(resumeSkills, jdSkills)

	resumeYears := experience.Extract(resumeText)
	jdYears := experience.Extract(jdText)
	expScore := ExperienceScore(resumeYears, jdYears)

	final := domain.Round2(a.weights.Combine(semantic, skillScore, expScore))

	a.logger.Debug("score aggregated",
		zap.Float64("semantic", semantic),
		zap.Float64("skill", skillScore),
		zap.Float64("experience", expScore),
		zap.Float64("final", final),
	)

	return &domain.ScoreBreakdown{
		FinalScore:       final,
		SemanticScore:    semantic,
		SkillScore:       skillScore,
		ExperienceScore:  expScore,
		ResumeSkills:     resumeSkills,
		JDSkills:         jdSkills,
		MissingSkills:    jdSkills.Difference(resumeSkills),
		ResumeExperience: resumeYears,
		JDExperience:     jdYears,
	}, nil
}

// SkillScore is the percentage of JD skills found in the resume, or a
// neutral 50 when the JD names no vocabulary skills.
func SkillScore(resume, jd domain.SkillSet) float64 {
	if len(jd) == 0 {
		return neutralSkillScore
	}
	return float64(len(resume.Intersect(jd))) / float64(len(jd)) * fullScore
}

// ExperienceScore gives full credit when the JD states no requirement or the
// resume meets it, and linear partial credit otherwise.
func ExperienceScore(resumeYears, jdYears int) float64 {
	if jdYears == 0 || resumeYears >= jdYears {
		return fullScore
	}
	return float64(resumeYears) / float64(jdYears) * fullScore
}
