package scoring

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ats/internal/domain"
	"ats/internal/similarity"
	"ats/internal/skills"
)

type fixedSemantic struct {
	score float64
	err   error
}

func (f fixedSemantic) Score(context.Context, string, string) (float64, error) {
	return f.score, f.err
}

func (f fixedSemantic) Strategy() string { return "fixed" }

func TestSkillScore(t *testing.T) {
	tests := []struct {
		name   string
		resume domain.SkillSet
		jd     domain.SkillSet
		want   float64
	}{
		{name: "no jd skills is neutral", resume: domain.SkillSet{"python"}, jd: domain.SkillSet{}, want: 50},
		{name: "no skills anywhere is neutral", resume: nil, jd: nil, want: 50},
		{name: "half matched", resume: domain.SkillSet{"python", "sql"}, jd: domain.SkillSet{"python", "java"}, want: 50},
		{name: "all matched", resume: domain.SkillSet{"python", "java", "aws"}, jd: domain.SkillSet{"python", "java"}, want: 100},
		{name: "none matched", resume: domain.SkillSet{"aws"}, jd: domain.SkillSet{"python", "java", "sql"}, want: 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.want, SkillScore(tt.resume, tt.jd), 1e-12)
		})
	}
}

func TestExperienceScore(t *testing.T) {
	for _, resume := range []int{0, 1, 5, 40} {
		assert.Equal(t, 100.0, ExperienceScore(resume, 0), "no requirement gives full credit")
	}
	assert.Equal(t, 100.0, ExperienceScore(5, 3))
	assert.Equal(t, 100.0, ExperienceScore(3, 3))
	assert.Equal(t, 0.0, ExperienceScore(0, 4))
	assert.Equal(t, 2.0/5.0*100, ExperienceScore(2, 5))
}

func TestPreset(t *testing.T) {
	w, err := Preset("a")
	require.NoError(t, err)
	assert.Equal(t, PresetA, w)

	w, err = Preset("")
	require.NoError(t, err)
	assert.Equal(t, PresetA, w)

	w, err = Preset("B")
	require.NoError(t, err)
	assert.Equal(t, PresetB, w)

	_, err = Preset("C")
	assert.Error(t, err)
}

func TestCombine(t *testing.T) {
	assert.InDelta(t, 0.4*80+0.35*50+0.25*100, PresetA.Combine(80, 50, 100), 1e-9)
	// preset B adds 15 points even when every measurement is zero
	assert.InDelta(t, 15, PresetB.Combine(0, 0, 0), 1e-9)
	assert.InDelta(t, 0.35*80+0.30*50+0.20*100+15, PresetB.Combine(80, 50, 100), 1e-9)
}

func TestAggregate_EndToEndScenario(t *testing.T) {
	agg := NewAggregator(similarity.NewScorer(similarity.NewLexical(), nil), skills.NewMatcher(nil), PresetA, nil)

	got, err := agg.Aggregate(context.Background(), "python sql 5 years experience", "looking for python java 3 years experience")
	require.NoError(t, err)

	assert.ElementsMatch(t, []string{"python", "sql"}, got.ResumeSkills)
	assert.ElementsMatch(t, []string{"python", "java"}, got.JDSkills)
	assert.Equal(t, domain.SkillSet{"java"}, got.MissingSkills)
	assert.Equal(t, 50.0, got.SkillScore)
	assert.Equal(t, 5, got.ResumeExperience)
	assert.Equal(t, 3, got.JDExperience)
	assert.Equal(t, 100.0, got.ExperienceScore)
	assert.GreaterOrEqual(t, got.FinalScore, 0.0)
	assert.LessOrEqual(t, got.FinalScore, 100.0)
	assert.InDelta(t, domain.Round2(PresetA.Combine(got.SemanticScore, 50, 100)), got.FinalScore, 1e-9)

	// changing the JD skill list changes the skill evidence
	other, err := agg.Aggregate(context.Background(), "python sql 5 years experience", "looking for python sql docker 3 years experience")
	require.NoError(t, err)
	assert.InDelta(t, 200.0/3.0, other.SkillScore, 1e-9)
	assert.Equal(t, domain.SkillSet{"docker"}, other.MissingSkills)
}

func TestAggregate_Deterministic(t *testing.T) {
	agg := NewAggregator(similarity.NewScorer(similarity.NewLexical(), nil), nil, PresetB, nil)
	resume := "senior python engineer, 8+ years, aws docker kubernetes, sql and pandas"
	jd := "we need 5 years python, aws, terraform and kubernetes"

	first, err := agg.Aggregate(context.Background(), resume, jd)
	require.NoError(t, err)
	for i := 0; i < 10; i++ {
		again, err := agg.Aggregate(context.Background(), resume, jd)
		require.NoError(t, err)
		assert.Equal(t, first, again)
	}
}

func TestAggregate_FixedSemantic(t *testing.T) {
	agg := NewAggregator(fixedSemantic{score: 60}, nil, PresetA, nil)
	got, err := agg.Aggregate(context.Background(), "2 years of python", "python and sql, 4 years")
	require.NoError(t, err)

	assert.Equal(t, 60.0, got.SemanticScore)
	assert.Equal(t, 50.0, got.SkillScore)
	assert.Equal(t, 50.0, got.ExperienceScore)
	assert.Equal(t, domain.Round2(0.4*60+0.35*50+0.25*50), got.FinalScore)
	assert.Equal(t, "fixed", agg.Strategy())
	assert.Equal(t, PresetA, agg.Weights())
}

func TestAggregate_NoJDSkillsIsNeutral(t *testing.T) {
	agg := NewAggregator(fixedSemantic{score: 10}, nil, PresetA, nil)
	got, err := agg.Aggregate(context.Background(), "python java sql aws", "friendly team player")
	require.NoError(t, err)
	assert.Equal(t, 50.0, got.SkillScore)
	assert.Empty(t, got.MissingSkills)
	assert.Equal(t, 100.0, got.ExperienceScore)
}

func TestAggregate_RoundsFinalScore(t *testing.T) {
	agg := NewAggregator(fixedSemantic{score: 33.333333}, nil, PresetA, nil)
	got, err := agg.Aggregate(context.Background(), "x", "y")
	require.NoError(t, err)
	assert.Equal(t, domain.Round2(0.4*33.333333+0.35*50+0.25*100), got.FinalScore)
	assert.Equal(t, got.FinalScore, domain.Round2(got.FinalScore))
}

func TestAggregate_PropagatesErrors(t *testing.T) {
	boom := errors.New("boom")
	agg := NewAggregator(fixedSemantic{err: boom}, nil, PresetA, nil)
	_, err := agg.Aggregate(context.Background(), "a", "b")
	assert.ErrorIs(t, err, boom)

	lexical := NewAggregator(similarity.NewScorer(similarity.NewLexical(), nil), nil, PresetA, nil)
	_, err = lexical.Aggregate(context.Background(), "python", "")
	assert.ErrorIs(t, err, domain.ErrEmptyInput)
}

func TestAggregate_TieRoundsToEven(t *testing.T) {
	agg := NewAggregator(similarity.NewScorer(similarity.NewLexical(), nil), nil, PresetA, nil)
	got, err := agg.Aggregate(context.Background(), "javascript reactjs pythonic", "java react python sql aws docker flask numpy")
	require.NoError(t, err)

	assert.Equal(t, 0.0, got.SemanticScore)
	assert.Equal(t, 37.5, got.SkillScore)
	assert.Equal(t, 100.0, got.ExperienceScore)
	assert.Equal(t, 38.12, got.FinalScore)
}
