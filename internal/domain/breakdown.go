package domain

import (
	"strconv"
	"strings"
)

// SkillSet is a set of vocabulary skills kept in vocabulary order.
type SkillSet []string

// Contains reports whether skill is a member of the set.
func (s SkillSet) Contains(skill string) bool {
	for _, v := range s {
		if v == skill {
			return true
		}
	}
	return false
}

// Intersect returns the members of s that are also in other, in s order.
func (s SkillSet) Intersect(other SkillSet) SkillSet {
	out := SkillSet{}
	for _, v := range s {
		if other.Contains(v) {
			out = append(out, v)
		}
	}
	return out
}

// Difference returns the members of s that are not in other, in s order.
func (s SkillSet) Difference(other SkillSet) SkillSet {
	out := SkillSet{}
	for _, v := range s {
		if !other.Contains(v) {
			out = append(out, v)
		}
	}
	return out
}

// ScoreBreakdown is the explainable result of one resume/JD analysis.
// All scores are on a 0-100 scale; SemanticScore is not clamped and may
// fall slightly outside it for unusual embeddings.
type ScoreBreakdown struct {
	FinalScore       float64  `json:"finalScore"`
	SemanticScore    float64  `json:"semanticScore"`
	SkillScore       float64  `json:"skillScore"`
	ExperienceScore  float64  `json:"experienceScore"`
	ResumeSkills     SkillSet `json:"resumeSkills"`
	JDSkills         SkillSet `json:"jdSkills"`
	MissingSkills    SkillSet `json:"missingSkills"`
	ResumeExperience int      `json:"resumeExperienceYears"`
	JDExperience     int      `json:"-"`
}

// Normalize lowercases raw document text.
func Normalize(text string) string {
	return strings.ToLower(text)
}

// Round2 rounds v to two decimal places. Exact ties go to the even digit.
func Round2(v float64) float64 {
	r, err := strconv.ParseFloat(strconv.FormatFloat(v, 'f', 2, 64), 64)
	if err != nil {
		return v
	}
	return r
}
