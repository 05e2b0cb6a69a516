package skills

import (
	"strings"

	"ats/internal/domain"
)

// Matcher finds vocabulary skills that occur in a text.
type Matcher struct {
	vocab *Vocabulary
}

// NewMatcher creates a matcher over vocab, falling back to the default vocabulary.
func NewMatcher(vocab *Vocabulary) *Matcher {
	if vocab == nil {
		vocab = Default()
	}
	return &Matcher{vocab: vocab}
}

// Vocabulary returns the vocabulary the matcher searches for.
func (m *Matcher) Vocabulary() *Vocabulary { return m.vocab }

// Extract returns every skill that appears as a literal substring of text.
// Matching is not word-bounded: "java" is found inside "javascript".
func (m *Matcher) Extract(text string) domain.SkillSet {
	lower := domain.Normalize(text)
	out := domain.SkillSet{}
	for _, skill := range m.vocab.skills {
		if strings.Contains(lower, skill) {
			out = append(out, skill)
		}
	}
	return out
}
