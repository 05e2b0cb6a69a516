// Package skills detects vocabulary skills in normalized document text.
package skills

import (
	"bufio"
	"bytes"
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

// DefaultVocabulary is the built-in skill list.
var DefaultVocabulary = []string{
	"python", "sql", "machine learning", "deep learning",
	"tensorflow", "pytorch", "react", "springboot",
	"aws", "docker", "kubernetes", "flask",
	"data analysis", "nlp", "pandas", "numpy",
	"power bi", "excel", "c++", "java",
}

// Vocabulary is an immutable ordered set of canonical lowercase skills.
type Vocabulary struct {
	skills []string
}

// NewVocabulary trims and lowercases entries, dropping blanks and duplicates
// while keeping first-seen order.
func NewVocabulary(entries []string) (*Vocabulary, error) {
	seen := make(map[string]struct{}, len(entries))
	skills := make([]string, 0, len(entries))
	for _, e := range entries {
		s := strings.ToLower(strings.TrimSpace(e))
		if s == "" {
			continue
		}
		if _, ok := seen[s]; ok {
			continue
		}
		seen[s] = struct{}{}
		skills = append(skills, s)
	}
	if len(skills) == 0 {
		return nil, fmt.Errorf("skill vocabulary is empty")
	}
	return &Vocabulary{skills: skills}, nil
}

// Default returns the built-in vocabulary.
func Default() *Vocabulary {
	v, _ := NewVocabulary(DefaultVocabulary)
	return v
}

// LoadVocabulary reads a vocabulary file. A YAML sequence is accepted;
// otherwise every non-empty line not starting with '#' is one skill.
func LoadVocabulary(path string) (*Vocabulary, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read skill vocabulary: %w", err)
	}
	var list []string
	if err := yaml.Unmarshal(data, &list); err == nil && len(list) > 0 {
		return NewVocabulary(list)
	}
	sc := bufio.NewScanner(bytes.NewReader(data))
	for sc.Scan() {
		line := strings.TrimSpace(sc.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		list = append(list, line)
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("read skill vocabulary: %w", err)
	}
	return NewVocabulary(list)
}

// Skills returns a copy of the vocabulary entries.
func (v *Vocabulary) Skills() []string {
	out := make([]string, len(v.skills))
	copy(out, v.skills)
	return out
}

// Len returns the number of skills.
func (v *Vocabulary) Len() int { return len(v.skills) }
