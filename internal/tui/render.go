package tui

import (
	"fmt"
	"math"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"ats/internal/domain"
)

const barWidth = 30

var (
	titleStyle   = lipgloss.NewStyle().Bold(true)
	sectionStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("12"))
	scoreStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("10")).Bold(true)
	mutedStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
	missingStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("9"))
	matchStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("10"))
	barFullStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("10"))
)

// RenderBreakdown formats a score breakdown for the terminal.
func RenderBreakdown(b *domain.ScoreBreakdown) string {
	if b == nil {
		return mutedStyle.Render("No analysis yet.")
	}
	var sb strings.Builder

	sb.WriteString(sectionStyle.Render("ATS Score") + "\n")
	sb.WriteString(scoreBar(b.FinalScore) + "\n")
	sb.WriteString(scoreStyle.Render(fmt.Sprintf("Final ATS Score: %.2f%%", b.FinalScore)) + "\n")
	sb.WriteString(mutedStyle.Render(fmt.Sprintf("semantic %.2f  skills %.2f  experience %.2f",
		b.SemanticScore, b.SkillScore, b.ExperienceScore)) + "\n\n")

	sb.WriteString(sectionStyle.Render("Experience Detected") + "\n")
	sb.WriteString(fmt.Sprintf("%d years\n\n", b.ResumeExperience))

	sb.WriteString(sectionStyle.Render("Resume Skills") + "\n")
	sb.WriteString(skillList(b.ResumeSkills) + "\n\n")

	sb.WriteString(sectionStyle.Render("JD Skills") + "\n")
	sb.WriteString(skillList(b.JDSkills) + "\n\n")

	sb.WriteString(sectionStyle.Render("Missing Skills") + "\n")
	if len(b.MissingSkills) == 0 {
		sb.WriteString(matchStyle.Render("Great match"))
	} else {
		sb.WriteString(missingStyle.Render(skillList(b.MissingSkills)))
	}
	return sb.String()
}

func skillList(s domain.SkillSet) string {
	if len(s) == 0 {
		return mutedStyle.Render("none")
	}
	return strings.Join(s, ", ")
}

// scoreBar draws a fixed-width bar; scores outside [0, 100] are clipped for display only.
func scoreBar(score float64) string {
	filled := int(math.Round(math.Max(0, math.Min(100, score)) / 100 * barWidth))
	return barFullStyle.Render(strings.Repeat("█", filled)) + mutedStyle.Render(strings.Repeat("░", barWidth-filled))
}
