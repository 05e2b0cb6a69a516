package tui

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"ats/internal/domain"
)

type analysisMsg struct {
	result *domain.ScoreBreakdown
	err    error
}

// Model is the Bubble Tea model for the interactive analyzer: the job
// description is typed into a text area and the breakdown for the loaded
// resume is shown in a scrollable viewport.
type Model struct {
	analyzer domain.Analyzer
	resume   domain.Document
	input    textarea.Model
	viewport viewport.Model
	spinner  spinner.Model
	result   *domain.ScoreBreakdown
	status   string
	busy     bool
	ready    bool
}

// New creates a new TUI model instance.
func New(analyzer domain.Analyzer, resume domain.Document) Model {
	ta := textarea.New()
	ta.Placeholder = "Paste the job description, then press ctrl+s"
	ta.ShowLineNumbers = false
	ta.CharLimit = 0
	ta.SetHeight(inputHeight)
	ta.Focus()
	vp := viewport.New(0, 0)
	sp := spinner.New()
	sp.Spinner = spinner.Dot
	return Model{
		analyzer: analyzer,
		resume:   resume,
		input:    ta,
		viewport: vp,
		spinner:  sp,
		status:   fmt.Sprintf("Loaded %s. ctrl+s analyze, pgup/pgdn scroll, esc quit.", resume.Name),
	}
}

const inputHeight = 8

// Init initializes the model (text area cursor blink).
func (m Model) Init() tea.Cmd { return textarea.Blink }

// Result returns the last successful breakdown.
func (m Model) Result() *domain.ScoreBreakdown { return m.result }

// Update handles key and window events and updates the view state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.ready = true
		_, rh := resultBoxStyle.GetFrameSize()
		iw, ih := inputBoxStyle.GetFrameSize()
		reserved := 1 + 1 + inputHeight + ih + 1 // header, status, spacer
		m.input.SetWidth(max(20, msg.Width-iw))
		m.viewport.Width = max(20, msg.Width)
		m.viewport.Height = max(3, msg.Height-reserved-rh)
		m.viewport.SetContent(RenderBreakdown(m.result))
		return m, nil
	case analysisMsg:
		m.busy = false
		if msg.err != nil {
			m.status = "Error: " + msg.err.Error()
			return m, nil
		}
		m.result = msg.result
		m.status = fmt.Sprintf("Scored %s: %.2f%%", m.resume.Name, msg.result.FinalScore)
		m.viewport.SetContent(RenderBreakdown(m.result))
		m.viewport.GotoTop()
		return m, nil
	case spinner.TickMsg:
		if !m.busy {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd
	case tea.KeyMsg:
		switch msg.Type {
		case tea.KeyCtrlC, tea.KeyCtrlD, tea.KeyEsc:
			return m, tea.Quit
		case tea.KeyCtrlS:
			if m.busy {
				return m, nil
			}
			jd := strings.TrimSpace(m.input.Value())
			if jd == "" {
				m.status = "Paste a job description first."
				return m, nil
			}
			m.busy = true
			m.status = "Analyzing..."
			return m, tea.Batch(m.spinner.Tick, m.analyze(jd))
		case tea.KeyPgUp, tea.KeyPgDown:
			var cmd tea.Cmd
			m.viewport, cmd = m.viewport.Update(msg)
			return m, cmd
		}
	}
	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m Model) analyze(jd string) tea.Cmd {
	analyzer, resume := m.analyzer, m.resume
	return func() tea.Msg {
		res, err := analyzer.AnalyzeDocument(context.Background(), resume, jd)
		return analysisMsg{result: res, err: err}
	}
}

// View renders the TUI layout and current result.
func (m Model) View() string {
	if !m.ready {
		return "Loading..."
	}
	header := titleStyle.Render("ATS Resume Analyzer") + mutedStyle.Render("  "+m.resume.Name)
	status := m.status
	if m.busy {
		status = m.spinner.View() + " " + status
	}
	return header + "\n" +
		resultBoxStyle.Render(m.viewport.View()) + "\n" +
		inputBoxStyle.Render(m.input.View()) + "\n" +
		statusStyle.Render(status)
}

var (
	resultBoxStyle = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).Padding(0, 1)
	inputBoxStyle  = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).Padding(0, 1)
	statusStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("10"))
)
