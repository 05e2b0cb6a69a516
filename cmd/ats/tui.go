package main

import (
	"fmt"
	"os"
	"path/filepath"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"ats/internal/domain"
	"ats/internal/service"
	"ats/internal/tui"
)

func newTUICmd(root *rootOptions) *cobra.Command {
	var resume, strategy, preset string
	cmd := &cobra.Command{
		Use:   "tui",
		Short: "Interactively score a resume against pasted job descriptions",
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, log, err := root.setup(strategy, preset)
			if err != nil {
				return err
			}
			defer func() { _ = log.Sync() }()

			data, err := os.ReadFile(resume)
			if err != nil {
				return fmt.Errorf("read resume: %w", err)
			}
			svc, err := service.New(cfg, log)
			if err != nil {
				return err
			}

			m := tui.New(svc, domain.Document{Name: filepath.Base(resume), Data: data})
			_, err = tea.NewProgram(m, tea.WithAltScreen()).Run()
			return err
		},
	}
	cmd.Flags().StringVarP(&resume, "resume", "r", "", "resume file (pdf, docx or text)")
	addScoringFlags(cmd, &strategy, &preset)
	_ = cmd.MarkFlagRequired("resume")
	return cmd
}
