package main

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"ats/internal/service"
	"ats/internal/tui"
)

type scoreOptions struct {
	resume   string
	jdFile   string
	jdText   string
	json     bool
	strategy string
	preset   string
}

func newScoreCmd(root *rootOptions) *cobra.Command {
	opts := &scoreOptions{}
	cmd := &cobra.Command{
		Use:   "score",
		Short: "Score a resume against a job description",
		Example: "  ats score --resume cv.pdf --jd jd.txt\n" +
			"  ats score --resume cv.docx --jd-text \"python developer, 3 years\" --json",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runScore(cmd, root, opts)
		},
	}

	cmd.Flags().StringVarP(&opts.resume, "resume", "r", "", "resume file (pdf, docx or text)")
	cmd.Flags().StringVar(&opts.jdFile, "jd", "", "job description file")
	cmd.Flags().StringVar(&opts.jdText, "jd-text", "", "job description text")
	cmd.Flags().BoolVar(&opts.json, "json", false, "print the breakdown as JSON")
	addScoringFlags(cmd, &opts.strategy, &opts.preset)
	_ = cmd.MarkFlagRequired("resume")
	cmd.MarkFlagsMutuallyExclusive("jd", "jd-text")
	cmd.MarkFlagsOneRequired("jd", "jd-text")
	return cmd
}

func addScoringFlags(cmd *cobra.Command, strategy, preset *string) {
	cmd.Flags().StringVarP(strategy, "strategy", "s", "", "similarity strategy: tfidf or dense (overrides config)")
	cmd.Flags().StringVarP(preset, "preset", "p", "", "scoring preset: A, B or custom (overrides config)")
}

func runScore(cmd *cobra.Command, root *rootOptions, opts *scoreOptions) error {
	cfg, log, err := root.setup(opts.strategy, opts.preset)
	if err != nil {
		return err
	}
	defer func() { _ = log.Sync() }()

	jd, err := readJobDescription(opts.jdFile, opts.jdText)
	if err != nil {
		return err
	}

	svc, err := service.New(cfg, log)
	if err != nil {
		return err
	}

	result, err := svc.AnalyzeFile(context.Background(), opts.resume, jd)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	if opts.json {
		enc := json.NewEncoder(out)
		enc.SetIndent("", "  ")
		return enc.Encode(result)
	}
	_, err = fmt.Fprintln(out, tui.RenderBreakdown(result))
	return err
}

func readJobDescription(path, text string) (string, error) {
	if path == "" {
		if text == "" {
			return "", errors.New("a job description is required")
		}
		return text, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("read job description: %w", err)
	}
	return string(data), nil
}
