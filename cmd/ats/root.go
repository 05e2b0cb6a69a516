package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"ats/internal/config"
	"ats/internal/logger"
)

const app = "ats"

type rootOptions struct {
	cfgFile string
	debug   bool
	json    bool
}

func newRootCmd() *cobra.Command {
	opts := &rootOptions{}
	cmd := &cobra.Command{
		Use:          app,
		Short:        "ats scores how well a resume matches a job description",
		SilenceUsage: true,
	}

	cmd.PersistentFlags().StringVar(&opts.cfgFile, "config", "", "a config file (default is ./ats.yaml, then ~/.config/ats/config.yaml)")
	cmd.PersistentFlags().BoolVarP(&opts.debug, "debug", "d", false, "verbose/debug output")
	cmd.PersistentFlags().BoolVarP(&opts.json, "json-log", "j", false, "json format for logging")

	cmd.AddCommand(newScoreCmd(opts), newTUICmd(opts), newVersionCmd())
	return cmd
}

// setup loads the configuration, applies flag overrides and builds the logger.
func (o *rootOptions) setup(strategy, preset string) (*config.AppConfig, *zap.Logger, error) {
	var (
		cfg *config.AppConfig
		err error
	)
	if o.cfgFile == "" {
		cfg, _, err = config.LoadDefault()
	} else {
		cfg, err = config.Load(o.cfgFile)
	}
	if err != nil {
		return nil, nil, fmt.Errorf("loading config: %w", err)
	}

	if strategy != "" {
		if err := cfg.SetStrategy(strategy); err != nil {
			return nil, nil, err
		}
	}
	if preset != "" {
		if err := cfg.SetPreset(preset); err != nil {
			return nil, nil, err
		}
	}

	log, err := logger.New(cfg.Log.JSON || o.json, cfg.Log.Debug || o.debug)
	if err != nil {
		return nil, nil, fmt.Errorf("creating a logger: %w", err)
	}
	return cfg, log, nil
}
