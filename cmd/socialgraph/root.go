package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/socialgraph/analysis"
	"github.com/katalvlaran/socialgraph/config"
	"github.com/katalvlaran/socialgraph/metrics"
	"github.com/katalvlaran/socialgraph/report"
)

// app carries state shared by every subcommand after PersistentPreRunE.
type app struct {
	configPath string
	envFile    string
	format     string
	top        int
	timeout    string

	cfg      *config.Config
	logger   *slog.Logger
	analyzer *analysis.Analyzer
	out      io.Writer
}

func newRootCmd() *cobra.Command {
	a := &app{out: os.Stdout}
	root := &cobra.Command{
		Use:           "socialgraph",
		Short:         "Structural analysis of friendship graphs",
		Long:          "socialgraph counts unique connections, finds friend chains and ranks people by betweenness, eigenvector and closeness centrality.",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return a.setup(cmd)
		},
	}
	root.SetOut(os.Stdout)

	pf := root.PersistentFlags()
	pf.StringVar(&a.configPath, "config", "", "path to a YAML config file")
	pf.StringVar(&a.envFile, "env-file", ".env", "optional .env file with SOCIALGRAPH_* overrides")
	pf.StringVarP(&a.format, "format", "f", "", "output format: text, json or yaml")
	pf.IntVar(&a.top, "top", 0, "rows per ranking, overriding the config value (0 = all)")
	pf.StringVar(&a.timeout, "timeout", "", "abandon the computation after this duration, e.g. 30s")

	root.AddCommand(
		newReportCmd(a),
		newChainCmd(a),
		newEdgesCmd(a),
		newMatrixCmd(a),
		newWatchCmd(a),
		newGenerateCmd(a),
	)

	return root
}

// setup loads configuration, applies flag overrides and builds the logger.
func (a *app) setup(cmd *cobra.Command) error {
	cfg, err := config.Load(a.configPath, a.envFile)
	if err != nil {
		return err
	}
	flags := cmd.Flags()
	if flags.Changed("format") {
		cfg.Output.Format = a.format
	}
	if flags.Changed("top") {
		cfg.Output.Top = a.top
	}
	if flags.Changed("timeout") {
		if cfg.Run.Timeout, err = time.ParseDuration(a.timeout); err != nil {
			return fmt.Errorf("--timeout: %w", err)
		}
	}
	if err = config.Validate(cfg); err != nil {
		return err
	}

	a.cfg = cfg
	a.out = cmd.OutOrStdout()
	a.logger = newLogger(cmd.ErrOrStderr(), cfg.Log)
	slog.SetDefault(a.logger)
	a.analyzer = analysis.New(cfg, metrics.New(), a.logger)

	return nil
}

func newLogger(w io.Writer, lc config.LogConfig) *slog.Logger {
	var level slog.Level
	if err := level.UnmarshalText([]byte(lc.Level)); err != nil {
		level = slog.LevelInfo
	}
	opts := &slog.HandlerOptions{Level: level}
	if strings.EqualFold(lc.Format, "json") {
		return slog.New(slog.NewJSONHandler(w, opts))
	}

	return slog.New(slog.NewTextHandler(w, opts))
}

// render writes r and, when configured, the metrics textfile.
func (a *app) render(r *report.Report) error {
	if err := report.Render(a.out, r, a.cfg.Output.Format); err != nil {
		return err
	}

	return a.flushMetrics()
}

func (a *app) flushMetrics() error {
	if a.cfg.Metrics.Textfile == "" {
		return nil
	}
	if err := a.analyzer.Metrics().WriteTextfile(a.cfg.Metrics.Textfile); err != nil {
		return fmt.Errorf("write metrics %s: %w", a.cfg.Metrics.Textfile, err)
	}
	a.logger.Debug("metrics written", "path", a.cfg.Metrics.Textfile)

	return nil
}

func (a *app) ctx(cmd *cobra.Command) context.Context {
	if ctx := cmd.Context(); ctx != nil {
		return ctx
	}
	return context.Background()
}
