// Package main provides the CLI entrypoint for the unit conversion grader.
// It wires subcommands (units, convert, batch), loads configuration, and initializes logging.
package main

import (
	"context"
	"fmt"
	"os"
	"unitgrader/internal/about"
	"unitgrader/internal/config"
	"unitgrader/internal/grader"
	"unitgrader/internal/report"
	"unitgrader/pkg/logger"
	"unitgrader/pkg/metrics"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// app carries the state shared by all commands of one invocation.
type app struct {
	info       about.Info
	configPath string
	verbose    bool

	cfg      *config.Config
	recorder *metrics.Recorder

	// newGrader builds the grader used by the commands.
	newGrader func(options grader.Options) grader.Grader
}

func newApp(info about.Info) *app {
	return &app{
		info: info,
		newGrader: func(options grader.Options) grader.Grader {
			return grader.New(nil, options)
		},
	}
}

// setup loads the configuration, configures logging and, when a textfile path
// is configured, the metrics recorder.
func (a *app) setup(cmd *cobra.Command) error {
	cfg, err := config.Load(a.configPath)
	if err != nil {
		return err
	}
	a.cfg = cfg
	a.verbose = a.verbose || cfg.Verbose

	logger.Setup(logger.Options{Environment: cfg.Environment, Verbose: a.verbose})
	ctx := logger.WithFields(cmd.Context(), zap.String("command", cmd.Name()))
	cmd.SetContext(ctx)

	if cfg.Metrics.TextfilePath != "" {
		a.recorder, err = metrics.NewRecorder(cfg.Metrics.Namespace)
		if err != nil {
			return err
		}
	}

	return nil
}

// teardown flushes metrics recorded during the command.
func (a *app) teardown(cmd *cobra.Command) error {
	if a.recorder == nil {
		return nil
	}
	defer func() {
		if err := a.recorder.Shutdown(context.WithoutCancel(cmd.Context())); err != nil {
			logger.Warn(cmd.Context(), "could not shut down metrics recorder", zap.Error(err))
		}
	}()

	logger.Debug(cmd.Context(), "writing metrics", zap.String("path", a.cfg.Metrics.TextfilePath))

	return a.recorder.WriteTextfile(a.cfg.Metrics.TextfilePath)
}

func (a *app) buildGrader() grader.Grader {
	options := grader.Options{}
	if a.recorder != nil {
		options.Recorder = a.recorder
	}

	return a.newGrader(options)
}

func (a *app) printer(cmd *cobra.Command) *report.Printer {
	return report.New(cmd.OutOrStdout(), !bool(a.cfg.NoColor))
}

func (a *app) feedbackURL() string {
	if a.cfg.FeedbackURL != "" {
		return a.cfg.FeedbackURL
	}

	return a.info.FeedbackURL
}

func newRootCommand(a *app) *cobra.Command {
	rootCmd := gradeCommand(a)
	rootCmd.SilenceUsage = true
	rootCmd.PersistentPreRunE = func(cmd *cobra.Command, _ []string) error {
		return a.setup(cmd)
	}
	rootCmd.PersistentPostRunE = func(cmd *cobra.Command, _ []string) error {
		return a.teardown(cmd)
	}

	rootCmd.PersistentFlags().StringVarP(&a.configPath, "config", "c", "", "Config File Path")
	rootCmd.PersistentFlags().BoolVarP(&a.verbose, "verbose", "v", false, "Enable verbose output.")

	rootCmd.AddCommand(
		unitsCommand(a),
		convertCommand(a),
		batchCommand(a),
	)

	return rootCmd
}

// main loads project metadata, sets up the root Cobra command and executes the CLI.
func main() {
	info, err := about.Load()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	ctx := context.Background()

	defer func() {
		if p := recover(); p != nil {
			logger.Error(ctx, "captured panic, exiting...", zap.Any("panic", p))
			_ = logger.Get(ctx).Sync()

			panic(p)
		}
	}()

	err = newRootCommand(newApp(info)).ExecuteContext(ctx)
	_ = logger.Get(ctx).Sync()
	if err != nil {
		os.Exit(1) //nolint: gocritic
	}
}
