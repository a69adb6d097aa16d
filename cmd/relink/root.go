package main

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/google/uuid"
	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"

	"relink/internal/classify"
	"relink/internal/config"
	"relink/internal/logging"
	"relink/internal/prompt"
	"relink/internal/runner"
)

func newRootCommand() *cobra.Command {
	var (
		configFlag    string
		verbosity     int
		hardlink      bool
		escalateMode  string
		minFilesizeMB int64
		assumeYes     bool
		logFormat     string
		logLevel      string
	)

	rootCmd := &cobra.Command{
		Use:   "relink [flags] DIRECTORY...",
		Short: "Collapse duplicate media files into hardlinks",
		Long: `relink finds files that are very likely byte-identical copies across
one or more directory trees and collapses them into hardlinks. Candidates
are grouped by exact size, screened by filename heuristics, and verified
through an escalating ladder of content hashes before anything is touched.

Without --hardlink the run only reports what it would merge.`,
		Args:          cobra.ArbitraryArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 0 {
				return cmd.Help()
			}

			cfg, _, _, err := config.Load(configFlag)
			if err != nil {
				return err
			}
			if err := cfg.EnsureDirectories(); err != nil {
				return err
			}

			if !cmd.Flags().Changed("min-filesize-mb") {
				minFilesizeMB = cfg.Scan.MinFilesizeMB
			}
			if minFilesizeMB <= 0 {
				return fmt.Errorf("a minimum filesize is required: pass -m or set scan.min_filesize_mb")
			}
			if !cmd.Flags().Changed("escalate") {
				escalateMode = cfg.Escalation.Mode
			}
			mode, err := classify.ParseMode(escalateMode)
			if err != nil {
				return err
			}

			level := cfg.Logging.Level
			if cmd.Flags().Changed("log-level") {
				level = logLevel
			}
			if verbosity > 0 {
				level = logging.LevelFromVerbosity(verbosity)
			}
			format := cfg.Logging.Format
			if cmd.Flags().Changed("log-format") {
				format = logFormat
			}
			logger, err := logging.New(logging.Options{Level: level, Format: format})
			if err != nil {
				return err
			}
			logger = logger.With(logging.String(logging.FieldRunID, uuid.NewString()))

			ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()

			opts := runner.Options{
				Roots:           args,
				MinFilesizeMB:   minFilesizeMB,
				Hardlink:        hardlink,
				Mode:            mode,
				AssumeNoWriters: assumeYes,
				ShowProgress:    showProgress(verbosity, mode),
			}
			if prompt.IsInteractive() {
				terminal := prompt.NewStdio()
				opts.Confirmer = terminal
				opts.Resolver = terminal
			} else if mode == classify.ModeInteractive {
				logger.Warn("stdin is not a terminal; uncertain groups will be skipped")
			}

			summary, runErr := runner.New(cfg, logger).Run(ctx, opts)
			if summary != nil {
				renderSummary(cmd.OutOrStdout(), summary, hardlink)
			}
			return runErr
		},
	}

	rootCmd.PersistentFlags().StringVarP(&configFlag, "config", "c", "", "Configuration file path")
	rootCmd.Flags().CountVarP(&verbosity, "verbose", "v", "Verbose mode (-v, -vv)")
	rootCmd.Flags().BoolVar(&hardlink, "hardlink", false, "Perform hardlinks (default is a dry run)")
	rootCmd.Flags().StringVar(&escalateMode, "escalate", "", "How to resolve uncertain groups: skip, auto, or interactive")
	rootCmd.Flags().Int64VarP(&minFilesizeMB, "min-filesize-mb", "m", 0, "Minimum filesize in MB (required)")
	rootCmd.Flags().BoolVarP(&assumeYes, "yes", "y", false, "Assume no other program is writing to the trees")
	rootCmd.Flags().StringVar(&logFormat, "log-format", "", "Log output format: console or json")
	rootCmd.Flags().StringVar(&logLevel, "log-level", "", "Log level: debug, info, warn, or error")

	rootCmd.AddCommand(newConfigCommand(&configFlag))

	return rootCmd
}

// showProgress keeps the bar off terminals already carrying verbose logs or
// interactive prompts.
func showProgress(verbosity int, mode classify.Mode) bool {
	if verbosity > 0 || mode == classify.ModeInteractive {
		return false
	}
	fd := os.Stdout.Fd()
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}
