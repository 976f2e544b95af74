// Package cli defines the command-line interface for prcomment.
package cli

import (
	"context"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/prtools/prcomment/internal/config"
	"github.com/prtools/prcomment/internal/logging"
)

// Options stores CLI options resolved from flags and PRCOMMENT_* env vars.
type Options struct {
	ConfigPath string
	State      string
	Yes        bool
	LogLevel   logging.Level
}

// Execute builds the root command, runs it with the provided args and logger,
// and returns any error.
func Execute(args []string, logger *slog.Logger) error {
	if logger == nil {
		logger = logging.NewLogger(os.Stderr, logging.LevelInfo)
	}

	base, err := loadBaseEnv()
	if err != nil {
		return err
	}

	rootOpts := &Options{
		ConfigPath: base.ConfigPath,
		State:      base.State,
		Yes:        base.Yes,
		LogLevel:   logging.ParseLevel(base.LogLevel),
	}
	if rootOpts.ConfigPath == "" {
		rootOpts.ConfigPath = config.DefaultPath
	}

	rootCmd := newRootCommand(rootOpts, logger, base.LogLevel)
	rootCmd.SetArgs(args)

	return rootCmd.Execute()
}

// newRootCommand constructs the root cobra.Command. prcomment is a single
// command tool: the root carries the two positional arguments directly.
func newRootCommand(opts *Options, logger *slog.Logger, defaultLogLevel string) *cobra.Command {
	if defaultLogLevel == "" {
		defaultLogLevel = "info"
	}

	cmd := &cobra.Command{
		Use:   "prcomment REPOSITORY COMMENT_FILE",
		Short: "Post the same comment on every pull request of a GitHub repository",
		Long: "prcomment lists the pull requests of REPOSITORY (an OWNER/NAME slug) through\n" +
			"the gh CLI and posts the contents of COMMENT_FILE as a comment on each one,\n" +
			"after asking for confirmation. gh handles all GitHub access and authentication.",
		Args: cobra.ExactArgs(2),
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			level := logging.ParseLevel(cmd.Flag("log-level").Value.String())
			opts.LogLevel = level
			logger = logging.NewLogger(os.Stderr, level)
			cmd.SetContext(context.WithValue(cmd.Context(), loggerKey{}, logger))
			logger.Debug("logger initialized", "level", level)
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return runComment(cmd, opts, args[0], args[1])
		},
	}

	cmd.PersistentFlags().String("log-level", defaultLogLevel, "Log level (debug, info, warn, error)")
	cmd.Flags().StringVarP(&opts.ConfigPath, "config", "c", opts.ConfigPath, "Path to .prcomment.yaml configuration file")
	cmd.Flags().StringVar(&opts.State, "state", opts.State, "Pull request state filter (open, closed, merged, all)")
	cmd.Flags().BoolVar(&opts.Yes, "yes", opts.Yes, "Do not prompt for confirmation")

	return cmd
}

// loggerKey is a private context key used to store a logger in command contexts.
type loggerKey struct{}

// LoggerFromContext extracts a logger from the context or falls back to a default logger.
func LoggerFromContext(ctx context.Context) *slog.Logger {
	if ctx == nil {
		return logging.NewLogger(os.Stderr, logging.LevelInfo)
	}
	if l, ok := ctx.Value(loggerKey{}).(*slog.Logger); ok && l != nil {
		return l
	}
	return logging.NewLogger(os.Stderr, logging.LevelInfo)
}
