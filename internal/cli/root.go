// Package cli provides the Cobra command structure for layoutdiff.
package cli

import (
	"io"

	"github.com/aleister1102/layoutdiff/internal/config"
	"github.com/aleister1102/layoutdiff/internal/logger"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
)

// BuildInfo holds build-time version information.
type BuildInfo struct {
	Version string
	Commit  string
	Date    string
}

// globalOptions are the persistent flags shared by all subcommands.
type globalOptions struct {
	configPath string
	debug      bool
}

// NewRootCommand creates the root layoutdiff command with all subcommands.
func NewRootCommand(info BuildInfo) *cobra.Command {
	opts := &globalOptions{}

	rootCmd := &cobra.Command{
		Use:   "layoutdiff",
		Short: "Side-by-side comparison of two JSON layout documents",
		Long: `layoutdiff normalizes two JSON documents (or plain text), aligns them
line by line and shows the result side by side with added, removed and
modified rows marked. Either side can be searched, and the current match
is highlighted.`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.PersistentFlags().StringVar(&opts.configPath, "config", "", "path to config file (yaml or json)")
	rootCmd.PersistentFlags().BoolVar(&opts.debug, "debug", false, "enable debug logging")

	rootCmd.AddCommand(newCompareCommand(opts))
	rootCmd.AddCommand(newVersionCommand(info))

	return rootCmd
}

// runtime is the loaded configuration and logger of one command run.
type runtime struct {
	cfg    *config.GlobalConfig
	logger zerolog.Logger
	closer io.Closer
}

// Close releases the log file, if any.
func (rt *runtime) Close() error {
	if rt.closer == nil {
		return nil
	}
	return rt.closer.Close()
}

// loadRuntime loads and validates the configuration, then builds the logger
// writing to errOut.
func loadRuntime(opts *globalOptions, errOut io.Writer) (*runtime, error) {
	bootstrap := zerolog.New(errOut).Level(zerolog.WarnLevel)
	if opts.debug {
		bootstrap = bootstrap.Level(zerolog.DebugLevel)
	}

	cfg, err := config.LoadGlobalConfig(opts.configPath, bootstrap)
	if err != nil {
		return nil, err
	}
	if err := config.ValidateConfig(cfg); err != nil {
		return nil, err
	}

	builder := logger.NewLoggerBuilder().
		WithConfig(cfg.LogConfig).
		WithConsoleOutput(errOut)
	if opts.debug {
		builder = builder.WithLevel(zerolog.DebugLevel)
	}
	l, err := builder.Build()
	if err != nil {
		return nil, err
	}

	return &runtime{cfg: cfg, logger: *l.GetZerolog(), closer: l}, nil
}
