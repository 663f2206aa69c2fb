package main

import (
	"fmt"
	"os"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/philipparndt/arruler/internal/app"
	"github.com/philipparndt/arruler/internal/config"
	"github.com/philipparndt/arruler/internal/logging"
	"github.com/philipparndt/arruler/version"
)

var (
	configDir string
	logLevel  string

	cfg    config.Config
	logger zerolog.Logger
)

var rootCmd = &cobra.Command{
	Use:   "arruler <world.stl>",
	Short: "Measure distances between tapped points on a tracked surface",
	Long: `arruler places a marker on each of two tapped points of a tracked surface and
shows the straight-line distance between them as text floating next to the
second point. A third tap clears the measurement.

The tracked surface is loaded from an STL file; its vertices act as the
detected feature points that taps snap to.`,
	Version:           version.GetVersion(),
	Args:              cobra.ExactArgs(1),
	PersistentPreRunE: setup,
	RunE: func(cmd *cobra.Command, args []string) error {
		return app.Run(args[0], cfg, logger)
	},
	SilenceUsage: true,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configDir, "config", "", "directory containing arruler.yaml")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "", "log level (trace, debug, info, warn, error)")
}

// setup loads the configuration and logger shared by all commands
func setup(cmd *cobra.Command, args []string) error {
	var err error
	cfg, err = config.Load(configDir)
	if err != nil {
		return err
	}
	if logLevel != "" {
		cfg.LogLevel = logLevel
	}

	logger = logging.New(cfg.LogLevel, os.Stderr)
	if used := config.ConfigFileUsed(); used != "" {
		logger.Debug().Str("file", used).Msg("Loaded configuration")
	}
	return nil
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
