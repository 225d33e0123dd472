package cmd

import (
	"fmt"
	"os"

	"github.com/msto63/bookfab/pkg/core/config"
	"github.com/msto63/bookfab/pkg/core/logging"
	"github.com/spf13/cobra"
)

var (
	cfgFile string
	verbose bool
)

var rootCmd = &cobra.Command{
	Use:   "bookfab",
	Short: "BookFab - Text-to-Speech Workspace",
	Long: `BookFab configures text-to-speech conversions.

Without a subcommand the interactive workspace is started:
  text input, language and voice selection, expressiveness,
  pauses, speed and loudness, convert and playback.`,
	SilenceUsage: true,
	RunE:         runTUI,
}

// Execute runs the root command
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default: ./configs/config.toml)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose output")
}

// loadConfig loads --config or falls back to the default locations
func loadConfig() (*config.Config, error) {
	if cfgFile != "" {
		return config.Load(cfgFile)
	}
	return config.LoadFromEnv()
}

// loggerConfig derives the logger settings, --verbose forces debug
func loggerConfig(cfg *config.Config) logging.LoggerConfig {
	lc := logging.DefaultLoggerConfig("bookfab")
	lc.Level = cfg.General.LogLevel
	lc.Format = cfg.General.LogFormat
	if verbose {
		lc.Level = "debug"
	}
	return lc
}

func printError(msg string, err error) {
	fmt.Fprintf(os.Stderr, "Error: %s: %v\n", msg, err)
}
