package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"strconv"
	"syscall"

	"github.com/msto63/bookfab/internal/app"
	"github.com/msto63/bookfab/internal/tui"
	"github.com/msto63/bookfab/pkg/core/logging"
	"github.com/spf13/cobra"
)

var tuiCmd = &cobra.Command{
	Use:   "tui",
	Short: "Start the interactive workspace",
	Long: `Starts the BookFab terminal workspace.

Navigation:
  F1/F2/F3     Dashboard, Text to Audio, Settings
  Tab          Next field
  Left/Right   Adjust the focused value (Shift for larger steps)
  v, Enter     Open the voice dialog on the voice field
  c            Convert
  p            Play
  Ctrl+C       Quit

Voice dialog:
  Tab          Next filter
  Enter        Select the voice card
  Ctrl+O       OK
  Ctrl+R       Clear filters
  Esc          Cancel`,
	RunE: runTUI,
}

func init() {
	rootCmd.AddCommand(tuiCmd)
}

func runTUI(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		printError("loading config", err)
		return err
	}

	logger, closer, err := logging.NewFileLogger(loggerConfig(cfg), cfg.General.LogFile)
	if err != nil {
		printError("opening log file", err)
		return err
	}
	defer closer.Close()

	a, err := app.New(cfg, logger)
	if err != nil {
		printError("starting workspace", err)
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	err = tui.Run(ctx, tui.Config{
		Workspace:   a.Workspace,
		Synthesizer: a.Synthesizer,
		Logger:      logger,
		Settings:    settingsRows(a),
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "TUI error: %v\n", err)
		return err
	}
	logger.Info("workspace closed")
	return nil
}

// settingsRows lists the effective configuration for the settings page
func settingsRows(a *app.App) []tui.Setting {
	cfg := a.Config
	configFile := cfgFile
	if configFile == "" {
		configFile = "(defaults)"
	}
	return []tui.Setting{
		{Label: "Config file", Value: configFile},
		{Label: "Catalog", Value: a.CatalogSource},
		{Label: "Voices", Value: strconv.Itoa(len(a.Catalog))},
		{Label: "Augmentation", Value: strconv.FormatBool(cfg.Catalog.AugmentEnabled())},
		{Label: "Commit policy", Value: cfg.Workspace.CommitPolicy},
		{Label: "Reset playback", Value: strconv.FormatBool(cfg.Workspace.ResetPlaybackOnEdit)},
		{Label: "Engine", Value: a.Synthesizer.Name()},
		{Label: "Convert delay", Value: a.Synthesizer.Delay().String()},
		{Label: "Log file", Value: cfg.General.LogFile},
	}
}
