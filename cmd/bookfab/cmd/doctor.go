package cmd

import (
	"context"
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/msto63/bookfab/internal/app"
	"github.com/msto63/bookfab/pkg/core/health"
	"github.com/msto63/bookfab/pkg/core/logging"
	"github.com/spf13/cobra"
)

// errUnhealthy is returned when at least one check fails
var errUnhealthy = errors.New("self-check failed")

var (
	statusStyles = map[health.Status]lipgloss.Style{
		health.StatusHealthy:   lipgloss.NewStyle().Foreground(lipgloss.Color("#10B981")),
		health.StatusDegraded:  lipgloss.NewStyle().Foreground(lipgloss.Color("#F59E0B")),
		health.StatusUnhealthy: lipgloss.NewStyle().Foreground(lipgloss.Color("#EF4444")),
	}
	statusIcons = map[health.Status]string{
		health.StatusHealthy:   "✓",
		health.StatusDegraded:  "!",
		health.StatusUnhealthy: "✗",
	}
)

var doctorCmd = &cobra.Command{
	Use:   "doctor",
	Short: "Check configuration, voice catalog and log file",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			printError("loading config", err)
			return err
		}
		a, err := app.New(cfg, logging.NewLogger(loggerConfig(cfg)))
		if err != nil {
			printError("starting workspace", err)
			return err
		}

		ctx, cancel := context.WithTimeout(cmd.Context(), 5*time.Second)
		defer cancel()
		return printReport(cmd.OutOrStdout(), a.HealthChecks().Check(ctx))
	},
}

func init() {
	rootCmd.AddCommand(doctorCmd)
}

func printReport(out io.Writer, report *health.Report) error {
	for _, c := range report.Checks {
		style := statusStyles[c.Status]
		fmt.Fprintf(out, "%s %-14s %s\n", style.Render(statusIcons[c.Status]), c.Name, c.Message)
	}
	fmt.Fprintln(out)
	fmt.Fprintln(out, report.String())

	if !report.Healthy() {
		return errUnhealthy
	}
	return nil
}
