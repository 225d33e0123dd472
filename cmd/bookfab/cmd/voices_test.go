package cmd

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/msto63/bookfab/internal/voice"
	"github.com/msto63/bookfab/pkg/core/config"
	"github.com/msto63/bookfab/pkg/core/health"
	"github.com/msto63/bookfab/pkg/core/logging"
)

func TestRunVoices(t *testing.T) {
	tests := []struct {
		name     string
		opts     voicesOptions
		contains []string
		excludes []string
	}{
		{
			name:     "all voices augmented",
			opts:     voicesOptions{Output: "table"},
			contains: []string{"Amelia", "Sakura", "Haruto"},
		},
		{
			name:     "no augment",
			opts:     voicesOptions{Output: "table", NoAugment: true},
			contains: []string{"Sakura"},
			excludes: []string{"Haruto"},
		},
		{
			name:     "query",
			opts:     voicesOptions{Output: "table", Query: "amelia"},
			contains: []string{"en-amelia"},
			excludes: []string{"Oliver"},
		},
		{
			name:     "no match",
			opts:     voicesOptions{Output: "table", Query: "zzz"},
			contains: []string{"No voices found."},
		},
		{
			name:     "yaml",
			opts:     voicesOptions{Output: "yaml", Language: "Japanese", Gender: "male"},
			contains: []string{"voices:", "id: ja-haruto"},
			excludes: []string{"Sakura"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var out bytes.Buffer
			if err := runVoices(&out, config.CatalogConfig{}, tt.opts, logging.Discard()); err != nil {
				t.Fatalf("runVoices() error = %v", err)
			}
			got := out.String()
			for _, want := range tt.contains {
				if !strings.Contains(got, want) {
					t.Errorf("output missing %q:\n%s", want, got)
				}
			}
			for _, unwanted := range tt.excludes {
				if strings.Contains(got, unwanted) {
					t.Errorf("output contains %q:\n%s", unwanted, got)
				}
			}
		})
	}
}

func TestRunVoices_Errors(t *testing.T) {
	var out bytes.Buffer
	err := runVoices(&out, config.CatalogConfig{}, voicesOptions{Output: "table", Gender: "robot"}, logging.Discard())
	if !errors.Is(err, voice.ErrInvalidGender) {
		t.Errorf("error = %v, want ErrInvalidGender", err)
	}

	err = runVoices(&out, config.CatalogConfig{}, voicesOptions{Output: "xml"}, logging.Discard())
	if err == nil {
		t.Error("expected error for unknown output format")
	}
}

func TestLoggerConfig(t *testing.T) {
	cfg := config.Default()
	lc := loggerConfig(cfg)
	if lc.Level != "info" || lc.Format != "json" || lc.ServiceName != "bookfab" {
		t.Errorf("loggerConfig() = %+v, want bookfab info/json", lc)
	}

	verbose = true
	defer func() { verbose = false }()
	if lc := loggerConfig(cfg); lc.Level != "debug" {
		t.Errorf("verbose Level = %q, want debug", lc.Level)
	}
}

func TestPrintReport(t *testing.T) {
	report := &health.Report{
		App:     "BookFab",
		Version: "v1.0.0.0",
		Status:  health.StatusUnhealthy,
		Checks: []health.CheckResult{
			{Name: "catalog", Status: health.StatusHealthy, Message: "10 voices"},
			{Name: "log-file", Status: health.StatusUnhealthy, Message: "permission denied"},
		},
	}

	var out bytes.Buffer
	if err := printReport(&out, report); !errors.Is(err, errUnhealthy) {
		t.Errorf("error = %v, want errUnhealthy", err)
	}
	for _, want := range []string{"catalog", "10 voices", "permission denied", "BookFab v1.0.0.0: unhealthy (2 checks)"} {
		if !strings.Contains(out.String(), want) {
			t.Errorf("output missing %q:\n%s", want, out.String())
		}
	}

	report.Status = health.StatusDegraded
	report.Checks[1].Status = health.StatusDegraded
	out.Reset()
	if err := printReport(&out, report); err != nil {
		t.Errorf("degraded report error = %v, want nil", err)
	}
}
