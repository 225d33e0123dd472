package app

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/msto63/bookfab/internal/selection"
	"github.com/msto63/bookfab/internal/voice"
	"github.com/msto63/bookfab/pkg/core/config"
	"github.com/msto63/bookfab/pkg/core/health"
)

func TestLoadCatalog_BuiltIn(t *testing.T) {
	catalog, source, err := LoadCatalog(config.CatalogConfig{})
	if err != nil {
		t.Fatalf("LoadCatalog() error = %v", err)
	}
	if source != "built-in" {
		t.Errorf("source = %q, want built-in", source)
	}
	want := len(voice.DefaultCatalog()) + len(voice.JapaneseSupplement())
	if len(catalog) != want {
		t.Errorf("len(catalog) = %d, want %d (augmented)", len(catalog), want)
	}
}

func TestLoadCatalog_AugmentDisabled(t *testing.T) {
	off := false
	catalog, _, err := LoadCatalog(config.CatalogConfig{Augment: &off})
	if err != nil {
		t.Fatalf("LoadCatalog() error = %v", err)
	}
	if len(catalog) != len(voice.DefaultCatalog()) {
		t.Errorf("len(catalog) = %d, want %d", len(catalog), len(voice.DefaultCatalog()))
	}
}

func TestLoadCatalog_File(t *testing.T) {
	path := filepath.Join(t.TempDir(), "voices.yaml")
	data := []byte(`voices:
  - id: de-anna
    name: Anna
    gender: Female
    age: Young Adult
    language: German
    tags: [Warm]
`)
	if err := os.WriteFile(path, data, 0644); err != nil {
		t.Fatal(err)
	}

	catalog, source, err := LoadCatalog(config.CatalogConfig{File: path})
	if err != nil {
		t.Fatalf("LoadCatalog() error = %v", err)
	}
	if source != path {
		t.Errorf("source = %q, want %q", source, path)
	}
	// No Japanese voice, so augmentation is a no-op.
	if len(catalog) != 1 || catalog[0].ID != "de-anna" {
		t.Errorf("catalog = %v, want only de-anna", catalog)
	}
}

func TestLoadCatalog_MissingFile(t *testing.T) {
	_, _, err := LoadCatalog(config.CatalogConfig{File: filepath.Join(t.TempDir(), "nope.yaml")})
	if err == nil {
		t.Fatal("expected error for missing catalog file")
	}
}

func TestDefaultVoice(t *testing.T) {
	catalog := []voice.Voice{
		{ID: "ja-1", Language: "Japanese"},
		{ID: "en-1", Language: "English"},
	}
	tests := []struct {
		name       string
		configured string
		language   string
		want       string
	}{
		{"configured wins", "x", "English", "x"},
		{"first of language", "", "English", "en-1"},
		{"fallback to first", "", "German", "ja-1"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := DefaultVoice(catalog, tt.configured, tt.language); got != tt.want {
				t.Errorf("DefaultVoice() = %q, want %q", got, tt.want)
			}
		})
	}
	if got := DefaultVoice(nil, "", "English"); got != "" {
		t.Errorf("DefaultVoice(nil) = %q, want empty", got)
	}
}

func TestNew(t *testing.T) {
	cfg := config.Default()
	cfg.Workspace.CommitPolicy = "select"

	a, err := New(cfg, nil)
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	sel := a.Workspace.Selection()
	if sel.Language != "English" || sel.VoiceID != "en-amelia" {
		t.Errorf("Selection = %+v, want English/en-amelia", sel)
	}
	if a.Workspace.Dialog().Policy != selection.CommitOnSelect {
		t.Errorf("Policy = %v, want select", a.Workspace.Dialog().Policy)
	}
	if a.Synthesizer.Delay() != cfg.Workspace.ConvertDelay.Duration {
		t.Errorf("Delay = %v, want %v", a.Synthesizer.Delay(), cfg.Workspace.ConvertDelay.Duration)
	}
}

func TestNew_Errors(t *testing.T) {
	cfg := config.Default()
	cfg.Workspace.CommitPolicy = "later"
	if _, err := New(cfg, nil); !errors.Is(err, selection.ErrUnknownPolicy) {
		t.Errorf("error = %v, want ErrUnknownPolicy", err)
	}

	cfg = config.Default()
	cfg.Workspace.DefaultVoice = "missing"
	if _, err := New(cfg, nil); err == nil {
		t.Error("expected error for unknown default voice")
	}
}

func TestHealthChecks(t *testing.T) {
	cfg := config.Default()
	cfg.General.LogFile = filepath.Join(t.TempDir(), "bookfab.log")

	a, err := New(cfg, nil)
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}

	report := a.HealthChecks().Check(context.Background())
	if !report.Healthy() {
		t.Fatalf("report unhealthy: %+v", report.Checks)
	}
	// The built-in catalog has voices without a usable avatar.
	if report.Status != health.StatusDegraded {
		t.Errorf("Status = %v, want degraded", report.Status)
	}

	byName := map[string]health.CheckResult{}
	for _, c := range report.Checks {
		byName[c.Name] = c
	}
	for _, name := range []string{"catalog", "default-voice", "languages", "avatars", "log-file"} {
		if _, ok := byName[name]; !ok {
			t.Errorf("missing check %q", name)
		}
	}
	if got := byName["avatars"].Status; got != health.StatusDegraded {
		t.Errorf("avatars = %v, want degraded", got)
	}
	if got := byName["log-file"].Status; got != health.StatusHealthy {
		t.Errorf("log-file = %v, want healthy", got)
	}
}

func TestHealthChecks_UnwritableLog(t *testing.T) {
	cfg := config.Default()
	cfg.General.LogFile = t.TempDir() // a directory cannot be opened for writing

	a, err := New(cfg, nil)
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	if report := a.HealthChecks().Check(context.Background()); report.Healthy() {
		t.Error("expected unhealthy report for unwritable log file")
	}
}
