// ============================================================================
// BookFab - Text-to-Speech Workspace
// ============================================================================
//
// Package:     app
// Description: Wires configuration, voice catalog, workspace and converter
// Author:      Mike Stoffels
// Created:     2026-10-18
// License:     MIT
// ============================================================================

package app

import (
	"fmt"

	"github.com/msto63/bookfab/internal/convert"
	"github.com/msto63/bookfab/internal/selection"
	"github.com/msto63/bookfab/internal/voice"
	"github.com/msto63/bookfab/internal/workspace"
	"github.com/msto63/bookfab/pkg/core/config"
	"github.com/msto63/bookfab/pkg/core/logging"
)

// App bundles the components of one BookFab session
type App struct {
	Config        *config.Config
	Catalog       []voice.Voice
	CatalogSource string
	Workspace     *workspace.Workspace
	Synthesizer   *convert.Simulated
	Logger        *logging.Logger
}

// LoadCatalog returns the configured catalog, augmented unless disabled, and
// a short description of where it came from.
func LoadCatalog(cfg config.CatalogConfig) ([]voice.Voice, string, error) {
	catalog := voice.DefaultCatalog()
	source := "built-in"

	if cfg.File != "" {
		loaded, err := voice.LoadCatalog(cfg.File)
		if err != nil {
			return nil, "", err
		}
		catalog = loaded
		source = cfg.File
	}

	if cfg.AugmentEnabled() {
		catalog = voice.Augment(catalog)
	}
	return catalog, source, nil
}

// DefaultVoice picks the configured voice, else the first voice speaking
// language, else the first voice of the catalog.
func DefaultVoice(catalog []voice.Voice, configured, language string) string {
	if configured != "" {
		return configured
	}
	for _, v := range catalog {
		if v.Language == language {
			return v.ID
		}
	}
	if len(catalog) > 0 {
		return catalog[0].ID
	}
	return ""
}

// New builds an App from cfg
func New(cfg *config.Config, logger *logging.Logger) (*App, error) {
	if logger == nil {
		logger = logging.Discard()
	}

	catalog, source, err := LoadCatalog(cfg.Catalog)
	if err != nil {
		return nil, fmt.Errorf("load catalog: %w", err)
	}

	policy, err := selection.ParsePolicy(cfg.Workspace.CommitPolicy)
	if err != nil {
		return nil, err
	}

	ws, err := workspace.New(workspace.Options{
		Catalog:             catalog,
		Languages:           cfg.Workspace.Languages,
		Language:            cfg.Workspace.DefaultLanguage,
		VoiceID:             DefaultVoice(catalog, cfg.Workspace.DefaultVoice, cfg.Workspace.DefaultLanguage),
		Policy:              policy,
		ResetPlaybackOnEdit: cfg.Workspace.ResetPlaybackOnEdit,
		Logger:              logger.With("component", "workspace"),
	})
	if err != nil {
		return nil, fmt.Errorf("create workspace: %w", err)
	}

	synth := convert.NewSimulated(
		convert.Config{Delay: cfg.Workspace.ConvertDelay.Duration},
		logger.With("component", "convert"),
	)

	logger.Info("workspace ready",
		"voices", len(catalog), "catalog", source, "policy", policy.String())

	return &App{
		Config:        cfg,
		Catalog:       catalog,
		CatalogSource: source,
		Workspace:     ws,
		Synthesizer:   synth,
		Logger:        logger,
	}, nil
}
