// ============================================================================
// BookFab - Text-to-Speech Workspace
// ============================================================================
//
// Package:     config
// Description: TOML configuration with defaults and validation
// Author:      Mike Stoffels
// Created:     2026-10-18
// License:     MIT
// ============================================================================

package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/BurntSushi/toml"
)

// EnvConfigPath names the environment variable pointing to the config file
const EnvConfigPath = "BOOKFAB_CONFIG"

// ErrInvalidConfig wraps all validation failures
var ErrInvalidConfig = errors.New("invalid configuration")

// Config holds the complete application configuration
type Config struct {
	General   GeneralConfig   `toml:"general"`
	Workspace WorkspaceConfig `toml:"workspace"`
	Catalog   CatalogConfig   `toml:"catalog"`
}

// GeneralConfig holds general application settings
type GeneralConfig struct {
	Name      string `toml:"name"`
	LogLevel  string `toml:"log_level"`
	LogFormat string `toml:"log_format"`
	LogFile   string `toml:"log_file"`
}

// WorkspaceConfig holds the initial state of the text-to-audio page
type WorkspaceConfig struct {
	DefaultLanguage     string   `toml:"default_language"`
	Languages           []string `toml:"languages"`
	DefaultVoice        string   `toml:"default_voice"`
	CommitPolicy        string   `toml:"commit_policy"`
	ResetPlaybackOnEdit bool     `toml:"reset_playback_on_edit"`
	ConvertDelay        Duration `toml:"convert_delay"`
}

// CatalogConfig holds voice catalog settings
type CatalogConfig struct {
	// File is an optional YAML catalog; empty uses the built-in catalog
	File string `toml:"file"`

	// Augment enables the Japanese supplement; unset means enabled
	Augment *bool `toml:"augment"`
}

// AugmentEnabled reports whether catalog augmentation runs
func (c CatalogConfig) AugmentEnabled() bool {
	return c.Augment == nil || *c.Augment
}

// Duration wraps time.Duration for TOML parsing
type Duration struct {
	time.Duration
}

// UnmarshalText parses a duration string
func (d *Duration) UnmarshalText(text []byte) error {
	var err error
	d.Duration, err = time.ParseDuration(string(text))
	return err
}

// MarshalText formats the duration as a string
func (d Duration) MarshalText() ([]byte, error) {
	return []byte(d.Duration.String()), nil
}

// Default returns the configuration used when no file exists
func Default() *Config {
	cfg := &Config{}
	cfg.applyDefaults()
	return cfg
}

// Load loads configuration from a TOML file
func Load(path string) (*Config, error) {
	// Expand environment variables in path
	path = os.ExpandEnv(path)

	if _, err := os.Stat(path); os.IsNotExist(err) {
		return nil, fmt.Errorf("config file not found: %s", path)
	}

	var cfg Config
	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	cfg.applyDefaults()
	cfg.expandEnvVars()

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// LoadFromEnv loads configuration from BOOKFAB_CONFIG or the default
// locations. Without any config file the defaults are returned.
func LoadFromEnv() (*Config, error) {
	if path := os.Getenv(EnvConfigPath); path != "" {
		return Load(path)
	}

	home, _ := os.UserHomeDir()
	defaultPaths := []string{
		"./configs/config.toml",
		"./config.toml",
		filepath.Join(home, ".config", "bookfab", "config.toml"),
	}
	for _, p := range defaultPaths {
		if _, err := os.Stat(p); err == nil {
			return Load(p)
		}
	}

	return Default(), nil
}

// applyDefaults sets default values for missing configuration
func (c *Config) applyDefaults() {
	// General
	if c.General.Name == "" {
		c.General.Name = "BookFab"
	}
	if c.General.LogLevel == "" {
		c.General.LogLevel = "info"
	}
	if c.General.LogFormat == "" {
		c.General.LogFormat = "json"
	}
	if c.General.LogFile == "" {
		c.General.LogFile = filepath.Join(os.TempDir(), "bookfab.log")
	}

	// Workspace
	if c.Workspace.DefaultLanguage == "" {
		c.Workspace.DefaultLanguage = "English"
	}
	if len(c.Workspace.Languages) == 0 {
		c.Workspace.Languages = []string{"English", "Japanese"}
	}
	if c.Workspace.CommitPolicy == "" {
		c.Workspace.CommitPolicy = "confirm"
	}
	if c.Workspace.ConvertDelay.Duration == 0 {
		c.Workspace.ConvertDelay.Duration = 2 * time.Second
	}
}

// expandEnvVars expands environment variables in path values
func (c *Config) expandEnvVars() {
	c.General.LogFile = os.ExpandEnv(c.General.LogFile)
	c.Catalog.File = os.ExpandEnv(c.Catalog.File)
}

// Validate checks values that defaults cannot repair
func (c *Config) Validate() error {
	switch c.Workspace.CommitPolicy {
	case "confirm", "select":
	default:
		return fmt.Errorf("%w: workspace.commit_policy %q (want confirm or select)",
			ErrInvalidConfig, c.Workspace.CommitPolicy)
	}
	if c.Workspace.ConvertDelay.Duration < 0 {
		return fmt.Errorf("%w: workspace.convert_delay must not be negative", ErrInvalidConfig)
	}
	switch c.General.LogFormat {
	case "json", "text":
	default:
		return fmt.Errorf("%w: general.log_format %q (want json or text)",
			ErrInvalidConfig, c.General.LogFormat)
	}
	return nil
}
