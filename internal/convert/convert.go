// ============================================================================
// BookFab - Text-to-Speech Workspace
// ============================================================================
//
// Package:     convert
// Description: Text-to-speech conversion interface
// Author:      Mike Stoffels
// Created:     2026-10-18
// License:     MIT
// ============================================================================

package convert

import (
	"context"
	"time"

	"github.com/msto63/bookfab/internal/workspace"
)

// Synthesizer is the interface for text-to-speech engines
type Synthesizer interface {
	// Convert runs one conversion job
	Convert(ctx context.Context, job workspace.Job) (Result, error)

	// Name identifies the engine in logs and the status bar
	Name() string
}

// Result describes a finished conversion
type Result struct {
	JobID    string
	Engine   string
	Elapsed  time.Duration
	Finished time.Time
}

// Config holds converter configuration
type Config struct {
	// Delay is the simulated processing time
	Delay time.Duration
}

// DefaultConfig returns default converter configuration
func DefaultConfig() Config {
	return Config{
		Delay: 2 * time.Second,
	}
}
