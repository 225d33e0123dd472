// ============================================================================
// BookFab - Text-to-Speech Workspace
// ============================================================================
//
// Package:     selection
// Description: Event types consumed by the voice selection dialog reducer
// Author:      Mike Stoffels
// Created:     2026-10-18
// License:     MIT
// ============================================================================

package selection

import "github.com/msto63/bookfab/internal/voice"

// Event is a user interaction with the selection dialog
type Event interface {
	event()
}

// Opened opens the dialog for the host's current selection
type Opened struct {
	Host      Selection
	Catalog   []voice.Voice
	Languages []string // optional explicit language list of the host
}

// QueryChanged replaces the free-text query
type QueryChanged struct{ Query string }

// LanguageChanged replaces the language filter; empty unsets it
type LanguageChanged struct{ Language string }

// GenderChanged replaces the gender filter; empty unsets it
type GenderChanged struct{ Gender voice.Gender }

// AgeChanged replaces the age filter; empty unsets it
type AgeChanged struct{ Age string }

// TagToggled adds or removes a required tag
type TagToggled struct{ Tag string }

// FiltersCleared resets query, gender, age and tags. The language filter
// is kept since it mirrors the host language.
type FiltersCleared struct{}

// VoiceSelected highlights a voice card
type VoiceSelected struct{ ID string }

// Confirmed is the OK action
type Confirmed struct{}

// Dismissed closes the dialog without committing
type Dismissed struct{}

func (Opened) event()          {}
func (QueryChanged) event()    {}
func (LanguageChanged) event() {}
func (GenderChanged) event()   {}
func (AgeChanged) event()      {}
func (TagToggled) event()      {}
func (FiltersCleared) event()  {}
func (VoiceSelected) event()   {}
func (Confirmed) event()       {}
func (Dismissed) event()       {}
