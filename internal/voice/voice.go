// ============================================================================
// BookFab - Text-to-Speech Workspace
// ============================================================================
//
// Package:     voice
// Description: Voice catalog records and catalog validation
// Author:      Mike Stoffels
// Created:     2026-10-18
// License:     MIT
// ============================================================================

package voice

import (
	"fmt"
	"strings"
)

// Gender of a speaking persona
type Gender string

const (
	GenderMale   Gender = "Male"
	GenderFemale Gender = "Female"
)

// ParseGender accepts "male"/"female" in any case. The empty string yields
// an unset gender.
func ParseGender(s string) (Gender, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "":
		return "", nil
	case "male", "m":
		return GenderMale, nil
	case "female", "f":
		return GenderFemale, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrInvalidGender, s)
	}
}

// Voice is an immutable catalog record
type Voice struct {
	ID       string   `yaml:"id"`
	Name     string   `yaml:"name"`
	Gender   Gender   `yaml:"gender"`
	Age      string   `yaml:"age"`
	Language string   `yaml:"language"`
	Tags     []string `yaml:"tags,omitempty"`
	Avatar   string   `yaml:"avatar,omitempty"`
}

// HasTag reports whether the voice carries tag (exact match)
func (v Voice) HasTag(tag string) bool {
	for _, t := range v.Tags {
		if t == tag {
			return true
		}
	}
	return false
}

// Find returns the voice with the given id
func Find(catalog []Voice, id string) (Voice, bool) {
	for _, v := range catalog {
		if v.ID == id {
			return v, true
		}
	}
	return Voice{}, false
}

// Validate checks that every voice has an id and that ids are unique
func Validate(catalog []Voice) error {
	seen := make(map[string]struct{}, len(catalog))
	for i, v := range catalog {
		if v.ID == "" {
			return fmt.Errorf("voice #%d (%s): %w", i, v.Name, ErrMissingID)
		}
		if _, dup := seen[v.ID]; dup {
			return fmt.Errorf("voice %q: %w", v.ID, ErrDuplicateID)
		}
		seen[v.ID] = struct{}{}

		switch v.Gender {
		case GenderMale, GenderFemale:
		default:
			return fmt.Errorf("voice %q: %w: %q", v.ID, ErrInvalidGender, v.Gender)
		}
	}
	return nil
}
