// ============================================================================
// BookFab - Text-to-Speech Workspace
// ============================================================================
//
// Package:     voice
// Description: Filter engine and derived filter options
// Author:      Mike Stoffels
// Created:     2026-10-18
// License:     MIT
// ============================================================================

package voice

import (
	"sort"
	"strings"
)

// Criteria is the active set of filter dimensions of one dialog session.
// Empty string fields are unset.
type Criteria struct {
	Query    string
	Language string
	Gender   Gender
	Age      string
	Tags     []string // all must be present on a voice
}

// IsEmpty reports whether no clause is active
func (c Criteria) IsEmpty() bool {
	return strings.TrimSpace(c.Query) == "" &&
		c.Language == "" &&
		c.Gender == "" &&
		c.Age == "" &&
		len(c.Tags) == 0
}

// HasTag reports whether tag is part of the required tag set
func (c Criteria) HasTag(tag string) bool {
	for _, t := range c.Tags {
		if t == tag {
			return true
		}
	}
	return false
}

// ToggleTag returns a copy of c with tag added or removed
func (c Criteria) ToggleTag(tag string) Criteria {
	tags := make([]string, 0, len(c.Tags)+1)
	removed := false
	for _, t := range c.Tags {
		if t == tag {
			removed = true
			continue
		}
		tags = append(tags, t)
	}
	if !removed {
		tags = append(tags, tag)
	}
	c.Tags = tags
	return c
}

// Matches evaluates all clauses of c against v
func (c Criteria) Matches(v Voice) bool {
	if q := strings.ToLower(strings.TrimSpace(c.Query)); q != "" && !matchesQuery(v, q) {
		return false
	}
	if c.Language != "" && v.Language != c.Language {
		return false
	}
	if c.Gender != "" && v.Gender != c.Gender {
		return false
	}
	if c.Age != "" && v.Age != c.Age {
		return false
	}
	for _, tag := range c.Tags {
		if !v.HasTag(tag) {
			return false
		}
	}
	return true
}

// matchesQuery expects q already lower-cased
func matchesQuery(v Voice, q string) bool {
	if strings.Contains(strings.ToLower(v.Name), q) ||
		strings.Contains(strings.ToLower(v.Language), q) {
		return true
	}
	for _, tag := range v.Tags {
		if strings.Contains(strings.ToLower(tag), q) {
			return true
		}
	}
	return false
}

// Filter returns the voices of catalog matching c, in catalog order.
// The result never aliases catalog.
func Filter(catalog []Voice, c Criteria) []Voice {
	out := make([]Voice, 0, len(catalog))
	if c.IsEmpty() {
		return append(out, catalog...)
	}
	for _, v := range catalog {
		if c.Matches(v) {
			out = append(out, v)
		}
	}
	return out
}

// LanguageOptions returns the selectable languages. An explicit host list
// wins; otherwise the distinct catalog languages in catalog order.
func LanguageOptions(catalog []Voice, explicit []string) []string {
	if len(explicit) > 0 {
		return dedupe(explicit)
	}
	langs := make([]string, 0, len(catalog))
	for _, v := range catalog {
		langs = append(langs, v.Language)
	}
	return dedupe(langs)
}

// AgeOptions returns the distinct age categories, sorted
func AgeOptions(catalog []Voice) []string {
	ages := make([]string, 0, len(catalog))
	for _, v := range catalog {
		ages = append(ages, v.Age)
	}
	out := dedupe(ages)
	sort.Strings(out)
	return out
}

// TagOptions returns the distinct tags, sorted
func TagOptions(catalog []Voice) []string {
	var tags []string
	for _, v := range catalog {
		tags = append(tags, v.Tags...)
	}
	out := dedupe(tags)
	sort.Strings(out)
	return out
}

// dedupe keeps first occurrences and drops empty labels
func dedupe(values []string) []string {
	seen := make(map[string]struct{}, len(values))
	out := make([]string, 0, len(values))
	for _, v := range values {
		if v == "" {
			continue
		}
		if _, ok := seen[v]; ok {
			continue
		}
		seen[v] = struct{}{}
		out = append(out, v)
	}
	return out
}
