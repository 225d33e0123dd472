// ============================================================================
// BookFab - Text-to-Speech Workspace
// ============================================================================
//
// Package:     selection
// Description: Voice selection dialog state machine
// Author:      Mike Stoffels
// Created:     2026-10-18
// License:     MIT
// ============================================================================

package selection

import (
	"github.com/msto63/bookfab/internal/voice"
)

// Selection is the host-owned (voice, language) pair
type Selection struct {
	VoiceID  string
	Language string
}

// Outcome tells the host what a transition means for its own state.
// Commit is nil unless the transition committed a selection.
type Outcome struct {
	Commit *Selection
	Closed bool
}

// Dialog is the state of the voice selection dialog. It is a value type:
// Reduce never mutates its input.
type Dialog struct {
	Open   bool
	Policy CommitPolicy

	// Host is the selection the dialog was opened with
	Host        Selection
	Criteria    voice.Criteria
	Highlighted string

	// Catalog is the (already augmented) snapshot handed over by the host
	Catalog   []voice.Voice
	Languages []string
}

// NewDialog returns a closed dialog using policy
func NewDialog(policy CommitPolicy) Dialog {
	return Dialog{Policy: policy}
}

// Reduce applies ev to d. Only Confirmed, or VoiceSelected under
// CommitOnSelect, produce a commit.
func Reduce(d Dialog, ev Event) (Dialog, Outcome) {
	if opened, ok := ev.(Opened); ok {
		return open(d.Policy, opened), Outcome{}
	}
	if !d.Open {
		return d, Outcome{}
	}

	switch e := ev.(type) {
	case QueryChanged:
		d.Criteria.Query = e.Query
	case LanguageChanged:
		d.Criteria.Language = e.Language
	case GenderChanged:
		d.Criteria.Gender = e.Gender
	case AgeChanged:
		d.Criteria.Age = e.Age
	case TagToggled:
		if e.Tag != "" {
			d.Criteria = d.Criteria.ToggleTag(e.Tag)
		}
	case FiltersCleared:
		d.Criteria = voice.Criteria{Language: d.Criteria.Language}
	case VoiceSelected:
		if _, ok := voice.Find(d.Catalog, e.ID); !ok {
			return d, Outcome{}
		}
		d.Highlighted = e.ID
		if d.Policy == CommitOnSelect {
			return commit(d)
		}
	case Confirmed:
		return commit(d)
	case Dismissed:
		return closed(d), Outcome{Closed: true}
	}
	return d, Outcome{}
}

// open initialises a fresh dialog session
func open(policy CommitPolicy, e Opened) Dialog {
	languages := voice.LanguageOptions(e.Catalog, e.Languages)
	return Dialog{
		Open:        true,
		Policy:      policy,
		Host:        e.Host,
		Criteria:    voice.Criteria{Language: seedLanguage(e.Catalog, languages, e.Host.Language)},
		Highlighted: e.Host.VoiceID,
		Catalog:     e.Catalog,
		Languages:   languages,
	}
}

// seedLanguage picks the initial language filter: the only catalog language
// if there is exactly one, else the host language if it can be selected.
func seedLanguage(catalog []voice.Voice, options []string, host string) string {
	if catalogLangs := voice.LanguageOptions(catalog, nil); len(catalogLangs) == 1 {
		return catalogLangs[0]
	}
	for _, l := range options {
		if l == host {
			return host
		}
	}
	return ""
}

func commit(d Dialog) (Dialog, Outcome) {
	sel := d.Proposal()
	return closed(d), Outcome{Commit: &sel, Closed: true}
}

// closed drops all session state but keeps the policy
func closed(d Dialog) Dialog {
	return NewDialog(d.Policy)
}

// Proposal is the selection Confirmed would commit right now. Unset parts
// fall back to the host selection.
func (d Dialog) Proposal() Selection {
	sel := d.Host
	if d.Highlighted != "" {
		sel.VoiceID = d.Highlighted
	}
	if d.Criteria.Language != "" {
		sel.Language = d.Criteria.Language
	}
	return sel
}

// Visible returns the filtered voices of the current session
func (d Dialog) Visible() []voice.Voice {
	return voice.Filter(d.Catalog, d.Criteria)
}

// Empty reports whether the "no results" state must be rendered
func (d Dialog) Empty() bool {
	return d.Open && len(d.Visible()) == 0
}

// AgeOptions lists the selectable age categories of the session catalog
func (d Dialog) AgeOptions() []string {
	return voice.AgeOptions(d.Catalog)
}

// TagOptions lists the selectable tags of the session catalog
func (d Dialog) TagOptions() []string {
	return voice.TagOptions(d.Catalog)
}
