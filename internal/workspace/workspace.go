// ============================================================================
// BookFab - Text-to-Speech Workspace
// ============================================================================
//
// Package:     workspace
// Description: Host page state - text, selection, parameters, convert state
// Author:      Mike Stoffels
// Created:     2026-10-18
// License:     MIT
// ============================================================================

package workspace

import (
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/msto63/bookfab/internal/selection"
	"github.com/msto63/bookfab/internal/voice"
	"github.com/msto63/bookfab/pkg/core/logging"
)

// ConvertState is the state of the simulated conversion
type ConvertState int

const (
	ConvertIdle ConvertState = iota
	ConvertPending
	ConvertDone
)

// String returns the string representation of the state
func (s ConvertState) String() string {
	switch s {
	case ConvertIdle:
		return "idle"
	case ConvertPending:
		return "converting"
	case ConvertDone:
		return "converted"
	default:
		return "unknown"
	}
}

// Job describes one convert request
type Job struct {
	ID         string
	Text       string
	Selection  selection.Selection
	Parameters Parameters
}

// Options configure a new Workspace
type Options struct {
	// Catalog is shown in the dialog as is; augmentation happens before
	Catalog   []voice.Voice
	Languages []string

	Language string
	VoiceID  string

	Policy              selection.CommitPolicy
	ResetPlaybackOnEdit bool

	Logger *logging.Logger
}

// Workspace owns the canonical selection and all form state. Every method
// runs synchronously in the caller's event turn.
type Workspace struct {
	catalog   []voice.Voice
	languages []string

	text      string
	selection selection.Selection
	params    Parameters
	dialog    selection.Dialog

	convertState ConvertState
	pendingJob   string
	lastJobID    string

	resetPlaybackOnEdit bool
	logger              *logging.Logger
}

// New creates a workspace. A configured default voice must exist in the
// catalog.
func New(opts Options) (*Workspace, error) {
	if err := voice.Validate(opts.Catalog); err != nil {
		return nil, fmt.Errorf("invalid catalog: %w", err)
	}
	if opts.VoiceID != "" {
		if _, ok := voice.Find(opts.Catalog, opts.VoiceID); !ok {
			return nil, fmt.Errorf("%w: %q", ErrUnknownVoice, opts.VoiceID)
		}
	}

	logger := opts.Logger
	if logger == nil {
		logger = logging.Discard()
	}

	return &Workspace{
		catalog:             opts.Catalog,
		languages:           voice.LanguageOptions(opts.Catalog, opts.Languages),
		selection:           selection.Selection{VoiceID: opts.VoiceID, Language: opts.Language},
		params:              DefaultParameters(),
		dialog:              selection.NewDialog(opts.Policy),
		resetPlaybackOnEdit: opts.ResetPlaybackOnEdit,
		logger:              logger,
	}, nil
}

// Catalog returns the voices offered by the workspace
func (w *Workspace) Catalog() []voice.Voice { return w.catalog }

// Languages returns the selectable languages
func (w *Workspace) Languages() []string { return w.languages }

// Text returns the text to convert
func (w *Workspace) Text() string { return w.text }

// Selection returns the committed (voice, language) pair
func (w *Workspace) Selection() selection.Selection { return w.selection }

// Parameters returns a copy of the prosody settings
func (w *Workspace) Parameters() Parameters { return w.params.clone() }

// Dialog returns the current dialog state
func (w *Workspace) Dialog() selection.Dialog { return w.dialog }

// SelectedVoice returns the committed voice record
func (w *Workspace) SelectedVoice() (voice.Voice, bool) {
	return voice.Find(w.catalog, w.selection.VoiceID)
}

// ----------------------------------------------------------------------------
// Dialog
// ----------------------------------------------------------------------------

// OpenDialog starts a dialog session seeded from the committed selection
func (w *Workspace) OpenDialog() {
	w.Dispatch(selection.Opened{
		Host:      w.selection,
		Catalog:   w.catalog,
		Languages: w.languages,
	})
}

// CloseDialog dismisses the dialog, host state stays unchanged
func (w *Workspace) CloseDialog() {
	w.Dispatch(selection.Dismissed{})
}

// Dispatch routes ev to the dialog and applies a resulting commit
func (w *Workspace) Dispatch(ev selection.Event) selection.Outcome {
	next, out := selection.Reduce(w.dialog, ev)
	w.dialog = next

	if out.Commit != nil {
		w.logger.Debug("voice selection committed",
			"voice", out.Commit.VoiceID, "language", out.Commit.Language)
		if *out.Commit != w.selection {
			w.selection = *out.Commit
			w.edited()
		}
	}
	return out
}

// ----------------------------------------------------------------------------
// Form commands
// ----------------------------------------------------------------------------

// SetText replaces the text to convert
func (w *Workspace) SetText(s string) {
	if s == w.text {
		return
	}
	w.text = s
	w.edited()
}

// ClearText empties the text
func (w *Workspace) ClearText() {
	w.SetText("")
}

// SetLanguage changes the host language; the next dialog session is seeded
// with it.
func (w *Workspace) SetLanguage(lang string) {
	if lang == w.selection.Language {
		return
	}
	w.selection.Language = lang
	w.edited()
}

// SetVoice selects a voice directly, without the dialog
func (w *Workspace) SetVoice(id string) error {
	if _, ok := voice.Find(w.catalog, id); !ok {
		return fmt.Errorf("%w: %q", ErrUnknownVoice, id)
	}
	if id == w.selection.VoiceID {
		return nil
	}
	w.selection.VoiceID = id
	w.edited()
	return nil
}

// SetExpressiveness sets the expressiveness level
func (w *Workspace) SetExpressiveness(e Expressiveness) error {
	e, err := ParseExpressiveness(string(e))
	if err != nil {
		return err
	}
	if e != w.params.Expressiveness {
		w.params.Expressiveness = e
		w.edited()
	}
	return nil
}

// SetLoudness sets the loudness level
func (w *Workspace) SetLoudness(l Loudness) error {
	l, err := ParseLoudness(string(l))
	if err != nil {
		return err
	}
	if l != w.params.Loudness {
		w.params.Loudness = l
		w.edited()
	}
	return nil
}

// SetSilence sets one pause slider, clamped to [0, 2000] ms in steps of 10.
// It returns the stored value.
func (w *Workspace) SetSilence(kind SilenceKind, ms int) (int, error) {
	kind, err := ParseSilenceKind(string(kind))
	if err != nil {
		return 0, err
	}
	v := ClampSilence(ms)
	if v != w.params.Silence[kind] {
		w.params.Silence = w.params.clone().Silence
		w.params.Silence[kind] = v
		w.edited()
	}
	return v, nil
}

// SetSpeed sets the speed, clamped to [0.5, 2.5] in steps of 0.05.
// It returns the stored value.
func (w *Workspace) SetSpeed(x float64) float64 {
	v := ClampSpeed(x)
	if v != w.params.Speed {
		w.params.Speed = v
		w.edited()
	}
	return v
}

// CycleExpressiveness moves the level by delta positions
func (w *Workspace) CycleExpressiveness(delta int) {
	_ = w.SetExpressiveness(cycle(Expressivenesses, w.params.Expressiveness, delta))
}

// CycleLoudness moves the level by delta positions
func (w *Workspace) CycleLoudness(delta int) {
	_ = w.SetLoudness(cycle(Loudnesses, w.params.Loudness, delta))
}

// CycleLanguage moves the host language by delta positions
func (w *Workspace) CycleLanguage(delta int) {
	if len(w.languages) == 0 {
		return
	}
	w.SetLanguage(cycle(w.languages, w.selection.Language, delta))
}

// edited applies the playback policy after any change of the inputs
func (w *Workspace) edited() {
	if w.resetPlaybackOnEdit && w.convertState == ConvertDone {
		w.convertState = ConvertIdle
	}
}

// ----------------------------------------------------------------------------
// Convert & playback
// ----------------------------------------------------------------------------

// ConvertState returns the conversion state
func (w *Workspace) ConvertState() ConvertState { return w.convertState }

// CanConvert reports whether the convert trigger is enabled
func (w *Workspace) CanConvert() bool {
	return w.convertState != ConvertPending && strings.TrimSpace(w.text) != ""
}

// CanPlay reports whether the playback trigger is enabled
func (w *Workspace) CanPlay() bool {
	return w.convertState == ConvertDone
}

// StartConvert issues a convert request. A second request while one is
// pending is rejected, not queued.
func (w *Workspace) StartConvert() (Job, error) {
	if w.convertState == ConvertPending {
		return Job{}, ErrConvertBusy
	}
	if strings.TrimSpace(w.text) == "" {
		return Job{}, ErrEmptyText
	}

	job := Job{
		ID:         uuid.NewString(),
		Text:       w.text,
		Selection:  w.selection,
		Parameters: w.params.clone(),
	}
	w.convertState = ConvertPending
	w.pendingJob = job.ID

	w.logger.Info("conversion started",
		"job", job.ID, "voice", job.Selection.VoiceID, "language", job.Selection.Language,
		"chars", len([]rune(job.Text)))
	return job, nil
}

// FinishConvert completes the pending job. Results of unknown or stale jobs
// are ignored. A non-nil err returns to idle without enabling playback.
func (w *Workspace) FinishConvert(jobID string, err error) bool {
	if w.convertState != ConvertPending || jobID != w.pendingJob {
		return false
	}
	w.pendingJob = ""
	if err != nil {
		w.convertState = ConvertIdle
		w.logger.Warn("conversion aborted", "job", jobID, "error", err)
		return true
	}

	w.convertState = ConvertDone
	w.lastJobID = jobID
	w.logger.Info("conversion finished", "job", jobID)
	return true
}

// Play starts playback of the last conversion
func (w *Workspace) Play() error {
	if !w.CanPlay() {
		return ErrPlaybackDisabled
	}
	w.logger.Info("playback started", "job", w.lastJobID)
	return nil
}
