package workspace

import (
	"errors"
	"math"
	"testing"

	"github.com/msto63/bookfab/internal/selection"
	"github.com/msto63/bookfab/internal/voice"
)

func testCatalog() []voice.Voice {
	return []voice.Voice{
		{ID: "v1", Name: "Amelia", Gender: voice.GenderFemale, Age: "Young Adult", Language: "English", Tags: []string{"Calm"}},
		{ID: "v2", Name: "Oliver", Gender: voice.GenderMale, Age: "Middle Aged", Language: "English", Tags: []string{"Deep"}},
		{ID: "v3", Name: "Sakura", Gender: voice.GenderFemale, Age: "Young Adult", Language: "Japanese", Tags: []string{"Calm"}},
	}
}

func newWorkspace(t *testing.T, reset bool) *Workspace {
	t.Helper()
	w, err := New(Options{
		Catalog:             testCatalog(),
		Languages:           []string{"English", "Japanese"},
		Language:            "English",
		VoiceID:             "v1",
		ResetPlaybackOnEdit: reset,
	})
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	return w
}

func TestNew_Validation(t *testing.T) {
	if _, err := New(Options{Catalog: testCatalog(), VoiceID: "missing"}); !errors.Is(err, ErrUnknownVoice) {
		t.Errorf("unknown default voice: error = %v, want ErrUnknownVoice", err)
	}

	dup := append(testCatalog(), testCatalog()[0])
	if _, err := New(Options{Catalog: dup}); !errors.Is(err, voice.ErrDuplicateID) {
		t.Errorf("duplicate ids: error = %v, want ErrDuplicateID", err)
	}
}

func TestDismissLeavesHostSelection(t *testing.T) {
	w := newWorkspace(t, false)

	w.OpenDialog()
	w.Dispatch(selection.TagToggled{Tag: "Calm"})
	w.Dispatch(selection.VoiceSelected{ID: "v3"})
	w.CloseDialog()

	if got, want := w.Selection(), (selection.Selection{VoiceID: "v1", Language: "English"}); got != want {
		t.Errorf("Selection() = %+v, want %+v", got, want)
	}
	if w.Dialog().Open {
		t.Error("dialog should be closed")
	}
}

func TestConfirmCommitsSelection(t *testing.T) {
	w := newWorkspace(t, false)

	w.OpenDialog()
	w.Dispatch(selection.VoiceSelected{ID: "v2"})
	w.Dispatch(selection.LanguageChanged{Language: "Japanese"})
	if got := w.Selection(); got.VoiceID != "v1" {
		t.Fatalf("host changed before confirm: %+v", got)
	}
	out := w.Dispatch(selection.Confirmed{})

	if out.Commit == nil {
		t.Fatal("confirm should report a commit")
	}
	if got, want := w.Selection(), (selection.Selection{VoiceID: "v2", Language: "Japanese"}); got != want {
		t.Errorf("Selection() = %+v, want %+v", got, want)
	}
}

func TestLanguageSyncSeedsDialog(t *testing.T) {
	w := newWorkspace(t, false)

	w.SetLanguage("Japanese")
	w.OpenDialog()

	if got := w.Dialog().Criteria.Language; got != "Japanese" {
		t.Errorf("dialog language = %q, want Japanese", got)
	}
	if vis := w.Dialog().Visible(); len(vis) != 1 || vis[0].ID != "v3" {
		t.Errorf("Visible() = %v, want [v3]", vis)
	}
}

func TestSetVoice(t *testing.T) {
	w := newWorkspace(t, false)

	if err := w.SetVoice("v3"); err != nil {
		t.Fatalf("SetVoice() error = %v", err)
	}
	if v, ok := w.SelectedVoice(); !ok || v.Name != "Sakura" {
		t.Errorf("SelectedVoice() = %v, %v", v.Name, ok)
	}
	if err := w.SetVoice("nope"); !errors.Is(err, ErrUnknownVoice) {
		t.Errorf("SetVoice(nope) error = %v, want ErrUnknownVoice", err)
	}
}

func TestSetSpeed_Clamped(t *testing.T) {
	tests := []struct {
		input float64
		want  float64
	}{
		{1.0, 1.0},
		{0.1, 0.5},
		{-3, 0.5},
		{2.6, 2.5},
		{100, 2.5},
		{1.23, 1.25},
		{1.21, 1.2},
		{math.NaN(), 1.0},
	}

	for _, tt := range tests {
		w := newWorkspace(t, false)
		got := w.SetSpeed(tt.input)
		if got != tt.want {
			t.Errorf("SetSpeed(%v) = %v, want %v", tt.input, got, tt.want)
		}
		if stored := w.Parameters().Speed; stored < SpeedMin || stored > SpeedMax {
			t.Errorf("stored speed %v out of range", stored)
		}
	}
}

func TestSpeedNudgesDoNotDrift(t *testing.T) {
	w := newWorkspace(t, false)
	for i := 0; i < 10; i++ {
		w.SetSpeed(w.Parameters().Speed + SpeedStep)
	}
	if got := w.Parameters().Speed; got != 1.5 {
		t.Errorf("speed after 10 steps = %v, want 1.5", got)
	}
}

func TestSetSilence(t *testing.T) {
	tests := []struct {
		kind    SilenceKind
		input   int
		want    int
		wantErr bool
	}{
		{SilenceComma, 300, 300, false},
		{SilenceSentence, -10, 0, false},
		{SilenceParagraph, 5000, 2000, false},
		{SilenceComma, 304, 300, false},
		{SilenceComma, 305, 310, false},
		{SilenceKind("breath"), 100, 0, true},
	}

	for _, tt := range tests {
		w := newWorkspace(t, false)
		got, err := w.SetSilence(tt.kind, tt.input)
		if (err != nil) != tt.wantErr {
			t.Fatalf("SetSilence(%s, %d) error = %v", tt.kind, tt.input, err)
		}
		if tt.wantErr {
			if !errors.Is(err, ErrInvalidValue) {
				t.Errorf("error should wrap ErrInvalidValue: %v", err)
			}
			continue
		}
		if got != tt.want || w.Parameters().Silence[tt.kind] != tt.want {
			t.Errorf("SetSilence(%s, %d) = %d, want %d", tt.kind, tt.input, got, tt.want)
		}
	}
}

func TestSilenceSlidersAreIndependent(t *testing.T) {
	w := newWorkspace(t, false)
	before := w.Parameters().Silence

	if _, err := w.SetSilence(SilenceSentence, 800); err != nil {
		t.Fatal(err)
	}
	after := w.Parameters().Silence
	if after[SilenceComma] != before[SilenceComma] || after[SilenceParagraph] != before[SilenceParagraph] {
		t.Errorf("other sliders changed: before %v after %v", before, after)
	}
	if before[SilenceSentence] == 800 {
		t.Error("Parameters() should return a copy")
	}
}

func TestEnumsSetters(t *testing.T) {
	w := newWorkspace(t, false)

	if err := w.SetExpressiveness("HIGH"); err != nil {
		t.Errorf("SetExpressiveness(HIGH) error = %v", err)
	}
	if w.Parameters().Expressiveness != ExpressivenessHigh {
		t.Errorf("Expressiveness = %v", w.Parameters().Expressiveness)
	}
	if err := w.SetExpressiveness("extreme"); !errors.Is(err, ErrInvalidValue) {
		t.Errorf("SetExpressiveness(extreme) error = %v", err)
	}

	if err := w.SetLoudness(LoudnessQuiet); err != nil {
		t.Errorf("SetLoudness() error = %v", err)
	}
	if err := w.SetLoudness("deafening"); !errors.Is(err, ErrInvalidValue) {
		t.Errorf("SetLoudness(deafening) error = %v", err)
	}
}

func TestCycle(t *testing.T) {
	w := newWorkspace(t, false)

	w.CycleLoudness(1)
	if got := w.Parameters().Loudness; got != LoudnessSoft {
		t.Errorf("loudness after +1 = %v, want soft", got)
	}
	w.CycleLoudness(-2)
	if got := w.Parameters().Loudness; got != LoudnessLoud {
		t.Errorf("loudness after -2 = %v, want loud", got)
	}
	w.CycleLoudness(-1)
	if got := w.Parameters().Loudness; got != LoudnessQuiet {
		t.Errorf("loudness should wrap, got %v", got)
	}

	w.CycleExpressiveness(1)
	if got := w.Parameters().Expressiveness; got != ExpressivenessLow {
		t.Errorf("expressiveness after +1 = %v, want low", got)
	}

	w.CycleLanguage(1)
	if got := w.Selection().Language; got != "Japanese" {
		t.Errorf("language after +1 = %v, want Japanese", got)
	}
}

func TestConvertLifecycle(t *testing.T) {
	w := newWorkspace(t, false)

	if w.CanConvert() {
		t.Error("empty text must disable convert")
	}
	if _, err := w.StartConvert(); !errors.Is(err, ErrEmptyText) {
		t.Errorf("StartConvert() error = %v, want ErrEmptyText", err)
	}

	w.SetText("Hello world")
	job, err := w.StartConvert()
	if err != nil {
		t.Fatalf("StartConvert() error = %v", err)
	}
	if job.ID == "" || job.Text != "Hello world" || job.Selection.VoiceID != "v1" {
		t.Errorf("job = %+v", job)
	}
	if w.ConvertState() != ConvertPending || w.CanConvert() {
		t.Error("convert trigger must be disabled while pending")
	}
	if _, err := w.StartConvert(); !errors.Is(err, ErrConvertBusy) {
		t.Errorf("second StartConvert() error = %v, want ErrConvertBusy", err)
	}
	if err := w.Play(); !errors.Is(err, ErrPlaybackDisabled) {
		t.Errorf("Play() while pending error = %v", err)
	}

	if w.FinishConvert("stale", nil) {
		t.Error("unknown job id must be ignored")
	}
	if !w.FinishConvert(job.ID, nil) {
		t.Fatal("FinishConvert() should accept the pending job")
	}
	if !w.CanPlay() || w.ConvertState() != ConvertDone {
		t.Error("successful convert should enable playback")
	}
	if err := w.Play(); err != nil {
		t.Errorf("Play() error = %v", err)
	}
	if w.FinishConvert(job.ID, nil) {
		t.Error("a finished job must not finish twice")
	}
}

func TestConvertAborted(t *testing.T) {
	w := newWorkspace(t, false)
	w.SetText("Hello")
	job, _ := w.StartConvert()

	w.FinishConvert(job.ID, errors.New("shutdown"))
	if w.CanPlay() {
		t.Error("aborted convert must not enable playback")
	}
	if !w.CanConvert() {
		t.Error("convert should be possible again")
	}
}

func TestPlaybackPolicy(t *testing.T) {
	edits := map[string]func(w *Workspace){
		"text":     func(w *Workspace) { w.SetText("Other text") },
		"clear":    func(w *Workspace) { w.ClearText() },
		"language": func(w *Workspace) { w.SetLanguage("Japanese") },
		"voice":    func(w *Workspace) { _ = w.SetVoice("v2") },
		"speed":    func(w *Workspace) { w.SetSpeed(2.0) },
		"silence":  func(w *Workspace) { _, _ = w.SetSilence(SilenceComma, 0) },
		"loudness": func(w *Workspace) { w.CycleLoudness(1) },
		"dialog": func(w *Workspace) {
			w.OpenDialog()
			w.Dispatch(selection.VoiceSelected{ID: "v2"})
			w.Dispatch(selection.Confirmed{})
		},
	}

	for name, edit := range edits {
		for _, reset := range []bool{false, true} {
			w := newWorkspace(t, reset)
			w.SetText("Hello")
			job, _ := w.StartConvert()
			w.FinishConvert(job.ID, nil)

			edit(w)
			if got, want := w.CanPlay(), !reset; got != want {
				t.Errorf("%s edit with reset=%v: CanPlay() = %v, want %v", name, reset, got, want)
			}
		}
	}
}

func TestPlaybackPolicy_DismissIsNotAnEdit(t *testing.T) {
	w := newWorkspace(t, true)
	w.SetText("Hello")
	job, _ := w.StartConvert()
	w.FinishConvert(job.ID, nil)

	w.OpenDialog()
	w.Dispatch(selection.TagToggled{Tag: "Calm"})
	w.CloseDialog()

	if !w.CanPlay() {
		t.Error("dialog interaction without commit must not disable playback")
	}
}
