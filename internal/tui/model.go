// ============================================================================
// BookFab - Text-to-Speech Workspace
// ============================================================================
//
// Package:     tui
// Description: Desktop shell and text-to-audio workspace form
// Author:      Mike Stoffels
// Created:     2026-10-18
// License:     MIT
// ============================================================================

package tui

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/msto63/bookfab/internal/convert"
	"github.com/msto63/bookfab/internal/workspace"
	"github.com/msto63/bookfab/pkg/core/logging"
	"github.com/msto63/bookfab/pkg/core/version"
)

// playbackPreview is how long a simulated playback runs
const playbackPreview = 3 * time.Second

// Page represents the sidebar menu entries
type Page int

const (
	PageDashboard Page = iota
	PageTextToAudio
	PageSettings
)

var pageTitles = map[Page]string{
	PageDashboard:   "Dashboard",
	PageTextToAudio: "Text to Audio",
	PageSettings:    "Settings",
}

// FormField represents the focusable fields of the text-to-audio form
type FormField int

const (
	FieldText FormField = iota
	FieldLanguage
	FieldVoice
	FieldExpressiveness
	FieldSilenceComma
	FieldSilenceSentence
	FieldSilenceParagraph
	FieldSpeed
	FieldLoudness
	FieldConvert
	FieldPlay
	fieldCount
)

var silenceFields = map[FormField]workspace.SilenceKind{
	FieldSilenceComma:     workspace.SilenceComma,
	FieldSilenceSentence:  workspace.SilenceSentence,
	FieldSilenceParagraph: workspace.SilenceParagraph,
}

// Setting is one read-only row of the settings page
type Setting struct {
	Label string
	Value string
}

// Config holds the dependencies of the TUI
type Config struct {
	Workspace   *workspace.Workspace
	Synthesizer convert.Synthesizer
	Logger      *logging.Logger
	Settings    []Setting
}

// Model is the main TUI model
type Model struct {
	ctx    context.Context
	ws     *workspace.Workspace
	synth  convert.Synthesizer
	logger *logging.Logger

	settings []Setting

	width  int
	height int

	page  Page
	field FormField

	textarea textarea.Model
	search   textinput.Model
	spinner  spinner.Model

	// Dialog state that is pure presentation
	dialogFocus DialogFocus
	cardCursor  int
	tagCursor   int

	playing bool
	playSeq int

	status string
	err    error
}

// New creates a TUI model bound to a workspace
func New(ctx context.Context, cfg Config) Model {
	logger := cfg.Logger
	if logger == nil {
		logger = logging.Discard()
	}

	ta := textarea.New()
	ta.Placeholder = "Paste or type the text to convert..."
	ta.ShowLineNumbers = false
	ta.CharLimit = 0
	ta.SetWidth(60)
	ta.SetHeight(5)
	ta.SetValue(cfg.Workspace.Text())

	ti := textinput.New()
	ti.Placeholder = "Search name, language or tag"
	ti.Prompt = "/ "
	ti.CharLimit = 64
	ti.Width = 24

	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = SpinnerStyle

	return Model{
		ctx:      ctx,
		ws:       cfg.Workspace,
		synth:    cfg.Synthesizer,
		logger:   logger.With("component", "tui"),
		settings: cfg.Settings,
		width:    110,
		height:   34,
		page:     PageDashboard,
		textarea: ta,
		search:   ti,
		spinner:  sp,
	}
}

// Init initializes the model
func (m Model) Init() tea.Cmd {
	return textarea.Blink
}

// Update handles messages
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.textarea.SetWidth(max(20, m.mainWidth()-LabelStyle.GetWidth()-2))
		return m, nil

	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			return m, tea.Quit
		}
		if m.ws.Dialog().Open {
			return m.handleDialogKey(msg)
		}
		return m.handleKey(msg)

	case convertDoneMsg:
		if !m.ws.FinishConvert(msg.jobID, msg.err) {
			return m, nil
		}
		if msg.err != nil {
			m.setError(fmt.Errorf("conversion failed: %w", msg.err))
			return m, nil
		}
		m.err = nil
		m.status = fmt.Sprintf("%s Converted in %s", IconCheck, msg.result.Elapsed.Round(10*time.Millisecond))
		return m, nil

	case playbackDoneMsg:
		if msg.seq == m.playSeq && m.playing {
			m.playing = false
			m.status = "Playback finished"
		}
		return m, nil

	case spinner.TickMsg:
		if m.ws.ConvertState() != workspace.ConvertPending {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd
	}

	return m, nil
}

// handleKey handles keys while no dialog is open
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "f1":
		cmd := m.setPage(PageDashboard)
		return m, cmd
	case "f2":
		cmd := m.setPage(PageTextToAudio)
		return m, cmd
	case "f3":
		cmd := m.setPage(PageSettings)
		return m, cmd
	}

	if m.page != PageTextToAudio {
		switch msg.String() {
		case "q", "esc":
			return m, tea.Quit
		case "enter":
			if m.page == PageDashboard {
				cmd := m.setPage(PageTextToAudio)
				return m, cmd
			}
		}
		return m, nil
	}

	return m.handleFormKey(msg)
}

// handleFormKey handles keys on the text-to-audio page
func (m Model) handleFormKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	key := msg.String()
	switch key {
	case "tab":
		m.field = (m.field + 1) % fieldCount
		cmd := m.syncFocus()
		return m, cmd
	case "shift+tab":
		m.field = (m.field + fieldCount - 1) % fieldCount
		cmd := m.syncFocus()
		return m, cmd
	case "ctrl+l":
		m.ws.ClearText()
		m.textarea.Reset()
		return m, nil
	case "esc":
		if m.field == FieldText {
			m.field = FieldLanguage
			cmd := m.syncFocus()
			return m, cmd
		}
		cmd := m.setPage(PageDashboard)
		return m, cmd
	}

	if m.field == FieldText {
		var cmd tea.Cmd
		m.textarea, cmd = m.textarea.Update(msg)
		m.ws.SetText(m.textarea.Value())
		return m, cmd
	}

	switch key {
	case "left", "h":
		m.adjust(-1, false)
	case "right", "l":
		m.adjust(1, false)
	case "shift+left", "H":
		m.adjust(-1, true)
	case "shift+right", "L":
		m.adjust(1, true)
	case "up", "k":
		m.field = max(FieldLanguage, m.field-1)
	case "down", "j":
		m.field = min(FieldPlay, m.field+1)
	case "v":
		cmd := m.openDialog()
		return m, cmd
	case "c":
		return m.startConvert()
	case "p":
		return m.play()
	case "enter":
		switch m.field {
		case FieldVoice:
			cmd := m.openDialog()
			return m, cmd
		case FieldConvert:
			return m.startConvert()
		case FieldPlay:
			return m.play()
		}
	}
	return m, nil
}

// adjust moves the focused enum or slider by delta steps
func (m *Model) adjust(delta int, coarse bool) {
	params := m.ws.Parameters()

	switch m.field {
	case FieldLanguage:
		m.ws.CycleLanguage(delta)
	case FieldExpressiveness:
		m.ws.CycleExpressiveness(delta)
	case FieldLoudness:
		m.ws.CycleLoudness(delta)
	case FieldSilenceComma, FieldSilenceSentence, FieldSilenceParagraph:
		kind := silenceFields[m.field]
		step := workspace.SilenceStepMs
		if coarse {
			step *= 10
		}
		_, _ = m.ws.SetSilence(kind, params.Silence[kind]+delta*step)
	case FieldSpeed:
		step := workspace.SpeedStep
		if coarse {
			step *= 5
		}
		m.ws.SetSpeed(params.Speed + float64(delta)*step)
	}
}

// startConvert issues a conversion and runs the synthesizer in the background
func (m Model) startConvert() (tea.Model, tea.Cmd) {
	job, err := m.ws.StartConvert()
	if err != nil {
		m.setError(err)
		return m, nil
	}

	m.err = nil
	m.playing = false
	m.status = "Converting with " + m.synth.Name() + "..."
	return m, tea.Batch(convertCmd(m.ctx, m.synth, job), m.spinner.Tick)
}

// play starts a simulated playback of the last conversion
func (m Model) play() (tea.Model, tea.Cmd) {
	if err := m.ws.Play(); err != nil {
		m.setError(err)
		return m, nil
	}

	m.err = nil
	m.playing = true
	m.playSeq++
	m.status = IconPlay + " Playing..."
	seq := m.playSeq
	return m, tea.Tick(playbackPreview, func(time.Time) tea.Msg {
		return playbackDoneMsg{seq: seq}
	})
}

func convertCmd(ctx context.Context, synth convert.Synthesizer, job workspace.Job) tea.Cmd {
	return func() tea.Msg {
		res, err := synth.Convert(ctx, job)
		return convertDoneMsg{jobID: job.ID, result: res, err: err}
	}
}

func (m *Model) setPage(p Page) tea.Cmd {
	m.page = p
	return m.syncFocus()
}

// syncFocus gives the textarea the cursor only while it is the focused field
func (m *Model) syncFocus() tea.Cmd {
	if m.page == PageTextToAudio && m.field == FieldText && !m.ws.Dialog().Open {
		return m.textarea.Focus()
	}
	m.textarea.Blur()
	return nil
}

func (m *Model) setError(err error) {
	m.err = err
	switch {
	case errors.Is(err, workspace.ErrEmptyText):
		m.status = "Enter some text before converting"
	case errors.Is(err, workspace.ErrConvertBusy):
		m.status = "A conversion is already running"
	case errors.Is(err, workspace.ErrPlaybackDisabled):
		m.status = "Convert the text before playing it"
	default:
		m.status = err.Error()
	}
	m.logger.Debug("action rejected", "error", err)
}

// ----------------------------------------------------------------------------
// View
// ----------------------------------------------------------------------------

func (m Model) mainWidth() int {
	return max(40, m.width-SidebarStyle.GetWidth()-8)
}

// View renders the UI
func (m Model) View() string {
	var main string
	switch {
	case m.ws.Dialog().Open:
		main = m.viewDialog()
	case m.page == PageTextToAudio:
		main = m.viewForm()
	case m.page == PageSettings:
		main = m.viewSettings()
	default:
		main = m.viewDashboard()
	}

	body := lipgloss.JoinHorizontal(lipgloss.Top,
		m.viewSidebar(),
		MainStyle.Width(m.mainWidth()).Render(main),
	)

	return lipgloss.JoinVertical(lipgloss.Left,
		WindowStyle.Render(body),
		m.viewStatus(),
		m.viewHelp(),
	)
}

func (m Model) viewSidebar() string {
	var b strings.Builder

	b.WriteString(RenderTrafficLights())
	b.WriteString("\n\n")
	b.WriteString(LogoStyle.Render("BF") + " " + AppNameStyle.Render("BookFab"))
	b.WriteString("\n")
	b.WriteString(AppVersionStyle.Render(version.Display()))
	b.WriteString("\n\n")

	for i, p := range []Page{PageDashboard, PageTextToAudio, PageSettings} {
		icon := IconMenu
		if p == PageDashboard {
			icon = IconDashboard
		}
		label := fmt.Sprintf("%s %s", icon, pageTitles[p])
		if p == m.page {
			b.WriteString(ActiveMenuItemStyle.Render(label))
		} else {
			b.WriteString(MenuItemStyle.Render(label))
		}
		b.WriteString(" " + HelpDescStyle.Render(fmt.Sprintf("F%d", i+1)))
		b.WriteString("\n")
	}

	return SidebarStyle.Height(max(12, m.height-6)).Render(b.String())
}

func (m Model) viewDashboard() string {
	var b strings.Builder
	b.WriteString(HeaderStyle.Render("Welcome to the workspace"))
	b.WriteString("\n")
	b.WriteString(SubHeaderStyle.Render("This is your BookFab text-to-speech workspace."))
	b.WriteString("\n\n")

	sel := m.ws.Selection()
	voiceName := sel.VoiceID
	if v, ok := m.ws.SelectedVoice(); ok {
		voiceName = v.Name
	}
	rows := []Setting{
		{Label: "Voices", Value: fmt.Sprintf("%d", len(m.ws.Catalog()))},
		{Label: "Language", Value: sel.Language},
		{Label: "Voice", Value: voiceName},
		{Label: "Conversion", Value: m.ws.ConvertState().String()},
	}
	b.WriteString(renderRows(rows))
	b.WriteString("\n")
	b.WriteString(RenderKeyHint("enter", "open Text to Audio"))
	return b.String()
}

func (m Model) viewSettings() string {
	var b strings.Builder
	b.WriteString(HeaderStyle.Render("Settings"))
	b.WriteString("\n")
	if len(m.settings) == 0 {
		b.WriteString(SubHeaderStyle.Render("Defaults in use."))
		return b.String()
	}
	b.WriteString(renderRows(m.settings))
	return b.String()
}

func renderRows(rows []Setting) string {
	var b strings.Builder
	for _, r := range rows {
		b.WriteString(LabelStyle.Render(r.Label) + ValueStyle.Render(r.Value) + "\n")
	}
	return b.String()
}

func (m Model) viewForm() string {
	var b strings.Builder
	params := m.ws.Parameters()
	sel := m.ws.Selection()

	b.WriteString(HeaderStyle.Render("Text to Audio"))
	b.WriteString("\n")

	b.WriteString(m.label(FieldText, "Text") + "\n")
	b.WriteString(m.textarea.View() + "\n\n")

	b.WriteString(m.row(FieldLanguage, "Language", renderChoice(sel.Language, m.field == FieldLanguage)))

	voiceLine := ValueStyle.Render("(none)")
	if v, ok := m.ws.SelectedVoice(); ok {
		voiceLine = ValueStyle.Bold(true).Render(v.Name) + " " + RenderGender(string(v.Gender)) +
			" " + HelpDescStyle.Render(v.Age+" · "+v.Language)
	}
	if m.field == FieldVoice {
		voiceLine += "  " + RenderKeyHint("enter", "change")
	}
	b.WriteString(m.row(FieldVoice, "Voice", voiceLine))

	b.WriteString(m.row(FieldExpressiveness, "Expressiveness",
		renderChoice(string(params.Expressiveness), m.field == FieldExpressiveness)))

	for _, f := range []FormField{FieldSilenceComma, FieldSilenceSentence, FieldSilenceParagraph} {
		kind := silenceFields[f]
		label := strings.ToUpper(string(kind[:1])) + string(kind[1:]) + " pause"
		b.WriteString(m.row(f, label, renderSlider(float64(params.Silence[kind]),
			workspace.SilenceMinMs, workspace.SilenceMaxMs, 20, "%.0f ms")))
	}

	b.WriteString(m.row(FieldSpeed, "Speed",
		renderSlider(params.Speed, workspace.SpeedMin, workspace.SpeedMax, 20, "%.2fx")))
	b.WriteString(m.row(FieldLoudness, "Loudness",
		renderChoice(string(params.Loudness), m.field == FieldLoudness)))

	b.WriteString("\n")
	b.WriteString(RenderButton("Convert", m.field == FieldConvert, m.ws.CanConvert()))
	b.WriteString("  ")
	b.WriteString(RenderButton(IconPlay+" Play", m.field == FieldPlay, m.ws.CanPlay()))
	if m.ws.ConvertState() == workspace.ConvertPending {
		b.WriteString("  " + m.spinner.View() + " Converting...")
	}

	return b.String()
}

func (m Model) label(f FormField, text string) string {
	if m.field == f {
		return FocusedLabelStyle.Render(text)
	}
	return LabelStyle.Render(text)
}

func (m Model) row(f FormField, label, value string) string {
	return m.label(f, label) + value + "\n"
}

func (m Model) viewStatus() string {
	status := m.status
	if status == "" {
		status = "Ready"
	}
	if m.err != nil {
		return StatusBarStyle.Render(StatusErrorStyle.Render(status))
	}
	if m.ws.ConvertState() == workspace.ConvertDone && !m.playing && m.status == "" {
		status = StatusOKStyle.Render("Converted")
	}
	return StatusBarStyle.Render(status)
}

func (m Model) viewHelp() string {
	var hints []string
	switch {
	case m.ws.Dialog().Open:
		hints = []string{
			RenderKeyHint("tab", "next filter"),
			RenderKeyHint("←/→", "change"),
			RenderKeyHint("enter", "select"),
			RenderKeyHint("ctrl+o", "OK"),
			RenderKeyHint("ctrl+r", "clear filters"),
			RenderKeyHint("esc", "cancel"),
		}
	case m.page == PageTextToAudio:
		hints = []string{
			RenderKeyHint("tab", "next field"),
			RenderKeyHint("←/→", "adjust"),
			RenderKeyHint("v", "voice"),
			RenderKeyHint("c", "convert"),
			RenderKeyHint("p", "play"),
			RenderKeyHint("ctrl+c", "quit"),
		}
	default:
		hints = []string{
			RenderKeyHint("F1-F3", "menu"),
			RenderKeyHint("q", "quit"),
		}
	}
	return HelpStyle.Render(strings.Join(hints, "  "))
}

// Run starts the TUI
func Run(ctx context.Context, cfg Config) error {
	p := tea.NewProgram(New(ctx, cfg), tea.WithAltScreen(), tea.WithContext(ctx))
	_, err := p.Run()
	if errors.Is(err, tea.ErrProgramKilled) && ctx.Err() != nil {
		return nil
	}
	return err
}
