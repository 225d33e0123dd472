package tui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/msto63/bookfab/internal/selection"
	"github.com/msto63/bookfab/internal/voice"
)

// DialogFocus represents the focusable areas of the voice dialog
type DialogFocus int

const (
	FocusSearch DialogFocus = iota
	FocusLanguage
	FocusGender
	FocusAge
	FocusTags
	FocusCards
	FocusOK
	dialogFocusCount
)

// genderOptions are the choices of the gender filter; empty means any
var genderOptions = []string{"", string(voice.GenderMale), string(voice.GenderFemale)}

// openDialog starts a selection session seeded from the workspace
func (m *Model) openDialog() tea.Cmd {
	m.ws.OpenDialog()
	m.textarea.Blur()
	m.search.SetValue("")
	m.tagCursor = 0
	m.cardCursor = 0

	d := m.ws.Dialog()
	for i, v := range d.Visible() {
		if v.ID == d.Highlighted {
			m.cardCursor = i
			break
		}
	}
	return m.setDialogFocus(FocusSearch)
}

func (m *Model) setDialogFocus(f DialogFocus) tea.Cmd {
	m.dialogFocus = (f + dialogFocusCount) % dialogFocusCount
	if m.dialogFocus == FocusSearch {
		return m.search.Focus()
	}
	m.search.Blur()
	return nil
}

// apply routes a dialog event through the workspace and reacts to the outcome
func (m *Model) apply(ev selection.Event) tea.Cmd {
	out := m.ws.Dispatch(ev)
	m.clampCursors()

	if !out.Closed {
		return nil
	}

	m.search.Blur()
	m.err = nil
	if out.Commit != nil {
		name := out.Commit.VoiceID
		if v, ok := m.ws.SelectedVoice(); ok {
			name = v.Name
		}
		m.status = fmt.Sprintf("%s Voice set to %s (%s)", IconCheck, name, out.Commit.Language)
	} else {
		m.status = "Voice selection cancelled"
	}
	return m.syncFocus()
}

func (m *Model) clampCursors() {
	d := m.ws.Dialog()
	if n := len(d.Visible()); m.cardCursor >= n {
		m.cardCursor = max(0, n-1)
	}
	if n := len(d.TagOptions()); m.tagCursor >= n {
		m.tagCursor = max(0, n-1)
	}
}

// handleDialogKey maps keys to selection events while the dialog is open
func (m Model) handleDialogKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	d := m.ws.Dialog()
	key := msg.String()

	switch key {
	case "esc":
		cmd := m.apply(selection.Dismissed{})
		return m, cmd
	case "ctrl+o":
		cmd := m.apply(selection.Confirmed{})
		return m, cmd
	case "ctrl+r":
		m.search.SetValue("")
		cmd := m.apply(selection.FiltersCleared{})
		return m, cmd
	case "tab":
		cmd := m.setDialogFocus(m.dialogFocus + 1)
		return m, cmd
	case "shift+tab":
		cmd := m.setDialogFocus(m.dialogFocus - 1)
		return m, cmd
	}

	switch m.dialogFocus {
	case FocusSearch:
		var cmd tea.Cmd
		before := m.search.Value()
		m.search, cmd = m.search.Update(msg)
		if q := m.search.Value(); q != before {
			applyCmd := m.apply(selection.QueryChanged{Query: q})
			return m, tea.Batch(cmd, applyCmd)
		}
		return m, cmd

	case FocusLanguage:
		if delta := arrowDelta(key); delta != 0 {
			options := append([]string{""}, d.Languages...)
			cmd := m.apply(selection.LanguageChanged{Language: cycleOption(options, d.Criteria.Language, delta)})
			return m, cmd
		}

	case FocusGender:
		if delta := arrowDelta(key); delta != 0 {
			g := cycleOption(genderOptions, string(d.Criteria.Gender), delta)
			cmd := m.apply(selection.GenderChanged{Gender: voice.Gender(g)})
			return m, cmd
		}

	case FocusAge:
		if delta := arrowDelta(key); delta != 0 {
			options := append([]string{""}, d.AgeOptions()...)
			cmd := m.apply(selection.AgeChanged{Age: cycleOption(options, d.Criteria.Age, delta)})
			return m, cmd
		}

	case FocusTags:
		tags := d.TagOptions()
		if len(tags) == 0 {
			return m, nil
		}
		switch key {
		case "left", "h":
			m.tagCursor = (m.tagCursor + len(tags) - 1) % len(tags)
		case "right", "l":
			m.tagCursor = (m.tagCursor + 1) % len(tags)
		case " ", "space", "enter":
			cmd := m.apply(selection.TagToggled{Tag: tags[m.tagCursor]})
			return m, cmd
		}

	case FocusCards:
		visible := d.Visible()
		if len(visible) == 0 {
			return m, nil
		}
		switch key {
		case "up", "k":
			m.cardCursor = max(0, m.cardCursor-1)
		case "down", "j":
			m.cardCursor = min(len(visible)-1, m.cardCursor+1)
		case "home", "g":
			m.cardCursor = 0
		case "end", "G":
			m.cardCursor = len(visible) - 1
		case " ", "space", "enter":
			cmd := m.apply(selection.VoiceSelected{ID: visible[m.cardCursor].ID})
			return m, cmd
		}

	case FocusOK:
		if key == "enter" || key == " " || key == "space" {
			cmd := m.apply(selection.Confirmed{})
			return m, cmd
		}
	}

	return m, nil
}

func arrowDelta(key string) int {
	switch key {
	case "left", "h":
		return -1
	case "right", "l":
		return 1
	}
	return 0
}

// cycleOption returns the option delta positions away from cur, wrapping
// around. An unknown cur starts from the first option.
func cycleOption(options []string, cur string, delta int) string {
	if len(options) == 0 {
		return cur
	}
	idx := 0
	for i, o := range options {
		if o == cur {
			idx = i
			break
		}
	}
	n := len(options)
	return options[((idx+delta)%n+n)%n]
}

// ----------------------------------------------------------------------------
// View
// ----------------------------------------------------------------------------

func (m Model) viewDialog() string {
	d := m.ws.Dialog()

	title := HeaderStyle.Render("Select Voice")
	panels := lipgloss.JoinHorizontal(lipgloss.Top, m.viewFilters(d), m.viewCards(d))
	ok := RenderButton("OK", m.dialogFocus == FocusOK, true)

	return DialogStyle.Render(lipgloss.JoinVertical(lipgloss.Left, title, panels, "", ok))
}

func (m Model) dialogLabel(f DialogFocus, text string) string {
	if m.dialogFocus == f {
		return FocusedLabelStyle.Width(10).Render(text)
	}
	return LabelStyle.Width(10).Render(text)
}

func (m Model) viewFilters(d selection.Dialog) string {
	var b strings.Builder

	b.WriteString(m.dialogLabel(FocusSearch, "Search") + "\n")
	b.WriteString(m.search.View() + "\n\n")
	b.WriteString(m.dialogLabel(FocusLanguage, "Language") +
		renderChoice(d.Criteria.Language, m.dialogFocus == FocusLanguage) + "\n")
	b.WriteString(m.dialogLabel(FocusGender, "Gender") +
		renderChoice(string(d.Criteria.Gender), m.dialogFocus == FocusGender) + "\n")
	b.WriteString(m.dialogLabel(FocusAge, "Age") +
		renderChoice(d.Criteria.Age, m.dialogFocus == FocusAge) + "\n\n")

	b.WriteString(m.dialogLabel(FocusTags, "Tags") + "\n")
	tags := d.TagOptions()
	line := make([]string, 0, 3)
	for i, t := range tags {
		chip := RenderTag(t, d.Criteria.HasTag(t))
		if m.dialogFocus == FocusTags && i == m.tagCursor {
			chip = HelpKeyStyle.Render("›") + chip
		} else {
			chip = " " + chip
		}
		line = append(line, chip)
		if len(line) == 3 || i == len(tags)-1 {
			b.WriteString(strings.Join(line, " ") + "\n")
			line = line[:0]
		}
	}

	return FilterPanelStyle.Render(b.String())
}

func (m Model) viewCards(d selection.Dialog) string {
	visible := d.Visible()
	if len(visible) == 0 {
		return EmptyStateStyle.Render("No voices found.")
	}

	// Each card takes six lines including its border.
	capacity := max(1, (m.height-14)/6)
	start := 0
	if m.cardCursor >= capacity {
		start = m.cardCursor - capacity + 1
	}
	end := min(len(visible), start+capacity)

	width := max(24, m.mainWidth()-FilterPanelStyle.GetWidth()-18)
	cards := make([]string, 0, end-start+1)
	for i := start; i < end; i++ {
		cards = append(cards, renderCard(visible[i], width,
			visible[i].ID == d.Highlighted,
			m.dialogFocus == FocusCards && i == m.cardCursor))
	}
	cards = append(cards, HelpDescStyle.Render(fmt.Sprintf("%d of %d voices", len(visible), len(d.Catalog))))

	return lipgloss.NewStyle().PaddingLeft(1).Render(lipgloss.JoinVertical(lipgloss.Left, cards...))
}

func renderCard(v voice.Voice, width int, highlighted, cursor bool) string {
	title := AppNameStyle.Render(v.Name) + " " + RenderGender(string(v.Gender))
	if highlighted {
		title += " " + StatusOKStyle.Render(IconCheck)
	}

	chips := make([]string, 0, len(v.Tags))
	for _, t := range v.Tags {
		chips = append(chips, RenderTag(t, false))
	}

	content := strings.Join([]string{
		title,
		HelpDescStyle.Render(v.Age + " · " + v.Language),
		strings.Join(chips, " "),
		AvatarStyle.Render(truncate(voice.AvatarURL(v), width-4)),
	}, "\n")

	style := CardStyle
	switch {
	case cursor:
		style = CardCursorStyle
	case highlighted:
		style = CardHighlightedStyle
	}
	return style.Width(width).Render(content)
}

// truncate shortens s to n runes, marking the cut with an ellipsis
func truncate(s string, n int) string {
	r := []rune(s)
	if n < 1 || len(r) <= n {
		return s
	}
	return string(r[:n-1]) + "…"
}
