// ============================================================================
// BookFab - Text-to-Speech Workspace
// ============================================================================
//
// Package:     tui
// Description: Styles for the desktop shell, workspace form and voice dialog
// Author:      Mike Stoffels
// Created:     2026-10-18
// License:     MIT
// ============================================================================

package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Color Palette
var (
	colorPrimary   = lipgloss.Color("#3B82F6") // Blue
	colorSecondary = lipgloss.Color("#6366F1") // Indigo
	colorSuccess   = lipgloss.Color("#10B981") // Emerald
	colorAccent    = lipgloss.Color("#F59E0B") // Amber
	colorError     = lipgloss.Color("#EF4444") // Red
	colorMuted     = lipgloss.Color("#6B7280") // Gray
	colorDimmed    = lipgloss.Color("#374151") // Dark Gray
	colorFemale    = lipgloss.Color("#EC4899") // Pink
	colorText      = lipgloss.Color("#F9FAFB")
	colorBgPanel   = lipgloss.Color("#1E293B")
	colorBgSelect  = lipgloss.Color("#1E3A8A")

	colorDotRed    = lipgloss.Color("#EF4444")
	colorDotYellow = lipgloss.Color("#FACC15")
	colorDotGreen  = lipgloss.Color("#22C55E")
)

// Window / shell styles
var (
	WindowStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(colorDimmed)

	SidebarStyle = lipgloss.NewStyle().
			Width(26).
			Padding(1, 2).
			BorderStyle(lipgloss.NormalBorder()).
			BorderRight(true).
			BorderForeground(colorDimmed)

	MainStyle = lipgloss.NewStyle().
			Padding(1, 3)

	LogoStyle = lipgloss.NewStyle().
			Foreground(colorText).
			Background(colorSecondary).
			Bold(true).
			Padding(0, 1)

	AppNameStyle = lipgloss.NewStyle().
			Foreground(colorText).
			Bold(true)

	AppVersionStyle = lipgloss.NewStyle().
			Foreground(colorMuted)

	MenuItemStyle = lipgloss.NewStyle().
			Foreground(colorText).
			Padding(0, 1)

	ActiveMenuItemStyle = lipgloss.NewStyle().
				Foreground(colorText).
				Background(colorBgSelect).
				Bold(true).
				Padding(0, 1)
)

// Heading styles
var (
	HeaderStyle = lipgloss.NewStyle().
			Foreground(colorText).
			Bold(true).
			MarginBottom(1)

	SubHeaderStyle = lipgloss.NewStyle().
			Foreground(colorMuted).
			Italic(true)
)

// Form styles
var (
	LabelStyle = lipgloss.NewStyle().
			Foreground(colorMuted).
			Width(18)

	FocusedLabelStyle = LabelStyle.
				Foreground(colorPrimary).
				Bold(true)

	ValueStyle = lipgloss.NewStyle().
			Foreground(colorText)

	SliderTrackStyle = lipgloss.NewStyle().
				Foreground(colorPrimary)

	SliderValueStyle = lipgloss.NewStyle().
				Foreground(colorAccent).
				Bold(true)

	ButtonStyle = lipgloss.NewStyle().
			Foreground(colorText).
			Background(colorDimmed).
			Padding(0, 2)

	ButtonFocusedStyle = lipgloss.NewStyle().
				Foreground(colorText).
				Background(colorPrimary).
				Bold(true).
				Padding(0, 2)

	ButtonDisabledStyle = lipgloss.NewStyle().
				Foreground(colorMuted).
				Background(colorBgPanel).
				Padding(0, 2)
)

// Dialog styles
var (
	DialogStyle = lipgloss.NewStyle().
			Border(lipgloss.DoubleBorder()).
			BorderForeground(colorPrimary).
			Padding(0, 1)

	FilterPanelStyle = lipgloss.NewStyle().
				Width(30).
				Padding(1, 1).
				BorderStyle(lipgloss.NormalBorder()).
				BorderRight(true).
				BorderForeground(colorDimmed)

	CardStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(colorDimmed).
			Padding(0, 1)

	CardHighlightedStyle = CardStyle.
				BorderForeground(colorPrimary)

	CardCursorStyle = CardStyle.
			BorderForeground(colorAccent)

	TagStyle = lipgloss.NewStyle().
			Foreground(colorText).
			Background(colorDimmed).
			Padding(0, 1)

	TagActiveStyle = lipgloss.NewStyle().
			Foreground(colorText).
			Background(colorPrimary).
			Padding(0, 1)

	EmptyStateStyle = lipgloss.NewStyle().
			Foreground(colorMuted).
			Italic(true).
			Padding(2, 4)

	AvatarStyle = lipgloss.NewStyle().
			Foreground(colorMuted).
			Faint(true)
)

// Status / help styles
var (
	StatusBarStyle = lipgloss.NewStyle().
			Foreground(colorText).
			Padding(0, 1)

	StatusOKStyle = lipgloss.NewStyle().
			Foreground(colorSuccess).
			Bold(true)

	StatusErrorStyle = lipgloss.NewStyle().
				Foreground(colorError)

	SpinnerStyle = lipgloss.NewStyle().
			Foreground(colorPrimary)

	HelpStyle = lipgloss.NewStyle().
			Foreground(colorMuted).
			MarginTop(1)

	HelpKeyStyle = lipgloss.NewStyle().
			Foreground(colorPrimary).
			Bold(true)

	HelpDescStyle = lipgloss.NewStyle().
			Foreground(colorMuted)
)

// Icons
const (
	IconDot       = "●"
	IconMale      = "♂"
	IconFemale    = "♀"
	IconCheck     = "✓"
	IconPlay      = "▶"
	IconDashboard = "▦"
	IconMenu      = "≡"
)

// RenderKeyHint renders a keyboard shortcut hint
func RenderKeyHint(key, description string) string {
	return HelpKeyStyle.Render(key) + " " + HelpDescStyle.Render(description)
}

// RenderTrafficLights renders the three window buttons
func RenderTrafficLights() string {
	return lipgloss.NewStyle().Foreground(colorDotRed).Render(IconDot) + " " +
		lipgloss.NewStyle().Foreground(colorDotYellow).Render(IconDot) + " " +
		lipgloss.NewStyle().Foreground(colorDotGreen).Render(IconDot)
}

// RenderGender renders the gender symbol of a voice card
func RenderGender(gender string) string {
	if gender == "Male" {
		return lipgloss.NewStyle().Foreground(colorPrimary).Render(IconMale)
	}
	return lipgloss.NewStyle().Foreground(colorFemale).Render(IconFemale)
}

// RenderTag renders a tag chip
func RenderTag(tag string, active bool) string {
	if active {
		return TagActiveStyle.Render(tag)
	}
	return TagStyle.Render(tag)
}

// RenderButton renders a form button in one of its three states
func RenderButton(label string, focused, enabled bool) string {
	switch {
	case !enabled:
		return ButtonDisabledStyle.Render(label)
	case focused:
		return ButtonFocusedStyle.Render(label)
	default:
		return ButtonStyle.Render(label)
	}
}

// renderSlider draws a horizontal slider track with the formatted value
func renderSlider(value, min, max float64, width int, format string) string {
	ratio := (value - min) / (max - min)
	filled := int(ratio * float64(width))
	if filled < 0 {
		filled = 0
	}
	if filled > width {
		filled = width
	}

	track := strings.Repeat("=", filled) + "o" + strings.Repeat("-", width-filled)
	return SliderTrackStyle.Render("["+track+"]") + " " + SliderValueStyle.Render(fmt.Sprintf(format, value))
}

// renderChoice draws an enum selector with the current value between arrows
func renderChoice(value string, focused bool) string {
	if value == "" {
		value = "Any"
	}
	if focused {
		return HelpKeyStyle.Render("‹ ") + ValueStyle.Bold(true).Render(value) + HelpKeyStyle.Render(" ›")
	}
	return ValueStyle.Render(value)
}
