// Package cli renders buybox output for plain terminals using lipgloss.
package cli

import (
	"github.com/Veraticus/buybox-master/internal/model"
	"github.com/charmbracelet/lipgloss"
)

// Palette.
var (
	PrimaryColor = lipgloss.Color("#FF9900") // marketplace orange
	SuccessColor = lipgloss.Color("#2ECC71")
	WarningColor = lipgloss.Color("#F1C40F")
	ErrorColor   = lipgloss.Color("#E74C3C")
	InfoColor    = lipgloss.Color("#5DADE2")
	SubtleColor  = lipgloss.Color("#666666")
	BorderColor  = lipgloss.Color("#333333")
)

// Text styles. Won, suppressed and lost listings share the success, warning
// and error styles.
var (
	TitleStyle   = lipgloss.NewStyle().Bold(true).Foreground(PrimaryColor).MarginBottom(1)
	SuccessStyle = lipgloss.NewStyle().Foreground(SuccessColor)
	WarningStyle = lipgloss.NewStyle().Foreground(WarningColor)
	ErrorStyle   = lipgloss.NewStyle().Foreground(ErrorColor)
	InfoStyle    = lipgloss.NewStyle().Foreground(InfoColor)
	SubtleStyle  = lipgloss.NewStyle().Foreground(SubtleColor)
	PromptStyle  = lipgloss.NewStyle().Bold(true).Foreground(PrimaryColor)

	BoxStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(BorderColor).
			Padding(1, 2)

	TableHeaderStyle = lipgloss.NewStyle().Bold(true).Foreground(PrimaryColor).Padding(0, 1)
	TableCellStyle   = lipgloss.NewStyle().Padding(0, 1)
)

// Icons.
const (
	SuccessIcon = "✓"
	ErrorIcon   = "✗"
	WarningIcon = "⚠️"
	InfoIcon    = "ℹ️"
	BoxIcon     = "📦"
	ChartIcon   = "📊"
	TrophyIcon  = "🏆"
)

// StatusStyle returns the style used to render a buy box status.
func StatusStyle(status model.BuyBoxStatus) lipgloss.Style {
	switch status {
	case model.StatusWon:
		return SuccessStyle
	case model.StatusLost:
		return ErrorStyle
	case model.StatusSuppressed:
		return WarningStyle
	}
	return SubtleStyle
}

// FormatStatus renders a status in its color.
func FormatStatus(status model.BuyBoxStatus) string {
	return StatusStyle(status).Render(string(status))
}

// FormatSuccess prefixes message with a check mark.
func FormatSuccess(message string) string {
	return SuccessStyle.Render(SuccessIcon + " " + message)
}

// FormatError prefixes message with a cross.
func FormatError(message string) string {
	return ErrorStyle.Render(ErrorIcon + " " + message)
}

// FormatWarning prefixes message with a warning sign.
func FormatWarning(message string) string {
	return WarningStyle.Render(WarningIcon + " " + message)
}

// FormatInfo prefixes message with an info sign.
func FormatInfo(message string) string {
	return InfoStyle.Render(InfoIcon + " " + message)
}

// FormatTitle renders a section title.
func FormatTitle(title string) string {
	return TitleStyle.Render(BoxIcon + " " + title)
}

// FormatPrompt renders a question awaiting input.
func FormatPrompt(prompt string) string {
	return PromptStyle.Render(prompt + " → ")
}

// RenderBox draws content under title inside a rounded border.
func RenderBox(title, content string) string {
	heading := TitleStyle.UnsetMargins().Render(title)
	return BoxStyle.Render(lipgloss.JoinVertical(lipgloss.Left, heading, content))
}
