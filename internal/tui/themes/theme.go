// Package themes holds the color schemes used by the live view.
package themes

import (
	"github.com/Veraticus/buybox-master/internal/model"
	"github.com/charmbracelet/lipgloss"
)

// Theme defines the visual style for the TUI.
type Theme struct {
	Title         lipgloss.Style
	Subtitle      lipgloss.Style
	Normal        lipgloss.Style
	Bold          lipgloss.Style
	Muted         lipgloss.Style
	Selected      lipgloss.Style
	Header        lipgloss.Style
	StatCard      lipgloss.Style
	StatusBar     lipgloss.Style
	StatusWon     lipgloss.Style
	StatusLost    lipgloss.Style
	StatusBlocked lipgloss.Style
	Error         lipgloss.Style
	Primary       lipgloss.Color
	Border        lipgloss.Color
	Success       lipgloss.Color
	Warning       lipgloss.Color
	Danger        lipgloss.Color
}

// Default is the default theme.
var Default = Theme{
	Primary: lipgloss.Color("#FF9900"),
	Border:  lipgloss.Color("#404040"),
	Success: lipgloss.Color("#10b981"),
	Warning: lipgloss.Color("#f59e0b"),
	Danger:  lipgloss.Color("#ef4444"),

	Title: lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("#FF9900")),
	Subtitle: lipgloss.NewStyle().
		Foreground(lipgloss.Color("#a3a3a3")),
	Normal: lipgloss.NewStyle().
		Foreground(lipgloss.Color("#fafafa")),
	Bold: lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("#fafafa")),
	Muted: lipgloss.NewStyle().
		Foreground(lipgloss.Color("#737373")),
	Selected: lipgloss.NewStyle().
		Background(lipgloss.Color("#FF9900")).
		Foreground(lipgloss.Color("#1a1a1a")).
		Bold(true),
	Header: lipgloss.NewStyle().
		Bold(true).
		BorderStyle(lipgloss.NormalBorder()).
		BorderBottom(true).
		BorderForeground(lipgloss.Color("#404040")),
	StatCard: lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("#404040")).
		Padding(0, 2),
	StatusBar: lipgloss.NewStyle().
		Foreground(lipgloss.Color("#a3a3a3")).
		PaddingLeft(1),

	StatusWon: lipgloss.NewStyle().
		Foreground(lipgloss.Color("#10b981")).
		Bold(true),
	StatusLost: lipgloss.NewStyle().
		Foreground(lipgloss.Color("#ef4444")).
		Bold(true),
	StatusBlocked: lipgloss.NewStyle().
		Foreground(lipgloss.Color("#f59e0b")).
		Bold(true),
	Error: lipgloss.NewStyle().
		Foreground(lipgloss.Color("#ef4444")),
}

// Status returns the style for a buy box status.
func (t Theme) Status(status model.BuyBoxStatus) lipgloss.Style {
	switch status {
	case model.StatusWon:
		return t.StatusWon
	case model.StatusLost:
		return t.StatusLost
	case model.StatusSuppressed:
		return t.StatusBlocked
	}
	return t.Muted
}
