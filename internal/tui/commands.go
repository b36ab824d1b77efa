package tui

import (
	"log/slog"

	"github.com/Veraticus/buybox-master/internal/export"
	"github.com/Veraticus/buybox-master/internal/model"
	tea "github.com/charmbracelet/bubbletea"
)

// exportCmd writes the currently visible listings to a CSV file.
func exportCmd(dir string, listings []model.Listing, cfg Config) tea.Cmd {
	now := cfg.Now()
	return func() tea.Msg {
		path, err := export.WriteFile(dir, listings, now)
		if err != nil {
			slog.Debug("Export failed", "error", err)
			return exportDoneMsg{err: err}
		}
		slog.Debug("Exported listings", "path", path, "rows", len(listings))
		return exportDoneMsg{path: path}
	}
}
