package tui

import (
	"time"

	"github.com/Veraticus/buybox-master/internal/tui/themes"
)

// Config holds TUI configuration.
type Config struct {
	Theme     themes.Theme
	Now       func() time.Time
	ExportDir string
	Source    string
	Width     int
	Height    int
}

// Option is a functional option for configuring the TUI.
type Option func(*Config)

// defaultConfig returns the default configuration.
func defaultConfig() Config {
	return Config{
		Theme:     themes.Default,
		Now:       time.Now,
		ExportDir: ".",
		Width:     120,
		Height:    30,
	}
}

// WithTheme sets the TUI theme.
func WithTheme(theme themes.Theme) Option {
	return func(c *Config) {
		c.Theme = theme
	}
}

// WithExportDir sets where CSV exports are written.
func WithExportDir(dir string) Option {
	return func(c *Config) {
		c.ExportDir = dir
	}
}

// WithSource names the file being viewed in the header.
func WithSource(source string) Option {
	return func(c *Config) {
		c.Source = source
	}
}

// WithClock overrides the time source used for export file names.
func WithClock(now func() time.Time) Option {
	return func(c *Config) {
		c.Now = now
	}
}

// WithSize sets the initial terminal dimensions.
func WithSize(width, height int) Option {
	return func(c *Config) {
		c.Width = width
		c.Height = height
	}
}
