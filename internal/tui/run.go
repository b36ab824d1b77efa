package tui

import (
	"context"
	"errors"
	"fmt"

	"github.com/Veraticus/buybox-master/internal/engine"
	tea "github.com/charmbracelet/bubbletea"
)

// Run starts the live view and blocks until the user quits or ctx is canceled.
func Run(ctx context.Context, session *engine.Session, opts ...Option) error {
	if session == nil {
		return errors.New("session is required")
	}

	p := tea.NewProgram(New(session, opts...),
		tea.WithContext(ctx),
		tea.WithAltScreen(),
	)

	if _, err := p.Run(); err != nil {
		if errors.Is(err, tea.ErrProgramKilled) && ctx.Err() != nil {
			return ctx.Err()
		}
		return fmt.Errorf("TUI error: %w", err)
	}
	return nil
}
