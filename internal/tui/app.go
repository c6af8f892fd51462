package tui

import (
	"context"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/rs/zerolog/log"

	"github.com/robalobadob/wordle/apps/duel-client/internal/controller"
)

// Run starts the full-screen UI and blocks until the player quits or ctx
// is canceled.
func Run(ctx context.Context, ctrl *controller.Controller, opts Options) error {
	p := tea.NewProgram(
		NewModel(ctx, ctrl, opts),
		tea.WithAltScreen(),
		tea.WithContext(ctx),
	)
	log.Info().Str("server", opts.Server).Msg("tui started")
	if _, err := p.Run(); err != nil && ctx.Err() == nil {
		return fmt.Errorf("run tui: %w", err)
	}
	return nil
}
