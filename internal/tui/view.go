package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/samber/lo"

	"github.com/robalobadob/wordle/apps/duel-client/internal/board"
	"github.com/robalobadob/wordle/apps/duel-client/internal/game"
)

func (m Model) View() string {
	if m.quitting {
		return ""
	}

	var b strings.Builder
	header := "Wordle Duel"
	if m.opts.Server != "" {
		header += Muted.Render("  " + m.opts.Server)
	}
	b.WriteString(Title.Render(header))
	b.WriteString("\n")

	panels := lipgloss.JoinHorizontal(lipgloss.Top,
		RenderPanel("You", m.player, false),
		"  ",
		RenderPanel("AI", m.opponent, true),
	)
	b.WriteString(panels)
	b.WriteString("\n")

	b.WriteString(StatusLine.Render(m.status.Text))
	b.WriteString("\n\n")

	switch {
	case m.pending:
		b.WriteString(Muted.Render("Waiting for the server..."))
	case m.status.InputEnabled:
		b.WriteString(m.input.View())
	default:
		b.WriteString(Muted.Render("Input disabled. Press ctrl+n for a new game."))
	}
	b.WriteString("\n")

	if m.notice != "" {
		b.WriteString(Notice.Render(m.notice))
	}
	b.WriteString("\n\n")
	b.WriteString(m.help.View(m.keys))
	return b.String()
}

// RenderPanel draws one grid. Concealable panels hide letters and marks
// of filled cells while the grid is obscured.
func RenderPanel(title string, g *board.Grid, concealable bool) string {
	hidden := concealable && g.Visibility() == board.Obscured

	heading := PanelTitle.Render(title)
	if hidden {
		heading += " " + PanelHint.Render("(hidden)")
	}

	rows := lo.Times(game.Rows, func(r int) string {
		cells := g.Row(r)
		tiles := lo.Map(cells[:], func(c board.Cell, _ int) string {
			return renderCell(c, hidden)
		})
		return strings.Join(tiles, " ")
	})

	return Panel.Render(heading + "\n\n" + strings.Join(rows, "\n\n"))
}

func renderCell(c board.Cell, hidden bool) string {
	switch {
	case !c.Filled():
		return emptyTile.Render("·")
	case hidden:
		return obscuredTile.Render("■")
	}
	return tileStyle(c.Mark).Render(string(c.Letter))
}
