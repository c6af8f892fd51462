package tui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/robalobadob/wordle/apps/duel-client/internal/game"
)

var (
	// Tile colors follow the classic board: green hit, amber present, gray absent
	HitColor     = lipgloss.Color("#10B981")
	PresentColor = lipgloss.Color("#F59E0B")
	AbsentColor  = lipgloss.Color("#4B5563")
	EmptyColor   = lipgloss.Color("#374151")
	TextColor    = lipgloss.Color("#F9FAFB")
	MutedColor   = lipgloss.Color("#9CA3AF")
	ErrorColor   = lipgloss.Color("#F87171")
	PrimaryColor = lipgloss.Color("#A78BFA")
	BorderColor  = lipgloss.Color("#6B7280")

	tile = lipgloss.NewStyle().
		Width(3).
		Align(lipgloss.Center).
		Bold(true).
		Foreground(TextColor)

	hitTile      = tile.Background(HitColor)
	presentTile  = tile.Background(PresentColor)
	absentTile   = tile.Background(AbsentColor)
	emptyTile    = tile.Foreground(EmptyColor)
	obscuredTile = tile.Foreground(MutedColor).Background(EmptyColor)

	Title = lipgloss.NewStyle().
		Bold(true).
		Foreground(PrimaryColor).
		MarginBottom(1)

	Panel = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(BorderColor).
		Padding(0, 1)

	PanelTitle = lipgloss.NewStyle().
			Bold(true).
			Foreground(TextColor)

	PanelHint = lipgloss.NewStyle().
			Foreground(MutedColor).
			Italic(true)

	StatusLine = lipgloss.NewStyle().
			Foreground(TextColor).
			MarginTop(1)

	Notice = lipgloss.NewStyle().
		Foreground(ErrorColor)

	Muted = lipgloss.NewStyle().Foreground(MutedColor)
)

func tileStyle(m game.Mark) lipgloss.Style {
	switch m {
	case game.MarkHit:
		return hitTile
	case game.MarkPresent:
		return presentTile
	case game.MarkAbsent:
		return absentTile
	}
	return emptyTile
}
