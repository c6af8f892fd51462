package tui

import (
	"context"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/robalobadob/wordle/apps/duel-client/internal/authoritytest"
	"github.com/robalobadob/wordle/apps/duel-client/internal/board"
	"github.com/robalobadob/wordle/apps/duel-client/internal/controller"
	"github.com/robalobadob/wordle/apps/duel-client/internal/game"
	"github.com/robalobadob/wordle/apps/duel-client/internal/remote"
)

func newTestModel(t *testing.T, script *authoritytest.Script) (Model, *authoritytest.Server) {
	t.Helper()
	fake, ts := authoritytest.Start(t, script)
	ctrl := controller.New(remote.New(ts.URL))
	return NewModel(context.Background(), ctrl, Options{Server: ts.URL}), fake
}

// step feeds msg to m and, when the result is one of our request
// commands, runs it and feeds its message back.
func step(t *testing.T, m Model, msg tea.Msg) Model {
	t.Helper()
	next, cmd := m.Update(msg)
	m = next.(Model)
	if cmd == nil {
		return m
	}
	switch res := cmd().(type) {
	case newGameDoneMsg, guessDoneMsg:
		next, _ = m.Update(res)
		m = next.(Model)
	}
	return m
}

func typeWord(t *testing.T, m Model, s string) Model {
	t.Helper()
	next, _ := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)})
	return next.(Model)
}

var ctrlN = tea.KeyMsg{Type: tea.KeyCtrlN}
var enter = tea.KeyMsg{Type: tea.KeyEnter}

func duelScript() *authoritytest.Script {
	return &authoritytest.Script{
		Turns: []game.State{
			{
				Player: game.Participant{Board: []game.GuessRow{authoritytest.Row("crane", "hapaa")}},
				AI:     game.Participant{Board: []game.GuessRow{authoritytest.Row("slate", "ppaaa"), authoritytest.Row("crane", "aaaaa")}},
			},
			{
				Player:   game.Participant{Won: true, Target: "mango", Board: []game.GuessRow{authoritytest.Row("crane", "hapaa"), authoritytest.Row("mango", "hhhhh")}},
				AI:       game.Participant{Target: "pride", Board: []game.GuessRow{authoritytest.Row("slate", "ppaaa"), authoritytest.Row("crane", "aaaaa")}},
				GameOver: true,
			},
		},
		Reject: map[string]string{"zzzzz": "Word not in allowed list."},
	}
}

func TestSanitize(t *testing.T) {
	assert.Equal(t, "CRANE", Sanitize("crane"))
	assert.Equal(t, "CRANE", Sanitize("c-r4a n!e"))
	assert.Equal(t, "ABCDE", Sanitize("abcdefgh"))
	assert.Equal(t, "", Sanitize("1234 ü"))
}

func TestTypingIsSanitized(t *testing.T) {
	m, _ := newTestModel(t, duelScript())
	m = step(t, m, ctrlN)

	m = typeWord(t, m, "cr4nes")
	assert.Equal(t, "CRNES", m.input.Value())
}

func TestFullDuel(t *testing.T) {
	m, fake := newTestModel(t, duelScript())
	assert.False(t, m.status.InputEnabled)

	m = step(t, m, ctrlN)
	assert.Equal(t, "Your attempts: 0/6 | AI attempts: 0/6", m.status.Text)
	assert.True(t, m.status.InputEnabled)

	m = typeWord(t, m, "crane")
	m = step(t, m, enter)
	assert.Empty(t, m.notice)
	assert.Empty(t, m.input.Value(), "input clears after an accepted guess")
	assert.Equal(t, 1, m.player.FilledRows())
	assert.Equal(t, board.Cell{Letter: 'A', Mark: game.MarkPresent}, m.player.Cell(0, 2))
	assert.Equal(t, board.Obscured, m.opponent.Visibility())
	assert.Equal(t, 2, m.opponent.FilledRows())
	assert.NotContains(t, m.View(), "SLATE")

	m = step(t, m, ctrlN)
	assert.Empty(t, m.notice)
	assert.Equal(t, 0, m.player.FilledRows())
	assert.Equal(t, 0, m.opponent.FilledRows())

	// The script restarts with the new game; replay up to the win.
	m = typeWord(t, m, "crane")
	m = step(t, m, enter)
	m = typeWord(t, m, "mango")
	m = step(t, m, enter)

	assert.Equal(t, `You win! You found "MANGO".`, m.status.Text)
	assert.False(t, m.status.InputEnabled)
	assert.Equal(t, board.Revealed, m.player.Visibility())
	assert.Equal(t, board.Revealed, m.opponent.Visibility())
	assert.Equal(t, 2, fake.Hits("/new"))
}

func TestShortGuessShowsValidationWithoutRequest(t *testing.T) {
	m, fake := newTestModel(t, duelScript())
	m = step(t, m, ctrlN)

	m = typeWord(t, m, "cra")
	m = step(t, m, enter)

	assert.Equal(t, "Enter a 5-letter guess.", m.notice)
	assert.Equal(t, "CRA", m.input.Value(), "input is kept for correction")
	assert.Zero(t, fake.Hits("/guess"))
}

func TestRejectedGuessKeepsBoards(t *testing.T) {
	m, _ := newTestModel(t, duelScript())
	m = step(t, m, ctrlN)
	m = typeWord(t, m, "crane")
	m = step(t, m, enter)
	before := *m.player

	m = typeWord(t, m, "zzzzz")
	m = step(t, m, enter)

	assert.Equal(t, "Word not in allowed list.", m.notice)
	assert.Equal(t, before, *m.player)
	assert.Equal(t, "Your attempts: 1/6 | AI attempts: 2/6", m.status.Text)
}

func TestPendingIgnoresKeys(t *testing.T) {
	m, fake := newTestModel(t, duelScript())
	m = step(t, m, ctrlN)
	m = typeWord(t, m, "crane")

	next, cmd := m.Update(enter)
	m = next.(Model)
	require.NotNil(t, cmd)
	assert.True(t, m.pending)

	next, again := m.Update(enter)
	assert.Nil(t, again)
	_, newGame := next.(Model).Update(ctrlN)
	assert.Nil(t, newGame)
	assert.Zero(t, fake.Hits("/guess"), "nothing sent until the command runs")
	assert.Contains(t, m.View(), "Waiting for the server")
}

func TestNewGameFailureIsReported(t *testing.T) {
	m, fake := newTestModel(t, duelScript())
	fake.Override("/new", authoritytest.Response{Status: 500, Body: `{"error":"down for maintenance"}`})

	m = step(t, m, ctrlN)

	assert.Equal(t, "Could not start a new game: down for maintenance", m.notice)
	assert.Equal(t, "No game in progress.", m.status.Text)
}

func TestAutoStartInit(t *testing.T) {
	fake, ts := authoritytest.Start(t, duelScript())
	m := NewModel(context.Background(), controller.New(remote.New(ts.URL)), Options{AutoStart: true})
	assert.True(t, m.pending)
	assert.NotNil(t, m.Init())
	assert.Zero(t, fake.Hits("/new"))
}

func TestRenderPanelHidesOpponentUntilRevealed(t *testing.T) {
	g := board.NewGrid()
	board.Render(g, []game.GuessRow{authoritytest.Row("slate", "hhhhh")}, false)

	hidden := RenderPanel("AI", g, true)
	assert.NotContains(t, hidden, "S")
	assert.Contains(t, hidden, "(hidden)")

	own := RenderPanel("You", g, false)
	assert.Contains(t, own, "S")

	board.Render(g, []game.GuessRow{authoritytest.Row("slate", "hhhhh")}, true)
	shown := RenderPanel("AI", g, true)
	for _, l := range "SLATE" {
		assert.True(t, strings.ContainsRune(shown, l))
	}
}

func TestQuit(t *testing.T) {
	m, _ := newTestModel(t, duelScript())
	next, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEsc})
	require.NotNil(t, cmd)
	assert.Equal(t, tea.Quit(), cmd())
	assert.Empty(t, next.(Model).View())
}
