// apps/duel-client/internal/tui/model.go
//
// Bubble Tea model binding the game controller to the terminal.
// Responsibilities:
//   - Run new-game and guess requests as commands, one at a time.
//   - Re-render both boards and the status line after every accepted
//     snapshot; leave them untouched after a failure.
//   - Keep the guess input to letters only, upper-cased, at most 5 long.

package tui

import (
	"context"
	"strings"
	"unicode"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/robalobadob/wordle/apps/duel-client/internal/board"
	"github.com/robalobadob/wordle/apps/duel-client/internal/controller"
	"github.com/robalobadob/wordle/apps/duel-client/internal/game"
)

// Options configures the model.
type Options struct {
	// AutoStart requests a new game from Init.
	AutoStart bool
	// Server is shown in the header.
	Server string
}

type newGameDoneMsg struct{ err error }

type guessDoneMsg struct{ err error }

// Model is the Bubble Tea model for one duel.
type Model struct {
	ctx  context.Context
	ctrl *controller.Controller
	opts Options

	input textinput.Model
	help  help.Model
	keys  keyMap

	player   *board.Grid
	opponent *board.Grid
	status   controller.Status
	notice   string

	// pending is set while a request runs; submit and new-game keys are
	// ignored until its result arrives.
	pending  bool
	width    int
	quitting bool
}

// NewModel builds a model around ctrl.
func NewModel(ctx context.Context, ctrl *controller.Controller, opts Options) Model {
	ti := textinput.New()
	ti.Placeholder = "GUESS"
	ti.Prompt = "> "
	ti.Width = game.Cols + 1
	ti.Focus()

	m := Model{
		ctx:      ctx,
		ctrl:     ctrl,
		opts:     opts,
		input:    ti,
		help:     help.New(),
		keys:     defaultKeys(),
		player:   board.NewGrid(),
		opponent: board.NewGrid(),
	}
	m.refresh()
	m.pending = opts.AutoStart
	return m
}

func (m Model) Init() tea.Cmd {
	if m.opts.AutoStart {
		return tea.Batch(textinput.Blink, m.newGameCmd())
	}
	return textinput.Blink
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.help.Width = msg.Width
		return m, nil

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			m.quitting = true
			return m, tea.Quit
		case key.Matches(msg, m.keys.NewGame):
			if m.pending {
				return m, nil
			}
			m.pending = true
			m.notice = ""
			return m, m.newGameCmd()
		case key.Matches(msg, m.keys.Submit):
			if m.pending || !m.status.InputEnabled {
				return m, nil
			}
			m.pending = true
			m.notice = ""
			return m, m.guessCmd(m.input.Value())
		}

	case newGameDoneMsg:
		m.pending = false
		if msg.err != nil {
			m.notice = controller.Message(msg.err)
			return m, nil
		}
		return m, m.applySnapshot()

	case guessDoneMsg:
		m.pending = false
		if msg.err != nil {
			m.notice = controller.Message(msg.err)
			return m, nil
		}
		return m, m.applySnapshot()
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	if v := Sanitize(m.input.Value()); v != m.input.Value() {
		m.input.SetValue(v)
	}
	return m, cmd
}

func (m Model) newGameCmd() tea.Cmd {
	ctx, ctrl := m.ctx, m.ctrl
	return func() tea.Msg {
		return newGameDoneMsg{err: ctrl.StartNewGame(ctx)}
	}
}

func (m Model) guessCmd(raw string) tea.Cmd {
	ctx, ctrl := m.ctx, m.ctrl
	return func() tea.Msg {
		return guessDoneMsg{err: ctrl.SubmitGuess(ctx, raw)}
	}
}

// applySnapshot redraws from the controller and resets the input.
func (m *Model) applySnapshot() tea.Cmd {
	m.refresh()
	m.input.Reset()
	if !m.status.InputEnabled {
		m.input.Blur()
		return nil
	}
	return m.input.Focus()
}

func (m *Model) refresh() {
	m.ctrl.Render(m.player, m.opponent)
	m.status = m.ctrl.Status()
}

// Sanitize keeps ASCII letters only, upper-cases them and truncates to 5.
func Sanitize(s string) string {
	var b strings.Builder
	n := 0
	for _, r := range s {
		if n == game.Cols {
			break
		}
		if !(r >= 'a' && r <= 'z' || r >= 'A' && r <= 'Z') {
			continue
		}
		b.WriteRune(unicode.ToUpper(r))
		n++
	}
	return b.String()
}
