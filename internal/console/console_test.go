package console

import (
	"bytes"
	"context"
	"io"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/robalobadob/wordle/apps/duel-client/internal/authoritytest"
	"github.com/robalobadob/wordle/apps/duel-client/internal/board"
	"github.com/robalobadob/wordle/apps/duel-client/internal/controller"
	"github.com/robalobadob/wordle/apps/duel-client/internal/game"
	"github.com/robalobadob/wordle/apps/duel-client/internal/remote"
)

func script() *authoritytest.Script {
	return &authoritytest.Script{
		Turns: []game.State{
			{
				Player: game.Participant{Board: []game.GuessRow{authoritytest.Row("crane", "hapaa")}},
				AI:     game.Participant{Board: []game.GuessRow{authoritytest.Row("slate", "ppaaa")}},
			},
			{
				Player:   game.Participant{Won: true, Target: "mango", Board: []game.GuessRow{authoritytest.Row("crane", "hapaa"), authoritytest.Row("mango", "hhhhh")}},
				AI:       game.Participant{Target: "pride", Board: []game.GuessRow{authoritytest.Row("slate", "ppaaa"), authoritytest.Row("bride", "ahhhh")}},
				GameOver: true,
			},
		},
		Reject: map[string]string{"zzzzz": "Word not in allowed list."},
	}
}

func run(t *testing.T, input string, autoStart bool) (string, *authoritytest.Server) {
	t.Helper()
	fake, ts := authoritytest.Start(t, script())
	var out bytes.Buffer
	s := New(controller.New(remote.New(ts.URL)), strings.NewReader(input), &out)
	require.NoError(t, s.Run(context.Background(), autoStart))
	return out.String(), fake
}

func TestPlayToWin(t *testing.T) {
	out, fake := run(t, "crane\nmango\n", true)

	assert.Equal(t, 1, fake.Hits("/new"))
	assert.Equal(t, []string{"crane", "mango"}, fake.Guesses())
	assert.Contains(t, out, "Your attempts: 0/6 | AI attempts: 0/6")
	assert.Contains(t, out, "[C]  r  (A)  n   e ")
	assert.Contains(t, out, "AI (hidden)")
	assert.Contains(t, out, `You win! You found "MANGO".`)
	// Revealed at the end.
	assert.Contains(t, out, " b  [R] [I] [D] [E]")
}

func TestOpponentMaskedWhileRunning(t *testing.T) {
	out, _ := run(t, "crane\n:quit\nmango\n", true)

	assert.Contains(t, out, " #   #   #   #   # ")
	assert.NotContains(t, out, "(S)")
	assert.NotContains(t, out, "You win!")
}

func TestErrorsArePrefixed(t *testing.T) {
	out, fake := run(t, "cra\n:new\nzzzzz\n", false)

	assert.Contains(t, out, "Type :new to start a game")
	assert.Contains(t, out, "! Enter a 5-letter guess.")
	assert.Contains(t, out, "! Word not in allowed list.")
	assert.Equal(t, []string{"zzzzz"}, fake.Guesses())
}

func TestGuessBeforeNewGame(t *testing.T) {
	out, fake := run(t, "crane\n", false)

	assert.Contains(t, out, "! Start a new game first.")
	assert.Zero(t, fake.Hits("/guess"))
}

func TestNewGameFailure(t *testing.T) {
	fake, ts := authoritytest.Start(t, script())
	fake.Override("/new", authoritytest.Response{Status: 503, Body: `{"error":"busy"}`})

	var out bytes.Buffer
	s := New(controller.New(remote.New(ts.URL)), strings.NewReader(":help\n"), &out)
	require.NoError(t, s.Run(context.Background(), true))

	assert.Contains(t, out.String(), "! Could not start a new game: busy")
	assert.Contains(t, out.String(), "Commands: :new")
}

func TestBoardsNotation(t *testing.T) {
	player, opponent := board.NewGrid(), board.NewGrid()
	rows := []game.GuessRow{authoritytest.Row("crane", "hpaaa")}
	board.Render(player, rows, true)
	board.Render(opponent, rows, true)

	lines := strings.Split(Boards(player, opponent), "\n")
	require.Len(t, lines, game.Rows+2)
	assert.True(t, strings.HasPrefix(lines[0], "You"))
	assert.True(t, strings.HasSuffix(lines[0], "AI"))
	played := "[C] (R)  a   n   e "
	empty := " _   _   _   _   _ "
	assert.Equal(t, played+"    "+played, lines[1])
	assert.Equal(t, empty+"    "+empty, lines[2])
}

func TestRunReturnsOnCancelWhileWaitingForInput(t *testing.T) {
	fake, ts := authoritytest.Start(t, script())
	pr, pw := io.Pipe()
	t.Cleanup(func() { _ = pw.Close() })

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() {
		done <- New(controller.New(remote.New(ts.URL)), pr, io.Discard).Run(ctx, false)
	}()
	cancel()

	select {
	case err := <-done:
		require.NoError(t, err)
	case <-time.After(2 * time.Second):
		t.Fatal("Run kept waiting for input after cancel")
	}
	assert.Zero(t, fake.Hits("/new"))
}
