// apps/duel-client/internal/console/console.go
//
// Line-mode front end for terminals without full-screen support and for
// piped input.
//
// Commands:
//   :new   start a new game
//   :help  list commands
//   :quit  exit
// Any other line is submitted as a guess.
//
// Cell notation: [C] hit, (C) present, " C " absent, " _ " empty,
// " # " a filled cell on an obscured opponent board.

package console

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/rs/zerolog/log"

	"github.com/robalobadob/wordle/apps/duel-client/internal/board"
	"github.com/robalobadob/wordle/apps/duel-client/internal/controller"
	"github.com/robalobadob/wordle/apps/duel-client/internal/game"
)

// Session reads commands from in and prints boards to out.
type Session struct {
	ctrl *controller.Controller
	in   io.Reader
	out  io.Writer

	player   *board.Grid
	opponent *board.Grid
}

func New(ctrl *controller.Controller, in io.Reader, out io.Writer) *Session {
	return &Session{
		ctrl:     ctrl,
		in:       in,
		out:      out,
		player:   board.NewGrid(),
		opponent: board.NewGrid(),
	}
}

// Run processes lines until :quit, end of input or ctx is canceled.
// Input is read on its own goroutine so cancellation is seen while waiting
// for a line. Requests run on the calling goroutine, so no two overlap.
func (s *Session) Run(ctx context.Context, autoStart bool) error {
	if autoStart {
		s.newGame(ctx)
	} else {
		s.printf("Type :new to start a game, :help for commands.\n")
	}

	stop := make(chan struct{})
	defer close(stop)
	lines, readErr := s.readLines(stop)

	for {
		s.printf("> ")
		var line string
		select {
		case <-ctx.Done():
			s.printf("\n")
			return nil
		case l, ok := <-lines:
			if !ok {
				s.printf("\n")
				if err := <-readErr; err != nil {
					return fmt.Errorf("read input: %w", err)
				}
				return nil
			}
			line = l
		}

		switch strings.TrimSpace(strings.ToLower(line)) {
		case ":quit", ":q":
			return nil
		case ":new", ":n":
			s.newGame(ctx)
		case ":help", ":h", "?":
			s.printf("Commands: :new  :help  :quit. Anything else is a guess.\n")
		default:
			s.guess(ctx, line)
		}
	}
}

// readLines scans s.in until EOF or stop is closed. lines is closed after
// the scan error, if any, is sent on errc.
func (s *Session) readLines(stop <-chan struct{}) (<-chan string, <-chan error) {
	lines := make(chan string)
	errc := make(chan error, 1)
	go func() {
		defer close(lines)
		sc := bufio.NewScanner(s.in)
		for sc.Scan() {
			select {
			case lines <- sc.Text():
			case <-stop:
				return
			}
		}
		errc <- sc.Err()
	}()
	return lines, errc
}

func (s *Session) newGame(ctx context.Context) {
	if err := s.ctrl.StartNewGame(ctx); err != nil {
		s.printf("! %s\n", controller.Message(err))
		return
	}
	s.show()
}

func (s *Session) guess(ctx context.Context, raw string) {
	if err := s.ctrl.SubmitGuess(ctx, raw); err != nil {
		log.Debug().Err(err).Msg("console guess refused")
		s.printf("! %s\n", controller.Message(err))
		return
	}
	s.show()
}

func (s *Session) show() {
	s.ctrl.Render(s.player, s.opponent)
	s.printf("%s", Boards(s.player, s.opponent))
	s.printf("%s\n", s.ctrl.Status().Text)
}

func (s *Session) printf(format string, args ...any) {
	_, _ = fmt.Fprintf(s.out, format, args...)
}

// Boards lays the two grids side by side. The opponent grid is masked
// while obscured.
func Boards(player, opponent *board.Grid) string {
	var b strings.Builder
	const gap = "    "
	width := game.Cols*3 + game.Cols - 1

	fmt.Fprintf(&b, "%-*s%s%s\n", width, "You", gap, opponentTitle(opponent))
	for r := 0; r < game.Rows; r++ {
		b.WriteString(rowText(player, r, false))
		b.WriteString(gap)
		b.WriteString(rowText(opponent, r, opponent.Visibility() == board.Obscured))
		b.WriteString("\n")
	}
	return b.String()
}

func opponentTitle(g *board.Grid) string {
	if g.Visibility() == board.Obscured {
		return "AI (hidden)"
	}
	return "AI"
}

func rowText(g *board.Grid, r int, hidden bool) string {
	cells := make([]string, game.Cols)
	for c := range cells {
		cells[c] = cellText(g.Cell(r, c), hidden)
	}
	return strings.Join(cells, " ")
}

func cellText(c board.Cell, hidden bool) string {
	switch {
	case !c.Filled():
		return " _ "
	case hidden:
		return " # "
	case c.Mark == game.MarkHit:
		return "[" + string(c.Letter) + "]"
	case c.Mark == game.MarkPresent:
		return "(" + string(c.Letter) + ")"
	}
	return " " + strings.ToLower(string(c.Letter)) + " "
}
