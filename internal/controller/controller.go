// apps/duel-client/internal/controller/controller.go
//
// Game controller for one duel.
// Responsibilities:
//   - Own the single current snapshot and replace it wholesale on every
//     successful transition (no merging, no optimistic updates).
//   - Validate guesses locally before anything is sent.
//   - Allow at most one request in flight at a time.
//   - Drive the board renderer and derive the status line.
//
// State machine: NotStarted -> InProgress -> Over, and Over -> InProgress
// only through StartNewGame. Failed or rejected calls leave the held
// snapshot untouched.

package controller

import (
	"context"
	"errors"
	"strings"
	"sync"
	"sync/atomic"
	"unicode/utf8"

	"github.com/rs/zerolog/log"

	"github.com/robalobadob/wordle/apps/duel-client/internal/board"
	"github.com/robalobadob/wordle/apps/duel-client/internal/game"
	"github.com/robalobadob/wordle/apps/duel-client/internal/remote"
)

// Authority is the remote owner of game state.
type Authority interface {
	NewGame(ctx context.Context) (*game.State, error)
	Guess(ctx context.Context, word string) (*game.State, error)
}

// Phase is the controller's view of the game lifecycle.
type Phase int

const (
	NotStarted Phase = iota
	InProgress
	Over
)

func (p Phase) String() string {
	switch p {
	case InProgress:
		return "in_progress"
	case Over:
		return "over"
	}
	return "not_started"
}

// Controller mediates every transition of the held snapshot.
type Controller struct {
	remote Authority

	mu    sync.RWMutex
	state *game.State // nil until the first new game

	inflight atomic.Bool
}

// New returns a controller with no game.
func New(remote Authority) *Controller {
	return &Controller{remote: remote}
}

// StartNewGame replaces the held snapshot with a fresh game.
func (c *Controller) StartNewGame(ctx context.Context) error {
	if !c.inflight.CompareAndSwap(false, true) {
		return ErrBusy
	}
	defer c.inflight.Store(false)

	st, err := c.remote.NewGame(ctx)
	if err != nil {
		log.Error().Err(err).Msg("new game failed")
		return &NewGameError{Err: err}
	}
	c.replace(st)
	log.Info().Str("phase", c.Phase().String()).Msg("new game started")
	return nil
}

// SubmitGuess validates raw and sends it as the next guess. Only a
// successful response changes the held snapshot.
func (c *Controller) SubmitGuess(ctx context.Context, raw string) error {
	guess := strings.TrimSpace(raw)
	if utf8.RuneCountInString(guess) != game.Cols {
		return &ValidationError{Input: raw}
	}
	switch c.Phase() {
	case NotStarted:
		return ErrNoGame
	case Over:
		return ErrGameOver
	}

	if !c.inflight.CompareAndSwap(false, true) {
		return ErrBusy
	}
	defer c.inflight.Store(false)

	guess = strings.ToLower(guess)
	st, err := c.remote.Guess(ctx, guess)
	if err != nil {
		var rej *remote.RejectedError
		if errors.As(err, &rej) {
			log.Info().Err(err).Str("guess", guess).Msg("guess rejected")
		} else {
			log.Warn().Err(err).Str("guess", guess).Msg("guess failed")
		}
		return err
	}
	c.replace(st)
	log.Debug().
		Str("guess", guess).
		Int("player", st.Player.Attempts()).
		Int("ai", st.AI.Attempts()).
		Bool("gameOver", st.GameOver).
		Msg("guess accepted")
	return nil
}

// Pending reports whether a request is in flight.
func (c *Controller) Pending() bool { return c.inflight.Load() }

// Phase derives the lifecycle phase from the held snapshot.
func (c *Controller) Phase() Phase {
	c.mu.RLock()
	defer c.mu.RUnlock()
	switch {
	case c.state == nil:
		return NotStarted
	case c.state.GameOver:
		return Over
	}
	return InProgress
}

// Snapshot returns a deep copy of the held snapshot, if any.
func (c *Controller) Snapshot() (game.State, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	if c.state == nil {
		return game.State{}, false
	}
	return c.state.Clone(), true
}

// Render redraws both boards from the held snapshot. Both calls share the
// same reveal flag: the snapshot's game_over.
func (c *Controller) Render(player, opponent board.Surface) {
	st, _ := c.Snapshot()
	board.Render(player, st.Player.Board, st.GameOver)
	board.Render(opponent, st.AI.Board, st.GameOver)
}

// Status derives the status line for the held snapshot.
func (c *Controller) Status() Status {
	st, ok := c.Snapshot()
	if !ok {
		return Status{Text: "No game in progress.", InputEnabled: false}
	}
	return DeriveStatus(st)
}

func (c *Controller) replace(st *game.State) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.state = st
}
