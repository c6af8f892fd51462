package controller

import (
	"errors"

	"github.com/robalobadob/wordle/apps/duel-client/internal/remote"
)

var (
	// ErrBusy means another request is still in flight; nothing was sent.
	ErrBusy = errors.New("request already in flight")
	// ErrNoGame means no game has been started yet.
	ErrNoGame = errors.New("no game in progress")
	// ErrGameOver means the held snapshot is terminal.
	ErrGameOver = errors.New("game already finished")
)

// ValidationError is a guess refused locally for its length.
type ValidationError struct {
	Input string
}

func (e *ValidationError) Error() string { return "guess must be exactly 5 letters" }

// NewGameError wraps any failure of StartNewGame.
type NewGameError struct {
	Err error
}

func (e *NewGameError) Error() string { return "start new game: " + e.Err.Error() }

func (e *NewGameError) Unwrap() error { return e.Err }

// Message turns an operation error into the text shown to the player.
func Message(err error) string {
	var (
		verr *ValidationError
		nerr *NewGameError
		rej  *remote.RejectedError
		terr *remote.TransportError
	)
	switch {
	case err == nil:
		return ""
	case errors.As(err, &verr):
		return "Enter a 5-letter guess."
	case errors.Is(err, ErrBusy):
		return "Still waiting for the previous request."
	case errors.Is(err, ErrNoGame):
		return "Start a new game first."
	case errors.Is(err, ErrGameOver):
		return "Game already finished."
	case errors.As(err, &nerr):
		return "Could not start a new game: " + detail(nerr.Err)
	case errors.As(err, &rej):
		if rej.Message != "" {
			return rej.Message
		}
		return "Invalid guess"
	case errors.As(err, &terr):
		return "Network error: " + terr.Err.Error()
	}
	return err.Error()
}

func detail(err error) string {
	var (
		rej  *remote.RejectedError
		terr *remote.TransportError
	)
	switch {
	case errors.As(err, &rej) && rej.Message != "":
		return rej.Message
	case errors.As(err, &terr):
		return terr.Err.Error()
	}
	return err.Error()
}
