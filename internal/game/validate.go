package game

import (
	"errors"
	"fmt"
	"unicode/utf8"

	"github.com/samber/lo"
)

// ErrMalformed is wrapped by every Validate failure.
var ErrMalformed = errors.New("malformed snapshot")

// Validate checks the shape obligations the authority owes the client:
// at most Rows guesses per board, Cols letters per guess and one valid mark
// per letter. It says nothing about whether the feedback is correct.
func (s State) Validate() error {
	if err := s.Player.validate("player"); err != nil {
		return err
	}
	return s.AI.validate("ai")
}

func (p Participant) validate(side string) error {
	if len(p.Board) > Rows {
		return fmt.Errorf("%w: %s board has %d rows", ErrMalformed, side, len(p.Board))
	}
	for i, row := range p.Board {
		if n := utf8.RuneCountInString(row.Guess); n != Cols {
			return fmt.Errorf("%w: %s row %d guess has %d letters", ErrMalformed, side, i, n)
		}
		if len(row.Feedback) != Cols {
			return fmt.Errorf("%w: %s row %d has %d marks", ErrMalformed, side, i, len(row.Feedback))
		}
		if !lo.EveryBy(row.Feedback, Mark.Valid) {
			return fmt.Errorf("%w: %s row %d has an unknown mark", ErrMalformed, side, i)
		}
	}
	return nil
}
