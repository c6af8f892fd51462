package controller

import (
	"fmt"

	"github.com/samber/lo"

	"github.com/robalobadob/wordle/apps/duel-client/internal/game"
)

// Status is the derived status line and whether guesses may be entered.
type Status struct {
	Text         string
	InputEnabled bool
}

// DeriveStatus is a pure function of the snapshot.
func DeriveStatus(s game.State) Status {
	if !s.GameOver {
		return Status{
			Text:         fmt.Sprintf("Your attempts: %d/%d | AI attempts: %d/%d", s.Player.Attempts(), game.Rows, s.AI.Attempts(), game.Rows),
			InputEnabled: true,
		}
	}

	var text string
	switch {
	case s.Player.Won && s.AI.Won:
		text = fmt.Sprintf("Both guessed in %d moves!", lo.Min([]int{s.Player.Attempts(), s.AI.Attempts()}))
	case s.Player.Won:
		text = fmt.Sprintf("You win! You found %q.", s.Player.Word())
	case s.AI.Won:
		text = fmt.Sprintf("AI wins! It found %q.", s.AI.Word())
	default:
		text = "Game over."
	}
	return Status{Text: text, InputEnabled: false}
}
