package authoritytest

import (
	"strings"
	"sync"

	"github.com/robalobadob/wordle/apps/duel-client/internal/game"
)

// Script is a Referee that replays canned snapshots.
//
// Each accepted guess returns the next entry of Turns; once Turns runs out
// the current snapshot is returned unchanged. Guesses listed in Reject are
// refused with the mapped message.
type Script struct {
	Start  game.State
	Turns  []game.State
	Reject map[string]string

	mu   sync.Mutex
	next int
}

func (s *Script) NewGame() game.State {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.next = 0
	return s.Start
}

func (s *Script) Guess(current game.State, guess string) (game.State, string) {
	if msg, ok := s.Reject[strings.ToLower(guess)]; ok {
		return game.State{}, msg
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.next >= len(s.Turns) {
		return current, ""
	}
	st := s.Turns[s.next]
	s.next++
	return st, ""
}

// Row builds a guess row from a word and compact marks: 'h' hit,
// 'p' present, anything else absent.
func Row(guess, marks string) game.GuessRow {
	fb := make([]game.Mark, 0, len(marks))
	for _, m := range marks {
		switch m {
		case 'h':
			fb = append(fb, game.MarkHit)
		case 'p':
			fb = append(fb, game.MarkPresent)
		default:
			fb = append(fb, game.MarkAbsent)
		}
	}
	return game.GuessRow{Guess: guess, Feedback: fb}
}
