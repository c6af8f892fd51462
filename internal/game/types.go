// apps/duel-client/internal/game/types.go
//
// Wire types for the duel snapshot issued by the remote authority.
// Defines:
//   - Mark: per-letter feedback of a guess (hit/present/absent).
//   - GuessRow: one submitted guess and its feedback.
//   - Participant: one side's board, outcome and (after the game) target.
//   - State: the full snapshot replaced on every transition.
//
// The client never derives marks or outcomes; these types only carry what
// the authority sent.

package game

import (
	"encoding/json"
	"fmt"
	"strings"
)

// Board dimensions shared by both participants.
const (
	Rows = 6 // maximum guesses per participant
	Cols = 5 // letters per guess
)

// Mark represents the evaluation result for a single letter in a guess.
// Possible values:
//   - "hit":     letter is correct and in the correct position.
//   - "present": letter exists in the target but in a different position.
//   - "absent":  letter does not exist in the target at all.
type Mark string

const (
	MarkHit     Mark = "hit"
	MarkPresent Mark = "present"
	MarkAbsent  Mark = "absent"
)

// Valid reports whether m is one of the three feedback tags.
func (m Mark) Valid() bool {
	switch m {
	case MarkHit, MarkPresent, MarkAbsent:
		return true
	}
	return false
}

// UnmarshalJSON accepts the canonical tags plus the legacy "correct" and
// "miss" spellings still emitted by older authorities.
func (m *Mark) UnmarshalJSON(b []byte) error {
	var s string
	if err := json.Unmarshal(b, &s); err != nil {
		return err
	}
	switch strings.ToLower(s) {
	case "hit", "correct":
		*m = MarkHit
	case "present":
		*m = MarkPresent
	case "absent", "miss":
		*m = MarkAbsent
	default:
		return fmt.Errorf("unknown feedback mark %q", s)
	}
	return nil
}

// GuessRow is one guess on a board with its positional feedback.
type GuessRow struct {
	Guess    string `json:"guess"`    // 5 letters, any case
	Feedback []Mark `json:"feedback"` // aligned with Guess
}

// Participant holds one side of the duel.
type Participant struct {
	Board  []GuessRow `json:"board"`  // append-only within a game, at most Rows entries
	Won    bool       `json:"won"`    // meaningful only once the game is over
	Target string     `json:"target"` // only to be displayed once the game is over
}

// Attempts is the number of guesses used so far.
func (p Participant) Attempts() int { return len(p.Board) }

// Word returns the upper-cased target.
func (p Participant) Word() string { return strings.ToUpper(p.Target) }

// State is the immutable snapshot returned by /new and /guess.
type State struct {
	Player   Participant `json:"player"`
	AI       Participant `json:"ai"`
	GameOver bool        `json:"game_over"`
}

// Clone returns a deep copy; the result shares no slices with s.
func (s State) Clone() State {
	s.Player = s.Player.clone()
	s.AI = s.AI.clone()
	return s
}

func (p Participant) clone() Participant {
	if p.Board == nil {
		return p
	}
	rows := make([]GuessRow, len(p.Board))
	for i, row := range p.Board {
		row.Feedback = append([]Mark(nil), row.Feedback...)
		rows[i] = row
	}
	p.Board = rows
	return p
}
