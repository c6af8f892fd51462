// apps/duel-client/internal/board/board.go
//
// Board rendering for one participant's 6x5 grid.
// Responsibilities:
//   - Project a board's guess rows onto pre-existing cell slots.
//   - Record whether the panel is revealed or obscured.
//
// Notes:
//   - Rendering is always a full re-render: every slot is reset before the
//     rows are written, so no classification survives from a previous call.
//   - Rows are trusted to match game.Validate; a mismatched row is the
//     authority's contract violation and is not handled here.
//   - Surface is the only dependency, so any UI binding (Bubble Tea panels,
//     the line-mode printer, tests) can be driven by the same Render.

package board

import (
	"strings"

	"github.com/robalobadob/wordle/apps/duel-client/internal/game"
)

// Visibility is the presentation mode of a panel.
type Visibility int

const (
	Obscured Visibility = iota
	Revealed
)

func (v Visibility) String() string {
	if v == Revealed {
		return "revealed"
	}
	return "obscured"
}

// Surface is a fixed set of addressable cell slots plus a visibility toggle.
type Surface interface {
	// Reset empties the slot and removes any classification.
	Reset(row, col int)
	// Write places an upper-cased letter with exactly one classification.
	Write(row, col int, letter rune, mark game.Mark)
	// SetVisibility switches the panel between obscured and revealed.
	SetVisibility(v Visibility)
}

// Render projects rows onto s. With reveal false the cells are still
// written; only the panel mode changes, so revealing needs no re-fetch.
func Render(s Surface, rows []game.GuessRow, reveal bool) {
	for r := 0; r < game.Rows; r++ {
		for c := 0; c < game.Cols; c++ {
			s.Reset(r, c)
		}
	}

	for r, row := range rows {
		letters := []rune(strings.ToUpper(row.Guess))
		for c := 0; c < game.Cols; c++ {
			s.Write(r, c, letters[c], row.Feedback[c])
		}
	}

	if reveal {
		s.SetVisibility(Revealed)
	} else {
		s.SetVisibility(Obscured)
	}
}
