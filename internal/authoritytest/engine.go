// apps/duel-client/internal/authoritytest/engine.go
//
// Duel is a Referee that plays a real game: it scores the player's guess,
// lets a frequency-based AI answer with one guess of its own, and ends the
// game when either side solves its word or the player runs out of rows.
//
// Scoring is the classic two-pass algorithm, so repeated letters are only
// marked present as many times as they remain unmatched in the target.

package authoritytest

import (
	"strings"
	"sync"

	"github.com/samber/lo"

	"github.com/robalobadob/wordle/apps/duel-client/internal/game"
)

// Duel plays against fixed targets so tests stay deterministic. It tracks
// the AI's candidates for one game at a time.
type Duel struct {
	PlayerTarget string
	AITarget     string
	// Opener is the AI's first guess. Defaults to "crane".
	Opener string
	// Lexicon defaults to DefaultWords.
	Lexicon *Lexicon

	mu         sync.Mutex
	candidates []string
}

func (d *Duel) lexicon() *Lexicon {
	if d.Lexicon == nil {
		d.Lexicon = NewLexicon(DefaultWords)
	}
	return d.Lexicon
}

func (d *Duel) NewGame() game.State {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.candidates = append([]string(nil), d.lexicon().Words()...)
	return game.State{
		Player: game.Participant{Target: d.PlayerTarget, Board: []game.GuessRow{}},
		AI:     game.Participant{Target: d.AITarget, Board: []game.GuessRow{}},
	}
}

func (d *Duel) Guess(current game.State, guess string) (game.State, string) {
	d.mu.Lock()
	defer d.mu.Unlock()

	guess = strings.ToLower(strings.TrimSpace(guess))
	if !isAlpha(guess) || !d.lexicon().Allowed(guess) {
		return game.State{}, "Word not in allowed list."
	}

	next := current.Clone()
	marks := Score(next.Player.Target, guess)
	next.Player.Board = append(next.Player.Board, game.GuessRow{Guess: guess, Feedback: marks})
	if allHit(marks) {
		next.Player.Won = true
		next.GameOver = true
		return next, ""
	}

	aiGuess := d.pick(len(next.AI.Board) == 0)
	aiMarks := Score(next.AI.Target, aiGuess)
	next.AI.Board = append(next.AI.Board, game.GuessRow{Guess: aiGuess, Feedback: aiMarks})
	d.candidates = lo.Filter(d.candidates, func(w string, _ int) bool {
		return equalMarks(Score(w, aiGuess), aiMarks)
	})

	switch {
	case allHit(aiMarks):
		next.AI.Won = true
		next.GameOver = true
	case len(next.Player.Board) >= game.Rows:
		next.GameOver = true
	}
	return next, ""
}

// pick returns the opener on the first turn, then the allowed word whose
// distinct letters are most frequent among the remaining candidates.
// Ties go to a word that is still a candidate.
func (d *Duel) pick(first bool) string {
	if first {
		if d.Opener != "" {
			return d.Opener
		}
		return "crane"
	}

	freq := lo.CountValues([]rune(strings.Join(d.candidates, "")))
	score := func(w string) int {
		return lo.SumBy(lo.Uniq([]rune(w)), func(r rune) int { return freq[r] })
	}
	isCandidate := toSet(d.candidates)

	best, bestScore := "", -1
	for _, w := range d.lexicon().Words() {
		sc := score(w)
		_, cand := isCandidate[w]
		_, bestCand := isCandidate[best]
		if sc > bestScore || (sc == bestScore && cand && !bestCand) {
			best, bestScore = w, sc
		}
	}
	return best
}

// Score grades guess against answer.
//
// Pass 1 marks exact matches as hits and counts the unmatched answer
// letters. Pass 2 marks a remaining guess letter present while its count
// lasts, absent otherwise.
func Score(answer, guess string) []game.Mark {
	a, g := []rune(answer), []rune(guess)
	res := make([]game.Mark, len(g))
	counts := make(map[rune]int, len(a))

	for i := range g {
		if i < len(a) && g[i] == a[i] {
			res[i] = game.MarkHit
		} else if i < len(a) {
			counts[a[i]]++
		}
	}
	for i := range g {
		if res[i] == game.MarkHit {
			continue
		}
		if counts[g[i]] > 0 {
			res[i] = game.MarkPresent
			counts[g[i]]--
		} else {
			res[i] = game.MarkAbsent
		}
	}
	return res
}

func allHit(m []game.Mark) bool {
	return lo.EveryBy(m, func(x game.Mark) bool { return x == game.MarkHit })
}

func equalMarks(a, b []game.Mark) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
