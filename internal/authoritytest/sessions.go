// apps/duel-client/internal/authoritytest/sessions.go
//
// In-memory session store for the fake authority.
// Characteristics:
//   - Stores one game.State per session ID.
//   - Concurrency-safe via RWMutex (concurrent reads allowed, writes exclusive).
//   - State is lost when the test server closes.

package authoritytest

import (
	"sync"

	"github.com/robalobadob/wordle/apps/duel-client/internal/game"
)

type sessions struct {
	mu    sync.RWMutex          // guards games map
	games map[string]game.State // keyed by session cookie
}

func newSessions() *sessions {
	return &sessions{games: make(map[string]game.State)}
}

// save adds or replaces the session's snapshot.
func (m *sessions) save(id string, st game.State) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.games[id] = st
}

func (m *sessions) get(id string) (game.State, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	st, ok := m.games[id]
	return st, ok
}

func (m *sessions) len() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.games)
}
