// apps/duel-client/internal/authoritytest/server.go
//
// Scripted stand-in for the remote authority, for client tests.
// Responsibilities:
//   - Router + middleware (JSON content type, panic recovery, request IDs).
//   - POST /new and POST /guess with the authority's JSON contract.
//   - Cookie sessions so the client's cookie handling is exercised.
//   - Request counters per path and one-shot raw response overrides.
//
// Notes:
//   - It never scores guesses; a Referee decides every outcome.
//   - Start wraps the router in an httptest.Server and closes it on cleanup.

package authoritytest

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"github.com/robalobadob/wordle/apps/duel-client/internal/game"
)

// SessionCookie is the cookie carrying the session ID.
const SessionCookie = "duel_session"

// Referee decides the snapshots the fake hands out.
type Referee interface {
	// NewGame returns the snapshot for a fresh game.
	NewGame() game.State
	// Guess returns the next snapshot, or a non-empty rejection message.
	Guess(current game.State, guess string) (next game.State, reject string)
}

// Response is a canned raw reply used once instead of the normal handler.
type Response struct {
	Status int
	Body   string
}

// Server bundles router, session store and counters.
type Server struct {
	r       *chi.Mux
	referee Referee
	store   *sessions

	mu        sync.Mutex
	hits      map[string]int
	guesses   []string
	userAgent string
	overrides map[string][]Response
}

// New constructs a Server and registers routes.
func New(ref Referee) *Server {
	s := &Server{
		r:         chi.NewRouter(),
		referee:   ref,
		store:     newSessions(),
		hits:      make(map[string]int),
		overrides: make(map[string][]Response),
	}

	s.r.Use(chimw.RequestID)
	s.r.Use(chimw.Recoverer)
	s.r.Use(jsonContentType)
	s.r.Use(s.count)

	s.r.Post("/new", s.handleNewGame)
	s.r.Post("/guess", s.handleGuess)

	s.r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusNotFound, map[string]string{"error": "not_found"})
	})
	return s
}

// Start serves s on a loopback listener until the test ends.
func Start(t testing.TB, ref Referee) (*Server, *httptest.Server) {
	t.Helper()
	s := New(ref)
	ts := httptest.NewServer(s.r)
	t.Cleanup(ts.Close)
	return s, ts
}

// Hits reports how many requests reached path.
func (s *Server) Hits(path string) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.hits[path]
}

// Guesses lists the guess payloads received, in order.
func (s *Server) Guesses() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]string(nil), s.guesses...)
}

// UserAgent returns the User-Agent of the latest request.
func (s *Server) UserAgent() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.userAgent
}

// Override queues a raw response for the next request to path.
func (s *Server) Override(path string, resp Response) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.overrides[path] = append(s.overrides[path], resp)
}

// Sessions reports how many distinct sessions have a game.
func (s *Server) Sessions() int { return s.store.len() }

// ----------------------------- middleware ----------------------------------

func jsonContentType(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json; charset=utf-8")
		next.ServeHTTP(w, r)
	})
}

// count records the hit and serves a queued override if there is one.
func (s *Server) count(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		s.mu.Lock()
		s.hits[r.URL.Path]++
		s.userAgent = r.UserAgent()
		var override *Response
		if q := s.overrides[r.URL.Path]; len(q) > 0 {
			override = &q[0]
			s.overrides[r.URL.Path] = q[1:]
		}
		s.mu.Unlock()

		if override != nil {
			w.WriteHeader(override.Status)
			_, _ = w.Write([]byte(override.Body))
			return
		}
		next.ServeHTTP(w, r)
	})
}

// ------------------------------ GAME ---------------------------------------

type guessReq struct {
	Guess string `json:"guess"`
}

func (s *Server) handleNewGame(w http.ResponseWriter, r *http.Request) {
	id := s.ensureSessionID(w, r)
	st := s.referee.NewGame()
	s.store.save(id, st)
	log.Debug().Str("session", id).Msg("fake authority: new game")
	writeJSON(w, http.StatusOK, map[string]any{"success": true, "state": st})
}

func (s *Server) handleGuess(w http.ResponseWriter, r *http.Request) {
	var req guessReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "bad_json"})
		return
	}
	s.mu.Lock()
	s.guesses = append(s.guesses, req.Guess)
	s.mu.Unlock()

	guess := strings.ToLower(strings.TrimSpace(req.Guess))
	if len(guess) != game.Cols {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "Guess must be 5 letters."})
		return
	}

	id := s.ensureSessionID(w, r)
	cur, ok := s.store.get(id)
	if !ok {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "No game in session."})
		return
	}
	if cur.GameOver {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "Game already finished."})
		return
	}

	next, reject := s.referee.Guess(cur, guess)
	if reject != "" {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": reject})
		return
	}
	s.store.save(id, next)
	writeJSON(w, http.StatusOK, map[string]any{"result": "ok", "state": next})
}

// ensureSessionID returns the session cookie value or sets a new one.
func (s *Server) ensureSessionID(w http.ResponseWriter, r *http.Request) string {
	if c, err := r.Cookie(SessionCookie); err == nil && c.Value != "" {
		return c.Value
	}
	id := uuid.NewString()
	http.SetCookie(w, &http.Cookie{
		Name:     SessionCookie,
		Value:    id,
		Path:     "/",
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
	return id
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
