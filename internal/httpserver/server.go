// internal/httpserver/server.go
//
// HTTP server wiring for the hangman backend.
// Responsibilities:
//   - Router + middleware (JSON, CORS, timeouts, panic recovery, request IDs).
//   - Public endpoints: "/", "/health", "/debug/words".
//   - Game endpoints under /api: state, start, guess, hint, reset.
//   - Anonymous session cookie handling; the cookie value is the session
//     store key and the only identity the server knows.
//
// Notes:
//   - CORS is origin-aware and credentials-enabled (so the cookie works).
//   - A command is handled load → engine → save within one request, so a
//     session's state never interleaves across its own commands.

package httpserver

import (
	"encoding/json"
	"errors"
	"net/http"
	"os"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"github.com/animalhangman/go-server/internal/game"
	"github.com/animalhangman/go-server/internal/store"
	"github.com/animalhangman/go-server/internal/words"
)

// Server bundles router, session store, and the round engine.
type Server struct {
	r      *chi.Mux
	store  store.Store
	engine *game.Engine
}

// New constructs a Server, installs middleware, and registers routes.
func New(st store.Store, eng *game.Engine) *Server {
	s := &Server{r: chi.NewRouter(), store: st, engine: eng}

	// --- middleware ---
	s.r.Use(chimw.RequestID)                 // add X-Request-ID
	s.r.Use(chimw.RealIP)                    // set RemoteAddr from X-Forwarded-For etc.
	s.r.Use(chimw.Recoverer)                 // recover from panics
	s.r.Use(chimw.Timeout(15 * time.Second)) // bound handler time (covers lookup calls)
	s.r.Use(jsonContentType)                 // default JSON responses
	s.r.Use(corsFromEnv)                     // credentials-friendly CORS

	// --- diagnostics ---
	s.r.Get("/", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte(`{"service":"hangman-go","endpoints":["/health","GET /api/state","POST /api/start","POST /api/guess","POST /api/hint","POST /api/reset"]}`))
	})
	s.r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte(`{"ok":true}`))
	})

	// Debug: word bank size
	s.r.Get("/debug/words", func(w http.ResponseWriter, r *http.Request) {
		_ = json.NewEncoder(w).Encode(map[string]int{"words": words.Count()})
	})

	// Game endpoints
	s.r.Route("/api", func(r chi.Router) {
		r.Get("/state", s.handleState)
		r.Post("/start", s.handleStart)
		r.Post("/guess", s.handleGuess)
		r.Post("/hint", s.handleHint)
		r.Post("/reset", s.handleReset)
	})

	// JSON 404 for easier debugging
	s.r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, `{"error":"not_found","path":"`+r.URL.Path+`"}`, http.StatusNotFound)
	})

	return s
}

// Start begins serving HTTP on addr.
func (s *Server) Start(addr string) error { return http.ListenAndServe(addr, s.r) }

// Router exposes the internal router (useful for tests).
func (s *Server) Router() chi.Router { return s.r }

// ----------------------------- middleware ----------------------------------

// jsonContentType sets a default JSON Content-Type header on all responses.
func jsonContentType(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json; charset=utf-8")
		next.ServeHTTP(w, r)
	})
}

// corsFromEnv enables credentialed CORS for a single origin.
// Uses CLIENT_ORIGIN env var; defaults to http://localhost:5173.
func corsFromEnv(next http.Handler) http.Handler {
	origin := os.Getenv("CLIENT_ORIGIN")
	if origin == "" {
		origin = "http://localhost:5173"
	}
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Vary", "Origin")
		w.Header().Set("Access-Control-Allow-Origin", origin)
		w.Header().Set("Access-Control-Allow-Credentials", "true")
		w.Header().Set("Access-Control-Allow-Methods", "GET,POST,OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization")
		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusNoContent)
			return
		}
		next.ServeHTTP(w, r)
	})
}

// ------------------------------ sessions -----------------------------------

const sessionCookieName = "hangman_session"

// ensureSessionID returns an existing session cookie or sets a new one.
// The value is opaque to everything below the HTTP layer.
func (s *Server) ensureSessionID(w http.ResponseWriter, r *http.Request) string {
	if c, err := r.Cookie(sessionCookieName); err == nil && c.Value != "" {
		return c.Value
	}
	id := uuid.NewString()
	http.SetCookie(w, &http.Cookie{
		Name:     sessionCookieName,
		Value:    id,
		Path:     "/",
		HttpOnly: true,
		Secure:   os.Getenv("NODE_ENV") == "production",
		SameSite: func() http.SameSite {
			if os.Getenv("NODE_ENV") == "production" {
				return http.SameSiteNoneMode
			}
			return http.SameSiteLaxMode
		}(),
		Expires: time.Now().Add(180 * 24 * time.Hour),
	})
	return id
}

// ------------------------------- handlers ----------------------------------

// handleState returns the session's current projection,
// or {"status":"no_game"} when no round is active.
func (s *Server) handleState(w http.ResponseWriter, r *http.Request) {
	sid := s.ensureSessionID(w, r)
	rd, err := s.store.Load(r.Context(), sid)
	if err != nil {
		_ = json.NewEncoder(w).Encode(map[string]string{"status": "no_game"})
		return
	}
	_ = json.NewEncoder(w).Encode(rd.Public())
}

// handleStart begins a fresh game at stage 1 with full life,
// replacing any round the session already had.
func (s *Server) handleStart(w http.ResponseWriter, r *http.Request) {
	sid := s.ensureSessionID(w, r)
	rd := s.engine.StartRound(r.Context(), 1, game.StartLife)
	if err := s.store.Save(r.Context(), sid, rd); err != nil {
		log.Error().Err(err).Msg("save round")
		http.Error(w, `{"error":"save_failed"}`, http.StatusInternalServerError)
		return
	}
	_ = json.NewEncoder(w).Encode(rd.Public())
}

// guessReq is the payload for POST /api/guess.
type guessReq struct {
	Guess string `json:"guess"`
}

// handleGuess applies a letter guess to the session's round.
func (s *Server) handleGuess(w http.ResponseWriter, r *http.Request) {
	sid := s.ensureSessionID(w, r)
	rd, err := s.store.Load(r.Context(), sid)
	if err != nil {
		s.noGame(w, err)
		return
	}

	var req guessReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, `{"error":"bad_json"}`, http.StatusBadRequest)
		return
	}

	rd = s.engine.ApplyGuess(r.Context(), rd, req.Guess)
	if err := s.store.Save(r.Context(), sid, rd); err != nil {
		http.Error(w, `{"error":"save_failed"}`, http.StatusInternalServerError)
		return
	}
	_ = json.NewEncoder(w).Encode(rd.Public())
}

// handleHint spends a hint letter on the session's round.
func (s *Server) handleHint(w http.ResponseWriter, r *http.Request) {
	sid := s.ensureSessionID(w, r)
	rd, err := s.store.Load(r.Context(), sid)
	if err != nil {
		s.noGame(w, err)
		return
	}

	rd = s.engine.ApplyHint(r.Context(), rd)
	if err := s.store.Save(r.Context(), sid, rd); err != nil {
		http.Error(w, `{"error":"save_failed"}`, http.StatusInternalServerError)
		return
	}
	_ = json.NewEncoder(w).Encode(rd.Public())
}

// handleReset drops the session's round entirely.
func (s *Server) handleReset(w http.ResponseWriter, r *http.Request) {
	sid := s.ensureSessionID(w, r)
	if err := s.store.Clear(r.Context(), sid); err != nil {
		http.Error(w, `{"error":"clear_failed"}`, http.StatusInternalServerError)
		return
	}
	_ = json.NewEncoder(w).Encode(map[string]bool{"ok": true})
}

// noGame writes the "no game in progress" error for commands that
// require an active round.
func (s *Server) noGame(w http.ResponseWriter, err error) {
	if errors.Is(err, store.ErrNotFound) {
		http.Error(w, `{"error":"no_game"}`, http.StatusBadRequest)
		return
	}
	http.Error(w, `{"error":"load_failed"}`, http.StatusInternalServerError)
}
