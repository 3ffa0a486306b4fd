// internal/store/memory.go
//
// In-memory implementation of the session Store interface.
// Maps an opaque session identifier to that session's current round.
//
// Characteristics:
//   - Stores *game.Round objects keyed by session ID in a map.
//   - Concurrency-safe via RWMutex (concurrent reads allowed, writes exclusive).
//   - State is lost when the process restarts.
//   - ErrNotFound is returned for sessions with no active round.

package store

import (
	"context"
	"errors"
	"sync"

	"github.com/animalhangman/go-server/internal/game"
)

// ErrNotFound is returned by Load when the session has no round.
var ErrNotFound = errors.New("session not found")

// Store defines the persistence interface for per-session round state.
// Implementations may be backed by memory (this package), Redis, etc.
type Store interface {
	// Load retrieves the current round for a session.
	// Returns ErrNotFound if the session has no active round.
	Load(ctx context.Context, sessionID string) (*game.Round, error)

	// Save persists or replaces the session's round.
	Save(ctx context.Context, sessionID string, rd *game.Round) error

	// Clear removes the session's round, if any.
	Clear(ctx context.Context, sessionID string) error
}

// memory is an in-memory map-based Store implementation.
type memory struct {
	mu     sync.RWMutex           // guards rounds map
	rounds map[string]*game.Round // keyed by session ID
}

// NewMemoryStore constructs a new in-memory Store.
func NewMemoryStore() Store {
	return &memory{rounds: make(map[string]*game.Round)}
}

// Load looks up a session's round.
func (m *memory) Load(ctx context.Context, sessionID string) (*game.Round, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	if rd, ok := m.rounds[sessionID]; ok {
		return rd, nil
	}
	return nil, ErrNotFound
}

// Save adds or replaces the session's round in the map.
func (m *memory) Save(ctx context.Context, sessionID string, rd *game.Round) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.rounds[sessionID] = rd
	return nil
}

// Clear drops the session's round.
func (m *memory) Clear(ctx context.Context, sessionID string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.rounds, sessionID)
	return nil
}
