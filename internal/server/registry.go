package server

import (
	"context"
	"crypto/rand"
	"database/sql"
	"errors"
	"fmt"
	"sync"

	"github.com/code-po8/jet-lag-stillwater-sub002/internal/game"
	"github.com/code-po8/jet-lag-stillwater-sub002/internal/store"
)

var ErrGameNotFound = errors.New("game not found")

// session is one live game: the in-memory round plus the mutex that
// serializes every operation against it.
type session struct {
	id    string
	mu    sync.Mutex
	round *game.Round
}

// view runs fn with the session locked, for read-only handlers.
func (s *session) view(fn func(*game.Round)) {
	s.mu.Lock()
	defer s.mu.Unlock()
	fn(s.round)
}

// Registry maps game IDs to live sessions, restoring them lazily from the
// snapshot store on first access after a restart.
type Registry struct {
	mu        sync.RWMutex
	sessions  map[string]*session
	snapshots *store.KV
}

func NewRegistry(db *sql.DB) *Registry {
	return &Registry{
		sessions:  make(map[string]*session),
		snapshots: store.New(db, "games"),
	}
}

// Create starts a new game under a fresh join code and persists its initial
// snapshot.
func (r *Registry) Create(ctx context.Context) (*session, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	id := newGameCode()
	for r.sessions[id] != nil {
		id = newGameCode()
	}

	s := &session{id: id, round: game.NewRound()}
	if err := r.snapshots.Save(ctx, id, s.round.Snapshot()); err != nil {
		return nil, fmt.Errorf("creating game %q: %w", id, err)
	}
	r.sessions[id] = s
	return s, nil
}

// Get returns the live session for a game ID, restoring it from the snapshot
// store if it isn't resident.
func (r *Registry) Get(ctx context.Context, id string) (*session, error) {
	r.mu.RLock()
	s, ok := r.sessions[id]
	r.mu.RUnlock()
	if ok {
		return s, nil
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	// Double-check after acquiring write lock.
	if s, ok := r.sessions[id]; ok {
		return s, nil
	}

	var snap game.Snapshot
	found, err := r.snapshots.Load(ctx, id, &snap)
	if err != nil {
		return nil, err
	}
	if !found {
		return nil, ErrGameNotFound
	}
	s = &session{id: id, round: game.RestoreRound(snap)}
	r.sessions[id] = s
	return s, nil
}

// update runs a mutation with the session locked and, if it succeeds,
// persists the resulting snapshot. A failed mutation persists nothing.
func (r *Registry) update(ctx context.Context, s *session, fn func(*game.Round) error) error {
	s.mu.Lock()
	err := fn(s.round)
	if err != nil {
		s.mu.Unlock()
		return err
	}
	snap := s.round.Snapshot()
	s.mu.Unlock()
	return r.snapshots.Save(ctx, s.id, snap)
}

const codeAlphabet = "ABCDEFGHJKMNPQRSTVWXYZ23456789"

// newGameCode returns a short join code, skipping easily-confused letters.
func newGameCode() string {
	b := make([]byte, 6)
	rand.Read(b)
	for i := range b {
		b[i] = codeAlphabet[int(b[i])%len(codeAlphabet)]
	}
	return string(b)
}
