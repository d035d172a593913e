package server

import (
	"context"
	"crypto/rand"
	"crypto/subtle"
	"database/sql"
	"encoding/hex"
	"errors"
	"fmt"

	"golang.org/x/crypto/bcrypt"
)

// HostStore persists the per-game host credential: a bearer token handed out
// at creation, plus an optional bcrypt-hashed PIN for reclaiming the token
// from another device.
type HostStore struct {
	db *sql.DB
}

func NewHostStore(db *sql.DB) *HostStore {
	return &HostStore{db: db}
}

// CreateHost stores the host token for a new game. pin may be empty, in
// which case the game cannot be reclaimed.
func (h *HostStore) CreateHost(ctx context.Context, gameID, token, pin string) error {
	var pinHash []byte
	if pin != "" {
		var err error
		pinHash, err = bcrypt.GenerateFromPassword([]byte(pin), bcrypt.DefaultCost)
		if err != nil {
			return fmt.Errorf("hashing pin: %w", err)
		}
	}
	_, err := h.db.ExecContext(ctx, `
		INSERT INTO hosts (game_id, token, pin_hash, created_at)
		VALUES (?, ?, ?, strftime('%Y-%m-%dT%H:%M:%fZ', 'now'))
	`, gameID, token, pinHash)
	if err != nil {
		return fmt.Errorf("creating host for %q: %w", gameID, err)
	}
	return nil
}

// VerifyToken reports whether token is the host token for gameID.
func (h *HostStore) VerifyToken(ctx context.Context, gameID, token string) (bool, error) {
	var stored string
	err := h.db.QueryRowContext(ctx, `
		SELECT token FROM hosts WHERE game_id = ?
	`, gameID).Scan(&stored)
	if errors.Is(err, sql.ErrNoRows) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("looking up host for %q: %w", gameID, err)
	}
	return subtle.ConstantTimeCompare([]byte(stored), []byte(token)) == 1, nil
}

// Claim returns the host token for gameID if pin matches the stored hash.
// Games created without a PIN cannot be claimed.
func (h *HostStore) Claim(ctx context.Context, gameID, pin string) (string, error) {
	var token string
	var pinHash []byte
	err := h.db.QueryRowContext(ctx, `
		SELECT token, pin_hash FROM hosts WHERE game_id = ?
	`, gameID).Scan(&token, &pinHash)
	if errors.Is(err, sql.ErrNoRows) {
		return "", ErrGameNotFound
	}
	if err != nil {
		return "", fmt.Errorf("looking up host for %q: %w", gameID, err)
	}
	if len(pinHash) == 0 {
		return "", bcrypt.ErrMismatchedHashAndPassword
	}
	if err := bcrypt.CompareHashAndPassword(pinHash, []byte(pin)); err != nil {
		return "", err
	}
	return token, nil
}

func newHostToken() string {
	b := make([]byte, 32)
	rand.Read(b)
	return hex.EncodeToString(b)
}
