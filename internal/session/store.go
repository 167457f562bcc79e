// Package session keeps the last AI results of a client session for a limited time.
package session

import (
	"context"
	"fmt"
	"time"

	"alltopia/internal/domain"
)

// Key names one of the fixed result slots of a session.
type Key string

const (
	KeyAnalysis   Key = "analysis"
	KeyComparison Key = "comparison"
	KeyImageURL   Key = "image_url"
)

// Keys lists every slot in a stable order.
func Keys() []Key {
	return []Key{KeyAnalysis, KeyComparison, KeyImageURL}
}

// Valid reports whether k is one of the fixed slots.
func (k Key) Valid() bool {
	switch k {
	case KeyAnalysis, KeyComparison, KeyImageURL:
		return true
	}
	return false
}

// State is a snapshot of one session.
type State struct {
	SessionID      string    `json:"session_id"`
	LastAnalysis   string    `json:"last_analysis,omitempty"`
	LastComparison string    `json:"last_comparison,omitempty"`
	LastImageURL   string    `json:"last_image_url,omitempty"`
	UpdatedAt      time.Time `json:"updated_at"`
}

func (s *State) set(key Key, value string) {
	switch key {
	case KeyAnalysis:
		s.LastAnalysis = value
	case KeyComparison:
		s.LastComparison = value
	case KeyImageURL:
		s.LastImageURL = value
	}
}

// Store persists session slots. Implementations must be safe for concurrent use.
type Store interface {
	// Get returns domain.ErrSessionNotFound when the session is unknown or expired.
	Get(ctx context.Context, sessionID string) (State, error)
	// Put overwrites one slot and refreshes the session TTL.
	Put(ctx context.Context, sessionID string, key Key, value string) error
	// Delete drops the session. Deleting an unknown session is not an error.
	Delete(ctx context.Context, sessionID string) error
}

func checkPut(sessionID string, key Key) error {
	if sessionID == "" {
		return fmt.Errorf("%w: empty session id", domain.ErrInvalidInput)
	}
	if !key.Valid() {
		return fmt.Errorf("%w: unknown session key %q", domain.ErrInvalidInput, key)
	}
	return nil
}
