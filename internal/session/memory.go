package session

import (
	"context"
	"sync"
	"time"

	"alltopia/internal/domain"

	"github.com/patrickmn/go-cache"
	"go.uber.org/zap"
)

var _ Store = (*MemoryStore)(nil)

// MemoryStore keeps sessions in process memory with go-cache expiration.
type MemoryStore struct {
	cache  *cache.Cache
	ttl    time.Duration
	mu     sync.Mutex // serializes read-modify-write in Put
	logger *zap.Logger
	now    func() time.Time
}

// NewMemoryStore creates a store whose entries expire after ttl.
func NewMemoryStore(ttl time.Duration, logger *zap.Logger) *MemoryStore {
	return &MemoryStore{
		cache:  cache.New(ttl, 2*ttl),
		ttl:    ttl,
		logger: logger.Named("MemorySessionStore"),
		now:    time.Now,
	}
}

func (m *MemoryStore) Get(_ context.Context, sessionID string) (State, error) {
	v, ok := m.cache.Get(sessionID)
	if !ok {
		return State{}, domain.ErrSessionNotFound
	}
	return v.(State), nil
}

func (m *MemoryStore) Put(_ context.Context, sessionID string, key Key, value string) error {
	if err := checkPut(sessionID, key); err != nil {
		return err
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	st := State{SessionID: sessionID}
	if v, ok := m.cache.Get(sessionID); ok {
		st = v.(State)
	}
	st.set(key, value)
	st.UpdatedAt = m.now().UTC()
	m.cache.Set(sessionID, st, m.ttl)

	m.logger.Debug("Session slot updated", zap.String("session_id", sessionID), zap.String("key", string(key)))
	return nil
}

func (m *MemoryStore) Delete(_ context.Context, sessionID string) error {
	m.cache.Delete(sessionID)
	return nil
}
