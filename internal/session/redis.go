package session

import (
	"context"
	"errors"
	"fmt"
	"time"

	"alltopia/internal/domain"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

var _ Store = (*RedisStore)(nil)

const fieldUpdatedAt = "updated_at"

// RedisStore keeps each session in a hash "session:{id}" with one field per slot.
type RedisStore struct {
	client *redis.Client
	ttl    time.Duration
	logger *zap.Logger
	now    func() time.Time
}

// NewRedisStore creates a Redis-backed store whose sessions expire after ttl.
func NewRedisStore(client *redis.Client, ttl time.Duration, logger *zap.Logger) *RedisStore {
	return &RedisStore{
		client: client,
		ttl:    ttl,
		logger: logger.Named("RedisSessionStore"),
		now:    time.Now,
	}
}

func sessionKey(sessionID string) string {
	return fmt.Sprintf("session:%s", sessionID)
}

func (r *RedisStore) Get(ctx context.Context, sessionID string) (State, error) {
	fields, err := r.client.HGetAll(ctx, sessionKey(sessionID)).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return State{}, domain.ErrSessionNotFound
		}
		r.logger.Error("Failed to read session from redis", zap.String("session_id", sessionID), zap.Error(err))
		return State{}, fmt.Errorf("failed to read session from redis: %w", err)
	}
	// HGETALL on a missing key returns an empty map, not redis.Nil.
	if len(fields) == 0 {
		return State{}, domain.ErrSessionNotFound
	}

	st := State{SessionID: sessionID}
	for _, k := range Keys() {
		st.set(k, fields[string(k)])
	}
	if ts := fields[fieldUpdatedAt]; ts != "" {
		if t, err := time.Parse(time.RFC3339Nano, ts); err == nil {
			st.UpdatedAt = t
		} else {
			r.logger.Warn("Malformed session timestamp", zap.String("session_id", sessionID), zap.String("value", ts))
		}
	}
	return st, nil
}

func (r *RedisStore) Put(ctx context.Context, sessionID string, key Key, value string) error {
	if err := checkPut(sessionID, key); err != nil {
		return err
	}
	rk := sessionKey(sessionID)

	pipe := r.client.TxPipeline()
	pipe.HSet(ctx, rk, string(key), value, fieldUpdatedAt, r.now().UTC().Format(time.RFC3339Nano))
	pipe.Expire(ctx, rk, r.ttl)

	r.logger.Debug("Setting session slot in redis",
		zap.String("session_id", sessionID),
		zap.String("key", string(key)),
		zap.Duration("ttl", r.ttl),
	)
	if _, err := pipe.Exec(ctx); err != nil {
		r.logger.Error("Failed to write session to redis", zap.String("session_id", sessionID), zap.Error(err))
		return fmt.Errorf("failed to write session to redis: %w", err)
	}
	return nil
}

func (r *RedisStore) Delete(ctx context.Context, sessionID string) error {
	if err := r.client.Del(ctx, sessionKey(sessionID)).Err(); err != nil {
		r.logger.Error("Failed to delete session from redis", zap.String("session_id", sessionID), zap.Error(err))
		return fmt.Errorf("failed to delete session from redis: %w", err)
	}
	return nil
}

// NewRedisClient connects and pings Redis.
func NewRedisClient(ctx context.Context, addr, password string, db int) (*redis.Client, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: password,
		DB:       db,
	})
	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if err := client.Ping(pingCtx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("failed to connect to redis at %s: %w", addr, err)
	}
	return client, nil
}
