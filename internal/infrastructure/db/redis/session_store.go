package redis

import (
	"context"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/bleubean/pos-admin-gateway/internal/core/domain"
)

const sessionKey = "posadmin:session"

// SessionStore persists the gateway session in Redis: one session record,
// read by every outgoing request, surviving restarts until the TTL, a
// logout, or the first unauthorized upstream response.
type SessionStore struct {
	client *redis.Client
	ttl    time.Duration
}

// NewSessionStore wraps the given Redis client. ttl <= 0 means the session
// only expires on logout or invalidation.
func NewSessionStore(client *redis.Client, ttl time.Duration) *SessionStore {
	return &SessionStore{client: client, ttl: ttl}
}

// Save replaces the current session.
func (s *SessionStore) Save(ctx context.Context, session domain.Session) error {
	_, err := s.client.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		pipe.Del(ctx, sessionKey)
		pipe.HSet(ctx, sessionKey,
			"token", session.Token,
			"username", session.Username,
			"role", string(session.Role),
			"user_id", session.UserID,
		)
		if s.ttl > 0 {
			pipe.Expire(ctx, sessionKey, s.ttl)
		}
		return nil
	})
	return err
}

// Get returns the current session or domain.ErrSessionNotFound.
func (s *SessionStore) Get(ctx context.Context) (*domain.Session, error) {
	fields, err := s.client.HGetAll(ctx, sessionKey).Result()
	if err != nil {
		return nil, err
	}
	if len(fields) == 0 || fields["token"] == "" {
		return nil, domain.ErrSessionNotFound
	}

	return &domain.Session{
		Token:    fields["token"],
		Username: fields["username"],
		Role:     domain.Role(fields["role"]),
		UserID:   fields["user_id"],
	}, nil
}

// Clear removes the session unconditionally.
func (s *SessionStore) Clear(ctx context.Context) error {
	return s.client.Del(ctx, sessionKey).Err()
}

// ClearIfToken removes the session only while it still holds staleToken.
// The check-and-delete runs under WATCH so racing invalidations (or a
// re-login between check and delete) cannot evict a fresh session; the
// first caller wins and later ones report false.
func (s *SessionStore) ClearIfToken(ctx context.Context, staleToken string) (bool, error) {
	cleared := false

	err := s.client.Watch(ctx, func(tx *redis.Tx) error {
		current, err := tx.HGet(ctx, sessionKey, "token").Result()
		if errors.Is(err, redis.Nil) {
			return nil
		}
		if err != nil {
			return err
		}
		if current != staleToken {
			return nil
		}

		_, err = tx.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
			pipe.Del(ctx, sessionKey)
			return nil
		})
		if err != nil {
			return err
		}
		cleared = true
		return nil
	}, sessionKey)

	if errors.Is(err, redis.TxFailedErr) {
		// Someone modified the session mid-flight; their state stands.
		return false, nil
	}
	return cleared, err
}
