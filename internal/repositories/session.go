package repositories

import (
	"context"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/sbilibin2017/gw-hotel-booking/internal/logger"
)

// ErrSessionNotFound is returned when the session id is unknown or expired.
var ErrSessionNotFound = errors.New("session not found")

// SessionRepository mirrors issued tokens under an opaque session id.
type SessionRepository struct {
	client *redis.Client
	exp    time.Duration
}

func NewSessionRepository(client *redis.Client, expiration time.Duration) *SessionRepository {
	return &SessionRepository{client: client, exp: expiration}
}

func sessionKey(sessionID string) string {
	return "session:" + sessionID
}

// Save stores the token for the session, replacing any previous one.
func (r *SessionRepository) Save(ctx context.Context, sessionID, token string) error {
	err := r.client.Set(ctx, sessionKey(sessionID), token, r.exp).Err()
	logger.Log.Infow("redis set", "key", sessionKey(sessionID), "error", err)
	return err
}

// Get returns the token stored for the session.
func (r *SessionRepository) Get(ctx context.Context, sessionID string) (string, error) {
	token, err := r.client.Get(ctx, sessionKey(sessionID)).Result()
	logger.Log.Infow("redis get", "key", sessionKey(sessionID), "found", err == nil, "error", err)
	if errors.Is(err, redis.Nil) {
		return "", ErrSessionNotFound
	}
	return token, err
}

// Delete forgets the session.
func (r *SessionRepository) Delete(ctx context.Context, sessionID string) error {
	err := r.client.Del(ctx, sessionKey(sessionID)).Err()
	logger.Log.Infow("redis del", "key", sessionKey(sessionID), "error", err)
	return err
}
