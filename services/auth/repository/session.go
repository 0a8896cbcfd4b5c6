package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/go-redis/redis/v8"
	"github.com/victoreduardo21/drb-operacao/internal/pkg/constants"
	"github.com/victoreduardo21/drb-operacao/internal/pkg/database"
	"github.com/victoreduardo21/drb-operacao/internal/pkg/models"
	"github.com/victoreduardo21/drb-operacao/services/auth"
)

type sessionRepo struct {
	redisClient *database.RedisClient
}

// NewSessionRepository creates a new Redis backed session repository
func NewSessionRepository(redisClient *database.RedisClient) auth.SessionRepo {
	return &sessionRepo{
		redisClient: redisClient,
	}
}

// SaveSession stores the session until ttl elapses
func (r *sessionRepo) SaveSession(ctx context.Context, session models.Session, ttl time.Duration) error {
	data, err := json.Marshal(session)
	if err != nil {
		return fmt.Errorf("failed to marshal session: %w", err)
	}

	key := fmt.Sprintf(constants.KeySession, session.UserID)
	if err := r.redisClient.Set(ctx, key, data, ttl); err != nil {
		return fmt.Errorf("failed to store session: %w", err)
	}
	return nil
}

// GetSession loads a session by user id
func (r *sessionRepo) GetSession(ctx context.Context, userID string) (*models.Session, error) {
	key := fmt.Sprintf(constants.KeySession, userID)
	raw, err := r.redisClient.Get(ctx, key)
	if errors.Is(err, redis.Nil) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get session: %w", err)
	}

	var session models.Session
	if err := json.Unmarshal([]byte(raw), &session); err != nil {
		return nil, fmt.Errorf("failed to unmarshal session: %w", err)
	}
	return &session, nil
}

// DeleteSession removes a session; deleting a missing session is not an error
func (r *sessionRepo) DeleteSession(ctx context.Context, userID string) error {
	key := fmt.Sprintf(constants.KeySession, userID)
	if err := r.redisClient.Delete(ctx, key); err != nil {
		return fmt.Errorf("failed to delete session: %w", err)
	}
	return nil
}

// CountSessions counts the live sessions
func (r *sessionRepo) CountSessions(ctx context.Context) (int, error) {
	n, err := r.redisClient.CountKeys(ctx, constants.KeySessionPattern)
	if err != nil {
		return 0, fmt.Errorf("failed to count sessions: %w", err)
	}
	return n, nil
}
