package auth

import (
	"context"
	"time"

	"github.com/victoreduardo21/drb-operacao/internal/pkg/models"
)

// SessionRepo defines the interface for login session storage
//
//go:generate mockgen -destination=mocks/mock_repository.go -package=mocks github.com/victoreduardo21/drb-operacao/services/auth SessionRepo
type SessionRepo interface {
	SaveSession(ctx context.Context, session models.Session, ttl time.Duration) error
	// GetSession returns nil without error when the session does not exist
	GetSession(ctx context.Context, userID string) (*models.Session, error)
	DeleteSession(ctx context.Context, userID string) error
	CountSessions(ctx context.Context) (int, error)
}
