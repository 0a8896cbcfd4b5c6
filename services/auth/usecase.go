package auth

import (
	"context"
	"errors"

	"github.com/victoreduardo21/drb-operacao/internal/pkg/models"
)

var (
	// ErrInvalidCredentials carries the message shown on the login screen
	ErrInvalidCredentials = errors.New("Credenciais inválidas")
	ErrSessionNotFound    = errors.New("session not found")
	// ErrAuthUnavailable is returned when the users sheet cannot be reached
	// and the credentials are not the built-in account
	ErrAuthUnavailable    = errors.New("authentication service unavailable")
)

// AuthUC defines the interface for authentication business logic
//
//go:generate mockgen -destination=mocks/mock_usecase.go -package=mocks github.com/victoreduardo21/drb-operacao/services/auth AuthUC
type AuthUC interface {
	Login(ctx context.Context, email, password string) (*models.LoginResult, error)
	Logout(ctx context.Context, userID string) error
	ValidateSession(ctx context.Context, userID string) (bool, error)
	Me(ctx context.Context, userID string) (models.User, error)
}

// OperationsSession is the background work that runs while anyone is logged
// in: the terminal sync and the position simulator. StopIfIdle makes the
// "nobody left" decision together with Start, so a concurrent login is never
// left without operations.
//
//go:generate mockgen -destination=mocks/mock_operations.go -package=mocks github.com/victoreduardo21/drb-operacao/services/auth OperationsSession
type OperationsSession interface {
	Start(ctx context.Context)
	StopIfIdle(ctx context.Context) (bool, error)
}
