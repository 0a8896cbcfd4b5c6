package usecase

import (
	"github.com/victoreduardo21/drb-operacao/internal/pkg/models"
	"github.com/victoreduardo21/drb-operacao/services/auth"
)

// AuthUC implements the auth use case interface
type AuthUC struct {
	cfg         *models.Config
	authGW      auth.AuthGW
	sessionRepo auth.SessionRepo
	operations  auth.OperationsSession
}

// NewAuthUC creates a new auth use case. operations may be nil.
func NewAuthUC(
	cfg *models.Config,
	authGW auth.AuthGW,
	sessionRepo auth.SessionRepo,
	operations auth.OperationsSession,
) *AuthUC {
	return &AuthUC{
		cfg:         cfg,
		authGW:      authGW,
		sessionRepo: sessionRepo,
		operations:  operations,
	}
}
