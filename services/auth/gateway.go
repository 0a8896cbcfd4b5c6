package auth

import (
	"context"

	"github.com/victoreduardo21/drb-operacao/internal/pkg/models"
)

// AuthGW defines the interface for reading the users sheet
//
//go:generate mockgen -destination=mocks/mock_gateway.go -package=mocks github.com/victoreduardo21/drb-operacao/services/auth AuthGW
type AuthGW interface {
	FetchUserRows(ctx context.Context) ([]models.SheetUserRow, error)
}
