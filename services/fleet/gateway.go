package fleet

import (
	"context"

	"github.com/victoreduardo21/drb-operacao/internal/pkg/models"
)

// PositionGW defines the interface for publishing vehicle positions
//
//go:generate mockgen -destination=mocks/mock_gateway.go -package=mocks github.com/victoreduardo21/drb-operacao/services/fleet PositionGW
type PositionGW interface {
	PublishPositions(ctx context.Context, updates []models.PositionUpdate) error
}
