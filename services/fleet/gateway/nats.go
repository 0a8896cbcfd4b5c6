package gateway

import (
	"context"
	"errors"
	"fmt"

	"github.com/victoreduardo21/drb-operacao/internal/pkg/constants"
	"github.com/victoreduardo21/drb-operacao/internal/pkg/models"
	"github.com/victoreduardo21/drb-operacao/services/fleet"
)

// Publisher is the part of the NATS client the gateway needs
type Publisher interface {
	PublishJSON(subject string, message interface{}) error
}

type positionGW struct {
	publisher Publisher
}

// NewPositionGW creates a new position gateway
func NewPositionGW(publisher Publisher) fleet.PositionGW {
	return &positionGW{
		publisher: publisher,
	}
}

// PublishPositions publishes one event per vehicle. Every update is attempted
// and the failures are joined.
func (g *positionGW) PublishPositions(ctx context.Context, updates []models.PositionUpdate) error {
	var errs []error
	for _, update := range updates {
		if err := ctx.Err(); err != nil {
			return err
		}
		if err := g.publisher.PublishJSON(constants.SubjectPositionUpdated, update); err != nil {
			errs = append(errs, fmt.Errorf("driver %s: %w", update.DriverID, err))
		}
	}
	return errors.Join(errs...)
}
