package usecase

import (
	"time"

	"github.com/victoreduardo21/drb-operacao/internal/pkg/models"
	"github.com/victoreduardo21/drb-operacao/services/store"
)

// TripUC implements the trip use case interface
type TripUC struct {
	store store.DataStore
	now   func() time.Time
	newID func() string
}

// NewTripUC creates a new trip use case
func NewTripUC(dataStore store.DataStore) *TripUC {
	return &TripUC{
		store: dataStore,
		now:   models.Now,
		newID: newTripID,
	}
}
