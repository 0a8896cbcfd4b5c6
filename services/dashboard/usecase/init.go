package usecase

import (
	"time"

	"github.com/victoreduardo21/drb-operacao/internal/pkg/models"
	"github.com/victoreduardo21/drb-operacao/services/dashboard"
	"github.com/victoreduardo21/drb-operacao/services/store"
)

// DashboardUC implements the dashboard use case interface
type DashboardUC struct {
	store     store.DataStore
	sheet     dashboard.SheetStatus
	generator dashboard.TextGenerator
	now       func() time.Time
}

// NewDashboardUC creates a new dashboard use case. A nil generator means no
// API key is configured and every analysis returns the unavailable placeholder.
func NewDashboardUC(dataStore store.DataStore, sheet dashboard.SheetStatus, generator dashboard.TextGenerator) *DashboardUC {
	return &DashboardUC{
		store:     dataStore,
		sheet:     sheet,
		generator: generator,
		now:       models.Now,
	}
}
