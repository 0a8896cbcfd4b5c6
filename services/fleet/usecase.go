package fleet

import (
	"context"
)

// SimulatorUC drives the demo GPS feed while an operations session is open
//
//go:generate mockgen -destination=mocks/mock_usecase.go -package=mocks github.com/victoreduardo21/drb-operacao/services/fleet SimulatorUC
type SimulatorUC interface {
	// Start launches the tick loop; calling it while running is a no-op
	Start(ctx context.Context)
	// Stop ends the tick loop and waits for it to exit
	Stop()
	Running() bool
}
