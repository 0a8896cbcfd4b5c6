package usecase

import (
	"sync/atomic"

	"github.com/victoreduardo21/drb-operacao/services/store"
	"github.com/victoreduardo21/drb-operacao/services/terminals"
)

// TerminalUC implements the terminal use case interface
type TerminalUC struct {
	terminalGW terminals.TerminalGW
	store      store.DataStore
	connected  atomic.Bool
	newID      func() string
}

// NewTerminalUC creates a new terminal use case
func NewTerminalUC(
	terminalGW terminals.TerminalGW,
	dataStore store.DataStore,
) *TerminalUC {
	return &TerminalUC{
		terminalGW: terminalGW,
		store:      dataStore,
		newID:      newRegistryID,
	}
}
