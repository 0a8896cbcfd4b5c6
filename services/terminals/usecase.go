package terminals

import (
	"context"
	"errors"

	"github.com/victoreduardo21/drb-operacao/internal/pkg/models"
)

// ErrTerminalNotFound is returned when deleting an unknown terminal
var ErrTerminalNotFound = errors.New("terminal not found")

// Source tells where a terminal list came from
type Source string

const (
	SourceSheet    Source = "sheet"
	SourceFallback Source = "fallback"
)

// SyncResult describes one sheet synchronization
type SyncResult struct {
	Source    Source `json:"source"`
	Count     int    `json:"count"`
	Connected bool   `json:"connected"`
}

// TerminalUC defines the interface for terminal business logic
//
//go:generate mockgen -destination=mocks/mock_usecase.go -package=mocks github.com/victoreduardo21/drb-operacao/services/terminals TerminalUC
type TerminalUC interface {
	// Load fetches and maps the sheet, falling back to built-in rows. It never fails.
	Load(ctx context.Context) ([]models.Terminal, Source)
	// Sync loads the terminals and replaces them in the store
	Sync(ctx context.Context) (SyncResult, error)
	SheetConnected() bool

	List() []models.Terminal
	Register(ctx context.Context, input models.TerminalInput) (models.Terminal, error)
	Delete(ctx context.Context, id string) error
}
