package terminals

import (
	"context"
)

// TerminalGW defines the interface for reading the terminal sheet
//
//go:generate mockgen -destination=mocks/mock_gateway.go -package=mocks github.com/victoreduardo21/drb-operacao/services/terminals TerminalGW
type TerminalGW interface {
	// FetchTerminalRows returns the raw sheet rows, one map per row keyed by header
	FetchTerminalRows(ctx context.Context) ([]map[string]interface{}, error)
}
