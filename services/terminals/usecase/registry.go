package usecase

import (
	"context"
	"fmt"
	"strings"

	"github.com/victoreduardo21/drb-operacao/internal/pkg/logger"
	"github.com/victoreduardo21/drb-operacao/internal/pkg/models"
	"github.com/victoreduardo21/drb-operacao/internal/utils"
	"github.com/victoreduardo21/drb-operacao/services/terminals"
)

func newRegistryID() string {
	return "T" + utils.ShortID(12)
}

// Sync replaces the stored terminals with a fresh load
func (uc *TerminalUC) Sync(ctx context.Context) (terminals.SyncResult, error) {
	loaded, source := uc.Load(ctx)

	_, err := uc.store.Update(func(data models.LogisticsData) (models.LogisticsData, error) {
		data.Terminals = loaded
		return data, nil
	})
	if err != nil {
		return terminals.SyncResult{}, fmt.Errorf("failed to store terminals: %w", err)
	}

	connected := source == terminals.SourceSheet
	uc.connected.Store(connected)

	logger.InfoCtx(ctx, "Terminals synchronized",
		logger.String("source", string(source)),
		logger.Int("count", len(loaded)))

	return terminals.SyncResult{Source: source, Count: len(loaded), Connected: connected}, nil
}

// SheetConnected reports whether the last sync was served by the sheet
func (uc *TerminalUC) SheetConnected() bool {
	return uc.connected.Load()
}

// List returns the registered terminals
func (uc *TerminalUC) List() []models.Terminal {
	return uc.store.Snapshot().Terminals
}

// Register validates input and appends a new terminal
func (uc *TerminalUC) Register(ctx context.Context, input models.TerminalInput) (models.Terminal, error) {
	input.Name = strings.TrimSpace(input.Name)
	if err := input.Validate(); err != nil {
		return models.Terminal{}, err
	}

	terminal := models.Terminal{
		ID:       uc.newID(),
		Name:     input.Name,
		Lat:      input.Lat,
		Lng:      input.Lng,
		Radius:   input.Radius,
		Capacity: input.Capacity,
		City:     strings.TrimSpace(input.City),
		Address:  strings.TrimSpace(input.Address),
		CNPJ:     strings.TrimSpace(input.CNPJ),
	}

	_, err := uc.store.Update(func(data models.LogisticsData) (models.LogisticsData, error) {
		data.Terminals = append(data.Terminals, terminal)
		return data, nil
	})
	if err != nil {
		return models.Terminal{}, fmt.Errorf("failed to register terminal: %w", err)
	}

	logger.InfoCtx(ctx, "Terminal registered",
		logger.String("terminal_id", terminal.ID),
		logger.String("name", terminal.Name))
	return terminal, nil
}

// Delete removes a terminal by id
func (uc *TerminalUC) Delete(ctx context.Context, id string) error {
	_, err := uc.store.Update(func(data models.LogisticsData) (models.LogisticsData, error) {
		kept := data.Terminals[:0]
		for _, t := range data.Terminals {
			if t.ID != id {
				kept = append(kept, t)
			}
		}
		if len(kept) == len(data.Terminals) {
			return data, terminals.ErrTerminalNotFound
		}
		data.Terminals = kept
		return data, nil
	})
	if err != nil {
		return err
	}

	logger.InfoCtx(ctx, "Terminal deleted", logger.String("terminal_id", id))
	return nil
}
