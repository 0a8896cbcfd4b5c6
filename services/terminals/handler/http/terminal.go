package http

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/victoreduardo21/drb-operacao/internal/pkg/logger"
	"github.com/victoreduardo21/drb-operacao/internal/pkg/models"
	"github.com/victoreduardo21/drb-operacao/internal/utils"
	"github.com/victoreduardo21/drb-operacao/services/terminals"
)

// TerminalHandler handles HTTP requests for the terminal registry
type TerminalHandler struct {
	terminalUC terminals.TerminalUC
}

// NewTerminalHandler creates a new terminal HTTP handler
func NewTerminalHandler(terminalUC terminals.TerminalUC) *TerminalHandler {
	return &TerminalHandler{
		terminalUC: terminalUC,
	}
}

// ListTerminals returns every registered terminal
func (h *TerminalHandler) ListTerminals(c echo.Context) error {
	list := h.terminalUC.List()
	return utils.SuccessResponse(c, http.StatusOK, "Terminals retrieved successfully", map[string]interface{}{
		"terminals":       list,
		"total":           len(list),
		"sheet_connected": h.terminalUC.SheetConnected(),
	})
}

// RegisterTerminal adds a terminal from the registry form
func (h *TerminalHandler) RegisterTerminal(c echo.Context) error {
	var input models.TerminalInput
	if err := c.Bind(&input); err != nil {
		logger.Warn("Invalid terminal request", logger.ErrorField(err))
		return utils.BadRequestResponse(c, "invalid request body")
	}

	terminal, err := h.terminalUC.Register(c.Request().Context(), input)
	if err != nil {
		if isValidationError(err) {
			return utils.BadRequestResponse(c, err.Error())
		}
		logger.Error("Failed to register terminal",
			logger.String("endpoint", "POST /api/v1/terminals"),
			logger.ErrorField(err))
		return utils.InternalServerErrorResponse(c, "failed to register terminal")
	}

	return utils.SuccessResponse(c, http.StatusCreated, "Terminal registered successfully", terminal)
}

// DeleteTerminal removes a terminal by id
func (h *TerminalHandler) DeleteTerminal(c echo.Context) error {
	id := c.Param("id")
	if id == "" {
		return utils.BadRequestResponse(c, "terminal id is required")
	}

	if err := h.terminalUC.Delete(c.Request().Context(), id); err != nil {
		if errors.Is(err, terminals.ErrTerminalNotFound) {
			return utils.NotFoundResponse(c, err.Error())
		}
		logger.Error("Failed to delete terminal",
			logger.String("terminal_id", id),
			logger.ErrorField(err))
		return utils.InternalServerErrorResponse(c, "failed to delete terminal")
	}

	return utils.SuccessResponse(c, http.StatusOK, "Terminal deleted successfully", map[string]string{"id": id})
}

// SyncTerminals reloads the terminal list from the sheet
func (h *TerminalHandler) SyncTerminals(c echo.Context) error {
	result, err := h.terminalUC.Sync(c.Request().Context())
	if err != nil {
		logger.Error("Failed to sync terminals",
			logger.String("endpoint", "POST /api/v1/terminals/sync"),
			logger.ErrorField(err))
		return utils.InternalServerErrorResponse(c, "failed to sync terminals")
	}
	return utils.SuccessResponse(c, http.StatusOK, "Terminals synchronized", result)
}

func isValidationError(err error) bool {
	for _, target := range []error{
		models.ErrTerminalNameRequired,
		models.ErrInvalidLatitude,
		models.ErrInvalidLongitude,
		models.ErrInvalidRadius,
		models.ErrInvalidCapacity,
	} {
		if errors.Is(err, target) {
			return true
		}
	}
	return false
}
