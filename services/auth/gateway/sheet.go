package gateway

import (
	"context"
	"fmt"
	"net/url"
	"strconv"
	"time"

	httpclient "github.com/victoreduardo21/drb-operacao/internal/pkg/http"
	"github.com/victoreduardo21/drb-operacao/internal/pkg/logger"
	"github.com/victoreduardo21/drb-operacao/internal/pkg/models"
)

// SheetGW reads operator accounts from the users sheet
type SheetGW struct {
	client  *httpclient.EnhancedClient
	baseURL string
	now     func() time.Time
}

// NewSheetGW creates a new users sheet gateway
func NewSheetGW(client *httpclient.EnhancedClient, baseURL string) *SheetGW {
	return &SheetGW{
		client:  client,
		baseURL: baseURL,
		now:     time.Now,
	}
}

// FetchUserRows fetches every row of the users sheet
func (gw *SheetGW) FetchUserRows(ctx context.Context) ([]models.SheetUserRow, error) {
	if gw.baseURL == "" {
		return nil, fmt.Errorf("sheet url is not configured")
	}

	endpoint, err := httpclient.WithQuery(gw.baseURL, url.Values{
		"type":    {"users"},
		"nocache": {strconv.FormatInt(gw.now().UnixMilli(), 10)},
	})
	if err != nil {
		return nil, err
	}

	var rows []models.SheetUserRow
	if err := gw.client.GetJSON(ctx, endpoint, &rows); err != nil {
		logger.WarnCtx(ctx, "Failed to fetch users sheet", logger.ErrorField(err))
		return nil, fmt.Errorf("failed to fetch user rows: %w", err)
	}
	return rows, nil
}
