package gateway

import (
	"context"
	"fmt"
	"net/url"
	"strconv"
	"time"

	httpclient "github.com/victoreduardo21/drb-operacao/internal/pkg/http"
	"github.com/victoreduardo21/drb-operacao/internal/pkg/logger"
)

// SheetGW reads terminal rows from the spreadsheet web app
type SheetGW struct {
	client  *httpclient.EnhancedClient
	baseURL string
	now     func() time.Time
}

// NewSheetGW creates a new sheet gateway
func NewSheetGW(client *httpclient.EnhancedClient, baseURL string) *SheetGW {
	return &SheetGW{
		client:  client,
		baseURL: baseURL,
		now:     time.Now,
	}
}

// FetchTerminalRows fetches every row of the terminal sheet. The nocache
// parameter keeps intermediaries from serving a stale copy.
func (gw *SheetGW) FetchTerminalRows(ctx context.Context) ([]map[string]interface{}, error) {
	if gw.baseURL == "" {
		return nil, fmt.Errorf("sheet url is not configured")
	}

	endpoint, err := httpclient.WithQuery(gw.baseURL, url.Values{
		"nocache": {strconv.FormatInt(gw.now().UnixMilli(), 10)},
	})
	if err != nil {
		return nil, err
	}

	var rows []map[string]interface{}
	if err := gw.client.GetJSON(ctx, endpoint, &rows); err != nil {
		logger.WarnCtx(ctx, "Failed to fetch terminal sheet",
			logger.String("url", gw.baseURL),
			logger.ErrorField(err))
		return nil, fmt.Errorf("failed to fetch terminal rows: %w", err)
	}

	logger.Debug("Terminal sheet fetched", logger.Int("rows", len(rows)))
	return rows, nil
}
