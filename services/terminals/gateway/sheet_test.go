package gateway

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	httpclient "github.com/victoreduardo21/drb-operacao/internal/pkg/http"
	"github.com/victoreduardo21/drb-operacao/internal/pkg/retry"
)

func newTestGW(url string) *SheetGW {
	client := httpclient.NewEnhancedClient(nil, time.Second, httpclient.WithRetryConfig(retry.Config{
		MaxRetries: 1,
		BaseDelay:  time.Millisecond,
		MaxDelay:   time.Millisecond,
		Multiplier: 1,
	}))
	gw := NewSheetGW(client, url)
	gw.now = func() time.Time { return time.UnixMilli(1700000000000) }
	return gw
}

func TestFetchTerminalRows_Success(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		assert.Equal(t, "1700000000000", r.URL.Query().Get("nocache"))
		assert.Empty(t, r.URL.Query().Get("type"))
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`[{"TERMINAL":"Alemoa","RAIO":0.2,"ENTRADA":"-23.9, -46.3"}]`))
	}))
	defer server.Close()

	rows, err := newTestGW(server.URL).FetchTerminalRows(context.Background())

	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, "Alemoa", rows[0]["TERMINAL"])
	assert.Equal(t, 0.2, rows[0]["RAIO"])
}

func TestFetchTerminalRows_Errors(t *testing.T) {
	tests := []struct {
		name   string
		status int
		body   string
	}{
		{"server error", http.StatusBadGateway, ""},
		{"not found", http.StatusNotFound, ""},
		{"html body", http.StatusOK, "<html>login</html>"},
		{"object instead of array", http.StatusOK, `{"error":"no sheet"}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tt.status)
				_, _ = w.Write([]byte(tt.body))
			}))
			defer server.Close()

			rows, err := newTestGW(server.URL).FetchTerminalRows(context.Background())

			assert.Error(t, err)
			assert.Nil(t, rows)
		})
	}
}

func TestFetchTerminalRows_NoURL(t *testing.T) {
	_, err := newTestGW("").FetchTerminalRows(context.Background())
	assert.Error(t, err)
}
