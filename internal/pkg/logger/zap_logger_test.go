package logger

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newBufferLogger(t *testing.T, level string) (*ZapLogger, *bytes.Buffer) {
	t.Helper()
	buf := &bytes.Buffer{}
	zl, err := NewZapLogger(ZapConfig{Level: level, Service: "test-svc", Output: buf}, nil)
	require.NoError(t, err)
	return zl, buf
}

func lastEntry(t *testing.T, buf *bytes.Buffer) map[string]interface{} {
	t.Helper()
	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.NotEmpty(t, lines)
	var entry map[string]interface{}
	require.NoError(t, json.Unmarshal([]byte(lines[len(lines)-1]), &entry))
	return entry
}

func TestNewZapLogger_LevelFiltering(t *testing.T) {
	zl, buf := newBufferLogger(t, "warn")

	zl.Info("hidden")
	assert.Empty(t, buf.String())

	zl.Warn("shown", String("k", "v"))
	entry := lastEntry(t, buf)
	assert.Equal(t, "warn", entry["level"])
	assert.Equal(t, "shown", entry["message"])
	assert.Equal(t, "v", entry["k"])
}

func TestNewZapLogger_InvalidLevelDefaultsToInfo(t *testing.T) {
	zl, buf := newBufferLogger(t, "verbose")

	zl.Debug("hidden")
	assert.Empty(t, buf.String())
	zl.Info("shown")
	assert.Equal(t, "info", lastEntry(t, buf)["level"])
}

func TestLogHTTPRequest_LevelByStatus(t *testing.T) {
	tests := []struct {
		name   string
		status int
		err    error
		level  string
		msg    string
	}{
		{"success", http.StatusOK, nil, "info", "Request processed"},
		{"client error", http.StatusNotFound, nil, "warn", "Client error"},
		{"server error", http.StatusInternalServerError, errors.New("boom"), "error", "Server error"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			zl, buf := newBufferLogger(t, "debug")
			zl.LogHTTPRequest(nil, "GET", "/api/v1/trips", "127.0.0.1", "u-1", "req-1", tt.status, 15*time.Millisecond, tt.err)

			entry := lastEntry(t, buf)
			assert.Equal(t, tt.level, entry["level"])
			assert.Equal(t, tt.msg, entry["message"])
			assert.Equal(t, "test-svc", entry["service"])
			assert.Equal(t, float64(tt.status), entry["status"])
			assert.Equal(t, "req-1", entry["request_id"])
		})
	}
}

func TestZapEchoMiddleware(t *testing.T) {
	zl, buf := newBufferLogger(t, "info")
	e := echo.New()
	e.Use(ZapEchoMiddleware(zl))
	e.GET("/ok", func(c echo.Context) error {
		c.Set("user_id", "u-admin")
		return c.String(http.StatusOK, "ok")
	})
	e.GET("/fail", func(c echo.Context) error {
		return echo.NewHTTPError(http.StatusBadRequest, "bad")
	})

	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/ok?x=1", nil))
	entry := lastEntry(t, buf)
	assert.Equal(t, "/ok?x=1", entry["path"])
	assert.Equal(t, "u-admin", entry["user_id"])
	assert.Equal(t, "info", entry["level"])

	rec = httptest.NewRecorder()
	e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/fail", nil))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	entry = lastEntry(t, buf)
	assert.Equal(t, float64(http.StatusBadRequest), entry["status"])
	assert.Equal(t, "anonymous", entry["user_id"])
	assert.Equal(t, "warn", entry["level"])
}

func TestGlobalLogger(t *testing.T) {
	zl, buf := newBufferLogger(t, "info")
	prev := GetGlobalLogger()
	SetGlobalLogger(zl)
	t.Cleanup(func() { SetGlobalLogger(prev) })

	Info("global hello", Int("n", 3))
	entry := lastEntry(t, buf)
	assert.Equal(t, "global hello", entry["message"])
	assert.Equal(t, float64(3), entry["n"])
}
