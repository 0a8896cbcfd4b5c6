package newrelic

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/victoreduardo21/drb-operacao/internal/pkg/models"
)

func TestInitNewRelic_Disabled(t *testing.T) {
	cfg := &models.Config{}
	assert.Nil(t, InitNewRelic(cfg))

	cfg.NewRelic.Enabled = true
	assert.Nil(t, InitNewRelic(cfg), "missing license key keeps the agent off")
}

func TestInstrumentHTTPRequest_NoTransaction(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "http://sheet.example.com/exec", nil)
	called := false

	resp, err := InstrumentHTTPRequest(context.Background(), req, func() (*http.Response, error) {
		called = true
		return &http.Response{StatusCode: http.StatusOK}, nil
	})

	require.NoError(t, err)
	assert.True(t, called)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
}

func TestWithExternalSegment_PassesError(t *testing.T) {
	boom := errors.New("boom")
	err := WithExternalSegment(context.Background(), "genai", "GenerateContent", "", func() error {
		return boom
	})
	assert.ErrorIs(t, err, boom)
	assert.NoError(t, WithSegment(context.Background(), "noop", func() error { return nil }))
}
