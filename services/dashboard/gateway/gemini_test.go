package gateway

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/victoreduardo21/drb-operacao/internal/pkg/models"
)

func TestNewGeminiGW_RequiresKey(t *testing.T) {
	gw, err := NewGeminiGW(context.Background(), models.GeminiConfig{Model: "gemini-2.5-flash"})

	assert.ErrorIs(t, err, ErrMissingAPIKey)
	assert.Nil(t, gw)
}

func TestNewGeminiGW_DefaultModel(t *testing.T) {
	gw, err := NewGeminiGW(context.Background(), models.GeminiConfig{APIKey: "test-key", Temperature: 0.4})

	if assert.NoError(t, err) {
		assert.Equal(t, "gemini-2.5-flash", gw.model)
		assert.Equal(t, float32(0.4), gw.temperature)
	}
}
