package gateway

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/victoreduardo21/drb-operacao/internal/pkg/logger"
	"github.com/victoreduardo21/drb-operacao/internal/pkg/models"
	nrpkg "github.com/victoreduardo21/drb-operacao/internal/pkg/newrelic"
	"google.golang.org/genai"
)

const geminiEndpoint = "https://generativelanguage.googleapis.com"

// ErrMissingAPIKey is returned when no Gemini key is configured
var ErrMissingAPIKey = errors.New("gemini api key is required")

// GeminiGW generates text with the Gemini API
type GeminiGW struct {
	client      *genai.Client
	model       string
	temperature float32
	timeout     time.Duration
}

// NewGeminiGW creates a Gemini gateway
func NewGeminiGW(ctx context.Context, cfg models.GeminiConfig) (*GeminiGW, error) {
	if cfg.APIKey == "" {
		return nil, ErrMissingAPIKey
	}
	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  cfg.APIKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create genai client: %w", err)
	}

	model := cfg.Model
	if model == "" {
		model = "gemini-2.5-flash"
	}
	return &GeminiGW{
		client:      client,
		model:       model,
		temperature: cfg.Temperature,
		timeout:     cfg.Timeout,
	}, nil
}

// Generate sends prompt and returns the response text, which may be empty
func (gw *GeminiGW) Generate(ctx context.Context, prompt string) (string, error) {
	if gw.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, gw.timeout)
		defer cancel()
	}

	var text string
	err := nrpkg.WithExternalSegment(ctx, "genai", "GenerateContent", geminiEndpoint, func() error {
		resp, err := gw.client.Models.GenerateContent(ctx, gw.model, genai.Text(prompt), &genai.GenerateContentConfig{
			Temperature: genai.Ptr(gw.temperature),
		})
		if err != nil {
			return err
		}
		text = resp.Text()
		return nil
	})
	if err != nil {
		logger.WarnCtx(ctx, "Gemini request failed",
			logger.String("model", gw.model),
			logger.ErrorField(err))
		return "", fmt.Errorf("failed to generate content: %w", err)
	}
	return text, nil
}
