package dashboard

import (
	"context"
)

// TextGenerator sends one prompt to a text-generation model
//
//go:generate mockgen -destination=mocks/mock_gateway.go -package=mocks github.com/victoreduardo21/drb-operacao/services/dashboard TextGenerator
type TextGenerator interface {
	Generate(ctx context.Context, prompt string) (string, error)
}
