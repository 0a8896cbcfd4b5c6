package usecase

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/victoreduardo21/drb-operacao/internal/pkg/logger"
	"github.com/victoreduardo21/drb-operacao/services/dashboard"
)

const promptTemplate = `Atue como o Gerente Operacional Sênior da DRB Logística.

Analise os dados operacionais abaixo (JSON) e forneça um relatório tático de 3 pontos curtos e diretos.
Não use formatação complexa (markdown), use apenas texto corrido com quebras de linha.

Foco da análise:
1. Identificar gargalos (ex: falta de motoristas livres).
2. Eficiência dos Terminais.
3. Ação recomendada imediata para o operador.

Dados: %s`

// BuildPrompt embeds the digest in the analyst instructions
func BuildPrompt(digest dashboard.Digest) (string, error) {
	raw, err := json.Marshal(digest)
	if err != nil {
		return "", fmt.Errorf("failed to encode digest: %w", err)
	}
	return fmt.Sprintf(promptTemplate, raw), nil
}

// Analyze asks the analyst for a tactical report on the current snapshot
func (uc *DashboardUC) Analyze(ctx context.Context) dashboard.Analysis {
	result := dashboard.Analysis{GeneratedAt: uc.now()}

	if uc.generator == nil {
		result.Text = dashboard.AnalysisUnavailable
		return result
	}

	prompt, err := BuildPrompt(uc.Digest())
	if err != nil {
		logger.ErrorCtx(ctx, "Failed to build analysis prompt", logger.ErrorField(err))
		result.Text = dashboard.AnalysisFailed
		return result
	}

	text, err := uc.generator.Generate(ctx, prompt)
	switch {
	case err != nil:
		logger.WarnCtx(ctx, "Operations analysis failed", logger.ErrorField(err))
		result.Text = dashboard.AnalysisFailed
	case strings.TrimSpace(text) == "":
		result.Text = dashboard.AnalysisUnavailable
	default:
		result.Text = text
		result.Available = true
	}
	return result
}
