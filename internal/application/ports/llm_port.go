package ports

import (
	"context"

	"github.com/ridgepark/estate-crm/internal/application/dto"
)

// LLMService define el puerto de salida para el generador de narrativa.
// Cualquier adaptador (Anthropic, Gemini, mock) debe implementar esta interfaz;
// la aplicación solo conoce este contrato, no la implementación concreta.
type LLMService interface {
	// GenerateReportNarrative recibe el estado de resultados ya sintetizado y
	// la etiqueta del período, y devuelve un análisis en prosa.
	// El contexto debe llevar un timeout para evitar bloqueos en llamadas externas.
	GenerateReportNarrative(
		ctx context.Context,
		report *dto.FinancialReportDTO,
		periodLabel string,
	) (string, error)
}
