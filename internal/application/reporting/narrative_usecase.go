package reporting

import (
	"context"
	"time"

	"github.com/ridgepark/estate-crm/internal/application/dto"
	"github.com/ridgepark/estate-crm/internal/application/ports"
	"github.com/ridgepark/estate-crm/internal/domain/period"
)

// narrativeTimeout límite para la llamada al proveedor de IA.
const narrativeTimeout = 10 * time.Second

// NarrativeUseCase genera un análisis narrativo del estado de resultados del
// período usando el servicio de IA configurado.
type NarrativeUseCase struct {
	reports *ReportUseCase
	llm     ports.LLMService
}

// NewNarrativeUseCase construye el caso de uso.
func NewNarrativeUseCase(reports *ReportUseCase, llm ports.LLMService) *NarrativeUseCase {
	return &NarrativeUseCase{reports: reports, llm: llm}
}

// Generate arma el reporte de [start, end] y pide al LLM un resumen ejecutivo.
// La etiqueta del período sale del calendario contable (UTC+6) sobre end; con
// rango abierto se etiqueta "All time".
func (uc *NarrativeUseCase) Generate(ctx context.Context, start, end time.Time) (*dto.NarrativeResponse, error) {
	report, err := uc.reports.GetReport(ctx, start, end)
	if err != nil {
		return nil, err
	}

	label := "All time"
	if !end.IsZero() {
		label = period.Label(end)
	}

	ctx, cancel := context.WithTimeout(ctx, narrativeTimeout)
	defer cancel()

	narrative, err := uc.llm.GenerateReportNarrative(ctx, report, label)
	if err != nil {
		return nil, err
	}
	return &dto.NarrativeResponse{Narrative: narrative}, nil
}
