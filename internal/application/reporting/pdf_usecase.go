package reporting

import (
	"context"
	"time"

	"github.com/ridgepark/estate-crm/internal/application/ports"
	"github.com/ridgepark/estate-crm/internal/domain/period"
)

// StatementUseCase exporta el estado de resultados del período como PDF.
type StatementUseCase struct {
	reports   *ReportUseCase
	generator ports.StatementGenerator
}

// NewStatementUseCase construye el caso de uso.
func NewStatementUseCase(reports *ReportUseCase, generator ports.StatementGenerator) *StatementUseCase {
	return &StatementUseCase{reports: reports, generator: generator}
}

// Export sintetiza el reporte de [start, end] y lo renderiza. Devuelve el
// binario del documento y el nombre de archivo sugerido.
func (uc *StatementUseCase) Export(ctx context.Context, start, end time.Time) ([]byte, string, error) {
	report, err := uc.reports.GetReport(ctx, start, end)
	if err != nil {
		return nil, "", err
	}

	label := "All time"
	filename := "income-statement.pdf"
	if !end.IsZero() {
		label = period.Label(end)
		local := end.In(period.ReportingZone)
		filename = "income-statement-" + local.Format("2006-01") + ".pdf"
	}

	doc, err := uc.generator.RenderIncomeStatement(report, label)
	if err != nil {
		return nil, "", err
	}
	return doc, filename, nil
}
