package ports

import (
	"github.com/ridgepark/estate-crm/internal/application/dto"
)

// StatementGenerator define el puerto de salida para renderizar el estado de
// resultados en PDF.
type StatementGenerator interface {
	// RenderIncomeStatement produce el documento binario del reporte con la
	// etiqueta del período en el encabezado.
	RenderIncomeStatement(report *dto.FinancialReportDTO, periodLabel string) ([]byte, error)
}
