package reporting

import (
	"time"

	"github.com/ridgepark/estate-crm/internal/application/dto"
	"github.com/ridgepark/estate-crm/internal/domain/period"
)

// MonthWindow devuelve los límites del mes contable (calendario UTC+6) que
// contiene al instante dado, con su etiqueta y si es el mes en curso.
func MonthWindow(instant, now time.Time) dto.MonthWindowDTO {
	start, end := period.MonthBounds(instant)
	return dto.MonthWindowDTO{
		Start:     start,
		End:       end,
		Label:     period.Label(instant),
		IsCurrent: period.SameMonth(instant, now),
	}
}
