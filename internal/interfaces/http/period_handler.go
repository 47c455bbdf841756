package http

import (
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/ridgepark/estate-crm/internal/application/dto"
	"github.com/ridgepark/estate-crm/internal/application/reporting"
)

// PeriodHandler expone el cálculo del mes contable (calendario UTC+6).
type PeriodHandler struct{}

// NewPeriodHandler construye el handler.
func NewPeriodHandler() *PeriodHandler { return &PeriodHandler{} }

// Month godoc
// @Summary      Límites del mes contable que contiene una fecha
// @Description  El mes se resuelve en el calendario fijo UTC+6 del negocio,
// @Description  de modo que clientes en husos distintos vean el mismo período.
// @Tags         periods
// @Security     Bearer
// @Produce      json
// @Param        date  query  string  false  "Instante RFC3339; ausente = ahora"
// @Success      200   {object}  dto.MonthWindowDTO
// @Router       /api/periods/month [get]
func (h *PeriodHandler) Month(c *fiber.Ctx) error {
	instant, err := parseTimeQuery(c, "date")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_DATE", Message: "date debe ser RFC3339"})
	}
	now := time.Now()
	if instant.IsZero() {
		instant = now
	}
	return c.JSON(reporting.MonthWindow(instant, now))
}
