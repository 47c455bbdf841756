package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/ridgepark/estate-crm/internal/application/dto"
	"github.com/ridgepark/estate-crm/internal/application/reporting"
)

// FinanceHandler expone estadísticas, libro manual, estado de resultados,
// narrativa IA y exportación PDF.
type FinanceHandler struct {
	statsUC     *reporting.StatsUseCase
	configUC    *reporting.FinancialConfigUseCase
	reportUC    *reporting.ReportUseCase
	narrativeUC *reporting.NarrativeUseCase
	statementUC *reporting.StatementUseCase
}

// NewFinanceHandler construye el handler.
func NewFinanceHandler(
	statsUC *reporting.StatsUseCase,
	configUC *reporting.FinancialConfigUseCase,
	reportUC *reporting.ReportUseCase,
	narrativeUC *reporting.NarrativeUseCase,
	statementUC *reporting.StatementUseCase,
) *FinanceHandler {
	return &FinanceHandler{
		statsUC:     statsUC,
		configUC:    configUC,
		reportUC:    reportUC,
		narrativeUC: narrativeUC,
		statementUC: statementUC,
	}
}

// GetStats godoc
// @Summary      Métricas del dashboard para el período
// @Tags         finance
// @Security     Bearer
// @Produce      json
// @Param        start  query  string  false  "Inicio RFC3339"
// @Param        end    query  string  false  "Fin RFC3339"
// @Success      200    {object}  dto.StatsDTO
// @Router       /api/stats [get]
func (h *FinanceHandler) GetStats(c *fiber.Ctx) error {
	start, end, err := parseRangeQuery(c)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_DATE", Message: "start y end deben ser RFC3339"})
	}
	out, err := h.statsUC.GetStats(c.UserContext(), start, end)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}

// GetConfig godoc
// @Summary      Libro manual vigente (en ceros si el corte precede al negocio)
// @Tags         finance
// @Security     Bearer
// @Produce      json
// @Param        end  query  string  false  "Corte RFC3339"
// @Success      200  {object}  dto.FinancialConfigDTO
// @Router       /api/financial-config [get]
func (h *FinanceHandler) GetConfig(c *fiber.Ctx) error {
	end, err := parseTimeQuery(c, "end")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_DATE", Message: "end debe ser RFC3339"})
	}
	out, err := h.configUC.Get(c.UserContext(), end)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}

// UpdateConfig godoc
// @Summary      Reemplazar el libro manual completo (solo admin)
// @Description  Rubros no numéricos se coaccionan a 0 en lugar de rechazarse.
// @Tags         finance
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.UpdateFinancialConfigRequest  true  "Libro manual"
// @Success      200   {object}  dto.FinancialConfigDTO
// @Router       /api/financial-config [put]
func (h *FinanceHandler) UpdateConfig(c *fiber.Ctx) error {
	var in dto.UpdateFinancialConfigRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.configUC.Update(c.UserContext(), in)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}

// GetReport godoc
// @Summary      Estado de resultados del período
// @Tags         finance
// @Security     Bearer
// @Produce      json
// @Param        start  query  string  false  "Inicio RFC3339"
// @Param        end    query  string  false  "Fin RFC3339"
// @Success      200    {object}  dto.FinancialReportDTO
// @Router       /api/financial-report [get]
func (h *FinanceHandler) GetReport(c *fiber.Ctx) error {
	start, end, err := parseRangeQuery(c)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_DATE", Message: "start y end deben ser RFC3339"})
	}
	out, err := h.reportUC.GetReport(c.UserContext(), start, end)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}

// GetNarrative godoc
// @Summary      Análisis narrativo del reporte generado por IA
// @Tags         finance
// @Security     Bearer
// @Produce      json
// @Param        start  query  string  false  "Inicio RFC3339"
// @Param        end    query  string  false  "Fin RFC3339"
// @Success      200    {object}  dto.NarrativeResponse
// @Failure      502    {object}  dto.ErrorResponse
// @Router       /api/financial-report/narrative [get]
func (h *FinanceHandler) GetNarrative(c *fiber.Ctx) error {
	start, end, err := parseRangeQuery(c)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_DATE", Message: "start y end deben ser RFC3339"})
	}
	out, err := h.narrativeUC.Generate(c.UserContext(), start, end)
	if err != nil {
		return c.Status(fiber.StatusBadGateway).JSON(dto.ErrorResponse{Code: "AI_UNAVAILABLE", Message: err.Error()})
	}
	return c.JSON(out)
}

// ExportPDF godoc
// @Summary      Exportar el estado de resultados como PDF
// @Tags         finance
// @Security     Bearer
// @Produce      application/pdf
// @Param        start  query  string  false  "Inicio RFC3339"
// @Param        end    query  string  false  "Fin RFC3339"
// @Success      200    {file}  binary
// @Router       /api/financial-report/pdf [get]
func (h *FinanceHandler) ExportPDF(c *fiber.Ctx) error {
	start, end, err := parseRangeQuery(c)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_DATE", Message: "start y end deben ser RFC3339"})
	}
	doc, filename, err := h.statementUC.Export(c.UserContext(), start, end)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="`+filename+`"`)
	return c.Send(doc)
}
