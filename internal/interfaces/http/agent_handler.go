package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/ridgepark/estate-crm/internal/application/dto"
	"github.com/ridgepark/estate-crm/internal/application/usecase"
	"github.com/ridgepark/estate-crm/internal/domain"
)

// AgentHandler maneja las peticiones HTTP para Agent (solo admin).
// Las mutaciones sobre un id inexistente responden 200 con cuerpo null, nunca
// error: el registro simplemente ya no está.
type AgentHandler struct {
	uc *usecase.AgentUseCase
}

// NewAgentHandler construye el handler.
func NewAgentHandler(uc *usecase.AgentUseCase) *AgentHandler {
	return &AgentHandler{uc: uc}
}

// List godoc
// @Summary      Listar agentes visibles al corte
// @Tags         agents
// @Security     Bearer
// @Produce      json
// @Param        end  query  string  false  "Corte RFC3339; ausente = todos"
// @Success      200  {array}  dto.AgentResponse
// @Router       /api/agents [get]
func (h *AgentHandler) List(c *fiber.Ctx) error {
	end, err := parseTimeQuery(c, "end")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_DATE", Message: "end debe ser RFC3339"})
	}
	out, err := h.uc.List(c.UserContext(), end)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}

// Create godoc
// @Summary      Dar de alta un agente
// @Tags         agents
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateAgentRequest  true  "Datos del agente"
// @Success      201   {object}  dto.AgentResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/agents [post]
func (h *AgentHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateAgentRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if in.Name == "" || in.Email == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "name y email son requeridos"})
	}
	out, err := h.uc.Create(c.UserContext(), in)
	if err != nil {
		if errors.Is(err, domain.ErrEmailAlreadyExists) {
			return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "DUPLICATE", Message: "el email ya está registrado"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// UpdateCommission godoc
// @Summary      Cambiar la tarifa de comisión
// @Tags         agents
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string  true  "ID del agente"
// @Param        body  body  dto.UpdateCommissionRequest  true  "Nueva tarifa"
// @Success      200   {object}  dto.AgentResponse
// @Router       /api/agents/{id}/commission [put]
func (h *AgentHandler) UpdateCommission(c *fiber.Ctx) error {
	var in dto.UpdateCommissionRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.uc.UpdateCommission(c.UserContext(), c.Params("id"), in.Rate)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}

// UpsertTarget godoc
// @Summary      Crear o actualizar la meta de un rango
// @Tags         agents
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string  true  "ID del agente"
// @Param        body  body  dto.TargetRequest  true  "Meta por rango exacto"
// @Success      200   {object}  dto.AgentResponse
// @Router       /api/agents/{id}/targets [put]
func (h *AgentHandler) UpsertTarget(c *fiber.Ctx) error {
	var in dto.TargetRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if in.StartDate.IsZero() || in.EndDate.IsZero() {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "startDate y endDate son requeridos"})
	}
	out, err := h.uc.UpsertTarget(c.UserContext(), c.Params("id"), in)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}

// RemoveTarget godoc
// @Summary      Eliminar la meta de un rango
// @Tags         agents
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string  true  "ID del agente"
// @Param        body  body  dto.RemoveTargetRequest  true  "Rango exacto de la meta"
// @Success      200   {object}  dto.AgentResponse
// @Router       /api/agents/{id}/targets [delete]
func (h *AgentHandler) RemoveTarget(c *fiber.Ctx) error {
	var in dto.RemoveTargetRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.uc.RemoveTarget(c.UserContext(), c.Params("id"), in.StartDate, in.EndDate)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}

// ResetPassword godoc
// @Summary      Restablecer la contraseña de un agente
// @Tags         agents
// @Security     Bearer
// @Accept       json
// @Param        id    path  string  true  "ID del agente"
// @Param        body  body  dto.ResetPasswordRequest  true  "Nueva contraseña"
// @Success      204
// @Router       /api/agents/{id}/password [put]
func (h *AgentHandler) ResetPassword(c *fiber.Ctx) error {
	var in dto.ResetPasswordRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if in.Password == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "password es requerido"})
	}
	if err := h.uc.ResetPassword(c.UserContext(), c.Params("id"), in.Password); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// ToggleStatus godoc
// @Summary      Activar o desactivar un agente
// @Tags         agents
// @Security     Bearer
// @Produce      json
// @Param        id   path  string  true  "ID del agente"
// @Success      200  {object}  dto.AgentResponse
// @Router       /api/agents/{id}/status [put]
func (h *AgentHandler) ToggleStatus(c *fiber.Ctx) error {
	out, err := h.uc.ToggleStatus(c.UserContext(), c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}

// Delete godoc
// @Summary      Eliminar un agente (permanente, afecta reportes retroactivos)
// @Tags         agents
// @Security     Bearer
// @Param        id  path  string  true  "ID del agente"
// @Success      204
// @Router       /api/agents/{id} [delete]
func (h *AgentHandler) Delete(c *fiber.Ctx) error {
	if err := h.uc.Delete(c.UserContext(), c.Params("id")); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.SendStatus(fiber.StatusNoContent)
}
