package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/ridgepark/estate-crm/internal/application/dto"
	"github.com/ridgepark/estate-crm/internal/application/usecase"
	"github.com/ridgepark/estate-crm/internal/domain"
)

// MessageHandler maneja el chat interno (protegido). El usuario autenticado
// actúa siempre como emisor o receptor según la operación.
type MessageHandler struct {
	uc *usecase.MessageUseCase
}

// NewMessageHandler construye el handler.
func NewMessageHandler(uc *usecase.MessageUseCase) *MessageHandler {
	return &MessageHandler{uc: uc}
}

// List godoc
// @Summary      Conversaciones del usuario autenticado (orden cronológico)
// @Tags         messages
// @Security     Bearer
// @Produce      json
// @Success      200  {array}  dto.MessageResponse
// @Router       /api/messages [get]
func (h *MessageHandler) List(c *fiber.Ctx) error {
	out, err := h.uc.ListByUser(c.UserContext(), GetUserID(c))
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}

// Send godoc
// @Summary      Enviar un mensaje
// @Tags         messages
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.SendMessageRequest  true  "Mensaje"
// @Success      201   {object}  dto.MessageResponse
// @Router       /api/messages [post]
func (h *MessageHandler) Send(c *fiber.Ctx) error {
	var in dto.SendMessageRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if in.ToID == "" || (in.Text == "" && len(in.Images) == 0) {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "toId y contenido son requeridos"})
	}
	out, err := h.uc.Send(c.UserContext(), GetUserID(c), in)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// Edit godoc
// @Summary      Editar el texto de un mensaje propio
// @Tags         messages
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string  true  "ID del mensaje"
// @Param        body  body  dto.EditMessageRequest  true  "Nuevo texto"
// @Success      200   {object}  dto.MessageResponse
// @Failure      403   {object}  dto.ErrorResponse
// @Router       /api/messages/{id} [put]
func (h *MessageHandler) Edit(c *fiber.Ctx) error {
	var in dto.EditMessageRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.uc.Edit(c.UserContext(), c.Params("id"), GetUserID(c), in.Text)
	if err != nil {
		if errors.Is(err, domain.ErrForbidden) {
			return c.Status(fiber.StatusForbidden).JSON(dto.ErrorResponse{Code: "FORBIDDEN", Message: "solo el emisor puede editar el mensaje"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}

// Delete godoc
// @Summary      Eliminar un mensaje
// @Tags         messages
// @Security     Bearer
// @Param        id  path  string  true  "ID del mensaje"
// @Success      204
// @Router       /api/messages/{id} [delete]
func (h *MessageHandler) Delete(c *fiber.Ctx) error {
	if err := h.uc.Delete(c.UserContext(), c.Params("id")); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// MarkRead godoc
// @Summary      Marcar mensajes recibidos como leídos
// @Tags         messages
// @Security     Bearer
// @Accept       json
// @Param        body  body  dto.MarkReadRequest  true  "IDs de mensajes"
// @Success      204
// @Router       /api/messages/read [post]
func (h *MessageHandler) MarkRead(c *fiber.Ctx) error {
	var in dto.MarkReadRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if err := h.uc.MarkRead(c.UserContext(), GetUserID(c), in.MessageIDs); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.SendStatus(fiber.StatusNoContent)
}
