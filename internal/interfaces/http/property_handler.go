package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/ridgepark/estate-crm/internal/application/dto"
	"github.com/ridgepark/estate-crm/internal/application/usecase"
	"github.com/ridgepark/estate-crm/internal/domain"
)

// PropertyHandler maneja las peticiones HTTP para Property (protegido).
type PropertyHandler struct {
	uc *usecase.PropertyUseCase
}

// NewPropertyHandler construye el handler.
func NewPropertyHandler(uc *usecase.PropertyUseCase) *PropertyHandler {
	return &PropertyHandler{uc: uc}
}

// List godoc
// @Summary      Listar inmuebles visibles al corte
// @Tags         properties
// @Security     Bearer
// @Produce      json
// @Param        end  query  string  false  "Corte RFC3339; ausente = todos"
// @Success      200  {array}  dto.PropertyResponse
// @Router       /api/properties [get]
func (h *PropertyHandler) List(c *fiber.Ctx) error {
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
// @Summary      Listar un inmueble nuevo
// @Tags         properties
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreatePropertyRequest  true  "Datos del inmueble"
// @Success      201   {object}  dto.PropertyResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/properties [post]
func (h *PropertyHandler) Create(c *fiber.Ctx) error {
	var in dto.CreatePropertyRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if in.Title == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "title es requerido"})
	}
	out, err := h.uc.Create(c.UserContext(), in)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidInput) {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: err.Error()})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// Update godoc
// @Summary      Actualizar un inmueble (merge parcial)
// @Description  Aplica el invariante cantidad⇄estado: 0 fuerza Sold y una
// @Description  cantidad positiva estando Sold regresa a Available.
// @Tags         properties
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string  true  "ID del inmueble"
// @Param        body  body  dto.UpdatePropertyRequest  true  "Campos a aplicar"
// @Success      200   {object}  dto.PropertyResponse
// @Router       /api/properties/{id} [put]
func (h *PropertyHandler) Update(c *fiber.Ctx) error {
	var in dto.UpdatePropertyRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.uc.Update(c.UserContext(), c.Params("id"), in)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidInput) {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: err.Error()})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}

// Delete godoc
// @Summary      Eliminar un inmueble (permanente, afecta reportes retroactivos)
// @Tags         properties
// @Security     Bearer
// @Param        id  path  string  true  "ID del inmueble"
// @Success      204
// @Router       /api/properties/{id} [delete]
func (h *PropertyHandler) Delete(c *fiber.Ctx) error {
	if err := h.uc.Delete(c.UserContext(), c.Params("id")); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.SendStatus(fiber.StatusNoContent)
}
