package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/supplysight/supplysight-api/internal/application/dto"
	appinventory "github.com/supplysight/supplysight-api/internal/application/inventory"
	"github.com/supplysight/supplysight-api/internal/domain"
)

// InventoryHandler maneja las mutaciones de stock/demanda (protegido, rol admin).
type InventoryHandler struct {
	uc *appinventory.StockUseCase
}

// NewInventoryHandler construye el handler.
func NewInventoryHandler(uc *appinventory.StockUseCase) *InventoryHandler {
	return &InventoryHandler{uc: uc}
}

// UpdateDemand godoc
// @Summary      Fijar la demanda de un producto
// @Tags         inventory
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string  true  "ID del producto"
// @Param        body  body  dto.UpdateDemandRequest  true  "Nueva demanda (>= 0)"
// @Success      200   {object}  dto.ProductResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/products/{id}/demand [put]
func (h *InventoryHandler) UpdateDemand(c *fiber.Ctx) error {
	id := c.Params("id")
	if id == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "MISSING_ID", Message: "id es requerido"})
	}
	var in dto.UpdateDemandRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.uc.UpdateDemand(c.Context(), id, in.Demand)
	if err != nil {
		return mutationError(c, err)
	}
	return c.JSON(out)
}

// Transfer godoc
// @Summary      Transferir stock de un SKU entre bodegas
// @Tags         inventory
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.TransferRequest  true  "id, from, to, qty"
// @Success      200   {object}  dto.ProductResponse  "Producto ORIGEN mutado"
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/transfers [post]
func (h *InventoryHandler) Transfer(c *fiber.Ctx) error {
	var in dto.TransferRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.uc.Transfer(c.Context(), in)
	if err != nil {
		return mutationError(c, err)
	}
	return c.JSON(out)
}

// mutationError mapea errores de dominio a respuestas HTTP.
func mutationError(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, domain.ErrInvalidInput):
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: err.Error()})
	case errors.Is(err, domain.ErrNotFound):
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: err.Error()})
	case errors.Is(err, domain.ErrInsufficientStock):
		return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "INSUFFICIENT_STOCK", Message: err.Error()})
	default:
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
}
