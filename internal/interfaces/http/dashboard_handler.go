package http

import (
	"github.com/gofiber/fiber/v2"

	appanalytics "github.com/supplysight/supplysight-api/internal/application/analytics"
	"github.com/supplysight/supplysight-api/internal/application/dto"
)

// DashboardHandler maneja el resumen del tablero (público).
type DashboardHandler struct {
	uc *appanalytics.DashboardUseCase
}

// NewDashboardHandler construye el handler.
func NewDashboardHandler(uc *appanalytics.DashboardUseCase) *DashboardHandler {
	return &DashboardHandler{uc: uc}
}

// GetSummary devuelve el resumen compuesto del tablero.
// GET /api/dashboard/summary?range=7d&search=&status=&warehouse=&page=1
//
// Respuesta: DashboardSummaryDTO (total_stock, total_demand, fill_rate,
// chart[], products{items, page}, warehouses[]). Los totales y el fill rate
// se calculan sobre la serie KPI del rango; la página se clampa en servidor.
func (h *DashboardHandler) GetSummary(c *fiber.Ctx) error {
	var in dto.DashboardRequest
	if err := c.QueryParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_QUERY", Message: "parámetros inválidos"})
	}
	summary, err := h.uc.GetSummary(c.Context(), in)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(summary)
}
