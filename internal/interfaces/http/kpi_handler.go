package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/supplysight/supplysight-api/internal/application/usecase"
)

// KPIHandler maneja la serie KPI del tablero (público).
type KPIHandler struct {
	uc *usecase.KPIUseCase
}

// NewKPIHandler construye el handler.
func NewKPIHandler(uc *usecase.KPIUseCase) *KPIHandler {
	return &KPIHandler{uc: uc}
}

// List godoc
// @Summary      Serie diaria stock vs demanda
// @Tags         kpis
// @Produce      json
// @Param        range  query  string  false  "7d | 14d | 30d (default 7d)"
// @Success      200  {array}  dto.KPIPoint
// @Router       /api/kpis [get]
func (h *KPIHandler) List(c *fiber.Ctx) error {
	rangeToken := c.Query("range", usecase.KPIRange7d)
	return c.JSON(h.uc.Series(rangeToken))
}
