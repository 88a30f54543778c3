// Package inventory contiene las reglas de negocio puras del inventario:
// derivación de estado stock/demanda y cálculo de fill rate.
package inventory

import (
	"github.com/shopspring/decimal"
	"github.com/supplysight/supplysight-api/internal/domain/entity"
)

// Status es el estado derivado de un producto. Nunca se persiste:
// se calcula en cada lectura a partir de stock y demanda.
type Status string

const (
	StatusHealthy  Status = "Healthy"  // stock > demanda
	StatusLow      Status = "Low"      // stock == demanda
	StatusCritical Status = "Critical" // stock < demanda
	StatusInvalid  Status = "Invalid"  // stock o demanda negativos
)

// ValidFilter indica si s es un valor admisible como filtro de consulta.
// "Invalid" no es seleccionable: solo aparece como estado derivado.
func ValidFilter(s string) bool {
	switch Status(s) {
	case StatusHealthy, StatusLow, StatusCritical:
		return true
	}
	return false
}

// StatusOf deriva el estado de un producto según signo y comparación
// de stock y demanda.
func StatusOf(p *entity.Product) Status {
	return StatusFor(p.Stock, p.Demand)
}

// StatusFor deriva el estado para un par stock/demanda.
func StatusFor(stock, demand int) Status {
	switch {
	case stock < 0 || demand < 0:
		return StatusInvalid
	case stock > demand:
		return StatusHealthy
	case stock == demand:
		return StatusLow
	default:
		return StatusCritical
	}
}

// FillRate calcula el porcentaje de demanda cubierta por el stock:
// min(totalStock, totalDemand) / totalDemand * 100, redondeado a un decimal.
// Con demanda cero devuelve 0.0 (no hay demanda que cubrir).
func FillRate(totalStock, totalDemand int) decimal.Decimal {
	if totalDemand <= 0 {
		return decimal.Zero.Round(1)
	}
	covered := totalStock
	if totalDemand < covered {
		covered = totalDemand
	}
	return decimal.NewFromInt(int64(covered)).
		Div(decimal.NewFromInt(int64(totalDemand))).
		Mul(decimal.NewFromInt(100)).
		Round(1)
}

// FormatFillRate presenta el fill rate con un decimal fijo, ej. "87.5".
func FormatFillRate(rate decimal.Decimal) string {
	return rate.StringFixed(1)
}
