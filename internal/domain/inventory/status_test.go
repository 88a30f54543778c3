package inventory_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/supplysight/supplysight-api/internal/domain/entity"
	"github.com/supplysight/supplysight-api/internal/domain/inventory"
)

// ──────────────────────────────────────────────────────────────────────────────
// Derivación de estado
// ──────────────────────────────────────────────────────────────────────────────

func TestStatusFor_MatrizCompleta(t *testing.T) {
	cases := []struct {
		name          string
		stock, demand int
		want          inventory.Status
	}{
		{"stock mayor que demanda", 180, 120, inventory.StatusHealthy},
		{"stock igual a demanda", 80, 80, inventory.StatusLow},
		{"stock menor que demanda", 24, 120, inventory.StatusCritical},
		{"ambos cero cuentan como iguales", 0, 0, inventory.StatusLow},
		{"stock cero con demanda", 0, 50, inventory.StatusCritical},
		{"demanda cero con stock", 50, 0, inventory.StatusHealthy},
		{"stock negativo", -1, 100, inventory.StatusInvalid},
		{"demanda negativa", 100, -1, inventory.StatusInvalid},
		{"ambos negativos", -5, -5, inventory.StatusInvalid},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, inventory.StatusFor(tc.stock, tc.demand))
		})
	}
}

func TestStatusOf_UsaStockYDemandaDelProducto(t *testing.T) {
	p := &entity.Product{ID: "P-1001", Stock: 180, Demand: 120}
	assert.Equal(t, inventory.StatusHealthy, inventory.StatusOf(p))

	p.Demand = 300
	assert.Equal(t, inventory.StatusCritical, inventory.StatusOf(p),
		"el estado se deriva en cada lectura, no se cachea")
}

func TestValidFilter_InvalidNoEsSeleccionable(t *testing.T) {
	assert.True(t, inventory.ValidFilter("Healthy"))
	assert.True(t, inventory.ValidFilter("Low"))
	assert.True(t, inventory.ValidFilter("Critical"))

	assert.False(t, inventory.ValidFilter("Invalid"),
		"Invalid solo existe como estado derivado, no como filtro")
	assert.False(t, inventory.ValidFilter("healthy"), "el filtro distingue mayúsculas")
	assert.False(t, inventory.ValidFilter(""))
	assert.False(t, inventory.ValidFilter("All"))
}

// ──────────────────────────────────────────────────────────────────────────────
// Fill rate
// ──────────────────────────────────────────────────────────────────────────────

func TestFillRate_CasosBase(t *testing.T) {
	cases := []struct {
		name          string
		stock, demand int
		want          string
	}{
		{"cobertura parcial", 334, 400, "83.5"},
		{"stock por encima de la demanda se capa al 100", 500, 400, "100.0"},
		{"cobertura exacta", 400, 400, "100.0"},
		{"demanda cero", 120, 0, "0.0"},
		{"sin stock ni demanda", 0, 0, "0.0"},
		{"un decimal redondeado", 1, 3, "33.3"},
		{"dos tercios", 2, 3, "66.7"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := inventory.FormatFillRate(inventory.FillRate(tc.stock, tc.demand))
			assert.Equal(t, tc.want, got)
		})
	}
}

// El catálogo demo completo: stock 180+50+80+24=334, demanda 120+80+80+120=400.
func TestFillRate_CatalogoDemo(t *testing.T) {
	got := inventory.FormatFillRate(inventory.FillRate(334, 400))
	assert.Equal(t, "83.5", got)
}

func TestFillRate_SiempreUnDecimal(t *testing.T) {
	assert.Equal(t, "50.0", inventory.FormatFillRate(inventory.FillRate(1, 2)),
		"valores exactos también se presentan con un decimal")
}
