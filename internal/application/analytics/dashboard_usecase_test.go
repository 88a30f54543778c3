package analytics_test

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/supplysight/supplysight-api/internal/application/analytics"
	"github.com/supplysight/supplysight-api/internal/application/dto"
	"github.com/supplysight/supplysight-api/internal/application/usecase"
	"github.com/supplysight/supplysight-api/internal/domain/entity"
	"github.com/supplysight/supplysight-api/internal/infrastructure/memory"
)

func newDashboardUC(t *testing.T, store *memory.Store) *analytics.DashboardUseCase {
	t.Helper()
	return analytics.NewDashboardUseCase(
		usecase.NewProductUseCase(store.Products()),
		usecase.NewWarehouseUseCase(store.Warehouses()),
		usecase.NewKPIUseCase(),
	)
}

func TestDashboardSummary_ComponeLasTresConsultas(t *testing.T) {
	store := memory.NewSeededStore()
	uc := newDashboardUC(t, store)

	summary, err := uc.GetSummary(context.Background(), dto.DashboardRequest{Range: "7d"})
	require.NoError(t, err)

	assert.Len(t, summary.Chart, 7)
	assert.Equal(t, []string{"BLR-A", "DEL-B", "PNQ-C"}, summary.Warehouses)
	assert.Equal(t, 4, summary.Products.Page.TotalItems)
	assert.Len(t, summary.Products.Items, 4)
}

func TestDashboardSummary_TotalesSobreLaSerieKPI(t *testing.T) {
	store := memory.NewSeededStore()
	uc := newDashboardUC(t, store)

	summary, err := uc.GetSummary(context.Background(), dto.DashboardRequest{Range: "14d"})
	require.NoError(t, err)

	require.Len(t, summary.Chart, 14)
	stock, demand := 0, 0
	for i, p := range summary.Chart {
		assert.Equal(t, fmt.Sprintf("Day %d", i+1), p.Day)
		stock += p.Stock
		demand += p.Demand
	}
	assert.Equal(t, stock, summary.TotalStock, "los totales salen de la misma serie de la gráfica")
	assert.Equal(t, demand, summary.TotalDemand)
	assert.NotEmpty(t, summary.FillRate)
}

func TestDashboardSummary_FiltrosLleganALaTabla(t *testing.T) {
	store := memory.NewSeededStore()
	uc := newDashboardUC(t, store)

	summary, err := uc.GetSummary(context.Background(), dto.DashboardRequest{
		Warehouse: "BLR-A",
		Status:    "Critical",
	})
	require.NoError(t, err)

	require.Len(t, summary.Products.Items, 1)
	assert.Equal(t, "P-1002", summary.Products.Items[0].ID)
	assert.Equal(t, []string{"BLR-A", "DEL-B", "PNQ-C"}, summary.Warehouses,
		"el selector de bodegas nunca se filtra")
}

func TestDashboardSummary_SinItemsPaginaVacia(t *testing.T) {
	store := memory.NewStore()
	uc := newDashboardUC(t, store)

	summary, err := uc.GetSummary(context.Background(), dto.DashboardRequest{})
	require.NoError(t, err)

	assert.Regexp(t, `^\d+\.\d$`, summary.FillRate,
		"el fill rate siempre lleva un decimal")
	assert.Empty(t, summary.Products.Items)
	assert.Equal(t, 1, summary.Products.Page.Page)
	assert.Equal(t, 1, summary.Products.Page.TotalPages)
	assert.Equal(t, 0, summary.Products.Page.TotalItems)
}

// ──────────────────────────────────────────────────────────────────────────────
// Paginación de la tabla (tamaño fijo 10, página clampeada)
// ──────────────────────────────────────────────────────────────────────────────

func seedManyProducts(t *testing.T, store *memory.Store, n int) {
	t.Helper()
	require.NoError(t, store.Warehouses().Create(&entity.Warehouse{ID: "W1", Code: "BLR-A", City: "Bangalore", Country: "India"}))
	repo := store.Products()
	for i := 0; i < n; i++ {
		require.NoError(t, repo.Create(&entity.Product{
			ID:        fmt.Sprintf("P-%d", 2000+i),
			Name:      fmt.Sprintf("Item %d", i),
			SKU:       fmt.Sprintf("SKU-%d", i),
			Warehouse: "BLR-A",
			Stock:     10,
			Demand:    5,
		}))
	}
}

func TestDashboardSummary_Paginacion(t *testing.T) {
	store := memory.NewStore()
	seedManyProducts(t, store, 25)
	uc := newDashboardUC(t, store)
	ctx := context.Background()

	// página 1: los primeros 10 en orden de inserción
	summary, err := uc.GetSummary(ctx, dto.DashboardRequest{Page: 1})
	require.NoError(t, err)
	require.Len(t, summary.Products.Items, 10)
	assert.Equal(t, "P-2000", summary.Products.Items[0].ID)
	assert.Equal(t, 3, summary.Products.Page.TotalPages)
	assert.Equal(t, 25, summary.Products.Page.TotalItems)

	// última página: el resto
	summary, err = uc.GetSummary(ctx, dto.DashboardRequest{Page: 3})
	require.NoError(t, err)
	require.Len(t, summary.Products.Items, 5)
	assert.Equal(t, "P-2020", summary.Products.Items[0].ID)
}

func TestDashboardSummary_PaginaFueraDeRangoSeClampa(t *testing.T) {
	store := memory.NewStore()
	seedManyProducts(t, store, 25)
	uc := newDashboardUC(t, store)
	ctx := context.Background()

	// por encima: cae en la última página
	summary, err := uc.GetSummary(ctx, dto.DashboardRequest{Page: 99})
	require.NoError(t, err)
	assert.Equal(t, 3, summary.Products.Page.Page)
	assert.Len(t, summary.Products.Items, 5)

	// por debajo (cero o negativa): cae en la primera
	summary, err = uc.GetSummary(ctx, dto.DashboardRequest{Page: -1})
	require.NoError(t, err)
	assert.Equal(t, 1, summary.Products.Page.Page)
	assert.Equal(t, "P-2000", summary.Products.Items[0].ID)
}
