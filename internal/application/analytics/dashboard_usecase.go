// Package analytics contiene el caso de uso que compone el resumen del
// tablero: tarjetas de KPIs, gráfica de tendencia y tabla paginada.
package analytics

import (
	"context"
	"fmt"

	"github.com/supplysight/supplysight-api/internal/application/dto"
	"github.com/supplysight/supplysight-api/internal/application/usecase"
	"github.com/supplysight/supplysight-api/internal/domain/inventory"
)

const dashboardPageSize = 10 // filas por página de la tabla de productos

// DashboardUseCase compone la vista del tablero a partir de las consultas
// de productos, bodegas y KPIs. No muta nada: tras una mutación el cliente
// vuelve a pedir el resumen completo (refetch explícito).
type DashboardUseCase struct {
	productUC   *usecase.ProductUseCase
	warehouseUC *usecase.WarehouseUseCase
	kpiUC       *usecase.KPIUseCase
}

// NewDashboardUseCase construye el caso de uso.
func NewDashboardUseCase(
	productUC *usecase.ProductUseCase,
	warehouseUC *usecase.WarehouseUseCase,
	kpiUC *usecase.KPIUseCase,
) *DashboardUseCase {
	return &DashboardUseCase{
		productUC:   productUC,
		warehouseUC: warehouseUC,
		kpiUC:       kpiUC,
	}
}

// GetSummary construye el DashboardSummaryDTO para los parámetros pedidos.
//
// Tres lecturas en paralelo:
//  1. products(filtros)  → tabla paginada
//  2. warehouses()       → códigos del selector
//  3. kpis(range)        → totales, fill rate y gráfica
func (uc *DashboardUseCase) GetSummary(
	ctx context.Context,
	in dto.DashboardRequest,
) (*dto.DashboardSummaryDTO, error) {
	type productsResult struct {
		list *dto.ProductListResponse
		err  error
	}
	type codesResult struct {
		codes []string
		err   error
	}

	productsCh := make(chan productsResult, 1)
	codesCh := make(chan codesResult, 1)
	kpiCh := make(chan []dto.KPIPoint, 1)

	go func() {
		list, err := uc.productUC.List(dto.ProductFilter{
			Search:    in.Search,
			Status:    in.Status,
			Warehouse: in.Warehouse,
		})
		productsCh <- productsResult{list, err}
	}()
	go func() {
		codes, err := uc.warehouseUC.Codes()
		codesCh <- codesResult{codes, err}
	}()
	go func() {
		kpiCh <- uc.kpiUC.Series(in.Range)
	}()

	products := <-productsCh
	codes := <-codesCh
	kpis := <-kpiCh

	if products.err != nil {
		return nil, fmt.Errorf("dashboard: productos: %w", products.err)
	}
	if codes.err != nil {
		return nil, fmt.Errorf("dashboard: bodegas: %w", codes.err)
	}

	// Totales y fill rate sobre la serie KPI del rango
	totalStock, totalDemand := 0, 0
	chart := make([]dto.ChartPoint, len(kpis))
	for i, k := range kpis {
		totalStock += k.Stock
		totalDemand += k.Demand
		chart[i] = dto.ChartPoint{
			Day:    fmt.Sprintf("Day %d", i+1),
			Stock:  k.Stock,
			Demand: k.Demand,
		}
	}
	fillRate := inventory.FormatFillRate(inventory.FillRate(totalStock, totalDemand))

	return &dto.DashboardSummaryDTO{
		TotalStock:  totalStock,
		TotalDemand: totalDemand,
		FillRate:    fillRate,
		Chart:       chart,
		Products:    paginate(products.list.Items, in.Page),
		Warehouses:  codes.codes,
	}, nil
}

// paginate corta los items en páginas de tamaño fijo y ajusta la página
// pedida al rango [1, totalPages]. Con cero items devuelve una página vacía.
func paginate(items []dto.ProductResponse, page int) dto.ProductPage {
	totalPages := (len(items) + dashboardPageSize - 1) / dashboardPageSize
	if totalPages < 1 {
		totalPages = 1
	}
	if page < 1 {
		page = 1
	}
	if page > totalPages {
		page = totalPages
	}

	start := (page - 1) * dashboardPageSize
	end := start + dashboardPageSize
	if start > len(items) {
		start = len(items)
	}
	if end > len(items) {
		end = len(items)
	}

	return dto.ProductPage{
		Items: items[start:end],
		Page: dto.PageResponse{
			Page:       page,
			PageSize:   dashboardPageSize,
			TotalPages: totalPages,
			TotalItems: len(items),
		},
	}
}
