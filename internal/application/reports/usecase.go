// Package reports genera el reporte de inventario descargable (PDF).
package reports

import (
	"context"
	"fmt"

	"github.com/supplysight/supplysight-api/internal/domain/inventory"
	"github.com/supplysight/supplysight-api/internal/domain/repository"
)

// InventoryReportUseCase arma los datos del reporte (catálogo completo con
// estados derivados y fill rate agregado) y delega el render al generador.
type InventoryReportUseCase struct {
	productRepo   repository.ProductRepository
	warehouseRepo repository.WarehouseRepository
	generator     InventoryPDFGenerator
}

// NewInventoryReportUseCase construye el caso de uso.
func NewInventoryReportUseCase(
	productRepo repository.ProductRepository,
	warehouseRepo repository.WarehouseRepository,
	generator InventoryPDFGenerator,
) *InventoryReportUseCase {
	return &InventoryReportUseCase{
		productRepo:   productRepo,
		warehouseRepo: warehouseRepo,
		generator:     generator,
	}
}

// Generate produce los bytes del PDF del reporte de inventario.
func (uc *InventoryReportUseCase) Generate(ctx context.Context) ([]byte, error) {
	products, err := uc.productRepo.List()
	if err != nil {
		return nil, fmt.Errorf("reporte: productos: %w", err)
	}
	warehouses, err := uc.warehouseRepo.List()
	if err != nil {
		return nil, fmt.Errorf("reporte: bodegas: %w", err)
	}

	rows := make([]ReportRow, 0, len(products))
	totalStock, totalDemand := 0, 0
	for _, p := range products {
		totalStock += p.Stock
		totalDemand += p.Demand
		rows = append(rows, ReportRow{
			ID:        p.ID,
			Name:      p.Name,
			SKU:       p.SKU,
			Warehouse: p.Warehouse,
			Stock:     p.Stock,
			Demand:    p.Demand,
			Status:    string(inventory.StatusOf(p)),
		})
	}

	summary := ReportSummary{
		TotalStock:  totalStock,
		TotalDemand: totalDemand,
		FillRate:    inventory.FormatFillRate(inventory.FillRate(totalStock, totalDemand)),
		Products:    len(products),
		Warehouses:  len(warehouses),
	}

	pdf, err := uc.generator.GenerateInventoryPDF(ctx, rows, summary)
	if err != nil {
		return nil, fmt.Errorf("reporte: generar PDF: %w", err)
	}
	return pdf, nil
}
