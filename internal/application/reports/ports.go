package reports

import "context"

// ReportRow una fila del reporte de inventario, ya con su estado derivado.
type ReportRow struct {
	ID        string
	Name      string
	SKU       string
	Warehouse string
	Stock     int
	Demand    int
	Status    string
}

// ReportSummary agregados del catálogo para el encabezado del reporte.
type ReportSummary struct {
	TotalStock  int
	TotalDemand int
	FillRate    string // porcentaje con un decimal
	Products    int
	Warehouses  int
}

// InventoryPDFGenerator renderiza el reporte de inventario y devuelve el PDF.
type InventoryPDFGenerator interface {
	GenerateInventoryPDF(ctx context.Context, rows []ReportRow, summary ReportSummary) ([]byte, error)
}
