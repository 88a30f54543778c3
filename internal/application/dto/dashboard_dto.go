package dto

// DashboardRequest parámetros de GET /api/dashboard/summary.
// Range acepta 7d/14d/30d; los filtros siguen la semántica de ProductFilter;
// Page se ajusta al rango válido en el servidor.
type DashboardRequest struct {
	Range     string `query:"range"`
	Search    string `query:"search"`
	Status    string `query:"status"`
	Warehouse string `query:"warehouse"`
	Page      int    `query:"page"`
}

// ChartPoint un punto etiquetado de la gráfica de tendencia.
type ChartPoint struct {
	Day    string `json:"day"` // "Day 1", "Day 2", ...
	Stock  int    `json:"stock"`
	Demand int    `json:"demand"`
}

// ProductPage página de productos del tablero (tamaño fijo 10, clampeada).
type ProductPage struct {
	Items []ProductResponse `json:"items"`
	Page  PageResponse      `json:"page"`
}

// DashboardSummaryDTO respuesta de GET /api/dashboard/summary.
// Totales y fill rate se calculan sobre la serie KPI del rango pedido.
type DashboardSummaryDTO struct {
	TotalStock  int          `json:"total_stock"`
	TotalDemand int          `json:"total_demand"`
	FillRate    string       `json:"fill_rate"` // porcentaje con un decimal, ej. "87.5"
	Chart       []ChartPoint `json:"chart"`
	Products    ProductPage  `json:"products"`
	Warehouses  []string     `json:"warehouses"` // códigos para el selector de filtros
}
