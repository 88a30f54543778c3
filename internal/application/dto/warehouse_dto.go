package dto

// WarehouseResponse salida de una bodega.
type WarehouseResponse struct {
	ID      string `json:"id"`
	Code    string `json:"code"`
	City    string `json:"city"`
	Country string `json:"country"`
}

// WarehouseListResponse lista completa de bodegas más los códigos únicos
// ordenados, tal como los consume el selector de filtros.
type WarehouseListResponse struct {
	Items []WarehouseResponse `json:"items"`
	Codes []string            `json:"codes"`
}
