package dto

// ProductFilter filtros de consulta de productos. Los tres son opcionales;
// el centinela "All" en Status o Warehouse equivale a no filtrar.
type ProductFilter struct {
	Search    string `query:"search"`
	Status    string `query:"status"`
	Warehouse string `query:"warehouse"`
}

// ProductResponse salida de un producto con su estado derivado.
type ProductResponse struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	SKU       string `json:"sku"`
	Warehouse string `json:"warehouse"`
	Stock     int    `json:"stock"`
	Demand    int    `json:"demand"`
	Status    string `json:"status"`
}

// ProductListResponse lista de productos en orden de inserción.
type ProductListResponse struct {
	Items []ProductResponse `json:"items"`
	Total int               `json:"total"`
}
