package dto

// UpdateDemandRequest body para PUT /api/products/{id}/demand.
type UpdateDemandRequest struct {
	Demand int `json:"demand"`
}

// TransferRequest body para POST /api/transfers.
// From y To son códigos de bodega; Qty unidades a mover.
type TransferRequest struct {
	ID   string `json:"id"`
	From string `json:"from"`
	To   string `json:"to"`
	Qty  int    `json:"qty"`
}
