package dto

// KPIPoint un punto diario de la serie stock vs demanda.
type KPIPoint struct {
	Stock  int `json:"stock"`
	Demand int `json:"demand"`
}
