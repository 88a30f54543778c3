package memory

import (
	"time"

	"github.com/supplysight/supplysight-api/internal/domain/entity"
)

// SeedCatalog carga el catálogo demo: tres bodegas y cuatro productos.
// Los ids P-1001..P-1004 dejan el contador de transfers en P-1005.
func SeedCatalog(s *Store) error {
	now := time.Now()

	warehouses := []*entity.Warehouse{
		{ID: "W1", Code: "BLR-A", City: "Bangalore", Country: "India"},
		{ID: "W2", Code: "PNQ-C", City: "Pune", Country: "India"},
		{ID: "W3", Code: "DEL-B", City: "Delhi", Country: "India"},
	}
	products := []*entity.Product{
		{ID: "P-1001", Name: "12mm Hex Bolt", SKU: "HEX-12-100", Warehouse: "BLR-A", Stock: 180, Demand: 120},
		{ID: "P-1002", Name: "Steel Washer", SKU: "WSR-08-500", Warehouse: "BLR-A", Stock: 50, Demand: 80},
		{ID: "P-1003", Name: "M8 Nut", SKU: "NUT-08-200", Warehouse: "PNQ-C", Stock: 80, Demand: 80},
		{ID: "P-1004", Name: "Bearing 608ZZ", SKU: "BRG-608-50", Warehouse: "DEL-B", Stock: 24, Demand: 120},
	}

	warehouseRepo := s.Warehouses()
	for _, w := range warehouses {
		if err := warehouseRepo.Create(w); err != nil {
			return err
		}
	}
	productRepo := s.Products()
	for _, p := range products {
		p.CreatedAt, p.UpdatedAt = now, now
		if err := productRepo.Create(p); err != nil {
			return err
		}
	}
	return nil
}

// NewSeededStore crea un almacén con el catálogo demo ya cargado.
func NewSeededStore() *Store {
	s := NewStore()
	if err := SeedCatalog(s); err != nil {
		// Solo puede fallar por ids duplicados en el propio seed
		panic("seed del catálogo demo: " + err.Error())
	}
	return s
}
