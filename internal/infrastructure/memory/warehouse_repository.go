package memory

import (
	"github.com/supplysight/supplysight-api/internal/domain"
	"github.com/supplysight/supplysight-api/internal/domain/entity"
	"github.com/supplysight/supplysight-api/internal/domain/repository"
)

var _ repository.WarehouseRepository = (*WarehouseRepo)(nil)

// WarehouseRepo implementación del puerto WarehouseRepository sobre el Store.
type WarehouseRepo struct {
	store *Store
}

// Create añade una bodega al catálogo estático.
func (r *WarehouseRepo) Create(warehouse *entity.Warehouse) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	for _, w := range r.store.warehouses {
		if w.Code == warehouse.Code {
			return domain.ErrDuplicate
		}
	}
	cp := *warehouse
	r.store.warehouses = append(r.store.warehouses, &cp)
	return nil
}

// GetByCode devuelve la bodega con ese código o (nil, nil).
func (r *WarehouseRepo) GetByCode(code string) (*entity.Warehouse, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()
	for _, w := range r.store.warehouses {
		if w.Code == code {
			cp := *w
			return &cp, nil
		}
	}
	return nil, nil
}

// List devuelve todas las bodegas en orden de inserción.
func (r *WarehouseRepo) List() ([]*entity.Warehouse, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()
	out := make([]*entity.Warehouse, 0, len(r.store.warehouses))
	for _, w := range r.store.warehouses {
		cp := *w
		out = append(out, &cp)
	}
	return out, nil
}
