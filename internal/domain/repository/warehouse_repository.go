package repository

import "github.com/supplysight/supplysight-api/internal/domain/entity"

// WarehouseRepository define el puerto de persistencia para Warehouse (DIP).
// El catálogo de bodegas es estático: solo lectura más la carga inicial.
type WarehouseRepository interface {
	Create(warehouse *entity.Warehouse) error
	GetByCode(code string) (*entity.Warehouse, error)
	List() ([]*entity.Warehouse, error)
}
