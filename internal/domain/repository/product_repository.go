package repository

import "github.com/supplysight/supplysight-api/internal/domain/entity"

// ProductRepository define el puerto de persistencia para Product (DIP).
// List conserva el orden de inserción del almacén subyacente.
// Los Get devuelven (nil, nil) cuando no hay coincidencia.
type ProductRepository interface {
	Create(product *entity.Product) error
	GetByID(id string) (*entity.Product, error)
	GetByIDAndWarehouse(id, warehouse string) (*entity.Product, error)
	GetBySKUAndWarehouse(sku, warehouse string) (*entity.Product, error)
	Update(product *entity.Product) error
	List() ([]*entity.Product, error)
	// NextID asigna el siguiente identificador "P-<n>" del catálogo.
	NextID() (string, error)
}
