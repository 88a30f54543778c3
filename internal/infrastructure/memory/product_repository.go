package memory

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/supplysight/supplysight-api/internal/domain"
	"github.com/supplysight/supplysight-api/internal/domain/entity"
	"github.com/supplysight/supplysight-api/internal/domain/repository"
)

var _ repository.ProductRepository = (*ProductRepo)(nil)

// ProductRepo implementación del puerto ProductRepository sobre el Store.
type ProductRepo struct {
	store *Store
}

// Create añade un producto al final del catálogo (orden de inserción).
func (r *ProductRepo) Create(product *entity.Product) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	for _, p := range r.store.products {
		if p.ID == product.ID {
			return domain.ErrDuplicate
		}
	}
	cp := *product
	r.store.products = append(r.store.products, &cp)
	// Mantener el contador por encima de cualquier id P-<n> ya usado
	if n, ok := numericSuffix(product.ID); ok && n >= r.store.nextProductID {
		r.store.nextProductID = n + 1
	}
	return nil
}

// GetByID devuelve una copia del producto o (nil, nil) si no existe.
func (r *ProductRepo) GetByID(id string) (*entity.Product, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()
	for _, p := range r.store.products {
		if p.ID == id {
			cp := *p
			return &cp, nil
		}
	}
	return nil, nil
}

// GetByIDAndWarehouse devuelve el producto solo si además está en esa bodega.
func (r *ProductRepo) GetByIDAndWarehouse(id, warehouse string) (*entity.Product, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()
	for _, p := range r.store.products {
		if p.ID == id && p.Warehouse == warehouse {
			cp := *p
			return &cp, nil
		}
	}
	return nil, nil
}

// GetBySKUAndWarehouse busca el registro de un SKU en una bodega concreta.
func (r *ProductRepo) GetBySKUAndWarehouse(sku, warehouse string) (*entity.Product, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()
	for _, p := range r.store.products {
		if p.SKU == sku && p.Warehouse == warehouse {
			cp := *p
			return &cp, nil
		}
	}
	return nil, nil
}

// Update reemplaza el producto con el mismo ID.
func (r *ProductRepo) Update(product *entity.Product) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	for i, p := range r.store.products {
		if p.ID == product.ID {
			cp := *product
			r.store.products[i] = &cp
			return nil
		}
	}
	return domain.ErrNotFound
}

// List devuelve copias de todos los productos en orden de inserción.
func (r *ProductRepo) List() ([]*entity.Product, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()
	out := make([]*entity.Product, 0, len(r.store.products))
	for _, p := range r.store.products {
		cp := *p
		out = append(out, &cp)
	}
	return out, nil
}

// NextID asigna el siguiente id "P-<n>" del contador.
func (r *ProductRepo) NextID() (string, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	id := fmt.Sprintf("P-%d", r.store.nextProductID)
	r.store.nextProductID++
	return id, nil
}

// numericSuffix extrae n de un id con forma "P-<n>".
func numericSuffix(id string) (int, bool) {
	rest, ok := strings.CutPrefix(id, "P-")
	if !ok {
		return 0, false
	}
	n, err := strconv.Atoi(rest)
	if err != nil {
		return 0, false
	}
	return n, true
}
