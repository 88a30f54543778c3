package usecase

import (
	"strings"

	"github.com/supplysight/supplysight-api/internal/application/dto"
	"github.com/supplysight/supplysight-api/internal/domain/inventory"
	"github.com/supplysight/supplysight-api/internal/domain/repository"
)

// FilterAll centinela que desactiva un filtro (equivale a omitirlo).
const FilterAll = "All"

// ProductUseCase consultas de solo lectura sobre el catálogo de productos.
// El filtrado es puro: nunca muta el almacén y conserva el orden de inserción.
type ProductUseCase struct {
	repo repository.ProductRepository
}

// NewProductUseCase construye el caso de uso.
func NewProductUseCase(repo repository.ProductRepository) *ProductUseCase {
	return &ProductUseCase{repo: repo}
}

// List devuelve los productos que cumplen todos los filtros indicados.
// Search: substring case-insensitive sobre name, sku o id.
// Warehouse/Status: igualdad exacta; "All" o vacío no filtra.
// "Invalid" no es un filtro admisible y nunca coincide.
func (uc *ProductUseCase) List(filter dto.ProductFilter) (*dto.ProductListResponse, error) {
	products, err := uc.repo.List()
	if err != nil {
		return nil, err
	}

	search := strings.ToLower(strings.TrimSpace(filter.Search))
	warehouse := filter.Warehouse
	status := filter.Status

	items := make([]dto.ProductResponse, 0, len(products))
	for _, p := range products {
		if search != "" &&
			!strings.Contains(strings.ToLower(p.Name), search) &&
			!strings.Contains(strings.ToLower(p.SKU), search) &&
			!strings.Contains(strings.ToLower(p.ID), search) {
			continue
		}
		if warehouse != "" && warehouse != FilterAll && p.Warehouse != warehouse {
			continue
		}
		derived := inventory.StatusOf(p)
		if status != "" && status != FilterAll {
			if !inventory.ValidFilter(status) || derived != inventory.Status(status) {
				continue
			}
		}
		items = append(items, dto.ProductResponse{
			ID:        p.ID,
			Name:      p.Name,
			SKU:       p.SKU,
			Warehouse: p.Warehouse,
			Stock:     p.Stock,
			Demand:    p.Demand,
			Status:    string(derived),
		})
	}

	return &dto.ProductListResponse{Items: items, Total: len(items)}, nil
}

// GetByID obtiene un producto con su estado derivado. (nil, nil) si no existe.
func (uc *ProductUseCase) GetByID(id string) (*dto.ProductResponse, error) {
	p, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if p == nil {
		return nil, nil
	}
	resp := dto.ProductResponse{
		ID:        p.ID,
		Name:      p.Name,
		SKU:       p.SKU,
		Warehouse: p.Warehouse,
		Stock:     p.Stock,
		Demand:    p.Demand,
		Status:    string(inventory.StatusOf(p)),
	}
	return &resp, nil
}
