// Package inventory contiene los casos de uso de mutación del catálogo:
// actualización de demanda y transferencia de stock entre bodegas.
package inventory

import (
	"context"
	"time"

	"github.com/supplysight/supplysight-api/internal/application/dto"
	"github.com/supplysight/supplysight-api/internal/domain"
	"github.com/supplysight/supplysight-api/internal/domain/entity"
	domaininv "github.com/supplysight/supplysight-api/internal/domain/inventory"
	"github.com/supplysight/supplysight-api/internal/domain/repository"
)

// StockUseCase aplica las mutaciones de stock/demanda de forma atómica.
// Toda la validación de entrada vive aquí, dentro de la frontera de la
// mutación, no en el caller: una demanda negativa o una cantidad no positiva
// devuelven ErrInvalidInput sin importar quién invoque.
type StockUseCase struct {
	txRunner TxRunner
}

// NewStockUseCase construye el caso de uso.
func NewStockUseCase(txRunner TxRunner) *StockUseCase {
	return &StockUseCase{txRunner: txRunner}
}

// UpdateDemand fija la demanda de un producto y devuelve el producto
// actualizado. ErrInvalidInput si demand < 0; ErrNotFound si el id no existe.
func (uc *StockUseCase) UpdateDemand(ctx context.Context, id string, demand int) (*dto.ProductResponse, error) {
	if id == "" || demand < 0 {
		return nil, domain.ErrInvalidInput
	}

	var out *dto.ProductResponse
	err := uc.txRunner.Run(ctx, func(productRepo repository.ProductRepository) error {
		product, err := productRepo.GetByID(id)
		if err != nil {
			return err
		}
		if product == nil {
			return domain.ErrNotFound
		}
		product.Demand = demand
		product.UpdatedAt = time.Now()
		if err := productRepo.Update(product); err != nil {
			return err
		}
		out = toProductResponse(product)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

// Transfer mueve qty unidades del SKU del producto origen hacia la bodega
// destino y devuelve el producto ORIGEN mutado.
//
// Precondiciones (ErrInvalidInput / ErrNotFound / ErrInsufficientStock):
//   - qty > 0 y from != to
//   - existe un producto con ese id cuya bodega es from
//   - qty no excede el stock actual del origen
//
// Si el destino ya tiene un registro para el SKU se le suma qty; si no,
// se crea uno nuevo con id fresco, mismo name/sku, stock = qty y demanda 0.
// El stock total del SKU entre bodegas se conserva.
func (uc *StockUseCase) Transfer(ctx context.Context, in dto.TransferRequest) (*dto.ProductResponse, error) {
	if in.ID == "" || in.From == "" || in.To == "" {
		return nil, domain.ErrInvalidInput
	}
	if in.Qty <= 0 || in.From == in.To {
		return nil, domain.ErrInvalidInput
	}

	var out *dto.ProductResponse
	err := uc.txRunner.Run(ctx, func(productRepo repository.ProductRepository) error {
		source, err := productRepo.GetByIDAndWarehouse(in.ID, in.From)
		if err != nil {
			return err
		}
		if source == nil {
			return domain.ErrNotFound
		}
		if source.Stock < in.Qty {
			return domain.ErrInsufficientStock
		}

		now := time.Now()
		source.Stock -= in.Qty
		source.UpdatedAt = now
		if err := productRepo.Update(source); err != nil {
			return err
		}

		dest, err := productRepo.GetBySKUAndWarehouse(source.SKU, in.To)
		if err != nil {
			return err
		}
		if dest != nil {
			dest.Stock += in.Qty
			dest.UpdatedAt = now
			if err := productRepo.Update(dest); err != nil {
				return err
			}
		} else {
			id, err := productRepo.NextID()
			if err != nil {
				return err
			}
			dest = &entity.Product{
				ID:        id,
				Name:      source.Name,
				SKU:       source.SKU,
				Warehouse: in.To,
				Stock:     in.Qty,
				Demand:    0,
				CreatedAt: now,
				UpdatedAt: now,
			}
			if err := productRepo.Create(dest); err != nil {
				return err
			}
		}

		out = toProductResponse(source)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

func toProductResponse(p *entity.Product) *dto.ProductResponse {
	return &dto.ProductResponse{
		ID:        p.ID,
		Name:      p.Name,
		SKU:       p.SKU,
		Warehouse: p.Warehouse,
		Stock:     p.Stock,
		Demand:    p.Demand,
		Status:    string(domaininv.StatusOf(p)),
	}
}
