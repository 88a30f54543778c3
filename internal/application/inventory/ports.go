package inventory

import (
	"context"

	"github.com/supplysight/supplysight-api/internal/domain/repository"
)

// TxRunner ejecuta una función con un repositorio de productos atado a una
// unidad de trabajo atómica: todo o nada por llamada. El backend Postgres
// abre una transacción; el backend en memoria serializa los escritores.
type TxRunner interface {
	Run(ctx context.Context, fn func(productRepo repository.ProductRepository) error) error
}
