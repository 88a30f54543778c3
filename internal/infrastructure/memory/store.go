// Package memory implementa los puertos de persistencia sobre slices en
// proceso. Es el backend por defecto: el catálogo se siembra al arrancar y
// el estado se pierde al reiniciar. Los repos conservan el orden de
// inserción y devuelven copias para que una mutación a medias nunca sea
// visible antes de Update.
package memory

import (
	"context"
	"sync"

	"github.com/supplysight/supplysight-api/internal/application/inventory"
	"github.com/supplysight/supplysight-api/internal/domain/entity"
	"github.com/supplysight/supplysight-api/internal/domain/repository"
)

// Store almacén en memoria compartido por los repositorios.
type Store struct {
	mu            sync.RWMutex
	products      []*entity.Product
	warehouses    []*entity.Warehouse
	users         []*entity.User
	nextProductID int // contador para ids "P-<n>" asignados en transfers

	txMu sync.Mutex // serializa las mutaciones (un escritor a la vez)
}

// NewStore crea un almacén vacío. El contador de ids arranca en 1001 y se
// reajusta con cada Create para quedar siempre por encima del mayor id visto.
func NewStore() *Store {
	return &Store{nextProductID: 1001}
}

// Products devuelve el repositorio de productos atado al almacén.
func (s *Store) Products() repository.ProductRepository { return &ProductRepo{store: s} }

// Warehouses devuelve el repositorio de bodegas atado al almacén.
func (s *Store) Warehouses() repository.WarehouseRepository { return &WarehouseRepo{store: s} }

// Users devuelve el repositorio de usuarios atado al almacén.
func (s *Store) Users() repository.UserRepository { return &UserRepo{store: s} }

// Ensure TxRunner implements inventory.TxRunner.
var _ inventory.TxRunner = (*TxRunner)(nil)

// TxRunner implementación en memoria del puerto de atomicidad: el almacén
// de referencia es de un solo escritor, así que basta con serializar las
// mutaciones; los casos de uso validan antes de escribir.
type TxRunner struct {
	store *Store
}

// NewTxRunner construye el runner sobre el almacén.
func NewTxRunner(store *Store) *TxRunner {
	return &TxRunner{store: store}
}

// Run ejecuta fn con el repositorio de productos bajo el lock de mutación.
func (r *TxRunner) Run(_ context.Context, fn func(productRepo repository.ProductRepository) error) error {
	r.store.txMu.Lock()
	defer r.store.txMu.Unlock()
	return fn(r.store.Products())
}
