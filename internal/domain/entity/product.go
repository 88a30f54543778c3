package entity

import "time"

// Product representa el registro de un SKU en una bodega concreta.
// Stock y Demand son unidades enteras; Warehouse es el código denormalizado
// de la bodega (no una FK al ID). La pareja (SKU, Warehouse) es única:
// un transfer hacia una bodega sin registro crea uno nuevo.
type Product struct {
	ID        string
	Name      string
	SKU       string // compartido entre bodegas
	Warehouse string // código de bodega, ej. "BLR-A"
	Stock     int
	Demand    int
	CreatedAt time.Time
	UpdatedAt time.Time
}
