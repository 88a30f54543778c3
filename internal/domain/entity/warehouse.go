package entity

// Warehouse representa una bodega del catálogo estático.
// Code es único y es lo que referencian los productos.
type Warehouse struct {
	ID      string
	Code    string
	City    string
	Country string
}
