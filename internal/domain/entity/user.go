package entity

import "time"

// Roles de usuario para RBAC.
const (
	RoleAdmin  = "admin"  // puede ejecutar mutaciones (demanda, transfers)
	RoleViewer = "viewer" // solo lectura y reportes
)

// User representa un usuario de la aplicación.
type User struct {
	ID           string
	Email        string
	PasswordHash string
	Name         string
	Role         string // "admin" | "viewer"
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
