package entity

import "time"

// Roles válidos para Usuario.
const (
	RolAdmin   = "admin"
	RolUsuario = "usuario"
)

// Usuario representa un usuario del despacho contable.
type Usuario struct {
	ID           string
	Email        string
	PasswordHash string // bcrypt hash, nunca plano en dominio después de persistir
	Nombre       string
	Rol          string // admin, usuario
	Estado       string // active, inactive, suspended
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
