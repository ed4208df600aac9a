package repository

import (
	"context"

	"github.com/contasys/consolida-api/internal/domain/entity"
)

// ClienteRepository define el puerto de persistencia para Cliente.
// Todas las consultas excluyen clientes con activo = false salvo que
// se pida lo contrario (soft delete como filtro por defecto).
type ClienteRepository interface {
	Create(ctx context.Context, c *entity.Cliente) error
	GetByID(ctx context.Context, id string) (*entity.Cliente, error)
	List(ctx context.Context, limit, offset int) ([]*entity.Cliente, error)
	Update(ctx context.Context, c *entity.Cliente) error
	// SoftDelete marca activo = false; nunca borra la fila.
	SoftDelete(ctx context.Context, id string) error
}
