package repository

import (
	"context"

	"github.com/contasys/consolida-api/internal/domain/entity"
)

// UsuarioRepository define el puerto de persistencia para Usuario.
type UsuarioRepository interface {
	Create(ctx context.Context, u *entity.Usuario) error
	GetByID(ctx context.Context, id string) (*entity.Usuario, error)
	// FindByEmail devuelve nil, nil si no existe (no es error).
	FindByEmail(ctx context.Context, email string) (*entity.Usuario, error)
	List(ctx context.Context, limit, offset int) ([]*entity.Usuario, error)
	Update(ctx context.Context, u *entity.Usuario) error
}
