package repository

import (
	"context"

	"github.com/contasys/consolida-api/internal/domain/entity"
)

// BitacoraRepository define el puerto del registro de auditoría.
type BitacoraRepository interface {
	Create(ctx context.Context, b *entity.Bitacora) error
	List(ctx context.Context, limit, offset int) ([]*entity.Bitacora, error)
}
