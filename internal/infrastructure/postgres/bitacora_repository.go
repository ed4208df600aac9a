package postgres

import (
	"context"
	"fmt"

	"github.com/contasys/consolida-api/internal/domain/entity"
	"github.com/contasys/consolida-api/internal/domain/repository"
)

var _ repository.BitacoraRepository = (*BitacoraRepo)(nil)

// BitacoraRepo implementación del puerto BitacoraRepository sobre
// PostgreSQL. Las entradas nunca se actualizan ni se borran desde la
// aplicación (solo el vaciado admin las toca).
type BitacoraRepo struct {
	db Querier
}

// NewBitacoraRepository construye el adaptador de persistencia.
func NewBitacoraRepository(db Querier) *BitacoraRepo {
	return &BitacoraRepo{db: db}
}

// Create inserta una entrada de auditoría.
func (r *BitacoraRepo) Create(ctx context.Context, b *entity.Bitacora) error {
	query := `
		INSERT INTO bitacora (id, usuario_id, accion, entidad, entidad_id, detalle, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`
	_, err := r.db.Exec(ctx, query,
		b.ID, b.UsuarioID, b.Accion, b.Entidad, b.EntidadID, b.Detalle, b.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert bitacora: %w", err)
	}
	return nil
}

// List lista entradas, más recientes primero.
func (r *BitacoraRepo) List(ctx context.Context, limit, offset int) ([]*entity.Bitacora, error) {
	query := `
		SELECT id, usuario_id, accion, entidad, entidad_id, detalle, created_at
		FROM bitacora ORDER BY created_at DESC LIMIT $1 OFFSET $2`
	rows, err := r.db.Query(ctx, query, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list bitacora: %w", err)
	}
	defer rows.Close()
	var list []*entity.Bitacora
	for rows.Next() {
		var b entity.Bitacora
		if err := rows.Scan(&b.ID, &b.UsuarioID, &b.Accion, &b.Entidad, &b.EntidadID, &b.Detalle, &b.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan bitacora: %w", err)
		}
		list = append(list, &b)
	}
	return list, rows.Err()
}
