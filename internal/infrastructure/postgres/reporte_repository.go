package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/contasys/consolida-api/internal/domain/repository"
)

var _ repository.ReporteRepository = (*ReporteRepo)(nil)

// ReporteRepo consultas agregadas de solo lectura para reportes.
type ReporteRepo struct {
	db Querier
}

// NewReporteRepository construye el adaptador de reportes.
func NewReporteRepository(db Querier) *ReporteRepo {
	return &ReporteRepo{db: db}
}

// ClientesConActividad agrupa por cliente el número de consolidaciones
// activas del período sobre ambas tablas, ordenado de mayor a menor.
func (r *ReporteRepo) ClientesConActividad(ctx context.Context, desde, hasta time.Time) ([]repository.ActividadClienteRow, error) {
	query := `
		SELECT cl.id, cl.nombre, cl.tipo_negocio, COUNT(*) AS total
		FROM (
			SELECT cliente_id FROM consolidaciones_generales
			WHERE activo = true AND fecha_inicio >= $1 AND fecha_fin <= $2
			UNION ALL
			SELECT cliente_id FROM consolidaciones_hoteles
			WHERE activo = true AND fecha_inicio >= $1 AND fecha_fin <= $2
		) c
		JOIN clientes cl ON cl.id = c.cliente_id
		GROUP BY cl.id, cl.nombre, cl.tipo_negocio
		ORDER BY total DESC, cl.nombre`
	rows, err := r.db.Query(ctx, query, desde, hasta)
	if err != nil {
		return nil, fmt.Errorf("clientes con actividad: %w", err)
	}
	defer rows.Close()

	var list []repository.ActividadClienteRow
	for rows.Next() {
		var row repository.ActividadClienteRow
		if err := rows.Scan(&row.ClienteID, &row.ClienteNombre, &row.TipoNegocio, &row.Total); err != nil {
			return nil, fmt.Errorf("scan actividad cliente: %w", err)
		}
		list = append(list, row)
	}
	return list, rows.Err()
}
