package repository

import (
	"context"
	"time"
)

// ActividadClienteRow conteo de consolidaciones por cliente en un
// rango de fechas (suma de ambas tablas). Los montos NO van aquí: los
// reportes los rederivan desde las celdas con el validador del núcleo.
type ActividadClienteRow struct {
	ClienteID     string
	ClienteNombre string
	TipoNegocio   string
	Total         int
}

// ReporteRepository consultas de solo lectura para los reportes.
type ReporteRepository interface {
	// ClientesConActividad agrupa por cliente el número de
	// consolidaciones activas del período, ordenado de mayor a menor.
	ClientesConActividad(ctx context.Context, desde, hasta time.Time) ([]ActividadClienteRow, error)
}
