package postgres

import (
	"context"
	"fmt"

	"github.com/contasys/consolida-api/internal/domain"
	"github.com/contasys/consolida-api/internal/domain/repository"
)

var _ repository.AdminRepository = (*AdminRepo)(nil)

// tablasPermitidas lista blanca de tablas que el admin puede respaldar
// o vaciar. usuarios queda fuera a propósito: vaciarla dejaría el
// sistema sin nadie que pueda entrar.
var tablasPermitidas = []string{
	"clientes",
	"consolidaciones_generales",
	"consolidaciones_hoteles",
	"bitacora",
}

// AdminRepo operaciones administrativas a nivel de tabla. Los nombres
// de tabla se validan contra la lista blanca antes de interpolarse en
// el SQL; jamás llega texto del usuario a la consulta.
type AdminRepo struct {
	db Querier
}

// NewAdminRepository construye el adaptador admin.
func NewAdminRepository(db Querier) *AdminRepo {
	return &AdminRepo{db: db}
}

// TablasPermitidas lista los nombres aceptados por LeerTabla y VaciarTabla.
func (r *AdminRepo) TablasPermitidas() []string {
	out := make([]string, len(tablasPermitidas))
	copy(out, tablasPermitidas)
	return out
}

func (r *AdminRepo) validar(nombre string) error {
	for _, t := range tablasPermitidas {
		if t == nombre {
			return nil
		}
	}
	return fmt.Errorf("%w: tabla %q no permitida", domain.ErrInvalidInput, nombre)
}

// LeerTabla devuelve todas las filas de una tabla permitida, con los
// nombres de columna tal cual están en la base.
func (r *AdminRepo) LeerTabla(ctx context.Context, nombre string) (*repository.TablaRespaldo, error) {
	if err := r.validar(nombre); err != nil {
		return nil, err
	}
	rows, err := r.db.Query(ctx, fmt.Sprintf("SELECT * FROM %s", nombre))
	if err != nil {
		return nil, fmt.Errorf("leer tabla %s: %w", nombre, err)
	}
	defer rows.Close()

	fields := rows.FieldDescriptions()
	columnas := make([]string, len(fields))
	for i, f := range fields {
		columnas[i] = f.Name
	}

	var filas [][]any
	for rows.Next() {
		vals, err := rows.Values()
		if err != nil {
			return nil, fmt.Errorf("leer fila de %s: %w", nombre, err)
		}
		filas = append(filas, vals)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("leer tabla %s: %w", nombre, err)
	}
	return &repository.TablaRespaldo{Nombre: nombre, Columnas: columnas, Filas: filas}, nil
}

// VaciarTabla borra TODAS las filas de una tabla permitida. Borrado
// duro, irreversible; el caso de uso lo deja en bitácora.
func (r *AdminRepo) VaciarTabla(ctx context.Context, nombre string) (int64, error) {
	if err := r.validar(nombre); err != nil {
		return 0, err
	}
	tag, err := r.db.Exec(ctx, fmt.Sprintf("DELETE FROM %s", nombre))
	if err != nil {
		return 0, fmt.Errorf("vaciar tabla %s: %w", nombre, err)
	}
	return tag.RowsAffected(), nil
}
