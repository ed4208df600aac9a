package postgres

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"

	"github.com/contasys/consolida-api/internal/domain"
	"github.com/contasys/consolida-api/internal/domain/entity"
	"github.com/contasys/consolida-api/internal/domain/ledger"
	"github.com/contasys/consolida-api/internal/domain/repository"
)

var _ repository.ConsolidacionRepository = (*ConsolidacionRepo)(nil)

// ConsolidacionRepo implementación del puerto ConsolidacionRepository
// sobre PostgreSQL. Cada tipo tiene su tabla física y la lista de
// columnas de cuentas sale de ledger.Esquema, nunca de inferencia por
// nombre: si el esquema contable crece, las consultas crecen con él.
type ConsolidacionRepo struct {
	db Querier
}

// NewConsolidacionRepository construye el adaptador de persistencia.
func NewConsolidacionRepository(db Querier) *ConsolidacionRepo {
	return &ConsolidacionRepo{db: db}
}

func tablaPara(tipo ledger.Tipo) string {
	if tipo == ledger.TipoHoteles {
		return "consolidaciones_hoteles"
	}
	return "consolidaciones_generales"
}

// columnasCuentas pares <clave>_debe, <clave>_haber en orden de esquema.
func columnasCuentas(tipo ledger.Tipo) []string {
	esquema := ledger.Esquema(tipo)
	cols := make([]string, 0, len(esquema)*2)
	for _, c := range esquema {
		cols = append(cols, c.Clave+"_debe", c.Clave+"_haber")
	}
	return cols
}

// columnas lista completa de columnas de la tabla del tipo, en el
// orden que usan INSERT, SELECT y el scan.
func columnas(tipo ledger.Tipo) []string {
	cols := []string{"id", "cliente_id", "usuario_id", "fecha_inicio", "fecha_fin"}
	cols = append(cols, columnasCuentas(tipo)...)
	return append(cols,
		"total_debe", "total_haber", "diferencia", "balanceado",
		"observaciones", "activo", "fecha_creacion", "updated_at")
}

// valores argumentos en el mismo orden que columnas().
func valores(c *entity.Consolidacion) []any {
	args := []any{c.ID, c.ClienteID, c.UsuarioID, c.FechaInicio, c.FechaFin}
	for _, cta := range ledger.Esquema(c.Tipo) {
		celda := c.Cuentas[cta.Clave]
		args = append(args, celda.Debe.Round(2), celda.Haber.Round(2))
	}
	return append(args,
		c.TotalDebe, c.TotalHaber, c.Diferencia, c.Balanceado,
		c.Observaciones, c.Activo, c.FechaCreacion, c.UpdatedAt)
}

func placeholders(n int) string {
	parts := make([]string, n)
	for i := range parts {
		parts[i] = fmt.Sprintf("$%d", i+1)
	}
	return strings.Join(parts, ", ")
}

// Create persiste una consolidación en la tabla de su tipo.
func (r *ConsolidacionRepo) Create(ctx context.Context, c *entity.Consolidacion) error {
	cols := columnas(c.Tipo)
	query := fmt.Sprintf(
		"INSERT INTO %s (%s) VALUES (%s)",
		tablaPara(c.Tipo), strings.Join(cols, ", "), placeholders(len(cols)),
	)
	if _, err := r.db.Exec(ctx, query, valores(c)...); err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert consolidacion: %w", err)
	}
	return nil
}

// GetByID obtiene una consolidación de la tabla del tipo, activa o no.
// Devuelve nil, nil si no existe.
func (r *ConsolidacionRepo) GetByID(ctx context.Context, id string, tipo ledger.Tipo) (*entity.Consolidacion, error) {
	query := fmt.Sprintf(
		"SELECT %s FROM %s WHERE id = $1",
		strings.Join(columnas(tipo), ", "), tablaPara(tipo),
	)
	c, err := scanConsolidacion(r.db.QueryRow(ctx, query, id), tipo)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get consolidacion by id: %w", err)
	}
	return c, nil
}

// List lista consolidaciones según el filtro. Con Tipo vacío consulta
// ambas tablas y mezcla en memoria por fecha de creación descendente;
// limit y offset se aplican sobre el resultado mezclado.
func (r *ConsolidacionRepo) List(ctx context.Context, f repository.FiltroConsolidaciones) ([]*entity.Consolidacion, error) {
	tipos := []ledger.Tipo{f.Tipo}
	if f.Tipo == "" {
		tipos = []ledger.Tipo{ledger.TipoGenerales, ledger.TipoHoteles}
	}

	limit := f.Limit
	if limit <= 0 {
		limit = 50
	}

	var merged []*entity.Consolidacion
	for _, tipo := range tipos {
		list, err := r.listTipo(ctx, tipo, f, limit+f.Offset)
		if err != nil {
			return nil, err
		}
		merged = append(merged, list...)
	}

	sort.SliceStable(merged, func(i, j int) bool {
		return merged[i].FechaCreacion.After(merged[j].FechaCreacion)
	})
	if f.Offset >= len(merged) {
		return nil, nil
	}
	merged = merged[f.Offset:]
	if len(merged) > limit {
		merged = merged[:limit]
	}
	return merged, nil
}

func (r *ConsolidacionRepo) listTipo(ctx context.Context, tipo ledger.Tipo, f repository.FiltroConsolidaciones, max int) ([]*entity.Consolidacion, error) {
	var sb strings.Builder
	fmt.Fprintf(&sb, "SELECT %s FROM %s WHERE 1=1",
		strings.Join(columnas(tipo), ", "), tablaPara(tipo))

	var args []any
	if !f.IncluirInactivas {
		sb.WriteString(" AND activo = true")
	}
	if f.ClienteID != "" {
		args = append(args, f.ClienteID)
		fmt.Fprintf(&sb, " AND cliente_id = $%d", len(args))
	}
	if f.Desde != nil {
		args = append(args, *f.Desde)
		fmt.Fprintf(&sb, " AND fecha_inicio >= $%d", len(args))
	}
	if f.Hasta != nil {
		args = append(args, *f.Hasta)
		fmt.Fprintf(&sb, " AND fecha_fin <= $%d", len(args))
	}
	args = append(args, max)
	fmt.Fprintf(&sb, " ORDER BY fecha_creacion DESC LIMIT $%d", len(args))

	rows, err := r.db.Query(ctx, sb.String(), args...)
	if err != nil {
		return nil, fmt.Errorf("list consolidaciones %s: %w", tipo, err)
	}
	defer rows.Close()

	var list []*entity.Consolidacion
	for rows.Next() {
		c, err := scanConsolidacion(rows, tipo)
		if err != nil {
			return nil, fmt.Errorf("scan consolidacion: %w", err)
		}
		list = append(list, c)
	}
	return list, rows.Err()
}

// Update reemplaza el vector de cuentas completo y los totales.
func (r *ConsolidacionRepo) Update(ctx context.Context, c *entity.Consolidacion) error {
	var sb strings.Builder
	fmt.Fprintf(&sb, "UPDATE %s SET ", tablaPara(c.Tipo))

	args := []any{c.ID}
	set := func(col string, v any) {
		if len(args) > 1 {
			sb.WriteString(", ")
		}
		args = append(args, v)
		fmt.Fprintf(&sb, "%s = $%d", col, len(args))
	}
	for _, cta := range ledger.Esquema(c.Tipo) {
		celda := c.Cuentas[cta.Clave]
		set(cta.Clave+"_debe", celda.Debe.Round(2))
		set(cta.Clave+"_haber", celda.Haber.Round(2))
	}
	set("total_debe", c.TotalDebe)
	set("total_haber", c.TotalHaber)
	set("diferencia", c.Diferencia)
	set("balanceado", c.Balanceado)
	set("observaciones", c.Observaciones)
	set("updated_at", c.UpdatedAt)
	sb.WriteString(" WHERE id = $1")

	tag, err := r.db.Exec(ctx, sb.String(), args...)
	if err != nil {
		return fmt.Errorf("update consolidacion: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// SoftDelete marca activo = false en la tabla del tipo.
func (r *ConsolidacionRepo) SoftDelete(ctx context.Context, id string, tipo ledger.Tipo) error {
	query := fmt.Sprintf("UPDATE %s SET activo = false, updated_at = now() WHERE id = $1", tablaPara(tipo))
	tag, err := r.db.Exec(ctx, query, id)
	if err != nil {
		return fmt.Errorf("soft delete consolidacion: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// scanConsolidacion arma el entity desde una fila con las columnas en
// el orden de columnas(tipo) y reconstruye el Vector de cuentas.
func scanConsolidacion(row pgx.Row, tipo ledger.Tipo) (*entity.Consolidacion, error) {
	esquema := ledger.Esquema(tipo)
	cuentas := make([]decimal.Decimal, len(esquema)*2)

	c := entity.Consolidacion{Tipo: tipo}
	dest := []any{&c.ID, &c.ClienteID, &c.UsuarioID, &c.FechaInicio, &c.FechaFin}
	for i := range cuentas {
		dest = append(dest, &cuentas[i])
	}
	dest = append(dest,
		&c.TotalDebe, &c.TotalHaber, &c.Diferencia, &c.Balanceado,
		&c.Observaciones, &c.Activo, &c.FechaCreacion, &c.UpdatedAt)

	if err := row.Scan(dest...); err != nil {
		return nil, err
	}

	c.Cuentas = make(ledger.Vector, len(esquema))
	for i, cta := range esquema {
		c.Cuentas[cta.Clave] = ledger.Celda{Debe: cuentas[i*2], Haber: cuentas[i*2+1]}
	}
	return &c, nil
}
