package repository

import (
	"context"
	"time"

	"github.com/contasys/consolida-api/internal/domain/entity"
	"github.com/contasys/consolida-api/internal/domain/ledger"
)

// FiltroConsolidaciones filtros opcionales para listar consolidaciones.
// Tipo en vacío consulta ambas tablas y mezcla en memoria.
type FiltroConsolidaciones struct {
	ClienteID string
	Desde     *time.Time
	Hasta     *time.Time
	Tipo      ledger.Tipo
	// IncluirInactivas levanta el filtro por defecto de activo = true.
	IncluirInactivas bool
	Limit            int
	Offset           int
}

// ConsolidacionRepository define el puerto de persistencia para
// Consolidacion. El tipo (GENERALES/HOTELES) selecciona la tabla
// física; el esquema de columnas de cuentas sale de ledger.Esquema,
// nunca de inferencia por nombre.
type ConsolidacionRepository interface {
	Create(ctx context.Context, c *entity.Consolidacion) error
	GetByID(ctx context.Context, id string, tipo ledger.Tipo) (*entity.Consolidacion, error)
	List(ctx context.Context, f FiltroConsolidaciones) ([]*entity.Consolidacion, error)
	// Update reemplaza el vector de cuentas completo y los totales.
	Update(ctx context.Context, c *entity.Consolidacion) error
	// SoftDelete marca activo = false; no recalcula nada.
	SoftDelete(ctx context.Context, id string, tipo ledger.Tipo) error
}
