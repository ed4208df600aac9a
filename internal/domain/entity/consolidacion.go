package entity

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/contasys/consolida-api/internal/domain/ledger"
)

// Consolidacion registro de un período contable de un cliente: el
// vector completo de cuentas (digitadas + derivadas) más los totales
// calculados al momento de escribir. GENERALES y HOTELES comparten este
// tipo; el campo Tipo selecciona el esquema y la tabla física.
//
// Los totales se calculan SIEMPRE en la capa de dominio al crear o
// actualizar; los reportes los rederivan desde las celdas almacenadas
// en lugar de confiar en los valores guardados.
type Consolidacion struct {
	ID            string
	ClienteID     string
	UsuarioID     string // creador
	Tipo          ledger.Tipo
	FechaInicio   time.Time
	FechaFin      time.Time
	Cuentas       ledger.Vector
	TotalDebe     decimal.Decimal
	TotalHaber    decimal.Decimal
	Diferencia    decimal.Decimal
	Balanceado    bool
	Observaciones string
	Activo        bool // soft delete: false la excluye de toda consulta normal
	FechaCreacion time.Time
	UpdatedAt     time.Time
}
