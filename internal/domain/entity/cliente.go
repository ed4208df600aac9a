package entity

import (
	"time"

	"github.com/contasys/consolida-api/internal/domain/ledger"
)

// Cliente empresa a la que se le llevan consolidaciones.
// TipoNegocio decide el esquema de cuentas (GENERALES u HOTELES) y la
// tabla física de sus consolidaciones; no cambia después de creado.
type Cliente struct {
	ID          string
	Nombre      string
	RTN         string // Registro Tributario Nacional (14 dígitos)
	TipoNegocio ledger.Tipo
	Telefono    string
	Email       string
	Direccion   string
	Activo      bool
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
