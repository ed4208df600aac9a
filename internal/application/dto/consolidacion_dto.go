package dto

import (
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/contasys/consolida-api/internal/domain/ledger"
)

// CrearConsolidacionRequest alta de una consolidación. Las cuentas van
// en formato plano `<clave>_debe` / `<clave>_haber`; solo hace falta
// enviar las celdas digitadas con valor; lo ausente vale 0 y las
// derivadas se recalculan siempre en el servidor.
type CrearConsolidacionRequest struct {
	ClienteID     string             `json:"cliente_id" validate:"required,uuid4"`
	FechaInicio   string             `json:"fecha_inicio" validate:"required,datetime=2006-01-02"`
	FechaFin      string             `json:"fecha_fin" validate:"required,datetime=2006-01-02"`
	Observaciones string             `json:"observaciones"`
	Cuentas       map[string]Importe `json:"cuentas"`
}

// ActualizarConsolidacionRequest reemplaza el vector completo de
// cuentas y recalcula totales; no cambia cliente, tipo ni período.
type ActualizarConsolidacionRequest struct {
	Observaciones *string            `json:"observaciones"`
	Cuentas       map[string]Importe `json:"cuentas" validate:"required"`
}

// ConsolidacionResponse registro completo en el formato del API: las
// cuentas planas llevan exactamente las claves del esquema del tipo
// (los registros GENERALES nunca incluyen ist_4_*).
type ConsolidacionResponse struct {
	ID            string                     `json:"id"`
	ClienteID     string                     `json:"cliente_id"`
	UsuarioID     string                     `json:"usuario_id"`
	Tipo          string                     `json:"tipo"`
	FechaInicio   string                     `json:"fecha_inicio"`
	FechaFin      string                     `json:"fecha_fin"`
	Cuentas       map[string]decimal.Decimal `json:"cuentas"`
	TotalDebe     decimal.Decimal            `json:"total_debe"`
	TotalHaber    decimal.Decimal            `json:"total_haber"`
	Diferencia    decimal.Decimal            `json:"diferencia"`
	Balanceado    bool                       `json:"balanceado"`
	Observaciones string                     `json:"observaciones,omitempty"`
	FechaCreacion time.Time                  `json:"fecha_creacion"`
	UpdatedAt     time.Time                  `json:"updated_at"`
}

// ConsolidacionListResponse listado paginado (puede mezclar tipos).
type ConsolidacionListResponse struct {
	Items []ConsolidacionResponse `json:"items"`
	Page  PageResponse            `json:"page"`
}

// VectorDesdeCuentas convierte el mapa plano del request a un
// ledger.Vector. Una clave sin sufijo _debe/_haber es un error de
// esquema; la validación de la clave base contra el esquema del tipo
// la hace el calculador.
func VectorDesdeCuentas(cuentas map[string]Importe) (ledger.Vector, error) {
	v := ledger.Vector{}
	for k, imp := range cuentas {
		var base string
		var esDebe bool
		switch {
		case strings.HasSuffix(k, "_debe"):
			base = strings.TrimSuffix(k, "_debe")
			esDebe = true
		case strings.HasSuffix(k, "_haber"):
			base = strings.TrimSuffix(k, "_haber")
		default:
			return nil, fmt.Errorf("%w: clave %q sin sufijo _debe/_haber", ledger.ErrEsquema, k)
		}
		celda := v[base]
		if esDebe {
			celda.Debe = imp.Decimal
		} else {
			celda.Haber = imp.Decimal
		}
		v[base] = celda
	}
	return v, nil
}

// CuentasPlanas aplana un vector completo al formato del API siguiendo
// el orden del esquema; las cuentas ausentes del esquema del tipo no
// aparecen (ist_4 jamás en GENERALES).
func CuentasPlanas(v ledger.Vector, tipo ledger.Tipo) map[string]decimal.Decimal {
	out := make(map[string]decimal.Decimal, len(v)*2)
	for _, c := range ledger.Esquema(tipo) {
		celda := v[c.Clave]
		out[c.Clave+"_debe"] = celda.Debe.Round(2)
		out[c.Clave+"_haber"] = celda.Haber.Round(2)
	}
	return out
}
