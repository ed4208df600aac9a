package dto

import (
	"strings"

	"github.com/shopspring/decimal"

	"github.com/contasys/consolida-api/internal/domain/ledger"
)

// PageRequest paginación para listados.
type PageRequest struct {
	Limit  int `query:"limit" validate:"omitempty,min=1,max=100"`
	Offset int `query:"offset" validate:"omitempty,min=0"`
}

// DefaultPage aplica valores por defecto si Limit/Offset son cero.
func (p *PageRequest) DefaultPage() {
	if p.Limit <= 0 {
		p.Limit = 20
	}
	if p.Offset < 0 {
		p.Offset = 0
	}
}

// PageResponse metadatos de página en respuestas.
type PageResponse struct {
	Limit  int `json:"limit"`
	Offset int `json:"offset"`
	Total  int `json:"total,omitempty"`
}

// ErrorResponse cuerpo de error HTTP.
type ErrorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// Importe monto decimal con digitación tolerante: acepta número JSON,
// string numérico, null o basura; lo no parseable resuelve a 0, nunca
// a error de deserialización. Serializa siempre un valor finito.
type Importe struct {
	decimal.Decimal
}

// UnmarshalJSON implementa la coerción silenciosa a 0 del libro.
func (i *Importe) UnmarshalJSON(b []byte) error {
	s := strings.Trim(strings.TrimSpace(string(b)), `"`)
	if s == "null" {
		s = ""
	}
	i.Decimal = ledger.ParseImporte(s)
	return nil
}
