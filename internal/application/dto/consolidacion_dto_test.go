package dto_test

import (
	"encoding/json"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/contasys/consolida-api/internal/application/dto"
	"github.com/contasys/consolida-api/internal/domain/ledger"
)

// ──────────────────────────────────────────────────────────────────────────────
// Importe: digitación tolerante
// ──────────────────────────────────────────────────────────────────────────────

func TestImporte_UnmarshalJSON(t *testing.T) {
	cases := []struct {
		nombre  string
		entrada string
		espera  string
	}{
		{"número JSON", `{"v": 1500.25}`, "1500.25"},
		{"string numérico", `{"v": "250.10"}`, "250.1"},
		{"string con espacios", `{"v": "  99  "}`, "99"},
		{"null", `{"v": null}`, "0"},
		{"string vacío", `{"v": ""}`, "0"},
		{"basura", `{"v": "abc"}`, "0"},
		{"NaN como string", `{"v": "NaN"}`, "0"},
	}
	for _, tc := range cases {
		t.Run(tc.nombre, func(t *testing.T) {
			var payload struct {
				V dto.Importe `json:"v"`
			}
			require.NoError(t, json.Unmarshal([]byte(tc.entrada), &payload),
				"Importe nunca debe fallar al deserializar")
			assert.Equal(t, tc.espera, payload.V.Decimal.String())
		})
	}
}

// ──────────────────────────────────────────────────────────────────────────────
// VectorDesdeCuentas / CuentasPlanas
// ──────────────────────────────────────────────────────────────────────────────

func TestVectorDesdeCuentas_SeparaDebeYHaber(t *testing.T) {
	cuentas := map[string]dto.Importe{
		"compras_gravadas_15_debe": {Decimal: decimal.NewFromInt(1000)},
		"ventas_gravadas_15_haber": {Decimal: decimal.NewFromInt(2000)},
	}
	v, err := dto.VectorDesdeCuentas(cuentas)
	require.NoError(t, err)

	assert.True(t, v["compras_gravadas_15"].Debe.Equal(decimal.NewFromInt(1000)))
	assert.True(t, v["compras_gravadas_15"].Haber.IsZero())
	assert.True(t, v["ventas_gravadas_15"].Haber.Equal(decimal.NewFromInt(2000)))
}

func TestVectorDesdeCuentas_ClaveSinSufijo_Error(t *testing.T) {
	_, err := dto.VectorDesdeCuentas(map[string]dto.Importe{
		"compras_gravadas_15": {Decimal: decimal.NewFromInt(1)},
	})
	require.Error(t, err)
	assert.ErrorIs(t, err, ledger.ErrEsquema)
}

func TestCuentasPlanas_GeneralesSinIST(t *testing.T) {
	v := ledger.Vector{
		"compras_gravadas_15": {Debe: decimal.NewFromInt(100)},
	}
	plano := dto.CuentasPlanas(v, ledger.TipoGenerales)

	// 43 cuentas x 2 lados, todas presentes aunque valgan 0
	assert.Len(t, plano, 86)
	assert.NotContains(t, plano, "ist_4_debe")
	assert.NotContains(t, plano, "ist_4_haber")
	assert.Equal(t, "100", plano["compras_gravadas_15_debe"].String())
}

func TestCuentasPlanas_HotelesIncluyeIST(t *testing.T) {
	plano := dto.CuentasPlanas(ledger.Vector{}, ledger.TipoHoteles)
	assert.Len(t, plano, 88)
	assert.Contains(t, plano, "ist_4_debe")
	assert.Contains(t, plano, "ist_4_haber")
}
