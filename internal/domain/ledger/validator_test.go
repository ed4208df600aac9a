package ledger_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/contasys/consolida-api/internal/domain/ledger"
)

// ──────────────────────────────────────────────────────────────────────────────
// CalcularTotales: invariantes de balance
// ──────────────────────────────────────────────────────────────────────────────

// Si cada cuenta tiene DEBE == HABER, los totales coinciden exactamente
// y la consolidación balancea.
func TestCalcularTotales_EspejoBalanceaExacto(t *testing.T) {
	v := ledger.Vector{}
	for i, c := range ledger.Esquema(ledger.TipoGenerales) {
		monto := d("10.50").Add(decimal.NewFromInt(int64(i)))
		v[c.Clave] = ledger.Celda{Debe: monto, Haber: monto}
	}

	tot := ledger.CalcularTotales(v, ledger.TipoGenerales)
	assert.True(t, tot.TotalDebe.Equal(tot.TotalHaber))
	assert.True(t, tot.Diferencia.IsZero())
	assert.True(t, tot.Balanceado)
}

// La tolerancia es estricta: |dif| < 0.01 balancea, 0.01 exacto no.
func TestCalcularTotales_FronteraDeTolerancia(t *testing.T) {
	casi := ledger.Vector{
		"sueldos_salarios": {Debe: d("100.009999")},
		"otros_ingresos":   {Haber: d("100")},
	}
	tot := ledger.CalcularTotales(casi, ledger.TipoGenerales)
	assert.True(t, tot.Balanceado, "0.009999 de diferencia queda dentro de la tolerancia")

	exacto := ledger.Vector{
		"sueldos_salarios": {Debe: d("100.01")},
		"otros_ingresos":   {Haber: d("100")},
	}
	tot = ledger.CalcularTotales(exacto, ledger.TipoGenerales)
	assert.False(t, tot.Balanceado, "0.01 exacto ya no balancea (estrictamente menor)")
	assert.True(t, d("0.01").Equal(tot.Diferencia))
}

// La diferencia conserva el signo DEBE − HABER.
func TestCalcularTotales_DiferenciaConSigno(t *testing.T) {
	v := ledger.Vector{
		"sueldos_salarios": {Debe: d("50")},
		"otros_ingresos":   {Haber: d("80")},
	}
	tot := ledger.CalcularTotales(v, ledger.TipoGenerales)
	assert.True(t, d("-30").Equal(tot.Diferencia))
	assert.False(t, tot.Balanceado)
}

// Un vector vacío (o con cuentas ausentes) suma 0 por lado: nunca falla.
func TestCalcularTotales_VectorVacioEsCeroYBalanceado(t *testing.T) {
	tot := ledger.CalcularTotales(ledger.Vector{}, ledger.TipoHoteles)
	assert.True(t, tot.TotalDebe.IsZero())
	assert.True(t, tot.TotalHaber.IsZero())
	assert.True(t, tot.Balanceado)
}

// En GENERALES la clave ist_4 no pertenece al esquema: aunque alguien
// la cuele en el vector, no aporta a ningún total.
func TestCalcularTotales_GeneralesIgnoraIST4(t *testing.T) {
	v := ledger.Vector{
		ledger.ClaveIST4: {Debe: d("999"), Haber: d("999")},
	}
	tot := ledger.CalcularTotales(v, ledger.TipoGenerales)
	assert.True(t, tot.TotalDebe.IsZero())
	assert.True(t, tot.TotalHaber.IsZero())
}

// En HOTELES el lado DEBE del IST es siempre 0 según las fórmulas, pero
// el HABER sí suma al total.
func TestCalcularTotales_HotelesIncluyeIST4(t *testing.T) {
	entradas := ledger.Vector{
		ledger.ClaveVentasG15: {Haber: d("1000")},
	}
	out, err := ledger.Calcular(entradas, ledger.TipoHoteles)
	require.NoError(t, err)

	tot := ledger.CalcularTotales(out, ledger.TipoHoteles)
	// HABER: ventas 1000 + ISV 150 + IST 40 + caja 0 = 1190
	// DEBE:  caja 1190
	assert.True(t, d("1190").Equal(tot.TotalDebe))
	assert.True(t, d("1190").Equal(tot.TotalHaber))
	assert.True(t, tot.Balanceado)
}
