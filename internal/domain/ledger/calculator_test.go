package ledger_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/contasys/consolida-api/internal/domain/ledger"
)

func d(s string) decimal.Decimal {
	v, err := decimal.NewFromString(s)
	if err != nil {
		panic(err)
	}
	return v
}

// ──────────────────────────────────────────────────────────────────────────────
// Esquema
// ──────────────────────────────────────────────────────────────────────────────

func TestEsquema_GeneralesTiene43Cuentas(t *testing.T) {
	assert.Len(t, ledger.Esquema(ledger.TipoGenerales), 43)
}

func TestEsquema_HotelesInsertaIST4(t *testing.T) {
	esquema := ledger.Esquema(ledger.TipoHoteles)
	require.Len(t, esquema, 44)

	// ist_4 debe quedar exactamente entre isv_18_ventas y ventas_exentas,
	// con ambos lados derivados.
	var idxIST, idxISV18, idxExentas int
	for i, c := range esquema {
		switch c.Clave {
		case ledger.ClaveIST4:
			idxIST = i
			assert.Equal(t, ledger.Derivada, c.Debe)
			assert.Equal(t, ledger.Derivada, c.Haber)
		case ledger.ClaveISV18Venta:
			idxISV18 = i
		case "ventas_exentas":
			idxExentas = i
		}
	}
	assert.Equal(t, idxISV18+1, idxIST, "ist_4 va inmediatamente después de isv_18_ventas")
	assert.Equal(t, idxIST+1, idxExentas, "ventas_exentas va inmediatamente después de ist_4")
}

func TestEsquema_GeneralesNoContieneIST4(t *testing.T) {
	_, ok := ledger.BuscarCuenta(ledger.TipoGenerales, ledger.ClaveIST4)
	assert.False(t, ok, "ist_4 no pertenece al esquema GENERALES")
}

// ──────────────────────────────────────────────────────────────────────────────
// Calcular: ejemplo de extremo a extremo del manual contable.
//
//	GENERALES, ventas_gravadas_15.HABER = 1000, compras_gravadas_15.DEBE = 500
//	→ isv_15_ventas.HABER  = 150
//	  isv_15_compras.DEBE  = 75
//	  caja_bancos.DEBE     = 1000 + 150 = 1150  (Σ HABER del resto)
//	  caja_bancos.HABER    = 500 + 75   = 575   (Σ DEBE del resto)
//	  total_debe = total_haber = 1725, diferencia 0, balanceado.
// ──────────────────────────────────────────────────────────────────────────────

func TestCalcular_EjemploGenerales(t *testing.T) {
	entradas := ledger.Vector{
		ledger.ClaveVentasG15:  {Haber: d("1000")},
		ledger.ClaveComprasG15: {Debe: d("500")},
	}

	out, err := ledger.Calcular(entradas, ledger.TipoGenerales)
	require.NoError(t, err)
	require.Len(t, out, 43, "el vector resuelto contiene todas las cuentas del esquema")

	assert.True(t, d("150").Equal(out[ledger.ClaveISV15Venta].Haber), "ISV ventas = 1000 × 0.15")
	assert.True(t, d("75").Equal(out[ledger.ClaveISV15Compra].Debe), "ISV compras = 500 × 0.15")
	assert.True(t, d("1150").Equal(out[ledger.ClaveCajaBancos].Debe), "caja DEBE = Σ HABER del resto")
	assert.True(t, d("575").Equal(out[ledger.ClaveCajaBancos].Haber), "caja HABER = Σ DEBE del resto")

	tot := ledger.CalcularTotales(out, ledger.TipoGenerales)
	assert.True(t, d("1725").Equal(tot.TotalDebe))
	assert.True(t, d("1725").Equal(tot.TotalHaber))
	assert.True(t, tot.Diferencia.IsZero())
	assert.True(t, tot.Balanceado)
}

func TestCalcular_EjemploHotelesConIST(t *testing.T) {
	entradas := ledger.Vector{
		ledger.ClaveVentasG15: {Haber: d("1000")},
	}

	out, err := ledger.Calcular(entradas, ledger.TipoHoteles)
	require.NoError(t, err)
	require.Len(t, out, 44)

	assert.True(t, d("40").Equal(out[ledger.ClaveIST4].Haber), "IST = 1000 × 0.04")
	assert.True(t, out[ledger.ClaveIST4].Debe.IsZero(), "IST solo tiene lado HABER en las fórmulas")
	assert.True(t, d("150").Equal(out[ledger.ClaveISV15Venta].Haber))
	assert.True(t, d("1190").Equal(out[ledger.ClaveCajaBancos].Debe),
		"caja DEBE incluye ventas (1000) + ISV (150) + IST (40)")
}

func TestCalcular_ISV18(t *testing.T) {
	entradas := ledger.Vector{
		ledger.ClaveVentasG18:  {Haber: d("200")},
		ledger.ClaveComprasG18: {Debe: d("100")},
	}
	out, err := ledger.Calcular(entradas, ledger.TipoGenerales)
	require.NoError(t, err)

	assert.True(t, d("36").Equal(out[ledger.ClaveISV18Venta].Haber), "200 × 0.18")
	assert.True(t, d("18").Equal(out[ledger.ClaveISV18Compra].Debe), "100 × 0.18")
}

// El calculador es puro y sus fórmulas dependen solo de celdas
// digitadas: alimentar la salida de vuelta como entrada reproduce el
// mismo vector (idempotencia).
func TestCalcular_Idempotente(t *testing.T) {
	entradas := ledger.Vector{
		ledger.ClaveVentasG15:  {Haber: d("1234.56")},
		ledger.ClaveVentasG18:  {Haber: d("789.10")},
		ledger.ClaveComprasG15: {Debe: d("432.10")},
		"sueldos_salarios":     {Debe: d("5000")},
	}

	primera, err := ledger.Calcular(entradas, ledger.TipoHoteles)
	require.NoError(t, err)
	segunda, err := ledger.Calcular(primera, ledger.TipoHoteles)
	require.NoError(t, err)

	for clave, celda := range primera {
		assert.True(t, celda.Debe.Equal(segunda[clave].Debe), "DEBE de %s", clave)
		assert.True(t, celda.Haber.Equal(segunda[clave].Haber), "HABER de %s", clave)
	}
}

// Clave fuera del esquema → error duro: aceptar una cuenta desconocida
// corrompería los totales sin que nadie lo note.
func TestCalcular_ClaveDesconocidaFallaRuidosamente(t *testing.T) {
	entradas := ledger.Vector{
		"cuenta_inventada": {Debe: d("10")},
	}
	_, err := ledger.Calcular(entradas, ledger.TipoGenerales)
	require.Error(t, err)
	assert.ErrorIs(t, err, ledger.ErrEsquema)
}

// ist_4 no existe en GENERALES: debe rechazarse como clave desconocida,
// no tratarse como cero.
func TestCalcular_IST4EnGeneralesEsRechazada(t *testing.T) {
	entradas := ledger.Vector{
		ledger.ClaveIST4: {Haber: d("40")},
	}
	_, err := ledger.Calcular(entradas, ledger.TipoGenerales)
	assert.ErrorIs(t, err, ledger.ErrEsquema)
}

// Con todo en cero el vector resuelto queda en cero y balanceado.
func TestCalcular_VectorVacio(t *testing.T) {
	out, err := ledger.Calcular(ledger.Vector{}, ledger.TipoGenerales)
	require.NoError(t, err)

	for clave, celda := range out {
		assert.True(t, celda.Debe.IsZero(), "DEBE de %s", clave)
		assert.True(t, celda.Haber.IsZero(), "HABER de %s", clave)
	}
	tot := ledger.CalcularTotales(out, ledger.TipoGenerales)
	assert.True(t, tot.Balanceado)
}

// Los lados derivados de la entrada se ignoran: la fórmula manda.
func TestCalcular_SobrescribeCeldasDerivadas(t *testing.T) {
	entradas := ledger.Vector{
		ledger.ClaveVentasG15: {Haber: d("1000")},
		// Intento de inyectar un ISV manual: debe ser recalculado.
		ledger.ClaveISV15Venta: {Haber: d("999999")},
	}
	out, err := ledger.Calcular(entradas, ledger.TipoGenerales)
	require.NoError(t, err)
	assert.True(t, d("150").Equal(out[ledger.ClaveISV15Venta].Haber),
		"el HABER derivado se recalcula aunque venga digitado")
}

// ──────────────────────────────────────────────────────────────────────────────
// ParseImporte: digitación tolerante
// ──────────────────────────────────────────────────────────────────────────────

func TestParseImporte_ValoresInvalidosResuelvenACero(t *testing.T) {
	casos := []string{"", "   ", "abc", "12,34x", "NaN", "nan", "Inf", "-Inf", "+Inf", "Infinity"}
	for _, s := range casos {
		assert.True(t, ledger.ParseImporte(s).IsZero(), "entrada %q debe valer 0", s)
	}
}

func TestParseImporte_ValoresValidos(t *testing.T) {
	assert.True(t, d("123.45").Equal(ledger.ParseImporte("123.45")))
	assert.True(t, d("123.45").Equal(ledger.ParseImporte("  123.45  ")))
	assert.True(t, d("-7").Equal(ledger.ParseImporte("-7")))
	assert.True(t, d("0").Equal(ledger.ParseImporte("0")))
}

// Un valor basura en una celda no envenena los totales: resuelve a 0 y
// el resto del vector se calcula normal.
func TestCalcular_CeldaBasuraNoPropagaAlTotal(t *testing.T) {
	entradas := ledger.Vector{
		ledger.ClaveVentasG15: {Haber: d("1000")},
		"sueldos_salarios":    {Debe: ledger.ParseImporte("no-es-numero")},
	}
	out, err := ledger.Calcular(entradas, ledger.TipoGenerales)
	require.NoError(t, err)

	tot := ledger.CalcularTotales(out, ledger.TipoGenerales)
	assert.True(t, d("1150").Equal(tot.TotalDebe), "solo caja (1000+150) aporta al DEBE")
	assert.True(t, d("1150").Equal(tot.TotalHaber))
}
