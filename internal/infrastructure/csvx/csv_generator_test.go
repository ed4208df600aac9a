package csvx_test

import (
	"bytes"
	"encoding/csv"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/transform"

	"github.com/contasys/consolida-api/internal/domain/entity"
	"github.com/contasys/consolida-api/internal/domain/ledger"
	"github.com/contasys/consolida-api/internal/infrastructure/csvx"
)

func fixtureConsolidacion(t *testing.T) (*entity.Consolidacion, *entity.Cliente) {
	t.Helper()

	entrada := ledger.Vector{
		"compras_gravadas_15": {Debe: decimal.NewFromInt(1000)},
		"ventas_gravadas_15":  {Haber: decimal.NewFromInt(500)},
	}
	vector, err := ledger.Calcular(entrada, ledger.TipoGenerales)
	require.NoError(t, err)
	totales := ledger.CalcularTotales(vector, ledger.TipoGenerales)

	cons := &entity.Consolidacion{
		ID:          "c1",
		Tipo:        ledger.TipoGenerales,
		FechaInicio: time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC),
		FechaFin:    time.Date(2025, 1, 31, 0, 0, 0, 0, time.UTC),
		Cuentas:     vector,
		TotalDebe:   totales.TotalDebe,
		TotalHaber:  totales.TotalHaber,
		Diferencia:  totales.Diferencia,
		Balanceado:  totales.Balanceado,
	}
	cliente := &entity.Cliente{
		ID:     "cl1",
		Nombre: "Consultoría Peña S. de R.L.",
		RTN:    "08011985123960",
	}
	return cons, cliente
}

func TestGenerarConsolidacionCSV_Latin1(t *testing.T) {
	cons, cliente := fixtureConsolidacion(t)

	data, err := csvx.NewGenerator().GenerarConsolidacionCSV(cons, cliente)
	require.NoError(t, err)

	// Tildes y eñes como un solo byte ISO 8859-1, no UTF-8.
	assert.True(t, bytes.Contains(data, []byte{0xF1}), "ñ en Latin-1")
	assert.True(t, bytes.Contains(data, []byte{0xED}), "í en Latin-1")
	assert.False(t, bytes.Contains(data, []byte("Consultoría")), "no debe haber secuencias UTF-8")
}

func TestGenerarConsolidacionCSV_Contenido(t *testing.T) {
	cons, cliente := fixtureConsolidacion(t)

	data, err := csvx.NewGenerator().GenerarConsolidacionCSV(cons, cliente)
	require.NoError(t, err)

	// Decodificar de vuelta a UTF-8 para leerlo con encoding/csv.
	r := csv.NewReader(transform.NewReader(bytes.NewReader(data), charmap.ISO8859_1.NewDecoder()))
	r.FieldsPerRecord = -1
	registros, err := r.ReadAll()
	require.NoError(t, err)

	// 5 filas de encabezado (la vacía se descarta al leer) + 43 cuentas
	// + TOTALES + Diferencia + Estado.
	require.Len(t, registros, 5+43+3)

	assert.Equal(t, []string{"Cliente", "Consultoría Peña S. de R.L."}, registros[0])
	assert.Equal(t, []string{"RTN", "08011985123960"}, registros[1])
	assert.Equal(t, []string{"Cuenta", "DEBE", "HABER"}, registros[4])

	ultima := registros[len(registros)-1]
	assert.Equal(t, []string{"Estado", "BALANCEADO"}, ultima)
	totales := registros[len(registros)-3]
	assert.Equal(t, []string{"TOTALES", "1725.00", "1725.00"}, totales)
}
