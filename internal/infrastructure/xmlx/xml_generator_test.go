package xmlx_test

import (
	"testing"
	"time"

	"github.com/beevik/etree"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/contasys/consolida-api/internal/domain/entity"
	"github.com/contasys/consolida-api/internal/domain/ledger"
	"github.com/contasys/consolida-api/internal/infrastructure/xmlx"
)

func TestGenerarConsolidacionXML(t *testing.T) {
	entrada := ledger.Vector{
		"ventas_gravadas_15": {Haber: decimal.NewFromInt(1000)},
	}
	vector, err := ledger.Calcular(entrada, ledger.TipoHoteles)
	require.NoError(t, err)
	totales := ledger.CalcularTotales(vector, ledger.TipoHoteles)

	cons := &entity.Consolidacion{
		ID:            "abc-123",
		Tipo:          ledger.TipoHoteles,
		FechaInicio:   time.Date(2025, 2, 1, 0, 0, 0, 0, time.UTC),
		FechaFin:      time.Date(2025, 2, 28, 0, 0, 0, 0, time.UTC),
		Cuentas:       vector,
		TotalDebe:     totales.TotalDebe,
		TotalHaber:    totales.TotalHaber,
		Diferencia:    totales.Diferencia,
		Balanceado:    totales.Balanceado,
		Observaciones: "temporada alta",
	}
	cliente := &entity.Cliente{
		ID:     "cl-9",
		Nombre: "Hotel Copán",
		RTN:    "04019012345678",
	}

	data, err := xmlx.NewGenerator().GenerarConsolidacionXML(cons, cliente)
	require.NoError(t, err)

	doc := etree.NewDocument()
	require.NoError(t, doc.ReadFromBytes(data))

	root := doc.Root()
	require.NotNil(t, root)
	assert.Equal(t, "consolidacion", root.Tag)
	assert.Equal(t, "abc-123", root.SelectAttrValue("id", ""))
	assert.Equal(t, "HOTELES", root.SelectAttrValue("tipo", ""))
	assert.Equal(t, "2025-02-01", root.SelectAttrValue("fecha_inicio", ""))
	assert.Equal(t, "2025-02-28", root.SelectAttrValue("fecha_fin", ""))

	cl := root.SelectElement("cliente")
	require.NotNil(t, cl)
	assert.Equal(t, "Hotel Copán", cl.Text())
	assert.Equal(t, "04019012345678", cl.SelectAttrValue("rtn", ""))

	cuentas := root.SelectElement("cuentas")
	require.NotNil(t, cuentas)
	elementos := cuentas.SelectElements("cuenta")
	assert.Len(t, elementos, 44, "el esquema de hoteles tiene 44 cuentas")

	// El IST 4% derivado viaja con dos decimales fijos.
	var ist *etree.Element
	for _, el := range elementos {
		if el.SelectAttrValue("clave", "") == "ist_4" {
			ist = el
			break
		}
	}
	require.NotNil(t, ist)
	assert.Equal(t, "40.00", ist.SelectAttrValue("haber", ""))

	tot := root.SelectElement("totales")
	require.NotNil(t, tot)
	assert.Equal(t, tot.SelectAttrValue("debe", ""), tot.SelectAttrValue("haber", ""))
	assert.Equal(t, "0.00", tot.SelectAttrValue("diferencia", ""))
	assert.Equal(t, "true", tot.SelectAttrValue("balanceado", ""))

	obs := root.SelectElement("observaciones")
	require.NotNil(t, obs)
	assert.Equal(t, "temporada alta", obs.Text())
}

func TestGenerarConsolidacionXML_SinObservaciones(t *testing.T) {
	vector, err := ledger.Calcular(ledger.Vector{}, ledger.TipoGenerales)
	require.NoError(t, err)

	cons := &entity.Consolidacion{
		ID:      "sin-obs",
		Tipo:    ledger.TipoGenerales,
		Cuentas: vector,
	}
	data, err := xmlx.NewGenerator().GenerarConsolidacionXML(cons, &entity.Cliente{})
	require.NoError(t, err)

	doc := etree.NewDocument()
	require.NoError(t, doc.ReadFromBytes(data))
	assert.Nil(t, doc.Root().SelectElement("observaciones"))
	assert.Len(t, doc.Root().SelectElement("cuentas").SelectElements("cuenta"), 43)
}
