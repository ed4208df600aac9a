// Package xmlx genera el documento XML de intercambio de una
// consolidación con etree.
package xmlx

import (
	"fmt"

	"github.com/beevik/etree"

	"github.com/contasys/consolida-api/internal/application/export"
	"github.com/contasys/consolida-api/internal/domain/entity"
	"github.com/contasys/consolida-api/internal/domain/ledger"
)

var _ export.ConsolidacionXMLGenerator = (*Generator)(nil)

// Generator genera el XML de exportación.
type Generator struct{}

// NewGenerator construye el generador.
func NewGenerator() *Generator { return &Generator{} }

// GenerarConsolidacionXML arma el documento:
//
//	<consolidacion id tipo fecha_inicio fecha_fin>
//	  <cliente id rtn>nombre</cliente>
//	  <cuentas>
//	    <cuenta clave debe haber/>...
//	  </cuentas>
//	  <totales debe haber diferencia balanceado/>
//	</consolidacion>
func (g *Generator) GenerarConsolidacionXML(cons *entity.Consolidacion, cliente *entity.Cliente) ([]byte, error) {
	doc := etree.NewDocument()
	doc.CreateProcInst("xml", `version="1.0" encoding="UTF-8"`)

	root := doc.CreateElement("consolidacion")
	root.CreateAttr("id", cons.ID)
	root.CreateAttr("tipo", string(cons.Tipo))
	root.CreateAttr("fecha_inicio", cons.FechaInicio.Format("2006-01-02"))
	root.CreateAttr("fecha_fin", cons.FechaFin.Format("2006-01-02"))

	cl := root.CreateElement("cliente")
	cl.CreateAttr("id", cliente.ID)
	cl.CreateAttr("rtn", cliente.RTN)
	cl.SetText(cliente.Nombre)

	cuentas := root.CreateElement("cuentas")
	for _, cta := range ledger.Esquema(cons.Tipo) {
		c := cons.Cuentas[cta.Clave]
		el := cuentas.CreateElement("cuenta")
		el.CreateAttr("clave", cta.Clave)
		el.CreateAttr("nombre", cta.Nombre)
		el.CreateAttr("debe", c.Debe.StringFixed(2))
		el.CreateAttr("haber", c.Haber.StringFixed(2))
	}

	totales := root.CreateElement("totales")
	totales.CreateAttr("debe", cons.TotalDebe.StringFixed(2))
	totales.CreateAttr("haber", cons.TotalHaber.StringFixed(2))
	totales.CreateAttr("diferencia", cons.Diferencia.StringFixed(2))
	totales.CreateAttr("balanceado", fmt.Sprintf("%t", cons.Balanceado))

	if cons.Observaciones != "" {
		root.CreateElement("observaciones").SetText(cons.Observaciones)
	}

	doc.Indent(2)
	data, err := doc.WriteToBytes()
	if err != nil {
		return nil, fmt.Errorf("xml: serializar documento: %w", err)
	}
	return data, nil
}
