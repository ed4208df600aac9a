// Package csvx genera el CSV de una consolidación codificado en
// Latin-1 (ISO 8859-1), que es lo que Excel en español abre sin
// destrozar tildes y eñes.
package csvx

import (
	"bytes"
	"encoding/csv"
	"fmt"

	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/transform"

	"github.com/contasys/consolida-api/internal/application/export"
	"github.com/contasys/consolida-api/internal/domain/entity"
	"github.com/contasys/consolida-api/internal/domain/ledger"
)

var _ export.ConsolidacionCSVGenerator = (*Generator)(nil)

// Generator genera el CSV de exportación.
type Generator struct{}

// NewGenerator construye el generador.
func NewGenerator() *Generator { return &Generator{} }

// GenerarConsolidacionCSV genera el archivo con encabezado del
// cliente, una fila por cuenta en orden de esquema y el bloque de
// totales al final.
func (g *Generator) GenerarConsolidacionCSV(cons *entity.Consolidacion, cliente *entity.Cliente) ([]byte, error) {
	var buf bytes.Buffer
	enc := transform.NewWriter(&buf, charmap.ISO8859_1.NewEncoder())
	w := csv.NewWriter(enc)

	registros := [][]string{
		{"Cliente", cliente.Nombre},
		{"RTN", cliente.RTN},
		{"Tipo", string(cons.Tipo)},
		{"Periodo", cons.FechaInicio.Format("2006-01-02"), cons.FechaFin.Format("2006-01-02")},
		{},
		{"Cuenta", "DEBE", "HABER"},
	}
	for _, cta := range ledger.Esquema(cons.Tipo) {
		c := cons.Cuentas[cta.Clave]
		registros = append(registros, []string{
			cta.Nombre, c.Debe.StringFixed(2), c.Haber.StringFixed(2),
		})
	}
	estado := "BALANCEADO"
	if !cons.Balanceado {
		estado = "DESBALANCEADO"
	}
	registros = append(registros,
		[]string{"TOTALES", cons.TotalDebe.StringFixed(2), cons.TotalHaber.StringFixed(2)},
		[]string{"Diferencia", cons.Diferencia.StringFixed(2)},
		[]string{"Estado", estado},
	)

	if err := w.WriteAll(registros); err != nil {
		return nil, fmt.Errorf("csv: escribir registros: %w", err)
	}
	if err := enc.Close(); err != nil {
		return nil, fmt.Errorf("csv: cerrar codificador: %w", err)
	}
	return buf.Bytes(), nil
}
