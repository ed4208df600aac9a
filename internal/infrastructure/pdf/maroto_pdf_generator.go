// Package pdf implementa el reporte imprimible de una consolidación
// contable con Maroto v2.
//
// Layout de la página A4:
//
//	┌─────────────────────────────────────────────────────────────┐
//	│  HEADER: Cliente + RTN  │  Tipo + Período                   │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TABLA: Cuenta | DEBE | HABER  (orden del esquema)          │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TOTALES: Total DEBE / Total HABER / Diferencia             │
//	│  ESTADO: BALANCEADO o DESBALANCEADO                         │
//	└─────────────────────────────────────────────────────────────┘
package pdf

import (
	"context"
	"fmt"

	maroto "github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/col"
	"github.com/johnfercher/maroto/v2/pkg/components/line"
	"github.com/johnfercher/maroto/v2/pkg/components/row"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/consts/pagesize"
	"github.com/johnfercher/maroto/v2/pkg/core"
	"github.com/johnfercher/maroto/v2/pkg/props"
	"github.com/shopspring/decimal"

	"github.com/contasys/consolida-api/internal/application/export"
	"github.com/contasys/consolida-api/internal/domain/entity"
	"github.com/contasys/consolida-api/internal/domain/ledger"
)

var _ export.ConsolidacionPDFGenerator = (*MarotoPDFGenerator)(nil)

// ── Paleta de colores ─────────────────────────────────────────────────────────

var (
	colorPrimary = &props.Color{Red: 0, Green: 70, Blue: 127}
	colorGray    = &props.Color{Red: 100, Green: 100, Blue: 100}
	colorRed     = &props.Color{Red: 180, Green: 30, Blue: 30}
	colorGreen   = &props.Color{Red: 20, Green: 120, Blue: 60}
)

// ── Generator ─────────────────────────────────────────────────────────────────

// MarotoPDFGenerator implementa export.ConsolidacionPDFGenerator usando Maroto v2.
type MarotoPDFGenerator struct{}

// NewMarotoPDFGenerator construye el generador.
func NewMarotoPDFGenerator() *MarotoPDFGenerator { return &MarotoPDFGenerator{} }

// GenerarConsolidacionPDF genera el PDF y devuelve sus bytes.
func (g *MarotoPDFGenerator) GenerarConsolidacionPDF(
	_ context.Context,
	cons *entity.Consolidacion,
	cliente *entity.Cliente,
) ([]byte, error) {
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(10).WithRightMargin(10).
		WithTopMargin(10).WithBottomMargin(10).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 9}).
		WithTitle("Consolidación Contable", true).
		WithAuthor(cliente.Nombre, true).
		Build()

	m := maroto.New(cfg)

	m.AddRows(headerRow(cons, cliente))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))

	m.AddRows(tableHeaderRow())
	for _, r := range cuentaRows(cons) {
		m.AddRows(r)
	}

	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))
	m.AddRows(totalsRow(cons))
	m.AddRows(estadoRow(cons))

	if cons.Observaciones != "" {
		m.AddRows(row.New(10).Add(col.New(12).Add(
			text.New("Observaciones: "+cons.Observaciones, props.Text{
				Size: 8, Color: colorGray, Top: 2,
			}),
		)))
	}

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generar documento: %w", err)
	}
	return doc.GetBytes(), nil
}

// ── Secciones ─────────────────────────────────────────────────────────────────

// headerRow: cliente + RTN (izq) y tipo + período (der).
func headerRow(cons *entity.Consolidacion, cliente *entity.Cliente) core.Row {
	periodo := fmt.Sprintf("%s a %s",
		cons.FechaInicio.Format("02/01/2006"),
		cons.FechaFin.Format("02/01/2006"))

	return row.New(18).Add(
		col.New(7).Add(
			text.New(cliente.Nombre, props.Text{
				Style: fontstyle.Bold, Size: 13, Color: colorPrimary, Top: 1,
			}),
			text.New("RTN: "+cliente.RTN, props.Text{
				Size: 9, Top: 9, Color: colorGray,
			}),
		),
		col.New(5).Add(
			text.New("CONSOLIDACIÓN "+string(cons.Tipo), props.Text{
				Style: fontstyle.Bold, Size: 10, Align: align.Right,
				Color: colorPrimary, Top: 1,
			}),
			text.New("Período: "+periodo, props.Text{
				Size: 8, Align: align.Right, Top: 9, Color: colorGray,
			}),
		),
	)
}

// tableHeaderRow: cabecera Cuenta | DEBE | HABER.
func tableHeaderRow() core.Row {
	h := func(label string, size int, a align.Type) core.Col {
		return col.New(size).Add(text.New(label, props.Text{
			Style: fontstyle.Bold, Size: 8, Align: a,
			Color: colorPrimary, Top: 2, Left: 1, Right: 1,
		}))
	}
	return row.New(8).Add(
		h("Cuenta", 6, align.Left),
		h("DEBE (L)", 3, align.Right),
		h("HABER (L)", 3, align.Right),
	)
}

// cuentaRows: una fila por cuenta, en el orden del esquema del tipo.
func cuentaRows(cons *entity.Consolidacion) []core.Row {
	esquema := ledger.Esquema(cons.Tipo)
	result := make([]core.Row, 0, len(esquema))
	for _, cta := range esquema {
		celda := cons.Cuentas[cta.Clave]
		result = append(result, row.New(6).Add(
			col.New(6).Add(text.New(
				cta.Nombre,
				props.Text{Size: 7.5, Align: align.Left, Top: 1, Left: 1},
			)),
			col.New(3).Add(text.New(
				formatoLempiras(celda.Debe),
				props.Text{Size: 7.5, Align: align.Right, Top: 1, Right: 1},
			)),
			col.New(3).Add(text.New(
				formatoLempiras(celda.Haber),
				props.Text{Size: 7.5, Align: align.Right, Top: 1, Right: 1},
			)),
		))
	}
	return result
}

// totalsRow: bloque de totales alineado con las columnas de la tabla.
func totalsRow(cons *entity.Consolidacion) core.Row {
	bold := func(s string, a align.Type) core.Component {
		return text.New(s, props.Text{
			Style: fontstyle.Bold, Size: 9, Align: a,
			Color: colorPrimary, Top: 1, Right: 1, Left: 1,
		})
	}
	return row.New(8).Add(
		col.New(6).Add(bold("TOTALES", align.Left)),
		col.New(3).Add(bold(formatoLempiras(cons.TotalDebe), align.Right)),
		col.New(3).Add(bold(formatoLempiras(cons.TotalHaber), align.Right)),
	)
}

// estadoRow: estado de balance con la diferencia cuando no cuadra.
func estadoRow(cons *entity.Consolidacion) core.Row {
	if cons.Balanceado {
		return row.New(10).Add(col.New(12).Add(
			text.New("BALANCEADO", props.Text{
				Style: fontstyle.Bold, Size: 10, Align: align.Center,
				Color: colorGreen, Top: 2,
			}),
		))
	}
	return row.New(10).Add(col.New(12).Add(
		text.New(fmt.Sprintf("DESBALANCEADO  (diferencia: %s)", formatoLempiras(cons.Diferencia)), props.Text{
			Style: fontstyle.Bold, Size: 10, Align: align.Center,
			Color: colorRed, Top: 2,
		}),
	))
}

// ── helpers ───────────────────────────────────────────────────────────────────

// formatoLempiras formatea un decimal con dos decimales y comas de
// miles. Ej: 1234567.5 → "1,234,567.50"
func formatoLempiras(d decimal.Decimal) string {
	s := d.StringFixed(2)
	neg := false
	if len(s) > 0 && s[0] == '-' {
		neg = true
		s = s[1:]
	}
	entero, dec := s, ""
	if i := len(s) - 3; i >= 0 && s[i] == '.' {
		entero, dec = s[:i], s[i:]
	}
	n := len(entero)
	buf := make([]byte, 0, n+n/3+len(dec)+1)
	if neg {
		buf = append(buf, '-')
	}
	for i := 0; i < n; i++ {
		if i > 0 && (n-i)%3 == 0 {
			buf = append(buf, ',')
		}
		buf = append(buf, entero[i])
	}
	return string(append(buf, dec...))
}
