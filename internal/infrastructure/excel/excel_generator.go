// Package excel genera los libros xlsx del sistema con excelize: el
// detalle de una consolidación, el resumen de clientes y el respaldo
// admin de las tablas.
package excel

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"
	"github.com/xuri/excelize/v2"

	"github.com/contasys/consolida-api/internal/application/dto"
	"github.com/contasys/consolida-api/internal/application/export"
	"github.com/contasys/consolida-api/internal/application/usecase"
	"github.com/contasys/consolida-api/internal/domain/entity"
	"github.com/contasys/consolida-api/internal/domain/ledger"
	"github.com/contasys/consolida-api/internal/domain/repository"
)

var _ export.ConsolidacionExcelGenerator = (*Generator)(nil)
var _ usecase.RespaldoGenerator = (*Generator)(nil)
var _ usecase.ResumenExcelGenerator = (*Generator)(nil)

// Generator genera libros xlsx.
type Generator struct{}

// NewGenerator construye el generador.
func NewGenerator() *Generator { return &Generator{} }

// GenerarConsolidacionExcel genera el libro con el detalle de cuentas
// y los totales de una consolidación.
func (g *Generator) GenerarConsolidacionExcel(cons *entity.Consolidacion, cliente *entity.Cliente) ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()

	const hoja = "Consolidacion"
	f.SetSheetName("Sheet1", hoja)

	negrita, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	if err != nil {
		return nil, fmt.Errorf("excel: crear estilo: %w", err)
	}

	// Encabezado del reporte
	f.SetCellValue(hoja, "A1", "Cliente")
	f.SetCellValue(hoja, "B1", cliente.Nombre)
	f.SetCellValue(hoja, "A2", "RTN")
	f.SetCellValue(hoja, "B2", cliente.RTN)
	f.SetCellValue(hoja, "A3", "Tipo")
	f.SetCellValue(hoja, "B3", string(cons.Tipo))
	f.SetCellValue(hoja, "A4", "Período")
	f.SetCellValue(hoja, "B4", fmt.Sprintf("%s a %s",
		cons.FechaInicio.Format("2006-01-02"), cons.FechaFin.Format("2006-01-02")))
	f.SetCellStyle(hoja, "A1", "A4", negrita)

	// Tabla de cuentas
	const filaTabla = 6
	f.SetCellValue(hoja, celda("A", filaTabla), "Cuenta")
	f.SetCellValue(hoja, celda("B", filaTabla), "DEBE")
	f.SetCellValue(hoja, celda("C", filaTabla), "HABER")
	f.SetCellStyle(hoja, celda("A", filaTabla), celda("C", filaTabla), negrita)

	fila := filaTabla + 1
	for _, cta := range ledger.Esquema(cons.Tipo) {
		c := cons.Cuentas[cta.Clave]
		f.SetCellValue(hoja, celda("A", fila), cta.Nombre)
		f.SetCellValue(hoja, celda("B", fila), c.Debe.InexactFloat64())
		f.SetCellValue(hoja, celda("C", fila), c.Haber.InexactFloat64())
		fila++
	}

	// Totales y estado de balance
	f.SetCellValue(hoja, celda("A", fila), "TOTALES")
	f.SetCellValue(hoja, celda("B", fila), cons.TotalDebe.InexactFloat64())
	f.SetCellValue(hoja, celda("C", fila), cons.TotalHaber.InexactFloat64())
	f.SetCellStyle(hoja, celda("A", fila), celda("C", fila), negrita)
	fila++
	estado := "BALANCEADO"
	if !cons.Balanceado {
		estado = fmt.Sprintf("DESBALANCEADO (diferencia: %s)", cons.Diferencia.StringFixed(2))
	}
	f.SetCellValue(hoja, celda("A", fila), estado)
	f.SetCellStyle(hoja, celda("A", fila), celda("A", fila), negrita)

	f.SetColWidth(hoja, "A", "A", 40)
	f.SetColWidth(hoja, "B", "C", 16)

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("excel: escribir libro: %w", err)
	}
	return buf.Bytes(), nil
}

// GenerarResumenExcel genera el libro del ranking de clientes por
// actividad en el período.
func (g *Generator) GenerarResumenExcel(resumen *dto.ResumenClientesResponse) ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()

	const hoja = "Resumen"
	f.SetSheetName("Sheet1", hoja)

	negrita, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	if err != nil {
		return nil, fmt.Errorf("excel: crear estilo: %w", err)
	}

	f.SetCellValue(hoja, "A1", "Resumen de clientes")
	f.SetCellValue(hoja, "A2", "Período")
	f.SetCellValue(hoja, "B2", fmt.Sprintf("%s a %s", resumen.Desde, resumen.Hasta))
	f.SetCellStyle(hoja, "A1", "A2", negrita)

	const filaTabla = 4
	encabezados := []string{"Cliente", "Tipo", "Consolidaciones", "Total DEBE", "Total HABER", "Desbalanceadas", "Mayor diferencia"}
	for col, h := range encabezados {
		ref, _ := excelize.CoordinatesToCellName(col+1, filaTabla)
		f.SetCellValue(hoja, ref, h)
	}
	ultima, _ := excelize.CoordinatesToCellName(len(encabezados), filaTabla)
	f.SetCellStyle(hoja, celda("A", filaTabla), ultima, negrita)

	fila := filaTabla + 1
	for _, item := range resumen.Items {
		f.SetCellValue(hoja, celda("A", fila), item.ClienteNombre)
		f.SetCellValue(hoja, celda("B", fila), item.TipoNegocio)
		f.SetCellValue(hoja, celda("C", fila), item.Consolidaciones)
		f.SetCellValue(hoja, celda("D", fila), item.TotalDebe.InexactFloat64())
		f.SetCellValue(hoja, celda("E", fila), item.TotalHaber.InexactFloat64())
		f.SetCellValue(hoja, celda("F", fila), item.Desbalanceadas)
		f.SetCellValue(hoja, celda("G", fila), item.MayorDiferencia.InexactFloat64())
		fila++
	}

	f.SetColWidth(hoja, "A", "A", 40)
	f.SetColWidth(hoja, "B", "G", 16)

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("excel: escribir resumen: %w", err)
	}
	return buf.Bytes(), nil
}

// Generar arma el libro de respaldo: una hoja por tabla, primera fila
// con los nombres de columna.
func (g *Generator) Generar(tablas []*repository.TablaRespaldo) ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()

	negrita, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	if err != nil {
		return nil, fmt.Errorf("excel: crear estilo: %w", err)
	}

	for i, t := range tablas {
		hoja := t.Nombre
		if i == 0 {
			f.SetSheetName("Sheet1", hoja)
		} else {
			if _, err := f.NewSheet(hoja); err != nil {
				return nil, fmt.Errorf("excel: crear hoja %s: %w", hoja, err)
			}
		}
		for col, nombre := range t.Columnas {
			ref, err := excelize.CoordinatesToCellName(col+1, 1)
			if err != nil {
				return nil, err
			}
			f.SetCellValue(hoja, ref, nombre)
		}
		ultima, _ := excelize.CoordinatesToCellName(len(t.Columnas), 1)
		f.SetCellStyle(hoja, "A1", ultima, negrita)

		for filaIdx, vals := range t.Filas {
			for col, v := range vals {
				ref, err := excelize.CoordinatesToCellName(col+1, filaIdx+2)
				if err != nil {
					return nil, err
				}
				f.SetCellValue(hoja, ref, valorCelda(v))
			}
		}
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("excel: escribir respaldo: %w", err)
	}
	return buf.Bytes(), nil
}

// valorCelda adapta los tipos que devuelve pgx a algo que excelize
// escribe bien. Los decimales van como texto para no perder centavos.
func valorCelda(v any) any {
	switch x := v.(type) {
	case decimal.Decimal:
		return x.String()
	case time.Time:
		return x.Format(time.RFC3339)
	case nil:
		return ""
	default:
		return v
	}
}

func celda(col string, fila int) string {
	return fmt.Sprintf("%s%d", col, fila)
}
