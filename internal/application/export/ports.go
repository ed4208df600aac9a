package export

import (
	"context"

	"github.com/contasys/consolida-api/internal/domain/entity"
)

// Formatos de exportación soportados por el API.
const (
	FormatoPDF   = "pdf"
	FormatoExcel = "excel"
	FormatoCSV   = "csv"
	FormatoXML   = "xml"
)

// ConsolidacionPDFGenerator genera el reporte imprimible de una
// consolidación.
type ConsolidacionPDFGenerator interface {
	GenerarConsolidacionPDF(ctx context.Context, cons *entity.Consolidacion, cliente *entity.Cliente) ([]byte, error)
}

// ConsolidacionExcelGenerator genera el libro xlsx con el detalle de
// cuentas y totales.
type ConsolidacionExcelGenerator interface {
	GenerarConsolidacionExcel(cons *entity.Consolidacion, cliente *entity.Cliente) ([]byte, error)
}

// ConsolidacionCSVGenerator genera el CSV en Latin-1 que abre Excel en
// las máquinas del despacho sin ensuciar las tildes.
type ConsolidacionCSVGenerator interface {
	GenerarConsolidacionCSV(cons *entity.Consolidacion, cliente *entity.Cliente) ([]byte, error)
}

// ConsolidacionXMLGenerator genera el documento XML de intercambio.
type ConsolidacionXMLGenerator interface {
	GenerarConsolidacionXML(cons *entity.Consolidacion, cliente *entity.Cliente) ([]byte, error)
}
