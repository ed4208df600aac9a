package export

import (
	"context"
	"fmt"
	"strings"

	"github.com/contasys/consolida-api/internal/domain"
	"github.com/contasys/consolida-api/internal/domain/entity"
	"github.com/contasys/consolida-api/internal/domain/ledger"
	"github.com/contasys/consolida-api/internal/domain/repository"
)

// Resultado binario de una exportación, listo para servir.
type Resultado struct {
	Data        []byte
	Filename    string
	ContentType string
}

// ExportUseCase descarga de una consolidación en los cuatro formatos.
// Carga registro + cliente y delega en el generador del formato.
type ExportUseCase struct {
	consRepo    repository.ConsolidacionRepository
	clienteRepo repository.ClienteRepository
	pdfGen      ConsolidacionPDFGenerator
	excelGen    ConsolidacionExcelGenerator
	csvGen      ConsolidacionCSVGenerator
	xmlGen      ConsolidacionXMLGenerator
}

// NewExportUseCase construye el caso de uso inyectando los generadores.
func NewExportUseCase(
	consRepo repository.ConsolidacionRepository,
	clienteRepo repository.ClienteRepository,
	pdfGen ConsolidacionPDFGenerator,
	excelGen ConsolidacionExcelGenerator,
	csvGen ConsolidacionCSVGenerator,
	xmlGen ConsolidacionXMLGenerator,
) *ExportUseCase {
	return &ExportUseCase{
		consRepo:    consRepo,
		clienteRepo: clienteRepo,
		pdfGen:      pdfGen,
		excelGen:    excelGen,
		csvGen:      csvGen,
		xmlGen:      xmlGen,
	}
}

// Exportar genera la descarga de la consolidación en el formato pedido.
//
// Retorna:
//   - domain.ErrNotFound      si la consolidación o su cliente no existen.
//   - domain.ErrInvalidInput  si el formato no es pdf/excel/csv/xml.
func (uc *ExportUseCase) Exportar(ctx context.Context, id string, tipo ledger.Tipo, formato string) (*Resultado, error) {
	cons, err := uc.buscar(ctx, id, tipo)
	if err != nil {
		return nil, err
	}
	if cons == nil {
		return nil, domain.ErrNotFound
	}
	cliente, err := uc.clienteRepo.GetByID(ctx, cons.ClienteID)
	if err != nil {
		return nil, fmt.Errorf("export: obtener cliente: %w", err)
	}
	if cliente == nil {
		return nil, domain.ErrNotFound
	}

	base := nombreBase(cons, cliente)
	switch strings.ToLower(formato) {
	case FormatoPDF:
		data, err := uc.pdfGen.GenerarConsolidacionPDF(ctx, cons, cliente)
		if err != nil {
			return nil, fmt.Errorf("export: generar pdf: %w", err)
		}
		return &Resultado{Data: data, Filename: base + ".pdf", ContentType: "application/pdf"}, nil
	case FormatoExcel:
		data, err := uc.excelGen.GenerarConsolidacionExcel(cons, cliente)
		if err != nil {
			return nil, fmt.Errorf("export: generar excel: %w", err)
		}
		return &Resultado{
			Data:        data,
			Filename:    base + ".xlsx",
			ContentType: "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet",
		}, nil
	case FormatoCSV:
		data, err := uc.csvGen.GenerarConsolidacionCSV(cons, cliente)
		if err != nil {
			return nil, fmt.Errorf("export: generar csv: %w", err)
		}
		return &Resultado{Data: data, Filename: base + ".csv", ContentType: "text/csv; charset=ISO-8859-1"}, nil
	case FormatoXML:
		data, err := uc.xmlGen.GenerarConsolidacionXML(cons, cliente)
		if err != nil {
			return nil, fmt.Errorf("export: generar xml: %w", err)
		}
		return &Resultado{Data: data, Filename: base + ".xml", ContentType: "application/xml"}, nil
	default:
		return nil, fmt.Errorf("%w: formato %q", domain.ErrInvalidInput, formato)
	}
}

func (uc *ExportUseCase) buscar(ctx context.Context, id string, tipo ledger.Tipo) (*entity.Consolidacion, error) {
	if tipo != "" {
		if !tipo.Valida() {
			return nil, domain.ErrTipoInvalido
		}
		return uc.consRepo.GetByID(ctx, id, tipo)
	}
	cons, err := uc.consRepo.GetByID(ctx, id, ledger.TipoGenerales)
	if err != nil || cons != nil {
		return cons, err
	}
	return uc.consRepo.GetByID(ctx, id, ledger.TipoHoteles)
}

// nombreBase arma el nombre de archivo: cliente saneado + período.
func nombreBase(cons *entity.Consolidacion, cliente *entity.Cliente) string {
	nombre := strings.Map(func(r rune) rune {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9':
			return r
		case r == ' ', r == '-', r == '_':
			return '_'
		default:
			return -1
		}
	}, cliente.Nombre)
	if nombre == "" {
		nombre = "consolidacion"
	}
	return fmt.Sprintf("%s_%s_%s",
		nombre,
		cons.FechaInicio.Format("20060102"),
		cons.FechaFin.Format("20060102"))
}
