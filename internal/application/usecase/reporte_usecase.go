package usecase

import (
	"context"
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/contasys/consolida-api/internal/application/dto"
	"github.com/contasys/consolida-api/internal/domain/ledger"
	"github.com/contasys/consolida-api/internal/domain/repository"
)

// reporteMaxRegistros tope de registros que un reporte trae a memoria
// para rederivar montos. Un despacho mediano no se acerca a esto.
const reporteMaxRegistros = 5000

// ResumenExcelGenerator arma el libro xlsx del resumen de clientes.
type ResumenExcelGenerator interface {
	GenerarResumenExcel(resumen *dto.ResumenClientesResponse) ([]byte, error)
}

// ReporteUseCase reportes de lectura sobre las consolidaciones. Los
// montos agregados se rederivan celda a celda con el validador del
// núcleo en vez de confiar en los totales guardados.
type ReporteUseCase struct {
	reporteRepo repository.ReporteRepository
	consRepo    repository.ConsolidacionRepository
	resumenGen  ResumenExcelGenerator
}

// NewReporteUseCase construye el caso de uso de reportes.
func NewReporteUseCase(reporteRepo repository.ReporteRepository, consRepo repository.ConsolidacionRepository, resumenGen ResumenExcelGenerator) *ReporteUseCase {
	return &ReporteUseCase{reporteRepo: reporteRepo, consRepo: consRepo, resumenGen: resumenGen}
}

// ResumenClientes ranking de clientes por actividad en el período. El
// conteo sale del agregado SQL; debe/haber y desbalances se rederivan
// de las celdas de cada registro.
func (uc *ReporteUseCase) ResumenClientes(ctx context.Context, in dto.RangoFechasRequest) (*dto.ResumenClientesResponse, error) {
	desde, hasta, err := parsearPeriodo(in.Desde, in.Hasta)
	if err != nil {
		return nil, err
	}

	rows, err := uc.reporteRepo.ClientesConActividad(ctx, desde, hasta)
	if err != nil {
		return nil, err
	}

	consolidaciones, err := uc.consRepo.List(ctx, repository.FiltroConsolidaciones{
		Desde: &desde,
		Hasta: &hasta,
		Limit: reporteMaxRegistros,
	})
	if err != nil {
		return nil, err
	}

	type acumulado struct {
		debe, haber, mayorDif decimal.Decimal
		desbalanceadas        int
	}
	porCliente := make(map[string]*acumulado, len(rows))
	for _, c := range consolidaciones {
		acc := porCliente[c.ClienteID]
		if acc == nil {
			acc = &acumulado{}
			porCliente[c.ClienteID] = acc
		}
		t := ledger.CalcularTotales(c.Cuentas, c.Tipo)
		acc.debe = acc.debe.Add(t.TotalDebe)
		acc.haber = acc.haber.Add(t.TotalHaber)
		if !t.Balanceado {
			acc.desbalanceadas++
		}
		if t.Diferencia.Abs().GreaterThan(acc.mayorDif.Abs()) {
			acc.mayorDif = t.Diferencia
		}
	}

	items := make([]dto.ResumenClienteDTO, 0, len(rows))
	for _, r := range rows {
		item := dto.ResumenClienteDTO{
			ClienteID:       r.ClienteID,
			ClienteNombre:   r.ClienteNombre,
			TipoNegocio:     r.TipoNegocio,
			Consolidaciones: r.Total,
		}
		if acc := porCliente[r.ClienteID]; acc != nil {
			item.TotalDebe = acc.debe.Round(2)
			item.TotalHaber = acc.haber.Round(2)
			item.Desbalanceadas = acc.desbalanceadas
			item.MayorDiferencia = acc.mayorDif.Round(2)
		}
		items = append(items, item)
	}

	return &dto.ResumenClientesResponse{
		Desde: in.Desde,
		Hasta: in.Hasta,
		Items: items,
	}, nil
}

// ExportarResumenExcel genera el resumen de clientes como libro xlsx.
// Devuelve el binario y el nombre de archivo sugerido.
func (uc *ReporteUseCase) ExportarResumenExcel(ctx context.Context, in dto.RangoFechasRequest) ([]byte, string, error) {
	resumen, err := uc.ResumenClientes(ctx, in)
	if err != nil {
		return nil, "", err
	}
	data, err := uc.resumenGen.GenerarResumenExcel(resumen)
	if err != nil {
		return nil, "", err
	}
	filename := fmt.Sprintf("resumen_clientes_%s_%s.xlsx", in.Desde, in.Hasta)
	return data, filename, nil
}

// MetricasPeriodo métricas globales del período: conteos por tipo,
// proporción balanceada y sumas de debe/haber rederivadas.
func (uc *ReporteUseCase) MetricasPeriodo(ctx context.Context, in dto.RangoFechasRequest) (*dto.MetricasPeriodoDTO, error) {
	desde, hasta, err := parsearPeriodo(in.Desde, in.Hasta)
	if err != nil {
		return nil, err
	}

	consolidaciones, err := uc.consRepo.List(ctx, repository.FiltroConsolidaciones{
		Desde: &desde,
		Hasta: &hasta,
		Limit: reporteMaxRegistros,
	})
	if err != nil {
		return nil, err
	}

	m := dto.MetricasPeriodoDTO{Desde: in.Desde, Hasta: in.Hasta}
	var debe, haber decimal.Decimal
	for _, c := range consolidaciones {
		m.Total++
		switch c.Tipo {
		case ledger.TipoHoteles:
			m.Hoteles++
		default:
			m.Generales++
		}
		t := ledger.CalcularTotales(c.Cuentas, c.Tipo)
		if t.Balanceado {
			m.Balanceadas++
		}
		debe = debe.Add(t.TotalDebe)
		haber = haber.Add(t.TotalHaber)
	}
	m.TotalDebe = debe.Round(2)
	m.TotalHaber = haber.Round(2)
	if m.Total > 0 {
		m.PorcentajeBalance = decimal.NewFromInt(int64(m.Balanceadas * 100)).
			Div(decimal.NewFromInt(int64(m.Total))).Round(2)
	}
	return &m, nil
}
