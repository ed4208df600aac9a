package dto

import "github.com/shopspring/decimal"

// RangoFechasRequest rango de fechas para reportes (query params).
type RangoFechasRequest struct {
	Desde string `query:"desde" validate:"required,datetime=2006-01-02"`
	Hasta string `query:"hasta" validate:"required,datetime=2006-01-02"`
}

// ResumenClienteDTO fila del ranking por cliente. Los montos se
// rederivan de las celdas almacenadas, no de los totales guardados.
type ResumenClienteDTO struct {
	ClienteID        string          `json:"cliente_id"`
	ClienteNombre    string          `json:"cliente_nombre"`
	TipoNegocio      string          `json:"tipo_negocio"`
	Consolidaciones  int             `json:"consolidaciones"`
	TotalDebe        decimal.Decimal `json:"total_debe"`
	TotalHaber       decimal.Decimal `json:"total_haber"`
	Desbalanceadas   int             `json:"desbalanceadas"`
	MayorDiferencia  decimal.Decimal `json:"mayor_diferencia"`
}

// MetricasPeriodoDTO métricas agregadas de un período.
type MetricasPeriodoDTO struct {
	Desde              string          `json:"desde"`
	Hasta              string          `json:"hasta"`
	Total              int             `json:"total"`
	Generales          int             `json:"generales"`
	Hoteles            int             `json:"hoteles"`
	Balanceadas        int             `json:"balanceadas"`
	PorcentajeBalance  decimal.Decimal `json:"porcentaje_balance"`
	TotalDebe          decimal.Decimal `json:"total_debe"`
	TotalHaber         decimal.Decimal `json:"total_haber"`
}

// ResumenClientesResponse respuesta del ranking.
type ResumenClientesResponse struct {
	Desde string              `json:"desde"`
	Hasta string              `json:"hasta"`
	Items []ResumenClienteDTO `json:"items"`
}
