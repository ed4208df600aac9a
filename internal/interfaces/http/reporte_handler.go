package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/contasys/consolida-api/internal/application/dto"
	"github.com/contasys/consolida-api/internal/application/usecase"
)

// ReporteHandler reportes de lectura sobre las consolidaciones.
type ReporteHandler struct {
	uc *usecase.ReporteUseCase
}

// NewReporteHandler construye el handler de reportes.
func NewReporteHandler(uc *usecase.ReporteUseCase) *ReporteHandler {
	return &ReporteHandler{uc: uc}
}

// ResumenClientes godoc
// @Summary      Ranking de clientes por actividad
// @Tags         reportes
// @Produce      json
// @Param        desde  query  string  true  "YYYY-MM-DD"
// @Param        hasta  query  string  true  "YYYY-MM-DD"
// @Success      200  {object}  dto.ResumenClientesResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Security     BearerAuth
// @Router       /api/reportes/resumen-clientes [get]
func (h *ReporteHandler) ResumenClientes(c *fiber.Ctx) error {
	in, ok := rangoDesdeQuery(c)
	if !ok {
		return nil
	}
	out, err := h.uc.ResumenClientes(c.Context(), in)
	if err != nil {
		return respuestaError(c, err)
	}
	return c.JSON(out)
}

// MetricasPeriodo godoc
// @Summary      Métricas agregadas de un período
// @Tags         reportes
// @Produce      json
// @Param        desde  query  string  true  "YYYY-MM-DD"
// @Param        hasta  query  string  true  "YYYY-MM-DD"
// @Success      200  {object}  dto.MetricasPeriodoDTO
// @Failure      400  {object}  dto.ErrorResponse
// @Security     BearerAuth
// @Router       /api/reportes/metricas [get]
func (h *ReporteHandler) MetricasPeriodo(c *fiber.Ctx) error {
	in, ok := rangoDesdeQuery(c)
	if !ok {
		return nil
	}
	out, err := h.uc.MetricasPeriodo(c.Context(), in)
	if err != nil {
		return respuestaError(c, err)
	}
	return c.JSON(out)
}

// ExportarResumenExcel godoc
// @Summary      Descargar resumen de clientes en Excel
// @Tags         reportes
// @Produce      octet-stream
// @Param        desde  query  string  true  "YYYY-MM-DD"
// @Param        hasta  query  string  true  "YYYY-MM-DD"
// @Success      200  {file}    binary
// @Failure      400  {object}  dto.ErrorResponse
// @Security     BearerAuth
// @Router       /api/reportes/export/excel [get]
func (h *ReporteHandler) ExportarResumenExcel(c *fiber.Ctx) error {
	in, ok := rangoDesdeQuery(c)
	if !ok {
		return nil
	}
	data, filename, err := h.uc.ExportarResumenExcel(c.Context(), in)
	if err != nil {
		return respuestaError(c, err)
	}
	c.Set(fiber.HeaderContentType, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="`+filename+`"`)
	return c.Send(data)
}

func rangoDesdeQuery(c *fiber.Ctx) (dto.RangoFechasRequest, bool) {
	in := dto.RangoFechasRequest{
		Desde: c.Query("desde"),
		Hasta: c.Query("hasta"),
	}
	if err := validate.Struct(in); err != nil {
		_ = c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "desde y hasta son requeridos en formato YYYY-MM-DD"})
		return in, false
	}
	return in, true
}
