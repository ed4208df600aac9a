package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/contasys/consolida-api/internal/application/export"
)

// ExportHandler descarga de una consolidación en pdf, excel, csv o xml.
type ExportHandler struct {
	uc *export.ExportUseCase
}

// NewExportHandler construye el handler de exportación.
func NewExportHandler(uc *export.ExportUseCase) *ExportHandler {
	return &ExportHandler{uc: uc}
}

// Exportar godoc
// @Summary      Exportar consolidación
// @Description  Genera la descarga en el formato indicado: pdf, excel, csv o xml.
// @Tags         consolidaciones
// @Produce      octet-stream
// @Param        id       path   string  true   "ID"
// @Param        formato  path   string  true   "pdf | excel | csv | xml"
// @Param        tipo     query  string  false  "GENERALES u HOTELES"
// @Success      200  {file}    binary
// @Failure      400  {object}  dto.ErrorResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Security     BearerAuth
// @Router       /api/consolidaciones/{id}/export/{formato} [get]
func (h *ExportHandler) Exportar(c *fiber.Ctx) error {
	tipo, ok := tipoDesdeQuery(c)
	if !ok {
		return nil
	}
	res, err := h.uc.Exportar(c.Context(), c.Params("id"), tipo, c.Params("formato"))
	if err != nil {
		return respuestaError(c, err)
	}
	c.Set(fiber.HeaderContentType, res.ContentType)
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="`+res.Filename+`"`)
	return c.Send(res.Data)
}
