package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/contasys/consolida-api/internal/application/usecase"
)

// AdminHandler operaciones administrativas: respaldo y vaciado de
// tablas. El router las monta detrás de RequireRole(admin).
type AdminHandler struct {
	uc *usecase.AdminUseCase
}

// NewAdminHandler construye el handler admin.
func NewAdminHandler(uc *usecase.AdminUseCase) *AdminHandler {
	return &AdminHandler{uc: uc}
}

// Respaldar godoc
// @Summary      Descargar respaldo de tablas
// @Description  Genera un libro xlsx con una hoja por tabla de datos.
// @Tags         admin
// @Produce      octet-stream
// @Success      200  {file}    binary
// @Failure      403  {object}  dto.ErrorResponse
// @Security     BearerAuth
// @Router       /api/admin/respaldo [get]
func (h *AdminHandler) Respaldar(c *fiber.Ctx) error {
	data, filename, err := h.uc.RespaldarTablas(c.Context(), GetUserID(c))
	if err != nil {
		return respuestaError(c, err)
	}
	c.Set(fiber.HeaderContentType, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="`+filename+`"`)
	return c.Send(data)
}

// Vaciar godoc
// @Summary      Vaciar una tabla
// @Description  Borra TODAS las filas de una tabla permitida. Irreversible; queda en bitácora.
// @Tags         admin
// @Produce      json
// @Param        tabla  path  string  true  "nombre de la tabla"
// @Success      200  {object}  dto.VaciarTablaResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Failure      403  {object}  dto.ErrorResponse
// @Security     BearerAuth
// @Router       /api/admin/vaciar/{tabla} [delete]
func (h *AdminHandler) Vaciar(c *fiber.Ctx) error {
	out, err := h.uc.VaciarTabla(c.Context(), GetUserID(c), c.Params("tabla"))
	if err != nil {
		return respuestaError(c, err)
	}
	return c.JSON(out)
}
