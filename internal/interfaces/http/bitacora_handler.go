package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/contasys/consolida-api/internal/application/dto"
	"github.com/contasys/consolida-api/internal/application/usecase"
)

// BitacoraHandler consulta del registro de auditoría (solo admin).
type BitacoraHandler struct {
	uc *usecase.BitacoraUseCase
}

// NewBitacoraHandler construye el handler de bitácora.
func NewBitacoraHandler(uc *usecase.BitacoraUseCase) *BitacoraHandler {
	return &BitacoraHandler{uc: uc}
}

// List godoc
// @Summary      Listar bitácora
// @Tags         bitacora
// @Produce      json
// @Param        limit   query  int  false  "máx. resultados"
// @Param        offset  query  int  false  "desplazamiento"
// @Success      200  {object}  dto.BitacoraListResponse
// @Failure      403  {object}  dto.ErrorResponse
// @Security     BearerAuth
// @Router       /api/bitacora [get]
func (h *BitacoraHandler) List(c *fiber.Ctx) error {
	var page dto.PageRequest
	if err := c.QueryParser(&page); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_QUERY", Message: "parámetros inválidos"})
	}
	page.DefaultPage()
	out, err := h.uc.List(c.Context(), page.Limit, page.Offset)
	if err != nil {
		return respuestaError(c, err)
	}
	return c.JSON(out)
}
