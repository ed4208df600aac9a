package http

import (
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/contasys/consolida-api/internal/application/dto"
	"github.com/contasys/consolida-api/internal/application/usecase"
	"github.com/contasys/consolida-api/internal/domain/repository"
)

// ConsolidacionHandler CRUD y previsualización de consolidaciones.
type ConsolidacionHandler struct {
	uc *usecase.ConsolidacionUseCase
}

// NewConsolidacionHandler construye el handler.
func NewConsolidacionHandler(uc *usecase.ConsolidacionUseCase) *ConsolidacionHandler {
	return &ConsolidacionHandler{uc: uc}
}

// Create godoc
// @Summary      Crear consolidación
// @Description  Recalcula las celdas derivadas y los totales en el servidor; un registro desbalanceado se guarda con balanceado=false.
// @Tags         consolidaciones
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CrearConsolidacionRequest  true  "cliente, período y cuentas digitadas"
// @Success      201   {object}  dto.ConsolidacionResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Security     BearerAuth
// @Router       /api/consolidaciones [post]
func (h *ConsolidacionHandler) Create(c *fiber.Ctx) error {
	var in dto.CrearConsolidacionRequest
	if !parseBody(c, &in) {
		return nil
	}
	out, err := h.uc.Create(c.Context(), GetUserID(c), in)
	if err != nil {
		return respuestaError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// Previsualizar godoc
// @Summary      Previsualizar cálculo sin guardar
// @Tags         consolidaciones
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CrearConsolidacionRequest  true  "cliente y cuentas digitadas"
// @Success      200   {object}  dto.ConsolidacionResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Security     BearerAuth
// @Router       /api/consolidaciones/previsualizar [post]
func (h *ConsolidacionHandler) Previsualizar(c *fiber.Ctx) error {
	var in dto.CrearConsolidacionRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if in.ClienteID == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "cliente_id es requerido"})
	}
	out, err := h.uc.Previsualizar(c.Context(), in.ClienteID, in.Cuentas)
	if err != nil {
		return respuestaError(c, err)
	}
	return c.JSON(out)
}

// GetByID godoc
// @Summary      Obtener consolidación
// @Tags         consolidaciones
// @Produce      json
// @Param        id    path   string  true   "ID"
// @Param        tipo  query  string  false  "GENERALES u HOTELES; vacío busca en ambas"
// @Success      200  {object}  dto.ConsolidacionResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Security     BearerAuth
// @Router       /api/consolidaciones/{id} [get]
func (h *ConsolidacionHandler) GetByID(c *fiber.Ctx) error {
	tipo, ok := tipoDesdeQuery(c)
	if !ok {
		return nil
	}
	out, err := h.uc.GetByID(c.Context(), c.Params("id"), tipo)
	if err != nil {
		return respuestaError(c, err)
	}
	if out == nil {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "consolidación no encontrada"})
	}
	return c.JSON(out)
}

// List godoc
// @Summary      Listar consolidaciones
// @Tags         consolidaciones
// @Produce      json
// @Param        cliente_id         query  string  false  "filtrar por cliente"
// @Param        tipo               query  string  false  "GENERALES u HOTELES"
// @Param        desde              query  string  false  "fecha_inicio mínima (YYYY-MM-DD)"
// @Param        hasta              query  string  false  "fecha_fin máxima (YYYY-MM-DD)"
// @Param        incluir_inactivas  query  bool    false  "incluir registros dados de baja"
// @Param        limit              query  int     false  "máx. resultados"
// @Param        offset             query  int     false  "desplazamiento"
// @Success      200  {object}  dto.ConsolidacionListResponse
// @Security     BearerAuth
// @Router       /api/consolidaciones [get]
func (h *ConsolidacionHandler) List(c *fiber.Ctx) error {
	tipo, ok := tipoDesdeQuery(c)
	if !ok {
		return nil
	}
	var page dto.PageRequest
	if err := c.QueryParser(&page); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_QUERY", Message: "parámetros inválidos"})
	}
	page.DefaultPage()

	f := repository.FiltroConsolidaciones{
		ClienteID:        c.Query("cliente_id"),
		Tipo:             tipo,
		IncluirInactivas: c.QueryBool("incluir_inactivas"),
		Limit:            page.Limit,
		Offset:           page.Offset,
	}
	if s := c.Query("desde"); s != "" {
		t, err := time.Parse("2006-01-02", s)
		if err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_QUERY", Message: "desde debe ser YYYY-MM-DD"})
		}
		f.Desde = &t
	}
	if s := c.Query("hasta"); s != "" {
		t, err := time.Parse("2006-01-02", s)
		if err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_QUERY", Message: "hasta debe ser YYYY-MM-DD"})
		}
		f.Hasta = &t
	}

	out, err := h.uc.List(c.Context(), f)
	if err != nil {
		return respuestaError(c, err)
	}
	return c.JSON(out)
}

// Update godoc
// @Summary      Actualizar consolidación
// @Description  Reemplaza el vector de cuentas completo y recalcula derivadas y totales.
// @Tags         consolidaciones
// @Accept       json
// @Produce      json
// @Param        id    path   string  true   "ID"
// @Param        tipo  query  string  false  "GENERALES u HOTELES"
// @Param        body  body   dto.ActualizarConsolidacionRequest  true  "cuentas y observaciones"
// @Success      200   {object}  dto.ConsolidacionResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Security     BearerAuth
// @Router       /api/consolidaciones/{id} [put]
func (h *ConsolidacionHandler) Update(c *fiber.Ctx) error {
	tipo, ok := tipoDesdeQuery(c)
	if !ok {
		return nil
	}
	var in dto.ActualizarConsolidacionRequest
	if !parseBody(c, &in) {
		return nil
	}
	out, err := h.uc.Update(c.Context(), GetUserID(c), c.Params("id"), tipo, in)
	if err != nil {
		return respuestaError(c, err)
	}
	if out == nil {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "consolidación no encontrada"})
	}
	return c.JSON(out)
}

// Delete godoc
// @Summary      Desactivar consolidación (soft delete)
// @Tags         consolidaciones
// @Param        id    path   string  true   "ID"
// @Param        tipo  query  string  false  "GENERALES u HOTELES"
// @Success      204
// @Failure      404  {object}  dto.ErrorResponse
// @Security     BearerAuth
// @Router       /api/consolidaciones/{id} [delete]
func (h *ConsolidacionHandler) Delete(c *fiber.Ctx) error {
	tipo, ok := tipoDesdeQuery(c)
	if !ok {
		return nil
	}
	if err := h.uc.SoftDelete(c.Context(), GetUserID(c), c.Params("id"), tipo); err != nil {
		return respuestaError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}
