package http

import (
	"errors"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"

	"github.com/contasys/consolida-api/internal/application/dto"
	"github.com/contasys/consolida-api/internal/domain"
	"github.com/contasys/consolida-api/internal/domain/ledger"
)

// validate instancia compartida; los handlers validan DTOs con tags.
var validate = validator.New()

// parseBody parsea y valida el body. Devuelve false si ya respondió el error.
func parseBody(c *fiber.Ctx, in any) bool {
	if err := c.BodyParser(in); err != nil {
		_ = c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
		return false
	}
	if err := validate.Struct(in); err != nil {
		_ = c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: err.Error()})
		return false
	}
	return true
}

// respuestaError mapea los errores de dominio a códigos HTTP.
func respuestaError(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, domain.ErrNotFound), errors.Is(err, domain.ErrUserNotFound):
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "recurso no encontrado"})
	case errors.Is(err, domain.ErrEmailAlreadyExists):
		return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "EMAIL_EXISTS", Message: "el email ya está registrado"})
	case errors.Is(err, domain.ErrDuplicate):
		return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "DUPLICATE", Message: "el registro ya existe"})
	case errors.Is(err, domain.ErrClienteInactivo):
		return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "CLIENTE_INACTIVO", Message: "el cliente está inactivo"})
	case errors.Is(err, domain.ErrTipoInvalido):
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "TIPO_INVALIDO", Message: "tipo debe ser GENERALES u HOTELES"})
	case errors.Is(err, ledger.ErrEsquema):
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "CUENTA_INVALIDA", Message: err.Error()})
	case errors.Is(err, domain.ErrInvalidInput):
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: err.Error()})
	case errors.Is(err, domain.ErrUnauthorized):
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "UNAUTHORIZED", Message: "credenciales inválidas"})
	case errors.Is(err, domain.ErrForbidden):
		return c.Status(fiber.StatusForbidden).JSON(dto.ErrorResponse{Code: "FORBIDDEN", Message: "operación no permitida"})
	default:
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
}

// tipoDesdeQuery lee ?tipo= y lo valida; vacío significa "ambas tablas".
func tipoDesdeQuery(c *fiber.Ctx) (ledger.Tipo, bool) {
	t := ledger.Tipo(c.Query("tipo"))
	if t != "" && !t.Valida() {
		_ = c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "TIPO_INVALIDO", Message: "tipo debe ser GENERALES u HOTELES"})
		return "", false
	}
	return t, true
}
