package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/medstock/internal/application/dto"
	"github.com/jhoicas/medstock/internal/domain"
)

// errorStatus traduce un error de dominio a status HTTP y cuerpo de error.
func errorStatus(err error) (int, dto.ErrorResponse) {
	switch {
	case errors.Is(err, domain.ErrInvalidDate):
		return fiber.StatusBadRequest, dto.NewError("INVALID_DATE", err.Error())
	case errors.Is(err, domain.ErrInvalidInput):
		return fiber.StatusBadRequest, dto.NewError("VALIDATION", err.Error())
	case errors.Is(err, domain.ErrUserAlreadyExists):
		return fiber.StatusBadRequest, dto.NewError("USER_EXISTS", "el usuario ya existe")
	case errors.Is(err, domain.ErrNotFound):
		return fiber.StatusNotFound, dto.NewError("NOT_FOUND", "artículo no encontrado")
	case errors.Is(err, domain.ErrUserNotFound), errors.Is(err, domain.ErrUnauthorized):
		return fiber.StatusUnauthorized, dto.NewError("UNAUTHORIZED", "credenciales inválidas")
	case errors.Is(err, domain.ErrForbidden):
		return fiber.StatusForbidden, dto.NewError("FORBIDDEN", "permisos insuficientes")
	case errors.Is(err, domain.ErrDuplicate):
		return fiber.StatusConflict, dto.NewError("DUPLICATE", err.Error())
	default:
		return fiber.StatusInternalServerError, dto.NewError("INTERNAL", "error interno")
	}
}

func writeError(c *fiber.Ctx, err error) error {
	status, body := errorStatus(err)
	return c.Status(status).JSON(body)
}
