package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog/log"

	"github.com/jhoicas/cjstore-api/internal/application/dto"
	"github.com/jhoicas/cjstore-api/internal/domain"
)

func errorJSON(c *fiber.Ctx, status int, code, message string) error {
	return c.Status(status).JSON(dto.ErrorResponse{Code: code, Message: message})
}

func badBody(c *fiber.Ctx) error {
	return errorJSON(c, fiber.StatusBadRequest, "INVALID_BODY", "cuerpo inválido")
}

// writeError traduce errores de dominio a status HTTP. Lo no reconocido es 500 con mensaje genérico.
func writeError(c *fiber.Ctx, err error) error {
	var verr *domain.ValidationError
	switch {
	case errors.As(err, &verr):
		return errorJSON(c, fiber.StatusBadRequest, "VALIDATION", verr.Error())
	case errors.Is(err, domain.ErrInvalidInput):
		return errorJSON(c, fiber.StatusBadRequest, "VALIDATION", err.Error())
	case errors.Is(err, domain.ErrInvalidCredentials):
		return errorJSON(c, fiber.StatusUnauthorized, "INVALID_CREDENTIALS", domain.ErrInvalidCredentials.Error())
	case errors.Is(err, domain.ErrUnauthorized):
		return errorJSON(c, fiber.StatusUnauthorized, "UNAUTHORIZED", domain.ErrUnauthorized.Error())
	case errors.Is(err, domain.ErrForbidden):
		return errorJSON(c, fiber.StatusForbidden, "FORBIDDEN", domain.ErrForbidden.Error())
	case errors.Is(err, domain.ErrStoreNotFound):
		return errorJSON(c, fiber.StatusNotFound, "STORE_NOT_FOUND", domain.ErrStoreNotFound.Error())
	case errors.Is(err, domain.ErrProductNotFound):
		return errorJSON(c, fiber.StatusNotFound, "PRODUCT_NOT_FOUND", domain.ErrProductNotFound.Error())
	case errors.Is(err, domain.ErrUserNotFound):
		return errorJSON(c, fiber.StatusNotFound, "USER_NOT_FOUND", domain.ErrUserNotFound.Error())
	case errors.Is(err, domain.ErrNotFound):
		return errorJSON(c, fiber.StatusNotFound, "NOT_FOUND", domain.ErrNotFound.Error())
	case errors.Is(err, domain.ErrEmailAlreadyExists):
		return errorJSON(c, fiber.StatusConflict, "EMAIL_EXISTS", domain.ErrEmailAlreadyExists.Error())
	case errors.Is(err, domain.ErrSlugTaken):
		return errorJSON(c, fiber.StatusConflict, "SLUG_TAKEN", domain.ErrSlugTaken.Error())
	case errors.Is(err, domain.ErrDuplicate):
		return errorJSON(c, fiber.StatusConflict, "DUPLICATE", domain.ErrDuplicate.Error())
	case errors.Is(err, domain.ErrFeatureDisabled):
		return errorJSON(c, fiber.StatusNotImplemented, "FEATURE_DISABLED", err.Error())
	}
	log.Error().Err(err).Str("method", c.Method()).Str("path", c.Path()).Msg("error interno")
	return errorJSON(c, fiber.StatusInternalServerError, "INTERNAL", "error interno del servidor")
}
