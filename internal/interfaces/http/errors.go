package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/trictux/trictux-api/internal/application/dto"
	"github.com/trictux/trictux-api/internal/domain"
	"github.com/trictux/trictux-api/pkg/logger"
)

// errorMapping traduce un error de dominio a status HTTP + código.
type errorMapping struct {
	target error
	status int
	code   string
}

// El orden importa: ErrEmailAlreadyExists envuelve ErrConflict.
var errorMappings = []errorMapping{
	{domain.ErrUnauthenticated, fiber.StatusUnauthorized, "UNAUTHENTICATED"},
	{domain.ErrInvalidCredential, fiber.StatusUnauthorized, "INVALID_CREDENTIAL"},
	{domain.ErrUserNotFound, fiber.StatusUnauthorized, "USER_NOT_FOUND"},
	{domain.ErrForbidden, fiber.StatusForbidden, "FORBIDDEN"},
	{domain.ErrNotFound, fiber.StatusNotFound, "NOT_FOUND"},
	{domain.ErrInvalidInput, fiber.StatusBadRequest, "INVALID_INPUT"},
	{domain.ErrEmailAlreadyExists, fiber.StatusConflict, "EMAIL_EXISTS"},
	{domain.ErrConflict, fiber.StatusConflict, "CONFLICT"},
}

// respondError escribe {error, code}. Los errores no clasificados se registran y el
// cliente recibe un mensaje genérico.
func respondError(c *fiber.Ctx, log *logger.Logger, err error) error {
	for _, m := range errorMappings {
		if errors.Is(err, m.target) {
			return c.Status(m.status).JSON(dto.ErrorResponse{Error: publicMessage(err, m.target), Code: m.code})
		}
	}
	log.Error().Err(err).
		Str("method", c.Method()).
		Str("path", c.Path()).
		Str("user_id", userIDOf(c)).
		Msg("error interno atendiendo petición")
	return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Error: "error interno", Code: "INTERNAL"})
}

// publicMessage el detalle de validación y de conflicto es útil al cliente; el resto
// se responde con el mensaje genérico del tipo de error.
func publicMessage(err, target error) string {
	switch target {
	case domain.ErrInvalidInput, domain.ErrConflict, domain.ErrEmailAlreadyExists:
		return err.Error()
	}
	return target.Error()
}

func badRequest(c *fiber.Ctx, msg string) error {
	return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Error: msg, Code: "INVALID_BODY"})
}

func userIDOf(c *fiber.Ctx) string {
	if u := GetUser(c); u != nil {
		return u.ID
	}
	return ""
}
