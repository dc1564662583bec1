package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/billing-api/internal/application/dto"
	"github.com/jhoicas/billing-api/internal/domain"
	"github.com/jhoicas/billing-api/pkg/api"
	"github.com/jhoicas/billing-api/pkg/logger"
)

// Códigos de error expuestos en dto.ErrorResponse.
const (
	CodeValidation  = api.CodeValidation
	CodeInvalidBody = api.CodeInvalidBody
	CodeNotFound    = api.CodeNotFound
	CodeInternal    = api.CodeInternal
)

const internalMessage = "error interno del servidor"

// writeError traduce un error de los casos de uso a status + dto.ErrorResponse.
// Los errores de persistencia y desconocidos se registran y el cliente recibe un mensaje opaco.
func writeError(c *fiber.Ctx, log *logger.Logger, err error) error {
	switch {
	case errors.Is(err, domain.ErrInvalidInput):
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: CodeValidation, Message: err.Error()})
	case errors.Is(err, domain.ErrNotFound):
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: CodeNotFound, Message: err.Error()})
	default:
		log.Error().Err(err).
			Str("method", c.Method()).
			Str("path", c.Path()).
			Str("request_id", c.GetRespHeader(fiber.HeaderXRequestID)).
			Msg("error interno")
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: CodeInternal, Message: internalMessage})
	}
}

func invalidBody(c *fiber.Ctx, err error) error {
	return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: CodeInvalidBody, Message: "cuerpo inválido: " + err.Error()})
}

// ErrorHandler es el fiber.Config.ErrorHandler de la app: rutas inexistentes, métodos
// no permitidos y pánicos recuperados también responden con dto.ErrorResponse.
func ErrorHandler(log *logger.Logger) fiber.ErrorHandler {
	return func(c *fiber.Ctx, err error) error {
		var fe *fiber.Error
		if errors.As(err, &fe) {
			code := CodeInternal
			switch {
			case fe.Code == fiber.StatusNotFound:
				code = CodeNotFound
			case fe.Code < fiber.StatusInternalServerError:
				code = CodeValidation
			}
			return c.Status(fe.Code).JSON(dto.ErrorResponse{Code: code, Message: fe.Message})
		}
		return writeError(c, log, err)
	}
}
