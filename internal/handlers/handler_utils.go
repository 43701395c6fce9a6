package handlers

import (
	"github.com/Xenn-00/schicht-meister/internal/dtos"
	einsatz_dto "github.com/Xenn-00/schicht-meister/internal/dtos/einsatz-dto"
	app_errors "github.com/Xenn-00/schicht-meister/internal/errors"
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

// CreateResponse erstellt eine standardisierte WebResponse.
func CreateResponse[T any](message string, data T, requestID string, details ...any) dtos.WebResponse[T] {
	return dtos.WebResponse[T]{
		Message:   message,
		Data:      data,
		RequestID: requestID,
		Details:   details,
	}
}

func GetOwnerID(c *fiber.Ctx) (string, *app_errors.AppError) {
	ownerID, ok := c.Locals("owner_id").(string)
	if !ok || ownerID == "" {
		return "", app_errors.NewAppError(fiber.StatusUnauthorized, app_errors.ErrUnauthorized, "auth.unauthorized", nil)
	}

	return ownerID, nil
}

func GetRequestID(c *fiber.Ctx) string {
	reqID, ok := c.Locals("request_id").(string)
	if !ok {
		reqID = "unknown"
	}
	return reqID
}

func GetParamEinsatzID(c *fiber.Ctx, v *validator.Validate) (string, *app_errors.AppError) {
	var param einsatz_dto.ParamEinsatzID
	if err := c.ParamsParser(&param); err != nil {
		return "", app_errors.NewAppError(fiber.StatusBadRequest, app_errors.ErrInvalidParam, "request.invalid_param", err)
	}

	if err := v.Struct(param); err != nil {
		return "", app_errors.NewValidationError(app_errors.ParseValidationError(err))
	}
	return param.ID, nil
}
