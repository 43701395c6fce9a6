package schicht_handlers

import (
	schicht_dto "github.com/Xenn-00/schicht-meister/internal/dtos/schicht-dto"
	app_errors "github.com/Xenn-00/schicht-meister/internal/errors"
	"github.com/Xenn-00/schicht-meister/internal/handlers"
	internal_i18n "github.com/Xenn-00/schicht-meister/internal/i18n"
	schicht_case "github.com/Xenn-00/schicht-meister/internal/use-cases/schicht-case"
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/redis/go-redis/v9"
)

type SchichtHandler struct {
	validator *validator.Validate
	service   schicht_case.SchichtServiceContract
	i18n      *internal_i18n.I18nService
}

func NewSchichtHandler(db *pgxpool.Pool, redis *redis.Client, i18n *internal_i18n.I18nService) *SchichtHandler {
	return &SchichtHandler{
		validator: validator.New(),
		service:   schicht_case.NewSchichtService(db, redis),
		i18n:      i18n,
	}
}

func (h *SchichtHandler) SignOn(c *fiber.Ctx) error {
	ownerID, err := handlers.GetOwnerID(c)
	if err != nil {
		return err
	}

	// get req body (optional start_time, leer = jetzt)
	var req *schicht_dto.SignOnRequest
	if err := c.BodyParser(&req); err != nil {
		return app_errors.NewAppError(fiber.StatusBadRequest, app_errors.ErrInvalidBody, "request.invalid_body", err)
	}

	if err := h.validator.Struct(req); err != nil {
		return app_errors.NewValidationError(app_errors.ParseValidationError(err))
	}

	// call service
	resp, err := h.service.SignOn(c.Context(), ownerID, req)
	if err != nil {
		return err
	}

	reqID := handlers.GetRequestID(c)
	lang, _ := c.Locals("lang").(string)
	webResp := handlers.CreateResponse(h.i18n.T(lang, "response.success_sign_on", nil), resp, reqID)
	if err := c.Status(fiber.StatusOK).JSON(webResp); err != nil {
		return app_errors.NewAppError(fiber.StatusInternalServerError, app_errors.ErrInternal, "response.write_failed", err)
	}

	return nil
}

func (h *SchichtHandler) SignOff(c *fiber.Ctx) error {
	ownerID, err := handlers.GetOwnerID(c)
	if err != nil {
		return err
	}

	// call service
	resp, err := h.service.SignOff(c.Context(), ownerID)
	if err != nil {
		return err
	}

	reqID := handlers.GetRequestID(c)
	lang, _ := c.Locals("lang").(string)
	webResp := handlers.CreateResponse(h.i18n.T(lang, "response.success_sign_off", nil), resp, reqID)
	if err := c.Status(fiber.StatusOK).JSON(webResp); err != nil {
		return app_errors.NewAppError(fiber.StatusInternalServerError, app_errors.ErrInternal, "response.write_failed", err)
	}

	return nil
}

func (h *SchichtHandler) CurrentSchicht(c *fiber.Ctx) error {
	ownerID, err := handlers.GetOwnerID(c)
	if err != nil {
		return err
	}

	// call service
	resp, err := h.service.CurrentSchicht(c.Context(), ownerID)
	if err != nil {
		return err
	}

	reqID := handlers.GetRequestID(c)
	lang, _ := c.Locals("lang").(string)
	webResp := handlers.CreateResponse(h.i18n.T(lang, "response.success_current_schicht", nil), resp, reqID)
	if err := c.Status(fiber.StatusOK).JSON(webResp); err != nil {
		return app_errors.NewAppError(fiber.StatusInternalServerError, app_errors.ErrInternal, "response.write_failed", err)
	}

	return nil
}

func (h *SchichtHandler) ListSchichten(c *fiber.Ctx) error {
	ownerID, err := handlers.GetOwnerID(c)
	if err != nil {
		return err
	}

	// call service
	resp, err := h.service.ListSchichten(c.Context(), ownerID)
	if err != nil {
		return err
	}

	// set http cache behavior
	c.Set("Cache-Control", "private, max-age=10")
	reqID := handlers.GetRequestID(c)
	lang, _ := c.Locals("lang").(string)
	webResp := handlers.CreateResponse(h.i18n.T(lang, "response.success_list_schichten", nil), resp, reqID)
	if err := c.Status(fiber.StatusOK).JSON(webResp); err != nil {
		return app_errors.NewAppError(fiber.StatusInternalServerError, app_errors.ErrInternal, "response.write_failed", err)
	}

	return nil
}
