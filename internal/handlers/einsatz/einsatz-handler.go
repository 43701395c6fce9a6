package einsatz_handlers

import (
	"strings"

	"github.com/Xenn-00/schicht-meister/internal/config"
	einsatz_dto "github.com/Xenn-00/schicht-meister/internal/dtos/einsatz-dto"
	app_errors "github.com/Xenn-00/schicht-meister/internal/errors"
	"github.com/Xenn-00/schicht-meister/internal/handlers"
	internal_i18n "github.com/Xenn-00/schicht-meister/internal/i18n"
	einsatz_case "github.com/Xenn-00/schicht-meister/internal/use-cases/einsatz-case"
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/redis/go-redis/v9"
)

type EinsatzHandler struct {
	validator *validator.Validate
	service   einsatz_case.EinsatzServiceContract
	i18n      *internal_i18n.I18nService
}

func NewEinsatzHandler(db *pgxpool.Pool, redis *redis.Client, i18n *internal_i18n.I18nService, cfg *config.AppConfig) *EinsatzHandler {
	validate := validator.New()
	validate.RegisterValidation("einsatzCategory", einsatz_dto.IsValidEinsatzCategory)
	return &EinsatzHandler{
		validator: validate,
		service:   einsatz_case.NewEinsatzService(db, redis, cfg),
		i18n:      i18n,
	}
}

func (h *EinsatzHandler) CreateEinsatz(c *fiber.Ctx) error {
	ownerID, err := handlers.GetOwnerID(c)
	if err != nil {
		return err
	}

	// get req body
	var req *einsatz_dto.CreateEinsatzRequest
	if err := c.BodyParser(&req); err != nil {
		return app_errors.NewAppError(fiber.StatusBadRequest, app_errors.ErrInvalidBody, "request.invalid_body", err)
	}

	if req.Category != nil {
		s := strings.ToLower(strings.TrimSpace(*req.Category))
		req.Category = &s
	}

	if err := h.validator.Struct(req); err != nil {
		return app_errors.NewValidationError(app_errors.ParseValidationError(err))
	}

	// call service
	resp, err := h.service.CreateEinsatz(c.Context(), ownerID, req)
	if err != nil {
		return err
	}

	reqID := handlers.GetRequestID(c)
	lang, _ := c.Locals("lang").(string)
	webResp := handlers.CreateResponse(h.i18n.T(lang, "response.success_create_einsatz", nil), resp, reqID)
	if err := c.Status(fiber.StatusOK).JSON(webResp); err != nil {
		return app_errors.NewAppError(fiber.StatusInternalServerError, app_errors.ErrInternal, "response.write_failed", err)
	}

	return nil
}

func (h *EinsatzHandler) GetEinsatzDetails(c *fiber.Ctx) error {
	ownerID, err := handlers.GetOwnerID(c)
	if err != nil {
		return err
	}

	// get einsatz id from param
	einsatzID, err := handlers.GetParamEinsatzID(c, h.validator)
	if err != nil {
		return err
	}

	// call service
	resp, err := h.service.GetEinsatzDetails(c.Context(), ownerID, einsatzID)
	if err != nil {
		return err
	}

	reqID := handlers.GetRequestID(c)
	lang, _ := c.Locals("lang").(string)
	webResp := handlers.CreateResponse(h.i18n.T(lang, "response.success_get_einsatz", nil), resp, reqID)
	if err := c.Status(fiber.StatusOK).JSON(webResp); err != nil {
		return app_errors.NewAppError(fiber.StatusInternalServerError, app_errors.ErrInternal, "response.write_failed", err)
	}

	return nil
}

func (h *EinsatzHandler) ListEinsaetze(c *fiber.Ctx) error {
	ownerID, err := handlers.GetOwnerID(c)
	if err != nil {
		return err
	}

	// call service
	resp, err := h.service.ListEinsaetze(c.Context(), ownerID)
	if err != nil {
		return err
	}

	// set http cache behavior
	c.Set("Cache-Control", "private, max-age=10")
	reqID := handlers.GetRequestID(c)
	lang, _ := c.Locals("lang").(string)
	webResp := handlers.CreateResponse(h.i18n.T(lang, "response.success_list_einsaetze", nil), resp, reqID)
	if err := c.Status(fiber.StatusOK).JSON(webResp); err != nil {
		return app_errors.NewAppError(fiber.StatusInternalServerError, app_errors.ErrInternal, "response.write_failed", err)
	}

	return nil
}

func (h *EinsatzHandler) UpdateEinsatz(c *fiber.Ctx) error {
	ownerID, err := handlers.GetOwnerID(c)
	if err != nil {
		return err
	}

	// get einsatz id from param
	einsatzID, err := handlers.GetParamEinsatzID(c, h.validator)
	if err != nil {
		return err
	}

	// get req body
	var req *einsatz_dto.UpdateEinsatzRequest
	if err := c.BodyParser(&req); err != nil {
		return app_errors.NewAppError(fiber.StatusBadRequest, app_errors.ErrInvalidBody, "request.invalid_body", err)
	}

	if req.Category != nil {
		s := strings.ToLower(strings.TrimSpace(*req.Category))
		req.Category = &s
	}

	if err := h.validator.Struct(req); err != nil {
		return app_errors.NewValidationError(app_errors.ParseValidationError(err))
	}

	// call service
	resp, err := h.service.UpdateEinsatz(c.Context(), ownerID, einsatzID, req)
	if err != nil {
		return err
	}

	reqID := handlers.GetRequestID(c)
	lang, _ := c.Locals("lang").(string)
	webResp := handlers.CreateResponse(h.i18n.T(lang, "response.success_update_einsatz", nil), resp, reqID)
	if err := c.Status(fiber.StatusOK).JSON(webResp); err != nil {
		return app_errors.NewAppError(fiber.StatusInternalServerError, app_errors.ErrInternal, "response.write_failed", err)
	}

	return nil
}

func (h *EinsatzHandler) DeleteEinsatz(c *fiber.Ctx) error {
	ownerID, err := handlers.GetOwnerID(c)
	if err != nil {
		return err
	}

	// get einsatz id from param
	einsatzID, err := handlers.GetParamEinsatzID(c, h.validator)
	if err != nil {
		return err
	}

	// call service
	if err := h.service.DeleteEinsatz(c.Context(), ownerID, einsatzID); err != nil {
		return err
	}

	reqID := handlers.GetRequestID(c)
	lang, _ := c.Locals("lang").(string)
	webResp := handlers.CreateResponse[any](h.i18n.T(lang, "response.success_delete_einsatz", nil), nil, reqID)
	if err := c.Status(fiber.StatusOK).JSON(webResp); err != nil {
		return app_errors.NewAppError(fiber.StatusInternalServerError, app_errors.ErrInternal, "response.write_failed", err)
	}

	return nil
}

func (h *EinsatzHandler) CloseOpenEinsaetze(c *fiber.Ctx) error {
	ownerID, err := handlers.GetOwnerID(c)
	if err != nil {
		return err
	}

	// call service
	resp, err := h.service.CloseOpenEinsaetze(c.Context(), ownerID)
	if err != nil {
		return err
	}

	reqID := handlers.GetRequestID(c)
	lang, _ := c.Locals("lang").(string)
	webResp := handlers.CreateResponse(h.i18n.T(lang, "response.success_close_einsaetze", nil), resp, reqID)
	if err := c.Status(fiber.StatusOK).JSON(webResp); err != nil {
		return app_errors.NewAppError(fiber.StatusInternalServerError, app_errors.ErrInternal, "response.write_failed", err)
	}

	return nil
}

func (h *EinsatzHandler) CheckEndTime(c *fiber.Ctx) error {
	ownerID, err := handlers.GetOwnerID(c)
	if err != nil {
		return err
	}

	// get einsatz id from param
	einsatzID, err := handlers.GetParamEinsatzID(c, h.validator)
	if err != nil {
		return err
	}

	// get req body
	var req *einsatz_dto.CheckEndTimeRequest
	if err := c.BodyParser(&req); err != nil {
		return app_errors.NewAppError(fiber.StatusBadRequest, app_errors.ErrInvalidBody, "request.invalid_body", err)
	}

	if err := h.validator.Struct(req); err != nil {
		return app_errors.NewValidationError(app_errors.ParseValidationError(err))
	}

	// call service
	resp, err := h.service.CheckEndTime(c.Context(), ownerID, einsatzID, req)
	if err != nil {
		return err
	}

	reqID := handlers.GetRequestID(c)
	lang, _ := c.Locals("lang").(string)
	webResp := handlers.CreateResponse(h.i18n.T(lang, "response.success_check_end_time", nil), resp, reqID)
	if err := c.Status(fiber.StatusOK).JSON(webResp); err != nil {
		return app_errors.NewAppError(fiber.StatusInternalServerError, app_errors.ErrInternal, "response.write_failed", err)
	}

	return nil
}
