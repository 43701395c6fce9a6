package report_handlers

import (
	"github.com/Xenn-00/schicht-meister/internal/config"
	report_dto "github.com/Xenn-00/schicht-meister/internal/dtos/report-dto"
	app_errors "github.com/Xenn-00/schicht-meister/internal/errors"
	"github.com/Xenn-00/schicht-meister/internal/handlers"
	internal_i18n "github.com/Xenn-00/schicht-meister/internal/i18n"
	report_case "github.com/Xenn-00/schicht-meister/internal/use-cases/report-case"
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/redis/go-redis/v9"
)

type ReportHandler struct {
	validator *validator.Validate
	service   report_case.ReportServiceContract
	i18n      *internal_i18n.I18nService
}

func NewReportHandler(db *pgxpool.Pool, redis *redis.Client, i18n *internal_i18n.I18nService, cfg *config.AppConfig) *ReportHandler {
	return &ReportHandler{
		validator: validator.New(),
		service:   report_case.NewReportService(db, redis, cfg),
		i18n:      i18n,
	}
}

// parseFilter liest den optionalen since-Query-Parameter (2006-01-02).
func (h *ReportHandler) parseFilter(c *fiber.Ctx) (*report_dto.ReportFilter, *app_errors.AppError) {
	var filter report_dto.ReportFilter
	if err := c.QueryParser(&filter); err != nil {
		return nil, app_errors.NewAppError(fiber.StatusBadRequest, app_errors.ErrInvalidQuery, "request.invalid_query", err)
	}

	if err := h.validator.Struct(filter); err != nil {
		return nil, app_errors.NewValidationError(app_errors.ParseValidationError(err))
	}
	return &filter, nil
}

func (h *ReportHandler) GetTimeline(c *fiber.Ctx) error {
	ownerID, err := handlers.GetOwnerID(c)
	if err != nil {
		return err
	}

	filter, err := h.parseFilter(c)
	if err != nil {
		return err
	}

	// call service
	resp, err := h.service.GetTimeline(c.Context(), ownerID, filter)
	if err != nil {
		return err
	}

	// set http cache behavior
	c.Set("Cache-Control", "private, max-age=30")
	reqID := handlers.GetRequestID(c)
	lang, _ := c.Locals("lang").(string)
	webResp := handlers.CreateResponse(h.i18n.T(lang, "response.success_timeline", nil), resp, reqID)
	if err := c.Status(fiber.StatusOK).JSON(webResp); err != nil {
		return app_errors.NewAppError(fiber.StatusInternalServerError, app_errors.ErrInternal, "response.write_failed", err)
	}

	return nil
}

func (h *ReportHandler) GetStatistics(c *fiber.Ctx) error {
	ownerID, err := handlers.GetOwnerID(c)
	if err != nil {
		return err
	}

	filter, err := h.parseFilter(c)
	if err != nil {
		return err
	}

	// call service
	resp, err := h.service.GetStatistics(c.Context(), ownerID, filter)
	if err != nil {
		return err
	}

	// set http cache behavior
	c.Set("Cache-Control", "private, max-age=30")
	reqID := handlers.GetRequestID(c)
	lang, _ := c.Locals("lang").(string)
	webResp := handlers.CreateResponse(h.i18n.T(lang, "response.success_statistics", nil), resp, reqID)
	if err := c.Status(fiber.StatusOK).JSON(webResp); err != nil {
		return app_errors.NewAppError(fiber.StatusInternalServerError, app_errors.ErrInternal, "response.write_failed", err)
	}

	return nil
}

func (h *ReportHandler) EmailPayReport(c *fiber.Ctx) error {
	ownerID, err := handlers.GetOwnerID(c)
	if err != nil {
		return err
	}

	filter, err := h.parseFilter(c)
	if err != nil {
		return err
	}

	// call service (enqueue only, Versand läuft im Worker)
	if err := h.service.EmailPayReport(c.Context(), ownerID, filter); err != nil {
		return err
	}

	reqID := handlers.GetRequestID(c)
	lang, _ := c.Locals("lang").(string)
	webResp := handlers.CreateResponse[any](h.i18n.T(lang, "response.success_email_report", nil), nil, reqID)
	if err := c.Status(fiber.StatusAccepted).JSON(webResp); err != nil {
		return app_errors.NewAppError(fiber.StatusInternalServerError, app_errors.ErrInternal, "response.write_failed", err)
	}

	return nil
}
