package report_case

import (
	"context"
	"fmt"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog/log"
	"github.com/shopspring/decimal"
	"golang.org/x/sync/errgroup"

	"github.com/Xenn-00/schicht-meister/internal/category"
	"github.com/Xenn-00/schicht-meister/internal/config"
	einsatz_dto "github.com/Xenn-00/schicht-meister/internal/dtos/einsatz-dto"
	report_dto "github.com/Xenn-00/schicht-meister/internal/dtos/report-dto"
	"github.com/Xenn-00/schicht-meister/internal/entity"
	app_errors "github.com/Xenn-00/schicht-meister/internal/errors"
	"github.com/Xenn-00/schicht-meister/internal/queue"
	einsatz_repo "github.com/Xenn-00/schicht-meister/internal/repo/einsatz-repo"
	schicht_repo "github.com/Xenn-00/schicht-meister/internal/repo/schicht-repo"
	"github.com/Xenn-00/schicht-meister/internal/utils"
	worker_task "github.com/Xenn-00/schicht-meister/internal/worker/tasks"
)

// reportCacheTTL: kurz, weil jeder Schreibzugriff den Cache ohnehin invalidiert.
const reportCacheTTL = 60 * time.Second

type ReportService struct {
	redis       *redis.Client
	db          *pgxpool.Pool
	einsatzRepo einsatz_repo.EinsatzRepoContract
	schichtRepo schicht_repo.SchichtRepoContract
	taskQueue   queue.TaskQueueClient
	minimumWage decimal.Decimal
}

func NewReportService(db *pgxpool.Pool, redis *redis.Client, cfg *config.AppConfig) ReportServiceContract {
	return &ReportService{
		redis:       redis,
		db:          db,
		einsatzRepo: einsatz_repo.NewEinsatzRepo(db),
		schichtRepo: schicht_repo.NewSchichtRepo(db),
		taskQueue:   queue.NewTaskQueue(redis),
		minimumWage: cfg.MinimumWage(),
	}
}

func (s *ReportService) GetTimeline(ctx context.Context, ownerID string, filter *report_dto.ReportFilter) (*report_dto.TimelineResponse, *app_errors.AppError) {
	cacheKey := reportCacheKey(ownerID, "timeline", filter)
	if s.redis != nil {
		cached, cachedErr := utils.GetCacheData[report_dto.TimelineResponse](ctx, s.redis, cacheKey)
		if cached != nil && cachedErr == nil {
			return cached, nil
		}
	}

	report, err := s.buildReport(ctx, ownerID, filter)
	if err != nil {
		return nil, err
	}

	resp := &report_dto.TimelineResponse{
		OwnerID:  ownerID,
		Sections: make([]report_dto.TimelineSection, 0, len(report.Groups)),
	}
	for _, group := range report.Groups {
		section := report_dto.TimelineSection{
			Date:      group.Date,
			Title:     group.Title,
			Einsaetze: make([]einsatz_dto.EinsatzResponse, 0, len(group.Einsaetze)),
		}
		for i := range group.Einsaetze {
			section.Einsaetze = append(section.Einsaetze, einsatz_dto.ToEinsatzResponse(&group.Einsaetze[i], categoryLabel(group.Einsaetze[i].Category)))
		}
		resp.Sections = append(resp.Sections, section)
	}

	s.cacheReport(ctx, cacheKey, resp)
	return resp, nil
}

func (s *ReportService) GetStatistics(ctx context.Context, ownerID string, filter *report_dto.ReportFilter) (*report_dto.StatisticsResponse, *app_errors.AppError) {
	cacheKey := reportCacheKey(ownerID, "statistics", filter)
	if s.redis != nil {
		cached, cachedErr := utils.GetCacheData[report_dto.StatisticsResponse](ctx, s.redis, cacheKey)
		if cached != nil && cachedErr == nil {
			return cached, nil
		}
	}

	report, err := s.buildReport(ctx, ownerID, filter)
	if err != nil {
		return nil, err
	}

	resp := assembleStatistics(report)

	s.cacheReport(ctx, cacheKey, resp)
	return resp, nil
}

func (s *ReportService) EmailPayReport(ctx context.Context, ownerID string, filter *report_dto.ReportFilter) *app_errors.AppError {
	payload := &worker_task.SendPayReportEmailPayload{
		WorkerID: ownerID,
	}
	if filter != nil && filter.Since != nil {
		payload.Since = *filter.Since
	}

	if err := s.taskQueue.EnqueueSendPayReportEmail(payload); err != nil {
		log.Error().Err(err).Str("owner_id", ownerID).Msg("Fehler beim Einreihen des Pay-Report-Tasks")
		return app_errors.NewAppError(fiber.StatusInternalServerError, app_errors.ErrInternal, "internal_error", err)
	}

	return nil
}

// buildReport holt beide Bestände gleichzeitig (unabhängige Reads) und bricht
// komplett ab, sobald einer der beiden Abrufe fehlschlägt — nie ein Teilbericht.
func (s *ReportService) buildReport(ctx context.Context, ownerID string, filter *report_dto.ReportFilter) (*entity.PayReport, *app_errors.AppError) {
	since, err := parseSince(filter)
	if err != nil {
		return nil, err
	}

	var (
		einsaetze []entity.EinsatzEntity
		schichten []entity.SchichtEntity
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		result, err := s.einsatzRepo.GetAllByOwner(gctx, ownerID)
		if err != nil {
			return err
		}
		einsaetze = result
		return nil
	})
	g.Go(func() error {
		result, err := s.schichtRepo.GetAllByOwner(gctx, ownerID)
		if err != nil {
			return err
		}
		schichten = result
		return nil
	})

	if waitErr := g.Wait(); waitErr != nil {
		if appErr, ok := waitErr.(*app_errors.AppError); ok {
			return nil, appErr
		}
		return nil, app_errors.NewAppError(fiber.StatusInternalServerError, app_errors.ErrInternal, "internal_error", waitErr)
	}

	return BuildPayReport(ownerID, einsaetze, schichten, since, time.Now(), s.minimumWage), nil
}

func (s *ReportService) cacheReport(ctx context.Context, cacheKey string, resp any) {
	if s.redis == nil {
		return
	}
	if err := utils.SetCacheData(ctx, s.redis, cacheKey, &resp, reportCacheTTL); err != nil {
		log.Error().Err(err.Err).Msg("Fehler beim Einstellen der Redis-Cache")
	}
}

// assembleStatistics formt den PayReport in die Berichtsantwort um und rechnet
// die drei Stundensätze aus — jeweils nur, wenn der Nenner nicht null ist.
func assembleStatistics(report *entity.PayReport) *report_dto.StatisticsResponse {
	resp := &report_dto.StatisticsResponse{
		OwnerID:             report.OwnerID,
		TotalSchichten:      report.TotalSchichten,
		TotalSchichtMinutes: report.TotalSchichtMinutes,
		TotalEinsatzMinutes: report.TotalEinsatzMinutes,
		TotalEinsaetze:      report.TotalEinsaetze,
		PaidMinutes:         report.PaidMinutes,
		PaidEinsaetze:       report.PaidEinsaetze,
		TotalPay:            report.TotalPay.StringFixed(2),
		Categories:          []report_dto.CategoryTotal{},
		Rows:                make([]report_dto.DateStatistics, 0, len(report.Statistics)),
		GeneratedAt:         report.GeneratedAt,
	}

	// Registry-Reihenfolge, nur Kategorien mit Einträgen
	for _, info := range category.AllCategories() {
		acc, ok := report.Categories[info.ID]
		if !ok {
			continue
		}
		resp.Categories = append(resp.Categories, report_dto.CategoryTotal{
			Category:     string(info.ID),
			Label:        info.Label,
			Payable:      info.Payable,
			Minutes:      acc.Minutes,
			EinsatzCount: acc.EinsatzCount,
		})
	}

	for _, row := range report.Statistics {
		stats := report_dto.DateStatistics{
			Date:           row.Date,
			Title:          row.Title,
			SchichtMinutes: row.SchichtMinutes,
			EinsatzMinutes: row.EinsatzMinutes,
			PaidMinutes:    row.PaidMinutes,
			EinsatzCount:   row.EinsatzCount,
			TotalPay:       row.TotalPay.StringFixed(2),
		}
		if row.RatingCount > 0 {
			avg := float64(row.RatingSum) / float64(row.RatingCount)
			stats.RatingAvg = &avg
		}
		stats.PerEngagedHour = hourlyRate(row.TotalPay, row.PaidMinutes)
		stats.PerEinsatzHour = hourlyRate(row.TotalPay, row.EinsatzMinutes)
		stats.PerOnlineHour = hourlyRate(row.TotalPay, row.SchichtMinutes)
		resp.Rows = append(resp.Rows, stats)
	}

	return resp
}

// hourlyRate = pay / (minutes/60); nil bei null Minuten statt Inf/NaN.
func hourlyRate(pay decimal.Decimal, minutes int64) *string {
	if minutes <= 0 {
		return nil
	}
	rate := pay.Mul(sixty).Div(decimal.NewFromInt(minutes)).StringFixed(2)
	return &rate
}

func parseSince(filter *report_dto.ReportFilter) (*time.Time, *app_errors.AppError) {
	if filter == nil || filter.Since == nil || *filter.Since == "" {
		return nil, nil
	}
	since, err := time.ParseInLocation(time.DateOnly, *filter.Since, time.Local)
	if err != nil {
		return nil, app_errors.NewAppError(fiber.StatusBadRequest, app_errors.ErrInvalidQuery, "request.invalid_query", err)
	}
	return &since, nil
}

func reportCacheKey(ownerID, variant string, filter *report_dto.ReportFilter) string {
	since := "all"
	if filter != nil && filter.Since != nil && *filter.Since != "" {
		since = *filter.Since
	}
	return fmt.Sprintf("report:%s:%s:%s", ownerID, variant, since)
}

func categoryLabel(id entity.CategoryID) string {
	if id == "" {
		return ""
	}
	info, err := category.Resolve(id)
	if err != nil {
		return string(id)
	}
	return info.Label
}
