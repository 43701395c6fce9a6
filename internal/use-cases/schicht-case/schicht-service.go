package schicht_case

import (
	"context"
	"fmt"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog/log"

	"github.com/Xenn-00/schicht-meister/internal/abstraction/tx"
	schicht_dto "github.com/Xenn-00/schicht-meister/internal/dtos/schicht-dto"
	"github.com/Xenn-00/schicht-meister/internal/entity"
	app_errors "github.com/Xenn-00/schicht-meister/internal/errors"
	schicht_repo "github.com/Xenn-00/schicht-meister/internal/repo/schicht-repo"
	"github.com/Xenn-00/schicht-meister/internal/utils"
)

type SchichtService struct {
	redis     *redis.Client
	db        *pgxpool.Pool
	repo      schicht_repo.SchichtRepoContract
	txManager tx.TxManager
}

func NewSchichtService(db *pgxpool.Pool, redis *redis.Client) SchichtServiceContract {
	return &SchichtService{
		redis:     redis,
		db:        db,
		repo:      schicht_repo.NewSchichtRepo(db),
		txManager: tx.NewPgxTxManager(db),
	}
}

func (s *SchichtService) SignOn(ctx context.Context, ownerID string, req *schicht_dto.SignOnRequest) (*schicht_dto.SchichtResponse, *app_errors.AppError) {
	// Pro Owner höchstens eine laufende Schicht
	open, err := s.repo.GetOpenByOwner(ctx, ownerID)
	if err != nil && err.Type != app_errors.ErrNotFound {
		return nil, err
	}
	if open != nil {
		return nil, app_errors.NewAppError(fiber.StatusConflict, app_errors.ErrConflict, "conflict.schicht_still_open", nil)
	}

	startTime := time.Now()
	if req.StartTime != nil {
		startTime = *req.StartTime
	}

	schichtID, idErr := uuid.NewV7()
	if idErr != nil {
		return nil, app_errors.NewAppError(fiber.StatusInternalServerError, app_errors.ErrInternal, "internal_error", idErr)
	}

	schicht := &entity.SchichtEntity{
		ID:        schichtID.String(),
		OwnerID:   ownerID,
		StartTime: startTime,
		CreatedAt: time.Now(),
	}

	if err := s.repo.InsertSchicht(ctx, schicht); err != nil {
		return nil, err
	}

	s.invalidateReportCache(ctx, ownerID)

	return toSchichtResponse(schicht, time.Now()), nil
}

func (s *SchichtService) SignOff(ctx context.Context, ownerID string) (*schicht_dto.SchichtResponse, *app_errors.AppError) {
	open, err := s.repo.GetOpenByOwner(ctx, ownerID)
	if err != nil {
		if err.Type == app_errors.ErrNotFound {
			return nil, app_errors.NewAppError(fiber.StatusConflict, app_errors.ErrConflict, "conflict.no_open_schicht", nil)
		}
		return nil, err
	}

	t, txErr := s.txManager.Begin(ctx)
	if txErr != nil {
		return nil, txErr
	}
	defer t.Rollback(ctx)

	closed, err := s.repo.CloseSchicht(ctx, t, open.ID, ownerID, time.Now())
	if err != nil {
		return nil, err
	}

	if err := t.Commit(ctx); err != nil {
		return nil, err
	}

	s.invalidateReportCache(ctx, ownerID)

	return toSchichtResponse(closed, time.Now()), nil
}

func (s *SchichtService) CurrentSchicht(ctx context.Context, ownerID string) (*schicht_dto.SchichtResponse, *app_errors.AppError) {
	open, err := s.repo.GetOpenByOwner(ctx, ownerID)
	if err != nil {
		return nil, err
	}

	return toSchichtResponse(open, time.Now()), nil
}

func (s *SchichtService) ListSchichten(ctx context.Context, ownerID string) ([]schicht_dto.SchichtResponse, *app_errors.AppError) {
	schichten, err := s.repo.GetAllByOwner(ctx, ownerID)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	resp := make([]schicht_dto.SchichtResponse, 0, len(schichten))
	for i := range schichten {
		resp = append(resp, *toSchichtResponse(&schichten[i], now))
	}
	return resp, nil
}

func (s *SchichtService) invalidateReportCache(ctx context.Context, ownerID string) {
	if s.redis == nil {
		return
	}
	if err := utils.DeleteCacheByPattern(ctx, s.redis, fmt.Sprintf("report:%s:*", ownerID)); err != nil {
		log.Error().Err(err).Str("owner_id", ownerID).Msg("Fehler beim Löschen des Report-Caches")
	}
}

func toSchichtResponse(schicht *entity.SchichtEntity, now time.Time) *schicht_dto.SchichtResponse {
	return &schicht_dto.SchichtResponse{
		SchichtID: schicht.ID,
		OwnerID:   schicht.OwnerID,
		StartTime: schicht.StartTime,
		EndTime:   schicht.EndTime,
		Minutes:   int64(schicht.Duration(now) / time.Minute),
	}
}
