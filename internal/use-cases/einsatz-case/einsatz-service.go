package einsatz_case

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
	"github.com/Xenn-00/schicht-meister/internal/category"
	"github.com/Xenn-00/schicht-meister/internal/config"
	einsatz_dto "github.com/Xenn-00/schicht-meister/internal/dtos/einsatz-dto"
	"github.com/Xenn-00/schicht-meister/internal/entity"
	app_errors "github.com/Xenn-00/schicht-meister/internal/errors"
	einsatz_repo "github.com/Xenn-00/schicht-meister/internal/repo/einsatz-repo"
)

type EinsatzService struct {
	redis          *redis.Client
	db             *pgxpool.Pool
	repo           einsatz_repo.EinsatzRepoContract
	txManager      tx.TxManager
	defaultMinutes int
}

func NewEinsatzService(db *pgxpool.Pool, redis *redis.Client, cfg *config.AppConfig) EinsatzServiceContract {
	return &EinsatzService{
		redis:          redis,
		db:             db,
		repo:           einsatz_repo.NewEinsatzRepo(db),
		txManager:      tx.NewPgxTxManager(db),
		defaultMinutes: cfg.WAGE.DefaultEinsatzMinutes,
	}
}

func (s *EinsatzService) CreateEinsatz(ctx context.Context, ownerID string, req *einsatz_dto.CreateEinsatzRequest) (*einsatz_dto.EinsatzResponse, *app_errors.AppError) {
	// Explizite Vorbedingung: solange noch ein Einsatz offen ist, wird kein
	// neuer angelegt. Der Owner muss erst schließen (oder close-all aufrufen).
	hasOpen, err := s.repo.HasOpenEinsatz(ctx, ownerID)
	if err != nil {
		return nil, err
	}
	if hasOpen {
		return nil, app_errors.NewAppError(fiber.StatusConflict, app_errors.ErrConflict, "conflict.einsatz_still_open", nil)
	}

	cat := entity.CategoryID("")
	factor := 1.0
	if req.Category != nil {
		cat = entity.CategoryID(*req.Category)
		factor = category.PayRateFactorFor(cat)
	}

	startTime := time.Now()
	if req.StartTime != nil {
		startTime = *req.StartTime
	}

	einsatzID, idErr := uuid.NewV7()
	if idErr != nil {
		return nil, app_errors.NewAppError(fiber.StatusInternalServerError, app_errors.ErrInternal, "internal_error", idErr)
	}

	einsatz := &entity.EinsatzEntity{
		ID:            einsatzID.String(),
		OwnerID:       ownerID,
		Category:      cat,
		Description:   req.Description,
		StartTime:     startTime,
		Rating:        nil,
		PayRateFactor: factor,
		CreatedAt:     time.Now(),
	}

	// Provisorische Endzeit, durch den Validator gegen den aktuellen Bestand
	// aufgelöst (kein Überlappen, kein Tageswechsel).
	siblings, err := s.repo.GetAllByOwner(ctx, ownerID)
	if err != nil {
		return nil, err
	}

	provisionalEnd := startTime.Add(time.Duration(s.defaultMinutes) * time.Minute)
	resolution, err := ResolveEndTime(einsatz, provisionalEnd, siblings)
	if err != nil {
		return nil, err
	}
	einsatz.EndTime = &resolution.EndTime

	if err := s.repo.InsertEinsatz(ctx, einsatz); err != nil {
		return nil, err
	}

	s.invalidateReportCache(ctx, ownerID)

	resp := einsatz_dto.ToEinsatzResponse(einsatz, categoryLabel(einsatz.Category))
	return &resp, nil
}

func (s *EinsatzService) GetEinsatzDetails(ctx context.Context, ownerID, einsatzID string) (*einsatz_dto.EinsatzResponse, *app_errors.AppError) {
	einsatz, err := s.repo.GetByID(ctx, einsatzID)
	if err != nil {
		return nil, err
	}
	if einsatz.OwnerID != ownerID {
		return nil, app_errors.NewAppError(fiber.StatusForbidden, app_errors.ErrForbidden, "forbidden", nil)
	}

	resp := einsatz_dto.ToEinsatzResponse(einsatz, categoryLabel(einsatz.Category))
	return &resp, nil
}

func (s *EinsatzService) ListEinsaetze(ctx context.Context, ownerID string) ([]einsatz_dto.EinsatzResponse, *app_errors.AppError) {
	einsaetze, err := s.repo.GetAllByOwner(ctx, ownerID)
	if err != nil {
		return nil, err
	}

	resp := make([]einsatz_dto.EinsatzResponse, 0, len(einsaetze))
	for i := range einsaetze {
		resp = append(resp, einsatz_dto.ToEinsatzResponse(&einsaetze[i], categoryLabel(einsaetze[i].Category)))
	}
	return resp, nil
}

func (s *EinsatzService) UpdateEinsatz(ctx context.Context, ownerID, einsatzID string, req *einsatz_dto.UpdateEinsatzRequest) (*einsatz_dto.UpdateEinsatzResponse, *app_errors.AppError) {
	einsatz, err := s.repo.GetByID(ctx, einsatzID)
	if err != nil {
		return nil, err
	}
	if einsatz.OwnerID != ownerID {
		return nil, app_errors.NewAppError(fiber.StatusForbidden, app_errors.ErrForbidden, "forbidden", nil)
	}

	update := &entity.EinsatzUpdate{
		ID:          einsatz.ID,
		OwnerID:     ownerID,
		Category:    einsatz.Category,
		Description: einsatz.Description,
		EndTime:     einsatz.EndTime,
		Rating:      einsatz.Rating,
	}
	if req.Category != nil {
		update.Category = entity.CategoryID(*req.Category)
	}
	if req.Description != nil {
		update.Description = req.Description
	}
	if req.Rating != nil {
		update.Rating = req.Rating
	}

	adjusted := false
	reason := ""
	notice := ""
	if req.EndTime != nil {
		// Frischen Bestand holen: der Clamp hängt vom zuletzt persistierten
		// Zustand ab, ein gecachter Snapshot wäre hier falsch.
		siblings, err := s.repo.GetAllByOwner(ctx, ownerID)
		if err != nil {
			return nil, err
		}

		resolution, err := ResolveEndTime(einsatz, *req.EndTime, siblings)
		if err != nil {
			return nil, err
		}

		update.EndTime = &resolution.EndTime
		adjusted = resolution.Adjusted
		reason = resolution.Reason
		if resolution.Adjusted {
			notice = fmt.Sprintf("End time adjusted to: %s", resolution.EndTime.Format(time.RFC3339))
		}
	}

	t, txErr := s.txManager.Begin(ctx)
	if txErr != nil {
		return nil, txErr
	}
	defer t.Rollback(ctx)

	updated, err := s.repo.UpdateEinsatz(ctx, t, update)
	if err != nil {
		return nil, err
	}

	if err := t.Commit(ctx); err != nil {
		return nil, err
	}

	s.invalidateReportCache(ctx, ownerID)

	resp := &einsatz_dto.UpdateEinsatzResponse{
		Einsatz:         einsatz_dto.ToEinsatzResponse(updated, categoryLabel(updated.Category)),
		EndTimeAdjusted: adjusted,
		AdjustReason:    reason,
		Notice:          notice,
	}
	return resp, nil
}

func (s *EinsatzService) DeleteEinsatz(ctx context.Context, ownerID, einsatzID string) *app_errors.AppError {
	if err := s.repo.DeleteEinsatz(ctx, einsatzID, ownerID); err != nil {
		return err
	}

	s.invalidateReportCache(ctx, ownerID)
	return nil
}

func (s *EinsatzService) CloseOpenEinsaetze(ctx context.Context, ownerID string) (*einsatz_dto.CloseOpenEinsaetzeResponse, *app_errors.AppError) {
	t, txErr := s.txManager.Begin(ctx)
	if txErr != nil {
		return nil, txErr
	}
	defer t.Rollback(ctx)

	closed, err := s.repo.CloseAllOpenForOwner(ctx, t, ownerID, time.Now())
	if err != nil {
		return nil, err
	}

	if err := t.Commit(ctx); err != nil {
		return nil, err
	}

	s.invalidateReportCache(ctx, ownerID)

	return &einsatz_dto.CloseOpenEinsaetzeResponse{ClosedCount: int(closed)}, nil
}

func (s *EinsatzService) CheckEndTime(ctx context.Context, ownerID, einsatzID string, req *einsatz_dto.CheckEndTimeRequest) (*einsatz_dto.CheckEndTimeResponse, *app_errors.AppError) {
	einsatz, err := s.repo.GetByID(ctx, einsatzID)
	if err != nil {
		return nil, err
	}
	if einsatz.OwnerID != ownerID {
		return nil, app_errors.NewAppError(fiber.StatusForbidden, app_errors.ErrForbidden, "forbidden", nil)
	}

	siblings, err := s.repo.GetAllByOwner(ctx, ownerID)
	if err != nil {
		return nil, err
	}

	return &einsatz_dto.CheckEndTimeResponse{Valid: IsValidEndTime(einsatz, req.EndTime, siblings)}, nil
}

func (s *EinsatzService) invalidateReportCache(ctx context.Context, ownerID string) {
	if s.redis == nil {
		return
	}
	if err := deleteReportCache(ctx, s.redis, ownerID); err != nil {
		log.Error().Err(err).Str("owner_id", ownerID).Msg("Fehler beim Löschen des Report-Caches")
	}
}
