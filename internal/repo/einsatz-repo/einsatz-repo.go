package einsatz_repo

import (
	"context"
	"errors"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/Xenn-00/schicht-meister/internal/abstraction/tx"
	"github.com/Xenn-00/schicht-meister/internal/entity"
	app_errors "github.com/Xenn-00/schicht-meister/internal/errors"
)

type EinsatzRepo struct {
	db *pgxpool.Pool
}

func NewEinsatzRepo(db *pgxpool.Pool) EinsatzRepoContract {
	return &EinsatzRepo{
		db: db,
	}
}

func (r *EinsatzRepo) GetAllByOwner(ctx context.Context, ownerID string) ([]entity.EinsatzEntity, *app_errors.AppError) {
	query := `
	SELECT id, owner_id, category, description, start_time, end_time, rating, pay_rate_factor, created_at, updated_at
	FROM einsaetze
	WHERE owner_id = $1
	ORDER BY start_time DESC;
	`

	rows, err := r.db.Query(ctx, query, ownerID)
	if err != nil {
		return nil, app_errors.NewAppError(fiber.StatusInternalServerError, app_errors.ErrInternal, "internal_error", err)
	}
	defer rows.Close()

	var results []entity.EinsatzEntity
	for rows.Next() {
		var result entity.EinsatzEntity
		if err := rows.Scan(&result.ID, &result.OwnerID, &result.Category, &result.Description, &result.StartTime, &result.EndTime, &result.Rating, &result.PayRateFactor, &result.CreatedAt, &result.UpdatedAt); err != nil {
			return nil, app_errors.NewAppError(fiber.StatusInternalServerError, app_errors.ErrInternal, "internal_error", err)
		}
		results = append(results, result)
	}

	if err := rows.Err(); err != nil {
		return nil, app_errors.MapPgxError(err)
	}

	return results, nil
}

func (r *EinsatzRepo) GetByID(ctx context.Context, einsatzID string) (*entity.EinsatzEntity, *app_errors.AppError) {
	query := `
	SELECT id, owner_id, category, description, start_time, end_time, rating, pay_rate_factor, created_at, updated_at
	FROM einsaetze
	WHERE id = $1;
	`

	var row entity.EinsatzEntity
	if err := r.db.QueryRow(ctx, query, einsatzID).Scan(&row.ID, &row.OwnerID, &row.Category, &row.Description, &row.StartTime, &row.EndTime, &row.Rating, &row.PayRateFactor, &row.CreatedAt, &row.UpdatedAt); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, app_errors.NewAppError(fiber.StatusNotFound, app_errors.ErrNotFound, "einsatz_not_found", nil)
		}
		return nil, app_errors.NewAppError(fiber.StatusInternalServerError, app_errors.ErrInternal, "internal_error", err)
	}

	return &row, nil
}

func (r *EinsatzRepo) HasOpenEinsatz(ctx context.Context, ownerID string) (bool, *app_errors.AppError) {
	query := `
	SELECT EXISTS (
		SELECT 1
		FROM einsaetze
		WHERE owner_id = $1
			AND end_time IS NULL
	);
	`

	var exists bool
	if err := r.db.QueryRow(ctx, query, ownerID).Scan(&exists); err != nil {
		return false, app_errors.NewAppError(fiber.StatusInternalServerError, app_errors.ErrInternal, "internal_error", err)
	}
	return exists, nil
}

func (r *EinsatzRepo) InsertEinsatz(ctx context.Context, einsatz *entity.EinsatzEntity) *app_errors.AppError {
	query := `
	INSERT INTO einsaetze (
			id,
			owner_id,
			category,
			description,
			start_time,
			end_time,
			rating,
			pay_rate_factor,
			created_at
		) VALUES (
			$1,$2,$3,$4,$5,$6,$7,$8,$9
		)
	`

	if _, err := r.db.Exec(
		ctx,
		query,
		einsatz.ID,
		einsatz.OwnerID,
		einsatz.Category,
		einsatz.Description,
		einsatz.StartTime,
		einsatz.EndTime,
		einsatz.Rating,
		einsatz.PayRateFactor,
		einsatz.CreatedAt,
	); err != nil {
		return app_errors.MapPgxError(err)
	}

	return nil
}

func (r *EinsatzRepo) UpdateEinsatz(ctx context.Context, t tx.Tx, update *entity.EinsatzUpdate) (*entity.EinsatzEntity, *app_errors.AppError) {
	pgtx, ok := t.(*tx.PgxTx)
	if !ok {
		return nil, app_errors.NewAppError(fiber.StatusInternalServerError, app_errors.ErrInternal, "internal_error", nil)
	}

	query := `
	UPDATE einsaetze
	SET category = $1,
		description = $2,
		end_time = $3,
		rating = $4,
		updated_at = now()
	WHERE id = $5
		AND owner_id = $6
	RETURNING id, owner_id, category, description, start_time, end_time, rating, pay_rate_factor, created_at, updated_at;
	`

	var row entity.EinsatzEntity
	if err := pgtx.Tx.QueryRow(ctx, query, update.Category, update.Description, update.EndTime, update.Rating, update.ID, update.OwnerID).Scan(&row.ID, &row.OwnerID, &row.Category, &row.Description, &row.StartTime, &row.EndTime, &row.Rating, &row.PayRateFactor, &row.CreatedAt, &row.UpdatedAt); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, app_errors.NewAppError(fiber.StatusNotFound, app_errors.ErrNotFound, "einsatz_not_found", nil)
		}
		return nil, app_errors.MapPgxError(err)
	}

	return &row, nil
}

func (r *EinsatzRepo) DeleteEinsatz(ctx context.Context, einsatzID, ownerID string) *app_errors.AppError {
	query := `
	DELETE FROM einsaetze
	WHERE id = $1
		AND owner_id = $2;
	`

	tag, err := r.db.Exec(ctx, query, einsatzID, ownerID)
	if err != nil {
		return app_errors.MapPgxError(err)
	}
	if tag.RowsAffected() == 0 {
		return app_errors.NewAppError(fiber.StatusNotFound, app_errors.ErrNotFound, "einsatz_not_found", nil)
	}

	return nil
}

func (r *EinsatzRepo) CloseAllOpenForOwner(ctx context.Context, t tx.Tx, ownerID string, endTime time.Time) (int64, *app_errors.AppError) {
	pgtx, ok := t.(*tx.PgxTx)
	if !ok {
		return 0, app_errors.NewAppError(fiber.StatusInternalServerError, app_errors.ErrInternal, "internal_error", nil)
	}

	// end_time muss hinter start_time bleiben, auch wenn der Schließzeitpunkt
	// vor dem Einsatzbeginn liegt (Uhren-Drift zwischen Geräten).
	query := `
	UPDATE einsaetze
	SET end_time = GREATEST($1, start_time + interval '1 minute'),
		updated_at = now()
	WHERE owner_id = $2
		AND end_time IS NULL;
	`

	tag, err := pgtx.Tx.Exec(ctx, query, endTime, ownerID)
	if err != nil {
		return 0, app_errors.MapPgxError(err)
	}

	return tag.RowsAffected(), nil
}

func (r *EinsatzRepo) CloseAllOpenBefore(ctx context.Context, t tx.Tx, cutoff time.Time, endTime time.Time) (int64, *app_errors.AppError) {
	pgtx, ok := t.(*tx.PgxTx)
	if !ok {
		return 0, app_errors.NewAppError(fiber.StatusInternalServerError, app_errors.ErrInternal, "internal_error", nil)
	}

	query := `
	UPDATE einsaetze
	SET end_time = GREATEST($1, start_time + interval '1 minute'),
		updated_at = now()
	WHERE end_time IS NULL
		AND start_time < $2;
	`

	tag, err := pgtx.Tx.Exec(ctx, query, endTime, cutoff)
	if err != nil {
		return 0, app_errors.MapPgxError(err)
	}

	return tag.RowsAffected(), nil
}
