package schicht_repo

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

type SchichtRepo struct {
	db *pgxpool.Pool
}

func NewSchichtRepo(db *pgxpool.Pool) SchichtRepoContract {
	return &SchichtRepo{
		db: db,
	}
}

func (r *SchichtRepo) GetAllByOwner(ctx context.Context, ownerID string) ([]entity.SchichtEntity, *app_errors.AppError) {
	query := `
	SELECT id, owner_id, start_time, end_time, created_at
	FROM schichten
	WHERE owner_id = $1
	ORDER BY start_time DESC;
	`

	rows, err := r.db.Query(ctx, query, ownerID)
	if err != nil {
		return nil, app_errors.NewAppError(fiber.StatusInternalServerError, app_errors.ErrInternal, "internal_error", err)
	}
	defer rows.Close()

	var results []entity.SchichtEntity
	for rows.Next() {
		var result entity.SchichtEntity
		if err := rows.Scan(&result.ID, &result.OwnerID, &result.StartTime, &result.EndTime, &result.CreatedAt); err != nil {
			return nil, app_errors.NewAppError(fiber.StatusInternalServerError, app_errors.ErrInternal, "internal_error", err)
		}
		results = append(results, result)
	}

	if err := rows.Err(); err != nil {
		return nil, app_errors.MapPgxError(err)
	}

	return results, nil
}

func (r *SchichtRepo) GetOpenByOwner(ctx context.Context, ownerID string) (*entity.SchichtEntity, *app_errors.AppError) {
	query := `
	SELECT id, owner_id, start_time, end_time, created_at
	FROM schichten
	WHERE owner_id = $1
		AND end_time IS NULL
	ORDER BY start_time DESC
	LIMIT 1;
	`

	var row entity.SchichtEntity
	if err := r.db.QueryRow(ctx, query, ownerID).Scan(&row.ID, &row.OwnerID, &row.StartTime, &row.EndTime, &row.CreatedAt); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, app_errors.NewAppError(fiber.StatusNotFound, app_errors.ErrNotFound, "schicht_not_found", nil)
		}
		return nil, app_errors.NewAppError(fiber.StatusInternalServerError, app_errors.ErrInternal, "internal_error", err)
	}

	return &row, nil
}

func (r *SchichtRepo) InsertSchicht(ctx context.Context, schicht *entity.SchichtEntity) *app_errors.AppError {
	query := `
	INSERT INTO schichten (
			id,
			owner_id,
			start_time,
			end_time,
			created_at
		) VALUES (
			$1,$2,$3,$4,$5
		)
	`

	if _, err := r.db.Exec(ctx, query, schicht.ID, schicht.OwnerID, schicht.StartTime, schicht.EndTime, schicht.CreatedAt); err != nil {
		return app_errors.MapPgxError(err)
	}

	return nil
}

func (r *SchichtRepo) CloseSchicht(ctx context.Context, t tx.Tx, schichtID, ownerID string, endTime time.Time) (*entity.SchichtEntity, *app_errors.AppError) {
	pgtx, ok := t.(*tx.PgxTx)
	if !ok {
		return nil, app_errors.NewAppError(fiber.StatusInternalServerError, app_errors.ErrInternal, "internal_error", nil)
	}

	query := `
	UPDATE schichten
	SET end_time = GREATEST($1, start_time)
	WHERE id = $2
		AND owner_id = $3
		AND end_time IS NULL
	RETURNING id, owner_id, start_time, end_time, created_at;
	`

	var row entity.SchichtEntity
	if err := pgtx.Tx.QueryRow(ctx, query, endTime, schichtID, ownerID).Scan(&row.ID, &row.OwnerID, &row.StartTime, &row.EndTime, &row.CreatedAt); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, app_errors.NewAppError(fiber.StatusNotFound, app_errors.ErrNotFound, "schicht_not_found", nil)
		}
		return nil, app_errors.MapPgxError(err)
	}

	return &row, nil
}

func (r *SchichtRepo) CloseAllOpenBefore(ctx context.Context, t tx.Tx, cutoff time.Time, endTime time.Time) (int64, *app_errors.AppError) {
	pgtx, ok := t.(*tx.PgxTx)
	if !ok {
		return 0, app_errors.NewAppError(fiber.StatusInternalServerError, app_errors.ErrInternal, "internal_error", nil)
	}

	query := `
	UPDATE schichten
	SET end_time = GREATEST($1, start_time)
	WHERE end_time IS NULL
		AND start_time < $2;
	`

	tag, err := pgtx.Tx.Exec(ctx, query, endTime, cutoff)
	if err != nil {
		return 0, app_errors.MapPgxError(err)
	}

	return tag.RowsAffected(), nil
}
