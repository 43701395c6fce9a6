package worker_repo

import (
	"context"
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/Xenn-00/schicht-meister/internal/entity"
	app_errors "github.com/Xenn-00/schicht-meister/internal/errors"
)

type WorkerRepo struct {
	db *pgxpool.Pool
}

func NewWorkerRepo(db *pgxpool.Pool) WorkerRepoContract {
	return &WorkerRepo{
		db: db,
	}
}

func (r *WorkerRepo) GetWorkerByID(ctx context.Context, workerID string) (*entity.WorkerEntity, *app_errors.AppError) {
	query := `
	SELECT id, email, name, is_active, created_at
	FROM workers
	WHERE id = $1;
	`

	var row entity.WorkerEntity
	if err := r.db.QueryRow(ctx, query, workerID).Scan(&row.ID, &row.Email, &row.Name, &row.IsActive, &row.CreatedAt); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, app_errors.NewAppError(fiber.StatusNotFound, app_errors.ErrNotFound, "worker_not_found", nil)
		}
		return nil, app_errors.NewAppError(fiber.StatusInternalServerError, app_errors.ErrInternal, "internal_error", err)
	}

	return &row, nil
}

func (r *WorkerRepo) ListActiveWorkers(ctx context.Context) ([]entity.WorkerEntity, *app_errors.AppError) {
	query := `
	SELECT id, email, name, is_active, created_at
	FROM workers
	WHERE is_active = true
	ORDER BY created_at ASC;
	`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, app_errors.NewAppError(fiber.StatusInternalServerError, app_errors.ErrInternal, "internal_error", err)
	}
	defer rows.Close()

	var results []entity.WorkerEntity
	for rows.Next() {
		var result entity.WorkerEntity
		if err := rows.Scan(&result.ID, &result.Email, &result.Name, &result.IsActive, &result.CreatedAt); err != nil {
			return nil, app_errors.NewAppError(fiber.StatusInternalServerError, app_errors.ErrInternal, "internal_error", err)
		}
		results = append(results, result)
	}

	if err := rows.Err(); err != nil {
		return nil, app_errors.MapPgxError(err)
	}

	return results, nil
}
