package worker_repo

import (
	"context"

	"github.com/Xenn-00/schicht-meister/internal/entity"
	app_errors "github.com/Xenn-00/schicht-meister/internal/errors"
)

type WorkerRepoContract interface {
	GetWorkerByID(ctx context.Context, workerID string) (*entity.WorkerEntity, *app_errors.AppError)
	ListActiveWorkers(ctx context.Context) ([]entity.WorkerEntity, *app_errors.AppError)
}
