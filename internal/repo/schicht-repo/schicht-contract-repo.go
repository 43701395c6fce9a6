package schicht_repo

import (
	"context"
	"time"

	"github.com/Xenn-00/schicht-meister/internal/abstraction/tx"
	"github.com/Xenn-00/schicht-meister/internal/entity"
	app_errors "github.com/Xenn-00/schicht-meister/internal/errors"
)

type SchichtRepoContract interface {
	GetAllByOwner(ctx context.Context, ownerID string) ([]entity.SchichtEntity, *app_errors.AppError)
	GetOpenByOwner(ctx context.Context, ownerID string) (*entity.SchichtEntity, *app_errors.AppError)
	InsertSchicht(ctx context.Context, schicht *entity.SchichtEntity) *app_errors.AppError
	CloseSchicht(ctx context.Context, t tx.Tx, schichtID, ownerID string, endTime time.Time) (*entity.SchichtEntity, *app_errors.AppError)
	CloseAllOpenBefore(ctx context.Context, t tx.Tx, cutoff time.Time, endTime time.Time) (int64, *app_errors.AppError)
}
