package einsatz_repo

import (
	"context"
	"time"

	"github.com/Xenn-00/schicht-meister/internal/abstraction/tx"
	"github.com/Xenn-00/schicht-meister/internal/entity"
	app_errors "github.com/Xenn-00/schicht-meister/internal/errors"
)

type EinsatzRepoContract interface {
	GetAllByOwner(ctx context.Context, ownerID string) ([]entity.EinsatzEntity, *app_errors.AppError)
	GetByID(ctx context.Context, einsatzID string) (*entity.EinsatzEntity, *app_errors.AppError)
	HasOpenEinsatz(ctx context.Context, ownerID string) (bool, *app_errors.AppError)
	InsertEinsatz(ctx context.Context, einsatz *entity.EinsatzEntity) *app_errors.AppError
	UpdateEinsatz(ctx context.Context, t tx.Tx, update *entity.EinsatzUpdate) (*entity.EinsatzEntity, *app_errors.AppError)
	DeleteEinsatz(ctx context.Context, einsatzID, ownerID string) *app_errors.AppError
	CloseAllOpenForOwner(ctx context.Context, t tx.Tx, ownerID string, endTime time.Time) (int64, *app_errors.AppError)
	CloseAllOpenBefore(ctx context.Context, t tx.Tx, cutoff time.Time, endTime time.Time) (int64, *app_errors.AppError)
}
