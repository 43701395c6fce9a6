package schicht_case

import (
	"context"
	"time"

	"github.com/stretchr/testify/mock"

	"github.com/Xenn-00/schicht-meister/internal/abstraction/tx"
	"github.com/Xenn-00/schicht-meister/internal/entity"
	app_errors "github.com/Xenn-00/schicht-meister/internal/errors"
)

type MockSchichtRepo struct {
	mock.Mock
}

func (m *MockSchichtRepo) GetAllByOwner(ctx context.Context, ownerID string) ([]entity.SchichtEntity, *app_errors.AppError) {
	args := m.Called(ctx, ownerID)
	return args.Get(0).([]entity.SchichtEntity), args.Get(1).(*app_errors.AppError)
}

func (m *MockSchichtRepo) GetOpenByOwner(ctx context.Context, ownerID string) (*entity.SchichtEntity, *app_errors.AppError) {
	args := m.Called(ctx, ownerID)
	return args.Get(0).(*entity.SchichtEntity), args.Get(1).(*app_errors.AppError)
}

func (m *MockSchichtRepo) InsertSchicht(ctx context.Context, schicht *entity.SchichtEntity) *app_errors.AppError {
	args := m.Called(ctx, schicht)
	return args.Get(0).(*app_errors.AppError)
}

func (m *MockSchichtRepo) CloseSchicht(ctx context.Context, t tx.Tx, schichtID, ownerID string, endTime time.Time) (*entity.SchichtEntity, *app_errors.AppError) {
	args := m.Called(ctx, t, schichtID, ownerID, endTime)
	return args.Get(0).(*entity.SchichtEntity), args.Get(1).(*app_errors.AppError)
}

func (m *MockSchichtRepo) CloseAllOpenBefore(ctx context.Context, t tx.Tx, cutoff time.Time, endTime time.Time) (int64, *app_errors.AppError) {
	args := m.Called(ctx, t, cutoff, endTime)
	return int64(args.Int(0)), args.Get(1).(*app_errors.AppError)
}

type MockTx struct {
	mock.Mock
}

func (m *MockTx) Commit(ctx context.Context) *app_errors.AppError {
	args := m.Called(ctx)
	return args.Get(0).(*app_errors.AppError)
}

func (m *MockTx) Rollback(ctx context.Context) *app_errors.AppError {
	args := m.Called(ctx)
	return args.Get(0).(*app_errors.AppError)
}

type MockTxManager struct {
	mock.Mock
}

func (m *MockTxManager) Begin(ctx context.Context) (tx.Tx, *app_errors.AppError) {
	args := m.Called(ctx)
	return args.Get(0).(tx.Tx), args.Get(1).(*app_errors.AppError)
}
