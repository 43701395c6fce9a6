package einsatz_case

import (
	"context"
	"time"

	"github.com/stretchr/testify/mock"

	"github.com/Xenn-00/schicht-meister/internal/abstraction/tx"
	"github.com/Xenn-00/schicht-meister/internal/entity"
	app_errors "github.com/Xenn-00/schicht-meister/internal/errors"
)

type MockEinsatzRepo struct {
	mock.Mock
}

// Mocking repository that being used in method
func (m *MockEinsatzRepo) GetAllByOwner(ctx context.Context, ownerID string) ([]entity.EinsatzEntity, *app_errors.AppError) {
	args := m.Called(ctx, ownerID)
	return args.Get(0).([]entity.EinsatzEntity), args.Get(1).(*app_errors.AppError)
}

func (m *MockEinsatzRepo) GetByID(ctx context.Context, einsatzID string) (*entity.EinsatzEntity, *app_errors.AppError) {
	args := m.Called(ctx, einsatzID)
	return args.Get(0).(*entity.EinsatzEntity), args.Get(1).(*app_errors.AppError)
}

func (m *MockEinsatzRepo) HasOpenEinsatz(ctx context.Context, ownerID string) (bool, *app_errors.AppError) {
	args := m.Called(ctx, ownerID)
	return args.Bool(0), args.Get(1).(*app_errors.AppError)
}

func (m *MockEinsatzRepo) InsertEinsatz(ctx context.Context, einsatz *entity.EinsatzEntity) *app_errors.AppError {
	args := m.Called(ctx, einsatz)
	return args.Get(0).(*app_errors.AppError)
}

func (m *MockEinsatzRepo) UpdateEinsatz(ctx context.Context, t tx.Tx, update *entity.EinsatzUpdate) (*entity.EinsatzEntity, *app_errors.AppError) {
	args := m.Called(ctx, t, update)
	return args.Get(0).(*entity.EinsatzEntity), args.Get(1).(*app_errors.AppError)
}

func (m *MockEinsatzRepo) DeleteEinsatz(ctx context.Context, einsatzID, ownerID string) *app_errors.AppError {
	args := m.Called(ctx, einsatzID, ownerID)
	return args.Get(0).(*app_errors.AppError)
}

func (m *MockEinsatzRepo) CloseAllOpenForOwner(ctx context.Context, t tx.Tx, ownerID string, endTime time.Time) (int64, *app_errors.AppError) {
	args := m.Called(ctx, t, ownerID, endTime)
	return int64(args.Int(0)), args.Get(1).(*app_errors.AppError)
}

func (m *MockEinsatzRepo) CloseAllOpenBefore(ctx context.Context, t tx.Tx, cutoff time.Time, endTime time.Time) (int64, *app_errors.AppError) {
	args := m.Called(ctx, t, cutoff, endTime)
	return int64(args.Int(0)), args.Get(1).(*app_errors.AppError)
}
