package report_case

import (
	"context"
	"time"

	"github.com/stretchr/testify/mock"

	"github.com/Xenn-00/schicht-meister/internal/abstraction/tx"
	"github.com/Xenn-00/schicht-meister/internal/entity"
	app_errors "github.com/Xenn-00/schicht-meister/internal/errors"
	"github.com/Xenn-00/schicht-meister/internal/queue"
	worker_task "github.com/Xenn-00/schicht-meister/internal/worker/tasks"
)

type MockEinsatzRepo struct {
	mock.Mock
}

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

var _ queue.TaskQueueClient = (*MockTaskQueue)(nil)

// Mock TaskQueue for testing
type MockTaskQueue struct {
	mock.Mock
}

func (m *MockTaskQueue) EnqueueSendPayReportEmail(payload *worker_task.SendPayReportEmailPayload) error {
	args := m.Called(payload)
	return args.Error(0)
}
