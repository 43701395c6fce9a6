package einsatz_case

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	app_errors "github.com/Xenn-00/schicht-meister/internal/errors"
)

func TestCloseOpenEinsaetze_Success(t *testing.T) {
	ctx := context.Background()

	repo := new(MockEinsatzRepo)
	txManager := new(MockTxManager)
	mockTx := new(MockTx)
	service := &EinsatzService{
		repo:      repo,
		txManager: txManager,
	}

	txManager.On("Begin", ctx).Return(mockTx, (*app_errors.AppError)(nil))
	repo.On("CloseAllOpenForOwner", ctx, mockTx, "alice", mock.AnythingOfType("time.Time")).Return(2, (*app_errors.AppError)(nil))
	mockTx.On("Commit", ctx).Return((*app_errors.AppError)(nil))
	mockTx.On("Rollback", ctx).Return((*app_errors.AppError)(nil))

	resp, err := service.CloseOpenEinsaetze(ctx, "alice")

	assert.Nil(t, err)
	assert.NotNil(t, resp)
	assert.Equal(t, 2, resp.ClosedCount)

	repo.AssertExpectations(t)
	txManager.AssertExpectations(t)
}

// Nothing open is not an error, just a zero count
func TestCloseOpenEinsaetze_NothingOpen(t *testing.T) {
	ctx := context.Background()

	repo := new(MockEinsatzRepo)
	txManager := new(MockTxManager)
	mockTx := new(MockTx)
	service := &EinsatzService{
		repo:      repo,
		txManager: txManager,
	}

	txManager.On("Begin", ctx).Return(mockTx, (*app_errors.AppError)(nil))
	repo.On("CloseAllOpenForOwner", ctx, mockTx, "alice", mock.AnythingOfType("time.Time")).Return(0, (*app_errors.AppError)(nil))
	mockTx.On("Commit", ctx).Return((*app_errors.AppError)(nil))
	mockTx.On("Rollback", ctx).Return((*app_errors.AppError)(nil))

	resp, err := service.CloseOpenEinsaetze(ctx, "alice")

	assert.Nil(t, err)
	assert.Equal(t, 0, resp.ClosedCount)

	repo.AssertExpectations(t)
}
