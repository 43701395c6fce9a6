package schicht_case

import (
	"context"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/Xenn-00/schicht-meister/internal/entity"
	app_errors "github.com/Xenn-00/schicht-meister/internal/errors"
)

// Test Happy path
func TestSignOff_Success(t *testing.T) {
	ctx := context.Background()

	repo := new(MockSchichtRepo)
	txManager := new(MockTxManager)
	mockTx := new(MockTx)
	service := &SchichtService{
		repo:      repo,
		txManager: txManager,
	}

	ownerID := "alice"
	start := time.Now().Add(-2 * time.Hour)
	open := &entity.SchichtEntity{
		ID:        "s-1",
		OwnerID:   ownerID,
		StartTime: start,
	}
	end := time.Now()
	closed := &entity.SchichtEntity{
		ID:        "s-1",
		OwnerID:   ownerID,
		StartTime: start,
		EndTime:   &end,
	}

	repo.On("GetOpenByOwner", ctx, ownerID).Return(open, (*app_errors.AppError)(nil))
	txManager.On("Begin", ctx).Return(mockTx, (*app_errors.AppError)(nil))
	repo.On("CloseSchicht", ctx, mockTx, "s-1", ownerID, mock.AnythingOfType("time.Time")).Return(closed, (*app_errors.AppError)(nil))
	mockTx.On("Commit", ctx).Return((*app_errors.AppError)(nil))
	mockTx.On("Rollback", ctx).Return((*app_errors.AppError)(nil))

	resp, err := service.SignOff(ctx, ownerID)

	assert.Nil(t, err)
	assert.NotNil(t, resp)
	assert.Equal(t, "s-1", resp.SchichtID)
	assert.NotNil(t, resp.EndTime)
	assert.Equal(t, int64(120), resp.Minutes)

	repo.AssertExpectations(t)
	txManager.AssertExpectations(t)
}

// Sign-off without a running Schicht is a conflict, not an internal error
func TestSignOff_NothingOpen(t *testing.T) {
	ctx := context.Background()

	repo := new(MockSchichtRepo)
	service := &SchichtService{
		repo: repo,
	}

	notFound := app_errors.NewAppError(fiber.StatusNotFound, app_errors.ErrNotFound, "schicht_not_found", nil)
	repo.On("GetOpenByOwner", ctx, "alice").Return((*entity.SchichtEntity)(nil), notFound)

	resp, err := service.SignOff(ctx, "alice")

	assert.Nil(t, resp)
	assert.NotNil(t, err)
	assert.Equal(t, app_errors.ErrConflict, err.Type)

	repo.AssertExpectations(t)
}

// An open Schicht in the list is measured against "now", fresh on every call
func TestListSchichten_OpenSchichtElapsedMinutes(t *testing.T) {
	ctx := context.Background()

	repo := new(MockSchichtRepo)
	service := &SchichtService{
		repo: repo,
	}

	now := time.Now()
	end := now.Add(-30 * time.Minute)
	schichten := []entity.SchichtEntity{
		{ID: "s-2", OwnerID: "alice", StartTime: now.Add(-10 * time.Minute)},
		{ID: "s-1", OwnerID: "alice", StartTime: now.Add(-90 * time.Minute), EndTime: &end},
	}

	repo.On("GetAllByOwner", ctx, "alice").Return(schichten, (*app_errors.AppError)(nil))

	resp, err := service.ListSchichten(ctx, "alice")

	assert.Nil(t, err)
	assert.Len(t, resp, 2)
	assert.Equal(t, int64(10), resp[0].Minutes)
	assert.Equal(t, int64(60), resp[1].Minutes)

	repo.AssertExpectations(t)
}
