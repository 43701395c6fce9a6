package einsatz_case

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	einsatz_dto "github.com/Xenn-00/schicht-meister/internal/dtos/einsatz-dto"
	"github.com/Xenn-00/schicht-meister/internal/entity"
	app_errors "github.com/Xenn-00/schicht-meister/internal/errors"
)

// Test Happy path
func TestCreateEinsatz_Success(t *testing.T) {
	ctx := context.Background()

	repo := new(MockEinsatzRepo)
	service := &EinsatzService{
		repo:           repo,
		defaultMinutes: 10,
	}

	ownerID := "alice"
	cat := string(entity.CategoryPhoneCall)
	start := ts(10, 0)
	req := &einsatz_dto.CreateEinsatzRequest{
		Category:  &cat,
		StartTime: &start,
	}

	// expectation
	repo.On("HasOpenEinsatz", ctx, ownerID).Return(false, (*app_errors.AppError)(nil))
	repo.On("GetAllByOwner", ctx, ownerID).Return([]entity.EinsatzEntity{}, (*app_errors.AppError)(nil))
	repo.On("InsertEinsatz", ctx, mock.AnythingOfType("*entity.EinsatzEntity")).Return((*app_errors.AppError)(nil))

	resp, err := service.CreateEinsatz(ctx, ownerID, req)

	assert.Nil(t, err)
	assert.NotNil(t, resp)

	assert.Equal(t, ownerID, resp.OwnerID)
	assert.Equal(t, cat, resp.Category)
	assert.Equal(t, "Phone call", resp.CategoryLabel)
	assert.Equal(t, 1.0, resp.PayRateFactor)
	assert.Equal(t, start, resp.StartTime)

	// provisional end time
	assert.NotNil(t, resp.EndTime)
	assert.Equal(t, start.Add(10*time.Minute), *resp.EndTime)

	repo.AssertExpectations(t)
}

// Creation is rejected while another Einsatz is still open
func TestCreateEinsatz_OpenEinsatzConflict(t *testing.T) {
	ctx := context.Background()

	repo := new(MockEinsatzRepo)
	service := &EinsatzService{
		repo:           repo,
		defaultMinutes: 10,
	}

	repo.On("HasOpenEinsatz", ctx, "alice").Return(true, (*app_errors.AppError)(nil))

	resp, err := service.CreateEinsatz(ctx, "alice", &einsatz_dto.CreateEinsatzRequest{})

	assert.Nil(t, resp)
	assert.NotNil(t, err)
	assert.Equal(t, app_errors.ErrConflict, err.Type)

	repo.AssertExpectations(t)
}

// The provisional end time goes through the validator as well: an existing
// Einsatz right after the start clamps it
func TestCreateEinsatz_ProvisionalEndClamped(t *testing.T) {
	ctx := context.Background()

	repo := new(MockEinsatzRepo)
	service := &EinsatzService{
		repo:           repo,
		defaultMinutes: 10,
	}

	ownerID := "alice"
	start := ts(10, 0)
	blockerEnd := ts(10, 30)
	blocker := entity.EinsatzEntity{
		ID:        "e-1",
		OwnerID:   ownerID,
		Category:  entity.CategoryAdmin,
		StartTime: ts(10, 5),
		EndTime:   &blockerEnd,
	}

	repo.On("HasOpenEinsatz", ctx, ownerID).Return(false, (*app_errors.AppError)(nil))
	repo.On("GetAllByOwner", ctx, ownerID).Return([]entity.EinsatzEntity{blocker}, (*app_errors.AppError)(nil))
	repo.On("InsertEinsatz", ctx, mock.AnythingOfType("*entity.EinsatzEntity")).Return((*app_errors.AppError)(nil))

	resp, err := service.CreateEinsatz(ctx, ownerID, &einsatz_dto.CreateEinsatzRequest{StartTime: &start})

	assert.Nil(t, err)
	assert.NotNil(t, resp)
	assert.NotNil(t, resp.EndTime)
	assert.Equal(t, ts(10, 5), *resp.EndTime)

	repo.AssertExpectations(t)
}
