package schicht_case

import (
	"context"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	schicht_dto "github.com/Xenn-00/schicht-meister/internal/dtos/schicht-dto"
	"github.com/Xenn-00/schicht-meister/internal/entity"
	app_errors "github.com/Xenn-00/schicht-meister/internal/errors"
)

// Test Happy path
func TestSignOn_Success(t *testing.T) {
	ctx := context.Background()

	repo := new(MockSchichtRepo)
	service := &SchichtService{
		repo: repo,
	}

	ownerID := "alice"
	notFound := app_errors.NewAppError(fiber.StatusNotFound, app_errors.ErrNotFound, "schicht_not_found", nil)

	repo.On("GetOpenByOwner", ctx, ownerID).Return((*entity.SchichtEntity)(nil), notFound)
	repo.On("InsertSchicht", ctx, mock.AnythingOfType("*entity.SchichtEntity")).Return((*app_errors.AppError)(nil))

	start := time.Now().Add(-5 * time.Minute)
	resp, err := service.SignOn(ctx, ownerID, &schicht_dto.SignOnRequest{StartTime: &start})

	assert.Nil(t, err)
	assert.NotNil(t, resp)
	assert.Equal(t, ownerID, resp.OwnerID)
	assert.Equal(t, start, resp.StartTime)
	assert.Nil(t, resp.EndTime)
	assert.Equal(t, int64(5), resp.Minutes)

	repo.AssertExpectations(t)
}

// A second sign-on while a Schicht is still running is rejected
func TestSignOn_AlreadyOpen(t *testing.T) {
	ctx := context.Background()

	repo := new(MockSchichtRepo)
	service := &SchichtService{
		repo: repo,
	}

	open := &entity.SchichtEntity{
		ID:        "s-1",
		OwnerID:   "alice",
		StartTime: time.Now().Add(-time.Hour),
	}

	repo.On("GetOpenByOwner", ctx, "alice").Return(open, (*app_errors.AppError)(nil))

	resp, err := service.SignOn(ctx, "alice", &schicht_dto.SignOnRequest{})

	assert.Nil(t, resp)
	assert.NotNil(t, err)
	assert.Equal(t, app_errors.ErrConflict, err.Type)

	repo.AssertExpectations(t)
}
