package einsatz_case

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"

	einsatz_dto "github.com/Xenn-00/schicht-meister/internal/dtos/einsatz-dto"
	"github.com/Xenn-00/schicht-meister/internal/entity"
	app_errors "github.com/Xenn-00/schicht-meister/internal/errors"
)

func TestCheckEndTime(t *testing.T) {
	ctx := context.Background()

	repo := new(MockEinsatzRepo)
	service := &EinsatzService{
		repo: repo,
	}

	ownerID := "alice"
	einsatzEnd := ts(10, 25)
	einsatz := &entity.EinsatzEntity{
		ID:        "e-2",
		OwnerID:   ownerID,
		StartTime: ts(10, 15),
		EndTime:   &einsatzEnd,
	}
	neighbour := closedEinsatz("e-1", ownerID, ts(10, 30), ts(11, 0))

	repo.On("GetByID", ctx, "e-2").Return(einsatz, (*app_errors.AppError)(nil))
	repo.On("GetAllByOwner", ctx, ownerID).Return([]entity.EinsatzEntity{*einsatz, neighbour}, (*app_errors.AppError)(nil))

	resp, err := service.CheckEndTime(ctx, ownerID, "e-2", &einsatz_dto.CheckEndTimeRequest{EndTime: ts(10, 28)})
	assert.Nil(t, err)
	assert.True(t, resp.Valid)

	resp, err = service.CheckEndTime(ctx, ownerID, "e-2", &einsatz_dto.CheckEndTimeRequest{EndTime: ts(10, 40)})
	assert.Nil(t, err)
	assert.False(t, resp.Valid)

	repo.AssertExpectations(t)
}
