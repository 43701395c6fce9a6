package report_case

import (
	"context"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	report_dto "github.com/Xenn-00/schicht-meister/internal/dtos/report-dto"
	"github.com/Xenn-00/schicht-meister/internal/entity"
	app_errors "github.com/Xenn-00/schicht-meister/internal/errors"
	worker_task "github.com/Xenn-00/schicht-meister/internal/worker/tasks"
)

func TestGetStatistics_Success(t *testing.T) {
	ctx := context.Background()

	einsatzRepo := new(MockEinsatzRepo)
	schichtRepo := new(MockSchichtRepo)
	service := &ReportService{
		einsatzRepo: einsatzRepo,
		schichtRepo: schichtRepo,
		minimumWage: testWage,
	}

	einsaetze := []entity.EinsatzEntity{
		closed("a-1", entity.CategoryPhoneCall, at(9, 10, 0), at(9, 10, 30)),
	}
	schichtEnd := at(9, 11, 0)
	schichten := []entity.SchichtEntity{
		{ID: "s-1", OwnerID: "alice", StartTime: at(9, 10, 0), EndTime: &schichtEnd},
	}

	einsatzRepo.On("GetAllByOwner", mock.Anything, "alice").Return(einsaetze, (*app_errors.AppError)(nil))
	schichtRepo.On("GetAllByOwner", mock.Anything, "alice").Return(schichten, (*app_errors.AppError)(nil))

	resp, err := service.GetStatistics(ctx, "alice", &report_dto.ReportFilter{})

	assert.Nil(t, err)
	assert.NotNil(t, resp)
	assert.Equal(t, "alice", resp.OwnerID)
	assert.Equal(t, int64(30), resp.PaidMinutes)
	assert.Equal(t, "8.60", resp.TotalPay)
	assert.Len(t, resp.Categories, 1)
	assert.Equal(t, "Phone call", resp.Categories[0].Label)

	assert.Len(t, resp.Rows, 1)
	row := resp.Rows[0]
	assert.Equal(t, "8.60", row.TotalPay)
	// 8.60 over half an hour of paid work = 17.20/h engaged
	assert.NotNil(t, row.PerEngagedHour)
	assert.Equal(t, "17.20", *row.PerEngagedHour)
	// 8.60 over one hour online = 8.60/h
	assert.NotNil(t, row.PerOnlineHour)
	assert.Equal(t, "8.60", *row.PerOnlineHour)

	einsatzRepo.AssertExpectations(t)
	schichtRepo.AssertExpectations(t)
}

// A zero denominator omits the rate instead of emitting Inf or NaN
func TestGetStatistics_RateGuards(t *testing.T) {
	ctx := context.Background()

	einsatzRepo := new(MockEinsatzRepo)
	schichtRepo := new(MockSchichtRepo)
	service := &ReportService{
		einsatzRepo: einsatzRepo,
		schichtRepo: schichtRepo,
		minimumWage: testWage,
	}

	// unpayable only, no Schichten: every denominator except EinsatzMinutes is zero
	einsaetze := []entity.EinsatzEntity{
		closed("a-1", entity.CategoryBreak, at(9, 10, 0), at(9, 10, 30)),
	}

	einsatzRepo.On("GetAllByOwner", mock.Anything, "alice").Return(einsaetze, (*app_errors.AppError)(nil))
	schichtRepo.On("GetAllByOwner", mock.Anything, "alice").Return([]entity.SchichtEntity{}, (*app_errors.AppError)(nil))

	resp, err := service.GetStatistics(ctx, "alice", nil)

	assert.Nil(t, err)
	assert.Len(t, resp.Rows, 1)
	row := resp.Rows[0]
	assert.Nil(t, row.PerEngagedHour)
	assert.Nil(t, row.PerOnlineHour)
	assert.NotNil(t, row.PerEinsatzHour)
	assert.Equal(t, "0.00", *row.PerEinsatzHour)
}

// One failing fetch fails the whole report, never a partial one
func TestGetTimeline_FailFast(t *testing.T) {
	ctx := context.Background()

	einsatzRepo := new(MockEinsatzRepo)
	schichtRepo := new(MockSchichtRepo)
	service := &ReportService{
		einsatzRepo: einsatzRepo,
		schichtRepo: schichtRepo,
		minimumWage: testWage,
	}

	storageErr := app_errors.NewAppError(fiber.StatusInternalServerError, app_errors.ErrInternal, "internal_error", nil)
	einsatzRepo.On("GetAllByOwner", mock.Anything, "alice").Return(([]entity.EinsatzEntity)(nil), storageErr)
	schichtRepo.On("GetAllByOwner", mock.Anything, "alice").Return([]entity.SchichtEntity{}, (*app_errors.AppError)(nil)).Maybe()

	resp, err := service.GetTimeline(ctx, "alice", nil)

	assert.Nil(t, resp)
	assert.NotNil(t, err)
	assert.Equal(t, app_errors.ErrInternal, err.Type)
}

func TestGetTimeline_Sections(t *testing.T) {
	ctx := context.Background()

	einsatzRepo := new(MockEinsatzRepo)
	schichtRepo := new(MockSchichtRepo)
	service := &ReportService{
		einsatzRepo: einsatzRepo,
		schichtRepo: schichtRepo,
		minimumWage: testWage,
	}

	einsaetze := []entity.EinsatzEntity{
		closed("a-1", entity.CategoryPhoneCall, at(8, 9, 0), at(8, 9, 30)),
		closed("a-2", entity.CategoryAdmin, at(9, 10, 0), at(9, 10, 15)),
	}

	einsatzRepo.On("GetAllByOwner", mock.Anything, "alice").Return(einsaetze, (*app_errors.AppError)(nil))
	schichtRepo.On("GetAllByOwner", mock.Anything, "alice").Return([]entity.SchichtEntity{}, (*app_errors.AppError)(nil))

	resp, err := service.GetTimeline(ctx, "alice", nil)

	assert.Nil(t, err)
	assert.Len(t, resp.Sections, 2)
	// most recent day first
	assert.Equal(t, "a-2", resp.Sections[0].Einsaetze[0].EinsatzID)
	assert.Equal(t, "Admin", resp.Sections[0].Einsaetze[0].CategoryLabel)
	assert.Equal(t, "a-1", resp.Sections[1].Einsaetze[0].EinsatzID)
	assert.NotEmpty(t, resp.Sections[0].Title)
}

func TestEmailPayReport_Enqueues(t *testing.T) {
	ctx := context.Background()

	taskQueue := new(MockTaskQueue)
	service := &ReportService{
		taskQueue:   taskQueue,
		minimumWage: testWage,
	}

	since := "2026-03-09"
	taskQueue.On("EnqueueSendPayReportEmail", &worker_task.SendPayReportEmailPayload{
		WorkerID: "alice",
		Since:    since,
	}).Return(nil)

	err := service.EmailPayReport(ctx, "alice", &report_dto.ReportFilter{Since: &since})

	assert.Nil(t, err)
	taskQueue.AssertExpectations(t)
}
