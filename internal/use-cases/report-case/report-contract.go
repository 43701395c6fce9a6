package report_case

import (
	"context"

	report_dto "github.com/Xenn-00/schicht-meister/internal/dtos/report-dto"
	app_errors "github.com/Xenn-00/schicht-meister/internal/errors"
)

type ReportServiceContract interface {
	GetTimeline(ctx context.Context, ownerID string, filter *report_dto.ReportFilter) (*report_dto.TimelineResponse, *app_errors.AppError)
	GetStatistics(ctx context.Context, ownerID string, filter *report_dto.ReportFilter) (*report_dto.StatisticsResponse, *app_errors.AppError)
	EmailPayReport(ctx context.Context, ownerID string, filter *report_dto.ReportFilter) *app_errors.AppError
}
