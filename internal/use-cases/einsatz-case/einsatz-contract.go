package einsatz_case

import (
	"context"

	einsatz_dto "github.com/Xenn-00/schicht-meister/internal/dtos/einsatz-dto"
	app_errors "github.com/Xenn-00/schicht-meister/internal/errors"
)

type EinsatzServiceContract interface {
	CreateEinsatz(ctx context.Context, ownerID string, req *einsatz_dto.CreateEinsatzRequest) (*einsatz_dto.EinsatzResponse, *app_errors.AppError)
	GetEinsatzDetails(ctx context.Context, ownerID, einsatzID string) (*einsatz_dto.EinsatzResponse, *app_errors.AppError)
	ListEinsaetze(ctx context.Context, ownerID string) ([]einsatz_dto.EinsatzResponse, *app_errors.AppError)
	UpdateEinsatz(ctx context.Context, ownerID, einsatzID string, req *einsatz_dto.UpdateEinsatzRequest) (*einsatz_dto.UpdateEinsatzResponse, *app_errors.AppError)
	DeleteEinsatz(ctx context.Context, ownerID, einsatzID string) *app_errors.AppError
	CloseOpenEinsaetze(ctx context.Context, ownerID string) (*einsatz_dto.CloseOpenEinsaetzeResponse, *app_errors.AppError)
	CheckEndTime(ctx context.Context, ownerID, einsatzID string, req *einsatz_dto.CheckEndTimeRequest) (*einsatz_dto.CheckEndTimeResponse, *app_errors.AppError)
}
