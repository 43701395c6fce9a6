package schicht_case

import (
	"context"

	schicht_dto "github.com/Xenn-00/schicht-meister/internal/dtos/schicht-dto"
	app_errors "github.com/Xenn-00/schicht-meister/internal/errors"
)

type SchichtServiceContract interface {
	SignOn(ctx context.Context, ownerID string, req *schicht_dto.SignOnRequest) (*schicht_dto.SchichtResponse, *app_errors.AppError)
	SignOff(ctx context.Context, ownerID string) (*schicht_dto.SchichtResponse, *app_errors.AppError)
	CurrentSchicht(ctx context.Context, ownerID string) (*schicht_dto.SchichtResponse, *app_errors.AppError)
	ListSchichten(ctx context.Context, ownerID string) ([]schicht_dto.SchichtResponse, *app_errors.AppError)
}
