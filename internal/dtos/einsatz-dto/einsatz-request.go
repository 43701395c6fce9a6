package einsatz_dto

import (
	"time"

	"github.com/go-playground/validator/v10"

	"github.com/Xenn-00/schicht-meister/internal/category"
	"github.com/Xenn-00/schicht-meister/internal/entity"
)

type CreateEinsatzRequest struct {
	Category    *string    `json:"category,omitempty" validate:"omitempty,einsatzCategory"`
	Description *string    `json:"description,omitempty" validate:"omitempty,max=500"`
	StartTime   *time.Time `json:"start_time,omitempty"`
}

type UpdateEinsatzRequest struct {
	Category    *string    `json:"category,omitempty" validate:"omitempty,einsatzCategory"`
	Description *string    `json:"description,omitempty" validate:"omitempty,max=500"`
	EndTime     *time.Time `json:"end_time,omitempty"`
	Rating      *int       `json:"rating,omitempty" validate:"omitempty,min=1,max=5"`
}

type CheckEndTimeRequest struct {
	EndTime time.Time `json:"end_time" validate:"required"`
}

type ParamEinsatzID struct {
	ID string `params:"einsatz_id" validate:"required,uuid"`
}

func IsValidEinsatzCategory(fl validator.FieldLevel) bool {
	return category.IsKnown(entity.CategoryID(fl.Field().String()))
}
