package schicht_dto

import "time"

type SignOnRequest struct {
	StartTime *time.Time `json:"start_time,omitempty"`
}

type SchichtResponse struct {
	SchichtID string     `json:"schicht_id"`
	OwnerID   string     `json:"owner_id"`
	StartTime time.Time  `json:"start_time"`
	EndTime   *time.Time `json:"end_time,omitempty"`
	Minutes   int64      `json:"minutes"`
}

type ParamSchichtID struct {
	ID string `params:"schicht_id" validate:"required,uuid"`
}
