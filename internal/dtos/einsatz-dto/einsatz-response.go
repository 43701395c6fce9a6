package einsatz_dto

import (
	"time"

	"github.com/Xenn-00/schicht-meister/internal/entity"
)

type EinsatzResponse struct {
	EinsatzID     string     `json:"einsatz_id"`
	OwnerID       string     `json:"owner_id"`
	Category      string     `json:"category,omitempty"`
	CategoryLabel string     `json:"category_label,omitempty"`
	Description   *string    `json:"description,omitempty"`
	StartTime     time.Time  `json:"start_time"`
	EndTime       *time.Time `json:"end_time,omitempty"`
	Rating        *int       `json:"rating,omitempty"`
	PayRateFactor float64    `json:"pay_rate_factor"`
	CreatedAt     time.Time  `json:"created_at"`
}

// UpdateEinsatzResponse trägt neben dem Ergebnis die Anpassungs-Notiz des
// Validators, damit die App dem Nutzer die korrigierte Endzeit anzeigen kann.
type UpdateEinsatzResponse struct {
	Einsatz         EinsatzResponse `json:"einsatz"`
	EndTimeAdjusted bool            `json:"end_time_adjusted"`
	AdjustReason    string          `json:"adjust_reason,omitempty"`
	Notice          string          `json:"notice,omitempty"`
}

type CheckEndTimeResponse struct {
	Valid bool `json:"valid"`
}

type CloseOpenEinsaetzeResponse struct {
	ClosedCount int `json:"closed_count"`
}

func ToEinsatzResponse(e *entity.EinsatzEntity, label string) EinsatzResponse {
	return EinsatzResponse{
		EinsatzID:     e.ID,
		OwnerID:       e.OwnerID,
		Category:      string(e.Category),
		CategoryLabel: label,
		Description:   e.Description,
		StartTime:     e.StartTime,
		EndTime:       e.EndTime,
		Rating:        e.Rating,
		PayRateFactor: e.PayRateFactor,
		CreatedAt:     e.CreatedAt,
	}
}
