package report_dto

import (
	"time"

	einsatz_dto "github.com/Xenn-00/schicht-meister/internal/dtos/einsatz-dto"
)

// ReportFilter begrenzt den Bericht optional auf Einsätze ab einem Datum
// (lokales Kalenderdatum, Format 2006-01-02). Leer = gesamte Historie.
type ReportFilter struct {
	Since *string `query:"since,omitempty" validate:"omitempty,datetime=2006-01-02"`
}

type TimelineSection struct {
	Date      time.Time                     `json:"date"`
	Title     string                        `json:"title"`
	Einsaetze []einsatz_dto.EinsatzResponse `json:"einsaetze"`
}

type TimelineResponse struct {
	OwnerID  string            `json:"owner_id"`
	Sections []TimelineSection `json:"sections"`
}

type CategoryTotal struct {
	Category     string `json:"category"`
	Label        string `json:"label"`
	Payable      bool   `json:"payable"`
	Minutes      int64  `json:"minutes"`
	EinsatzCount int    `json:"einsatz_count"`
}

// DateStatistics ist eine Berichtszeile pro Kalendertag. Die drei Stundensätze
// fehlen, wenn der jeweilige Nenner null ist — niemals Inf oder NaN.
type DateStatistics struct {
	Date           time.Time `json:"date"`
	Title          string    `json:"title"`
	SchichtMinutes int64     `json:"schicht_minutes"`
	EinsatzMinutes int64     `json:"einsatz_minutes"`
	PaidMinutes    int64     `json:"paid_minutes"`
	EinsatzCount   int       `json:"einsatz_count"`
	RatingAvg      *float64  `json:"rating_avg,omitempty"`
	TotalPay       string    `json:"total_pay"`
	PerEngagedHour *string   `json:"per_engaged_hour,omitempty"`
	PerEinsatzHour *string   `json:"per_einsatz_hour,omitempty"`
	PerOnlineHour  *string   `json:"per_online_hour,omitempty"`
}

type StatisticsResponse struct {
	OwnerID             string           `json:"owner_id"`
	TotalSchichten      int              `json:"total_schichten"`
	TotalSchichtMinutes int64            `json:"total_schicht_minutes"`
	TotalEinsatzMinutes int64            `json:"total_einsatz_minutes"`
	TotalEinsaetze      int              `json:"total_einsaetze"`
	PaidMinutes         int64            `json:"paid_minutes"`
	PaidEinsaetze       int              `json:"paid_einsaetze"`
	TotalPay            string           `json:"total_pay"`
	Categories          []CategoryTotal  `json:"categories"`
	Rows                []DateStatistics `json:"rows"`
	GeneratedAt         time.Time        `json:"generated_at"`
}
