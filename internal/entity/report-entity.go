package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// CategoryInfo ist der Akkumulator pro Kategorie. Wird bei jeder
// Berichtsberechnung neu aufgebaut, nie persistiert.
type CategoryInfo struct {
	Minutes      int64 `json:"minutes"`
	EinsatzCount int   `json:"einsatz_count"`
}

// DateGroup ist ein Abschnitt der Zeitleiste: alle Einsätze eines Kalendertags,
// absteigend nach Startzeit.
type DateGroup struct {
	Date      time.Time       `json:"date"`  // Mitternacht lokal
	Title     string          `json:"title"` // kurzes Datumslabel (Wochentag, Tag, Monat)
	Einsaetze []EinsatzEntity `json:"einsaetze"`
}

// StatisticsByDate ist eine Berichtszeile pro Kalendertag. Berechnet, nie persistiert.
type StatisticsByDate struct {
	ID             string          `json:"id"`
	Date           time.Time       `json:"date"`
	Title          string          `json:"title"`
	SchichtMinutes int64           `json:"schicht_minutes"`
	EinsatzMinutes int64           `json:"einsatz_minutes"`
	PaidMinutes    int64           `json:"paid_minutes"`
	EinsatzCount   int             `json:"einsatz_count"`
	RatingSum      int             `json:"rating_sum"`
	RatingCount    int             `json:"rating_count"`
	TotalPay       decimal.Decimal `json:"total_pay"`
}

// PayReport ist das Aggregationsergebnis für einen Owner. Gehört für die Dauer
// einer Berechnung ausschließlich dem Report-Service; nach Rückgabe unveränderlich.
type PayReport struct {
	OwnerID             string                      `json:"owner_id"`
	TotalSchichten      int                         `json:"total_schichten"`
	TotalSchichtMinutes int64                       `json:"total_schicht_minutes"`
	TotalEinsatzMinutes int64                       `json:"total_einsatz_minutes"`
	TotalEinsaetze      int                         `json:"total_einsaetze"`
	PaidMinutes         int64                       `json:"paid_minutes"`
	PaidEinsaetze       int                         `json:"paid_einsaetze"`
	TotalPay            decimal.Decimal             `json:"total_pay"`
	Categories          map[CategoryID]CategoryInfo `json:"categories"`
	Groups              []DateGroup                 `json:"groups"`
	Statistics          []StatisticsByDate          `json:"statistics"`
	GeneratedAt         time.Time                   `json:"generated_at"`
}
