package entity

import "time"

// EinsatzEntity repräsentiert einen Arbeitseinsatz in der Datenbank.
// EndTime == nil bedeutet "noch im Gange"; pro Owner darf höchstens ein
// Einsatz gleichzeitig offen sein.
type EinsatzEntity struct {
	ID            string     `json:"id"`
	OwnerID       string     `json:"owner_id"`
	Category      CategoryID `json:"category"` // leere Kategorie = noch nicht zugeordnet
	Description   *string    `json:"description,omitempty"`
	StartTime     time.Time  `json:"start_time"`
	EndTime       *time.Time `json:"end_time,omitempty"`
	Rating        *int       `json:"rating,omitempty"` // 1-5 oder nil
	PayRateFactor float64    `json:"pay_rate_factor"`  // fixiert bei Erstellung
	CreatedAt     time.Time  `json:"created_at"`
	UpdatedAt     *time.Time `json:"updated_at,omitempty"`
}

// EinsatzUpdate trägt die vom Owner korrigierbaren Felder.
type EinsatzUpdate struct {
	ID          string     `json:"id"`
	OwnerID     string     `json:"owner_id"`
	Category    CategoryID `json:"category"`
	Description *string    `json:"description,omitempty"`
	EndTime     *time.Time `json:"end_time,omitempty"`
	Rating      *int       `json:"rating,omitempty"`
}

// CategoryID ist die geschlossene Aufzählung der Einsatzkategorien.
type CategoryID string

const (
	CategoryPhoneCall CategoryID = "phone_call"
	CategoryFieldWork CategoryID = "field_work"
	CategoryDelivery  CategoryID = "delivery"
	CategoryTraining  CategoryID = "training"
	CategoryBreak     CategoryID = "break"
	CategoryAdmin     CategoryID = "admin"
)
