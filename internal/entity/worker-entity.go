package entity

import "time"

// WorkerEntity repräsentiert einen registrierten Arbeiter. Registrierung und
// Authentifizierung laufen über einen externen Dienst; hier werden nur die
// Felder gehalten, die Berichte und Mailversand brauchen.
type WorkerEntity struct {
	ID        string    `json:"id"`
	Email     string    `json:"email"`
	Name      string    `json:"name"`
	IsActive  bool      `json:"is_active"`
	CreatedAt time.Time `json:"created_at"`
}
