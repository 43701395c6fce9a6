package entity

import "time"

// SchichtEntity repräsentiert ein Verfügbarkeitsfenster (Anmelden/Abmelden).
// EndTime == nil bedeutet, dass die Schicht noch läuft.
type SchichtEntity struct {
	ID        string     `json:"id"`
	OwnerID   string     `json:"owner_id"`
	StartTime time.Time  `json:"start_time"`
	EndTime   *time.Time `json:"end_time,omitempty"`
	CreatedAt time.Time  `json:"created_at"`
}

// Duration liefert die Schichtdauer; eine noch offene Schicht wird relativ
// zu now gerechnet. Negative Dauern (korrupte Zeitstempel) werden auf 0 gekappt.
func (s *SchichtEntity) Duration(now time.Time) time.Duration {
	end := now
	if s.EndTime != nil {
		end = *s.EndTime
	}
	d := end.Sub(s.StartTime)
	if d < 0 {
		return 0
	}
	return d
}
