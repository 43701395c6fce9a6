package einsatz_case

import (
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/Xenn-00/schicht-meister/internal/entity"
	app_errors "github.com/Xenn-00/schicht-meister/internal/errors"
)

// endBeforeStartGrace wird angewendet, wenn die gewünschte Endzeit vor oder
// auf dem Start liegt.
const endBeforeStartGrace = 10 * time.Minute

const (
	ReasonEndBeforeStart  = "einsatz.end_before_start"
	ReasonOverlap         = "einsatz.end_overlaps_existing"
	ReasonCrossesMidnight = "einsatz.end_crosses_midnight"
)

// EndTimeResolution is the outcome of ResolveEndTime. Reason carries the i18n
// message key of the last applied correction, empty when nothing was adjusted.
type EndTimeResolution struct {
	EndTime  time.Time
	Adjusted bool
	Reason   string
}

// ResolveEndTime computes a legal end time for the candidate against the
// owner's other Einsaetze. It never mutates its inputs and is deterministic
// for a fixed input set:
//
//  1. end <= start is pushed to start + 10 minutes.
//  2. An end past midnight of the start's calendar day is clamped to the end
//     of that day (an Einsatz never spans two days).
//  3. An end that falls strictly inside another closed Einsatz of the same
//     owner is clamped to that Einsatz' start. The clamp is recomputed until
//     no conflict remains, always against the minimum conflicting start, so
//     the result cannot depend on iteration order. The clamp never drops
//     below the candidate's own start: when a conflicting interval straddles
//     it, the end is floored at the start (zero duration).
//
// Callers must pass a fresh snapshot of the owner's Einsaetze; the decision
// depends on the latest persisted state.
func ResolveEndTime(candidate *entity.EinsatzEntity, end time.Time, existing []entity.EinsatzEntity) (*EndTimeResolution, *app_errors.AppError) {
	if candidate == nil || candidate.OwnerID == "" || candidate.StartTime.IsZero() {
		return nil, app_errors.NewAppError(fiber.StatusBadRequest, app_errors.ErrInvalidBody, "einsatz.missing_owner_or_start", nil)
	}

	start := candidate.StartTime
	resolution := &EndTimeResolution{EndTime: end}

	if !resolution.EndTime.After(start) {
		resolution.EndTime = start.Add(endBeforeStartGrace)
		resolution.Adjusted = true
		resolution.Reason = ReasonEndBeforeStart
	}

	if dayEnd := endOfDay(start); resolution.EndTime.After(dayEnd) {
		resolution.EndTime = dayEnd
		resolution.Adjusted = true
		resolution.Reason = ReasonCrossesMidnight
	}

	for {
		conflictStart, found := minConflictingStart(candidate, resolution.EndTime, existing)
		if !found {
			break
		}
		if !conflictStart.After(start) {
			// Das fremde Intervall umschließt den eigenen Start. Der Clamp darf
			// nie unter den eigenen Start fallen, sonst entsteht ein invertiertes
			// Intervall; Nulldauer am Start ist das akzeptierte Minimum.
			resolution.EndTime = start
			resolution.Adjusted = true
			resolution.Reason = ReasonOverlap
			break
		}
		resolution.EndTime = conflictStart
		resolution.Adjusted = true
		resolution.Reason = ReasonOverlap
	}

	return resolution, nil
}

// IsValidEndTime prüft dieselben Regeln wie ResolveEndTime, ohne zu
// korrigieren: false bei Ende vor Start, Tageswechsel oder Überlappung.
func IsValidEndTime(candidate *entity.EinsatzEntity, end time.Time, existing []entity.EinsatzEntity) bool {
	if candidate == nil || candidate.OwnerID == "" || candidate.StartTime.IsZero() {
		return false
	}
	if !end.After(candidate.StartTime) {
		return false
	}
	if end.After(endOfDay(candidate.StartTime)) {
		return false
	}
	if _, found := minConflictingStart(candidate, end, existing); found {
		return false
	}
	return true
}

// minConflictingStart sucht unter den geschlossenen Einsaetzen des Owners den
// kleinsten Start, in dessen Intervall die Endzeit strikt hineinfällt.
func minConflictingStart(candidate *entity.EinsatzEntity, end time.Time, existing []entity.EinsatzEntity) (time.Time, bool) {
	var min time.Time
	found := false
	for _, other := range existing {
		if other.ID == candidate.ID || other.OwnerID != candidate.OwnerID {
			continue
		}
		if other.StartTime.IsZero() || other.EndTime == nil {
			continue
		}
		if end.After(other.StartTime) && end.Before(*other.EndTime) {
			if !found || other.StartTime.Before(min) {
				min = other.StartTime
				found = true
			}
		}
	}
	return min, found
}

func endOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 23, 59, 0, 0, t.Location())
}
