package einsatz_case

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/Xenn-00/schicht-meister/internal/entity"
	app_errors "github.com/Xenn-00/schicht-meister/internal/errors"
)

func ts(hour, min int) time.Time {
	return time.Date(2026, time.March, 9, hour, min, 0, 0, time.Local)
}

func closedEinsatz(id, owner string, start, end time.Time) entity.EinsatzEntity {
	return entity.EinsatzEntity{
		ID:        id,
		OwnerID:   owner,
		Category:  entity.CategoryPhoneCall,
		StartTime: start,
		EndTime:   &end,
	}
}

// Happy path: no conflicts, candidate end stays untouched
func TestResolveEndTime_NoConflict(t *testing.T) {
	candidate := &entity.EinsatzEntity{ID: "e-1", OwnerID: "alice", StartTime: ts(10, 0)}

	resolution, err := ResolveEndTime(candidate, ts(10, 30), nil)

	assert.Nil(t, err)
	assert.False(t, resolution.Adjusted)
	assert.Empty(t, resolution.Reason)
	assert.Equal(t, ts(10, 30), resolution.EndTime)
}

// End before (or on) start is pushed to start + 10 minutes
func TestResolveEndTime_EndBeforeStart(t *testing.T) {
	candidate := &entity.EinsatzEntity{ID: "e-1", OwnerID: "alice", StartTime: ts(10, 0)}

	resolution, err := ResolveEndTime(candidate, ts(9, 45), nil)

	assert.Nil(t, err)
	assert.True(t, resolution.Adjusted)
	assert.Equal(t, ReasonEndBeforeStart, resolution.Reason)
	assert.Equal(t, ts(10, 10), resolution.EndTime)

	resolution, err = ResolveEndTime(candidate, ts(10, 0), nil)

	assert.Nil(t, err)
	assert.True(t, resolution.Adjusted)
	assert.Equal(t, ts(10, 10), resolution.EndTime)
}

// End inside another closed Einsatz clamps to that Einsatz' start
func TestResolveEndTime_OverlapClampsToConflictingStart(t *testing.T) {
	candidate := &entity.EinsatzEntity{ID: "e-2", OwnerID: "alice", StartTime: ts(10, 15)}
	existing := []entity.EinsatzEntity{
		closedEinsatz("e-1", "alice", ts(10, 30), ts(11, 0)),
	}

	resolution, err := ResolveEndTime(candidate, ts(10, 40), existing)

	assert.Nil(t, err)
	assert.True(t, resolution.Adjusted)
	assert.Equal(t, ReasonOverlap, resolution.Reason)
	assert.Equal(t, ts(10, 30), resolution.EndTime)
}

// A conflicting interval that straddles the candidate's start must not pull
// the end below the start: the clamp floors at the start (zero duration),
// never producing an inverted interval
func TestResolveEndTime_StraddlingIntervalFloorsAtStart(t *testing.T) {
	candidate := &entity.EinsatzEntity{ID: "e-2", OwnerID: "alice", StartTime: ts(10, 0)}
	existing := []entity.EinsatzEntity{
		closedEinsatz("e-1", "alice", ts(9, 0), ts(11, 0)),
	}

	resolution, err := ResolveEndTime(candidate, ts(10, 10), existing)

	assert.Nil(t, err)
	assert.True(t, resolution.Adjusted)
	assert.Equal(t, ReasonOverlap, resolution.Reason)
	assert.Equal(t, ts(10, 0), resolution.EndTime)
	assert.False(t, resolution.EndTime.Before(candidate.StartTime))
}

// Chained conflicts: after the first clamp the new end sits inside an earlier
// Einsatz, the clamp is recomputed until no conflict remains
func TestResolveEndTime_ChainedOverlaps(t *testing.T) {
	candidate := &entity.EinsatzEntity{ID: "e-3", OwnerID: "alice", StartTime: ts(9, 0)}
	existing := []entity.EinsatzEntity{
		closedEinsatz("e-1", "alice", ts(10, 0), ts(10, 30)),
		closedEinsatz("e-2", "alice", ts(10, 20), ts(10, 50)),
	}

	resolution, err := ResolveEndTime(candidate, ts(10, 45), existing)

	assert.Nil(t, err)
	assert.True(t, resolution.Adjusted)
	assert.Equal(t, ts(10, 0), resolution.EndTime)

	// result overlaps nothing, regardless of input order
	assert.True(t, IsValidEndTime(candidate, resolution.EndTime, existing))
}

// Re-running on its own output must not change the result
func TestResolveEndTime_Idempotent(t *testing.T) {
	candidate := &entity.EinsatzEntity{ID: "e-2", OwnerID: "alice", StartTime: ts(10, 15)}
	existing := []entity.EinsatzEntity{
		closedEinsatz("e-1", "alice", ts(10, 30), ts(11, 0)),
	}

	first, err := ResolveEndTime(candidate, ts(10, 40), existing)
	assert.Nil(t, err)

	second, err := ResolveEndTime(candidate, first.EndTime, existing)
	assert.Nil(t, err)
	assert.False(t, second.Adjusted)
	assert.Equal(t, first.EndTime, second.EndTime)
}

// Other owners and open Einsaetze never cause a clamp
func TestResolveEndTime_IgnoresForeignAndOpen(t *testing.T) {
	candidate := &entity.EinsatzEntity{ID: "e-2", OwnerID: "alice", StartTime: ts(10, 0)}
	open := entity.EinsatzEntity{ID: "e-3", OwnerID: "alice", StartTime: ts(10, 20)}
	existing := []entity.EinsatzEntity{
		closedEinsatz("e-1", "bob", ts(10, 15), ts(11, 0)),
		open,
	}

	resolution, err := ResolveEndTime(candidate, ts(10, 30), existing)

	assert.Nil(t, err)
	assert.False(t, resolution.Adjusted)
	assert.Equal(t, ts(10, 30), resolution.EndTime)
}

// In-place edits exclude the candidate's own persisted row
func TestResolveEndTime_ExcludesOwnID(t *testing.T) {
	candidate := &entity.EinsatzEntity{ID: "e-1", OwnerID: "alice", StartTime: ts(10, 0)}
	existing := []entity.EinsatzEntity{
		closedEinsatz("e-1", "alice", ts(10, 0), ts(11, 0)),
	}

	resolution, err := ResolveEndTime(candidate, ts(10, 30), existing)

	assert.Nil(t, err)
	assert.False(t, resolution.Adjusted)
	assert.Equal(t, ts(10, 30), resolution.EndTime)
}

// An Einsatz never spans two calendar days
func TestResolveEndTime_ClampsAtMidnight(t *testing.T) {
	start := ts(23, 30)
	candidate := &entity.EinsatzEntity{ID: "e-1", OwnerID: "alice", StartTime: start}

	resolution, err := ResolveEndTime(candidate, start.Add(90*time.Minute), nil)

	assert.Nil(t, err)
	assert.True(t, resolution.Adjusted)
	assert.Equal(t, ReasonCrossesMidnight, resolution.Reason)
	assert.Equal(t, ts(23, 59), resolution.EndTime)
}

// Missing owner or start time cannot be validated
func TestResolveEndTime_MissingInputs(t *testing.T) {
	noOwner := &entity.EinsatzEntity{ID: "e-1", StartTime: ts(10, 0)}
	resolution, err := ResolveEndTime(noOwner, ts(10, 30), nil)
	assert.Nil(t, resolution)
	assert.NotNil(t, err)
	assert.Equal(t, app_errors.ErrInvalidBody, err.Type)

	noStart := &entity.EinsatzEntity{ID: "e-1", OwnerID: "alice"}
	resolution, err = ResolveEndTime(noStart, ts(10, 30), nil)
	assert.Nil(t, resolution)
	assert.NotNil(t, err)
	assert.Equal(t, app_errors.ErrInvalidBody, err.Type)
}

func TestIsValidEndTime(t *testing.T) {
	candidate := &entity.EinsatzEntity{ID: "e-2", OwnerID: "alice", StartTime: ts(10, 15)}
	existing := []entity.EinsatzEntity{
		closedEinsatz("e-1", "alice", ts(10, 30), ts(11, 0)),
	}

	assert.True(t, IsValidEndTime(candidate, ts(10, 25), existing))
	assert.False(t, IsValidEndTime(candidate, ts(10, 40), existing), "end inside e-1")
	assert.False(t, IsValidEndTime(candidate, ts(10, 0), existing), "end before start")
	assert.False(t, IsValidEndTime(candidate, ts(10, 15), existing), "zero duration")

	nextDay := ts(10, 15).Add(24 * time.Hour)
	assert.False(t, IsValidEndTime(candidate, nextDay, existing), "crosses midnight")

	noOwner := &entity.EinsatzEntity{ID: "e-2", StartTime: ts(10, 15)}
	assert.False(t, IsValidEndTime(noOwner, ts(10, 25), existing))
}
