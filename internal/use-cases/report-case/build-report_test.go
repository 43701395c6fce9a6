package report_case

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/Xenn-00/schicht-meister/internal/entity"
)

var testWage = decimal.RequireFromString("17.20")

func at(day, hour, min int) time.Time {
	return time.Date(2026, time.March, day, hour, min, 0, 0, time.Local)
}

func closed(id string, cat entity.CategoryID, start, end time.Time) entity.EinsatzEntity {
	return entity.EinsatzEntity{
		ID:            id,
		OwnerID:       "alice",
		Category:      cat,
		StartTime:     start,
		EndTime:       &end,
		PayRateFactor: 1.0,
	}
}

// Zero input: all totals zero, empty sections, nothing undefined anywhere
func TestBuildPayReport_Empty(t *testing.T) {
	now := at(9, 12, 0)

	report := BuildPayReport("alice", nil, nil, nil, now, testWage)

	assert.Equal(t, 0, report.TotalSchichten)
	assert.Equal(t, int64(0), report.TotalSchichtMinutes)
	assert.Equal(t, int64(0), report.TotalEinsatzMinutes)
	assert.Equal(t, 0, report.TotalEinsaetze)
	assert.Equal(t, int64(0), report.PaidMinutes)
	assert.Equal(t, 0, report.PaidEinsaetze)
	assert.True(t, report.TotalPay.IsZero())
	assert.Empty(t, report.Categories)
	assert.Empty(t, report.Groups)
	assert.Empty(t, report.Statistics)
}

// The alice scenario: payable phone call plus clamped unpayable admin block
func TestBuildPayReport_MixedCategories(t *testing.T) {
	now := at(9, 12, 0)
	einsaetze := []entity.EinsatzEntity{
		closed("a-1", entity.CategoryPhoneCall, at(9, 10, 0), at(9, 10, 30)),
		closed("a-2", entity.CategoryAdmin, at(9, 10, 15), at(9, 10, 30)),
	}

	report := BuildPayReport("alice", einsaetze, nil, nil, now, testWage)

	assert.Equal(t, int64(45), report.TotalEinsatzMinutes)
	assert.Equal(t, 2, report.TotalEinsaetze)
	assert.Equal(t, int64(30), report.PaidMinutes)
	assert.Equal(t, 1, report.PaidEinsaetze)

	assert.Equal(t, int64(30), report.Categories[entity.CategoryPhoneCall].Minutes)
	assert.Equal(t, int64(15), report.Categories[entity.CategoryAdmin].Minutes)

	// 17.20 * 30/60 = 8.60, admin contributes nothing
	assert.Equal(t, "8.60", report.TotalPay.StringFixed(2))

	// one date group, descending start time: a-2 (10:15) before a-1 (10:00)
	assert.Len(t, report.Groups, 1)
	assert.Len(t, report.Groups[0].Einsaetze, 2)
	assert.Equal(t, "a-2", report.Groups[0].Einsaetze[0].ID)
	assert.Equal(t, "a-1", report.Groups[0].Einsaetze[1].ID)
}

// Category minutes always sum to the overall total, paid stays a subset
func TestBuildPayReport_CategorySumProperty(t *testing.T) {
	now := at(9, 20, 0)
	einsaetze := []entity.EinsatzEntity{
		closed("a-1", entity.CategoryPhoneCall, at(7, 9, 0), at(7, 9, 45)),
		closed("a-2", entity.CategoryDelivery, at(7, 10, 0), at(7, 11, 30)),
		closed("a-3", entity.CategoryBreak, at(8, 12, 0), at(8, 12, 30)),
		closed("a-4", entity.CategoryPhoneCall, at(8, 14, 0), at(8, 14, 20)),
	}

	report := BuildPayReport("alice", einsaetze, nil, nil, now, testWage)

	var sum int64
	for _, info := range report.Categories {
		sum += info.Minutes
	}
	assert.Equal(t, report.TotalEinsatzMinutes, sum)
	assert.LessOrEqual(t, report.PaidMinutes, report.TotalEinsatzMinutes)
	assert.LessOrEqual(t, report.PaidEinsaetze, report.TotalEinsaetze)
}

// Dangling and malformed records are skipped, never a crash
func TestBuildPayReport_SkipsMalformed(t *testing.T) {
	now := at(9, 12, 0)
	end := at(9, 10, 30)
	einsaetze := []entity.EinsatzEntity{
		closed("ok", entity.CategoryPhoneCall, at(9, 10, 0), end),
		{ID: "open", OwnerID: "alice", Category: entity.CategoryPhoneCall, StartTime: at(9, 11, 0)},
		{ID: "no-category", OwnerID: "alice", StartTime: at(9, 8, 0), EndTime: &end},
		{ID: "no-start", OwnerID: "alice", Category: entity.CategoryAdmin, EndTime: &end},
		closed("unknown-category", entity.CategoryID("typo"), at(9, 7, 0), end),
	}

	report := BuildPayReport("alice", einsaetze, nil, nil, now, testWage)

	assert.Equal(t, 1, report.TotalEinsaetze)
	assert.Equal(t, int64(30), report.TotalEinsatzMinutes)
	assert.Len(t, report.Groups, 1)
	assert.Len(t, report.Groups[0].Einsaetze, 1)
}

// An open Schicht counts against now, recomputed per call
func TestBuildPayReport_OpenSchicht(t *testing.T) {
	now := at(9, 12, 0)
	closedEnd := at(9, 9, 0)
	schichten := []entity.SchichtEntity{
		{ID: "s-1", OwnerID: "alice", StartTime: at(9, 8, 0), EndTime: &closedEnd},
		{ID: "s-2", OwnerID: "alice", StartTime: at(9, 11, 0)},
	}

	report := BuildPayReport("alice", nil, schichten, nil, now, testWage)

	assert.Equal(t, 2, report.TotalSchichten)
	assert.Equal(t, int64(60+60), report.TotalSchichtMinutes)

	later := BuildPayReport("alice", nil, schichten, nil, now.Add(30*time.Minute), testWage)
	assert.Equal(t, int64(60+90), later.TotalSchichtMinutes)
}

// A negative Schicht duration (corrupt timestamps) is floored at zero
func TestBuildPayReport_NegativeSchichtDuration(t *testing.T) {
	now := at(9, 12, 0)
	end := at(9, 8, 0)
	schichten := []entity.SchichtEntity{
		{ID: "s-1", OwnerID: "alice", StartTime: at(9, 10, 0), EndTime: &end},
	}

	report := BuildPayReport("alice", nil, schichten, nil, now, testWage)

	assert.Equal(t, 1, report.TotalSchichten)
	assert.Equal(t, int64(0), report.TotalSchichtMinutes)
}

// since bounds the report to entries starting at or after local midnight
func TestBuildPayReport_SinceFilter(t *testing.T) {
	now := at(9, 12, 0)
	since := at(9, 0, 0)
	einsaetze := []entity.EinsatzEntity{
		closed("old", entity.CategoryPhoneCall, at(8, 10, 0), at(8, 10, 30)),
		closed("today", entity.CategoryPhoneCall, at(9, 10, 0), at(9, 10, 45)),
	}

	report := BuildPayReport("alice", einsaetze, nil, &since, now, testWage)

	assert.Equal(t, 1, report.TotalEinsaetze)
	assert.Equal(t, int64(45), report.TotalEinsatzMinutes)
	assert.Len(t, report.Groups, 1)
	assert.Equal(t, "today", report.Groups[0].Einsaetze[0].ID)
}

// Statistics: one row per calendar day, most recent first, Schicht-only days included
func TestBuildPayReport_StatisticsRows(t *testing.T) {
	now := at(9, 20, 0)
	rating := 4
	e1 := closed("a-1", entity.CategoryPhoneCall, at(7, 9, 0), at(7, 10, 0))
	e1.Rating = &rating
	einsaetze := []entity.EinsatzEntity{
		e1,
		closed("a-2", entity.CategoryAdmin, at(9, 9, 0), at(9, 9, 30)),
	}
	schichtEnd := at(8, 10, 0)
	schichten := []entity.SchichtEntity{
		{ID: "s-1", OwnerID: "alice", StartTime: at(8, 8, 0), EndTime: &schichtEnd},
	}

	report := BuildPayReport("alice", einsaetze, schichten, nil, now, testWage)

	assert.Len(t, report.Statistics, 3)
	assert.Equal(t, at(9, 0, 0), report.Statistics[0].Date)
	assert.Equal(t, at(8, 0, 0), report.Statistics[1].Date)
	assert.Equal(t, at(7, 0, 0), report.Statistics[2].Date)

	// day 7: one rated payable hour
	day7 := report.Statistics[2]
	assert.Equal(t, int64(60), day7.EinsatzMinutes)
	assert.Equal(t, int64(60), day7.PaidMinutes)
	assert.Equal(t, 4, day7.RatingSum)
	assert.Equal(t, 1, day7.RatingCount)
	assert.Equal(t, "17.20", day7.TotalPay.StringFixed(2))

	// day 8: Schicht only
	day8 := report.Statistics[1]
	assert.Equal(t, int64(120), day8.SchichtMinutes)
	assert.Equal(t, 0, day8.EinsatzCount)
	assert.True(t, day8.TotalPay.IsZero())

	// day 9: unpayable admin block
	day9 := report.Statistics[0]
	assert.Equal(t, int64(30), day9.EinsatzMinutes)
	assert.Equal(t, int64(0), day9.PaidMinutes)
	assert.True(t, day9.TotalPay.IsZero())
}

// The pay-rate factor scales the wage for payable categories
func TestBuildPayReport_PayRateFactor(t *testing.T) {
	now := at(9, 12, 0)
	boosted := closed("a-1", entity.CategoryDelivery, at(9, 10, 0), at(9, 11, 0))
	boosted.PayRateFactor = 1.5

	report := BuildPayReport("alice", []entity.EinsatzEntity{boosted}, nil, nil, now, testWage)

	// 17.20 * 60/60 * 1.5
	assert.Equal(t, "25.80", report.TotalPay.StringFixed(2))
}
