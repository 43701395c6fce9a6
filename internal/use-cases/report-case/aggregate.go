package report_case

import (
	"sort"
	"time"

	"github.com/rs/zerolog/log"
	"github.com/shopspring/decimal"

	"github.com/Xenn-00/schicht-meister/internal/category"
	"github.com/Xenn-00/schicht-meister/internal/entity"
)

// dateTitleLayout: kurzes Datumslabel für Abschnitte und Berichtszeilen.
const dateTitleLayout = "Mon, 2 Jan"

var sixty = decimal.NewFromInt(60)

// BuildPayReport faltet den kompletten Bestand eines Owners in einen
// PayReport. Reine Berechnung über den übergebenen Snapshot, die Eingaben
// werden nie verändert.
//
// Regeln:
//   - Schichten ohne Startzeit fallen raus; eine offene Schicht zählt bis now.
//   - Einsaetze ohne Kategorie, Start- oder Endzeit fallen aus jeder Summe
//     raus (sie existieren weiter im Bestand, tragen aber nichts bei).
//   - since begrenzt auf Einträge ab Mitternacht (lokal) dieses Datums.
//   - Kaputte Dauern werden auf null gesetzt, nie in die Summen propagiert.
//   - Nur zahlbare Kategorien zählen in PaidMinutes/PaidEinsaetze und in die
//     Lohnsumme: minimumWage * bezahlte Minuten / 60 * PayRateFactor.
func BuildPayReport(ownerID string, einsaetze []entity.EinsatzEntity, schichten []entity.SchichtEntity, since *time.Time, now time.Time, minimumWage decimal.Decimal) *entity.PayReport {
	report := &entity.PayReport{
		OwnerID:     ownerID,
		TotalPay:    decimal.Zero,
		Categories:  make(map[entity.CategoryID]entity.CategoryInfo),
		Groups:      []entity.DateGroup{},
		Statistics:  []entity.StatisticsByDate{},
		GeneratedAt: now,
	}

	var sinceBound time.Time
	if since != nil {
		sinceBound = midnightOf(*since)
	}

	type dayAccumulator struct {
		date           time.Time
		schichtMinutes int64
		einsatzMinutes int64
		paidMinutes    int64
		einsatzCount   int
		ratingSum      int
		ratingCount    int
		pay            decimal.Decimal
	}
	days := make(map[string]*dayAccumulator)
	dayOf := func(t time.Time) *dayAccumulator {
		key := midnightOf(t).Format(time.DateOnly)
		acc, ok := days[key]
		if !ok {
			acc = &dayAccumulator{date: midnightOf(t), pay: decimal.Zero}
			days[key] = acc
		}
		return acc
	}

	// Schichten
	for i := range schichten {
		schicht := &schichten[i]
		if schicht.StartTime.IsZero() {
			continue
		}
		if since != nil && schicht.StartTime.Before(sinceBound) {
			continue
		}
		minutes := int64(schicht.Duration(now) / time.Minute)
		report.TotalSchichten++
		report.TotalSchichtMinutes += minutes
		dayOf(schicht.StartTime).schichtMinutes += minutes
	}

	// Einsaetze: nur wohlgeformte (Kategorie, Start und Ende gesetzt)
	var included []entity.EinsatzEntity
	for i := range einsaetze {
		einsatz := einsaetze[i]
		if einsatz.Category == "" || einsatz.StartTime.IsZero() || einsatz.EndTime == nil {
			continue
		}
		if since != nil && einsatz.StartTime.Before(sinceBound) {
			continue
		}
		if !category.IsKnown(einsatz.Category) {
			log.Warn().Str("einsatz_id", einsatz.ID).Str("category", string(einsatz.Category)).Msg("Einsatz mit unbekannter Kategorie übersprungen")
			continue
		}
		included = append(included, einsatz)
	}

	for i := range included {
		einsatz := &included[i]
		minutes := durationMinutes(einsatz.StartTime, *einsatz.EndTime)

		info := report.Categories[einsatz.Category]
		info.Minutes += minutes
		info.EinsatzCount++
		report.Categories[einsatz.Category] = info

		report.TotalEinsatzMinutes += minutes
		report.TotalEinsaetze++

		day := dayOf(einsatz.StartTime)
		day.einsatzMinutes += minutes
		day.einsatzCount++
		if einsatz.Rating != nil {
			day.ratingSum += *einsatz.Rating
			day.ratingCount++
		}

		catInfo, catErr := category.Resolve(einsatz.Category)
		if catErr == nil && catInfo.Payable {
			report.PaidMinutes += minutes
			report.PaidEinsaetze++
			day.paidMinutes += minutes

			pay := minimumWage.
				Mul(decimal.NewFromInt(minutes)).
				Div(sixty).
				Mul(decimal.NewFromFloat(einsatz.PayRateFactor))
			day.pay = day.pay.Add(pay)
			report.TotalPay = report.TotalPay.Add(pay)
		}
	}

	// Absteigend nach Startzeit, dann nach lokalem Kalendertag gruppieren.
	// Die Gruppierung übernimmt die eingehende Reihenfolge unverändert.
	sort.SliceStable(included, func(i, j int) bool {
		return included[i].StartTime.After(included[j].StartTime)
	})

	for i := range included {
		date := midnightOf(included[i].StartTime)
		if n := len(report.Groups); n > 0 && report.Groups[n-1].Date.Equal(date) {
			report.Groups[n-1].Einsaetze = append(report.Groups[n-1].Einsaetze, included[i])
			continue
		}
		report.Groups = append(report.Groups, entity.DateGroup{
			Date:      date,
			Title:     date.Format(dateTitleLayout),
			Einsaetze: []entity.EinsatzEntity{included[i]},
		})
	}

	// Eine Zeile pro Kalendertag (auch reine Schicht-Tage), jüngster Tag zuerst
	for key, acc := range days {
		report.Statistics = append(report.Statistics, entity.StatisticsByDate{
			ID:             key,
			Date:           acc.date,
			Title:          acc.date.Format(dateTitleLayout),
			SchichtMinutes: acc.schichtMinutes,
			EinsatzMinutes: acc.einsatzMinutes,
			PaidMinutes:    acc.paidMinutes,
			EinsatzCount:   acc.einsatzCount,
			RatingSum:      acc.ratingSum,
			RatingCount:    acc.ratingCount,
			TotalPay:       acc.pay,
		})
	}
	sort.Slice(report.Statistics, func(i, j int) bool {
		return report.Statistics[i].Date.After(report.Statistics[j].Date)
	})

	return report
}

func durationMinutes(start, end time.Time) int64 {
	d := end.Sub(start)
	if d < 0 {
		d = -d
	}
	return int64(d / time.Minute)
}

func midnightOf(t time.Time) time.Time {
	local := t.Local()
	return time.Date(local.Year(), local.Month(), local.Day(), 0, 0, 0, 0, local.Location())
}
