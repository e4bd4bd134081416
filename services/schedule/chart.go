// File: services/schedule/chart.go
package schedule

import (
	"hash/fnv"

	"letslink/models"
)

// seriesPalette holds the stroke colors series are drawn with. A user always
// maps to the same entry, keeping chart output reproducible across renders.
var seriesPalette = []string{
	"#2563eb", "#dc2626", "#16a34a", "#9333ea",
	"#ea580c", "#0891b2", "#db2777", "#65a30d",
	"#7c3aed", "#0d9488", "#b91c1c", "#4f46e5",
}

// ColorForUser derives a stable series color from the user id.
func ColorForUser(userID string) string {
	h := fnv.New32a()
	h.Write([]byte(userID))
	return seriesPalette[h.Sum32()%uint32(len(seriesPalette))]
}

// BuildChart arranges bucket-by-user coverage into the row/column structure
// the summary chart renders. One series per group member, in member order;
// members without submissions get an all-zero series. Pure: no I/O.
func BuildChart(plan *models.Plan, buckets []models.ChartBucket, mergedByUser map[string][]MergedRange, members []models.MemberProfile, intervalHours int) *models.AvailabilityChart {
	chart := &models.AvailabilityChart{
		PlanID:        plan.ID,
		IntervalHours: intervalHours,
		Buckets:       buckets,
		Series:        make([]models.ChartSeries, 0, len(members)),
	}

	for _, member := range members {
		coverage := make([]float64, len(buckets))
		for i, b := range buckets {
			coverage[i] = bucketCoverage(b, mergedByUser[member.UserID])
		}
		chart.Series = append(chart.Series, models.ChartSeries{
			UserID:   member.UserID,
			Name:     member.DisplayName(),
			Color:    ColorForUser(member.UserID),
			Coverage: coverage,
		})
	}
	return chart
}

// BuildTimeline arranges per-user merged ranges into rows for the
// interactive grid. Contributing record ids ride along on each bar so the
// client can open the right rows for edit or delete.
func BuildTimeline(plan *models.Plan, mergedByUser map[string][]MergedRange, members []models.MemberProfile) *models.AvailabilityTimeline {
	timeline := &models.AvailabilityTimeline{
		PlanID: plan.ID,
		Rows:   make([]models.TimelineRow, 0, len(members)),
	}

	for _, member := range members {
		row := models.TimelineRow{
			UserID: member.UserID,
			Name:   member.DisplayName(),
			Color:  ColorForUser(member.UserID),
		}
		for _, r := range mergedByUser[member.UserID] {
			row.Ranges = append(row.Ranges, models.TimelineRange{
				Start:     r.Start,
				End:       r.End,
				RecordIDs: r.RecordIDs,
			})
		}
		timeline.Rows = append(timeline.Rows, row)
	}
	return timeline
}
