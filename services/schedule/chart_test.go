// File: services/schedule/chart_test.go
package schedule

import (
	"testing"

	"letslink/models"
)

func TestColorForUserDeterministic(t *testing.T) {
	first := ColorForUser("user-123")
	for i := 0; i < 20; i++ {
		if got := ColorForUser("user-123"); got != first {
			t.Fatalf("color varies across calls: %s vs %s", got, first)
		}
	}

	inPalette := false
	for _, c := range seriesPalette {
		if c == first {
			inPalette = true
		}
	}
	if !inPalette {
		t.Errorf("color %s not from the palette", first)
	}
}

func TestBuildChartOneSeriesPerMember(t *testing.T) {
	plan := &models.Plan{ID: "p1", GroupID: "g1", StartDate: "2026-03-10", EndDate: "2026-03-10"}
	members := []models.MemberProfile{
		{UserID: "u1", FirstName: "Ada", Surname: "Lovelace"},
		{UserID: "u2", FirstName: "Alan", Surname: "Turing"},
	}

	planStart, planEnd, err := plan.Bounds()
	if err != nil {
		t.Fatal(err)
	}
	buckets := GenerateBuckets(planStart, planEnd, 2, 0)

	mergedByUser := map[string][]MergedRange{
		"u1": {{UserID: "u1", Start: localTime("2026-03-10", 8, 0), End: localTime("2026-03-10", 10, 0)}},
		// u2 submitted nothing.
	}

	chart := BuildChart(plan, buckets, mergedByUser, members, 2)
	if chart.PlanID != "p1" || chart.IntervalHours != 2 {
		t.Errorf("chart header wrong: %+v", chart)
	}
	if len(chart.Series) != 2 {
		t.Fatalf("expected 2 series, got %d", len(chart.Series))
	}
	if chart.Series[0].UserID != "u1" || chart.Series[1].UserID != "u2" {
		t.Errorf("series not in member order: %s, %s", chart.Series[0].UserID, chart.Series[1].UserID)
	}
	if chart.Series[0].Name != "Ada Lovelace" {
		t.Errorf("series name = %q", chart.Series[0].Name)
	}

	for i, s := range chart.Series {
		if len(s.Coverage) != len(buckets) {
			t.Fatalf("series %d has %d coverage points for %d buckets", i, len(s.Coverage), len(buckets))
		}
	}

	// The member without submissions stays flat at zero.
	for i, v := range chart.Series[1].Coverage {
		if v != 0 {
			t.Errorf("u2 coverage[%d] = %v, want 0", i, v)
		}
	}

	// u1's 08:00-10:00 block fills exactly one two-hour bucket.
	var full int
	for _, v := range chart.Series[0].Coverage {
		if v == 1 {
			full++
		}
	}
	if full != 1 {
		t.Errorf("u1 should fully cover exactly one bucket, covered %d", full)
	}
}

func TestBuildTimelineCarriesRecordIDs(t *testing.T) {
	plan := &models.Plan{ID: "p1", GroupID: "g1", StartDate: "2026-03-10", EndDate: "2026-03-11"}
	members := []models.MemberProfile{
		{UserID: "u1", FirstName: "Ada", Surname: "Lovelace"},
		{UserID: "u2", FirstName: "Alan", Surname: "Turing"},
	}

	mergedByUser := map[string][]MergedRange{
		"u1": {{
			UserID:    "u1",
			Start:     localTime("2026-03-10", 20, 0),
			End:       localTime("2026-03-11", 6, 0),
			RecordIDs: []string{"r1", "r2"},
		}},
	}

	timeline := BuildTimeline(plan, mergedByUser, members)
	if len(timeline.Rows) != 2 {
		t.Fatalf("expected a row per member, got %d", len(timeline.Rows))
	}

	row := timeline.Rows[0]
	if len(row.Ranges) != 1 {
		t.Fatalf("expected 1 range for u1, got %d", len(row.Ranges))
	}
	if got := row.Ranges[0].RecordIDs; len(got) != 2 || got[0] != "r1" || got[1] != "r2" {
		t.Errorf("record ids = %v, want [r1 r2]", got)
	}
	if row.Color != ColorForUser("u1") {
		t.Errorf("row color %s does not match user color", row.Color)
	}

	if len(timeline.Rows[1].Ranges) != 0 {
		t.Errorf("member without submissions should have an empty row")
	}
}
